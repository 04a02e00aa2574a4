package referenceframe

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"

	"go.viam.com/kinchain/utils"
)

// Limit represents the limits of motion for a joint, in degrees for revolute joints and mm for prismatic ones.
type Limit struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// String returns the limit as a closed interval.
func (l Limit) String() string {
	return fmt.Sprintf("[%.5f, %.5f]", l.Min, l.Max)
}

// Contains reports whether v lies within the closed interval.
func (l Limit) Contains(v float64) bool {
	return v >= l.Min && v <= l.Max
}

// Clamp returns the value in the interval nearest to v.
func (l Limit) Clamp(v float64) float64 {
	return utils.Clamp(v, l.Min, l.Max)
}

func (l Limit) valid() bool {
	return !math.IsNaN(l.Min) && !math.IsNaN(l.Max) && l.Min <= l.Max
}

func limitsAlmostEqual(a, b []Limit) bool {
	if len(a) != len(b) {
		return false
	}

	const epsilon = 1e-5
	for idx, x := range a {
		if !utils.Float64AlmostEqual(x.Min, b[idx].Min, epsilon) ||
			!utils.Float64AlmostEqual(x.Max, b[idx].Max, epsilon) {
			return false
		}
	}

	return true
}

// LimitPolicy decides what happens to joint values outside their limits.
type LimitPolicy int

const (
	// StrictLimits rejects any out of range value with ErrJointLimitExceeded.
	StrictLimits LimitPolicy = iota
	// ClampLimits moves out of range values to the nearest bound.
	ClampLimits
)

func (p LimitPolicy) String() string {
	switch p {
	case StrictLimits:
		return "strict"
	case ClampLimits:
		return "clamp"
	default:
		return fmt.Sprintf("LimitPolicy(%d)", int(p))
	}
}

// ParseLimitPolicy converts "strict" or "clamp" into a LimitPolicy.
func ParseLimitPolicy(s string) (LimitPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strict", "":
		return StrictLimits, nil
	case "clamp":
		return ClampLimits, nil
	default:
		return StrictLimits, errors.Errorf("unknown limit policy %q, expected strict or clamp", s)
	}
}
