package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

// represent a 45 degree rotation around the x axis in all the representations
var (
	th    = math.Pi / 4.
	q45x  = quat.Number{math.Cos(th / 2.), math.Sin(th / 2.), 0, 0}
	aa45x = &R4AA{th, 1., 0., 0.}
	ea45x = &EulerAngles{Roll: th, Pitch: 0, Yaw: 0}
)

func TestZeroOrientation(t *testing.T) {
	zero := NewZeroOrientation()
	test.That(t, zero.AxisAngles(), test.ShouldResemble, NewR4AA())
	test.That(t, zero.Quaternion(), test.ShouldResemble, quat.Number{1, 0, 0, 0})
	test.That(t, zero.EulerAngles(), test.ShouldResemble, NewEulerAngles())
}

func TestOrientationRepresentations(t *testing.T) {
	for _, o := range []Orientation{(*Quaternion)(&q45x), aa45x, ea45x, QuatToRotationMatrix(q45x)} {
		test.That(t, o.Quaternion().Real, test.ShouldAlmostEqual, q45x.Real)
		test.That(t, o.Quaternion().Imag, test.ShouldAlmostEqual, q45x.Imag)
		test.That(t, o.Quaternion().Jmag, test.ShouldAlmostEqual, q45x.Jmag)
		test.That(t, o.Quaternion().Kmag, test.ShouldAlmostEqual, q45x.Kmag)
		test.That(t, o.AxisAngles().Theta, test.ShouldAlmostEqual, aa45x.Theta)
		test.That(t, o.AxisAngles().RX, test.ShouldAlmostEqual, aa45x.RX)
		test.That(t, o.EulerAngles().Roll, test.ShouldAlmostEqual, ea45x.Roll)
		test.That(t, o.EulerAngles().Pitch, test.ShouldAlmostEqual, ea45x.Pitch)
		test.That(t, o.EulerAngles().Yaw, test.ShouldAlmostEqual, ea45x.Yaw)
	}
}

func TestEulerMatchesMatrixComposition(t *testing.T) {
	//nolint:gosec
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		yaw := r.Float64()*360 - 180
		pitch := r.Float64()*180 - 90
		roll := r.Float64()*360 - 180

		q, err := NewRotation(RotationFormatEulerZYXDegrees, []float64{yaw, pitch, roll})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, quat.Abs(q.Quaternion()), test.ShouldAlmostEqual, 1.)

		expected := mgl64.Rotate3DZ(mgl64.DegToRad(yaw)).
			Mul3(mgl64.Rotate3DY(mgl64.DegToRad(pitch))).
			Mul3(mgl64.Rotate3DX(mgl64.DegToRad(roll)))
		got := q.RotationMatrix()
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				test.That(t, got.At(row, col), test.ShouldAlmostEqual, expected.At(row, col), 1e-9)
			}
		}

		// round trip back through euler angles away from the pitch singularity
		if math.Abs(pitch) < 89 {
			ea := q.EulerAngles()
			test.That(t, ea.Yaw*radToDeg, test.ShouldAlmostEqual, yaw, 1e-6)
			test.That(t, ea.Pitch*radToDeg, test.ShouldAlmostEqual, pitch, 1e-6)
			test.That(t, ea.Roll*radToDeg, test.ShouldAlmostEqual, roll, 1e-6)
		}
	}
}

func TestNewRotationQuaternion(t *testing.T) {
	q, err := NewRotation(RotationFormatQuaternion, []float64{2, 0, 0, 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q.Quaternion(), test.ShouldResemble, quat.Number{Real: 1})

	q, err = NewRotation(RotationFormatQuaternion, []float64{1, 1, 0, 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, q.Real, test.ShouldAlmostEqual, math.Sqrt2/2)
	test.That(t, q.Imag, test.ShouldAlmostEqual, math.Sqrt2/2)

	_, err = NewRotation(RotationFormatQuaternion, []float64{1e-12, 0, 0, 0})
	test.That(t, err, test.ShouldBeError)
	test.That(t, errors.Is(err, ErrDegenerateRotation), test.ShouldBeTrue)

	_, err = NewRotation(RotationFormatQuaternion, []float64{math.NaN(), 0, 0, 1})
	test.That(t, errors.Is(err, ErrDegenerateRotation), test.ShouldBeTrue)

	_, err = NewRotation(RotationFormatQuaternion, []float64{1, 0, 0})
	test.That(t, errors.Is(err, ErrInvalidRotationData), test.ShouldBeTrue)
}

func TestNewRotationUnsupported(t *testing.T) {
	_, err := NewRotation(RotationFormat("euler-xyz-deg"), []float64{0, 0, 0})
	test.That(t, errors.Is(err, ErrUnsupportedRotationFormat), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "euler-xyz-deg")
}

func TestNewRotationAlternateFormats(t *testing.T) {
	want, err := NewRotation(RotationFormatEulerZYXDegrees, []float64{90, 0, 0})
	test.That(t, err, test.ShouldBeNil)

	rad, err := NewRotation(RotationFormatEulerZYXRadians, []float64{math.Pi / 2, 0, 0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, OrientationAlmostEqual(rad, want), test.ShouldBeTrue)

	aa, err := NewRotation(RotationFormatAxisAngle, []float64{math.Pi / 2, 0, 0, 5})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, OrientationAlmostEqual(aa, want), test.ShouldBeTrue)

	aaDeg, err := NewRotation(RotationFormatAxisAngleDegrees, []float64{90, 0, 0, 1})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, OrientationAlmostEqual(aaDeg, want), test.ShouldBeTrue)

	m, err := NewRotation(RotationFormatMatrix, []float64{
		0, -1, 0,
		1, 0, 0,
		0, 0, 1,
	})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, OrientationAlmostEqual(m, want), test.ShouldBeTrue)

	_, err = NewRotation(RotationFormatAxisAngle, []float64{1, 0, 0, 0})
	test.That(t, errors.Is(err, ErrDegenerateRotation), test.ShouldBeTrue)

	_, err = NewRotation(RotationFormatMatrix, []float64{
		2, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	test.That(t, errors.Is(err, ErrDegenerateRotation), test.ShouldBeTrue)

	// a reflection is orthonormal but not a rotation
	_, err = NewRotation(RotationFormatMatrix, []float64{
		-1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	test.That(t, errors.Is(err, ErrDegenerateRotation), test.ShouldBeTrue)
}

func TestOrientationBetweenVectors(t *testing.T) {
	cases := []r3.Vector{
		{0, 0, 1}, {0, 0, -1}, {1, 0, 0}, {0, -3, 0}, {1, 1, 1}, {-2, 0.5, -0.1},
	}
	for _, to := range cases {
		for _, from := range cases {
			o := OrientationBetweenVectors(from, to)
			got := rotateVector(o.Quaternion(), from.Normalize())
			test.That(t, R3VectorAlmostEqual(got, to.Normalize(), 1e-9), test.ShouldBeTrue)
		}
	}
	test.That(t, OrientationBetweenVectors(r3.Vector{}, r3.Vector{X: 1}).Quaternion(), test.ShouldResemble, quat.Number{Real: 1})
}

func TestSameRotation(t *testing.T) {
	test.That(t, SameRotation(q45x, Flip(q45x), 1e-9), test.ShouldBeTrue)
	test.That(t, QuaternionAlmostEqual(q45x, Flip(q45x), 1e-9), test.ShouldBeFalse)
	test.That(t, OrientationAlmostEqual((*Quaternion)(&q45x), NewZeroOrientation()), test.ShouldBeFalse)
}
