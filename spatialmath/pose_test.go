package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func randomPose(r *rand.Rand) Pose {
	ea := &EulerAngles{
		Roll:  (r.Float64()*2 - 1) * math.Pi,
		Pitch: (r.Float64() - 0.5) * math.Pi,
		Yaw:   (r.Float64()*2 - 1) * math.Pi,
	}
	pt := r3.Vector{X: r.Float64()*2000 - 1000, Y: r.Float64()*2000 - 1000, Z: r.Float64()*2000 - 1000}
	return NewPose(pt, ea)
}

func TestBasicPoseConstruction(t *testing.T) {
	p := NewZeroPose()
	test.That(t, p.Point(), test.ShouldResemble, r3.Vector{})
	test.That(t, OrientationAlmostEqual(p.Orientation(), NewZeroOrientation()), test.ShouldBeTrue)

	p = NewPoseFromPoint(r3.Vector{1, 2, 3})
	test.That(t, p.Point(), test.ShouldResemble, r3.Vector{1, 2, 3})

	// an unnormalized orientation is normalized on the way in
	p = NewPose(r3.Vector{1, 2, 3}, &Quaternion{Real: 2})
	test.That(t, p.Orientation().Quaternion().Real, test.ShouldAlmostEqual, 1.)
	test.That(t, R3VectorAlmostEqual(p.Point(), r3.Vector{1, 2, 3}, 1e-12), test.ShouldBeTrue)

	p = NewPose(r3.Vector{4, 5, 6}, nil)
	test.That(t, p.Point(), test.ShouldResemble, r3.Vector{4, 5, 6})
}

func TestComposeRotateThenTranslate(t *testing.T) {
	// a quarter turn about z followed by a translation along x
	rot := NewPose(r3.Vector{}, NewEulerAnglesDegrees(90, 0, 0))
	trans := NewPoseFromPoint(r3.Vector{X: 100})

	// translation first, then rotation: the offset is carried around
	p := Compose(rot, trans)
	test.That(t, R3VectorAlmostEqual(p.Point(), r3.Vector{Y: 100}, 1e-9), test.ShouldBeTrue)

	// rotation first: the translation stays where it was
	p = Compose(trans, rot)
	test.That(t, R3VectorAlmostEqual(p.Point(), r3.Vector{X: 100}, 1e-9), test.ShouldBeTrue)
	test.That(t, OrientationAlmostEqual(p.Orientation(), rot.Orientation()), test.ShouldBeTrue)

	pt := TransformPoint(Compose(trans, rot), r3.Vector{X: 10})
	test.That(t, R3VectorAlmostEqual(pt, r3.Vector{X: 100, Y: 10}, 1e-9), test.ShouldBeTrue)

	v := RotateVector(Compose(trans, rot), r3.Vector{X: 10})
	test.That(t, R3VectorAlmostEqual(v, r3.Vector{Y: 10}, 1e-9), test.ShouldBeTrue)
}

func TestComposeProperties(t *testing.T) {
	//nolint:gosec
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		a, b, c := randomPose(r), randomPose(r), randomPose(r)

		test.That(t, PoseAlmostEqual(Compose(a, PoseInverse(a)), NewZeroPose()), test.ShouldBeTrue)
		test.That(t, PoseAlmostEqual(Compose(PoseInverse(a), a), NewZeroPose()), test.ShouldBeTrue)
		test.That(t, PoseAlmostEqual(Compose(a, NewZeroPose()), a), test.ShouldBeTrue)
		test.That(t, PoseAlmostEqual(Compose(NewZeroPose(), a), a), test.ShouldBeTrue)
		test.That(t, PoseAlmostEqualEps(Compose(Compose(a, b), c), Compose(a, Compose(b, c)), 1e-6), test.ShouldBeTrue)
		test.That(t, PoseAlmostEqualEps(PoseBetween(a, Compose(a, b)), b, 1e-6), test.ShouldBeTrue)

		// composition agrees with applying the transforms one after the other
		pt := r3.Vector{X: r.Float64() * 100, Y: r.Float64() * 100, Z: r.Float64() * 100}
		want := TransformPoint(a, TransformPoint(b, pt))
		got := TransformPoint(Compose(a, b), pt)
		test.That(t, R3VectorAlmostEqual(got, want, 1e-6), test.ShouldBeTrue)

		// the rotation part stays unit length
		q := Compose(a, b).Orientation().Quaternion()
		test.That(t, q.Real*q.Real+q.Imag*q.Imag+q.Jmag*q.Jmag+q.Kmag*q.Kmag, test.ShouldAlmostEqual, 1., 1e-12)
	}
}

func TestPoseDelta(t *testing.T) {
	a := NewPose(r3.Vector{X: 10}, NewEulerAnglesDegrees(0, 0, 0))
	b := NewPose(r3.Vector{X: 13, Y: 4}, NewEulerAnglesDegrees(30, 0, 0))
	dist, angle := PoseDelta(a, b)
	test.That(t, dist, test.ShouldAlmostEqual, 5.)
	test.That(t, angle, test.ShouldAlmostEqual, math.Pi/6)

	dist, angle = PoseDelta(a, a)
	test.That(t, dist, test.ShouldAlmostEqual, 0.)
	test.That(t, angle, test.ShouldAlmostEqual, 0.)
}

func TestPoseConfigRoundTrip(t *testing.T) {
	p := NewPose(r3.Vector{1, -2, 3}, NewEulerAnglesDegrees(10, 20, 30))
	pc := NewPoseConfig(p)
	test.That(t, pc.EulerDeg.Yaw, test.ShouldAlmostEqual, 10.)
	test.That(t, pc.EulerDeg.Pitch, test.ShouldAlmostEqual, 20.)
	test.That(t, pc.EulerDeg.Roll, test.ShouldAlmostEqual, 30.)

	back, err := pc.ParseConfig()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, PoseAlmostEqual(back, p), test.ShouldBeTrue)

	_, err = (&PoseConfig{}).ParseConfig()
	test.That(t, err, test.ShouldNotBeNil)

	test.That(t, PoseString(NewPoseFromPoint(r3.Vector{X: 1})), test.ShouldContainSubstring, "X:1.000")
}
