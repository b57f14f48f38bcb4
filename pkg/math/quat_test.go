package math

import (
	"math"
	"testing"
)

func vec3Near(a, b Vec3, tol float64) bool {
	return math.Abs(float64(a.X-b.X)) <= tol &&
		math.Abs(float64(a.Y-b.Y)) <= tol &&
		math.Abs(float64(a.Z-b.Z)) <= tol
}

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
}

func TestQuatFromAxisAngle(t *testing.T) {
	// 90 degrees around Y axis
	q := QuatFromAxisAngle(Vec3{X: 0, Y: 1, Z: 0}, float32(math.Pi/2))

	// Should have Y component and W = cos(45deg)
	expectedW := float32(math.Cos(math.Pi / 4))
	expectedY := float32(math.Sin(math.Pi / 4))

	if math.Abs(float64(q.W-expectedW)) > 0.001 {
		t.Errorf("QuatFromAxisAngle W: expected %v, got %v", expectedW, q.W)
	}
	if math.Abs(float64(q.Y-expectedY)) > 0.001 {
		t.Errorf("QuatFromAxisAngle Y: expected %v, got %v", expectedY, q.Y)
	}
}

func TestQuatRotate(t *testing.T) {
	// 90 degrees around Y carries +X to -Z.
	q := QuatFromAxisAngle(Vec3{Y: 1}, float32(math.Pi/2))
	got := q.Rotate(Vec3{X: 1})
	want := Vec3{Z: -1}
	if !vec3Near(got, want, 1e-6) {
		t.Errorf("Quat.Rotate() = %v, want %v", got, want)
	}
}

func TestQuatRotateIdentity(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := QuatIdentity().Rotate(v)
	if !vec3Near(got, v, 1e-6) {
		t.Errorf("identity rotation moved %v to %v", v, got)
	}
}

func TestQuatRotatePreservesLength(t *testing.T) {
	q := QuatFromAxisAngle(Vec3{X: 0.6, Y: 0, Z: 0.8}, 1.234)
	v := Vec3{3, -4, 12}
	got := q.Rotate(v).Length()
	want := v.Length()
	if math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("rotation changed length from %v to %v", want, got)
	}
}

func TestQuatMulAppliesRightFirst(t *testing.T) {
	yaw := QuatFromAxisAngle(Vec3{Y: 1}, float32(math.Pi/2))
	pitch := QuatFromAxisAngle(Vec3{X: 1}, float32(math.Pi/2))

	// yaw.Mul(pitch) pitches first, then yaws: +Y -> +Z -> +X.
	got := yaw.Mul(pitch).Rotate(Vec3{Y: 1})
	want := Vec3{X: 1}
	if !vec3Near(got, want, 1e-6) {
		t.Errorf("yaw.Mul(pitch).Rotate(+Y) = %v, want %v", got, want)
	}

	// The opposite composition yaws first (a no-op for +Y), then pitches.
	got = pitch.Mul(yaw).Rotate(Vec3{Y: 1})
	want = Vec3{Z: 1}
	if !vec3Near(got, want, 1e-6) {
		t.Errorf("pitch.Mul(yaw).Rotate(+Y) = %v, want %v", got, want)
	}
}
