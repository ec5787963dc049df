package common

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestQuatIdentityRotate(t *testing.T) {
	v := Vec3{1, 2, 3}
	assert.Equal(t, v, QuatIdentity().Rotate(v))
}

func TestQuatFromAxisAngleQuarterTurn(t *testing.T) {
	// 90 degrees around Y maps +Z to +X.
	q := QuatFromAxisAngle(Vec3{0, 1, 0}, math32.Pi/2)
	assertVec3Near(t, Vec3{1, 0, 0}, q.Rotate(Vec3{0, 0, 1}))

	// And a half turn around Y negates +Z.
	half := QuatFromAxisAngle(Vec3{0, 1, 0}, math32.Pi)
	assertVec3Near(t, Vec3{0, 0, -1}, half.Rotate(Vec3{0, 0, 1}))
}

func TestQuatMulComposesRightToLeft(t *testing.T) {
	qy := QuatFromAxisAngle(Vec3{0, 1, 0}, math32.Pi/2)
	qx := QuatFromAxisAngle(Vec3{1, 0, 0}, math32.Pi/2)

	// (qy * qx) applies qx first, then qy.
	composed := qy.Mul(qx)
	v := Vec3{0, 0, 1}
	assertVec3Near(t, qy.Rotate(qx.Rotate(v)), composed.Rotate(v))
}

func TestQuatFromEulerZYXMatchesSequence(t *testing.T) {
	roll, yaw, pitch := float32(0.3), float32(-0.7), float32(0.2)
	q := QuatFromEulerZYX(roll, yaw, pitch)

	qz := QuatFromAxisAngle(Vec3{0, 0, 1}, roll)
	qy := QuatFromAxisAngle(Vec3{0, 1, 0}, yaw)
	qx := QuatFromAxisAngle(Vec3{1, 0, 0}, pitch)
	want := qz.Mul(qy).Mul(qx)

	v := Vec3{1, 2, 3}
	assertVec3Near(t, want.Rotate(v), q.Rotate(v))
}

func TestEulerYXZRoundTrip(t *testing.T) {
	yaw, pitch, roll := float32(0.5), float32(-0.3), float32(0.8)
	qy := QuatFromAxisAngle(Vec3{0, 1, 0}, yaw)
	qx := QuatFromAxisAngle(Vec3{1, 0, 0}, pitch)
	qz := QuatFromAxisAngle(Vec3{0, 0, 1}, roll)
	q := qy.Mul(qx).Mul(qz)

	gotYaw, gotPitch, gotRoll := q.EulerYXZ()
	assert.InDelta(t, yaw, gotYaw, tol)
	assert.InDelta(t, pitch, gotPitch, tol)
	assert.InDelta(t, roll, gotRoll, tol)
}

func TestEulerYXZIdentity(t *testing.T) {
	yaw, pitch, roll := QuatIdentity().EulerYXZ()
	assert.Equal(t, float32(0), yaw)
	assert.Equal(t, float32(0), pitch)
	assert.Equal(t, float32(0), roll)
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{0, 0, 0, 2}.Normalize()
	assert.Equal(t, QuatIdentity(), q)

	zero := Quat{}
	assert.Equal(t, zero, zero.Normalize())
}

func TestQuatLookForwardCanonical(t *testing.T) {
	// Looking along the canonical basis yields the identity rotation.
	q := QuatLookForward(Vec3{0, 0, 1}, Vec3{0, 1, 0})
	assertVec3Near(t, Vec3{0, 0, 1}, q.Rotate(Vec3{0, 0, 1}))
	assertVec3Near(t, Vec3{0, 1, 0}, q.Rotate(Vec3{0, 1, 0}))
}

func TestQuatLookForwardMapsBasis(t *testing.T) {
	forward := Vec3{1, 0, 1}.Normalize()
	up := Vec3{0, 1, 0}
	q := QuatLookForward(forward, up)

	assertVec3Near(t, forward, q.Rotate(Vec3{0, 0, 1}))
	assertVec3Near(t, up, q.Rotate(Vec3{0, 1, 0}))
	assertVec3Near(t, up.Cross(forward).Normalize(), q.Rotate(Vec3{1, 0, 0}))
}

func TestVec3Basics(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	assert.Equal(t, Vec3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, float32(32), a.Dot(b))
	assert.Equal(t, Vec3{-3, 6, -3}, a.Cross(b))
	assert.True(t, Vec3{}.IsZero())
	assert.False(t, a.IsZero())

	n := Vec3{3, 0, 4}.Normalize()
	assert.InDelta(t, 1.0, n.Length(), tol)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}
