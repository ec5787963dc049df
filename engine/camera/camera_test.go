package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/dyngine/dyngine/common"
)

const tol = 1e-5

func assertVec3Near(t *testing.T, want, got common.Vec3) {
	t.Helper()
	assert.InDelta(t, want[0], got[0], tol)
	assert.InDelta(t, want[1], got[1], tol)
	assert.InDelta(t, want[2], got[2], tol)
}

func TestNewDefaults(t *testing.T) {
	c := New()

	assert.Equal(t, common.Vec3{}, c.Position())
	assert.Equal(t, common.Vec3{0, 0, 1}, c.Direction())
	assert.Equal(t, common.Vec3{0, 0, 1}, c.ForwardAxis())
	assert.Equal(t, common.Vec3{0, 1, 0}, c.UpAxis())
	assert.InDelta(t, common.Radians(70), c.Fov(), tol)
	assert.InDelta(t, 0.01, c.Near(), tol)
	far, finite := c.Far()
	assert.True(t, finite)
	assert.InDelta(t, 1000.0, far, tol)
	assert.Equal(t, float32(1), c.Aspect())
	assert.True(t, c.Dirty())

	// The shader block starts as identity until the first Update.
	assert.Equal(t, [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, c.ShaderState().ViewProj)
}

func TestNewDerivesBasis(t *testing.T) {
	c := New()
	// up-axis x direction for (0,1,0) x (0,0,1) is (1,0,0).
	assert.Equal(t, common.Vec3{1, 0, 0}, c.Right())
	assert.Equal(t, common.Vec3{0, 1, 0}, c.Up())
}

func TestUpdateClearsDirty(t *testing.T) {
	c := New()
	c.Update()
	assert.False(t, c.Dirty())
	assert.NotEqual(t, [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, c.ShaderState().ViewProj)

	// A clean camera's Update leaves the block untouched.
	before := c.ShaderState()
	c.Update()
	assert.Equal(t, before, c.ShaderState())
}

func TestSettersGateOnEquality(t *testing.T) {
	c := New(WithPosition(common.Vec3{1, 2, 3}))
	c.Update()

	c.SetPosition(common.Vec3{1, 2, 3})
	assert.False(t, c.Dirty())
	c.SetAspect(1.0)
	assert.False(t, c.Dirty())
	c.SetFov(common.Radians(70))
	assert.False(t, c.Dirty())
	c.SetNear(0.01)
	assert.False(t, c.Dirty())
	c.SetFar(1000)
	assert.False(t, c.Dirty())
	c.SetDirection(common.Vec3{0, 0, 1})
	assert.False(t, c.Dirty())
	c.SetUpAxis(common.Vec3{0, 1, 0})
	assert.False(t, c.Dirty())

	c.SetPosition(common.Vec3{1, 2, 4})
	assert.True(t, c.Dirty())
}

func TestSetFarAfterInfinite(t *testing.T) {
	c := New(WithFar(500), WithInfiniteFar())
	_, finite := c.Far()
	assert.False(t, finite)
	c.Update()

	// Restoring a finite far plane is a real change even at the stored value.
	c.SetFar(500)
	assert.True(t, c.Dirty())
	far, finite := c.Far()
	assert.True(t, finite)
	assert.Equal(t, float32(500), far)
}

func TestSetDirectionDerivesBasis(t *testing.T) {
	c := New()
	c.Update()

	c.SetDirection(common.Vec3{1, 0, 0})
	assert.True(t, c.Dirty())
	assert.Equal(t, common.Vec3{0, 0, -1}, c.Right())
	assertVec3Near(t, common.Vec3{0, 1, 0}, c.Up())
}

func TestSetRotationGatesOnDerivedChange(t *testing.T) {
	c := New()
	c.Update()

	// Identity rotation reproduces the current basis exactly; stays clean.
	c.SetRotation(common.QuatIdentity())
	assert.False(t, c.Dirty())

	q := common.QuatFromAxisAngle(common.Vec3{0, 1, 0}, math32.Pi/2)
	c.SetRotation(q)
	assert.True(t, c.Dirty())
	assertVec3Near(t, common.Vec3{1, 0, 0}, c.Direction())
	assertVec3Near(t, common.Vec3{0, 1, 0}, c.Up())
	assertVec3Near(t, common.Vec3{0, 0, -1}, c.Right())
}

func TestSetRotationEuler(t *testing.T) {
	c := New()
	c.Update()

	// Yaw 90, pitch 0 points the direction down +Z.
	c.SetRotationEuler(90, 0)
	assert.True(t, c.Dirty())
	assertVec3Near(t, common.Vec3{0, 0, 1}, c.Direction())

	c.SetRotationEuler(0, 0)
	assertVec3Near(t, common.Vec3{1, 0, 0}, c.Direction())

	c.SetRotationEuler(0, 90)
	assertVec3Near(t, common.Vec3{0, 1, 0}, c.Direction())
}

func TestSetRollEulerRotatesUpAxis(t *testing.T) {
	c := New()
	c.Update()

	c.SetRollEuler(90)
	assert.True(t, c.Dirty())
	assertVec3Near(t, common.Vec3{0, 1, 0}, c.UpAxis())

	c.SetRollEuler(0)
	assertVec3Near(t, common.Vec3{1, 0, 0}, c.UpAxis())
}

func TestEulerAccessors(t *testing.T) {
	c := New()
	c.SetRotationEuler(37, -12)
	assert.InDelta(t, 37.0, c.Yaw(), 1e-3)
	assert.InDelta(t, -12.0, c.Pitch(), 1e-3)

	c.SetRollEuler(25)
	assert.InDelta(t, 25.0, c.Roll(), 1e-3)
}

func TestUpdateProducesViewProjection(t *testing.T) {
	c := New(
		WithPosition(common.Vec3{0, 0, -5}),
		WithDirection(common.Vec3{0, 0, 1}),
		WithNear(0.1),
		WithFar(100),
	)
	c.Update()

	vp := c.ShaderState().ViewProj

	// A point on the near plane straight ahead of the camera projects to
	// clip-space depth 0 at the center of the viewport.
	p := clipTransform(vp, common.Vec3{0, 0, -4.9})
	assert.InDelta(t, 0.0, p[0], tol)
	assert.InDelta(t, 0.0, p[1], tol)
	assert.InDelta(t, 0.0, p[2], tol)

	// And a far-plane point projects to depth 1.
	p = clipTransform(vp, common.Vec3{0, 0, 95})
	assert.InDelta(t, 1.0, p[2], 1e-4)
}

func TestInfiniteFarProjection(t *testing.T) {
	c := New(
		WithPosition(common.Vec3{0, 0, -5}),
		WithNear(0.1),
		WithInfiniteFar(),
	)
	c.Update()

	p := clipTransform(c.ShaderState().ViewProj, common.Vec3{0, 0, 1e6})
	assert.Less(t, p[2], float32(1.0))
	assert.InDelta(t, 1.0, p[2], 1e-3)
}

// clipTransform applies the column-major view-projection to a world point and
// performs the perspective divide.
func clipTransform(m [16]float32, p common.Vec3) common.Vec3 {
	x := m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12]
	y := m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13]
	z := m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14]
	w := m[3]*p[0] + m[7]*p[1] + m[11]*p[2] + m[15]
	if w != 0 {
		return common.Vec3{x / w, y / w, z / w}
	}
	return common.Vec3{x, y, z}
}
