package common

import (
	"github.com/chewxy/math32"
)

// Quat is a rotation quaternion stored as [x, y, z, w].
// Like Vec3 it is a value type; methods never mutate the receiver.
type Quat [4]float32

// QuatIdentity returns the identity rotation.
func QuatIdentity() Quat {
	return Quat{0, 0, 0, 1}
}

// QuatFromAxisAngle builds a quaternion rotating by angle radians around axis.
// The axis must be unit length.
//
// Parameters:
//   - axis: unit rotation axis
//   - angle: rotation angle in radians
//
// Returns:
//   - Quat: the rotation quaternion
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	s := math32.Sin(angle / 2.0)
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, math32.Cos(angle / 2.0)}
}

// QuatFromEulerZYX composes a rotation from intrinsic Z-Y-X Euler angles:
// roll around Z first, then yaw around Y, then pitch around X.
//
// Parameters:
//   - roll: rotation around Z in radians
//   - yaw: rotation around Y in radians
//   - pitch: rotation around X in radians
//
// Returns:
//   - Quat: the composed rotation, equal to Qz(roll) * Qy(yaw) * Qx(pitch)
func QuatFromEulerZYX(roll, yaw, pitch float32) Quat {
	qz := QuatFromAxisAngle(Vec3{0, 0, 1}, roll)
	qy := QuatFromAxisAngle(Vec3{0, 1, 0}, yaw)
	qx := QuatFromAxisAngle(Vec3{1, 0, 0}, pitch)
	return qz.Mul(qy).Mul(qx)
}

// Mul returns the Hamilton product q * o, the rotation applying o first and q second.
func (q Quat) Mul(o Quat) Quat {
	qx, qy, qz, qw := q[0], q[1], q[2], q[3]
	ox, oy, oz, ow := o[0], o[1], o[2], o[3]
	return Quat{
		qw*ox + qx*ow + qy*oz - qz*oy,
		qw*oy - qx*oz + qy*ow + qz*ox,
		qw*oz + qx*oy - qy*ox + qz*ow,
		qw*ow - qx*ox - qy*oy - qz*oz,
	}
}

// Rotate applies the rotation q to the vector v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q[0], q[1], q[2]}
	t := u.Cross(v).Scale(2.0)
	return v.Add(t.Scale(q[3])).Add(u.Cross(t))
}

// Normalize returns q scaled to unit length. A zero quaternion is returned unchanged.
func (q Quat) Normalize() Quat {
	l := math32.Sqrt(q[0]*q[0] + q[1]*q[1] + q[2]*q[2] + q[3]*q[3])
	if l == 0 {
		return q
	}
	inv := 1.0 / l
	return Quat{q[0] * inv, q[1] * inv, q[2] * inv, q[3] * inv}
}

// EulerYXZ decomposes q into intrinsic Y-X-Z Euler angles such that
// q == Qy(yaw) * Qx(pitch) * Qz(roll). Input must be unit length.
//
// Returns:
//   - yaw: rotation around Y in radians
//   - pitch: rotation around X in radians
//   - roll: rotation around Z in radians
func (q Quat) EulerYXZ() (yaw, pitch, roll float32) {
	x, y, z, w := q[0], q[1], q[2], q[3]

	// Rotation matrix entries needed for the Y-X-Z extraction.
	m02 := 2 * (x*z + w*y)
	m22 := 1 - 2*(x*x+y*y)
	m12 := 2 * (y*z - w*x)
	m10 := 2 * (x*y + w*z)
	m11 := 1 - 2*(x*x+z*z)

	sp := -m12
	if sp > 1 {
		sp = 1
	} else if sp < -1 {
		sp = -1
	}

	yaw = math32.Atan2(m02, m22)
	pitch = math32.Asin(sp)
	roll = math32.Atan2(m10, m11)
	return yaw, pitch, roll
}

// QuatLookForward builds the rotation whose basis looks along forward with the
// given up vector, using the largest-diagonal branch of the matrix-to-quaternion
// conversion for numerical stability. Both inputs are normalized internally.
//
// Parameters:
//   - forward: view direction
//   - up: up vector
//
// Returns:
//   - Quat: rotation mapping the canonical basis onto (right, up, forward)
func QuatLookForward(forward, up Vec3) Quat {
	forward = forward.Normalize()
	up = up.Normalize()
	right := up.Cross(forward).Normalize()

	rx, ry, rz := right[0], right[1], right[2]
	ux, uy, uz := up[0], up[1], up[2]
	fx, fy, fz := forward[0], forward[1], forward[2]

	trace := rx + uy + fz
	if trace > 0 {
		scl := math32.Sqrt(trace + 1.0)
		inv := 0.5 / scl
		return Quat{(uz - fy) * inv, (fx - rz) * inv, (ry - ux) * inv, scl * 0.5}
	}
	if rx >= uy && rx >= fz {
		scl := math32.Sqrt(1.0 + rx - uy - fz)
		inv := 0.5 / scl
		return Quat{scl * 0.5, (ry + ux) * inv, (fx + rz) * inv, (uz - fy) * inv}
	}
	if uy >= fz {
		scl := math32.Sqrt(1.0 + uy - rx - fz)
		inv := 0.5 / scl
		return Quat{(ry + ux) * inv, scl * 0.5, (uz + fy) * inv, (fx - rz) * inv}
	}
	scl := math32.Sqrt(1.0 + fz - rx - uy)
	inv := 0.5 / scl
	return Quat{(fx + rz) * inv, (uz + fy) * inv, scl * 0.5, (ry - ux) * inv}
}
