package common

import (
	"unsafe"

	"github.com/chewxy/math32"
)

// Identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
//
// Parameters:
//   - m: destination slice (must be at least 16 elements)
func Identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// StructToBytes reinterprets a pointer to a struct as a raw byte slice using unsafe.
// The returned slice has length equal to the struct's size in memory.
//
// Parameters:
//   - v: pointer to the struct to reinterpret
//
// Returns:
//   - []byte: byte slice view of the struct's memory
func StructToBytes[T any](v *T) []byte {
	size := unsafe.Sizeof(*v)
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), int(size))
}

// Mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (OpenGL/WebGPU convention).
// Result: out = a * b
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - a: left-hand matrix (16 elements)
//   - b: right-hand matrix (16 elements)
func Mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// LookAtLH creates a left-handed view matrix from an eye position, a target
// point, and an up vector. The resulting matrix transforms world coordinates
// to view space with +Z pointing from the eye toward the target.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - eye: camera position in world space
//   - center: target point the camera looks at
//   - up: up vector defining camera orientation (typically 0,1,0)
func LookAtLH(out []float32, eye, center, up Vec3) {
	f := center.Sub(eye).Normalize()
	s := up.Cross(f).Normalize()
	u := f.Cross(s)

	out[0], out[4], out[8], out[12] = s[0], s[1], s[2], -s.Dot(eye)
	out[1], out[5], out[9], out[13] = u[0], u[1], u[2], -u.Dot(eye)
	out[2], out[6], out[10], out[14] = f[0], f[1], f[2], -f.Dot(eye)
	out[3], out[7], out[11], out[15] = 0, 0, 0, 1
}

// PerspectiveLH creates a left-handed perspective projection matrix with a
// finite far plane, mapping depth to the WebGPU [0, 1] clip range.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
//   - far: far clipping plane distance (must be > near)
func PerspectiveLH(out []float32, fovY, aspect, near, far float32) {
	h := 1.0 / math32.Tan(fovY/2.0)
	r := far / (far - near)
	Identity(out)

	out[0] = h / aspect
	out[5] = h
	out[10] = r
	out[11] = 1.0
	out[14] = -r * near
	out[15] = 0.0
}

// PerspectiveInfiniteLH creates a left-handed perspective projection matrix
// with an infinite far plane, mapping depth to the WebGPU [0, 1] clip range.
//
// Parameters:
//   - out: destination slice (must be at least 16 elements)
//   - fovY: vertical field of view in radians
//   - aspect: viewport aspect ratio (width/height)
//   - near: near clipping plane distance (must be > 0)
func PerspectiveInfiniteLH(out []float32, fovY, aspect, near float32) {
	h := 1.0 / math32.Tan(fovY/2.0)
	Identity(out)

	out[0] = h / aspect
	out[5] = h
	out[10] = 1.0
	out[11] = 1.0
	out[14] = -near
	out[15] = 0.0
}

// Radians converts an angle from degrees to radians.
//
// Parameters:
//   - degrees: the angle in degrees
//
// Returns:
//   - float32: the angle in radians
func Radians(degrees float32) float32 {
	return degrees * (math32.Pi / 180.0)
}
