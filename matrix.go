package graphmesh

import "math"

// Matrix represents a 3D affine transformation matrix.
// It uses a 3x4 matrix in row-major order:
//
//	| a  b  c  d |
//	| e  f  g  h |
//	| i  j  k  l |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c*z + d
//	y' = e*x + f*y + g*z + h
//	z' = i*x + j*y + k*z + l
type Matrix struct {
	A, B, C, D float64
	E, F, G, H float64
	I, J, K, L float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0, D: 0,
		E: 0, F: 1, G: 0, H: 0,
		I: 0, J: 0, K: 1, L: 0,
	}
}

// Translate creates a translation matrix.
func Translate(v Vec3) Matrix {
	m := Identity()
	m.D, m.H, m.L = v.X, v.Y, v.Z
	return m
}

// Scale creates a scaling matrix.
func Scale(v Vec3) Matrix {
	return Matrix{
		A: v.X,
		F: v.Y,
		K: v.Z,
	}
}

// RotateX creates a rotation about the x axis (angle in radians).
func RotateX(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: 1,
		F: cos, G: -sin,
		J: sin, K: cos,
	}
}

// RotateY creates a rotation about the y axis (angle in radians).
func RotateY(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, C: sin,
		F: 1,
		I: -sin, K: cos,
	}
}

// RotateZ creates a rotation about the z axis (angle in radians).
func RotateZ(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin,
		E: sin, F: cos,
		K: 1,
	}
}

// Multiply multiplies two matrices (m * other).
// The result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.E + m.C*other.I,
		B: m.A*other.B + m.B*other.F + m.C*other.J,
		C: m.A*other.C + m.B*other.G + m.C*other.K,
		D: m.A*other.D + m.B*other.H + m.C*other.L + m.D,
		E: m.E*other.A + m.F*other.E + m.G*other.I,
		F: m.E*other.B + m.F*other.F + m.G*other.J,
		G: m.E*other.C + m.F*other.G + m.G*other.K,
		H: m.E*other.D + m.F*other.H + m.G*other.L + m.H,
		I: m.I*other.A + m.J*other.E + m.K*other.I,
		J: m.I*other.B + m.J*other.F + m.K*other.J,
		K: m.I*other.C + m.J*other.G + m.K*other.K,
		L: m.I*other.D + m.J*other.H + m.K*other.L + m.L,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Vec3) Vec3 {
	return Vec3{
		X: m.A*p.X + m.B*p.Y + m.C*p.Z + m.D,
		Y: m.E*p.X + m.F*p.Y + m.G*p.Z + m.H,
		Z: m.I*p.X + m.J*p.Y + m.K*p.Z + m.L,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Vec3) Vec3 {
	return Vec3{
		X: m.A*p.X + m.B*p.Y + m.C*p.Z,
		Y: m.E*p.X + m.F*p.Y + m.G*p.Z,
		Z: m.I*p.X + m.J*p.Y + m.K*p.Z,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.E == 0 && m.F == 1 && m.G == 0 &&
		m.I == 0 && m.J == 0 && m.K == 1
}

// Compose builds the world matrix of a transform: scaling first, then
// rotation about x, y and z in that order, then translation.
func Compose(position, rotation, scaling Vec3) Matrix {
	r := RotateZ(rotation.Z).Multiply(RotateY(rotation.Y)).Multiply(RotateX(rotation.X))
	return Translate(position).Multiply(r).Multiply(Scale(scaling))
}
