// Package color converts material colors from the sRGB space they are
// authored in to the linear space lighting math runs in.
package color

// F64 is a color with float64 components in [0,1].
// Alpha is always linear (never gamma-encoded).
type F64 struct {
	R, G, B, A float64
}
