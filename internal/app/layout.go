package app

import (
	"math"

	"github.com/gogpu/graphmesh"
)

// circleLayout places n nodes evenly on a circle in the XY plane, starting
// at the top and leaving one node size of space between neighbours.
func circleLayout(n int, size float64) []graphmesh.Vec3 {
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []graphmesh.Vec3{{}}
	}

	// Circumference holds n nodes plus n gaps of the same size.
	radius := size * float64(n) / math.Pi
	step := 2 * math.Pi / float64(n)
	pts := make([]graphmesh.Vec3, n)
	for i := range pts {
		a := math.Pi/2 - step*float64(i)
		pts[i] = graphmesh.V3(radius*math.Cos(a), radius*math.Sin(a), 0)
	}
	return pts
}

// arrowheadPlacement returns the position and rotation of an arrowhead for
// the edge src -> dst. The arrowhead touches the target node's bounding
// sphere and its +x axis points along the edge. Self loops point along +x.
func arrowheadPlacement(src, dst graphmesh.Vec3, size float64) (position, rotation graphmesh.Vec3) {
	dir := dst.Sub(src).Normalize()
	if dir.IsZero() {
		dir = graphmesh.V3(1, 0, 0)
	}
	position = dst.Sub(dir.Mul(size / 2))
	rotation = graphmesh.V3(0, 0, math.Atan2(dir.Y, dir.X))
	return position, rotation
}
