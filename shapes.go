package graphmesh

import "github.com/gogpu/graphmesh/mesh"

// Built-in node shape types.
const (
	ShapeBox         = "box"
	ShapeSphere      = "sphere"
	ShapeCylinder    = "cylinder"
	ShapeCone        = "cone"
	ShapeTorus       = "torus"
	ShapeTetrahedron = "tetrahedron"
	ShapeOctahedron  = "octahedron"
	ShapeIcosahedron = "icosahedron"
	ShapePlane       = "plane"
	ShapeDisc        = "disc"
)

// Built-in arrowhead shape types.
const (
	ArrowNormal   = "normal"
	ArrowInverted = "inverted"
	ArrowDiamond  = "diamond"
	ArrowDot      = "dot"
	ArrowBox      = "box"
	ArrowTee      = "tee"
)

// MeshCreator adapts a geometry generator into a ShapeCreator that wraps the
// generated mesh in a new template.
func MeshCreator(shapeType string, generate func(size float64) (*mesh.Mesh, error)) ShapeCreator {
	return func(size float64) (*Template, error) {
		m, err := generate(size)
		if err != nil {
			return nil, err
		}
		return NewTemplate(shapeType, m, size), nil
	}
}

// BuiltinShapes returns a new registry holding the built-in node shapes.
func BuiltinShapes() *ShapeRegistry {
	r := NewShapeRegistry()
	RegisterBuiltinShapes(r)
	return r
}

// RegisterBuiltinShapes registers the built-in node shapes in r, replacing
// any creators already registered under the same names.
func RegisterBuiltinShapes(r *ShapeRegistry) {
	r.Register(ShapeBox, MeshCreator(ShapeBox, mesh.Box))
	r.Register(ShapeSphere, MeshCreator(ShapeSphere, func(size float64) (*mesh.Mesh, error) {
		return mesh.Sphere(size, mesh.DefaultSegments)
	}))
	r.Register(ShapeCylinder, MeshCreator(ShapeCylinder, func(size float64) (*mesh.Mesh, error) {
		return mesh.Cylinder(size, size, size, mesh.DefaultTessellation)
	}))
	r.Register(ShapeCone, MeshCreator(ShapeCone, func(size float64) (*mesh.Mesh, error) {
		return mesh.Cone(size, size, mesh.DefaultTessellation)
	}))
	// Tube and hole split the size so the outer extent matches it.
	r.Register(ShapeTorus, MeshCreator(ShapeTorus, func(size float64) (*mesh.Mesh, error) {
		return mesh.Torus(size*0.7, size*0.3, mesh.DefaultTessellation)
	}))
	r.Register(ShapeTetrahedron, MeshCreator(ShapeTetrahedron, mesh.Tetrahedron))
	r.Register(ShapeOctahedron, MeshCreator(ShapeOctahedron, mesh.Octahedron))
	r.Register(ShapeIcosahedron, MeshCreator(ShapeIcosahedron, mesh.Icosahedron))
	r.Register(ShapePlane, MeshCreator(ShapePlane, mesh.Plane))
	r.Register(ShapeDisc, MeshCreator(ShapeDisc, func(size float64) (*mesh.Mesh, error) {
		return mesh.Disc(size, mesh.DefaultTessellation)
	}))
}

// BuiltinArrowheads returns a new registry holding the built-in arrowheads.
func BuiltinArrowheads() *ShapeRegistry {
	r := NewShapeRegistry()
	RegisterBuiltinArrowheads(r)
	return r
}

// RegisterBuiltinArrowheads registers the built-in arrowhead shapes in r.
func RegisterBuiltinArrowheads(r *ShapeRegistry) {
	r.Register(ArrowNormal, MeshCreator(ArrowNormal, mesh.Arrow))
	r.Register(ArrowInverted, MeshCreator(ArrowInverted, mesh.InvertedArrow))
	r.Register(ArrowDiamond, MeshCreator(ArrowDiamond, mesh.Diamond))
	r.Register(ArrowDot, MeshCreator(ArrowDot, func(size float64) (*mesh.Mesh, error) {
		return mesh.Disc(size, mesh.DefaultTessellation)
	}))
	r.Register(ArrowBox, MeshCreator(ArrowBox, mesh.Plane))
	r.Register(ArrowTee, MeshCreator(ArrowTee, mesh.Tee))
}
