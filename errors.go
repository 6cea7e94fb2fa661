package graphmesh

import (
	"fmt"

	"go.trai.ch/zerr"
)

// Sentinel errors for graphmesh.
var (
	// ErrMissingShapeType is returned when create options carry no shape type.
	ErrMissingShapeType = zerr.New("graphmesh: missing shape type: create options must set shape.type")

	// ErrNilBuilder is returned by TemplateCache.Get when no builder is given.
	ErrNilBuilder = zerr.New("graphmesh: nil template builder")

	// ErrNilTemplate is returned when a builder or creator returns no template.
	ErrNilTemplate = zerr.New("graphmesh: builder returned a nil template")

	// ErrTemplateFrozen is returned when a frozen template is modified.
	ErrTemplateFrozen = zerr.New("graphmesh: template is frozen")
)

// UnknownShapeError indicates a shape type with no registered creator.
type UnknownShapeError struct {
	// Kind is the element kind of the factory that failed the lookup.
	Kind string
	// Type is the offending shape type.
	Type string
}

func (e *UnknownShapeError) Error() string {
	return fmt.Sprintf("graphmesh: unknown %s shape type %q", e.Kind, e.Type)
}
