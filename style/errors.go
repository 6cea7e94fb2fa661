package style

import "go.trai.ch/zerr"

var (
	// ErrReadFailed is returned when the document file cannot be read.
	ErrReadFailed = zerr.New("failed to read style document")

	// ErrParseFailed is returned when the document is not valid YAML.
	ErrParseFailed = zerr.New("failed to parse style document")

	// ErrInvalidMode is returned for a mode other than "2d" or "3d".
	ErrInvalidMode = zerr.New("invalid rendering mode")

	// ErrInvalidNodeSize is returned for a negative or non-finite node size.
	ErrInvalidNodeSize = zerr.New("invalid node size")

	// ErrUnknownStyle is returned when a node or edge references a missing style.
	ErrUnknownStyle = zerr.New("unknown style")

	// ErrUnknownNode is returned when an edge references a missing node.
	ErrUnknownNode = zerr.New("unknown node")

	// ErrDuplicateNode is returned when two nodes share an id.
	ErrDuplicateNode = zerr.New("duplicate node id")

	// ErrEmptyNodeID is returned for a node without an id.
	ErrEmptyNodeID = zerr.New("node id is empty")
)
