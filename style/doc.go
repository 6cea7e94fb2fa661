// Package style loads graph style documents.
//
// A document is a YAML file holding the rendering mode, a default node size,
// a table of named styles and the nodes and edges that reference them:
//
//	mode: 2d
//	nodeSize: 1
//	styles:
//	  server:
//	    node:
//	      shape: {type: box}
//	      texture: {color: "#4682b4"}
//	    arrowhead:
//	      shape: {type: normal, size: 0.3}
//	nodes:
//	  - {id: api, style: server}
//	  - {id: db, style: server}
//	edges:
//	  - {source: api, target: db, style: server}
//
// Load and Parse validate every reference and fill in defaults, so the
// create options they return are ready for graphmesh.ElementFactory.
package style
