// Package scenegraph defines the owned node tree for the telescope model
// and the resource interfaces the lifecycle manager releases.
//
// The tree is content supplied by geometry/material collaborators at scene
// build time; this package never constructs GPU objects itself. Nodes may
// share materials (and, less commonly, geometries): the same Material
// value referenced from several mesh nodes is legal and expected, which is
// why disposal is deduplicated by identity in the lifecycle package.
package scenegraph

// Resource is a GPU-resident object that must be released exactly once.
//
// Implementations must be pointer-shaped (a pointer, or a struct holding
// one) so that identity comparison in the lifecycle manager's disposed set
// is well defined.
type Resource interface {
	// Release frees the underlying GPU object. Callers go through
	// lifecycle.Manager, which guarantees Release runs at most once per
	// resource.
	Release()
}

// Geometry is a vertex/index bundle for one detail tier of a component.
type Geometry interface {
	Resource

	// VertexCount reports the tier's vertex count, used by telemetry to
	// show how much detail was shed.
	VertexCount() int
}

// Material is a shading parameter and texture bundle.
type Material interface {
	Resource

	// Label returns the debug label for the material.
	Label() string
}

// Node is one element of the scene tree. Not every node carries geometry
// or a material; group nodes hold only children.
type Node struct {
	Name     string
	Geometry Geometry
	Material Material
	Children []*Node
}

// NewNode creates a leaf node with no geometry or material.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// AddChild appends a child and returns it for chaining.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// Walk visits n and every node reachable from it, depth first.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}
