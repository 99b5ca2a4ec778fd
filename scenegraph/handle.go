package scenegraph

// MeshGeometry adapts a collaborator-owned geometry buffer to the
// Geometry interface. The release callback drops the underlying GPU
// buffers; it is invoked at most once by the lifecycle manager.
type MeshGeometry struct {
	label       string
	vertexCount int
	release     func()
}

// NewMeshGeometry wraps a geometry handle. release may be nil for
// CPU-only tiers.
func NewMeshGeometry(label string, vertexCount int, release func()) *MeshGeometry {
	return &MeshGeometry{
		label:       label,
		vertexCount: vertexCount,
		release:     release,
	}
}

// VertexCount returns the tier's vertex count.
func (g *MeshGeometry) VertexCount() int { return g.vertexCount }

// Label returns the debug label.
func (g *MeshGeometry) Label() string { return g.label }

// Release invokes the collaborator's release callback.
func (g *MeshGeometry) Release() {
	if g.release != nil {
		g.release()
	}
}

// BasicMaterial adapts a collaborator-owned material to the Material
// interface.
type BasicMaterial struct {
	label   string
	release func()
}

// NewBasicMaterial wraps a material handle. release may be nil.
func NewBasicMaterial(label string, release func()) *BasicMaterial {
	return &BasicMaterial{label: label, release: release}
}

// Label returns the debug label.
func (m *BasicMaterial) Label() string { return m.label }

// Release invokes the collaborator's release callback.
func (m *BasicMaterial) Release() {
	if m.release != nil {
		m.release()
	}
}

var (
	_ Geometry = (*MeshGeometry)(nil)
	_ Material = (*BasicMaterial)(nil)
)
