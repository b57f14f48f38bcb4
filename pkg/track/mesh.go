// Package track builds half-pipe track geometry: seeded random-walk paths
// and triangulated half-cylinder tube meshes swept along them.
package track

import (
	"github.com/marbleworks/halfpipe/pkg/math"
)

// Mesh holds generated tube geometry ready for rendering or collider
// extraction. Positions, Normals and TexCoords are parallel arrays indexed
// by vertex id; Indices lists triangles as groups of three vertex ids,
// wound to face the side the vertex normals point to. A Mesh is built in
// one call and treated as read-only afterward.
type Mesh struct {
	Positions []math.Vec3
	Normals   []math.Vec3
	TexCoords []math.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of complete triangles described by Indices.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of all vertex positions.
// An empty mesh reports zero bounds.
func (m *Mesh) Bounds() (min, max math.Vec3) {
	if len(m.Positions) == 0 {
		return math.Vec3{}, math.Vec3{}
	}
	min, max = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return min, max
}
