// Package collider extracts physics-ready triangle soups from render
// meshes, stripping shading attributes down to vertices and index triples.
package collider

import (
	"errors"
	"fmt"

	"github.com/marbleworks/halfpipe/pkg/math"
	"github.com/marbleworks/halfpipe/pkg/track"
)

// Extraction errors.
var (
	ErrMissingPositions = errors.New("mesh has no vertex positions")
	ErrMissingIndices   = errors.New("mesh has no triangle indices")
	ErrIndexOutOfRange  = errors.New("triangle index out of range")
)

// TriMesh is a collision mesh: bare vertices plus triangle index triples.
// It owns its slices and shares no storage with the mesh it came from.
type TriMesh struct {
	Vertices  []math.Vec3
	Triangles [][3]uint32
}

// FromMesh extracts a collision mesh from a render mesh. Vertex order and
// triangle order are preserved exactly. Index triples are consumed in
// sequence; a trailing partial triple is discarded.
func FromMesh(m *track.Mesh) (*TriMesh, error) {
	if m == nil || len(m.Positions) == 0 {
		return nil, ErrMissingPositions
	}
	if len(m.Indices) == 0 {
		return nil, ErrMissingIndices
	}

	vertices := make([]math.Vec3, len(m.Positions))
	copy(vertices, m.Positions)

	limit := uint32(len(vertices))
	triangles := make([][3]uint32, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tri := [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]}
		for _, idx := range tri {
			if idx >= limit {
				return nil, fmt.Errorf("%w: %d with %d vertices", ErrIndexOutOfRange, idx, limit)
			}
		}
		triangles = append(triangles, tri)
	}
	return &TriMesh{Vertices: vertices, Triangles: triangles}, nil
}
