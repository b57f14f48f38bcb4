package track

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/marbleworks/halfpipe/pkg/math"
)

// Mesh construction errors.
var (
	ErrInvalidSubdivisions = errors.New("subdivisions must be at least 1")
	ErrInvalidRadius       = errors.New("radius must be positive")
	ErrInvalidSegments     = errors.New("segment count must not be negative")
)

// HalfCylinder describes a straight half-pipe tube between two fixed
// points. The cross-section is a half circle of Radius traced in
// Subdivisions arc steps, opening toward world up.
type HalfCylinder struct {
	Start        math.Vec3
	End          math.Vec3
	Radius       float32
	Subdivisions int
}

// DefaultHalfCylinder returns a unit tube: length 1 along Z, radius 0.5,
// 10 subdivisions.
func DefaultHalfCylinder() HalfCylinder {
	return HalfCylinder{
		Start:        math.Vec3{Z: -0.5},
		End:          math.Vec3{Z: 0.5},
		Radius:       0.5,
		Subdivisions: 10,
	}
}

// HalfCylinderFromScale returns the unit tube scaled uniformly: endpoints
// and radius multiplied by scale.
func HalfCylinderFromScale(scale float32) HalfCylinder {
	hc := DefaultHalfCylinder()
	hc.Start = hc.Start.Scale(scale)
	hc.End = hc.End.Scale(scale)
	hc.Radius *= scale
	return hc
}

// HalfCylinderFromRadiusAndLength returns a tube of the given total length
// along Z with an explicit radius.
func HalfCylinderFromRadiusAndLength(radius, length float32) HalfCylinder {
	hc := DefaultHalfCylinder()
	hc.Start = hc.Start.Scale(length)
	hc.End = hc.End.Scale(length)
	hc.Radius = radius
	return hc
}

// BuildMesh triangulates the tube as two stitched cross-section rings.
func (hc HalfCylinder) BuildMesh() (*Mesh, error) {
	if err := validateCrossSection(hc.Subdivisions, hc.Radius); err != nil {
		return nil, err
	}
	forward := hc.End.Sub(hc.Start).Normalize()
	right := lateral(forward, hc.Radius)
	rings := []ring{
		{center: hc.Start, forward: forward, right: right},
		{center: hc.End, forward: forward, right: right},
	}
	return tubeMesh(rings, hc.Subdivisions), nil
}

// HalfCylinderPath describes a half-pipe tube swept along a seeded random
// walk: starting at Start heading Forward, each segment turns by a
// yaw/pitch pair drawn from the ranges and advances SegmentLength.
type HalfCylinderPath struct {
	Start         math.Vec3
	Forward       math.Vec3
	Radius        float32
	SegmentLength float32
	Segments      int
	Subdivisions  int
	Seed          uint64
	YawRange      AngleRange
	PitchRange    AngleRange
}

// BuildMesh walks the path and triangulates the swept tube. The result is
// a pure function of the configuration: the same struct builds a
// bit-identical mesh every time. Segments == 0 yields a single ring with
// no triangles.
func (p HalfCylinderPath) BuildMesh() (*Mesh, error) {
	if err := validateCrossSection(p.Subdivisions, p.Radius); err != nil {
		return nil, err
	}
	if p.Segments < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSegments, p.Segments)
	}
	turns, err := NewTurnGenerator(p.Seed, p.YawRange, p.PitchRange)
	if err != nil {
		return nil, err
	}

	position := p.Start
	forward := p.Forward.Normalize()
	rings := make([]ring, 0, p.Segments+1)
	for k := 0; k <= p.Segments; k++ {
		forward = turns.Next().Rotate(forward)
		rings = append(rings, ring{
			center:  position,
			forward: forward,
			right:   lateral(forward, p.Radius),
		})
		position = position.Add(forward.Scale(p.SegmentLength))
	}
	return tubeMesh(rings, p.Subdivisions), nil
}

func validateCrossSection(subdivisions int, radius float32) error {
	if subdivisions < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidSubdivisions, subdivisions)
	}
	if !(radius > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	return nil
}

// ring is one cross-section of a tube: where it sits, the direction the
// tube runs through it, and the radius-scaled lateral vector its arc
// starts from.
type ring struct {
	center  math.Vec3
	forward math.Vec3
	right   math.Vec3
}

// lateral derives a ring's starting arc vector, perpendicular to both
// world up and the ring's forward axis and scaled to the tube radius.
// When forward is parallel to world up (or zero) the cross product
// degenerates and the ring collapses to its center; the zero-vector
// fallback keeps NaN out of the mesh.
func lateral(forward math.Vec3, radius float32) math.Vec3 {
	return worldUp.Cross(forward.Neg()).Normalize().Scale(radius)
}

// tubeMesh emits ring vertices and stitches consecutive rings into quads.
// Vertices are laid out ring-major: ring k's vertex i has id
// k*(subdivisions+1)+i, its offset is the ring's right vector rotated
// about the forward axis by pi*i/subdivisions (half a turn, so the
// cross-section is an arc, not a full circle), and its normal is the
// negated normalized offset. Each quad splits into two triangles wound to
// agree with those normals.
func tubeMesh(rings []ring, subdivisions int) *Mesh {
	ringVerts := subdivisions + 1
	indexCount := 0
	if len(rings) > 1 {
		indexCount = (len(rings) - 1) * subdivisions * 6
	}

	m := &Mesh{
		Positions: make([]math.Vec3, 0, len(rings)*ringVerts),
		Normals:   make([]math.Vec3, 0, len(rings)*ringVerts),
		TexCoords: make([]math.Vec2, 0, len(rings)*ringVerts),
		Indices:   make([]uint32, 0, indexCount),
	}

	for _, r := range rings {
		for i := 0; i <= subdivisions; i++ {
			angle := gomath.Pi * float32(i) / float32(subdivisions)
			offset := math.QuatFromAxisAngle(r.forward, angle).Rotate(r.right)
			m.Positions = append(m.Positions, r.center.Add(offset))
			m.Normals = append(m.Normals, offset.Normalize().Neg())
			m.TexCoords = append(m.TexCoords, math.Vec2{})
		}
	}

	stride := uint32(ringVerts)
	for k := 0; k+1 < len(rings); k++ {
		base := uint32(k) * stride
		for j := uint32(0); j < uint32(subdivisions); j++ {
			o := base + j
			m.Indices = append(m.Indices,
				o+1, o, o+stride,
				o+stride, o+stride+1, o+1,
			)
		}
	}
	return m
}
