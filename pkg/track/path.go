package track

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/marbleworks/halfpipe/pkg/math"
)

// ErrEmptyAngleRange reports an angle interval with no width.
var ErrEmptyAngleRange = errors.New("empty angle range: min must be less than max")

// AngleRange is a half-open interval [Min, Max) of radians.
type AngleRange struct {
	Min float32
	Max float32
}

// Validate checks that the interval is non-empty.
func (r AngleRange) Validate() error {
	if !(r.Min < r.Max) {
		return fmt.Errorf("%w: [%v, %v)", ErrEmptyAngleRange, r.Min, r.Max)
	}
	return nil
}

// sample draws a uniform value from [r.Min, r.Max).
func (r AngleRange) sample(rng *rand.Rand) float32 {
	return r.Min + (r.Max-r.Min)*rng.Float32()
}

// worldUp is the fixed vertical reference: yaw turns about it and ring
// lateral vectors are derived from it.
var worldUp = math.Vec3{Y: 1}

// worldRight is the lateral axis pitch rotations are built around.
var worldRight = math.Vec3{X: 1}

// TurnGenerator produces the turning decisions of a random walk: an
// unbounded sequence of yaw/pitch rotations drawn from two bounded ranges.
// Each generator exclusively owns its random state, so two generators built
// with the same seed and ranges yield bit-identical sequences. A sequence
// cannot be rewound, only rebuilt from its seed.
type TurnGenerator struct {
	rng        *rand.Rand
	yawRange   AngleRange
	pitchRange AngleRange
}

// NewTurnGenerator creates a generator for the given seed and angle ranges.
func NewTurnGenerator(seed uint64, yawRange, pitchRange AngleRange) (*TurnGenerator, error) {
	if err := yawRange.Validate(); err != nil {
		return nil, fmt.Errorf("yaw range: %w", err)
	}
	if err := pitchRange.Validate(); err != nil {
		return nil, fmt.Errorf("pitch range: %w", err)
	}
	return &TurnGenerator{
		rng:        rand.New(rand.NewSource(seed)),
		yawRange:   yawRange,
		pitchRange: pitchRange,
	}, nil
}

// Next returns the next turn. Yaw is always drawn before pitch, and pitch
// is applied in the yawed frame, so the walk banks into its turns instead
// of pitching about a fixed world axis.
func (g *TurnGenerator) Next() math.Quat {
	yaw := g.yawRange.sample(g.rng)
	pitch := g.pitchRange.sample(g.rng)
	return math.QuatFromAxisAngle(worldUp, yaw).Mul(math.QuatFromAxisAngle(worldRight, pitch))
}
