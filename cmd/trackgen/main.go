// Package main is the entry point for the halfpipe track generator.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/marbleworks/halfpipe/internal/config"
	"github.com/marbleworks/halfpipe/internal/export"
	"github.com/marbleworks/halfpipe/internal/logger"
	"github.com/marbleworks/halfpipe/pkg/collider"
	"github.com/marbleworks/halfpipe/pkg/math"
	"github.com/marbleworks/halfpipe/pkg/track"
)

var (
	flagStraight = flag.Bool("straight", false, "Build a straight tube instead of a random walk")
	flagLength   = flag.Float64("length", 0, "Straight tube length (0 = segments * segment length)")
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	if config.InitConfigRequested() {
		path, err := config.InitDefault()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote default config to %s\n", path)
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Halfpipe Track Generator ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	start := time.Now()
	logger.Info("generating track",
		zap.Uint64("seed", cfg.Track.Seed),
		zap.Int("segments", cfg.Track.Segments),
		zap.Int("subdivisions", cfg.Track.Subdivisions),
		zap.Float32("radius", cfg.Track.Radius),
		zap.Bool("straight", *flagStraight),
	)

	mesh, err := buildMesh(cfg)
	if err != nil {
		logger.Error("failed to build mesh", zap.Error(err))
		os.Exit(1)
	}

	tri, err := collider.FromMesh(mesh)
	if err != nil {
		logger.Error("failed to extract collider", zap.Error(err))
		os.Exit(1)
	}

	if err := export.WriteOBJFile(cfg.Output.Path, mesh); err != nil {
		logger.Error("failed to write mesh",
			zap.String("path", cfg.Output.Path), zap.Error(err))
		os.Exit(1)
	}

	min, max := mesh.Bounds()
	logger.Info("track written",
		zap.String("output", cfg.Output.Path),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
		zap.Int("collider_triangles", len(tri.Triangles)),
		zap.Float32("min_y", min.Y),
		zap.Float32("max_y", max.Y),
		zap.Duration("elapsed", time.Since(start)),
	)
}

// buildMesh constructs either a straight tube or the seeded random walk
// from the track settings. The walk starts at the origin heading -Z, the
// same direction a straight tube runs.
func buildMesh(cfg *config.Config) (*track.Mesh, error) {
	if *flagStraight {
		length := float32(*flagLength)
		if length <= 0 {
			length = cfg.Track.SegmentLength * float32(cfg.Track.Segments)
		}
		hc := track.HalfCylinderFromRadiusAndLength(cfg.Track.Radius, length)
		hc.Subdivisions = cfg.Track.Subdivisions
		return hc.BuildMesh()
	}

	path := track.HalfCylinderPath{
		Forward:       math.Vec3{Z: -1},
		Radius:        cfg.Track.Radius,
		SegmentLength: cfg.Track.SegmentLength,
		Segments:      cfg.Track.Segments,
		Subdivisions:  cfg.Track.Subdivisions,
		Seed:          cfg.Track.Seed,
		YawRange: track.AngleRange{
			Min: math.Radians(cfg.Track.Yaw.MinDeg),
			Max: math.Radians(cfg.Track.Yaw.MaxDeg),
		},
		PitchRange: track.AngleRange{
			Min: math.Radians(cfg.Track.Pitch.MinDeg),
			Max: math.Radians(cfg.Track.Pitch.MaxDeg),
		},
	}
	return path.BuildMesh()
}
