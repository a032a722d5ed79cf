package terrain

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml"
)

var (
	// ErrInvalidDimensions is returned when a map is configured with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("terrain: map dimensions must be positive")
	// ErrInvalidDensity is returned when a non-positive density is configured.
	ErrInvalidDensity = errors.New("terrain: density must be positive")
)

// Config contains options for one generation pass. Width, Height and
// Density must be set; the remaining fields have usable defaults applied by
// the generator.
type Config struct {
	// Log is the Logger generation progress is reported on. If nil, Log is
	// set to slog.Default().
	Log *slog.Logger
	// Width and Height are the world-space extents of the map.
	Width, Height float64
	// Density scales how many scatter points are requested per grid cell.
	// The point spacing shrinks as density grows, keeping coverage even.
	Density float64
	// Seed seeds the master random source. A fixed seed reproduces the
	// whole pass, including every nested cluster, bit for bit.
	Seed int64
	// CellSize is the side length of a placement grid cell in world units.
	// Defaults to 20.
	CellSize float64
	// TileSize is the side length of one ground plane tile. Defaults to 100.
	TileSize float64
	// OriginChance is the per-point percent chance of classifying a scatter
	// point as a cluster origin. Defaults to 15.
	OriginChance int
	// Branching is the candidate count per active point of the outer
	// scatter sampler. Defaults to 50.
	Branching int
}

func (c Config) withDefaults() Config {
	if c.Log == nil {
		c.Log = slog.Default()
	}
	if c.CellSize <= 0 {
		c.CellSize = 20
	}
	if c.TileSize <= 0 {
		c.TileSize = 100
	}
	if c.OriginChance <= 0 {
		c.OriginChance = 15
	}
	if c.Branching == 0 {
		c.Branching = 50
	}
	return c
}

type configFile struct {
	Seed    int64   `toml:"seed"`
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	Density float64 `toml:"density"`
}

// LoadConfig reads a generation Config from the TOML file at the provided
// path. If the file does not exist yet, it is created with default values
// which are then returned.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		f := configFile{Seed: 0, Width: 1000, Height: 1000, Density: 1}
		data, err = toml.Marshal(f)
		if err != nil {
			return Config{}, fmt.Errorf("encode default config: %w", err)
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return Config{}, fmt.Errorf("create default config: %w", err)
		}
		return Config{Seed: f.Seed, Width: f.Width, Height: f.Height, Density: f.Density}, nil
	} else if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var f configFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return Config{Seed: f.Seed, Width: f.Width, Height: f.Height, Density: f.Density}, nil
}
