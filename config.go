package splash

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Default configuration, matching the original splash asset layout.
const (
	DefaultSourcePath   = "assets/images/splash_myliste.png"
	DefaultOutputPath   = "assets/images/splash4096.png"
	DefaultTargetWidth  = 4096
	DefaultTargetHeight = 4096

	// MaxTargetDimension bounds each side of the canvas. A square canvas at
	// this size takes 16 GiB of RGBA.
	MaxTargetDimension = 1 << 16
)

// Config describes one splash generation run.
type Config struct {
	// SourcePath is the tile image to repeat.
	SourcePath string `yaml:"source"`

	// OutputPath receives the composed canvas. Its extension selects the
	// output format.
	OutputPath string `yaml:"output"`

	// TargetWidth and TargetHeight are the canvas size in pixels.
	TargetWidth  int `yaml:"width"`
	TargetHeight int `yaml:"height"`

	// Workers is the number of paste goroutines. Zero means GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`
}

// DefaultConfig returns the configuration of the stock 4096x4096 splash.
func DefaultConfig() Config {
	return Config{
		SourcePath:   DefaultSourcePath,
		OutputPath:   DefaultOutputPath,
		TargetWidth:  DefaultTargetWidth,
		TargetHeight: DefaultTargetHeight,
	}
}

// Validate checks that both paths are set and the target size is positive,
// at most MaxTargetDimension per side, and addressable as an RGBA buffer.
func (c Config) Validate() error {
	if c.SourcePath == "" {
		return fmt.Errorf("%w: source", ErrMissingPath)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("%w: output", ErrMissingPath)
	}
	w, h := c.TargetWidth, c.TargetHeight
	if w <= 0 || h <= 0 || w > MaxTargetDimension || h > MaxTargetDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	// Matters where int is 32 bits.
	if uint64(w)*uint64(h)*4 > math.MaxInt {
		return fmt.Errorf("%w: %dx%d exceeds addressable memory", ErrInvalidSize, w, h)
	}
	return nil
}

// LoadConfig reads a YAML configuration file on top of DefaultConfig.
// Keys missing from the file keep their default; unknown keys are an error.
// Relative paths in the file are resolved against the file's directory.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("splash: read config: %w", err)
	}

	var raw Config
	if err := yaml.UnmarshalStrict(data, &raw); err != nil {
		return Config{}, fmt.Errorf("splash: parse config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	base := filepath.Dir(path)
	if raw.SourcePath != "" {
		cfg.SourcePath = resolve(base, raw.SourcePath)
	}
	if raw.OutputPath != "" {
		cfg.OutputPath = resolve(base, raw.OutputPath)
	}
	if raw.TargetWidth != 0 {
		cfg.TargetWidth = raw.TargetWidth
	}
	if raw.TargetHeight != 0 {
		cfg.TargetHeight = raw.TargetHeight
	}
	cfg.Workers = raw.Workers

	return cfg, nil
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}
