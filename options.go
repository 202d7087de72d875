package splash

import (
	"image/png"

	"github.com/gogpu/splash/internal/imageio"
)

// Option configures a Tiler during creation.
//
// Example:
//
//	t, err := splash.New(cfg, splash.WithWorkers(1), splash.WithCompression(png.BestCompression))
type Option func(*tilerOptions)

type tilerOptions struct {
	workers int
	save    imageio.SaveOptions
}

func defaultOptions(cfg Config) tilerOptions {
	return tilerOptions{workers: cfg.Workers}
}

// WithWorkers sets the number of paste goroutines, overriding Config.Workers.
// One worker pastes every tile on the calling goroutine; zero or less means
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *tilerOptions) {
		o.workers = n
	}
}

// WithCompression sets the zlib level used for PNG output.
func WithCompression(level png.CompressionLevel) Option {
	return func(o *tilerOptions) {
		o.save.PNGCompression = level
	}
}

// WithJPEGQuality sets the quality (1-100) used for JPEG output.
func WithJPEGQuality(q int) Option {
	return func(o *tilerOptions) {
		o.save.JPEGQuality = q
	}
}
