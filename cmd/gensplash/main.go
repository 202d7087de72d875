// Command gensplash tiles a small image across a large transparent canvas
// and writes the result as a splash-screen asset.
//
// Usage:
//
//	gensplash [flags]
//
// With no flags it reads assets/images/splash_myliste.png and writes the
// 4096x4096 assets/images/splash4096.png.
package main

import (
	"errors"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/gogpu/splash"
	"github.com/gogpu/splash/internal/i18n"
	"github.com/gogpu/splash/internal/imageio"
)

var compressionLevels = map[string]png.CompressionLevel{
	"default": png.DefaultCompression,
	"none":    png.NoCompression,
	"speed":   png.BestSpeed,
	"best":    png.BestCompression,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type flags struct {
	config      string
	source      string
	output      string
	width       int
	height      int
	workers     int
	compression string
	jpegQuality int
	lang        string
	verbose     bool
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "gensplash: ", 0)

	fs := pflag.NewFlagSet("gensplash", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	def := splash.DefaultConfig()
	var f flags
	fs.StringVarP(&f.config, "config", "c", "", "YAML configuration file")
	fs.StringVarP(&f.source, "source", "s", def.SourcePath, "tile image to repeat")
	fs.StringVarP(&f.output, "output", "o", def.OutputPath, "output image (extension selects the format)")
	fs.IntVarP(&f.width, "width", "W", def.TargetWidth, "canvas width in pixels")
	fs.IntVarP(&f.height, "height", "H", def.TargetHeight, "canvas height in pixels")
	fs.IntVarP(&f.workers, "workers", "j", 0, "paste goroutines (0 = GOMAXPROCS)")
	fs.StringVar(&f.compression, "compression", "default", "PNG compression: default, none, speed or best")
	fs.IntVar(&f.jpegQuality, "jpeg-quality", imageio.DefaultJPEGQuality, "JPEG quality 1-100, for .jpg output")
	fs.StringVar(&f.lang, "lang", "fr", "language of the confirmation message")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress to stderr")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		logger.Print(err)
		return 2
	}
	if fs.NArg() > 0 {
		logger.Printf("unexpected arguments: %v", fs.Args())
		return 2
	}

	cfg, err := resolveConfig(fs, f)
	if err != nil {
		logger.Print(err)
		return 1
	}

	level, ok := compressionLevels[f.compression]
	if !ok {
		logger.Printf("unknown compression %q", f.compression)
		return 2
	}

	tag, err := i18n.ParseLang(f.lang)
	if err != nil {
		logger.Print(err)
		return 2
	}

	if f.jpegQuality < 1 || f.jpegQuality > 100 {
		logger.Printf("jpeg quality %d out of range 1-100", f.jpegQuality)
		return 2
	}

	if f.verbose {
		splash.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer splash.SetLogger(nil)
	}

	res, err := splash.Generate(cfg,
		splash.WithCompression(level),
		splash.WithJPEGQuality(f.jpegQuality))
	if err != nil {
		logger.Print(err)
		return 1
	}

	fmt.Fprintln(stdout, i18n.Confirmation(i18n.Printer(tag), res.OutputPath))
	return 0
}

// resolveConfig layers explicitly set flags over the config file, which is
// itself layered over the defaults.
func resolveConfig(fs *pflag.FlagSet, f flags) (splash.Config, error) {
	cfg := splash.DefaultConfig()
	if f.config != "" {
		var err error
		if cfg, err = splash.LoadConfig(f.config); err != nil {
			return splash.Config{}, err
		}
	}

	if fs.Changed("source") {
		cfg.SourcePath = f.source
	}
	if fs.Changed("output") {
		cfg.OutputPath = f.output
	}
	if fs.Changed("width") {
		cfg.TargetWidth = f.width
	}
	if fs.Changed("height") {
		cfg.TargetHeight = f.height
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	return cfg, nil
}
