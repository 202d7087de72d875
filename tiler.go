package splash

import (
	"image"

	"github.com/dustin/go-humanize"

	"github.com/gogpu/splash/internal/imageio"
	"github.com/gogpu/splash/internal/parallel"
	"github.com/gogpu/splash/internal/tile"
)

// Result describes a written splash image.
type Result struct {
	OutputPath string
	Width      int
	Height     int

	// Tiles is the number of paste operations, clipped tiles included.
	Tiles int

	// Bytes is the size of the encoded output file.
	Bytes int64
}

// Tiler composes and writes splash images for one Config.
//
// Thread safety: a Tiler holds no mutable state and may be shared;
// each Compose call allocates its own canvas.
type Tiler struct {
	cfg  Config
	opts tilerOptions
}

// New validates cfg and returns a Tiler.
func New(cfg Config, opts ...Option) (*Tiler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions(cfg)
	for _, opt := range opts {
		opt(&o)
	}
	return &Tiler{cfg: cfg, opts: o}, nil
}

// Config returns the configuration the Tiler was built with.
func (t *Tiler) Config() Config {
	return t.cfg
}

// Compose tiles src across a new transparent canvas of the target size.
// src is only read.
func (t *Tiler) Compose(src image.Image) (*image.NRGBA, error) {
	canvas, _, err := t.compose(src)
	return canvas, err
}

func (t *Tiler) compose(src image.Image) (*image.NRGBA, tile.Grid, error) {
	sb := src.Bounds()
	if sb.Dx() <= 0 || sb.Dy() <= 0 {
		return nil, tile.Grid{}, ErrDegenerateTile
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, t.cfg.TargetWidth, t.cfg.TargetHeight))
	grid, err := tile.NewGrid(canvas.Bounds(), sb.Dx(), sb.Dy())
	if err != nil {
		return nil, tile.Grid{}, err
	}

	pattern := asNRGBA(src)
	jobs := make([]parallel.Job, grid.Rows())
	for j := range grid.Rows() {
		row := grid.Row(j)
		jobs[j] = func() {
			for _, p := range row {
				tile.Paste(canvas, pattern, p)
			}
		}
	}

	Logger().Debug("splash: composing",
		"tile", sb.Size().String(),
		"cols", grid.Cols(),
		"rows", grid.Rows(),
		"workers", t.opts.workers)

	if t.opts.workers == 1 {
		for _, job := range jobs {
			job()
		}
	} else {
		pool := parallel.NewWorkerPool(t.opts.workers)
		defer pool.Close()
		pool.ExecuteAll(jobs)
	}

	return canvas, grid, nil
}

// asNRGBA returns src as straight-alpha NRGBA, converting if needed.
func asNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	tile.Paste(n, src, image.Point{})
	return n
}

// Generate loads the source image, composes the canvas and writes it to the
// output path.
func (t *Tiler) Generate() (Result, error) {
	log := Logger()

	src, err := imageio.Load(t.cfg.SourcePath)
	if err != nil {
		return Result{}, &LoadError{Path: t.cfg.SourcePath, Err: err}
	}
	log.Debug("splash: source loaded",
		"path", t.cfg.SourcePath,
		"width", src.Bounds().Dx(),
		"height", src.Bounds().Dy())

	canvas, grid, err := t.compose(src)
	if err != nil {
		return Result{}, err
	}

	n, err := imageio.Save(t.cfg.OutputPath, canvas, t.opts.save)
	if err != nil {
		return Result{}, &WriteError{Path: t.cfg.OutputPath, Err: err}
	}

	res := Result{
		OutputPath: t.cfg.OutputPath,
		Width:      t.cfg.TargetWidth,
		Height:     t.cfg.TargetHeight,
		Tiles:      grid.Count(),
		Bytes:      n,
	}
	log.Info("splash: written",
		"path", res.OutputPath,
		"width", res.Width,
		"height", res.Height,
		"tiles", res.Tiles,
		"size", humanize.Bytes(uint64(n)))

	return res, nil
}

// Generate is a shortcut for New followed by Tiler.Generate.
func Generate(cfg Config, opts ...Option) (Result, error) {
	t, err := New(cfg, opts...)
	if err != nil {
		return Result{}, err
	}
	return t.Generate()
}
