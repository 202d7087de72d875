// Package splash builds splash-screen assets by tiling a small image across
// a large transparent canvas.
//
// # Overview
//
// A Tiler repeats the source image from the top-left corner every source
// width pixels horizontally and every source height pixels vertically until
// the canvas is covered. Tiles overwrite the canvas (no blending) and tiles on
// the right and bottom edges are clipped; nothing is scaled or wrapped.
//
// # Quick Start
//
//	cfg := splash.Config{
//	    SourcePath:   "assets/images/splash_myliste.png",
//	    OutputPath:   "assets/images/splash4096.png",
//	    TargetWidth:  4096,
//	    TargetHeight: 4096,
//	}
//	res, err := splash.Generate(cfg)
//
// Compose does the same work in memory and returns the canvas.
//
// # Errors
//
// Generate returns *LoadError when the source cannot be read or decoded and
// *WriteError when the output cannot be encoded or written. Both unwrap to
// the underlying cause. A source with zero width or height is rejected with
// ErrDegenerateTile.
//
// # Output formats
//
// The output format follows the output file extension: .png, .jpg/.jpeg,
// .gif, .bmp or .tif/.tiff. PNG keeps the alpha channel and is the usual
// choice.
package splash
