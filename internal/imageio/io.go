package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Decode-only format.
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the output extension has no encoder.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when the input file is empty.
	ErrEmptyData = errors.New("imageio: empty data")
)

// DefaultFileMode is the permission of a newly created output file.
const DefaultFileMode os.FileMode = 0o644

// DefaultJPEGQuality is used when SaveOptions.JPEGQuality is zero.
const DefaultJPEGQuality = 90

// SaveOptions tunes the encoders. The zero value is usable.
type SaveOptions struct {
	// JPEGQuality is clamped to 1-100. Zero means DefaultJPEGQuality.
	JPEGQuality int

	// PNGCompression selects the zlib level for PNG output.
	PNGCompression png.CompressionLevel
}

// Load opens path and decodes it, detecting the format from its contents.
// The file is closed whether or not decoding succeeds.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("imageio: stat file: %w", err)
	}
	if info.Size() == 0 {
		return nil, ErrEmptyData
	}

	return Decode(f)
}

// Decode decodes an image from r using any registered decoder.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return img, nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format Format, opts SaveOptions) error {
	var err error
	switch format {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: opts.PNGCompression}
		err = enc.Encode(w, img)
	case FormatJPEG:
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality(opts.JPEGQuality)})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %v: %w", format, err)
	}
	return nil
}

func jpegQuality(q int) int {
	if q == 0 {
		return DefaultJPEGQuality
	}
	return min(max(q, 1), 100)
}

// Save encodes img to path, choosing the format from the extension.
//
// The image is written to a temporary file next to path and renamed into
// place, so path is either left untouched or holds the complete image.
// Save returns the number of bytes written.
//
// An existing file keeps its permission bits. A new file gets
// DefaultFileMode and ignores the process umask, because the rename happens
// after the temporary file was created with mode 0600.
func Save(path string, img image.Image, opts SaveOptions) (int64, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return 0, err
	}

	path = filepath.Clean(path)
	mode := DefaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return 0, fmt.Errorf("imageio: create file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	cw := &countingWriter{w: tmp}
	if err := Encode(cw, img, format, opts); err != nil {
		return 0, err
	}
	if err := tmp.Chmod(mode); err != nil {
		return 0, fmt.Errorf("imageio: chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("imageio: close file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		committed = true
		return 0, fmt.Errorf("imageio: rename: %w", err)
	}
	committed = true

	return cw.n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
