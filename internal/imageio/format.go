// Package imageio loads and saves raster images for the splash generator.
//
// Decoding sniffs the format from the file header. Encoding picks the format
// from the output file extension.
package imageio

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an output encoding.
type Format uint8

const (
	// FormatPNG is lossless and keeps the alpha channel. This is the usual
	// choice for splash assets.
	FormatPNG Format = iota

	// FormatJPEG is lossy and drops alpha.
	FormatJPEG

	// FormatGIF is palettized.
	FormatGIF

	// FormatBMP keeps alpha when the image is not opaque.
	FormatBMP

	// FormatTIFF is lossless and keeps alpha.
	FormatTIFF
)

const unknownFormat = "Unknown"

// String returns a short name for the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	case FormatGIF:
		return "GIF"
	case FormatBMP:
		return "BMP"
	case FormatTIFF:
		return "TIFF"
	default:
		return unknownFormat
	}
}

var extFormats = map[string]Format{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

// FormatFromPath infers the output format from the extension of path.
// Matching is case-insensitive.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	f, ok := extFormats[ext]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return f, nil
}
