package scene

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
)

// CubemapFaceCount is the number of faces in a cubemap.
const CubemapFaceCount = 6

// DefaultCubemapFaces lists the face files in GL target order:
// +X, -X, +Y, -Y, +Z, -Z.
var DefaultCubemapFaces = []string{
	"right.jpg",
	"left.jpg",
	"top.jpg",
	"bottom.jpg",
	"front.jpg",
	"back.jpg",
}

// CubemapFaces holds decoded RGBA pixels per face. A nil entry is a face
// that failed to load.
type CubemapFaces [CubemapFaceCount]*image.RGBA

// Loaded reports how many faces decoded successfully.
func (f CubemapFaces) Loaded() int {
	n := 0
	for _, img := range f {
		if img != nil {
			n++
		}
	}
	return n
}

var ErrNoCubemapFaces = errors.New("no cubemap face could be loaded")

// LoadCubemapFaces decodes the named files from dir. A face that cannot be
// read is logged and left nil; only a cubemap with no faces at all is an
// error.
func LoadCubemapFaces(logger *slog.Logger, dir string, names []string) (CubemapFaces, error) {
	var faces CubemapFaces
	if len(names) != CubemapFaceCount {
		return faces, fmt.Errorf("cubemap needs %d faces, got %d", CubemapFaceCount, len(names))
	}
	if logger == nil {
		logger = slog.Default()
	}

	for i, name := range names {
		path := filepath.Join(dir, name)
		img, err := LoadRGBA(path)
		if err != nil {
			logger.Warn("cubemap face failed to load", "face", i, "path", path, "error", err)
			continue
		}
		faces[i] = img
	}

	if faces.Loaded() == 0 {
		return faces, ErrNoCubemapFaces
	}
	return faces, nil
}

// LoadRGBA reads a PNG or JPEG file and converts it to RGBA8.
func LoadRGBA(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture %q: %w", path, err)
	}

	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba, nil
	}

	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba, nil
}
