package scene

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writePNG(t *testing.T, path string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func faceNames() []string {
	return []string{"px.png", "nx.png", "py.png", "ny.png", "pz.png", "nz.png"}
}

func TestLoadCubemapFaces(t *testing.T) {
	dir := t.TempDir()
	for _, name := range faceNames() {
		writePNG(t, filepath.Join(dir, name), 4, 4, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	}

	faces, err := LoadCubemapFaces(discardLogger(), dir, faceNames())
	if err != nil {
		t.Fatalf("LoadCubemapFaces: %v", err)
	}
	if faces.Loaded() != CubemapFaceCount {
		t.Fatalf("expected %d faces, got %d", CubemapFaceCount, faces.Loaded())
	}
	px := faces[0].RGBAAt(1, 1)
	if px.R != 10 || px.G != 20 || px.B != 30 || px.A != 255 {
		t.Errorf("pixel: expected (10,20,30,255), got %v", px)
	}
}

func TestLoadCubemapFacesSkipsMissing(t *testing.T) {
	dir := t.TempDir()
	names := faceNames()
	for i, name := range names {
		if i == 2 {
			continue
		}
		writePNG(t, filepath.Join(dir, name), 2, 2, color.White)
	}

	faces, err := LoadCubemapFaces(discardLogger(), dir, names)
	if err != nil {
		t.Fatalf("expected partial load to succeed, got %v", err)
	}
	if faces.Loaded() != 5 {
		t.Errorf("expected 5 faces, got %d", faces.Loaded())
	}
	if faces[2] != nil {
		t.Errorf("missing face should stay nil")
	}
}

func TestLoadCubemapFacesAllMissing(t *testing.T) {
	_, err := LoadCubemapFaces(discardLogger(), t.TempDir(), faceNames())
	if !errors.Is(err, ErrNoCubemapFaces) {
		t.Errorf("expected ErrNoCubemapFaces, got %v", err)
	}
}

func TestLoadCubemapFacesWrongCount(t *testing.T) {
	if _, err := LoadCubemapFaces(discardLogger(), t.TempDir(), []string{"a.png"}); err == nil {
		t.Error("expected an error for a single face")
	}
}

func TestLoadRGBARejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.jpg")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRGBA(path); err == nil {
		t.Error("expected decode error")
	}
}

func TestDefaultCubemapFaces(t *testing.T) {
	want := []string{"right.jpg", "left.jpg", "top.jpg", "bottom.jpg", "front.jpg", "back.jpg"}
	if len(DefaultCubemapFaces) != len(want) {
		t.Fatalf("expected %d faces, got %d", len(want), len(DefaultCubemapFaces))
	}
	for i := range want {
		if DefaultCubemapFaces[i] != want[i] {
			t.Errorf("face %d: expected %s, got %s", i, want[i], DefaultCubemapFaces[i])
		}
	}
}
