package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/vetclinic/clinic-records/internal/httperr"
)

func encodePNG(t *testing.T, w, h int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 80, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return &buf
}

func TestNormalizePhotoProducesWebP(t *testing.T) {
	out, err := NormalizePhoto(encodePNG(t, 64, 48))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}

	// WebP files are RIFF containers.
	if len(out) < 12 || string(out[0:4]) != "RIFF" || string(out[8:12]) != "WEBP" {
		t.Fatalf("output is not webp: % x", out[:12])
	}
}

func TestNormalizePhotoRejectsGarbage(t *testing.T) {
	_, err := NormalizePhoto(strings.NewReader("definitely not an image"))
	if !httperr.IsBusiness(err, "invalid_image") {
		t.Fatalf("expected invalid_image, got %v", err)
	}
}

func TestDownscaleKeepsAspect(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1600, 800))
	dst := downscale(src, MaxPhotoDimension)

	b := dst.Bounds()
	if b.Dx() != MaxPhotoDimension {
		t.Fatalf("width: %d", b.Dx())
	}
	if b.Dy() != MaxPhotoDimension/2 {
		t.Fatalf("height: %d", b.Dy())
	}
}

func TestDownscaleLeavesSmallImages(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 60))
	dst := downscale(src, MaxPhotoDimension)
	if dst != image.Image(src) {
		t.Fatal("small image should pass through untouched")
	}
}
