package asset

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DocumentDPI is the rasterization density for vector artwork
const DocumentDPI = 150

// ErrUnsupportedImage is returned for extensions no decoder handles
var ErrUnsupportedImage = errors.New("unsupported image format")

// documentExts are rasterized through MuPDF
var documentExts = map[string]bool{
	".pdf":  true,
	".svg":  true,
	".xps":  true,
	".epub": true,
	".cbz":  true,
}

// rasterExts are decoded through the image package registry
var rasterExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// LoadImage decodes the brain artwork, documents render their first page
func LoadImage(path string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case rasterExts[ext]:
		return loadRaster(path)
	case documentExts[ext]:
		return loadDocument(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedImage)
	}
}

func loadRaster(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func loadDocument(path string) (image.Image, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, fmt.Errorf("%s: document has no pages", path)
	}
	img, err := doc.ImageDPI(0, DocumentDPI)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", path, err)
	}
	return img, nil
}

// Aspect returns width/height of img, 1 for empty images
func Aspect(img image.Image) float64 {
	if img == nil {
		return 1
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return 1
	}
	return float64(b.Dx()) / float64(b.Dy())
}
