package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/image/draw"
)

// Downsample returns the framebuffer scaled down by factor with Catmull-Rom
// filtering. Rendering at factor x the output size and downsampling smooths
// the Bresenham lines. A factor below 2 returns the image unscaled.
func (fb *Framebuffer) Downsample(factor int) *image.RGBA {
	src := fb.ToImage()
	if factor < 2 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, fb.Width/factor, fb.Height/factor))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// SaveImage writes img to path as PNG or WebP, chosen by file extension.
func SaveImage(path string, img image.Image) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".webp" {
		return fmt.Errorf("unsupported image format %q (use .png or .webp)", ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext {
	case ".webp":
		if err := nativewebp.Encode(f, img, nil); err != nil {
			return fmt.Errorf("webp encode: %w", err)
		}
	default:
		if err := png.Encode(f, img); err != nil {
			return fmt.Errorf("png encode: %w", err)
		}
	}
	return f.Close()
}

// Save writes the framebuffer to path, downsampled by supersample.
func (fb *Framebuffer) Save(path string, supersample int) error {
	return SaveImage(path, fb.Downsample(supersample))
}
