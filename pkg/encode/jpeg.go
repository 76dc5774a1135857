package encode

import (
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const jpegQuality = 95

// isDirectJPEG reports whether the file can go onto a page without
// re-encoding.
func isDirectJPEG(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".jpg" || ext == ".jpeg"
}

// reencodeJPEG decodes src (JPEG, PNG or WebP) and writes it to dst as an
// opaque JPEG. Alpha is dropped by copying onto an RGBA canvas; JPEG encoding
// ignores the channel.
func reencodeJPEG(src, dst string) error {
	f, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	rgb := image.NewRGBA(img.Bounds())
	draw.Copy(rgb, image.Point{}, img, img.Bounds(), draw.Src, nil)

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create jpeg: %w", err)
	}

	if err := jpeg.Encode(out, rgb, &jpeg.Options{Quality: jpegQuality}); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("encode jpeg: %w", err)
	}

	return out.Close()
}

// stageJPEGs prepares page images for packing: JPEGs pass through untouched,
// everything else is re-encoded into scratch. Files that vanished between
// discovery and encode are skipped, matching the collector's tolerance of
// transient filesystem state.
func stageJPEGs(images []string, scratch string) ([]string, error) {
	staged := make([]string, 0, len(images))
	for i, p := range images {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if isDirectJPEG(p) {
			staged = append(staged, p)
			continue
		}
		dst := filepath.Join(scratch, fmt.Sprintf("%04d.jpg", i))
		if err := reencodeJPEG(p, dst); err != nil {
			return nil, fmt.Errorf("page %s: %w", p, err)
		}
		staged = append(staged, dst)
	}
	return staged, nil
}

// imageSize returns the pixel dimensions of an image file.
func imageSize(path string) (float64, float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("read dimensions of %s: %w", path, err)
	}
	return float64(cfg.Width), float64(cfg.Height), nil
}
