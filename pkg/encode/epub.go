package encode

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-shiori/go-epub"

	"github.com/rikuta/mangapress/pkg/scan"
	"github.com/rikuta/mangapress/pkg/utils"
)

const epubLang = "zh"

// Full-viewport page layout: no body margin, black background, image scaled
// to the viewport width.
const pageCSS = `body { margin: 0; padding: 0; background: #000; }
img { width: 100%; height: auto; display: block; margin: 0 auto; }
`

// EPUBEncoder builds a reflowable EPUB where every page is a full-bleed image
// wrapped in a minimal per-page document. The input is re-sorted by the
// numeric key of each filename, so callers may pass unordered paths.
type EPUBEncoder struct{}

func NewEPUBEncoder() *EPUBEncoder {
	return &EPUBEncoder{}
}

func (e *EPUBEncoder) Encode(images []string, outPath string, bookTitle, volumeTitle string) error {
	pages := make([]string, 0, len(images))
	for _, p := range images {
		if _, err := os.Stat(p); err == nil {
			pages = append(pages, p)
		}
	}
	if len(pages) == 0 {
		return fmt.Errorf("no images to convert")
	}

	sort.SliceStable(pages, func(i, j int) bool {
		return scan.CompareNames(filepath.Base(pages[i]), filepath.Base(pages[j])) < 0
	})

	title := volumeTitle
	if title == "" {
		title = bookTitle
	}
	if title == "" {
		title = "Manga"
	}

	book, err := epub.NewEpub(title)
	if err != nil {
		return fmt.Errorf("create epub: %w", err)
	}

	identifier := bookTitle
	if identifier == "" {
		identifier = "manga"
	}
	book.SetIdentifier(utils.SafeFilename(identifier))
	book.SetLang(epubLang)

	scratch, err := os.MkdirTemp("", "mangapress-epub-*")
	if err != nil {
		return fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	cssPath := filepath.Join(scratch, "page.css")
	if err := os.WriteFile(cssPath, []byte(pageCSS), 0644); err != nil {
		return fmt.Errorf("write page css: %w", err)
	}
	internalCSS, err := book.AddCSS(cssPath, "page.css")
	if err != nil {
		return fmt.Errorf("add page css: %w", err)
	}

	if err := e.setCover(book, pages[0], scratch); err != nil {
		return err
	}

	for i, page := range pages {
		staged := filepath.Join(scratch, fmt.Sprintf("%03d.jpg", i+1))
		if err := reencodeJPEG(page, staged); err != nil {
			return fmt.Errorf("page %d (%s): %w", i+1, page, err)
		}

		internal, err := book.AddImage(staged, fmt.Sprintf("%03d.jpg", i+1))
		if err != nil {
			return fmt.Errorf("add page %d: %w", i+1, err)
		}

		body := fmt.Sprintf(`<img src="%s" alt="Page %d"/>`, internal, i+1)
		if _, err := book.AddSection(body, fmt.Sprintf("Page %d", i+1), fmt.Sprintf("page_%03d.xhtml", i+1), internalCSS); err != nil {
			return fmt.Errorf("add page document %d: %w", i+1, err)
		}
	}

	// go-epub does not promise an atomic write, so publish via temp + rename
	tmp := outPath + ".tmp"
	if err := book.Write(tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write epub: %w", err)
	}
	if err := os.Rename(tmp, outPath); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("publish epub: %w", err)
	}
	return nil
}

// setCover uses the first page's bytes directly when they are already a
// usable raster, re-encoding to JPEG otherwise.
func (e *EPUBEncoder) setCover(book *epub.Epub, first, scratch string) error {
	source := first
	name := "cover" + strings.ToLower(filepath.Ext(first))
	if !isDirectJPEG(first) && strings.ToLower(filepath.Ext(first)) != ".png" {
		source = filepath.Join(scratch, "cover.jpg")
		name = "cover.jpg"
		if err := reencodeJPEG(first, source); err != nil {
			return fmt.Errorf("cover: %w", err)
		}
	}

	internal, err := book.AddImage(source, name)
	if err != nil {
		return fmt.Errorf("add cover: %w", err)
	}
	book.SetCover(internal, "")
	return nil
}
