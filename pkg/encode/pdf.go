package encode

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
)

// PDFEncoder packs images into a PDF, one page per image, with page
// dimensions equal to the image's pixel dimensions (1 px = 1 pt). No
// letterboxing or scaling is applied.
type PDFEncoder struct{}

func NewPDFEncoder() *PDFEncoder {
	return &PDFEncoder{}
}

func (e *PDFEncoder) Encode(images []string, outPath string, bookTitle, volumeTitle string) error {
	scratch, err := os.MkdirTemp("", "mangapress-pdf-*")
	if err != nil {
		return fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	staged, err := stageJPEGs(images, scratch)
	if err != nil {
		return err
	}
	if len(staged) == 0 {
		return fmt.Errorf("no images to convert")
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	if bookTitle != "" {
		pdf.SetTitle(bookTitle, true)
	}

	opts := gofpdf.ImageOptions{}
	for _, page := range staged {
		w, h, err := imageSize(page)
		if err != nil {
			return err
		}
		pdf.AddPageFormat("P", gofpdf.SizeType{Wd: w, Ht: h})
		pdf.RegisterImageOptions(page, opts)
		pdf.ImageOptions(page, 0, 0, w, h, false, opts, 0, "")
		if pdf.Err() {
			return fmt.Errorf("add page %s: %s", page, pdf.Error())
		}
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		os.Remove(outPath)
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
