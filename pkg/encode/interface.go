package encode

import "github.com/rikuta/mangapress/pkg/data"

// Encoder packs an ordered list of page images into a single book file.
// A nil error means outPath exists and is complete; on error no partial
// output is left behind.
type Encoder interface {
	Encode(images []string, outPath string, bookTitle, volumeTitle string) error
}

// ForFormat returns the encoder for an output format.
func ForFormat(f data.Format) Encoder {
	if f == data.FormatEPUB {
		return NewEPUBEncoder()
	}
	return NewPDFEncoder()
}
