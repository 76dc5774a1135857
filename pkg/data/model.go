package data

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rikuta/mangapress/pkg/utils"
)

// Format selects the output encoder for a conversion run.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatEPUB Format = "epub"
)

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "pdf", "PDF":
		return FormatPDF, nil
	case "epub", "EPUB":
		return FormatEPUB, nil
	}
	return "", fmt.Errorf("unknown format %q (expected pdf or epub)", s)
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Volume is one directory of sequential page images. It is read-only input:
// nothing in the pipeline ever mutates or writes into it.
type Volume struct {
	Path string
}

// Name returns the raw directory name of the volume.
func (v Volume) Name() string {
	return filepath.Base(v.Path)
}

// DisplayName returns the volume title used for output files, with any leading
// ordering prefix ("01 ", "2" ...) stripped from the directory name.
func (v Volume) DisplayName() string {
	return utils.StripOrdinalPrefix(v.Name())
}

// SeriesGroup is a series name together with its volumes in conversion order.
type SeriesGroup struct {
	Name    string
	Volumes []Volume
}

// Artifact is one output file a conversion run produced, as recorded in the
// history database.
type Artifact struct {
	ID        string
	Series    string
	Title     string
	Path      string
	Format    string
	Merged    bool
	Pages     int
	CreatedAt time.Time
}
