package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rikuta/mangapress/pkg/data"
)

// Supported page image extensions, matched case-insensitively.
var ImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// IsImageFile checks if a file has a supported image extension.
func IsImageFile(filename string) bool {
	return ImageExts[strings.ToLower(filepath.Ext(filename))]
}

// Gather walks a volume directory recursively and returns its page images in
// reading order: primarily by lowercased relative directory, so images in
// different sub-directories cluster together, then by the numeric key of the
// filename. A missing or non-directory path yields an empty result, not an
// error; callers treat "no images" as a per-volume warning.
func Gather(dir string) []string {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}

	var files []string
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && IsImageFile(d.Name()) {
			files = append(files, path)
		}
		return nil
	})

	sort.SliceStable(files, func(i, j int) bool {
		di := strings.ToLower(relDir(dir, files[i]))
		dj := strings.ToLower(relDir(dir, files[j]))
		if di != dj {
			return di < dj
		}
		return CompareNames(filepath.Base(files[i]), filepath.Base(files[j])) < 0
	})

	return files
}

// relDir returns the directory of path relative to the volume root.
func relDir(root, path string) string {
	rel, err := filepath.Rel(root, filepath.Dir(path))
	if err != nil {
		return filepath.Dir(path)
	}
	return rel
}

// DiscoverVolumes finds the volume directories beneath parent: every directory
// that directly contains at least one supported image, ordered by parent path
// and then by the numeric key of the directory name, so sibling volumes come
// back in natural order.
func DiscoverVolumes(parent string) []data.Volume {
	info, err := os.Stat(parent)
	if err != nil || !info.IsDir() {
		return nil
	}

	seen := map[string]bool{}
	var dirs []string
	filepath.WalkDir(parent, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() || !IsImageFile(d.Name()) {
			return nil
		}
		dir := filepath.Dir(path)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
		return nil
	})

	sort.SliceStable(dirs, func(i, j int) bool {
		pi := strings.ToLower(filepath.Dir(dirs[i]))
		pj := strings.ToLower(filepath.Dir(dirs[j]))
		if pi != pj {
			return pi < pj
		}
		return CompareNames(filepath.Base(dirs[i]), filepath.Base(dirs[j])) < 0
	})

	volumes := make([]data.Volume, len(dirs))
	for i, dir := range dirs {
		volumes[i] = data.Volume{Path: dir}
	}
	return volumes
}
