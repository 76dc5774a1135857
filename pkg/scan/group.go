package scan

import (
	"path/filepath"
	"strings"

	"github.com/rikuta/mangapress/pkg/data"
)

// DefaultWrappers are generic container folder names some sources insert
// between the series directory and its volumes. When a volume's parent carries
// one of these labels, the series name is taken from the grandparent instead.
// The set is publisher-specific and not exhaustive; Classifier keeps it
// replaceable.
var DefaultWrappers = []string{"单行本", "單行本", "默認", "其他汉化版"}

const unknownSeries = "Unknown"

// Classifier maps flat volume lists to series groups.
type Classifier struct {
	Wrappers []string
}

func NewClassifier() Classifier {
	return Classifier{Wrappers: DefaultWrappers}
}

func (c Classifier) isWrapper(name string) bool {
	for _, w := range c.Wrappers {
		if strings.EqualFold(name, w) {
			return true
		}
	}
	return false
}

// seriesName resolves which series a volume belongs to: normally the parent
// directory's name, or the grandparent's when the parent is a wrapper folder.
func (c Classifier) seriesName(v data.Volume) string {
	parent := filepath.Dir(v.Path)
	name := filepath.Base(parent)
	if name == "." || name == string(filepath.Separator) {
		return unknownSeries
	}
	if c.isWrapper(name) {
		grandparent := filepath.Dir(parent)
		gpName := filepath.Base(grandparent)
		if grandparent == parent || gpName == "." || gpName == string(filepath.Separator) {
			return unknownSeries
		}
		return gpName
	}
	return name
}

// Group partitions volumes into series. Series appear in first-seen order and
// volumes keep the relative order they were supplied in; no empty group is
// ever created.
func (c Classifier) Group(volumes []data.Volume) []data.SeriesGroup {
	index := map[string]int{}
	var groups []data.SeriesGroup

	for _, v := range volumes {
		name := c.seriesName(v)
		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, data.SeriesGroup{Name: name})
		}
		groups[i].Volumes = append(groups[i].Volumes, v)
	}

	return groups
}
