package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rikuta/mangapress/pkg/app/styles"
	"github.com/rikuta/mangapress/pkg/data"
)

// VolumeList renders the volume directories queued for conversion.
type VolumeList struct {
	Items         []data.Volume
	SelectedIndex int
	Width         int
	Height        int
}

func NewVolumeList(volumes []data.Volume) *VolumeList {
	return &VolumeList{
		Items:  volumes,
		Width:  80,
		Height: 20,
	}
}

func (v *VolumeList) Next() {
	if len(v.Items) == 0 {
		return
	}
	v.SelectedIndex++
	if v.SelectedIndex >= len(v.Items) {
		v.SelectedIndex = 0
	}
}

func (v *VolumeList) Prev() {
	if len(v.Items) == 0 {
		return
	}
	v.SelectedIndex--
	if v.SelectedIndex < 0 {
		v.SelectedIndex = len(v.Items) - 1
	}
}

func (v *VolumeList) Selected() *data.Volume {
	if len(v.Items) == 0 || v.SelectedIndex >= len(v.Items) {
		return nil
	}
	return &v.Items[v.SelectedIndex]
}

func (v *VolumeList) View() string {
	if len(v.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No volumes queued. Pass directories on the command line.")
		return lipgloss.Place(v.Width, 3, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder
	for i, item := range v.Items {
		line := fmt.Sprintf("%2d. %s", i+1, item.DisplayName())
		path := styles.MutedStyle.Render("  " + item.Path)

		if i == v.SelectedIndex {
			b.WriteString(styles.SelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(styles.TextStyle.Render("  " + line))
		}
		b.WriteString("\n")
		b.WriteString(path)
		b.WriteString("\n")
	}
	return b.String()
}
