package data

import "testing"

func TestParseFormat(t *testing.T) {
	cases := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"pdf", FormatPDF, false},
		{"PDF", FormatPDF, false},
		{"epub", FormatEPUB, false},
		{"EPUB", FormatEPUB, false},
		{"cbz", "", true},
		{"", "", true},
	}

	for _, c := range cases {
		got, err := ParseFormat(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseFormat(%q): expected error, got %q", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatExt(t *testing.T) {
	if FormatPDF.Ext() != ".pdf" {
		t.Errorf("Expected '.pdf', got %q", FormatPDF.Ext())
	}
	if FormatEPUB.Ext() != ".epub" {
		t.Errorf("Expected '.epub', got %q", FormatEPUB.Ext())
	}
}

func TestVolumeDisplayName(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"/manga/SeriesA/01 First Volume", "First Volume"},
		{"/manga/SeriesA/2Second", "Second"},
		{"/manga/SeriesA/Unnumbered", "Unnumbered"},
		{"/manga/SeriesA/10 第十卷", "第十卷"},
	}

	for _, c := range cases {
		v := Volume{Path: c.path}
		if got := v.DisplayName(); got != c.want {
			t.Errorf("Volume{%q}.DisplayName() = %q, want %q", c.path, got, c.want)
		}
	}
}

func TestVolumeName(t *testing.T) {
	v := Volume{Path: "/manga/SeriesA/01 First Volume"}
	if v.Name() != "01 First Volume" {
		t.Errorf("Expected raw name '01 First Volume', got %q", v.Name())
	}
}
