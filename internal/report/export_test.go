package report

import (
	"testing"

	"github.com/marearts/xcolor"
)

var exportPalette = []xcolor.Color{
	{RGB: [3]uint8{170, 187, 204}, Hex: "#aabbcc", Percentage: 70},
	{RGB: [3]uint8{17, 34, 51}, Hex: "#112233", Percentage: 30},
}

func TestCSS(t *testing.T) {
	want := ":root {\n" +
		"  --color-1: #aabbcc;\n" +
		"  --color-2: #112233;\n" +
		"}\n"
	if got := CSS(exportPalette); got != want {
		t.Errorf("CSS output:\n%s\nwant:\n%s", got, want)
	}
}

func TestCSS_Empty(t *testing.T) {
	if got := CSS(nil); got != ":root {\n}\n" {
		t.Errorf("empty CSS output: %q", got)
	}
}

func TestSCSS(t *testing.T) {
	want := "$colors: (\n" +
		"  'color-1': #aabbcc,\n" +
		"  'color-2': #112233\n" +
		");\n"
	if got := SCSS(exportPalette); got != want {
		t.Errorf("SCSS output:\n%s\nwant:\n%s", got, want)
	}
}

func TestSCSS_SingleColor(t *testing.T) {
	// No trailing comma on the only entry.
	want := "$colors: (\n" +
		"  'color-1': #aabbcc\n" +
		");\n"
	if got := SCSS(exportPalette[:1]); got != want {
		t.Errorf("SCSS output:\n%s\nwant:\n%s", got, want)
	}
}
