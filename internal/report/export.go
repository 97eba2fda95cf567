package report

import (
	"fmt"
	"strings"

	"github.com/marearts/xcolor"
)

// CSS renders a palette as CSS custom properties:
//
//	:root {
//	  --color-1: #aabbcc;
//	}
func CSS(colors []xcolor.Color) string {
	var b strings.Builder
	b.WriteString(":root {\n")
	for i, c := range colors {
		fmt.Fprintf(&b, "  --color-%d: %s;\n", i+1, c.Hex)
	}
	b.WriteString("}\n")
	return b.String()
}

// SCSS renders a palette as an SCSS map:
//
//	$colors: (
//	  'color-1': #aabbcc,
//	  'color-2': #112233
//	);
func SCSS(colors []xcolor.Color) string {
	var b strings.Builder
	b.WriteString("$colors: (\n")
	for i, c := range colors {
		fmt.Fprintf(&b, "  'color-%d': %s", i+1, c.Hex)
		if i < len(colors)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(");\n")
	return b.String()
}
