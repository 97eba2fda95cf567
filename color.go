package xcolor

import (
	"sort"

	"github.com/marearts/xcolor/internal/colorspace"
)

// Color is one extracted color record: the cluster center as an RGB
// triple, its lowercase hex form, and the share of analyzed pixels the
// cluster covers (0-100).
type Color struct {
	RGB        [3]uint8 `json:"rgb"`
	Hex        string   `json:"hex"`
	Percentage float64  `json:"percentage"`
}

// Match is a Color paired with its Delta-E distance to a target color.
type Match struct {
	Color
	Distance float64 `json:"distance"`
}

// DeltaE returns the CIE76 color difference between two RGB triples on the
// classic Lab scale (a value of ~2.3 is a just-noticeable difference).
func DeltaE(a, b [3]uint8) float64 {
	return colorspace.DeltaE76(colorspace.RGB(a), colorspace.RGB(b))
}

// DeltaE2000 returns the CIEDE2000 color difference, a slower metric that
// better matches perception for near-neutral and highly saturated colors.
func DeltaE2000(a, b [3]uint8) float64 {
	return colorspace.DeltaE2000(colorspace.RGB(a), colorspace.RGB(b))
}

// ParseHex parses a "#rrggbb" string into an RGB triple.
func ParseHex(s string) ([3]uint8, error) {
	rgb, err := colorspace.ParseHex(s)
	return [3]uint8(rgb), err
}

// FindSimilar filters extracted colors down to those within threshold
// Delta-E (CIE76) of the target, sorted by ascending distance. A threshold
// around 50 admits colors most viewers would call "the same family"; lower
// values demand closer matches.
func FindSimilar(colors []Color, target [3]uint8, threshold float64) []Match {
	matches := make([]Match, 0, len(colors))
	for _, c := range colors {
		d := DeltaE(c.RGB, target)
		if d <= threshold {
			matches = append(matches, Match{Color: c, Distance: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	return matches
}
