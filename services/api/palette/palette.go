package palette

import (
	"fmt"
	"regexp"
	"strings"
)

// Palette is an ordered list of hex color tokens.
type Palette []string

// Default is the dashboard float palette.
var Default = Palette{"#0DA5A5", "#1173D4", "#D41142", "#F9AD1F", "#8C2BEE", "#D4D411", "#EE2B2B"}

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ParsePalette reads a comma-separated list of hex colors. An empty string yields the default palette.
func ParsePalette(s string) (Palette, error) {
	if strings.TrimSpace(s) == "" {
		return Default, nil
	}
	var p Palette
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if !hexColor.MatchString(tok) {
			return nil, fmt.Errorf("invalid palette color %q", tok)
		}
		p = append(p, strings.ToUpper(tok))
	}
	return p, nil
}

// Assigner maps float ids to colors. It is built once per catalog and never changes.
type Assigner struct {
	colors map[int64]string
}

// New assigns p[i mod len(p)] to the i-th id of floatIDs.
func New(floatIDs []int64, p Palette) *Assigner {
	if len(p) == 0 {
		p = Default
	}
	a := &Assigner{colors: make(map[int64]string, len(floatIDs))}
	for i, id := range floatIDs {
		if _, ok := a.colors[id]; ok {
			continue
		}
		a.colors[id] = p[i%len(p)]
	}
	return a
}

// ColorFor returns the color of id, or "" for an id outside the catalog.
func (a *Assigner) ColorFor(id int64) string {
	return a.colors[id]
}
