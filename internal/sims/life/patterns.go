package life

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"quadlife/internal/core"
)

// Line seeds row y with live cells, leaving the first and last columns dead.
func Line(y int) core.Pattern {
	return func(g *core.Grid) {
		for x := 1; x < g.Width()-1; x++ {
			g.Set(x, y, core.Alive)
		}
	}
}

// Midline seeds the middle row, see Line.
func Midline() core.Pattern {
	return func(g *core.Grid) { Line(g.Height()/2)(g) }
}

// Offsets seeds cells at (cx+dx, cy+dy) for each offset, centred on the grid.
func Offsets(offsets [][2]int) core.Pattern {
	return func(g *core.Grid) {
		cx, cy := g.Width()/2, g.Height()/2
		for _, o := range offsets {
			g.Set(cx+o[0], cy+o[1], core.Alive)
		}
	}
}

// Cells seeds absolute coordinates. Coordinates are wrapped onto the grid.
func Cells(coords [][2]int) core.Pattern {
	return func(g *core.Grid) {
		for _, c := range coords {
			g.Set(c[0], c[1], core.Alive)
		}
	}
}

// Random fills the grid from a deterministic seed.
func Random(seed int64, density float64) core.Pattern {
	return func(g *core.Grid) {
		core.NewRNG(seed).FillBinary(g, density)
	}
}

var (
	blinkerOffsets = [][2]int{{-1, 0}, {0, 0}, {1, 0}}
	blockOffsets   = [][2]int{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	gliderOffsets  = [][2]int{{0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}
)

// ParseCells reads a "x,y;x,y" coordinate list.
func ParseCells(s string) ([][2]int, error) {
	var out [][2]int
	for _, pair := range strings.Split(s, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		parts := strings.SplitN(pair, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("life: malformed cell %q", pair)
		}
		x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("life: cell %q: %w", pair, err)
		}
		y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("life: cell %q: %w", pair, err)
		}
		out = append(out, [2]int{x, y})
	}
	return out, nil
}

// ErrUnknownPattern is returned by Lookup for unregistered pattern names.
var ErrUnknownPattern = errors.New("unknown pattern")

// Lookup resolves a registered pattern by name.
func Lookup(name string, cfg map[string]string) (core.Pattern, error) {
	f, ok := core.Patterns()[name]
	if !ok {
		return nil, fmt.Errorf("life: %w %q (have %s)", ErrUnknownPattern, name, strings.Join(PatternNames(), ", "))
	}
	return f(cfg)
}

// PatternNames lists registered patterns in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(core.Patterns()))
	for name := range core.Patterns() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fixed(p core.Pattern) core.PatternFactory {
	return func(map[string]string) (core.Pattern, error) { return p, nil }
}

func init() {
	core.Register("midline", fixed(Midline()))
	core.Register("line10", fixed(Line(10)))
	core.Register("blinker", fixed(Offsets(blinkerOffsets)))
	core.Register("block", fixed(Offsets(blockOffsets)))
	core.Register("glider", fixed(Offsets(gliderOffsets)))
	core.Register("random", func(cfg map[string]string) (core.Pattern, error) {
		seed := int64(42)
		density := 0.5
		if v, ok := cfg["seed"]; ok {
			parsed, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("life: random seed: %w", err)
			}
			seed = parsed
		}
		if v, ok := cfg["density"]; ok {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("life: random density: %w", err)
			}
			density = parsed
		}
		return Random(seed, density), nil
	})
	core.Register("cells", func(cfg map[string]string) (core.Pattern, error) {
		coords, err := ParseCells(cfg["cells"])
		if err != nil {
			return nil, err
		}
		return Cells(coords), nil
	})
}
