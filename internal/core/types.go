package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Pattern seeds a freshly cleared grid.
type Pattern func(g *Grid)

// PatternFactory builds a Pattern from an optional configuration map.
type PatternFactory func(cfg map[string]string) (Pattern, error)

var patterns = map[string]PatternFactory{}

// Register adds a pattern factory under the provided name.
func Register(name string, f PatternFactory) {
	if name == "" || f == nil {
		return
	}
	patterns[name] = f
}

// Patterns exposes the registry of available seeding patterns.
func Patterns() map[string]PatternFactory {
	return patterns
}
