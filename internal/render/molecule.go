package render

import (
	"image/color"
	"strings"

	"ChalkTalk/internal/geom"
)

// moleculeSketch is a hand-placed layout for one small molecule: atom
// symbols with world-coordinate offsets and the bonds between them.
type moleculeSketch struct {
	atoms []moleculeAtom
	bonds []moleculeBond
}

type moleculeAtom struct {
	symbol string
	dx, dy float64
}

type moleculeBond struct {
	a, b  int // indexes into atoms
	order int
}

var moleculeSketches = map[string]moleculeSketch{
	"h2o": {
		atoms: []moleculeAtom{{"H", -1.6, -0.8}, {"O", 0, 0}, {"H", 1.6, -0.8}},
		bonds: []moleculeBond{{0, 1, 1}, {1, 2, 1}},
	},
	"co2": {
		atoms: []moleculeAtom{{"O", -2, 0}, {"C", 0, 0}, {"O", 2, 0}},
		bonds: []moleculeBond{{0, 1, 2}, {1, 2, 2}},
	},
	"o2": {
		atoms: []moleculeAtom{{"O", -1, 0}, {"O", 1, 0}},
		bonds: []moleculeBond{{0, 1, 2}},
	},
	"n2": {
		atoms: []moleculeAtom{{"N", -1, 0}, {"N", 1, 0}},
		bonds: []moleculeBond{{0, 1, 2}},
	},
	"ch4": {
		atoms: []moleculeAtom{
			{"C", 0, 0},
			{"H", 0, 1.8}, {"H", 1.8, 0}, {"H", 0, -1.8}, {"H", -1.8, 0},
		},
		bonds: []moleculeBond{{0, 1, 1}, {0, 2, 1}, {0, 3, 1}, {0, 4, 1}},
	},
	"nacl": {
		atoms: []moleculeAtom{{"Na", -1.4, 0}, {"Cl", 1.4, 0}},
		bonds: []moleculeBond{{0, 1, 1}},
	},
}

// Molecule sketches a named molecule centered on a world point. Unknown
// formulas fall back to a single labeled atom so the command still renders.
func Molecule(sf Surface, m geom.Mapper, formula string, x, y float64, col color.Color) {
	sketch, ok := moleculeSketches[strings.ToLower(strings.TrimSpace(formula))]
	if !ok {
		Atom(sf, m, x, y, strings.ToUpper(strings.TrimSpace(formula)), col)
		return
	}
	for _, b := range sketch.bonds {
		a1, a2 := sketch.atoms[b.a], sketch.atoms[b.b]
		Bond(sf, m, x+a1.dx, y+a1.dy, x+a2.dx, y+a2.dy, b.order, col)
	}
	for _, a := range sketch.atoms {
		Atom(sf, m, x+a.dx, y+a.dy, a.symbol, col)
	}
}
