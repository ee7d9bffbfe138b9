// Package expr turns textual math expressions into plottable functions of x.
package expr

import (
	"fmt"
	"math"
	"strings"

	"ChalkTalk/internal/geom"

	exprlang "github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// MaxAbsY is the clipping threshold for sampled values. Anything further
// than twice the logical range from the axis is off the board and dropped.
const MaxAbsY = 2 * geom.Range

// Func evaluates an expression at x. It never panics: any evaluation
// problem comes back as NaN, so callers must check for finiteness.
type Func func(x float64) float64

func env(x float64) map[string]any {
	return map[string]any{
		"x":     x,
		"pi":    math.Pi,
		"e":     math.E,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"asin":  math.Asin,
		"acos":  math.Acos,
		"atan":  math.Atan,
		"sinh":  math.Sinh,
		"cosh":  math.Cosh,
		"tanh":  math.Tanh,
		"sqrt":  math.Sqrt,
		"cbrt":  math.Cbrt,
		"exp":   math.Exp,
		"log":   math.Log,
		"log2":  math.Log2,
		"log10": math.Log10,
		"pow":   math.Pow,
	}
}

// Compile parses an infix expression with one free variable x and returns an
// evaluator for it. A "**" power token is normalized to "^" before parsing.
func Compile(src string) (Func, error) {
	src = strings.TrimSpace(strings.ReplaceAll(src, "**", "^"))
	if src == "" {
		return nil, fmt.Errorf("empty expression")
	}

	program, err := exprlang.Compile(src, exprlang.Env(env(0)))
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}

	return func(x float64) float64 {
		out, err := vm.Run(program, env(x))
		if err != nil {
			return math.NaN()
		}
		return toFloat(out)
	}, nil
}

// IsValid reports whether the expression compiles and produces a finite
// value at the probe point x=1.
func IsValid(src string) bool {
	fn, err := Compile(src)
	if err != nil {
		return false
	}
	y := fn(1)
	return !math.IsNaN(y) && !math.IsInf(y, 0)
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return math.NaN()
	}
}

// Sample evaluates fn across [min, max] and returns the plottable points.
// Wide domains and fast playback get a coarser grid so a single frame never
// has to stroke an unbounded number of segments.
func Sample(fn Func, min, max, speedMult float64) []geom.Point {
	step := StepFor(min, max, speedMult)
	if step <= 0 {
		return nil
	}
	return sampleStep(fn, min, max, step)
}

// StepFor returns the sampling step Sample will use for a domain and speed
// multiplier. Renderers use it to tell a dropped-sample gap apart from an
// ordinary step and avoid stroking across the gap.
func StepFor(min, max, speedMult float64) float64 {
	span := max - min
	if span <= 0 {
		return 0
	}
	target := 200
	if span > 40 || speedMult > 2.5 {
		target = 120
	}
	return span / float64(target)
}

func sampleStep(fn Func, min, max, step float64) []geom.Point {
	n := int(math.Round((max - min) / step))
	pts := make([]geom.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		x := min + float64(i)*step
		y := fn(x)
		if math.IsNaN(y) || math.IsInf(y, 0) || math.Abs(y) > MaxAbsY {
			continue
		}
		pts = append(pts, geom.Point{X: x, Y: y})
	}
	return pts
}
