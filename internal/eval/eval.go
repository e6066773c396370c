// Package eval decides whether a learner's free-form answer matches a
// reference answer. Comparison is tolerant: strings are normalized
// first, and when both sides evaluate as arithmetic expressions they
// are compared numerically within a small tolerance, so "1/2" matches
// "0.5" and "3.1416" matches "pi".
package eval

import (
	"math"
	"strings"
	"unicode"
)

const (
	// DefaultTolerance is the maximum absolute difference under which
	// two numeric answers are considered equal.
	DefaultTolerance = 1e-4

	// piLiteral substitutes for the pi symbol before numeric
	// evaluation. Ten decimal digits keeps the substitution error
	// well below DefaultTolerance.
	piLiteral = "3.1415926535"
)

// piReplacer rewrites every spelling of pi that shows up in answers.
// Longer forms go first so "\pi" is not left with a stray backslash.
var piReplacer = strings.NewReplacer(
	`\pi`, piLiteral,
	"pi", piLiteral,
	"π", piLiteral,
)

// Equivalent reports whether the learner's answer matches the
// reference answer under DefaultTolerance. It never fails: input that
// cannot be interpreted numerically simply falls back to exact string
// comparison.
func Equivalent(learner, reference string) bool {
	return EquivalentWithin(learner, reference, DefaultTolerance)
}

// EquivalentWithin is Equivalent with an explicit numeric tolerance.
func EquivalentWithin(learner, reference string, tolerance float64) bool {
	l := normalize(learner)
	r := normalize(reference)

	if l == r {
		return true
	}
	if l == "" || r == "" {
		return false
	}

	lv, lerr := evalExpr(piReplacer.Replace(l))
	rv, rerr := evalExpr(piReplacer.Replace(r))
	if lerr != nil || rerr != nil {
		return false
	}
	return math.Abs(lv-rv) < tolerance
}

// normalize lowercases the answer and strips all whitespace, so
// "1 / 2" and "1/2" compare equal and casing never matters.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
