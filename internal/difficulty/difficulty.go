package difficulty

import "strings"

// Level represents a question difficulty tier.
type Level string

const (
	Easy   Level = "easy"
	Medium Level = "medium"
	Hard   Level = "hard"
	Harder Level = "harder"
)

// Levels returns all levels in ascending order of difficulty.
func Levels() []Level {
	return []Level{Easy, Medium, Hard, Harder}
}

// Points returns the score awarded for a correct answer at this level.
// Unrecognized levels award nothing.
func (l Level) Points() int {
	switch l {
	case Easy:
		return 10
	case Medium:
		return 30
	case Hard:
		return 60
	case Harder:
		return 100
	default:
		return 0
	}
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case Easy, Medium, Hard, Harder:
		return true
	default:
		return false
	}
}

// Label returns the display label for a level.
func (l Level) Label() string {
	switch l {
	case Easy:
		return "Easy"
	case Medium:
		return "Medium"
	case Hard:
		return "Hard"
	case Harder:
		return "Harder"
	default:
		return string(l)
	}
}

// Parse maps a case-insensitive level name to a Level. The second
// return value reports whether the name was recognized; unrecognized
// names yield a zero-point Level carrying the original text.
func Parse(s string) (Level, bool) {
	l := Level(strings.ToLower(strings.TrimSpace(s)))
	return l, l.Valid()
}
