package difficulty

import "testing"

func TestPoints(t *testing.T) {
	tests := []struct {
		level Level
		want  int
	}{
		{Easy, 10},
		{Medium, 30},
		{Hard, 60},
		{Harder, 100},
		{Level("impossible"), 0},
		{Level(""), 0},
	}

	for _, tc := range tests {
		if got := tc.level.Points(); got != tc.want {
			t.Errorf("Points(%q) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"easy", Easy, true},
		{"MEDIUM", Medium, true},
		{"  Hard  ", Hard, true},
		{"harder", Harder, true},
		{"extreme", Level("extreme"), false},
		{"", Level(""), false},
	}

	for _, tc := range tests {
		got, ok := Parse(tc.in)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tc.in, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestLevelsAscending(t *testing.T) {
	levels := Levels()
	if len(levels) != 4 {
		t.Fatalf("expected 4 levels, got %d", len(levels))
	}
	for i := 1; i < len(levels); i++ {
		if levels[i].Points() <= levels[i-1].Points() {
			t.Errorf("levels not ascending: %q (%d) after %q (%d)",
				levels[i], levels[i].Points(), levels[i-1], levels[i-1].Points())
		}
	}
}
