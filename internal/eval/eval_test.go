package eval

import "testing"

func TestEquivalent_ExactStrings(t *testing.T) {
	tests := []struct {
		learner   string
		reference string
		want      bool
	}{
		{"42", "42", true},
		{" 42 ", "42", true},
		{"X = 2", "x=2", true},
		{"x=2", "x=3", false},
		{"abc", "abc", true},
		{"abc", "abd", false},
		{"", "42", false},
		{"42", "", false},
		{"   ", "42", false},
		{"", "", true},
		{"   ", "", true},
	}

	for _, tc := range tests {
		if got := Equivalent(tc.learner, tc.reference); got != tc.want {
			t.Errorf("Equivalent(%q, %q) = %v, want %v", tc.learner, tc.reference, got, tc.want)
		}
	}
}

func TestEquivalent_Numeric(t *testing.T) {
	tests := []struct {
		learner   string
		reference string
		want      bool
	}{
		{"0.5", "1/2", true},
		{"2/4", "1/2", true},
		{"3.50", "3.5", true},
		{"007", "7", true},
		{"2^3", "8", true},
		{"2^3^2", "512", true}, // right-associative
		{"-2^2", "-4", true},   // exponent binds before unary minus
		{"(-2)^2", "4", true},
		{"-(3+4)", "-7", true},
		{"(1+2)*3", "9", true},
		{"1.0002", "1", false},
		{"1.00005", "1", true},
		{"3.6", "3.5", false},
	}

	for _, tc := range tests {
		if got := Equivalent(tc.learner, tc.reference); got != tc.want {
			t.Errorf("Equivalent(%q, %q) = %v, want %v", tc.learner, tc.reference, got, tc.want)
		}
	}
}

func TestEquivalent_Pi(t *testing.T) {
	tests := []struct {
		learner   string
		reference string
		want      bool
	}{
		{"3.1416", "pi", true},
		{"pi", "3.1416", true},
		{`\pi`, "pi", true},
		{"π", "pi", true},
		{"2*pi", "6.2832", true},
		{"pi/2", "1.5708", true},
		{"3.15", "pi", false},
	}

	for _, tc := range tests {
		if got := Equivalent(tc.learner, tc.reference); got != tc.want {
			t.Errorf("Equivalent(%q, %q) = %v, want %v", tc.learner, tc.reference, got, tc.want)
		}
	}
}

func TestEquivalent_MalformedNeverPanics(t *testing.T) {
	inputs := []string{
		"1/0", "((", "1+", "..", "1..2", "2**3", "1/(2-2)",
		"drop table answers", "1e999", ")(",
	}
	for _, in := range inputs {
		if Equivalent(in, "42") {
			t.Errorf("Equivalent(%q, 42) = true, want false", in)
		}
	}
}

func TestEquivalentWithin_CustomTolerance(t *testing.T) {
	if !EquivalentWithin("1.05", "1", 0.1) {
		t.Error("expected 1.05 to match 1 within 0.1")
	}
	if EquivalentWithin("1.05", "1", 0.01) {
		t.Error("expected 1.05 not to match 1 within 0.01")
	}
}

func TestEvalExpr(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"1+2*3", 7, false},
		{"(1+2)*3", 9, false},
		{"10/4", 2.5, false},
		{"-3", -3, false},
		{"--3", 3, false},
		{"2^-1", 0.5, false},
		{"-2^2", -4, false},
		{"2^-3", 0.125, false},
		{"-2^2+1", -3, false},
		{"", 0, true},
		{"1+", 0, true},
		{"(1+2", 0, true},
		{"1/0", 0, true},
		{"x+1", 0, true},
		{"1;2", 0, true},
	}

	for _, tc := range tests {
		got, err := evalExpr(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("evalExpr(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("evalExpr(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
