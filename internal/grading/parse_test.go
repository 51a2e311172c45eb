package grading

import "testing"

func TestParseGrade(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"3.0", "3", true},
		{"3.", "3", true},
		{".5", "0.5", true},
		{"  2.7\t", "2.7", true},
		{"+1.3", "1.3", true},
		{"-1", "-1", true},
		{"2.5abc", "2.5", true},
		{"1e", "1", true},
		{"1.5e0", "1.5", true},
		{"25e-1", "2.5", true},
		{"0.001e3", "1", true},
		{"0.45e1", "4.5", true},
		{"1e1", "", false},
		{"5e-1", "", false},
		{"1e2000000000", "", false},
		{"1e-2000000000", "", false},
		{"1e99999999999999999999", "", false},
		{"4,5", "4", true},
		{"", "", false},
		{".", "", false},
		{"-", "", false},
		{"abc", "", false},
		{"e5", "", false},
		{"Infinity", "", false},
		{"NaN", "", false},
	}
	for _, tc := range cases {
		got, ok := parseGrade(tc.in)
		if ok != tc.ok {
			t.Errorf("parseGrade(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && got.String() != tc.want {
			t.Errorf("parseGrade(%q) = %s, want %s", tc.in, got.String(), tc.want)
		}
	}
}
