package main

import "testing"

func TestParseArgs(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		path    string
		workers int
		ok      bool
	}{
		{"two positionals", []string{"scan", "out.txt", "4"}, "out.txt", 4, true},
		{"extra trailing args ignored", []string{"scan", "out.txt", "4", "ignored"}, "out.txt", 4, true},
		{"missing worker count", []string{"scan", "out.txt"}, "", 0, false},
		{"no args", []string{"scan"}, "", 0, false},
		{"non-numeric worker count", []string{"scan", "out.txt", "four"}, "", 0, false},
		{"zero clamped", []string{"scan", "out.txt", "0"}, "out.txt", 1, true},
		{"negative clamped", []string{"scan", "out.txt", "-8"}, "out.txt", 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, workers, ok := parseArgs(tc.args)
			if ok != tc.ok || path != tc.path || workers != tc.workers {
				t.Fatalf("parseArgs(%v) = (%q, %d, %v), want (%q, %d, %v)",
					tc.args, path, workers, ok, tc.path, tc.workers, tc.ok)
			}
		})
	}
}
