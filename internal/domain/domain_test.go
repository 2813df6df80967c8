package domain

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"Example.COM", "example.com", false},
		{" https://Example.COM/path ", "example.com", false},
		{"example.com:443", "example.com", false},
		{"example.com.", "example.com", false},
		{"sub.example.co.uk", "sub.example.co.uk", false},
		{"xn--nxasmq6b.example", "xn--nxasmq6b.example", false},
		{"", "", true},
		{"a", "", true},
		{"localhost", "", true},
		{"foo..com", "", true},
		{"-bad.com", "", true},
		{"bad-.com", "", true},
		{"under_score.com", "", true},
		{strings.Repeat("a", 300) + ".com", "", true},
		{strings.Repeat("a", 64) + ".com", "", true},
	}

	for _, tc := range cases {
		got, err := Normalize(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("Normalize(%q): expected error, got none (got=%q)", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Normalize(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Normalize(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	got, err := ReadLines(strings.NewReader("one.com\n\n  two.com  \nthree.com\n"))
	if err != nil {
		t.Fatalf("ReadLines: %v", err)
	}
	want := []string{"one.com", "two.com", "three.com"}
	if len(got) != len(want) {
		t.Fatalf("ReadLines=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ReadLines[%d]=%q, want %q", i, got[i], want[i])
		}
	}
}
