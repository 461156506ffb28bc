package hostpattern

import (
	"errors"
	"reflect"
	"strconv"
	"testing"
)

func TestExpand_DashRange(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{
			name:     "simple range",
			pattern:  "host[1-3].com",
			expected: []string{"host1.com", "host2.com", "host3.com"},
		},
		{
			name:     "leading zero pads to bound width",
			pattern:  "host[01-03].com",
			expected: []string{"host01.com", "host02.com", "host03.com"},
		},
		{
			name:     "no padding without leading zero",
			pattern:  "node[8-11]",
			expected: []string{"node8", "node9", "node10", "node11"},
		},
		{
			name:     "single element range",
			pattern:  "chaos[5-5].riff.cc",
			expected: []string{"chaos5.riff.cc"},
		},
		{
			name:     "no suffix",
			pattern:  "chaos[1-4]",
			expected: []string{"chaos1", "chaos2", "chaos3", "chaos4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.pattern)
			if err != nil {
				t.Fatalf("Expand(%q) error = %v", tt.pattern, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expand(%q) = %v, want %v", tt.pattern, got, tt.expected)
			}
		})
	}
}

func TestExpand_ColonRange(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{
			name:     "always zero padded",
			pattern:  "chaos[01:03].riff.cc",
			expected: []string{"chaos01.riff.cc", "chaos02.riff.cc", "chaos03.riff.cc"},
		},
		{
			name:     "width from lower bound",
			pattern:  "n[001:3]",
			expected: []string{"n001", "n002", "n003"},
		},
		{
			name:     "width one means no padding",
			pattern:  "n[8:10]",
			expected: []string{"n8", "n9", "n10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.pattern)
			if err != nil {
				t.Fatalf("Expand(%q) error = %v", tt.pattern, err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expand(%q) = %v, want %v", tt.pattern, got, tt.expected)
			}
		})
	}
}

func TestExpand_NoBrackets(t *testing.T) {
	got, err := Expand("example.com")
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	want := []string{"example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand(\"example.com\") = %v, want %v", got, want)
	}
}

func TestExpand_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{name: "non-numeric bound", pattern: "server[1-a].example.com"},
		{name: "reversed range", pattern: "host[9-1].com"},
		{name: "unbalanced open", pattern: "host[1-3.com"},
		{name: "unbalanced close", pattern: "host1-3].com"},
		{name: "empty brackets", pattern: "host[].com"},
		{name: "missing separator", pattern: "host[13].com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Expand(tt.pattern)
			if err == nil {
				t.Fatalf("Expand(%q) expected error, got nil", tt.pattern)
			}
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("Expand(%q) error = %v, want ErrInvalidPattern", tt.pattern, err)
			}
		})
	}
}

func TestExpand_RangeSizeProperty(t *testing.T) {
	// n-m+1 elements with strictly increasing numeric suffixes
	got, err := Expand("w[3-12]")
	if err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	if len(got) != 10 {
		t.Errorf("Expand(\"w[3-12]\") yielded %d hosts, want 10", len(got))
	}
	for i, h := range got {
		want := "w" + strconv.Itoa(3+i)
		if h != want {
			t.Errorf("expansion[%d] = %q, want %q", i, h, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"example.com", true},
		{"192.168.1.1", true},
		{"256.256.256.256", false},
		{"server[1-a].example.com", false},
		{"", false},
		{"host[1-3].com", true},
		{"chaos[01:10].riff.cc", true},
		{"node-1.internal", true},
		{"-bad.example.com", false},
		{"bad-.example.com", false},
		{"10.0.0.300", false},
		{"host[9-1]", false},
		{"host[", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			if got := Validate(tt.value); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
