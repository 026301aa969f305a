package main

import (
	"testing"

	"github.com/vovakirdan/tui-blackbox/internal/config"
	"github.com/vovakirdan/tui-blackbox/internal/core"
)

func TestParseAtoms(t *testing.T) {
	tests := []struct {
		in      string
		want    []core.Coord
		wantErr bool
	}{
		{"3,2", []core.Coord{core.C(3, 2)}, false},
		{"3,2;1,7; 4 , 6 ;", []core.Coord{core.C(3, 2), core.C(1, 7), core.C(4, 6)}, false},
		{"", nil, true},
		{";", nil, true},
		{"3", nil, true},
		{"3,x", nil, true},
		{"a,2", nil, true},
		{"1,2,3", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseAtoms(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("parseAtoms(%q) = %v, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseAtoms(%q) failed: %v", tc.in, err)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("parseAtoms(%q) = %v, want %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("parseAtoms(%q)[%d] = %v, want %v", tc.in, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestResolveLayout(t *testing.T) {
	appConfig = config.DefaultConfig()

	l, err := resolveLayout(nil, "")
	if err != nil || l.ID() != "classic" {
		t.Errorf("default layout = %v, %v; want classic", l, err)
	}

	l, err = resolveLayout([]string{"corners"}, "")
	if err != nil || l.ID() != "corners" {
		t.Errorf("named layout = %v, %v; want corners", l, err)
	}

	l, err = resolveLayout([]string{"corners"}, "2,2;7,7")
	if err != nil {
		t.Fatalf("explicit atoms failed: %v", err)
	}
	if l.ID() != "custom" || len(l.Atoms(0)) != 2 {
		t.Errorf("explicit atoms = %s with %v", l.ID(), l.Atoms(0))
	}

	if _, err := resolveLayout([]string{"nope"}, ""); err == nil {
		t.Error("unknown layout should fail")
	}
	if _, err := resolveLayout(nil, "bad"); err == nil {
		t.Error("bad placement should fail")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Errorf("firstNonEmpty = %q, want b", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("firstNonEmpty = %q, want empty", got)
	}
}
