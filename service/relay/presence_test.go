package relay

import (
	"testing"
)

func TestAllocateColorStaysInPalette(t *testing.T) {
	if len(Palette) != 8 {
		t.Fatalf("palette has %d entries, want 8", len(Palette))
	}
	valid := make(map[string]bool, len(Palette))
	for _, c := range Palette {
		valid[c] = true
	}
	for i := 0; i < 200; i++ {
		if c := AllocateColor(); !valid[c] {
			t.Fatalf("AllocateColor returned %q, not in palette", c)
		}
	}
}
