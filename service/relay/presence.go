package relay

import "math/rand"

// Palette is the fixed set of cursor colors handed to participants. Two
// participants may share a color; it is a cosmetic affordance, not identity.
var Palette = []string{
	"#FF6B6B",
	"#4ECDC4",
	"#45B7D1",
	"#FFA07A",
	"#98D8C8",
	"#F7DC6F",
	"#BB8FCE",
	"#85C1E2",
}

// AllocateColor picks one palette entry uniformly at random.
func AllocateColor() string {
	return Palette[rand.Intn(len(Palette))]
}
