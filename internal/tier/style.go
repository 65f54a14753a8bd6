package tier

import (
	"fmt"

	"RoachSentinel/internal/model"
)

// Style describes how a tier is drawn.
type Style struct {
	Name  string
	Light string // hex colour on a light background
	Dark  string // hex colour on a dark background
	ANSI  int    // foreground SGR code
}

// StyleFor resolves a colour tag. Every tag in model has a case here;
// anything else is an error rather than a blank style.
func StyleFor(tag model.ColorTag) (Style, error) {
	switch tag {
	case model.ColorGreen:
		return Style{Name: "green", Light: "#16a34a", Dark: "#4ade80", ANSI: 32}, nil
	case model.ColorBlue:
		return Style{Name: "blue", Light: "#2563eb", Dark: "#60a5fa", ANSI: 34}, nil
	case model.ColorYellow:
		return Style{Name: "yellow", Light: "#ca8a04", Dark: "#facc15", ANSI: 33}, nil
	case model.ColorOrange:
		return Style{Name: "orange", Light: "#ea580c", Dark: "#fb923c", ANSI: 91}, nil
	case model.ColorRed:
		return Style{Name: "red", Light: "#dc2626", Dark: "#f87171", ANSI: 31}, nil
	}
	return Style{}, fmt.Errorf("unknown colour tag %q", tag)
}
