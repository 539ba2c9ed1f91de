package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// ID identifies one of the built-in color themes a card can use.
type ID string

const (
	NeonPink     ID = "neon-pink"
	CyberBlue    ID = "cyber-blue"
	ToxicGreen   ID = "toxic-green"
	SunsetOrange ID = "sunset-orange"
	RoyalPurple  ID = "royal-purple"
)

// Default is the theme applied to new drafts and used as the fallback for
// unknown identifiers in stored cards.
const Default = NeonPink

// Config holds the presentation parameters for a theme. Cards reference a
// Config by ID and never own one.
type Config struct {
	ID         ID
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	TileBg     lipgloss.Color
	TileMarked lipgloss.Color
}

var configs = map[ID]Config{
	NeonPink: {
		ID:         NeonPink,
		Name:       "Neon Pink",
		Primary:    lipgloss.Color("205"),
		Secondary:  lipgloss.Color("218"),
		Accent:     lipgloss.Color("199"),
		TileBg:     lipgloss.Color("236"),
		TileMarked: lipgloss.Color("162"),
	},
	CyberBlue: {
		ID:         CyberBlue,
		Name:       "Cyber Blue",
		Primary:    lipgloss.Color("51"),
		Secondary:  lipgloss.Color("123"),
		Accent:     lipgloss.Color("45"),
		TileBg:     lipgloss.Color("236"),
		TileMarked: lipgloss.Color("31"),
	},
	ToxicGreen: {
		ID:         ToxicGreen,
		Name:       "Toxic Green",
		Primary:    lipgloss.Color("118"),
		Secondary:  lipgloss.Color("156"),
		Accent:     lipgloss.Color("112"),
		TileBg:     lipgloss.Color("234"),
		TileMarked: lipgloss.Color("64"),
	},
	SunsetOrange: {
		ID:         SunsetOrange,
		Name:       "Sunset",
		Primary:    lipgloss.Color("208"),
		Secondary:  lipgloss.Color("221"),
		Accent:     lipgloss.Color("202"),
		TileBg:     lipgloss.Color("236"),
		TileMarked: lipgloss.Color("166"),
	},
	RoyalPurple: {
		ID:         RoyalPurple,
		Name:       "Royal",
		Primary:    lipgloss.Color("141"),
		Secondary:  lipgloss.Color("177"),
		Accent:     lipgloss.Color("135"),
		TileBg:     lipgloss.Color("235"),
		TileMarked: lipgloss.Color("93"),
	},
}

// order keeps All and Next deterministic for the editor's theme cycle.
var order = []ID{NeonPink, CyberBlue, ToxicGreen, SunsetOrange, RoyalPurple}

// Valid reports whether id names a registered theme.
func Valid(id ID) bool {
	_, ok := configs[id]
	return ok
}

// Lookup resolves a theme config, falling back to the default theme for
// unknown identifiers so that stale stored cards still render.
func Lookup(id ID) Config {
	if cfg, ok := configs[id]; ok {
		return cfg
	}
	return configs[Default]
}

// All returns every theme config in display order.
func All() []Config {
	out := make([]Config, 0, len(order))
	for _, id := range order {
		out = append(out, configs[id])
	}
	return out
}

// Next returns the theme following id in display order, wrapping around.
func Next(id ID) ID {
	for i, candidate := range order {
		if candidate == id {
			return order[(i+1)%len(order)]
		}
	}
	return Default
}

// Prev returns the theme preceding id in display order, wrapping around.
func Prev(id ID) ID {
	for i, candidate := range order {
		if candidate == id {
			return order[(i+len(order)-1)%len(order)]
		}
	}
	return Default
}
