package game

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// Theme is a named palette. Every drawable role has a fixed color so
// renderers never invent their own.
type Theme struct {
	Name      string
	Bg        types.Color
	Snake1    types.Color
	Snake2    types.Color
	Food      types.Color
	Text      types.Color
	Obstacle  types.Color
	Bonus     types.Color
	SpeedUp   types.Color
	SpeedDown types.Color
	Shrink    types.Color
}

// Themes is the cycling order. The first entry doubles as the fallback
// for unknown names in saved games.
var Themes = []Theme{
	{
		Name:      "classic",
		Bg:        types.Color{R: 50, G: 153, B: 213},
		Snake1:    types.Color{R: 0, G: 0, B: 0},
		Snake2:    types.Color{R: 0, G: 100, B: 0},
		Food:      types.Color{R: 0, G: 255, B: 0},
		Text:      types.Color{R: 255, G: 255, B: 102},
		Obstacle:  types.Color{R: 120, G: 120, B: 120},
		Bonus:     types.Color{R: 255, G: 165, B: 0},
		SpeedUp:   types.Color{R: 255, G: 0, B: 0},
		SpeedDown: types.Color{R: 0, G: 0, B: 255},
		Shrink:    types.Color{R: 128, G: 0, B: 128},
	},
	{
		Name:      "dark",
		Bg:        types.Color{R: 20, G: 20, B: 20},
		Snake1:    types.Color{R: 200, G: 200, B: 200},
		Snake2:    types.Color{R: 150, G: 255, B: 150},
		Food:      types.Color{R: 100, G: 255, B: 100},
		Text:      types.Color{R: 200, G: 200, B: 50},
		Obstacle:  types.Color{R: 70, G: 70, B: 70},
		Bonus:     types.Color{R: 255, G: 140, B: 0},
		SpeedUp:   types.Color{R: 255, G: 80, B: 80},
		SpeedDown: types.Color{R: 80, G: 80, B: 255},
		Shrink:    types.Color{R: 180, G: 80, B: 180},
	},
	{
		Name:      "neon",
		Bg:        types.Color{R: 10, G: 10, B: 30},
		Snake1:    types.Color{R: 0, G: 255, B: 255},
		Snake2:    types.Color{R: 255, G: 0, B: 255},
		Food:      types.Color{R: 0, G: 255, B: 0},
		Text:      types.Color{R: 255, G: 255, B: 0},
		Obstacle:  types.Color{R: 0, G: 120, B: 255},
		Bonus:     types.Color{R: 255, G: 255, B: 255},
		SpeedUp:   types.Color{R: 255, G: 50, B: 50},
		SpeedDown: types.Color{R: 50, G: 50, B: 255},
		Shrink:    types.Color{R: 255, G: 0, B: 255},
	},
}

// ThemeIndex resolves a theme name to its registry position. Unknown
// names fall back to the first theme.
func ThemeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// FoodColor maps a food kind to its themed color.
func (t Theme) FoodColor(kind entity.FoodKind) types.Color {
	switch kind {
	case entity.FoodBonus:
		return t.Bonus
	case entity.FoodSpeedUp:
		return t.SpeedUp
	case entity.FoodSpeedDown:
		return t.SpeedDown
	case entity.FoodShrink:
		return t.Shrink
	default:
		return t.Food
	}
}
