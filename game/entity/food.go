package entity

import (
	"snake-arcade/game/types"
)

type FoodKind int

const (
	FoodNormal FoodKind = iota
	FoodBonus
	FoodSpeedUp
	FoodSpeedDown
	FoodShrink
)

// String returns the persisted name of the kind. These names are part
// of the save file format.
func (k FoodKind) String() string {
	switch k {
	case FoodBonus:
		return "bonus"
	case FoodSpeedUp:
		return "speed_up"
	case FoodSpeedDown:
		return "speed_down"
	case FoodShrink:
		return "shrink"
	default:
		return "normal"
	}
}

// ParseFoodKind maps a persisted kind name back to its value. Unknown
// names degrade to normal food.
func ParseFoodKind(name string) FoodKind {
	switch name {
	case "bonus":
		return FoodBonus
	case "speed_up":
		return FoodSpeedUp
	case "speed_down":
		return FoodSpeedDown
	case "shrink":
		return FoodShrink
	default:
		return FoodNormal
	}
}

// Food is immutable once placed. Its color comes from the active theme
// at draw time, not from the food itself.
type Food struct {
	Pos  types.Cell
	Kind FoodKind
}
