package game

import (
	"testing"

	"snake-arcade/game/entity"
)

func TestThemeIndex(t *testing.T) {
	cases := []struct {
		name string
		want int
	}{
		{"classic", 0},
		{"dark", 1},
		{"neon", 2},
		{"", 0},
		{"sepia", 0}, // unknown names fall back to the first theme
	}
	for _, tc := range cases {
		if got := ThemeIndex(tc.name); got != tc.want {
			t.Errorf("ThemeIndex(%q) = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestThemeCycleOrder(t *testing.T) {
	want := []string{"classic", "dark", "neon"}
	if len(Themes) != len(want) {
		t.Fatalf("expected %d themes, got %d", len(want), len(Themes))
	}
	for i, name := range want {
		if Themes[i].Name != name {
			t.Errorf("Themes[%d] = %q, want %q", i, Themes[i].Name, name)
		}
	}
}

func TestFoodColorFollowsKind(t *testing.T) {
	th := Themes[0]
	cases := []struct {
		kind entity.FoodKind
		want [3]uint8
	}{
		{entity.FoodNormal, [3]uint8{th.Food.R, th.Food.G, th.Food.B}},
		{entity.FoodBonus, [3]uint8{th.Bonus.R, th.Bonus.G, th.Bonus.B}},
		{entity.FoodSpeedUp, [3]uint8{th.SpeedUp.R, th.SpeedUp.G, th.SpeedUp.B}},
		{entity.FoodSpeedDown, [3]uint8{th.SpeedDown.R, th.SpeedDown.G, th.SpeedDown.B}},
		{entity.FoodShrink, [3]uint8{th.Shrink.R, th.Shrink.G, th.Shrink.B}},
	}
	for _, tc := range cases {
		c := th.FoodColor(tc.kind)
		if [3]uint8{c.R, c.G, c.B} != tc.want {
			t.Errorf("FoodColor(%v) = %v, want %v", tc.kind, c, tc.want)
		}
	}
}

func TestParseDifficulty(t *testing.T) {
	hard := ParseDifficulty("hard")
	if hard.Speed != 20 || hard.Obstacles != 35 {
		t.Errorf("hard profile wrong: %+v", hard)
	}
	fallback := ParseDifficulty("nightmare")
	if fallback.Name != "easy" {
		t.Errorf("unknown difficulty should fall back to easy, got %q", fallback.Name)
	}
}
