package game

// DifficultyProfile pairs a base tick rate with an obstacle count.
type DifficultyProfile struct {
	Name      string
	Speed     int // base ticks per second
	Obstacles int
}

// Difficulties is the selection order. The first entry is the fallback
// for unknown names in saved games.
var Difficulties = []DifficultyProfile{
	{Name: "easy", Speed: 10, Obstacles: 10},
	{Name: "medium", Speed: 15, Obstacles: 20},
	{Name: "hard", Speed: 20, Obstacles: 35},
}

// ParseDifficulty resolves a difficulty name, falling back to the
// first profile for anything unknown.
func ParseDifficulty(name string) DifficultyProfile {
	for _, d := range Difficulties {
		if d.Name == name {
			return d
		}
	}
	return Difficulties[0]
}
