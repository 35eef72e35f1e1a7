package config

// Presets are named size/difficulty combinations for the CLI.
var Presets = map[string]*Config{
	"pocket": {
		Width: 21, Height: 21, Difficulty: "easy",
	},
	"classic": {
		Width: 51, Height: 51, Difficulty: "hard",
	},
	"open": {
		Width: 51, Height: 51, Difficulty: "easy",
	},
	"corridor": {
		Width: 81, Height: 31, Difficulty: "medium",
	},
	"labyrinth": {
		Width: 101, Height: 101, Difficulty: "hard",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
