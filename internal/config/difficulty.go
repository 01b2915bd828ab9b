package config

// ApplyPursuitPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyPursuitPreset(cfg *PursuitConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ghosts.MoveEvery = 3
		cfg.Ghosts.Shyness = 10
		cfg.Ghosts.Lookahead = 1
	case DifficultyHard:
		cfg.Ghosts.MoveEvery = 1
		cfg.Ghosts.Shyness = 4
		cfg.Ghosts.Lookahead = 4
	}
}
