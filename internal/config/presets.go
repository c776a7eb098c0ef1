package config

var Presets = map[string]map[string]*Config{
	"lorenz": {
		"classic": {
			System: "lorenz", Integrator: "euler", Dt: 0.01, Duration: 100.0,
			InitState: InitStateConfig{X: 1, Y: 1, Z: 1},
		},
		"fine": {
			System: "lorenz", Integrator: "rk4", Dt: 0.001, Duration: 100.0,
			InitState: InitStateConfig{X: 1, Y: 1, Z: 1},
		},
		"offset": {
			System: "lorenz", Integrator: "euler", Dt: 0.01, Duration: 100.0,
			InitState: InitStateConfig{X: -8, Y: 8, Z: 27},
		},
	},
	"rossler": {
		"classic": {
			System: "rossler", Integrator: "rk4", Dt: 0.01, Duration: 200.0,
			InitState: InitStateConfig{X: 1, Y: 1, Z: 1},
		},
		"slow": {
			System: "rossler", Integrator: "rk4", Dt: 0.005, Duration: 400.0,
			InitState: InitStateConfig{X: 0, Y: -5, Z: 0},
		},
	},
}

func GetPreset(system, preset string) *Config {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	cfg, ok := systemPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(system string) []string {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(systemPresets))
	for name := range systemPresets {
		names = append(names, name)
	}
	return names
}
