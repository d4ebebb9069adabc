package config

import "os"

// MultiSourceString is a value given literally, through an environment
// variable, or by a built-in default, in that order of precedence.
type MultiSourceString struct {
	Data    string `yaml:"data"`
	EnvVar  string `yaml:"env_var"`
	Default string `yaml:"default"`
}

func (m MultiSourceString) Get() string {
	if m.Data != "" {
		return m.Data
	}
	if m.EnvVar != "" {
		if v := os.Getenv(m.EnvVar); v != "" {
			return v
		}
	}
	return m.Default
}

// Source describes where a missing value was expected to come from.
func (m MultiSourceString) Source() string {
	if m.EnvVar != "" {
		return "env " + m.EnvVar
	}
	return "data"
}

func fromEnv(name string) MultiSourceString {
	return MultiSourceString{EnvVar: name}
}

func fromEnvOr(name, def string) MultiSourceString {
	return MultiSourceString{EnvVar: name, Default: def}
}
