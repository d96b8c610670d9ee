package config

import (
	_ "embed"
)

//go:embed defaults/template.yaml
var templateYAML string

//go:embed defaults/demo.yaml
var demoYAML string

// Template returns the commented sample configuration written for new users.
func Template() string {
	return templateYAML
}

// Demo returns the configuration played when no config file could be read.
func Demo() string {
	return demoYAML
}
