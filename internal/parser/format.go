package parser

import (
	"path/filepath"
	"strings"
)

type Format uint8

const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	if f == YAML {
		return "yaml"
	}
	return "toml"
}

// FormatOf picks the chart format from a file extension. Anything that is not
// YAML is read as TOML.
func FormatOf(file string) Format {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

// IsChart reports whether file looks like a chart.
func IsChart(file string) bool {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}
