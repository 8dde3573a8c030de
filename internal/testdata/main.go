// Package testdata provides a small song for tests.
package testdata

import (
	"os"
	"path/filepath"
)

const (
	ChartFile = "akisey-dance.toml"
	AudioFile = "akisey-dance.ogg"
)

// Chart is the TOML text of the sample chart. Its arrows are not in spawn order.
const Chart = `name = "Akisey dance"
filename = "akisey-dance.ogg"

[[arrows]]
click_time = 4.0
speed = "Slow"
direction = "Up"

[[arrows]]
click_time = 4.5
speed = "Fast"
direction = "Down"

[[arrows]]
click_time = 3.9
speed = "Medium"
direction = "Left"

[[arrows]]
click_time = 6.25
speed = "Slow"
direction = "Right"
`

// ChartYAML is Chart written as YAML.
const ChartYAML = `name: Akisey dance
filename: akisey-dance.ogg
arrows:
  - click_time: 4.0
    speed: Slow
    direction: Up
  - click_time: 4.5
    speed: Fast
    direction: Down
  - click_time: 3.9
    speed: Medium
    direction: Left
  - click_time: 6.25
    speed: Slow
    direction: Right
`

// WriteSong creates a song directory with the sample chart and an empty audio
// file, returning the chart path.
func WriteSong(dir string) (string, error) {
	chart := filepath.Join(dir, ChartFile)
	if err := os.WriteFile(chart, []byte(Chart), 0o644); nil != err {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, AudioFile), nil, 0o644); nil != err {
		return "", err
	}
	return chart, nil
}
