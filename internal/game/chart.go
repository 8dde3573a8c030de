package game

import "sort"

// ChartEntry is an authored arrow, as stored in a chart file.
type ChartEntry struct {
	HitTime   float64   `toml:"click_time" yaml:"click_time"` // When the arrow should be hit
	Speed     Speed     `toml:"speed" yaml:"speed"`
	Direction Direction `toml:"direction" yaml:"direction"`
}

// ChartFile is the on-disk layout of a chart. It is read by the parser and
// written by the recorder.
type ChartFile struct {
	Name     string       `toml:"name" yaml:"name"`
	Filename string       `toml:"filename" yaml:"filename"` // Audio file, relative to the chart
	Arrows   []ChartEntry `toml:"arrows" yaml:"arrows"`
}

// ArrowEvent is an arrow scheduled on the timeline.
type ArrowEvent struct {
	SpawnTime float64 // When the arrow should appear at SpawnPosition
	Speed     Speed
	Direction Direction
}

type Chart struct {
	Name      string
	AudioPath string
	Events    []ArrowEvent // Sorted by SpawnTime
}

// SpawnTime is the moment an arrow must spawn to reach the target at hitTime.
func SpawnTime(hitTime float64, speed Speed) float64 {
	return hitTime - speed.TravelDuration()
}

// HitTime reverses SpawnTime.
func HitTime(e ArrowEvent) float64 {
	return e.SpawnTime + e.Speed.TravelDuration()
}

// Build converts authored entries into timeline events, ordered by spawn time.
// Entries that spawn together keep their authored order.
func Build(entries []ChartEntry) []ArrowEvent {
	events := make([]ArrowEvent, len(entries))
	for i, e := range entries {
		events[i] = ArrowEvent{
			SpawnTime: SpawnTime(e.HitTime, e.Speed),
			Speed:     e.Speed,
			Direction: e.Direction,
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].SpawnTime < events[j].SpawnTime
	})
	return events
}
