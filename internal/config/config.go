package config

import (
	"fmt"
	"log/slog"

	"git.lost.host/meutraa/drumcity/internal/input"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("drumcity", "Arrow rhythm game and chart maker").Version("0.3.0")

	Directory   = app.Arg("directory", "Song/chart directory").Required().ExistingDir()
	Chart       = app.Flag("chart", "Play this chart, relative to the directory, instead of showing the menu").Short('c').String()
	RecordAudio = app.Flag("record-audio", "Song to record a chart for, relative to the directory").String()
	RecordOut   = app.Flag("record-out", "Where recorded charts are saved, relative to the directory").Default("map.toml").String()
	StartOffset = app.Flag("start-offset", "Delay before the song starts").Default("3s").Duration()
	FramePeriod = app.Flag("frame-period", "Render frame period").Default("4ms").Short('p').Duration()
	Grace       = app.Flag("grace", "Time to show the result after the last arrow").Default("2s").Duration()
	Mute        = app.Flag("mute", "Do not play audio").Bool()
	keys        = app.Flag("keys", "Keys for up, down, left and right").Default("kjhl").Short('k').String()
	LogFile     = app.Flag("log-file", "Log file").Default("drumcity.log").String()
	logLevel    = app.Flag("log-level", "Log level").Default("info").Enum("debug", "info", "warn", "error")
)

func Parse(args []string) error {
	if _, err := app.Parse(args); nil != err {
		return err
	}
	if _, err := parseKeys(*keys); nil != err {
		return err
	}
	if *FramePeriod <= 0 {
		return fmt.Errorf("frame period must be positive, got %v", *FramePeriod)
	}
	if *StartOffset < 0 {
		return fmt.Errorf("start offset must not be negative, got %v", *StartOffset)
	}
	return nil
}

func parseKeys(s string) (input.Keys, error) {
	var k input.Keys
	rs := []rune(s)
	if len(rs) != len(k) {
		return k, fmt.Errorf("expected %d keys, got %q", len(k), s)
	}
	for _, r := range rs {
		if r == input.QuitRune {
			return k, fmt.Errorf("%q is the quit key and cannot be bound to a direction", r)
		}
	}
	copy(k[:], rs)
	return k, nil
}

func Keys() input.Keys {
	k, _ := parseKeys(*keys)
	return k
}

func LogLevel() slog.Level {
	switch *logLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
