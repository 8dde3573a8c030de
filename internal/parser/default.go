package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"git.lost.host/meutraa/drumcity/internal/game"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type DefaultParser struct{}

func (p *DefaultParser) Decode(r io.Reader, format Format) (*game.ChartFile, error) {
	var chart game.ChartFile
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&chart); nil != err {
			if errors.Is(err, io.EOF) {
				return nil, errors.New("empty chart")
			}
			return nil, err
		}
	default:
		md, err := toml.NewDecoder(r).Decode(&chart)
		if nil != err {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	}

	if err := validate(&chart); nil != err {
		return nil, err
	}
	return &chart, nil
}

func validate(chart *game.ChartFile) error {
	if chart.Filename == "" {
		return errors.New("missing filename")
	}
	for i, a := range chart.Arrows {
		if math.IsNaN(a.HitTime) || math.IsInf(a.HitTime, 0) {
			return fmt.Errorf("arrow %d: invalid click_time %v", i, a.HitTime)
		}
	}
	return nil
}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, &game.AssetError{Path: file, Err: err}
	}

	cf, err := p.Decode(bytes.NewReader(data), FormatOf(file))
	if nil != err {
		return nil, &game.ParseError{File: file, Err: err}
	}

	audio := filepath.Join(filepath.Dir(file), cf.Filename)
	if _, err := os.Stat(audio); nil != err {
		return nil, &game.AssetError{Path: audio, Err: err}
	}

	return &game.Chart{
		Name:      cf.Name,
		AudioPath: audio,
		Events:    game.Build(cf.Arrows),
	}, nil
}

func (p *DefaultParser) Encode(w io.Writer, format Format, chart *game.ChartFile) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(chart); nil != err {
			return err
		}
		return enc.Close()
	default:
		return toml.NewEncoder(w).Encode(chart)
	}
}

func (p *DefaultParser) Write(file string, chart *game.ChartFile) error {
	var buf bytes.Buffer
	if err := p.Encode(&buf, FormatOf(file), chart); nil != err {
		return fmt.Errorf("unable to encode chart: %w", err)
	}
	return os.WriteFile(file, buf.Bytes(), 0o644)
}

// Find returns the chart files in a song directory, sorted by path.
func Find(directory string) ([]string, error) {
	charts := []string{}
	if err := filepath.Walk(directory, func(p string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if !info.IsDir() && IsChart(info.Name()) {
			charts = append(charts, p)
		}
		return nil
	}); nil != err {
		return nil, fmt.Errorf("unable to walk song directory: %w", err)
	}
	sort.Strings(charts)
	return charts, nil
}
