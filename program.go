package main

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.lost.host/meutraa/drumcity/internal/audio"
	"git.lost.host/meutraa/drumcity/internal/config"
	"git.lost.host/meutraa/drumcity/internal/engine"
	"git.lost.host/meutraa/drumcity/internal/game"
	"git.lost.host/meutraa/drumcity/internal/input"
	"git.lost.host/meutraa/drumcity/internal/parser"
	"git.lost.host/meutraa/drumcity/internal/recorder"
	"git.lost.host/meutraa/drumcity/internal/render"
	"git.lost.host/meutraa/drumcity/internal/score"
	"git.lost.host/meutraa/drumcity/internal/theme"
)

// How long a judgement stays next to its target
const splashTime = 300 * time.Millisecond

type menuItem struct {
	label string
	chart string // Empty for the map maker
}

type Program struct {
	Parser   *parser.DefaultParser
	Scorer   *score.DefaultScorer
	Theme    *theme.DefaultTheme
	Renderer *render.DefaultRenderer
	Input    *input.Poller
	Machine  *engine.Machine
	Log      *slog.Logger

	charts   []string
	songFile string // Song for the map maker

	field    render.Field
	recorded int
}

func openAudio(file string) (engine.Sink, error) {
	if *config.Mute {
		s, err := audio.OpenSilent(file)
		if nil != err {
			return nil, err
		}
		return s, nil
	}
	p, err := audio.Open(file)
	if nil != err {
		return nil, err
	}
	return p, nil
}

func (p *Program) Init() error {
	// Ensure our Default implementations are used as interfaces
	p.Parser = &parser.DefaultParser{}
	p.Scorer = &score.DefaultScorer{}
	p.Theme = &theme.DefaultTheme{}
	p.Renderer = &render.DefaultRenderer{}

	var err error
	p.charts, err = parser.Find(*config.Directory)
	if nil != err {
		return err
	}
	if err := p.findSong(); nil != err {
		return err
	}

	opts := engine.Options{
		Loader:      p.Parser,
		OpenAudio:   openAudio,
		Scorer:      p.Scorer,
		StartOffset: config.StartOffset.Seconds(),
		Logger:      p.Log,
	}
	if "" != p.songFile {
		out := filepath.Join(*config.Directory, *config.RecordOut)
		// The chart references its song relative to itself
		rel, err := filepath.Rel(filepath.Dir(out), p.songFile)
		if nil != err {
			rel = filepath.Base(p.songFile)
		}
		opts.Recorder = recorder.New(p.Parser, out, rel, opts.StartOffset)
		opts.RecordAudio = p.songFile
	}

	if len(p.charts) == 0 && nil == opts.Recorder {
		return errors.New("unable to find a chart or an .ogg/.mp3/.wav file in given directory")
	}
	p.Machine = engine.New(opts)

	p.Input, err = input.Open(config.Keys(), 128)
	if nil != err {
		return err
	}
	if err := p.Renderer.Init(); nil != err {
		p.Input.Close()
		return fmt.Errorf("unable to set up terminal: %w", err)
	}
	p.Resize()

	p.Log.Info("found songs", "charts", len(p.charts), "song", p.songFile)
	return nil
}

func (p *Program) Deinit() {
	if err := p.Renderer.Deinit(); nil != err {
		p.Log.Error("unable to restore terminal", "error", err)
	}
	if err := p.Input.Close(); nil != err {
		p.Log.Error("unable to close keyboard", "error", err)
	}
}

// findSong picks the song the map maker records against.
func (p *Program) findSong() error {
	if "" != *config.RecordAudio {
		p.songFile = filepath.Join(*config.Directory, *config.RecordAudio)
		if _, err := os.Stat(p.songFile); nil != err {
			return &game.AssetError{Path: p.songFile, Err: err}
		}
		return nil
	}
	if err := filepath.Walk(*config.Directory, func(path string, info os.FileInfo, err error) error {
		if nil != err {
			return err
		}
		if "" == p.songFile && !info.IsDir() && audio.Supported(info.Name()) {
			p.songFile = path
		}
		return nil
	}); nil != err {
		return fmt.Errorf("unable to walk song directory: %w", err)
	}
	return nil
}

func (p *Program) Resize() {
	columns, rows := p.Renderer.Size()
	p.field = render.NewField(columns, rows)
}

func (p *Program) Run() error {
	if "" != *config.Chart {
		if err := p.Machine.Play(filepath.Join(*config.Directory, *config.Chart)); nil != err {
			return err
		}
		return p.Session()
	}

	status := ""
	for {
		item, ok, err := p.Menu(status)
		if nil != err {
			return err
		}
		if !ok {
			return nil
		}

		if "" == item.chart {
			err = p.Machine.Record()
		} else {
			err = p.Machine.Play(item.chart)
		}
		if nil != err {
			// Nothing was entered, stay in the menu
			p.Log.Error("unable to start", "item", item.label, "error", err)
			status = err.Error()
			continue
		}
		status = ""

		if err := p.Session(); nil != err {
			return err
		}
	}
}

func (p *Program) menuItems() []menuItem {
	items := make([]menuItem, 0, len(p.charts)+1)
	for _, c := range p.charts {
		label, err := filepath.Rel(*config.Directory, c)
		if nil != err {
			label = c
		}
		items = append(items, menuItem{label: label, chart: c})
	}
	if "" != p.songFile {
		items = append(items, menuItem{label: "Make chart (" + filepath.Base(p.songFile) + ")"})
	}
	return items
}

// Menu lets the player pick a chart, or the map maker. ok is false when the
// player quits.
func (p *Program) Menu(status string) (item menuItem, ok bool, err error) {
	items := p.menuItems()
	cursor := 0
	p.Renderer.RenderLoop(*config.FramePeriod, func(now time.Time) bool {
		s, perr := p.Input.Poll()
		if nil != perr {
			err = perr
			return false
		}
		if s.Quit {
			return false
		}
		if s.Pressed[game.Up] && cursor > 0 {
			cursor--
		}
		if s.Pressed[game.Down] && cursor < len(items)-1 {
			cursor++
		}
		for _, r := range s.Runes {
			if i := int(r - '0'); i >= 0 && i < len(items) && i < 10 {
				cursor, ok = i, true
			}
		}
		if s.Enter {
			ok = true
		}

		p.Renderer.Fill(2, 4, "drumcity")
		for i, it := range items {
			marker := "  "
			if i == cursor {
				marker = "> "
			}
			p.Renderer.Fill(uint16(4+i), 4, fmt.Sprintf("%s%2v) %v", marker, i, it.label))
		}
		if "" != status {
			p.Renderer.FillColor(uint16(6+len(items)), 4, p.Theme.VerdictColor(game.Miss), status)
		}
		return !ok
	})
	if nil != err || !ok {
		return menuItem{}, false, err
	}
	return items[cursor], true, nil
}

// Session ticks the machine until the chart is over, or the player quits,
// then returns to the menu.
func (p *Program) Session() error {
	var err error
	var finishedAt time.Time
	p.recorded = 0
	p.Resize()

	p.Renderer.RenderLoop(*config.FramePeriod, func(now time.Time) bool {
		s, perr := p.Input.Poll()
		if nil != perr {
			err = perr
			return false
		}
		if s.Quit {
			return false
		}

		frame, terr := p.Machine.Tick(now, s.Pressed)
		if nil != terr {
			err = terr
			return false
		}
		p.Draw(&frame)

		if frame.Finished {
			if finishedAt.IsZero() {
				finishedAt = now
			}
			return now.Sub(finishedAt) < *config.Grace
		}
		return true
	})

	// A recording that cannot be saved is fatal
	if xerr := p.Machine.Exit(); nil != xerr {
		if nil != err {
			p.Log.Error("session failed", "error", err)
		}
		return xerr
	}
	return err
}

func (p *Program) Draw(f *engine.Frame) {
	tc := p.field.Column(game.TargetPosition)
	for _, d := range game.Directions {
		p.Renderer.Fill(uint16(p.field.Row(d.Y())), uint16(tc), p.Theme.RenderTarget(d))
	}

	if offset := config.StartOffset.Seconds(); f.Elapsed < offset {
		p.Renderer.Fill(2, 2, fmt.Sprintf("   Starts in:  %6.1f", offset-f.Elapsed))
	} else {
		p.Renderer.Fill(2, 2, fmt.Sprintf("        Time:  %6.1f", f.Elapsed-offset))
	}

	switch f.Mode {
	case engine.Play:
		for _, a := range f.Live {
			col, row := p.field.Column(a.X), p.field.Row(a.Y)
			if !p.field.Contains(col, row) {
				continue
			}
			p.Renderer.FillColor(uint16(row), uint16(col), p.Theme.ArrowColor(a.Speed), p.Theme.RenderArrow(a.Rotation, a.Scale))
		}
		for _, j := range f.Judged {
			p.splash(j)
		}
		p.Renderer.Fill(3, 2, fmt.Sprintf("      Points:  %6v", f.Score.Points))
		p.Renderer.Fill(4, 2, fmt.Sprintf("        Hits:  %6v", f.Score.Hits))
		p.Renderer.Fill(5, 2, fmt.Sprintf("      Misses:  %6v", f.Score.Misses))
	case engine.Record:
		p.recorded += f.Recorded
		p.Renderer.FillColor(3, 2, p.Theme.VerdictColor(game.Miss), "   Recording")
		p.Renderer.Fill(4, 2, fmt.Sprintf("      Arrows:  %6v", p.recorded))
	}
}

func (p *Program) splash(j game.Judgement) {
	content := "miss"
	if j.Verdict == game.Hit {
		content = fmt.Sprintf("+%v", j.Points)
	}
	frames := int(splashTime / *config.FramePeriod)
	col := p.field.Column(game.TargetPosition) + 2
	row := p.field.Row(j.Arrow.Direction.Y())
	p.Renderer.AddDecoration(uint16(col), uint16(row), colored(p.Theme.VerdictColor(j.Verdict), content), frames)
}

func colored(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%s\033[0m", c.R, c.G, c.B, s)
}
