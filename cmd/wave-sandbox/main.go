package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fixmath/fix64"
	"github.com/lixenwraith/fixmath/fixrand"
	"github.com/lixenwraith/fixmath/fixvec"
)

// Visual check that simulation math stays deterministic while rendering:
// superposed sine waves advance in fixed time steps, and two walkers driven
// by twin derived streams must shadow each other exactly. The status line
// flips to FAIL if the twins ever disagree.

const tickInterval = 33 * time.Millisecond

var configPath = flag.String("config", "", "Optional TOML wave configuration")

// Wave parameters travel as decimal strings so the file round-trips through
// the exact fixed-point parser instead of a float detour.
type waveConfig struct {
	Amplitude  string `toml:"amplitude"`
	Wavelength string `toml:"wavelength"`
	Speed      string `toml:"speed"`
}

type fileConfig struct {
	Seed  uint64       `toml:"seed"`
	Waves []waveConfig `toml:"waves"`
}

type wave struct {
	amp   fix64.Fix64
	k     fix64.Fix64 // spatial frequency 2Pi/wavelength
	omega fix64.Fix64 // temporal frequency k*speed
}

type sandbox struct {
	screen        tcell.Screen
	width, height int

	waves    []wave
	totalAmp fix64.Fix64

	t  fix64.Fix64
	dt fix64.Fix64

	// Twin walkers: same derived seed, advanced in lockstep. Their positions
	// must stay bit-identical forever.
	genA, genB *fixrand.Generator
	posA, posB fixvec.Vec2
	steps      uint64
	twinsOK    bool
}

func newSandbox(cfg fileConfig) (*sandbox, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	s := &sandbox{
		screen:  screen,
		dt:      fix64.MustParse("0.033"),
		genA:    fixrand.Derive(cfg.Seed, "walker", 0),
		genB:    fixrand.Derive(cfg.Seed, "walker", 0),
		twinsOK: true,
	}
	s.width, s.height = screen.Size()

	for i, wc := range cfg.Waves {
		w, err := buildWave(wc)
		if err != nil {
			screen.Fini()
			return nil, fmt.Errorf("wave %d: %w", i, err)
		}
		s.waves = append(s.waves, w)
		s.totalAmp = s.totalAmp.Add(w.amp)
	}
	if s.totalAmp == 0 {
		s.totalAmp = fix64.One
	}
	return s, nil
}

func buildWave(wc waveConfig) (wave, error) {
	amp, err := fix64.Parse(wc.Amplitude)
	if err != nil {
		return wave{}, fmt.Errorf("amplitude: %w", err)
	}
	wl, err := fix64.Parse(wc.Wavelength)
	if err != nil {
		return wave{}, fmt.Errorf("wavelength: %w", err)
	}
	if wl <= 0 {
		return wave{}, fmt.Errorf("wavelength %v is not positive", wl)
	}
	speed, err := fix64.Parse(wc.Speed)
	if err != nil {
		return wave{}, fmt.Errorf("speed: %w", err)
	}

	k, err := fix64.TwoPi.Div(wl)
	if err != nil {
		return wave{}, err
	}
	return wave{amp: amp, k: k, omega: k.Mul(speed)}, nil
}

func defaultConfig() fileConfig {
	return fileConfig{
		Seed: 1,
		Waves: []waveConfig{
			{Amplitude: "1", Wavelength: "24", Speed: "6"},
			{Amplitude: "0.5", Wavelength: "9", Speed: "-3.5"},
			{Amplitude: "0.25", Wavelength: "5", Speed: "11"},
		},
	}
}

func (s *sandbox) step() {
	s.t = s.t.Add(s.dt)
	s.steps++

	// Both twins take the identical random stroll.
	dxA, _ := s.genA.FixRange(-fix64.One, fix64.One)
	dyA, _ := s.genA.FixRange(-fix64.One, fix64.One)
	dxB, _ := s.genB.FixRange(-fix64.One, fix64.One)
	dyB, _ := s.genB.FixRange(-fix64.One, fix64.One)

	s.posA = s.posA.Add(fixvec.V2(dxA, dyA)).ClampMag(fix64.FromInt(10))
	s.posB = s.posB.Add(fixvec.V2(dxB, dyB)).ClampMag(fix64.FromInt(10))

	if s.posA != s.posB {
		s.twinsOK = false
	}
}

// surface sums the configured waves at column x for the current time.
func (s *sandbox) surface(x int) fix64.Fix64 {
	xf := fix64.FromInt(x)
	var y fix64.Fix64
	for _, w := range s.waves {
		phase := w.k.Mul(xf).Sub(w.omega.Mul(s.t))
		y = y.Add(w.amp.Mul(fix64.Sin(phase)))
	}
	return y
}

func (s *sandbox) draw() {
	s.screen.Clear()
	if s.width < 4 || s.height < 6 {
		s.screen.Show()
		return
	}

	mid := s.height / 2
	span := fix64.FromInt(mid - 3)
	rowScale, _ := span.Div(s.totalAmp) // totalAmp > 0

	for x := 0; x < s.width; x++ {
		y := s.surface(x)
		row := mid - y.Mul(rowScale).Round().Int()
		if row < 1 || row >= s.height-2 {
			continue
		}

		// Brightness follows the normalized crest height.
		level, _ := y.Abs().Div(s.totalAmp)
		c := 120 + int32(level.Mul(fix64.FromInt(135)).Int())
		if c > 255 {
			c = 255
		}
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(0, c, 255-c/2))
		s.screen.SetContent(x, row, '█', nil, style)
		s.screen.SetContent(x, mid, '·', nil, tcell.StyleDefault.Foreground(tcell.ColorGray))
	}

	// The twin walkers share one marker while they agree.
	wx := s.width/2 + s.posA.X.Round().Int()
	wy := mid + s.posA.Y.Round().Int()/2
	if wx >= 0 && wx < s.width && wy >= 1 && wy < s.height-2 {
		s.screen.SetContent(wx, wy, '◆', nil, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}

	status := fmt.Sprintf(" t=%s steps=%d twins=OK ", s.t, s.steps)
	styleOK := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	if !s.twinsOK {
		status = fmt.Sprintf(" t=%s steps=%d twins=FAIL ", s.t, s.steps)
		styleOK = tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true)
	}
	drawText(s.screen, 1, s.height-1, status, styleOK)
	drawText(s.screen, 1, 0, " wave-sandbox  q/ESC quits ", tcell.StyleDefault.Foreground(tcell.ColorWhite))

	s.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
	case *tcell.EventResize:
		s.width, s.height = s.screen.Size()
	}
	return true
}

func (s *sandbox) run() {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- s.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !s.handleInput(ev) {
				return
			}
		case <-ticker.C:
			s.step()
			s.draw()
		}
	}
}

func main() {
	// Panic recovery: the screen defer runs first, so the crash report
	// prints to a restored terminal.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "wave-sandbox crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "load %s: %v\n", *configPath, err)
			os.Exit(1)
		}
	}

	s, err := newSandbox(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer s.screen.Fini()

	s.run()
}
