package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fixmath/fix64"
	"github.com/lixenwraith/fixmath/fixrand"
)

// Audible determinism check: a melody is drawn from a seeded stream and
// synthesized by a fixed-point oscillator, so one seed is one exact melody.
// Without an audio device the same samples fold into a printed checksum
// instead, which still pins every bit of the synthesis.

var (
	seed     = flag.Uint64("seed", 1, "Melody seed")
	notes    = flag.Int("notes", 16, "Notes to play")
	tempo    = flag.Int("tempo", 140, "Beats per minute")
	headless = flag.Bool("headless", false, "Skip audio output, print the sample checksum only")
)

const rate = beep.SampleRate(44100)

// A minor pentatonic. Decimal strings keep the reference pitches exact in
// fixed point.
var scale = []struct {
	name string
	freq fix64.Fix64
}{
	{"A3", fix64.MustParse("220")},
	{"C4", fix64.MustParse("261.625")},
	{"D4", fix64.MustParse("293.665")},
	{"E4", fix64.MustParse("329.6275")},
	{"G4", fix64.MustParse("391.995")},
	{"A4", fix64.MustParse("440")},
}

// note is a sine voice with a linear attack/release envelope. All phase and
// amplitude state lives in fix64; samples cross to float only at the speaker
// boundary.
type note struct {
	step     fix64.Fix64 // phase advance per sample, in turns
	phase    fix64.Fix64 // current phase in [0, 1) turns
	total    int
	position int

	attack      int
	release     int
	attackStep  fix64.Fix64
	releaseStep fix64.Fix64
}

func newNote(freq fix64.Fix64, duration time.Duration) *note {
	total := rate.N(duration)
	attack := rate.N(5 * time.Millisecond)
	release := rate.N(40 * time.Millisecond)
	if attack+release > total {
		attack = total / 2
		release = total - attack
	}

	step, _ := freq.Div(fix64.FromInt(int(rate))) // rate is a nonzero constant
	n := &note{
		step:    step,
		total:   total,
		attack:  attack,
		release: release,
	}
	if attack > 0 {
		n.attackStep, _ = fix64.One.Div(fix64.FromInt(attack))
	}
	if release > 0 {
		n.releaseStep, _ = fix64.One.Div(fix64.FromInt(release))
	}
	return n
}

func (n *note) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.position >= n.total {
			return i, false
		}

		v := fix64.Sin(fix64.TwoPi.Mul(n.phase))

		vol := fix64.One
		if n.position < n.attack {
			vol = n.attackStep.Mul(fix64.FromInt(n.position))
		} else if remaining := n.total - n.position; remaining < n.release {
			vol = n.releaseStep.Mul(fix64.FromInt(remaining))
		}

		sample := v.Mul(vol).Float64()
		samples[i][0] = sample
		samples[i][1] = sample

		n.phase = n.phase.Add(n.step).Frac()
		n.position++
	}
	return len(samples), true
}

func (n *note) Err() error { return nil }

// melody draws the note sequence for a seed. The draw order is part of the
// replay contract: one IntN per note, nothing else.
func melody(seed uint64, count int) []int {
	g := fixrand.Derive(seed, "melody", 0)
	idx := make([]int, count)
	for i := range idx {
		v, _ := g.IntN(int64(len(scale))) // constant bound, cannot fail
		idx[i] = int(v)
	}
	return idx
}

func main() {
	flag.Parse()

	beat := time.Minute / time.Duration(*tempo)
	seq := melody(*seed, *notes)

	fmt.Printf("seed %d, %d notes at %d bpm:", *seed, *notes, *tempo)
	for _, i := range seq {
		fmt.Printf(" %s", scale[i].name)
	}
	fmt.Println()

	audio := !*headless
	if audio {
		if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
			// Non-fatal, fall through to the checksum path
			fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
			audio = false
		}
	}

	if !audio {
		fmt.Printf("sample checksum: %016x\n", checksum(seq, beat))
		return
	}
	defer speaker.Close()

	streamers := make([]beep.Streamer, 0, len(seq)*2+1)
	for _, i := range seq {
		streamers = append(streamers,
			newNote(scale[i].freq, beat),
			beep.Silence(rate.N(20*time.Millisecond)),
		)
	}
	done := make(chan struct{})
	streamers = append(streamers, beep.Callback(func() { close(done) }))

	speaker.Play(beep.Seq(streamers...))
	<-done
}

// checksum folds every synthesized sample bit into one word, FNV-1a style.
func checksum(seq []int, beat time.Duration) uint64 {
	const prime = 1099511628211
	sum := uint64(14695981039346656037)

	var buf [512][2]float64
	for _, i := range seq {
		n := newNote(scale[i].freq, beat)
		for {
			count, ok := n.Stream(buf[:])
			for s := 0; s < count; s++ {
				sum ^= math.Float64bits(buf[s][0])
				sum *= prime
			}
			if !ok {
				break
			}
		}
	}
	return sum
}
