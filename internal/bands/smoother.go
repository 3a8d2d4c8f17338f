package bands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/harmonica"
)

const (
	// DefaultAttack is the weight given to a rising target.
	DefaultAttack = 0.6
	// DefaultDecay is the fraction of a level kept when the target does not rise.
	DefaultDecay = 0.9

	DefaultSpringFrequency = 6.0
	DefaultSpringDamping   = 0.5
)

// Smoother moves a State toward one frame of raw band bytes. Update is only
// called when a new frame arrives, never on idle ticks, and the frame always
// has the same length as the state.
type Smoother interface {
	Name() string
	Update(s *State, frame []byte)
}

// Options selects and tunes a Smoother.
type Options struct {
	Kind            string
	Attack          float64
	Decay           float64
	SpringFrequency float64
	SpringDamping   float64
	FPS             int
}

// Kinds lists the smoother names accepted by New.
func Kinds() []string {
	return []string{"exponential", "direct", "spring"}
}

// New builds the smoother named by opts.Kind.
func New(opts Options) (Smoother, error) {
	switch strings.ToLower(opts.Kind) {
	case "", "exponential":
		return NewExponential(opts.Attack, opts.Decay), nil
	case "direct":
		return Direct{}, nil
	case "spring":
		return NewSpring(opts.FPS, opts.SpringFrequency, opts.SpringDamping), nil
	default:
		return nil, fmt.Errorf("unknown smoothing %q (want one of %s)", opts.Kind, strings.Join(Kinds(), ", "))
	}
}

// Exponential rises quickly toward a higher target and otherwise decays
// multiplicatively toward zero, leaving a falling trail.
type Exponential struct {
	Attack float64
	Decay  float64
}

// NewExponential returns an Exponential filter. Zero arguments fall back to
// DefaultAttack and DefaultDecay.
func NewExponential(attack, decay float64) *Exponential {
	if attack == 0 {
		attack = DefaultAttack
	}
	if decay == 0 {
		decay = DefaultDecay
	}
	return &Exponential{Attack: attack, Decay: decay}
}

func (e *Exponential) Name() string { return "exponential" }

func (e *Exponential) Update(s *State, frame []byte) {
	for i, b := range frame {
		target := Level(b)
		cur := s.values[i]
		if target > cur {
			cur = cur*(1-e.Attack) + target*e.Attack
		} else {
			// Decay ignores how far below the target sits.
			cur *= e.Decay
		}
		s.values[i] = clamp01(cur)
	}
}

// Direct shows each frame as received.
type Direct struct{}

func (Direct) Name() string { return "direct" }

func (Direct) Update(s *State, frame []byte) {
	for i, b := range frame {
		s.values[i] = Level(b)
	}
}

// Spring pulls every band toward its target through a damped spring, stepped
// once per frame.
type Spring struct {
	spring harmonica.Spring
	vel    []float64
}

// NewSpring returns a Spring stepped at fps frames per second.
func NewSpring(fps int, frequency, damping float64) *Spring {
	if fps <= 0 {
		fps = 30
	}
	if frequency == 0 {
		frequency = DefaultSpringFrequency
	}
	if damping == 0 {
		damping = DefaultSpringDamping
	}
	return &Spring{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

func (sp *Spring) Name() string { return "spring" }

func (sp *Spring) Update(s *State, frame []byte) {
	if len(sp.vel) != s.Len() {
		sp.vel = make([]float64, s.Len())
	}
	for i, b := range frame {
		pos, vel := sp.spring.Update(s.values[i], sp.vel[i], Level(b))
		// The spring overshoots; keep the level inside the bar.
		if pos < 0 || pos > 1 {
			vel = 0
		}
		s.values[i] = clamp01(pos)
		sp.vel[i] = vel
	}
}
