// Package bands holds the per-band display levels and the filters that move
// them toward each newly received frame.
package bands

// State is one display level per band, each kept in [0,1].
type State struct {
	values []float64
}

// NewState returns a state of n bands, all at zero.
func NewState(n int) *State {
	s := &State{}
	s.Reinit(n)
	return s
}

// Len returns the band count.
func (s *State) Len() int {
	return len(s.values)
}

// Values returns the current levels. Callers must not modify the slice.
func (s *State) Values() []float64 {
	return s.values
}

// At returns the level of band i.
func (s *State) At(i int) float64 {
	return s.values[i]
}

// Set stores a level for band i, clamped to [0,1].
func (s *State) Set(i int, v float64) {
	s.values[i] = clamp01(v)
}

// Reinit discards every level and resizes the state to n zeroed bands. Old
// values are never carried over, even when n is unchanged.
func (s *State) Reinit(n int) {
	if n < 0 {
		n = 0
	}
	s.values = make([]float64, n)
}

// Apply feeds one frame of raw band bytes through sm. A frame whose length
// differs from the state reinitializes the state first; the return value
// reports whether that happened.
func Apply(s *State, frame []byte, sm Smoother) bool {
	reinit := s.Len() != len(frame)
	if reinit {
		s.Reinit(len(frame))
	}
	sm.Update(s, frame)
	return reinit
}

// Level converts a raw band byte to [0,1].
func Level(b byte) float64 {
	return float64(b) / 255.0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
