package genarena

// settings collects construction-time knobs shared by New and
// NewSecondaryMap.
type settings struct {
	capacity int
}

// Option configures an Arena or a SecondaryMap at construction time.
type Option func(*settings)

// WithCapacity pre-sizes the backing slot store for n entries. Choosing
// a suitable capacity avoids re-allocations while the structure grows;
// it has no observable effect beyond that. Non-positive values are
// ignored.
func WithCapacity(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.capacity = n
		}
	}
}

func resolveSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
