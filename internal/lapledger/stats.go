package lapledger

import "time"

// Stats summarizes recorded laps.
//
// It is recomputed from the ledger on demand rather than maintained
// incrementally, so it is always consistent with the laps it describes.
type Stats struct {
	// Fastest and Slowest flag each lap holding the extreme split.
	// Ties share the flag: every lap at the extreme value is flagged.
	Fastest []bool
	Slowest []bool

	// AllEqual reports that every split matches, including the
	// single-lap case. No lap is flagged then: an extreme that everyone
	// holds singles out nobody.
	AllEqual bool

	// HasAverage reports whether Average and Deltas are meaningful.
	// A mean over fewer than two laps carries no information.
	HasAverage bool

	// Average is the mean split duration.
	Average time.Duration

	// Deltas[i] is laps[i].Split - Average. Positive means slower than
	// average, negative faster. The sign is kept for display.
	Deltas []time.Duration
}

// Stats computes summary statistics over the recorded laps.
func (l *Ledger) Stats() Stats {
	n := len(l.laps)
	s := Stats{
		Fastest:  make([]bool, n),
		Slowest:  make([]bool, n),
		AllEqual: true,
	}
	if n == 0 {
		return s
	}

	fastest, slowest := l.laps[0].Split, l.laps[0].Split
	var sum time.Duration
	for _, lap := range l.laps {
		if lap.Split < fastest {
			fastest = lap.Split
		}
		if lap.Split > slowest {
			slowest = lap.Split
		}
		sum += lap.Split
	}

	s.AllEqual = fastest == slowest
	if !s.AllEqual {
		for i, lap := range l.laps {
			s.Fastest[i] = lap.Split == fastest
			s.Slowest[i] = lap.Split == slowest
		}
	}

	if n >= 2 {
		s.HasAverage = true
		s.Average = sum / time.Duration(n)
		s.Deltas = make([]time.Duration, n)
		for i, lap := range l.laps {
			s.Deltas[i] = lap.Split - s.Average
		}
	}

	return s
}
