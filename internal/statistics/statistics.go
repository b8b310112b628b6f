// Package statistics aggregates round results across a simulation run.
//
// Counters are a fixed struct updated in place, never a rebuilt snapshot
// map, and they only ever increase. Net-chip samples are kept so the
// distribution (median, percentiles, confidence interval) can be reported
// alongside the raw win counts.
package statistics

import (
	"fmt"
	"math"
	"sort"
)

// RoundResult is the outcome of a single completed round.
type RoundResult struct {
	Net int // net chips across all seats this round

	// Round-level outcome flags: a round counts as a player win when any
	// seat won, and likewise for dealer wins and draws.
	PlayerWin bool
	DealerWin bool
	Draw      bool

	Blackjacks      int
	Busts           int
	InsuranceWins   int
	InsuranceLosses int
}

// Statistics tracks cumulative simulation results. Counters are monotonic
// and each completed round updates them exactly once.
type Statistics struct {
	Rounds     int
	PlayerWins int
	DealerWins int
	Draws      int

	Blackjacks      int
	Busts           int
	InsuranceWins   int
	InsuranceLosses int

	SumNet  float64
	SumNet2 float64   // sum of squares for variance
	Values  []float64 // all net samples for median/percentiles
}

// Add incorporates a round result.
func (s *Statistics) Add(r RoundResult) {
	net := float64(r.Net)
	s.Rounds++
	s.SumNet += net
	s.SumNet2 += net * net
	s.Values = append(s.Values, net)

	if r.PlayerWin {
		s.PlayerWins++
	}
	if r.DealerWin {
		s.DealerWins++
	}
	if r.Draw {
		s.Draws++
	}

	s.Blackjacks += r.Blackjacks
	s.Busts += r.Busts
	s.InsuranceWins += r.InsuranceWins
	s.InsuranceLosses += r.InsuranceLosses
}

// Merge folds another statistics accumulator into this one. Used to combine
// per-worker results after a concurrent run.
func (s *Statistics) Merge(o *Statistics) {
	s.Rounds += o.Rounds
	s.PlayerWins += o.PlayerWins
	s.DealerWins += o.DealerWins
	s.Draws += o.Draws
	s.Blackjacks += o.Blackjacks
	s.Busts += o.Busts
	s.InsuranceWins += o.InsuranceWins
	s.InsuranceLosses += o.InsuranceLosses
	s.SumNet += o.SumNet
	s.SumNet2 += o.SumNet2
	s.Values = append(s.Values, o.Values...)
}

// Clone returns an independent copy.
func (s *Statistics) Clone() Statistics {
	out := *s
	out.Values = append([]float64(nil), s.Values...)
	return out
}

// Mean returns the arithmetic mean net chips per round.
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.SumNet / float64(s.Rounds)
}

// Variance returns the sample variance of net chips per round.
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumNet2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// Median returns the median net chips per round.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the value at the given percentile (0.0 to 1.0).
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks internal consistency. Rounds that finish must flag at
// least one outcome and no counter may exceed the round count.
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid round count: %d", s.Rounds)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("sample count (%d) does not match round count (%d)", len(s.Values), s.Rounds)
	}
	if s.PlayerWins > s.Rounds || s.DealerWins > s.Rounds || s.Draws > s.Rounds {
		return fmt.Errorf("outcome counters exceed rounds: wins=%d losses=%d draws=%d rounds=%d",
			s.PlayerWins, s.DealerWins, s.Draws, s.Rounds)
	}
	if s.PlayerWins+s.DealerWins+s.Draws < s.Rounds {
		return fmt.Errorf("every round must flag an outcome: wins=%d losses=%d draws=%d rounds=%d",
			s.PlayerWins, s.DealerWins, s.Draws, s.Rounds)
	}
	return nil
}
