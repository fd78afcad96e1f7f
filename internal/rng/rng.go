// Package rng provides the seeded pseudo-random generator that all campaign
// planning randomness is routed through. One Rand instance per plan makes the
// whole plan reproducible from its seed.
package rng

import (
	"log/slog"
	"time"

	"github.com/myrjola/lightfingers/internal/errors"
)

var ErrEmptyList = errors.NewSentinel("cannot pick from empty list")

// Linear congruential generator constants from Knuth's MMIX.
const (
	multiplier uint64 = 6364136223846793005
	increment  uint64 = 1442695040888963407
)

// Rand is a deterministic pseudo-random generator. It is not safe for
// concurrent use; each plan generation owns its own instance.
//
// Cryptographic quality is a non-goal. The generator only needs to produce
// the same sequence for the same seed across platforms and process runs.
type Rand struct {
	state uint64
}

// New constructs a generator from the given seed.
func New(seed int64) *Rand {
	r := Rand{state: uint64(seed)}
	// Burn one step so that small seeds don't produce near-zero first draws.
	r.step()
	return &r
}

// NewFromClock constructs a generator seeded from the current time for
// callers that did not request a specific seed.
func NewFromClock() *Rand {
	return New(time.Now().UnixNano())
}

func (r *Rand) step() uint64 {
	r.state = r.state*multiplier + increment
	return r.state
}

// Next returns a float64 in the half-open interval [0, 1).
func (r *Rand) Next() float64 {
	// Take the top 53 bits so the value fits a float64 mantissa exactly.
	return float64(r.step()>>11) / float64(1<<53)
}

// IntBetween returns an integer in the inclusive range [minVal, maxVal].
func (r *Rand) IntBetween(minVal, maxVal int) int {
	if maxVal <= minVal {
		return minVal
	}
	return minVal + int(r.Next()*float64(maxVal-minVal+1))
}

// Bool performs a Bernoulli draw that is true with the given probability.
func (r *Rand) Bool(probability float64) bool {
	return r.Next() < probability
}

// Pick selects one element uniformly. Returns ErrEmptyList on an empty list.
func Pick[T any](r *Rand, list []T) (T, error) {
	var zero T
	if len(list) == 0 {
		return zero, errors.Wrap(ErrEmptyList, "pick")
	}
	return list[r.IntBetween(0, len(list)-1)], nil
}

// Shuffle returns a new permutation of list without mutating the input.
func Shuffle[T any](r *Rand, list []T) []T {
	shuffled := make([]T, len(list))
	copy(shuffled, list)
	// Fisher-Yates.
	for i := len(shuffled) - 1; i > 0; i-- {
		j := r.IntBetween(0, i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// PickMultiple returns n distinct elements chosen by shuffling a copy of the
// list. The caller guarantees n does not exceed the list length; the result
// is clamped rather than padded if it does.
func PickMultiple[T any](r *Rand, list []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(list) {
		n = len(list)
	}
	return Shuffle(r, list)[:n]
}

// PickWeighted selects an element with probability proportional to its
// weight. Weights align with items by index. Degenerate weights (all zero or
// negative total) fall back to a uniform pick.
func PickWeighted[T any](r *Rand, items []T, weights []float64) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errors.Wrap(ErrEmptyList, "pick weighted")
	}
	if len(weights) != len(items) {
		return zero, errors.New("weights must align with items",
			slog.Int("items", len(items)), slog.Int("weights", len(weights)))
	}
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return Pick(r, items)
	}
	target := r.Next() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		target -= w
		if target < 0 {
			return items[i], nil
		}
	}
	// Floating point rounding can step past the last bucket.
	return items[len(items)-1], nil
}
