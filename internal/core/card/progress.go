// Package card contains the pure business logic for stamp card progression.
// This is part of the Functional Core - no I/O, only pure functions.
//
// All derived card state is recomputed from the full stamp history rather
// than kept in incrementally maintained counters, so edits and deletions
// can never make the counters drift from the records.
package card

import (
	"errors"
	"time"
)

// DefaultCapacity is the number of stamps per card when the user has not
// configured a target yet.
const DefaultCapacity = 30

// Sentinel errors for precondition violations. All are local, recoverable
// validation failures; callers match them with errors.Is.
var (
	// ErrInvalidConfiguration indicates a capacity <= 0 was supplied.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrRecordLocked indicates a mutation was attempted on a stamp whose
	// card has already been acknowledged.
	ErrRecordLocked = errors.New("record locked")
	// ErrInvalidTransition indicates an advance to a card index that is not
	// strictly greater than the acknowledgment cursor.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrAwaitingReview indicates a stamp was attempted while the filled
	// card is still waiting for the user's advance decision.
	ErrAwaitingReview = errors.New("card awaiting review")
)

// Stamp is the calculator's view of one stamp record. CardIndex, Position
// and Capacity are the values captured when the stamp was created; they are
// never recalculated from current settings.
type Stamp struct {
	ID        string
	CardIndex int
	Position  int
	Capacity  int
	StampedAt time.Time
}

// Progress is a snapshot of all derived card state for one input set.
// Every consumer (ledger, display) reads "is full" from here so there is a
// single definition of the filled state.
type Progress struct {
	TotalStamps      int
	CompletedCards   int
	JustFilled       bool
	AwaitingReview   bool
	CurrentCardIndex int
	StampsOnCurrent  int
	StampedToday     bool
}

// TotalStamps counts all stamp records.
func TotalStamps(stamps []Stamp) int {
	return len(stamps)
}

// CompletedCardCount returns floor(total/capacity), the number of cards
// that have been filled to capacity.
func CompletedCardCount(totalStamps, capacity int) (int, error) {
	if capacity <= 0 {
		return 0, ErrInvalidConfiguration
	}
	return totalStamps / capacity, nil
}

// IsCardJustFilled reports whether the active card has exactly reached
// capacity: total is a positive exact multiple of capacity.
func IsCardJustFilled(totalStamps, capacity int) (bool, error) {
	if capacity <= 0 {
		return false, ErrInvalidConfiguration
	}
	return totalStamps > 0 && totalStamps%capacity == 0, nil
}

// IsAwaitingReview reports whether the active card is full AND the user has
// not yet acknowledged it. Filling a card does not start the next one; the
// user must take the explicit advance action first.
func IsAwaitingReview(totalStamps, capacity, lastAcknowledged int) (bool, error) {
	justFilled, err := IsCardJustFilled(totalStamps, capacity)
	if err != nil {
		return false, err
	}
	if !justFilled {
		return false, nil
	}
	completed := totalStamps / capacity
	return lastAcknowledged < completed, nil
}

// CurrentDisplayCardIndex returns the card shown to the user, which is also
// the index a stamp added right now would land on: the filled card while it
// awaits review, otherwise the card after the last completed one.
func CurrentDisplayCardIndex(totalStamps, capacity, lastAcknowledged int) (int, error) {
	awaiting, err := IsAwaitingReview(totalStamps, capacity, lastAcknowledged)
	if err != nil {
		return 0, err
	}
	completed := totalStamps / capacity
	if awaiting {
		return completed, nil
	}
	return completed + 1, nil
}

// StampsOnCard returns the stamps whose captured CardIndex equals cardIndex.
func StampsOnCard(stamps []Stamp, cardIndex int) []Stamp {
	var out []Stamp
	for _, s := range stamps {
		if s.CardIndex == cardIndex {
			out = append(out, s)
		}
	}
	return out
}

// NextPosition returns the lowest position not occupied on the card.
// For a card without deletion gaps this is count+1; after a mid-card
// deletion the gap is filled first, so positions stay unique and within
// the captured capacity. Existing stamps are never renumbered.
func NextPosition(stamps []Stamp, cardIndex int) int {
	occupied := make(map[int]bool)
	for _, s := range stamps {
		if s.CardIndex == cardIndex {
			occupied[s.Position] = true
		}
	}
	pos := 1
	for occupied[pos] {
		pos++
	}
	return pos
}

// HasStampedToday reports whether the most recent stamp falls on the same
// calendar day as now, in now's location. Calendar-day based, not rolling
// 24h: a stamp at 23:59 and a check at 00:01 count as different days.
func HasStampedToday(stamps []Stamp, now time.Time) bool {
	latest, ok := latestStamp(stamps)
	if !ok {
		return false
	}
	y1, m1, d1 := now.Date()
	y2, m2, d2 := latest.StampedAt.In(now.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// ComputeProgress derives the full progression snapshot in one pass.
// Capacity <= 0 fails with ErrInvalidConfiguration; callers reading the
// configured target substitute DefaultCapacity before calling.
func ComputeProgress(stamps []Stamp, capacity, lastAcknowledged int, now time.Time) (Progress, error) {
	if capacity <= 0 {
		return Progress{}, ErrInvalidConfiguration
	}

	total := TotalStamps(stamps)
	completed := total / capacity
	justFilled := total > 0 && total%capacity == 0
	awaiting := justFilled && lastAcknowledged < completed

	current := completed + 1
	if awaiting {
		current = completed
	}

	return Progress{
		TotalStamps:      total,
		CompletedCards:   completed,
		JustFilled:       justFilled,
		AwaitingReview:   awaiting,
		CurrentCardIndex: current,
		StampsOnCurrent:  len(StampsOnCard(stamps, current)),
		StampedToday:     HasStampedToday(stamps, now),
	}, nil
}

// latestStamp returns the most recently created stamp: max StampedAt, ties
// broken by the highest ID in natural order.
func latestStamp(stamps []Stamp) (Stamp, bool) {
	if len(stamps) == 0 {
		return Stamp{}, false
	}
	latest := stamps[0]
	for _, s := range stamps[1:] {
		if s.StampedAt.After(latest.StampedAt) {
			latest = s
		} else if s.StampedAt.Equal(latest.StampedAt) && naturalLess(latest.ID, s.ID) {
			latest = s
		}
	}
	return latest, true
}

// naturalLess orders IDs like STAMP-009 < STAMP-010 < STAMP-1000: shorter
// strings sort first, equal lengths fall back to lexicographic order.
func naturalLess(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}
