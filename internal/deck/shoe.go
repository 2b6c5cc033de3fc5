package deck

import (
	"errors"
	"math/rand"
	"time"
)

// ErrShoeEmpty is returned when drawing from a shoe with no live cards.
// Callers are expected to check NeedsShuffle and reshuffle before this
// can happen in normal play.
var ErrShoeEmpty = errors.New("no cards left in the shoe")

// Config holds configuration for a shoe
type Config struct {
	// Number of 52-card decks in the shoe
	DeckCount int

	// Optional seed for testing
	Seed int64
}

// Shoe is a replenishing pool of cards shared across rounds. Cards move
// from the live queue to the discard pile as they are played, and a
// shuffle redistributes the discard pile back into the live queue.
//
// The shoe is not safe for concurrent use; the owning table serializes
// access.
type Shoe struct {
	live    []Card
	discard []Card
	random  *rand.Rand
}

// New creates a shuffled shoe holding cfg.DeckCount standard decks
func New(cfg *Config) *Shoe {
	deckCount := 2
	var seed int64
	if cfg != nil {
		if cfg.DeckCount > 0 {
			deckCount = cfg.DeckCount
		}
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Shoe{
		random: rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < deckCount; i++ {
		s.discard = append(s.discard, standardSet()...)
	}
	s.Shuffle()

	return s
}

// NewStacked creates a shoe whose live queue yields the given cards in
// order, for deterministic play in tests
func NewStacked(cards ...Card) *Shoe {
	return &Shoe{
		live:   append([]Card{}, cards...),
		random: rand.New(rand.NewSource(1)),
	}
}

// Shuffle moves every live card into the discard pile, then draws cards
// back one at a time, uniformly at random without replacement, until the
// discard pile is empty. The live queue ends up as a uniformly random
// permutation of every card in the shoe.
func (s *Shoe) Shuffle() {
	s.discard = append(s.discard, s.live...)
	s.live = s.live[:0]

	for len(s.discard) > 0 {
		i := s.random.Intn(len(s.discard))
		s.live = append(s.live, s.discard[i])
		s.discard = append(s.discard[:i], s.discard[i+1:]...)
	}
}

// Draw removes and returns the front card of the live queue. The caller
// owns the card until it hands it back via Discard.
func (s *Shoe) Draw() (Card, error) {
	if len(s.live) == 0 {
		return Card{}, ErrShoeEmpty
	}

	card := s.live[0]
	s.live = s.live[1:]
	return card, nil
}

// Discard puts a played card on the discard pile, out of circulation
// until the next shuffle
func (s *Shoe) Discard(card Card) {
	s.discard = append(s.discard, card)
}

// NeedsShuffle reports whether the discard pile has grown past the live
// queue, the trigger for an end-of-round reshuffle
func (s *Shoe) NeedsShuffle() bool {
	return len(s.discard) > len(s.live)
}

// LiveCount returns the number of cards awaiting draw
func (s *Shoe) LiveCount() int {
	return len(s.live)
}

// DiscardCount returns the number of played cards
func (s *Shoe) DiscardCount() int {
	return len(s.discard)
}

// Composition returns rank histograms for the live queue and discard
// pile, in standard rank order
func (s *Shoe) Composition() (live map[Rank]int, discard map[Rank]int) {
	live = make(map[Rank]int)
	discard = make(map[Rank]int)
	for _, card := range s.live {
		live[card.Rank]++
	}
	for _, card := range s.discard {
		discard[card.Rank]++
	}
	return live, discard
}
