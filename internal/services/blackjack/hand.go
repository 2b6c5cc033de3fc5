package blackjack

import (
	"fmt"
	"strings"

	"github.com/mkrug/croupier/internal/deck"
)

// Hand is one wagered hand of cards. A player starts with a single hand
// and gains more by splitting; the dealer always has exactly one.
type Hand struct {
	Cards    []deck.Card
	Bet      int64
	Standing bool

	// reduced counts aces demoted from 11 to 1 to keep the hand under 21.
	// Demotion is stable: once an ace is reduced it stays reduced, and
	// the earliest aces reduce first.
	reduced int
}

// NewHand creates an empty hand carrying the given wager
func NewHand(bet int64) *Hand {
	return &Hand{Bet: bet}
}

// AddCard adds a card and re-applies ace demotion
func (h *Hand) AddCard(card deck.Card) {
	h.Cards = append(h.Cards, card)

	aces := 0
	for _, c := range h.Cards {
		if c.IsAce() {
			aces++
		}
	}
	for h.rawScore()-10*h.reduced > 21 && h.reduced < aces {
		h.reduced++
	}
}

// rawScore sums base values with every ace at 11
func (h *Hand) rawScore() int {
	total := 0
	for _, c := range h.Cards {
		total += c.Value
	}
	return total
}

// Score returns the hand total with demoted aces counted as 1
func (h *Hand) Score() int {
	return h.rawScore() - 10*h.reduced
}

// IsSoft reports whether an ace is still being counted as 11
func (h *Hand) IsSoft() bool {
	aces := 0
	for _, c := range h.Cards {
		if c.IsAce() {
			aces++
		}
	}
	return aces > h.reduced
}

// IsBust reports whether the hand total exceeds 21
func (h *Hand) IsBust() bool {
	return h.Score() > 21
}

// IsBlackjack reports whether the hand is a natural: exactly two cards,
// an ace still worth 11 alongside a ten-value card
func (h *Hand) IsBlackjack() bool {
	if len(h.Cards) != 2 || h.reduced != 0 {
		return false
	}
	return (h.Cards[0].IsAce() && h.Cards[1].IsTenValue()) ||
		(h.Cards[1].IsAce() && h.Cards[0].IsTenValue())
}

// CanSplit reports whether the hand is a splittable pair. Base values
// are compared, so a pair of aces splits even after one was demoted.
func (h *Hand) CanSplit() bool {
	return len(h.Cards) == 2 && !h.Standing &&
		h.Cards[0].Value == h.Cards[1].Value
}

// DisplayTotal renders the total for announcements, showing the hard
// alternative while the hand is soft, e.g. "17 (7)"
func (h *Hand) DisplayTotal() string {
	score := h.Score()
	if h.IsSoft() {
		return fmt.Sprintf("%d (%d)", score, score-10)
	}
	return fmt.Sprintf("%d", score)
}

// DisplayCards renders the cards for announcements
func (h *Hand) DisplayCards() string {
	names := make([]string, 0, len(h.Cards))
	for _, c := range h.Cards {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
