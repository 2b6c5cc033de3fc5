package deck

import "fmt"

// Suit identifies one of the four card suits
type Suit string

const (
	SuitHearts   Suit = "hearts"
	SuitDiamonds Suit = "diamonds"
	SuitClubs    Suit = "clubs"
	SuitSpades   Suit = "spades"
)

// Suits lists all suits in a stable order
var Suits = []Suit{SuitHearts, SuitDiamonds, SuitClubs, SuitSpades}

// Rank identifies a card rank
type Rank string

const (
	RankTwo   Rank = "2"
	RankThree Rank = "3"
	RankFour  Rank = "4"
	RankFive  Rank = "5"
	RankSix   Rank = "6"
	RankSeven Rank = "7"
	RankEight Rank = "8"
	RankNine  Rank = "9"
	RankTen   Rank = "10"
	RankJack  Rank = "jack"
	RankQueen Rank = "queen"
	RankKing  Rank = "king"
	RankAce   Rank = "ace"
)

// Ranks lists all ranks in a stable order
var Ranks = []Rank{
	RankAce, RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven,
	RankEight, RankNine, RankTen, RankJack, RankQueen, RankKing,
}

// Card is a single playing card. Value is the blackjack base value: face
// cards count 10, aces count 11 until a hand demotes them.
type Card struct {
	Rank  Rank
	Suit  Suit
	Value int
}

// String returns the card description used in announcements, e.g. "ace of spades"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Rank == RankAce
}

// IsTenValue reports whether the card counts as ten (10, jack, queen, king)
func (c Card) IsTenValue() bool {
	return c.Value == 10
}

// baseValue returns the blackjack value for a rank
func baseValue(rank Rank) int {
	switch rank {
	case RankAce:
		return 11
	case RankJack, RankQueen, RankKing, RankTen:
		return 10
	case RankTwo:
		return 2
	case RankThree:
		return 3
	case RankFour:
		return 4
	case RankFive:
		return 5
	case RankSix:
		return 6
	case RankSeven:
		return 7
	case RankEight:
		return 8
	case RankNine:
		return 9
	default:
		return 0
	}
}

// NewCard creates a card with the standard blackjack value for its rank
func NewCard(rank Rank, suit Suit) Card {
	return Card{
		Rank:  rank,
		Suit:  suit,
		Value: baseValue(rank),
	}
}

// standardSet returns one full 52-card set
func standardSet() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}
