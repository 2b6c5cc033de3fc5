package blackjack

import "context"

// Service runs blackjack tables, one per channel
type Service interface {
	// StartGame opens a betting window at the channel's table
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// StopGame cancels the channel's round immediately. Escrowed bets are
	// not refunded.
	StopGame(ctx context.Context, input *StopGameInput) (*StopGameOutput, error)

	// PlaceBet escrows a wager during the betting window. A repeat bet
	// refunds the earlier wager first; only the latest bet counts.
	PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error)

	// Hit draws a card into the player's current hand
	Hit(ctx context.Context, input *HitInput) (*HitOutput, error)

	// Stand finishes the player's current hand
	Stand(ctx context.Context, input *StandInput) (*StandOutput, error)

	// Double doubles the wager, draws exactly one card, and stands
	Double(ctx context.Context, input *DoubleInput) (*DoubleOutput, error)

	// Split turns a pair into two independently played hands
	Split(ctx context.Context, input *SplitInput) (*SplitOutput, error)

	// DeckList reports the rank composition of the channel's shoe
	DeckList(ctx context.Context, input *DeckListInput) (*DeckListOutput, error)

	// Close stops all table coordinators
	Close()
}
