package slots

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/mkrug/croupier/internal/services/slots Service

// Service runs the slot machine and the dice game
type Service interface {
	// Spin escrows the bid, spins the reels, and settles the payline
	Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error)

	// PlayDice escrows the bid and pays six to one on a correct guess
	PlayDice(ctx context.Context, input *PlayDiceInput) (*PlayDiceOutput, error)
}
