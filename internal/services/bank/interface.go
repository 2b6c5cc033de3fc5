package bank

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/mkrug/croupier/internal/services/bank Service

// Service defines the interface for wallet ledger operations. Every
// mutating call persists the account before returning.
type Service interface {
	// CreateAccount opens an account with an explicit starting balance
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error)

	// Register opens an account with the guild's configured starting credits
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// GetBalance returns the current balance of an account
	GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error)

	// Deposit credits an account
	Deposit(ctx context.Context, input *DepositInput) (*DepositOutput, error)

	// Withdraw debits an account
	Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error)

	// SetBalance overwrites an account's balance
	SetBalance(ctx context.Context, input *SetBalanceInput) (*SetBalanceOutput, error)

	// Transfer moves credits between two accounts atomically
	Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error)

	// CanSpend reports whether an account exists with at least the given balance
	CanSpend(ctx context.Context, input *CanSpendInput) (*CanSpendOutput, error)

	// Payday deposits the guild's payday credits, subject to a cooldown
	Payday(ctx context.Context, input *PaydayInput) (*PaydayOutput, error)

	// Leaderboard returns the guild's accounts ranked by balance
	Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error)

	// WipeGuild deletes every account in a guild
	WipeGuild(ctx context.Context, input *WipeGuildInput) (*WipeGuildOutput, error)
}
