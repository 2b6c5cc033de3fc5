package bank

import (
	"github.com/mkrug/croupier/internal/common/clock"
	"github.com/mkrug/croupier/internal/models"
	accountRepo "github.com/mkrug/croupier/internal/repositories/account"
	settingsRepo "github.com/mkrug/croupier/internal/repositories/settings"
)

// Config holds configuration for the bank service
type Config struct {
	// Repository dependencies
	AccountRepo  accountRepo.Repository
	SettingsRepo settingsRepo.Repository

	// Service dependencies
	Clock clock.Clock
}

// CreateAccountInput contains parameters for opening an account
type CreateAccountInput struct {
	GuildID        string
	OwnerID        string
	OwnerName      string
	InitialBalance int64
}

// CreateAccountOutput contains the result of opening an account
type CreateAccountOutput struct {
	Account *models.Account
}

// RegisterInput contains parameters for registering with guild defaults
type RegisterInput struct {
	GuildID   string
	OwnerID   string
	OwnerName string
}

// RegisterOutput contains the result of registering
type RegisterOutput struct {
	Account *models.Account
}

// GetBalanceInput contains parameters for reading a balance
type GetBalanceInput struct {
	GuildID string
	OwnerID string
}

// GetBalanceOutput contains the result of reading a balance
type GetBalanceOutput struct {
	Balance int64
}

// DepositInput contains parameters for crediting an account
type DepositInput struct {
	GuildID string
	OwnerID string
	Amount  int64
}

// DepositOutput contains the balance after the deposit
type DepositOutput struct {
	Balance int64
}

// WithdrawInput contains parameters for debiting an account
type WithdrawInput struct {
	GuildID string
	OwnerID string
	Amount  int64
}

// WithdrawOutput contains the balance after the withdrawal
type WithdrawOutput struct {
	Balance int64
}

// SetBalanceInput contains parameters for overwriting a balance
type SetBalanceInput struct {
	GuildID string
	OwnerID string
	Amount  int64
}

// SetBalanceOutput contains the balance after the overwrite
type SetBalanceOutput struct {
	Balance int64
}

// TransferInput contains parameters for a transfer between accounts
type TransferInput struct {
	GuildID string
	FromID  string
	ToID    string
	Amount  int64
}

// TransferOutput contains the balances after the transfer
type TransferOutput struct {
	FromBalance int64
	ToBalance   int64
}

// CanSpendInput contains parameters for a spending check
type CanSpendInput struct {
	GuildID string
	OwnerID string
	Amount  int64
}

// CanSpendOutput contains the result of a spending check
type CanSpendOutput struct {
	CanSpend bool
}

// PaydayInput contains parameters for collecting a payday
type PaydayInput struct {
	GuildID string
	OwnerID string
}

// PaydayOutput contains the result of collecting a payday
type PaydayOutput struct {
	Credits int64
	Balance int64
}

// LeaderboardEntry is one row of the balance leaderboard
type LeaderboardEntry struct {
	OwnerID   string
	OwnerName string
	Balance   int64
}

// LeaderboardInput contains parameters for the leaderboard
type LeaderboardInput struct {
	GuildID string

	// Top limits the number of entries; defaults to 10
	Top int
}

// LeaderboardOutput contains the ranked entries
type LeaderboardOutput struct {
	Entries []LeaderboardEntry
}

// WipeGuildInput contains parameters for wiping a guild's accounts
type WipeGuildInput struct {
	GuildID string
}

// WipeGuildOutput contains the result of wiping a guild's accounts
type WipeGuildOutput struct {
	Success bool
}
