package account

import (
	"context"

	"github.com/mkrug/croupier/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mkrug/croupier/internal/repositories/account Repository

// Repository defines the interface for account persistence
type Repository interface {
	// SaveAccount persists an account
	SaveAccount(ctx context.Context, input *SaveAccountInput) error

	// GetAccount retrieves an account by guild and owner
	GetAccount(ctx context.Context, input *GetAccountInput) (*models.Account, error)

	// GetGuildAccounts retrieves all accounts in a guild
	GetGuildAccounts(ctx context.Context, input *GetGuildAccountsInput) (*GetGuildAccountsOutput, error)

	// WipeGuild deletes every account in a guild
	WipeGuild(ctx context.Context, input *WipeGuildInput) error

	// SetCooldown records a named per-user cooldown that expires on its own
	SetCooldown(ctx context.Context, input *SetCooldownInput) error

	// OnCooldown reports whether a named per-user cooldown is still active
	OnCooldown(ctx context.Context, input *OnCooldownInput) (bool, error)
}
