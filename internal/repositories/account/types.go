package account

import (
	"time"

	"github.com/mkrug/croupier/internal/models"
)

// SaveAccountInput contains parameters for saving an account
type SaveAccountInput struct {
	Account *models.Account
}

// GetAccountInput contains parameters for retrieving an account
type GetAccountInput struct {
	GuildID string
	OwnerID string
}

// GetGuildAccountsInput contains parameters for listing a guild's accounts
type GetGuildAccountsInput struct {
	GuildID string
}

// GetGuildAccountsOutput contains the result of listing a guild's accounts
type GetGuildAccountsOutput struct {
	Accounts []*models.Account
}

// WipeGuildInput contains parameters for wiping a guild's accounts
type WipeGuildInput struct {
	GuildID string
}

// SetCooldownInput contains parameters for recording a cooldown
type SetCooldownInput struct {
	// Name distinguishes cooldown kinds, e.g. "payday"
	Name    string
	GuildID string
	OwnerID string
	TTL     time.Duration
}

// OnCooldownInput contains parameters for checking a cooldown
type OnCooldownInput struct {
	Name    string
	GuildID string
	OwnerID string
}
