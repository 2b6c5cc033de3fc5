package models

import "time"

// Account is a bank account scoped to a guild. One account exists per
// (guild, owner) pair; balances never go negative and accounts are only
// ever removed in bulk by a guild wipe, never individually.
type Account struct {
	// GuildID is the Discord guild the account belongs to
	GuildID string `json:"guild_id"`

	// OwnerID is the Discord user ID of the account holder
	OwnerID string `json:"owner_id"`

	// OwnerName is the display name captured at registration
	OwnerName string `json:"owner_name"`

	// Balance is the current credit balance, always >= 0
	Balance int64 `json:"balance"`

	// CreatedAt is when the account was opened
	CreatedAt time.Time `json:"created_at"`
}
