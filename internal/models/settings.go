package models

// GameSettings holds the per-guild knobs for the casino games. A guild
// without stored settings plays with DefaultGameSettings.
type GameSettings struct {
	GuildID string `json:"guild_id"`

	// Blackjack
	BlackjackMinBet int64 `json:"blackjack_min_bet"`
	BlackjackMaxBet int64 `json:"blackjack_max_bet"`
	BettingSeconds  int   `json:"betting_seconds"`
	TurnSeconds     int   `json:"turn_seconds"`
	DeckCount       int   `json:"deck_count"`

	// Slots
	SlotMinBid      int64 `json:"slot_min_bid"`
	SlotMaxBid      int64 `json:"slot_max_bid"`
	SlotCooldownSec int   `json:"slot_cooldown_sec"`

	// Economy
	PaydayCredits     int64 `json:"payday_credits"`
	PaydayCooldownSec int   `json:"payday_cooldown_sec"`
	RegisterCredits   int64 `json:"register_credits"`
}

// DefaultGameSettings returns the settings a guild starts with
func DefaultGameSettings(guildID string) *GameSettings {
	return &GameSettings{
		GuildID:           guildID,
		BlackjackMinBet:   0,
		BlackjackMaxBet:   100000,
		BettingSeconds:    20,
		TurnSeconds:       60,
		DeckCount:         2,
		SlotMinBid:        5,
		SlotMaxBid:        100,
		SlotCooldownSec:   0,
		PaydayCredits:     120,
		PaydayCooldownSec: 300,
		RegisterCredits:   0,
	}
}
