package blackjack

import (
	"context"
	"time"

	"github.com/mkrug/croupier/internal/common/uuid"
	"github.com/mkrug/croupier/internal/deck"
	settingsRepo "github.com/mkrug/croupier/internal/repositories/settings"
	"github.com/mkrug/croupier/internal/services/bank"
)

// Phase identifies where a table is in the round lifecycle
type Phase string

const (
	// PhaseIdle means no round is running; start opens a betting window
	PhaseIdle Phase = "idle"

	// PhaseBetting means the betting window is open
	PhaseBetting Phase = "betting"

	// PhasePlayerTurns means hands are dealt and players act in turn
	PhasePlayerTurns Phase = "player_turns"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_announcer.go github.com/mkrug/croupier/internal/services/blackjack Announcer

// Announcer delivers table chatter to the channel a table lives in. The
// discord handler implements this with a channel message send.
type Announcer interface {
	Announce(ctx context.Context, channelID string, message string) error
}

// Config holds configuration for the blackjack service
type Config struct {
	// Service dependencies
	Bank         bank.Service
	SettingsRepo settingsRepo.Repository
	Announcer    Announcer

	// UUID generator for round IDs; defaults to the real one
	UUID uuid.UUID

	// TickInterval is the coordinator cadence; defaults to one second.
	// Tests shorten it or drive tables directly.
	TickInterval time.Duration

	// Seed for the shoe shuffles; 0 seeds from the wall clock
	Seed int64
}

// StartGameInput contains parameters for opening a table round
type StartGameInput struct {
	GuildID   string
	ChannelID string
}

// StartGameOutput contains the result of opening a table round
type StartGameOutput struct {
	RoundID string
	Message string
}

// StopGameInput contains parameters for force-stopping a table
type StopGameInput struct {
	GuildID   string
	ChannelID string
}

// StopGameOutput contains the result of force-stopping a table
type StopGameOutput struct {
	Message string
}

// PlaceBetInput contains parameters for placing or replacing a bet
type PlaceBetInput struct {
	GuildID    string
	ChannelID  string
	PlayerID   string
	PlayerName string
	Amount     int64
}

// PlaceBetOutput contains the result of placing a bet
type PlaceBetOutput struct {
	Message string
}

// HitInput contains parameters for drawing a card
type HitInput struct {
	GuildID   string
	ChannelID string
	PlayerID  string
}

// HitOutput contains the result of drawing a card
type HitOutput struct {
	Message string
}

// StandInput contains parameters for standing the current hand
type StandInput struct {
	GuildID   string
	ChannelID string
	PlayerID  string
}

// StandOutput contains the result of standing
type StandOutput struct {
	Message string
}

// DoubleInput contains parameters for doubling down
type DoubleInput struct {
	GuildID   string
	ChannelID string
	PlayerID  string
}

// DoubleOutput contains the result of doubling down
type DoubleOutput struct {
	Message string
}

// SplitInput contains parameters for splitting a pair
type SplitInput struct {
	GuildID   string
	ChannelID string
	PlayerID  string
}

// SplitOutput contains the result of splitting
type SplitOutput struct {
	Message string
}

// DeckListInput contains parameters for inspecting a table's shoe
type DeckListInput struct {
	GuildID   string
	ChannelID string
}

// DeckListOutput contains rank histograms for the shoe
type DeckListOutput struct {
	Live    map[deck.Rank]int
	Discard map[deck.Rank]int
}
