package slots

import (
	"github.com/mkrug/croupier/internal/dice"
	accountRepo "github.com/mkrug/croupier/internal/repositories/account"
	settingsRepo "github.com/mkrug/croupier/internal/repositories/settings"
	"github.com/mkrug/croupier/internal/services/bank"
)

// Symbol is one face on the slot machine reels
type Symbol string

const (
	SymbolCherries  Symbol = "cherries"
	SymbolCookie    Symbol = "cookie"
	SymbolTwo       Symbol = "two"
	SymbolClover    Symbol = "clover"
	SymbolCyclone   Symbol = "cyclone"
	SymbolSunflower Symbol = "sunflower"
	SymbolSix       Symbol = "six"
	SymbolMushroom  Symbol = "mushroom"
	SymbolHeart     Symbol = "heart"
	SymbolSnowflake Symbol = "snowflake"
)

// reel is the ring of symbols every reel spins through. Each reel stops
// on an independent position; the display shows the stop plus its two
// ring neighbours.
var reel = []Symbol{
	SymbolCherries, SymbolCookie, SymbolTwo, SymbolClover, SymbolCyclone,
	SymbolSunflower, SymbolSix, SymbolMushroom, SymbolHeart, SymbolSnowflake,
}

// Config holds configuration for the slots service
type Config struct {
	// Service dependencies
	Bank         bank.Service
	SettingsRepo settingsRepo.Repository
	AccountRepo  accountRepo.Repository
	Roller       dice.Roller
}

// SpinInput contains parameters for one slot machine spin
type SpinInput struct {
	GuildID    string
	PlayerID   string
	PlayerName string
	Bid        int64
}

// SpinOutput contains the reel display and the settled result
type SpinOutput struct {
	// Rows is the 3x3 display; Rows[1] is the payline
	Rows [3][3]Symbol

	// Payout is the total credited back, bid included on a win
	Payout int64

	// Net is Payout minus the bid
	Net int64

	// Jackpot marks the 2-2-6 line
	Jackpot bool

	Balance int64
}

// PlayDiceInput contains parameters for one dice game round
type PlayDiceInput struct {
	GuildID    string
	PlayerID   string
	PlayerName string
	Guess      int
	Bid        int64
}

// PlayDiceOutput contains the roll and the settled result
type PlayDiceOutput struct {
	Roll    int
	Won     bool
	Payout  int64
	Net     int64
	Balance int64
}
