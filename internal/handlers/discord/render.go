package discord

import (
	"fmt"
	"strings"

	"github.com/mkrug/croupier/internal/deck"
	"github.com/mkrug/croupier/internal/services/bank"
	"github.com/mkrug/croupier/internal/services/slots"
)

// symbolEmoji maps reel symbols to their display emoji
var symbolEmoji = map[slots.Symbol]string{
	slots.SymbolCherries:  "\U0001F352",
	slots.SymbolCookie:    "\U0001F36A",
	slots.SymbolTwo:       "2️⃣",
	slots.SymbolClover:    "\U0001F340",
	slots.SymbolCyclone:   "\U0001F300",
	slots.SymbolSunflower: "\U0001F33B",
	slots.SymbolSix:       "6️⃣",
	slots.SymbolMushroom:  "\U0001F344",
	slots.SymbolHeart:     "❤️",
	slots.SymbolSnowflake: "❄️",
}

// renderSlotGrid formats the 3x3 reel display with a marker on the payline
func renderSlotGrid(rows [3][3]slots.Symbol) string {
	var sb strings.Builder
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			sb.WriteString(symbolEmoji[rows[r][c]])
			sb.WriteString(" ")
		}
		if r == 1 {
			sb.WriteString("⬅️")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderDeckList formats the shoe composition as a rank-by-rank table
func renderDeckList(live, discard map[deck.Rank]int) string {
	var sb strings.Builder
	sb.WriteString("```\nrank    live  drawn\n")
	for _, rank := range deck.Ranks {
		sb.WriteString(fmt.Sprintf("%-7s %4d  %5d\n", rank, live[rank], discard[rank]))
	}
	sb.WriteString("```")
	return sb.String()
}

// renderLeaderboard formats the guild balance rankings
func renderLeaderboard(entries []bank.LeaderboardEntry) string {
	if len(entries) == 0 {
		return "Nobody has an account yet."
	}

	var sb strings.Builder
	for rank, entry := range entries {
		sb.WriteString(fmt.Sprintf("%d. **%s** — %d credits\n", rank+1, entry.OwnerName, entry.Balance))
	}
	return sb.String()
}
