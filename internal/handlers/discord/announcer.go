package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// ChannelAnnouncer delivers game chatter by posting plain messages to
// the channel a table lives in. It satisfies the blackjack service's
// Announcer interface.
type ChannelAnnouncer struct {
	session *discordgo.Session
}

// NewChannelAnnouncer creates an announcer backed by a Discord session
func NewChannelAnnouncer(session *discordgo.Session) *ChannelAnnouncer {
	return &ChannelAnnouncer{session: session}
}

// Announce posts a message to the channel
func (a *ChannelAnnouncer) Announce(ctx context.Context, channelID string, message string) error {
	if _, err := a.session.ChannelMessageSend(channelID, message); err != nil {
		return fmt.Errorf("failed to send message to channel %s: %w", channelID, err)
	}
	return nil
}
