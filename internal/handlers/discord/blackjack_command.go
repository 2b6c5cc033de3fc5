package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/mkrug/croupier/internal/services/bank"
	"github.com/mkrug/croupier/internal/services/blackjack"
)

// BlackjackCommand handles the /blackjack command
type BlackjackCommand struct {
	BaseCommand
	blackjackService blackjack.Service
}

// NewBlackjackCommand creates a new blackjack command handler
func NewBlackjackCommand(blackjackService blackjack.Service) *BlackjackCommand {
	return &BlackjackCommand{
		BaseCommand: BaseCommand{
			Name:        "blackjack",
			Description: "Blackjack table commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "start",
					Description: "Open a table in this channel",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stop",
					Description: "Close the table immediately (bets are forfeit)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "bet",
					Description: "Place a bet while the betting window is open",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "amount",
							Description: "Credits to wager",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "hit",
					Description: "Draw a card",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "stand",
					Description: "Finish your current hand",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "double",
					Description: "Double your bet, draw one card, and stand",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "split",
					Description: "Split a pair into two hands",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "decklist",
					Description: "Show what is left in the shoe",
				},
			},
		},
		blackjackService: blackjackService,
	}
}

// Handle processes a Discord interaction for the blackjack command
func (c *BlackjackCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	guildID := i.GuildID
	channelID := i.ChannelID
	userID := i.Member.User.ID
	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	ctx := context.Background()

	switch data.Options[0].Name {
	case "start":
		out, err := c.blackjackService.StartGame(ctx, &blackjack.StartGameInput{
			GuildID:   guildID,
			ChannelID: channelID,
		})
		if err != nil {
			return respondWithGameError(s, i, err)
		}
		return RespondWithMessage(s, i, out.Message)

	case "stop":
		out, err := c.blackjackService.StopGame(ctx, &blackjack.StopGameInput{
			GuildID:   guildID,
			ChannelID: channelID,
		})
		if err != nil {
			return respondWithGameError(s, i, err)
		}
		return RespondWithMessage(s, i, out.Message)

	case "bet":
		amount := data.Options[0].Options[0].IntValue()
		out, err := c.blackjackService.PlaceBet(ctx, &blackjack.PlaceBetInput{
			GuildID:    guildID,
			ChannelID:  channelID,
			PlayerID:   userID,
			PlayerName: username,
			Amount:     amount,
		})
		if err != nil {
			return respondWithGameError(s, i, err)
		}
		return RespondWithMessage(s, i, out.Message)

	case "hit":
		out, err := c.blackjackService.Hit(ctx, &blackjack.HitInput{
			GuildID:   guildID,
			ChannelID: channelID,
			PlayerID:  userID,
		})
		if err != nil {
			return respondWithGameError(s, i, err)
		}
		return RespondWithMessage(s, i, out.Message)

	case "stand":
		out, err := c.blackjackService.Stand(ctx, &blackjack.StandInput{
			GuildID:   guildID,
			ChannelID: channelID,
			PlayerID:  userID,
		})
		if err != nil {
			return respondWithGameError(s, i, err)
		}
		return RespondWithMessage(s, i, out.Message)

	case "double":
		out, err := c.blackjackService.Double(ctx, &blackjack.DoubleInput{
			GuildID:   guildID,
			ChannelID: channelID,
			PlayerID:  userID,
		})
		if err != nil {
			return respondWithGameError(s, i, err)
		}
		return RespondWithMessage(s, i, out.Message)

	case "split":
		out, err := c.blackjackService.Split(ctx, &blackjack.SplitInput{
			GuildID:   guildID,
			ChannelID: channelID,
			PlayerID:  userID,
		})
		if err != nil {
			return respondWithGameError(s, i, err)
		}
		return RespondWithMessage(s, i, out.Message)

	case "decklist":
		out, err := c.blackjackService.DeckList(ctx, &blackjack.DeckListInput{
			GuildID:   guildID,
			ChannelID: channelID,
		})
		if err != nil {
			return respondWithGameError(s, i, err)
		}
		return RespondWithEmbed(s, i, "Shoe composition", renderDeckList(out.Live, out.Discard), nil)

	default:
		return errors.New("unknown subcommand")
	}
}

// respondWithGameError translates service errors into user-facing
// rejections; anything unexpected is logged and reported generically
func respondWithGameError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	switch {
	case errors.Is(err, blackjack.ErrSessionAlreadyActive),
		errors.Is(err, blackjack.ErrSessionNotActive),
		errors.Is(err, blackjack.ErrInvalidStateForAction),
		errors.Is(err, blackjack.ErrInvalidBetAmount),
		errors.Is(err, blackjack.ErrNoSuchPlayer),
		errors.Is(err, blackjack.ErrCannotSplit):
		return RespondWithEphemeralMessage(s, i, err.Error())
	case errors.Is(err, bank.ErrNoAccount):
		return RespondWithEphemeralMessage(s, i, "You need an account first. Use `/bank register`.")
	case errors.Is(err, bank.ErrInsufficientBalance):
		return RespondWithEphemeralMessage(s, i, "You don't have enough credits for that.")
	default:
		log.Printf("blackjack command failed: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Something went wrong: %v", err))
	}
}
