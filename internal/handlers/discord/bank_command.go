package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/mkrug/croupier/internal/services/bank"
)

// BankCommand handles the /bank command
type BankCommand struct {
	BaseCommand
	bankService bank.Service
}

// NewBankCommand creates a new bank command handler
func NewBankCommand(bankService bank.Service) *BankCommand {
	return &BankCommand{
		BaseCommand: BaseCommand{
			Name:        "bank",
			Description: "Virtual economy commands",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "register",
					Description: "Open an account",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "balance",
					Description: "Check your balance",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "transfer",
					Description: "Send credits to another member",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "to",
							Description: "Member to send credits to",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "amount",
							Description: "Credits to send",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "leaderboard",
					Description: "Show the richest members",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Set a member's balance (admin only)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionUser,
							Name:        "member",
							Description: "Member whose balance to set",
							Required:    true,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "amount",
							Description: "New balance",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "wipe",
					Description: "Wipe every account in this server (admin only)",
				},
			},
		},
		bankService: bankService,
	}
}

// Handle processes a Discord interaction for the bank command
func (c *BankCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	guildID := i.GuildID
	userID := i.Member.User.ID
	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	ctx := context.Background()

	switch data.Options[0].Name {
	case "register":
		out, err := c.bankService.Register(ctx, &bank.RegisterInput{
			GuildID:   guildID,
			OwnerID:   userID,
			OwnerName: username,
		})
		if err != nil {
			if errors.Is(err, bank.ErrAccountExists) {
				return RespondWithEphemeralMessage(s, i, "You already have an account.")
			}
			return respondWithBankError(s, i, err)
		}
		return RespondWithMessage(s, i, fmt.Sprintf("Account opened for %s with %d credits.", username, out.Account.Balance))

	case "balance":
		out, err := c.bankService.GetBalance(ctx, &bank.GetBalanceInput{
			GuildID: guildID,
			OwnerID: userID,
		})
		if err != nil {
			return respondWithBankError(s, i, err)
		}
		return RespondWithEphemeralMessage(s, i, fmt.Sprintf("You have %d credits.", out.Balance))

	case "transfer":
		opts := data.Options[0].Options
		target := opts[0].UserValue(s)
		amount := opts[1].IntValue()

		out, err := c.bankService.Transfer(ctx, &bank.TransferInput{
			GuildID: guildID,
			FromID:  userID,
			ToID:    target.ID,
			Amount:  amount,
		})
		if err != nil {
			return respondWithBankError(s, i, err)
		}
		return RespondWithMessage(s, i, fmt.Sprintf("%s sent %d credits to %s. New balance: %d.", username, amount, target.Username, out.FromBalance))

	case "leaderboard":
		out, err := c.bankService.Leaderboard(ctx, &bank.LeaderboardInput{
			GuildID: guildID,
		})
		if err != nil {
			return respondWithBankError(s, i, err)
		}
		return RespondWithEmbed(s, i, "Leaderboard", renderLeaderboard(out.Entries), nil)

	case "set":
		if !isAdmin(i) {
			return RespondWithEphemeralMessage(s, i, "Only administrators can set balances.")
		}
		opts := data.Options[0].Options
		target := opts[0].UserValue(s)
		amount := opts[1].IntValue()

		out, err := c.bankService.SetBalance(ctx, &bank.SetBalanceInput{
			GuildID: guildID,
			OwnerID: target.ID,
			Amount:  amount,
		})
		if err != nil {
			return respondWithBankError(s, i, err)
		}
		return RespondWithMessage(s, i, fmt.Sprintf("%s now has %d credits.", target.Username, out.Balance))

	case "wipe":
		if !isAdmin(i) {
			return RespondWithEphemeralMessage(s, i, "Only administrators can wipe the bank.")
		}
		if _, err := c.bankService.WipeGuild(ctx, &bank.WipeGuildInput{
			GuildID: guildID,
		}); err != nil {
			return respondWithBankError(s, i, err)
		}
		return RespondWithMessage(s, i, "All accounts in this server have been wiped.")

	default:
		return errors.New("unknown subcommand")
	}
}

// isAdmin reports whether the interaction member has administrator rights
func isAdmin(i *discordgo.InteractionCreate) bool {
	return i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// respondWithBankError translates wallet errors into user-facing messages
func respondWithBankError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	switch {
	case errors.Is(err, bank.ErrNoAccount):
		return RespondWithEphemeralMessage(s, i, "No account found. Use `/bank register` first.")
	case errors.Is(err, bank.ErrAccountExists),
		errors.Is(err, bank.ErrInsufficientBalance),
		errors.Is(err, bank.ErrNegativeValue),
		errors.Is(err, bank.ErrSameSenderAndReceiver),
		errors.Is(err, bank.ErrOnCooldown):
		return RespondWithEphemeralMessage(s, i, err.Error())
	default:
		log.Printf("bank command failed: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Something went wrong: %v", err))
	}
}
