package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/mkrug/croupier/internal/services/bank"
)

// PaydayCommand handles the /payday command
type PaydayCommand struct {
	BaseCommand
	bankService bank.Service
}

// NewPaydayCommand creates a new payday command handler
func NewPaydayCommand(bankService bank.Service) *PaydayCommand {
	return &PaydayCommand{
		BaseCommand: BaseCommand{
			Name:        "payday",
			Description: "Collect your free credits",
		},
		bankService: bankService,
	}
}

// Handle processes a Discord interaction for the payday command
func (c *PaydayCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}
	if i.ApplicationCommandData().Name != c.Name {
		return nil
	}

	out, err := c.bankService.Payday(context.Background(), &bank.PaydayInput{
		GuildID: i.GuildID,
		OwnerID: i.Member.User.ID,
	})
	if err != nil {
		if errors.Is(err, bank.ErrOnCooldown) {
			return RespondWithEphemeralMessage(s, i, "Too soon — your next payday hasn't arrived yet.")
		}
		return respondWithBankError(s, i, err)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("Payday! %d credits deposited. You now have %d.", out.Credits, out.Balance))
}
