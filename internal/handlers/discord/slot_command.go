package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/mkrug/croupier/internal/services/bank"
	"github.com/mkrug/croupier/internal/services/slots"
)

// SlotCommand handles the /slot command
type SlotCommand struct {
	BaseCommand
	slotsService slots.Service
}

// NewSlotCommand creates a new slot command handler
func NewSlotCommand(slotsService slots.Service) *SlotCommand {
	return &SlotCommand{
		BaseCommand: BaseCommand{
			Name:        "slot",
			Description: "Spin the slot machine",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "bid",
					Description: "Credits to bid",
					Required:    true,
				},
			},
		},
		slotsService: slotsService,
	}
}

// Handle processes a Discord interaction for the slot command
func (c *SlotCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	out, err := c.slotsService.Spin(context.Background(), &slots.SpinInput{
		GuildID:    i.GuildID,
		PlayerID:   i.Member.User.ID,
		PlayerName: username,
		Bid:        data.Options[0].IntValue(),
	})
	if err != nil {
		return respondWithSlotError(s, i, err)
	}

	var result string
	switch {
	case out.Jackpot:
		result = fmt.Sprintf("JACKPOT! 226! %s wins %d credits!", username, out.Net)
	case out.Net > 0:
		result = fmt.Sprintf("%s wins %d credits!", username, out.Net)
	default:
		result = fmt.Sprintf("%s loses the bid.", username)
	}

	return RespondWithMessage(s, i, fmt.Sprintf("%s\n%s Balance: %d.", renderSlotGrid(out.Rows), result, out.Balance))
}

// DiceCommand handles the /dice command
type DiceCommand struct {
	BaseCommand
	slotsService slots.Service
}

// NewDiceCommand creates a new dice command handler
func NewDiceCommand(slotsService slots.Service) *DiceCommand {
	return &DiceCommand{
		BaseCommand: BaseCommand{
			Name:        "dice",
			Description: "Guess the roll of a die, six to one payout",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "guess",
					Description: "Your guess, 1 through 6",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "bid",
					Description: "Credits to bid",
					Required:    true,
				},
			},
		},
		slotsService: slotsService,
	}
}

// Handle processes a Discord interaction for the dice command
func (c *DiceCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	username := i.Member.User.Username
	if i.Member.Nick != "" {
		username = i.Member.Nick
	}

	out, err := c.slotsService.PlayDice(context.Background(), &slots.PlayDiceInput{
		GuildID:    i.GuildID,
		PlayerID:   i.Member.User.ID,
		PlayerName: username,
		Guess:      int(data.Options[0].IntValue()),
		Bid:        data.Options[1].IntValue(),
	})
	if err != nil {
		return respondWithSlotError(s, i, err)
	}

	if out.Won {
		return RespondWithMessage(s, i, fmt.Sprintf("The die shows %d — %s called it and wins %d credits! Balance: %d.", out.Roll, username, out.Net, out.Balance))
	}
	return RespondWithMessage(s, i, fmt.Sprintf("The die shows %d — %s loses the bid. Balance: %d.", out.Roll, username, out.Balance))
}

// respondWithSlotError translates game errors into user-facing messages
func respondWithSlotError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) error {
	switch {
	case errors.Is(err, slots.ErrInvalidBid),
		errors.Is(err, slots.ErrInvalidGuess),
		errors.Is(err, slots.ErrOnCooldown):
		return RespondWithEphemeralMessage(s, i, err.Error())
	case errors.Is(err, bank.ErrNoAccount):
		return RespondWithEphemeralMessage(s, i, "No account found. Use `/bank register` first.")
	case errors.Is(err, bank.ErrInsufficientBalance):
		return RespondWithEphemeralMessage(s, i, "You don't have enough credits for that bid.")
	default:
		log.Printf("slot command failed: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Something went wrong: %v", err))
	}
}
