package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/mkrug/croupier/internal/models"
	settingsRepo "github.com/mkrug/croupier/internal/repositories/settings"
)

// settingKeys maps the option choice to a settings field setter
var settingKeys = map[string]func(*models.GameSettings, int64){
	"blackjack-min":    func(gs *models.GameSettings, v int64) { gs.BlackjackMinBet = v },
	"blackjack-max":    func(gs *models.GameSettings, v int64) { gs.BlackjackMaxBet = v },
	"betting-seconds":  func(gs *models.GameSettings, v int64) { gs.BettingSeconds = int(v) },
	"turn-seconds":     func(gs *models.GameSettings, v int64) { gs.TurnSeconds = int(v) },
	"deck-count":       func(gs *models.GameSettings, v int64) { gs.DeckCount = int(v) },
	"slot-min":         func(gs *models.GameSettings, v int64) { gs.SlotMinBid = v },
	"slot-max":         func(gs *models.GameSettings, v int64) { gs.SlotMaxBid = v },
	"slot-cooldown":    func(gs *models.GameSettings, v int64) { gs.SlotCooldownSec = int(v) },
	"payday-credits":   func(gs *models.GameSettings, v int64) { gs.PaydayCredits = v },
	"payday-cooldown":  func(gs *models.GameSettings, v int64) { gs.PaydayCooldownSec = int(v) },
	"register-credits": func(gs *models.GameSettings, v int64) { gs.RegisterCredits = v },
}

// SettingsCommand handles the /casino command for per-guild settings
type SettingsCommand struct {
	BaseCommand
	settingsRepo settingsRepo.Repository
}

// NewSettingsCommand creates a new settings command handler
func NewSettingsCommand(repo settingsRepo.Repository) *SettingsCommand {
	keyChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(settingKeys))
	for key := range settingKeys {
		keyChoices = append(keyChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  key,
			Value: key,
		})
	}

	return &SettingsCommand{
		BaseCommand: BaseCommand{
			Name:        "casino",
			Description: "Casino settings for this server",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "settings",
					Description: "Show the current settings",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Change a setting (admin only)",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "key",
							Description: "Setting to change",
							Required:    true,
							Choices:     keyChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "value",
							Description: "New value",
							Required:    true,
						},
					},
				},
			},
		},
		settingsRepo: repo,
	}
}

// Handle processes a Discord interaction for the settings command
func (c *SettingsCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name {
		return nil
	}

	ctx := context.Background()
	guildID := i.GuildID

	settings, err := c.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{
		GuildID: guildID,
	})
	if err != nil {
		log.Printf("settings command failed: %v", err)
		return RespondWithError(s, i, fmt.Sprintf("Something went wrong: %v", err))
	}

	switch data.Options[0].Name {
	case "settings":
		return RespondWithEmbed(s, i, "Casino settings", renderSettings(settings), nil)

	case "set":
		if !isAdmin(i) {
			return RespondWithEphemeralMessage(s, i, "Only administrators can change settings.")
		}

		opts := data.Options[0].Options
		key := opts[0].StringValue()
		value := opts[1].IntValue()

		apply, ok := settingKeys[key]
		if !ok {
			return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Unknown setting: %s", key))
		}
		if value < 0 {
			return RespondWithEphemeralMessage(s, i, "Settings cannot be negative.")
		}
		apply(settings, value)

		if err := c.settingsRepo.SaveSettings(ctx, &settingsRepo.SaveSettingsInput{
			Settings: settings,
		}); err != nil {
			log.Printf("saving settings failed: %v", err)
			return RespondWithError(s, i, fmt.Sprintf("Something went wrong: %v", err))
		}
		return RespondWithMessage(s, i, fmt.Sprintf("Set %s to %d. Running blackjack rounds keep their old limits until the next round.", key, value))

	default:
		return errors.New("unknown subcommand")
	}
}

// renderSettings formats the settings for the embed body
func renderSettings(gs *models.GameSettings) string {
	return fmt.Sprintf("```\nblackjack-min    %d\nblackjack-max    %d\nbetting-seconds  %d\nturn-seconds     %d\ndeck-count       %d\nslot-min         %d\nslot-max         %d\nslot-cooldown    %d\npayday-credits   %d\npayday-cooldown  %d\nregister-credits %d\n```",
		gs.BlackjackMinBet, gs.BlackjackMaxBet, gs.BettingSeconds, gs.TurnSeconds,
		gs.DeckCount, gs.SlotMinBid, gs.SlotMaxBid, gs.SlotCooldownSec,
		gs.PaydayCredits, gs.PaydayCooldownSec, gs.RegisterCredits)
}
