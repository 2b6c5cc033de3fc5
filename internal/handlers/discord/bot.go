package discord

import (
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"
	settingsRepo "github.com/mkrug/croupier/internal/repositories/settings"
	"github.com/mkrug/croupier/internal/services/bank"
	"github.com/mkrug/croupier/internal/services/blackjack"
	"github.com/mkrug/croupier/internal/services/slots"
)

// Bot represents the Discord bot instance
type Bot struct {
	session    *discordgo.Session
	commands   map[string]CommandHandler
	commandIDs map[string]string // Maps command name to command ID
	config     *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is the Discord connection. Built by the caller so the
	// channel announcer and the bot share it.
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// Optional guild ID for development (server-specific commands)
	GuildID string

	// Services
	BankService      bank.Service
	BlackjackService blackjack.Service
	SlotsService     slots.Service
	SettingsRepo     settingsRepo.Repository
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}
	if cfg.BankService == nil {
		return nil, errors.New("bank service cannot be nil")
	}
	if cfg.BlackjackService == nil {
		return nil, errors.New("blackjack service cannot be nil")
	}
	if cfg.SlotsService == nil {
		return nil, errors.New("slots service cannot be nil")
	}
	if cfg.SettingsRepo == nil {
		return nil, errors.New("settings repository cannot be nil")
	}

	bot := &Bot{
		session:    cfg.Session,
		commands:   make(map[string]CommandHandler),
		commandIDs: make(map[string]string),
		config:     cfg,
	}

	// Register the interaction handler
	cfg.Session.AddHandler(bot.handleInteraction)

	return bot, nil
}

// Start initializes the Discord connection and registers commands
func (b *Bot) Start() error {
	// Open the websocket connection to Discord
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	handlers := []CommandHandler{
		NewBlackjackCommand(b.config.BlackjackService),
		NewBankCommand(b.config.BankService),
		NewPaydayCommand(b.config.BankService),
		NewSlotCommand(b.config.SlotsService),
		NewDiceCommand(b.config.SlotsService),
		NewSettingsCommand(b.config.SettingsRepo),
	}
	for _, h := range handlers {
		if err := b.RegisterCommand(h); err != nil {
			return fmt.Errorf("failed to register %s command: %w", h.GetName(), err)
		}
	}

	log.Println("Bot is now running. Press CTRL-C to exit.")
	return nil
}

// Stop gracefully shuts down the Discord connection
func (b *Bot) Stop() error {
	// Remove all commands
	appID := b.config.ApplicationID
	if appID == "" {
		appID = b.session.State.User.ID
	}

	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			log.Printf("Failed to delete command %s (ID: %s): %v", cmdName, cmdID, err)
		}
	}

	return b.session.Close()
}

// RegisterCommand registers a command with Discord
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	appID := b.config.ApplicationID
	if appID == "" {
		// Fall back to session user ID if application ID is not provided
		appID = b.session.State.User.ID
	}

	// If guild ID is provided, register command for that specific guild
	// Otherwise, register it globally
	if b.config.GuildID != "" {
		log.Printf("Registering command %s for guild %s", cmd.GetName(), b.config.GuildID)
	} else {
		log.Printf("Registering command %s globally", cmd.GetName())
	}

	createdCmd, err := b.session.ApplicationCommandCreate(appID, b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	// Store the command handler and its ID
	b.commands[cmd.GetName()] = cmd
	b.commandIDs[cmd.GetName()] = createdCmd.ID

	return nil
}

// handleInteraction routes Discord interactions to the command handlers
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if h, ok := b.commands[i.ApplicationCommandData().Name]; ok {
		if err := h.Handle(s, i); err != nil {
			log.Printf("Error handling command %s: %v", i.ApplicationCommandData().Name, err)
		}
	}
}
