package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/mkrug/croupier/internal/common/clock"
	"github.com/mkrug/croupier/internal/dice"
	"github.com/mkrug/croupier/internal/handlers/discord"
	accountRepo "github.com/mkrug/croupier/internal/repositories/account"
	settingsRepo "github.com/mkrug/croupier/internal/repositories/settings"
	"github.com/mkrug/croupier/internal/services/bank"
	"github.com/mkrug/croupier/internal/services/blackjack"
	"github.com/mkrug/croupier/internal/services/slots"
	"github.com/redis/go-redis/v9"
)

// config is the process environment, loaded from .env when present
type config struct {
	DiscordToken  string `env:"DISCORD_TOKEN,required"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env: %v", err)
	}

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("Failed to parse environment: %v", err)
	}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Initialize repositories
	accounts, err := accountRepo.NewRedis(&accountRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create account repository: %v", err)
	}

	settings, err := settingsRepo.NewRedis(&settingsRepo.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		log.Fatalf("Failed to create settings repository: %v", err)
	}

	// Initialize the bank service
	bankSvc, err := bank.New(&bank.Config{
		AccountRepo:  accounts,
		SettingsRepo: settings,
		Clock:        &clock.DefaultClock{},
	})
	if err != nil {
		log.Fatalf("Failed to create bank service: %v", err)
	}

	// Initialize the slots service
	slotsSvc, err := slots.New(&slots.Config{
		Bank:         bankSvc,
		SettingsRepo: settings,
		AccountRepo:  accounts,
		Roller:       dice.New(&dice.Config{}),
	})
	if err != nil {
		log.Fatalf("Failed to create slots service: %v", err)
	}

	// The Discord session is shared by the bot and the table announcer
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	// Initialize the blackjack service
	blackjackSvc, err := blackjack.New(&blackjack.Config{
		Bank:         bankSvc,
		SettingsRepo: settings,
		Announcer:    discord.NewChannelAnnouncer(session),
	})
	if err != nil {
		log.Fatalf("Failed to create blackjack service: %v", err)
	}
	defer blackjackSvc.Close()

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:          session,
		ApplicationID:    cfg.ApplicationID,
		GuildID:          cfg.GuildID,
		BankService:      bankSvc,
		BlackjackService: blackjackSvc,
		SlotsService:     slotsSvc,
		SettingsRepo:     settings,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}
