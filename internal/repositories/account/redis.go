package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkrug/croupier/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	accountKeyPrefix       = "account:"
	guildAccountsKeyPrefix = "guild_accounts:"
	cooldownKeyPrefix      = "cooldown:"
)

// ErrAccountNotFound is returned when an account is not found
var ErrAccountNotFound = errors.New("account not found")

// Config holds configuration for the Redis account repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed account repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// accountKey builds the key for a single account
func accountKey(guildID, ownerID string) string {
	return fmt.Sprintf("%s%s:%s", accountKeyPrefix, guildID, ownerID)
}

// cooldownKey builds the key for a named per-user cooldown
func cooldownKey(name, guildID, ownerID string) string {
	return fmt.Sprintf("%s%s:%s:%s", cooldownKeyPrefix, name, guildID, ownerID)
}

// SaveAccount persists an account to Redis
func (r *redisRepository) SaveAccount(ctx context.Context, input *SaveAccountInput) error {
	if input == nil || input.Account == nil {
		return errors.New("input and account cannot be nil")
	}

	acct := input.Account
	if acct.GuildID == "" || acct.OwnerID == "" {
		return errors.New("account guild ID and owner ID cannot be empty")
	}

	// Marshal the account to JSON
	acctJSON, err := json.Marshal(acct)
	if err != nil {
		return fmt.Errorf("failed to marshal account: %w", err)
	}

	// Save the account and index it under its guild in one transaction
	pipe := r.client.Pipeline()
	pipe.Set(ctx, accountKey(acct.GuildID, acct.OwnerID), acctJSON, 0)
	pipe.SAdd(ctx, guildAccountsKeyPrefix+acct.GuildID, acct.OwnerID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	return nil
}

// GetAccount retrieves an account by guild and owner from Redis
func (r *redisRepository) GetAccount(ctx context.Context, input *GetAccountInput) (*models.Account, error) {
	if input == nil || input.GuildID == "" || input.OwnerID == "" {
		return nil, errors.New("input, guild ID and owner ID cannot be empty")
	}

	acctJSON, err := r.client.Get(ctx, accountKey(input.GuildID, input.OwnerID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	var acct models.Account
	if err := json.Unmarshal([]byte(acctJSON), &acct); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &acct, nil
}

// GetGuildAccounts retrieves all accounts in a guild from Redis
func (r *redisRepository) GetGuildAccounts(ctx context.Context, input *GetGuildAccountsInput) (*GetGuildAccountsOutput, error) {
	if input == nil || input.GuildID == "" {
		return nil, errors.New("input and guild ID cannot be empty")
	}

	ownerIDs, err := r.client.SMembers(ctx, guildAccountsKeyPrefix+input.GuildID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get account IDs for guild: %w", err)
	}

	if len(ownerIDs) == 0 {
		return &GetGuildAccountsOutput{
			Accounts: []*models.Account{},
		}, nil
	}

	// Fetch all account records in one round trip
	pipe := r.client.Pipeline()
	accountCommands := make(map[string]*redis.StringCmd)

	for _, ownerID := range ownerIDs {
		accountCommands[ownerID] = pipe.Get(ctx, accountKey(input.GuildID, ownerID))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}

	accounts := make([]*models.Account, 0, len(ownerIDs))
	for ownerID, cmd := range accountCommands {
		acctJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Account was wiped between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get account %s: %w", ownerID, err)
		}

		var acct models.Account
		if err := json.Unmarshal([]byte(acctJSON), &acct); err != nil {
			return nil, fmt.Errorf("failed to unmarshal account %s: %w", ownerID, err)
		}

		accounts = append(accounts, &acct)
	}

	return &GetGuildAccountsOutput{
		Accounts: accounts,
	}, nil
}

// WipeGuild deletes every account in a guild from Redis
func (r *redisRepository) WipeGuild(ctx context.Context, input *WipeGuildInput) error {
	if input == nil || input.GuildID == "" {
		return errors.New("input and guild ID cannot be empty")
	}

	guildKey := guildAccountsKeyPrefix + input.GuildID
	ownerIDs, err := r.client.SMembers(ctx, guildKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get account IDs for guild: %w", err)
	}

	pipe := r.client.Pipeline()
	for _, ownerID := range ownerIDs {
		pipe.Del(ctx, accountKey(input.GuildID, ownerID))
	}
	pipe.Del(ctx, guildKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to wipe guild accounts: %w", err)
	}

	return nil
}

// SetCooldown records a named per-user cooldown that Redis expires on its own
func (r *redisRepository) SetCooldown(ctx context.Context, input *SetCooldownInput) error {
	if input == nil || input.Name == "" || input.GuildID == "" || input.OwnerID == "" {
		return errors.New("input, name, guild ID and owner ID cannot be empty")
	}

	if input.TTL <= 0 {
		// A non-positive TTL means the cooldown is disabled
		return nil
	}

	key := cooldownKey(input.Name, input.GuildID, input.OwnerID)
	if err := r.client.Set(ctx, key, "1", input.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cooldown: %w", err)
	}

	return nil
}

// OnCooldown reports whether a named per-user cooldown is still active
func (r *redisRepository) OnCooldown(ctx context.Context, input *OnCooldownInput) (bool, error) {
	if input == nil || input.Name == "" || input.GuildID == "" || input.OwnerID == "" {
		return false, errors.New("input, name, guild ID and owner ID cannot be empty")
	}

	key := cooldownKey(input.Name, input.GuildID, input.OwnerID)
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check cooldown: %w", err)
	}

	return n > 0, nil
}
