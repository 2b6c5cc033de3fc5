package bank

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/mkrug/croupier/internal/common/clock"
	"github.com/mkrug/croupier/internal/models"
	accountRepo "github.com/mkrug/croupier/internal/repositories/account"
	settingsRepo "github.com/mkrug/croupier/internal/repositories/settings"
)

const paydayCooldownName = "payday"

// service implements the Service interface
type service struct {
	accountRepo  accountRepo.Repository
	settingsRepo settingsRepo.Repository
	clock        clock.Clock

	// Serializes mutations so multi-account operations (transfer) are
	// atomic with respect to each other
	mu sync.Mutex
}

// New creates a new bank service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.AccountRepo == nil {
		return nil, ErrNilAccountRepo
	}

	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		accountRepo:  cfg.AccountRepo,
		settingsRepo: cfg.SettingsRepo,
		clock:        cfg.Clock,
	}, nil
}

// getAccount fetches an account, mapping the repository's not-found
// error to the wallet taxonomy
func (s *service) getAccount(ctx context.Context, guildID, ownerID string) (*models.Account, error) {
	acct, err := s.accountRepo.GetAccount(ctx, &accountRepo.GetAccountInput{
		GuildID: guildID,
		OwnerID: ownerID,
	})
	if err != nil {
		if errors.Is(err, accountRepo.ErrAccountNotFound) {
			return nil, ErrNoAccount
		}
		return nil, err
	}
	return acct, nil
}

// CreateAccount opens an account with an explicit starting balance
func (s *service) CreateAccount(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	if input.InitialBalance < 0 {
		return nil, ErrNegativeValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Fail if an account already exists for this (guild, owner) pair
	_, err := s.getAccount(ctx, input.GuildID, input.OwnerID)
	if err == nil {
		return nil, ErrAccountExists
	}
	if !errors.Is(err, ErrNoAccount) {
		return nil, err
	}

	acct := &models.Account{
		GuildID:   input.GuildID,
		OwnerID:   input.OwnerID,
		OwnerName: input.OwnerName,
		Balance:   input.InitialBalance,
		CreatedAt: s.clock.Now(),
	}

	if err := s.accountRepo.SaveAccount(ctx, &accountRepo.SaveAccountInput{Account: acct}); err != nil {
		return nil, err
	}

	return &CreateAccountOutput{Account: acct}, nil
}

// Register opens an account with the guild's configured starting credits
func (s *service) Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error) {
	settings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	out, err := s.CreateAccount(ctx, &CreateAccountInput{
		GuildID:        input.GuildID,
		OwnerID:        input.OwnerID,
		OwnerName:      input.OwnerName,
		InitialBalance: settings.RegisterCredits,
	})
	if err != nil {
		return nil, err
	}

	return &RegisterOutput{Account: out.Account}, nil
}

// GetBalance returns the current balance of an account
func (s *service) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	acct, err := s.getAccount(ctx, input.GuildID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	return &GetBalanceOutput{Balance: acct.Balance}, nil
}

// Deposit credits an account
func (s *service) Deposit(ctx context.Context, input *DepositInput) (*DepositOutput, error) {
	if input.Amount < 0 {
		return nil, ErrNegativeValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance, err := s.deposit(ctx, input.GuildID, input.OwnerID, input.Amount)
	if err != nil {
		return nil, err
	}

	return &DepositOutput{Balance: balance}, nil
}

// deposit credits an account; the caller holds the mutex
func (s *service) deposit(ctx context.Context, guildID, ownerID string, amount int64) (int64, error) {
	acct, err := s.getAccount(ctx, guildID, ownerID)
	if err != nil {
		return 0, err
	}

	acct.Balance += amount
	if err := s.accountRepo.SaveAccount(ctx, &accountRepo.SaveAccountInput{Account: acct}); err != nil {
		return 0, err
	}

	return acct.Balance, nil
}

// Withdraw debits an account
func (s *service) Withdraw(ctx context.Context, input *WithdrawInput) (*WithdrawOutput, error) {
	if input.Amount < 0 {
		return nil, ErrNegativeValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	balance, err := s.withdraw(ctx, input.GuildID, input.OwnerID, input.Amount)
	if err != nil {
		return nil, err
	}

	return &WithdrawOutput{Balance: balance}, nil
}

// withdraw debits an account; the caller holds the mutex
func (s *service) withdraw(ctx context.Context, guildID, ownerID string, amount int64) (int64, error) {
	acct, err := s.getAccount(ctx, guildID, ownerID)
	if err != nil {
		return 0, err
	}

	if acct.Balance < amount {
		return 0, ErrInsufficientBalance
	}

	acct.Balance -= amount
	if err := s.accountRepo.SaveAccount(ctx, &accountRepo.SaveAccountInput{Account: acct}); err != nil {
		return 0, err
	}

	return acct.Balance, nil
}

// SetBalance overwrites an account's balance
func (s *service) SetBalance(ctx context.Context, input *SetBalanceInput) (*SetBalanceOutput, error) {
	if input.Amount < 0 {
		return nil, ErrNegativeValue
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	acct, err := s.getAccount(ctx, input.GuildID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	acct.Balance = input.Amount
	if err := s.accountRepo.SaveAccount(ctx, &accountRepo.SaveAccountInput{Account: acct}); err != nil {
		return nil, err
	}

	return &SetBalanceOutput{Balance: acct.Balance}, nil
}

// Transfer moves credits between two accounts. Validation happens before
// either leg is written, so an InsufficientBalance failure leaves both
// balances untouched.
func (s *service) Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	if input.Amount < 0 {
		return nil, ErrNegativeValue
	}

	if input.FromID == input.ToID {
		return nil, ErrSameSenderAndReceiver
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sender, err := s.getAccount(ctx, input.GuildID, input.FromID)
	if err != nil {
		return nil, err
	}

	receiver, err := s.getAccount(ctx, input.GuildID, input.ToID)
	if err != nil {
		return nil, err
	}

	if sender.Balance < input.Amount {
		return nil, ErrInsufficientBalance
	}

	sender.Balance -= input.Amount
	receiver.Balance += input.Amount

	if err := s.accountRepo.SaveAccount(ctx, &accountRepo.SaveAccountInput{Account: sender}); err != nil {
		return nil, err
	}
	if err := s.accountRepo.SaveAccount(ctx, &accountRepo.SaveAccountInput{Account: receiver}); err != nil {
		return nil, err
	}

	return &TransferOutput{
		FromBalance: sender.Balance,
		ToBalance:   receiver.Balance,
	}, nil
}

// CanSpend reports whether an account exists with at least the given balance
func (s *service) CanSpend(ctx context.Context, input *CanSpendInput) (*CanSpendOutput, error) {
	acct, err := s.getAccount(ctx, input.GuildID, input.OwnerID)
	if err != nil {
		if errors.Is(err, ErrNoAccount) {
			return &CanSpendOutput{CanSpend: false}, nil
		}
		return nil, err
	}

	return &CanSpendOutput{CanSpend: acct.Balance >= input.Amount}, nil
}

// Payday deposits the guild's payday credits, subject to a cooldown
func (s *service) Payday(ctx context.Context, input *PaydayInput) (*PaydayOutput, error) {
	settings, err := s.settingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Account must exist before credits can be handed out
	if _, err := s.getAccount(ctx, input.GuildID, input.OwnerID); err != nil {
		return nil, err
	}

	onCooldown, err := s.accountRepo.OnCooldown(ctx, &accountRepo.OnCooldownInput{
		Name:    paydayCooldownName,
		GuildID: input.GuildID,
		OwnerID: input.OwnerID,
	})
	if err != nil {
		return nil, err
	}
	if onCooldown {
		return nil, ErrOnCooldown
	}

	balance, err := s.deposit(ctx, input.GuildID, input.OwnerID, settings.PaydayCredits)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.SetCooldown(ctx, &accountRepo.SetCooldownInput{
		Name:    paydayCooldownName,
		GuildID: input.GuildID,
		OwnerID: input.OwnerID,
		TTL:     time.Duration(settings.PaydayCooldownSec) * time.Second,
	}); err != nil {
		return nil, err
	}

	return &PaydayOutput{
		Credits: settings.PaydayCredits,
		Balance: balance,
	}, nil
}

// Leaderboard returns the guild's accounts ranked by balance
func (s *service) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	top := input.Top
	if top < 1 {
		top = 10
	}

	out, err := s.accountRepo.GetGuildAccounts(ctx, &accountRepo.GetGuildAccountsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	accounts := out.Accounts
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Balance > accounts[j].Balance
	})

	if len(accounts) > top {
		accounts = accounts[:top]
	}

	entries := make([]LeaderboardEntry, 0, len(accounts))
	for _, acct := range accounts {
		entries = append(entries, LeaderboardEntry{
			OwnerID:   acct.OwnerID,
			OwnerName: acct.OwnerName,
			Balance:   acct.Balance,
		})
	}

	return &LeaderboardOutput{Entries: entries}, nil
}

// WipeGuild deletes every account in a guild
func (s *service) WipeGuild(ctx context.Context, input *WipeGuildInput) (*WipeGuildOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.accountRepo.WipeGuild(ctx, &accountRepo.WipeGuildInput{
		GuildID: input.GuildID,
	}); err != nil {
		return nil, err
	}

	return &WipeGuildOutput{Success: true}, nil
}
