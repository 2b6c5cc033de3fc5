package slots

import (
	"context"
	"time"

	accountRepo "github.com/mkrug/croupier/internal/repositories/account"
	settingsRepo "github.com/mkrug/croupier/internal/repositories/settings"
	"github.com/mkrug/croupier/internal/services/bank"
)

const slotCooldownName = "slot"

// service implements the Service interface
type service struct {
	cfg *Config
}

// New creates a new slots service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Bank == nil {
		return nil, ErrNilBankService
	}
	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}
	if cfg.AccountRepo == nil {
		return nil, ErrNilAccountRepo
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}

	return &service{cfg: cfg}, nil
}

// spinReels stops each reel on an independent position and builds the
// 3x3 display: the stop symbol in the middle, ring neighbours above and
// below
func (s *service) spinReels() [3][3]Symbol {
	var rows [3][3]Symbol
	for col := 0; col < 3; col++ {
		stop := s.cfg.Roller.Roll(len(reel)) - 1
		rows[0][col] = reel[(stop+len(reel)-1)%len(reel)]
		rows[1][col] = reel[stop]
		rows[2][col] = reel[(stop+1)%len(reel)]
	}
	return rows
}

// settlePayline computes the total payout for a payline. Winning lines
// include the returned bid; a zero payout forfeits the escrowed bid.
// The two-symbol specials pay from either window of the line, leading
// or trailing.
func settlePayline(line [3]Symbol, bid int64) (payout int64, jackpot bool) {
	switch {
	case line[0] == SymbolTwo && line[1] == SymbolTwo && line[2] == SymbolSix:
		return bid*2500 + bid, true
	case line[0] == SymbolClover && line[1] == SymbolClover && line[2] == SymbolClover:
		return bid + 1000, false
	case line[0] == SymbolCherries && line[1] == SymbolCherries && line[2] == SymbolCherries:
		return bid + 800, false
	case line[0] == SymbolTwo && line[1] == SymbolSix,
		line[1] == SymbolTwo && line[2] == SymbolSix:
		return bid*4 + bid, false
	case line[0] == SymbolCherries && line[1] == SymbolCherries,
		line[1] == SymbolCherries && line[2] == SymbolCherries:
		return bid*3 + bid, false
	case line[0] == line[1] && line[1] == line[2]:
		return bid + 500, false
	case line[0] == line[1] || line[1] == line[2]:
		return bid*2 + bid, false
	default:
		return 0, false
	}
}

// Spin escrows the bid, spins the reels, and settles the payline
func (s *service) Spin(ctx context.Context, input *SpinInput) (*SpinOutput, error) {
	settings, err := s.cfg.SettingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	if input.Bid < settings.SlotMinBid || input.Bid > settings.SlotMaxBid {
		return nil, ErrInvalidBid
	}

	onCooldown, err := s.cfg.AccountRepo.OnCooldown(ctx, &accountRepo.OnCooldownInput{
		Name:    slotCooldownName,
		GuildID: input.GuildID,
		OwnerID: input.PlayerID,
	})
	if err != nil {
		return nil, err
	}
	if onCooldown {
		return nil, ErrOnCooldown
	}

	if _, err := s.cfg.Bank.Withdraw(ctx, &bank.WithdrawInput{
		GuildID: input.GuildID,
		OwnerID: input.PlayerID,
		Amount:  input.Bid,
	}); err != nil {
		return nil, err
	}

	rows := s.spinReels()
	payout, jackpot := settlePayline(rows[1], input.Bid)

	var balance int64
	if payout > 0 {
		out, err := s.cfg.Bank.Deposit(ctx, &bank.DepositInput{
			GuildID: input.GuildID,
			OwnerID: input.PlayerID,
			Amount:  payout,
		})
		if err != nil {
			return nil, err
		}
		balance = out.Balance
	} else {
		out, err := s.cfg.Bank.GetBalance(ctx, &bank.GetBalanceInput{
			GuildID: input.GuildID,
			OwnerID: input.PlayerID,
		})
		if err != nil {
			return nil, err
		}
		balance = out.Balance
	}

	if err := s.cfg.AccountRepo.SetCooldown(ctx, &accountRepo.SetCooldownInput{
		Name:    slotCooldownName,
		GuildID: input.GuildID,
		OwnerID: input.PlayerID,
		TTL:     time.Duration(settings.SlotCooldownSec) * time.Second,
	}); err != nil {
		return nil, err
	}

	return &SpinOutput{
		Rows:    rows,
		Payout:  payout,
		Net:     payout - input.Bid,
		Jackpot: jackpot,
		Balance: balance,
	}, nil
}

// PlayDice escrows the bid and pays six to one on a correct guess
func (s *service) PlayDice(ctx context.Context, input *PlayDiceInput) (*PlayDiceOutput, error) {
	if input.Guess < 1 || input.Guess > 6 {
		return nil, ErrInvalidGuess
	}

	settings, err := s.cfg.SettingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}
	if input.Bid < settings.SlotMinBid || input.Bid > settings.SlotMaxBid {
		return nil, ErrInvalidBid
	}

	if _, err := s.cfg.Bank.Withdraw(ctx, &bank.WithdrawInput{
		GuildID: input.GuildID,
		OwnerID: input.PlayerID,
		Amount:  input.Bid,
	}); err != nil {
		return nil, err
	}

	roll := s.cfg.Roller.Roll(6)
	won := roll == input.Guess

	var payout, balance int64
	if won {
		payout = input.Bid * 6
		out, err := s.cfg.Bank.Deposit(ctx, &bank.DepositInput{
			GuildID: input.GuildID,
			OwnerID: input.PlayerID,
			Amount:  payout,
		})
		if err != nil {
			return nil, err
		}
		balance = out.Balance
	} else {
		out, err := s.cfg.Bank.GetBalance(ctx, &bank.GetBalanceInput{
			GuildID: input.GuildID,
			OwnerID: input.PlayerID,
		})
		if err != nil {
			return nil, err
		}
		balance = out.Balance
	}

	return &PlayDiceOutput{
		Roll:    roll,
		Won:     won,
		Payout:  payout,
		Net:     payout - input.Bid,
		Balance: balance,
	}, nil
}
