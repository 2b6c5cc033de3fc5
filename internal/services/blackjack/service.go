package blackjack

import (
	"context"
	"sync"
	"time"

	"github.com/mkrug/croupier/internal/common/uuid"
	settingsRepo "github.com/mkrug/croupier/internal/repositories/settings"
)

// service implements the Service interface. Each channel gets its own
// table with its own lock and coordinator goroutine; the service-level
// mutex only guards the table map itself.
type service struct {
	cfg *Config

	mu     sync.Mutex
	tables map[string]*table

	done chan struct{}
	wg   sync.WaitGroup
}

// New creates a new blackjack service
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
	if cfg.Announcer == nil {
		return nil, ErrNilAnnouncer
	}
	if cfg.TickInterval == 0 {
		cfg.TickInterval = time.Second
	}
	if cfg.UUID == nil {
		cfg.UUID = uuid.New()
	}

	return &service{
		cfg:    cfg,
		tables: make(map[string]*table),
		done:   make(chan struct{}),
	}, nil
}

// getTable returns the channel's table, creating it and starting its
// coordinator on first use. The shoe persists for the table's lifetime.
func (s *service) getTable(ctx context.Context, guildID, channelID string) (*table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.tables[channelID]; ok {
		return t, nil
	}

	settings, err := s.cfg.SettingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{
		GuildID: guildID,
	})
	if err != nil {
		return nil, err
	}

	t := newTable(guildID, channelID, settings, s.cfg.Bank, s.cfg.Announcer, s.cfg.UUID, s.cfg.Seed)
	s.tables[channelID] = t

	s.wg.Add(1)
	go s.runTable(t)

	return t, nil
}

// lookupTable returns the channel's table only if one already exists
func (s *service) lookupTable(channelID string) (*table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tables[channelID]
	if !ok {
		return nil, ErrSessionNotActive
	}
	return t, nil
}

// runTable drives one table's phase machine until the service closes
func (s *service) runTable(t *table) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			t.tick(context.Background())
		}
	}
}

// StartGame opens a betting window at the channel's table
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	t, err := s.getTable(ctx, input.GuildID, input.ChannelID)
	if err != nil {
		return nil, err
	}

	// Reload settings so limit changes apply from the next round
	settings, err := s.cfg.SettingsRepo.GetSettings(ctx, &settingsRepo.GetSettingsInput{
		GuildID: input.GuildID,
	})
	if err != nil {
		return nil, err
	}

	roundID, message, err := t.start(ctx, settings)
	if err != nil {
		return nil, err
	}
	return &StartGameOutput{RoundID: roundID, Message: message}, nil
}

// StopGame cancels the channel's round without refunds
func (s *service) StopGame(ctx context.Context, input *StopGameInput) (*StopGameOutput, error) {
	t, err := s.lookupTable(input.ChannelID)
	if err != nil {
		return nil, err
	}

	message, err := t.stop(ctx)
	if err != nil {
		return nil, err
	}
	return &StopGameOutput{Message: message}, nil
}

// PlaceBet escrows a wager during the betting window
func (s *service) PlaceBet(ctx context.Context, input *PlaceBetInput) (*PlaceBetOutput, error) {
	t, err := s.lookupTable(input.ChannelID)
	if err != nil {
		return nil, err
	}

	message, err := t.placeBet(ctx, input.PlayerID, input.PlayerName, input.Amount)
	if err != nil {
		return nil, err
	}
	return &PlaceBetOutput{Message: message}, nil
}

// Hit draws a card into the player's current hand
func (s *service) Hit(ctx context.Context, input *HitInput) (*HitOutput, error) {
	t, err := s.lookupTable(input.ChannelID)
	if err != nil {
		return nil, err
	}

	message, err := t.hit(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &HitOutput{Message: message}, nil
}

// Stand finishes the player's current hand
func (s *service) Stand(ctx context.Context, input *StandInput) (*StandOutput, error) {
	t, err := s.lookupTable(input.ChannelID)
	if err != nil {
		return nil, err
	}

	message, err := t.stand(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &StandOutput{Message: message}, nil
}

// Double doubles the wager, draws one card, and stands
func (s *service) Double(ctx context.Context, input *DoubleInput) (*DoubleOutput, error) {
	t, err := s.lookupTable(input.ChannelID)
	if err != nil {
		return nil, err
	}

	message, err := t.double(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &DoubleOutput{Message: message}, nil
}

// Split turns a pair into two independently played hands
func (s *service) Split(ctx context.Context, input *SplitInput) (*SplitOutput, error) {
	t, err := s.lookupTable(input.ChannelID)
	if err != nil {
		return nil, err
	}

	message, err := t.split(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	return &SplitOutput{Message: message}, nil
}

// DeckList reports the rank composition of the channel's shoe. Only
// channels with a table have a shoe to inspect.
func (s *service) DeckList(ctx context.Context, input *DeckListInput) (*DeckListOutput, error) {
	t, err := s.lookupTable(input.ChannelID)
	if err != nil {
		return nil, err
	}

	live, discard := t.deckList()
	return &DeckListOutput{Live: live, Discard: discard}, nil
}

// Close stops every table coordinator and waits for them to exit
func (s *service) Close() {
	close(s.done)
	s.wg.Wait()
}
