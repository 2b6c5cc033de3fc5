package blackjack

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/mkrug/croupier/internal/common/uuid"
	"github.com/mkrug/croupier/internal/deck"
	"github.com/mkrug/croupier/internal/models"
	"github.com/mkrug/croupier/internal/services/bank"
)

// entrant is one player seated for the current round, in betting order.
// A split gives an entrant more than one hand; current tracks which hand
// their commands act on.
type entrant struct {
	playerID   string
	playerName string
	hands      []*Hand
	current    int
}

// done reports whether every hand of the entrant is standing
func (e *entrant) done() bool {
	for _, h := range e.hands {
		if !h.Standing {
			return false
		}
	}
	return true
}

// dealerEntry holds the dealer's single hand. The second dealt card is
// kept out of the hand and the discard pile until resolution reveals it.
type dealerEntry struct {
	hand   *Hand
	hidden *deck.Card
}

// table is one channel's blackjack game: the phase machine, the seated
// players, the dealer, and the shoe that persists across rounds.
//
// Every mutation happens under mu; player commands and the coordinator
// tick contend for the same lock so a card is never drawn twice.
type table struct {
	mu sync.Mutex

	guildID   string
	channelID string

	bank      bank.Service
	announcer Announcer
	settings  *models.GameSettings
	shoe      *deck.Shoe
	uuid      uuid.UUID

	phase   Phase
	ticks   int
	roundID string

	entrants []*entrant
	dealer   *dealerEntry
}

func newTable(guildID, channelID string, settings *models.GameSettings, bankSvc bank.Service, announcer Announcer, uuidGen uuid.UUID, seed int64) *table {
	return &table{
		guildID:   guildID,
		channelID: channelID,
		bank:      bankSvc,
		announcer: announcer,
		settings:  settings,
		uuid:      uuidGen,
		shoe: deck.New(&deck.Config{
			DeckCount: settings.DeckCount,
			Seed:      seed,
		}),
		phase: PhaseIdle,
	}
}

// announce sends table chatter; delivery failures are logged, never fatal
func (t *table) announce(ctx context.Context, message string) {
	if err := t.announcer.Announce(ctx, t.channelID, message); err != nil {
		log.Printf("blackjack: announce to channel %s failed: %v", t.channelID, err)
	}
}

// draw takes the next card and moves it straight to the discard pile.
// An empty live queue forces an early shuffle so draw never fails.
func (t *table) draw() deck.Card {
	card, err := t.shoe.Draw()
	if err != nil {
		t.shoe.Shuffle()
		card, _ = t.shoe.Draw()
	}
	t.shoe.Discard(card)
	return card
}

// drawHidden takes the dealer's hole card without discarding it; the
// card stays outstanding until resolution hands it back
func (t *table) drawHidden() deck.Card {
	card, err := t.shoe.Draw()
	if err != nil {
		t.shoe.Shuffle()
		card, _ = t.shoe.Draw()
	}
	return card
}

func (t *table) findEntrant(playerID string) *entrant {
	for _, e := range t.entrants {
		if e.playerID == playerID {
			return e
		}
	}
	return nil
}

func (t *table) allStanding() bool {
	for _, e := range t.entrants {
		if !e.done() {
			return false
		}
	}
	return true
}

// start opens the betting window. The caller passes freshly loaded guild
// settings so table limits follow the stored configuration.
func (t *table) start(ctx context.Context, settings *models.GameSettings) (string, string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase != PhaseIdle {
		return "", "", ErrSessionAlreadyActive
	}

	t.settings = settings
	t.entrants = nil
	t.dealer = nil
	t.ticks = 0
	t.roundID = t.uuid.NewUUID()
	t.phase = PhaseBetting
	log.Printf("blackjack: round %s opened in channel %s", t.roundID, t.channelID)

	message := fmt.Sprintf("Blackjack table is open. Place your bets with /blackjack bet — the window closes in %d seconds.", t.settings.BettingSeconds)
	return t.roundID, message, nil
}

// stop cancels the round immediately. Escrowed bets stay withdrawn;
// no refunds, to keep stop from being an escape hatch for bad hands.
func (t *table) stop(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase == PhaseIdle {
		return "", ErrSessionNotActive
	}

	// The hole card is still outstanding; hand it back so the shoe
	// keeps its full complement across rounds
	if t.dealer != nil && t.dealer.hidden != nil {
		t.shoe.Discard(*t.dealer.hidden)
	}

	t.entrants = nil
	t.dealer = nil
	t.ticks = 0
	t.phase = PhaseIdle

	return "Table closed. Bets already placed are forfeit.", nil
}

// placeBet escrows a wager. A repeat bet first refunds the earlier
// wager, so only the latest bet this round counts.
func (t *table) placeBet(ctx context.Context, playerID, playerName string, amount int64) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.phase == PhaseIdle {
		return "", ErrSessionNotActive
	}
	if t.phase != PhaseBetting {
		return "", ErrInvalidStateForAction
	}
	if amount < t.settings.BlackjackMinBet || amount > t.settings.BlackjackMaxBet {
		return "", ErrInvalidBetAmount
	}

	var previousBet int64
	existing := t.findEntrant(playerID)
	if existing != nil {
		previousBet = existing.hands[0].Bet
		if _, err := t.bank.Deposit(ctx, &bank.DepositInput{
			GuildID: t.guildID,
			OwnerID: playerID,
			Amount:  previousBet,
		}); err != nil {
			return "", err
		}
	}

	if _, err := t.bank.Withdraw(ctx, &bank.WithdrawInput{
		GuildID: t.guildID,
		OwnerID: playerID,
		Amount:  amount,
	}); err != nil {
		if existing != nil {
			// Re-escrow the refunded wager; the refund guarantees cover
			if _, rerr := t.bank.Withdraw(ctx, &bank.WithdrawInput{
				GuildID: t.guildID,
				OwnerID: playerID,
				Amount:  previousBet,
			}); rerr != nil {
				log.Printf("blackjack: failed to restore escrow for %s: %v", playerID, rerr)
			}
		}
		return "", err
	}

	if existing != nil {
		existing.hands = []*Hand{NewHand(amount)}
		existing.current = 0
		return fmt.Sprintf("%s changed their bet to %d.", playerName, amount), nil
	}

	t.entrants = append(t.entrants, &entrant{
		playerID:   playerID,
		playerName: playerName,
		hands:      []*Hand{NewHand(amount)},
	})
	return fmt.Sprintf("%s bet %d.", playerName, amount), nil
}

// deal gives every entrant two cards in betting order, then the dealer
// an up card and a hole card, and opens player turns
func (t *table) deal(ctx context.Context) {
	for _, e := range t.entrants {
		hand := e.hands[0]
		hand.AddCard(t.draw())
		hand.AddCard(t.draw())

		if hand.IsBlackjack() {
			hand.Standing = true
			t.announce(ctx, fmt.Sprintf("%s has %s — blackjack!", e.playerName, hand.DisplayCards()))
			continue
		}
		t.announce(ctx, fmt.Sprintf("%s has %s — total %s.", e.playerName, hand.DisplayCards(), hand.DisplayTotal()))
	}

	upCard := t.draw()
	hidden := t.drawHidden()
	t.dealer = &dealerEntry{
		hand:   NewHand(0),
		hidden: &hidden,
	}
	t.dealer.hand.AddCard(upCard)
	t.announce(ctx, fmt.Sprintf("Dealer shows %s.", upCard))

	t.ticks = 0
	t.phase = PhasePlayerTurns

	// Everyone dealt a natural: nothing left to play
	if t.allStanding() {
		t.resolve(ctx)
	}
}

// advance stands the entrant's current hand and moves to their next
// split hand if one remains. Returns true if another hand is now live.
func (e *entrant) advance() bool {
	e.hands[e.current].Standing = true
	if e.current < len(e.hands)-1 {
		e.current++
		return true
	}
	return false
}

// requireTurn fetches the entrant and their live hand, enforcing phase
// and standing rules shared by hit, stand, double and split
func (t *table) requireTurn(playerID string) (*entrant, *Hand, error) {
	if t.phase == PhaseIdle {
		return nil, nil, ErrSessionNotActive
	}
	if t.phase != PhasePlayerTurns {
		return nil, nil, ErrInvalidStateForAction
	}
	e := t.findEntrant(playerID)
	if e == nil {
		return nil, nil, ErrNoSuchPlayer
	}
	hand := e.hands[e.current]
	if hand.Standing {
		return nil, nil, ErrInvalidStateForAction
	}
	return e, hand, nil
}

func (t *table) hit(ctx context.Context, playerID string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, hand, err := t.requireTurn(playerID)
	if err != nil {
		return "", err
	}

	card := t.draw()
	hand.AddCard(card)

	var message string
	if hand.IsBust() {
		if e.advance() {
			message = fmt.Sprintf("%s drew %s — bust at %d. Playing next hand: %s (total %s).",
				e.playerName, card, hand.Score(), e.hands[e.current].DisplayCards(), e.hands[e.current].DisplayTotal())
		} else {
			message = fmt.Sprintf("%s drew %s — bust at %d.", e.playerName, card, hand.Score())
		}
	} else {
		message = fmt.Sprintf("%s drew %s — total %s.", e.playerName, card, hand.DisplayTotal())
	}

	if t.allStanding() {
		t.resolve(ctx)
	}
	return message, nil
}

func (t *table) stand(ctx context.Context, playerID string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, hand, err := t.requireTurn(playerID)
	if err != nil {
		return "", err
	}

	var message string
	if e.advance() {
		message = fmt.Sprintf("%s stands at %s. Playing next hand: %s (total %s).",
			e.playerName, hand.DisplayTotal(), e.hands[e.current].DisplayCards(), e.hands[e.current].DisplayTotal())
	} else {
		message = fmt.Sprintf("%s stands at %s.", e.playerName, hand.DisplayTotal())
	}

	if t.allStanding() {
		t.resolve(ctx)
	}
	return message, nil
}

// double withdraws a second wager equal to the first, draws exactly one
// card, and stands the hand whatever the result
func (t *table) double(ctx context.Context, playerID string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, hand, err := t.requireTurn(playerID)
	if err != nil {
		return "", err
	}

	if _, err := t.bank.Withdraw(ctx, &bank.WithdrawInput{
		GuildID: t.guildID,
		OwnerID: playerID,
		Amount:  hand.Bet,
	}); err != nil {
		return "", err
	}
	hand.Bet *= 2

	card := t.draw()
	hand.AddCard(card)

	var message string
	if e.advance() {
		message = fmt.Sprintf("%s doubled down and drew %s — total %s. Playing next hand: %s (total %s).",
			e.playerName, card, hand.DisplayTotal(), e.hands[e.current].DisplayCards(), e.hands[e.current].DisplayTotal())
	} else {
		message = fmt.Sprintf("%s doubled down and drew %s — total %s.", e.playerName, card, hand.DisplayTotal())
	}

	if t.allStanding() {
		t.resolve(ctx)
	}
	return message, nil
}

// split turns a two-card pair into two hands, each carrying the original
// wager. The split itself does not escrow additional funds.
func (t *table) split(ctx context.Context, playerID string) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	e, hand, err := t.requireTurn(playerID)
	if err != nil {
		return "", err
	}
	if !hand.CanSplit() {
		return "", ErrCannotSplit
	}

	second := hand.Cards[1]
	hand.Cards = hand.Cards[:1]
	hand.reduced = 0

	split := NewHand(hand.Bet)
	split.AddCard(second)
	e.hands = append(e.hands, split)

	return fmt.Sprintf("%s split into %s and %s, %d riding on each.",
		e.playerName, hand.DisplayCards(), split.DisplayCards(), hand.Bet), nil
}

// settleHand computes a hand's payout against the dealer's final state
func settleHand(h *Hand, dealerScore int, dealerBust, dealerBlackjack bool) (int64, string) {
	switch {
	case dealerBlackjack:
		if h.IsBlackjack() {
			return h.Bet, "pushes against dealer blackjack"
		}
		return 0, "loses to dealer blackjack"
	case h.IsBust():
		return 0, fmt.Sprintf("busted at %d", h.Score())
	case h.IsBlackjack():
		return h.Bet * 5 / 2, fmt.Sprintf("blackjack pays %d", h.Bet*5/2)
	case dealerBust:
		return h.Bet * 2, fmt.Sprintf("wins %d", h.Bet*2)
	case h.Score() > dealerScore:
		return h.Bet * 2, fmt.Sprintf("wins %d with %d", h.Bet*2, h.Score())
	case h.Score() == dealerScore:
		return h.Bet, fmt.Sprintf("pushes at %d", h.Score())
	default:
		return 0, fmt.Sprintf("loses with %d", h.Score())
	}
}

// resolve reveals the hole card, plays out the dealer, settles every
// hand, and rolls the table into the next betting window.
// Caller holds the lock.
func (t *table) resolve(ctx context.Context) {
	hidden := *t.dealer.hidden
	t.dealer.hand.AddCard(hidden)
	t.shoe.Discard(hidden)
	t.dealer.hidden = nil
	t.announce(ctx, fmt.Sprintf("Dealer reveals %s — total %s.", hidden, t.dealer.hand.DisplayTotal()))

	for t.dealer.hand.Score() < 17 {
		card := t.draw()
		t.dealer.hand.AddCard(card)
		t.announce(ctx, fmt.Sprintf("Dealer draws %s — total %s.", card, t.dealer.hand.DisplayTotal()))
	}

	dealerScore := t.dealer.hand.Score()
	dealerBust := t.dealer.hand.IsBust()
	dealerBlackjack := t.dealer.hand.IsBlackjack()
	switch {
	case dealerBlackjack:
		t.announce(ctx, "Dealer has blackjack.")
	case dealerBust:
		t.announce(ctx, fmt.Sprintf("Dealer busts at %d.", dealerScore))
	default:
		t.announce(ctx, fmt.Sprintf("Dealer stands at %d.", dealerScore))
	}

	for _, e := range t.entrants {
		for _, h := range e.hands {
			payout, result := settleHand(h, dealerScore, dealerBust, dealerBlackjack)
			if payout > 0 {
				if _, err := t.bank.Deposit(ctx, &bank.DepositInput{
					GuildID: t.guildID,
					OwnerID: e.playerID,
					Amount:  payout,
				}); err != nil {
					log.Printf("blackjack: payout of %d to %s failed: %v", payout, e.playerID, err)
				}
			}
			t.announce(ctx, fmt.Sprintf("%s %s.", e.playerName, result))
		}
	}

	if t.shoe.NeedsShuffle() {
		t.shoe.Shuffle()
		t.announce(ctx, "Shuffling the shoe.")
	}

	log.Printf("blackjack: round %s settled in channel %s", t.roundID, t.channelID)

	t.entrants = nil
	t.dealer = nil
	t.ticks = 0
	t.roundID = t.uuid.NewUUID()
	t.phase = PhaseBetting
	t.announce(ctx, fmt.Sprintf("Next round — bets close in %d seconds.", t.settings.BettingSeconds))
}

// tick advances the phase machine by one time unit. The coordinator
// calls it once per interval; tests call it directly.
func (t *table) tick(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch t.phase {
	case PhaseBetting:
		t.ticks++
		if t.ticks < t.settings.BettingSeconds {
			return
		}
		if len(t.entrants) == 0 {
			t.phase = PhaseIdle
			t.announce(ctx, "No bets placed — the table closes.")
			return
		}
		t.deal(ctx)

	case PhasePlayerTurns:
		if t.allStanding() {
			t.resolve(ctx)
			return
		}
		t.ticks++
		if t.ticks >= t.settings.TurnSeconds {
			t.announce(ctx, "Time is up — standing all remaining hands.")
			t.resolve(ctx)
		}
	}
}

// deckList returns rank histograms for the live queue and discard pile
func (t *table) deckList() (map[deck.Rank]int, map[deck.Rank]int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.shoe.Composition()
}
