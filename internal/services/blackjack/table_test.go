package blackjack

import (
	"context"
	"testing"

	"github.com/mkrug/croupier/internal/common/uuid"
	"github.com/mkrug/croupier/internal/deck"
	"github.com/mkrug/croupier/internal/models"
	"github.com/mkrug/croupier/internal/services/bank"
	bankMocks "github.com/mkrug/croupier/internal/services/bank/mocks"
	blackjackMocks "github.com/mkrug/croupier/internal/services/blackjack/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TableTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockBank      *bankMocks.MockService
	mockAnnouncer *blackjackMocks.MockAnnouncer
	ctx           context.Context

	testGuildID   string
	testChannelID string
	testPlayerID  string
}

func (s *TableTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBank = bankMocks.NewMockService(s.mockCtrl)
	s.mockAnnouncer = blackjackMocks.NewMockAnnouncer(s.mockCtrl)
	s.ctx = context.Background()

	s.testGuildID = "test-guild-id"
	s.testChannelID = "test-channel-id"
	s.testPlayerID = "test-player-id"

	s.mockAnnouncer.EXPECT().
		Announce(gomock.Any(), s.testChannelID, gomock.Any()).
		Return(nil).
		AnyTimes()
}

func (s *TableTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTableTestSuite(t *testing.T) {
	suite.Run(t, new(TableTestSuite))
}

// testSettings shortens the betting window so one tick deals
func (s *TableTestSuite) testSettings() *models.GameSettings {
	settings := models.DefaultGameSettings(s.testGuildID)
	settings.BettingSeconds = 1
	return settings
}

// newTestTable builds a table in the betting phase with a stacked shoe
func (s *TableTestSuite) newTestTable(cards ...deck.Card) *table {
	settings := s.testSettings()
	t := newTable(s.testGuildID, s.testChannelID, settings, s.mockBank, s.mockAnnouncer, uuid.New(), 1)
	t.shoe = deck.NewStacked(cards...)

	_, _, err := t.start(s.ctx, settings)
	s.Require().NoError(err)
	return t
}

func (s *TableTestSuite) expectWithdraw(playerID string, amount int64) {
	s.mockBank.EXPECT().
		Withdraw(gomock.Any(), &bank.WithdrawInput{
			GuildID: s.testGuildID,
			OwnerID: playerID,
			Amount:  amount,
		}).
		Return(&bank.WithdrawOutput{}, nil)
}

func (s *TableTestSuite) expectDeposit(playerID string, amount int64) {
	s.mockBank.EXPECT().
		Deposit(gomock.Any(), &bank.DepositInput{
			GuildID: s.testGuildID,
			OwnerID: playerID,
			Amount:  amount,
		}).
		Return(&bank.DepositOutput{}, nil)
}

func (s *TableTestSuite) placeBet(t *table, playerID string, amount int64) {
	_, err := t.placeBet(s.ctx, playerID, "Player "+playerID, amount)
	s.Require().NoError(err)
}

func card(rank deck.Rank) deck.Card {
	return deck.NewCard(rank, deck.SuitSpades)
}

func (s *TableTestSuite) TestStartTwiceFails() {
	t := s.newTestTable()

	_, _, err := t.start(s.ctx, s.testSettings())
	s.Require().ErrorIs(err, ErrSessionAlreadyActive)
}

func (s *TableTestSuite) TestBlackjackPaysFiveToTwo() {
	// Player is dealt a natural; dealer shows 9 and reveals 8, standing
	// at 17. A 100 bet comes back as 250.
	t := s.newTestTable(
		card(deck.RankKing), card(deck.RankAce),
		card(deck.RankNine), card(deck.RankEight),
	)

	s.expectWithdraw(s.testPlayerID, 100)
	s.placeBet(t, s.testPlayerID, 100)

	s.expectDeposit(s.testPlayerID, 250)
	t.tick(s.ctx)

	// The natural auto-stands, so dealing ran straight into resolution
	// and the table is taking bets for the next round
	s.Equal(PhaseBetting, t.phase)
}

func (s *TableTestSuite) TestBetOutsideLimits() {
	t := s.newTestTable()

	_, err := t.placeBet(s.ctx, s.testPlayerID, "Player", 100001)
	s.Require().ErrorIs(err, ErrInvalidBetAmount)

	_, err = t.placeBet(s.ctx, s.testPlayerID, "Player", -1)
	s.Require().ErrorIs(err, ErrInvalidBetAmount)
}

func (s *TableTestSuite) TestRebetRefundsEarlierWager() {
	t := s.newTestTable()

	s.expectWithdraw(s.testPlayerID, 100)
	s.placeBet(t, s.testPlayerID, 100)

	s.expectDeposit(s.testPlayerID, 100)
	s.expectWithdraw(s.testPlayerID, 50)
	s.placeBet(t, s.testPlayerID, 50)

	s.Require().Len(t.entrants, 1)
	s.Equal(int64(50), t.entrants[0].hands[0].Bet)
}

func (s *TableTestSuite) TestRebetInsufficientBalanceKeepsOldBet() {
	t := s.newTestTable()

	s.expectWithdraw(s.testPlayerID, 100)
	s.placeBet(t, s.testPlayerID, 100)

	s.expectDeposit(s.testPlayerID, 100)
	s.mockBank.EXPECT().
		Withdraw(gomock.Any(), &bank.WithdrawInput{
			GuildID: s.testGuildID,
			OwnerID: s.testPlayerID,
			Amount:  5000,
		}).
		Return(nil, bank.ErrInsufficientBalance)
	s.expectWithdraw(s.testPlayerID, 100)

	_, err := t.placeBet(s.ctx, s.testPlayerID, "Player", 5000)
	s.Require().ErrorIs(err, bank.ErrInsufficientBalance)
	s.Equal(int64(100), t.entrants[0].hands[0].Bet)
}

func (s *TableTestSuite) TestBettingWindowAbortsWithoutBets() {
	t := s.newTestTable()

	t.tick(s.ctx)

	s.Equal(PhaseIdle, t.phase)
	_, err := t.placeBet(s.ctx, s.testPlayerID, "Player", 10)
	s.Require().ErrorIs(err, ErrSessionNotActive)
}

func (s *TableTestSuite) TestHitAfterBustRejected() {
	// Two players so the first player's bust does not end the round
	other := "other-player-id"
	t := s.newTestTable(
		card(deck.RankTen), card(deck.RankFive), // player one: 15
		card(deck.RankTen), card(deck.RankNine), // player two: 19
		card(deck.RankNine), card(deck.RankEight), // dealer
		card(deck.RankTen), // player one's hit: bust at 25
	)

	s.expectWithdraw(s.testPlayerID, 50)
	s.placeBet(t, s.testPlayerID, 50)
	s.expectWithdraw(other, 50)
	s.placeBet(t, other, 50)

	t.tick(s.ctx)
	s.Equal(PhasePlayerTurns, t.phase)

	_, err := t.hit(s.ctx, s.testPlayerID)
	s.Require().NoError(err)
	s.True(t.entrants[0].hands[0].Standing)
	s.Equal(25, t.entrants[0].hands[0].Score())

	_, err = t.hit(s.ctx, s.testPlayerID)
	s.Require().ErrorIs(err, ErrInvalidStateForAction)
}

func (s *TableTestSuite) TestSplitDuplicatesWagerWithoutWithdrawal() {
	// The split itself escrows nothing extra: the only withdrawal is
	// the original bet, yet both hands carry a 20 wager.
	t := s.newTestTable(
		card(deck.RankEight), card(deck.RankEight),
		card(deck.RankNine), card(deck.RankEight),
	)

	s.expectWithdraw(s.testPlayerID, 20)
	s.placeBet(t, s.testPlayerID, 20)

	t.tick(s.ctx)

	_, err := t.split(s.ctx, s.testPlayerID)
	s.Require().NoError(err)

	e := t.entrants[0]
	s.Require().Len(e.hands, 2)
	s.Equal(int64(20), e.hands[0].Bet)
	s.Equal(int64(20), e.hands[1].Bet)
	s.Require().Len(e.hands[0].Cards, 1)
	s.Require().Len(e.hands[1].Cards, 1)

	// Both eights lose to the dealer's 17; no payouts
	_, err = t.stand(s.ctx, s.testPlayerID)
	s.Require().NoError(err)
	_, err = t.stand(s.ctx, s.testPlayerID)
	s.Require().NoError(err)

	s.Equal(PhaseBetting, t.phase)
}

func (s *TableTestSuite) TestSplitRequiresPair() {
	t := s.newTestTable(
		card(deck.RankEight), card(deck.RankNine),
		card(deck.RankNine), card(deck.RankEight),
	)

	s.expectWithdraw(s.testPlayerID, 20)
	s.placeBet(t, s.testPlayerID, 20)
	t.tick(s.ctx)

	_, err := t.split(s.ctx, s.testPlayerID)
	s.Require().ErrorIs(err, ErrCannotSplit)
}

func (s *TableTestSuite) TestDoubleDrawsOneCardAndStands() {
	// 5+6 doubled into a ten: 21 against the dealer's 17 wins 400
	t := s.newTestTable(
		card(deck.RankFive), card(deck.RankSix),
		card(deck.RankNine), card(deck.RankEight),
		card(deck.RankTen),
	)

	s.expectWithdraw(s.testPlayerID, 100)
	s.placeBet(t, s.testPlayerID, 100)
	t.tick(s.ctx)

	s.expectWithdraw(s.testPlayerID, 100)
	s.expectDeposit(s.testPlayerID, 400)

	_, err := t.double(s.ctx, s.testPlayerID)
	s.Require().NoError(err)
	s.Equal(PhaseBetting, t.phase)
}

func (s *TableTestSuite) TestDoubleInsufficientBalance() {
	t := s.newTestTable(
		card(deck.RankFive), card(deck.RankSix),
		card(deck.RankNine), card(deck.RankEight),
	)

	s.expectWithdraw(s.testPlayerID, 100)
	s.placeBet(t, s.testPlayerID, 100)
	t.tick(s.ctx)

	s.mockBank.EXPECT().
		Withdraw(gomock.Any(), gomock.Any()).
		Return(nil, bank.ErrInsufficientBalance)

	_, err := t.double(s.ctx, s.testPlayerID)
	s.Require().ErrorIs(err, bank.ErrInsufficientBalance)

	// Hand unchanged and still playable
	hand := t.entrants[0].hands[0]
	s.Equal(int64(100), hand.Bet)
	s.Len(hand.Cards, 2)
	s.False(hand.Standing)
}

func (s *TableTestSuite) TestPushRefundsBet() {
	// Player and dealer both stand at 18
	t := s.newTestTable(
		card(deck.RankTen), card(deck.RankEight),
		card(deck.RankNine), card(deck.RankNine),
	)

	s.expectWithdraw(s.testPlayerID, 40)
	s.placeBet(t, s.testPlayerID, 40)
	t.tick(s.ctx)

	s.expectDeposit(s.testPlayerID, 40)
	_, err := t.stand(s.ctx, s.testPlayerID)
	s.Require().NoError(err)
}

func (s *TableTestSuite) TestDealerDrawsToSeventeen() {
	// Dealer reveals 9+2 and must draw the queen to reach 21
	t := s.newTestTable(
		card(deck.RankTen), card(deck.RankEight),
		card(deck.RankNine), card(deck.RankTwo),
		card(deck.RankQueen),
	)

	s.expectWithdraw(s.testPlayerID, 40)
	s.placeBet(t, s.testPlayerID, 40)
	t.tick(s.ctx)

	// 18 loses to 21: no payout expectations
	_, err := t.stand(s.ctx, s.testPlayerID)
	s.Require().NoError(err)
	s.Equal(PhaseBetting, t.phase)
}

func (s *TableTestSuite) TestDealerBustPaysSurvivors() {
	// Dealer reveals 9+7, draws a ten and busts; the player's 18 wins
	t := s.newTestTable(
		card(deck.RankTen), card(deck.RankEight),
		card(deck.RankNine), card(deck.RankSeven),
		card(deck.RankTen),
	)

	s.expectWithdraw(s.testPlayerID, 40)
	s.placeBet(t, s.testPlayerID, 40)
	t.tick(s.ctx)

	s.expectDeposit(s.testPlayerID, 80)
	_, err := t.stand(s.ctx, s.testPlayerID)
	s.Require().NoError(err)
}

func (s *TableTestSuite) TestDealerBlackjackPushesOnlyNaturals() {
	other := "other-player-id"
	t := s.newTestTable(
		card(deck.RankKing), card(deck.RankAce), // player one: natural
		card(deck.RankTen), card(deck.RankNine), // player two: 19
		card(deck.RankAce), card(deck.RankKing), // dealer: natural
	)

	s.expectWithdraw(s.testPlayerID, 100)
	s.placeBet(t, s.testPlayerID, 100)
	s.expectWithdraw(other, 100)
	s.placeBet(t, other, 100)

	// Player one pushes for a refund; player two's 19 just loses
	s.expectDeposit(s.testPlayerID, 100)

	t.tick(s.ctx)
	s.Equal(PhasePlayerTurns, t.phase)

	_, err := t.stand(s.ctx, other)
	s.Require().NoError(err)
	s.Equal(PhaseBetting, t.phase)
}

func (s *TableTestSuite) TestTurnTimerForcesResolution() {
	// Player never acts; after the turn cap their 15 is final and loses
	// to the dealer's 17
	t := s.newTestTable(
		card(deck.RankTen), card(deck.RankFive),
		card(deck.RankNine), card(deck.RankEight),
	)

	s.expectWithdraw(s.testPlayerID, 50)
	s.placeBet(t, s.testPlayerID, 50)
	t.tick(s.ctx)
	s.Equal(PhasePlayerTurns, t.phase)

	for i := 0; i < t.settings.TurnSeconds; i++ {
		t.tick(s.ctx)
	}
	s.Equal(PhaseBetting, t.phase)
}

func (s *TableTestSuite) TestStopForfeitsEscrowedBets() {
	t := s.newTestTable()

	s.expectWithdraw(s.testPlayerID, 100)
	s.placeBet(t, s.testPlayerID, 100)

	// No deposit expectations: stopping never refunds
	_, err := t.stop(s.ctx)
	s.Require().NoError(err)
	s.Equal(PhaseIdle, t.phase)

	_, err = t.stop(s.ctx)
	s.Require().ErrorIs(err, ErrSessionNotActive)
}

func (s *TableTestSuite) TestStopReturnsHiddenCardToShoe() {
	t := s.newTestTable(
		card(deck.RankTen), card(deck.RankEight),
		card(deck.RankNine), card(deck.RankEight),
	)

	s.expectWithdraw(s.testPlayerID, 40)
	s.placeBet(t, s.testPlayerID, 40)
	t.tick(s.ctx)
	s.Require().NotNil(t.dealer.hidden)

	// Stopping mid-round must not lose the outstanding hole card
	_, err := t.stop(s.ctx)
	s.Require().NoError(err)
	s.Equal(4, t.shoe.LiveCount()+t.shoe.DiscardCount())
}

func (s *TableTestSuite) TestHiddenCardStaysOutOfDiscardUntilReveal() {
	t := s.newTestTable(
		card(deck.RankTen), card(deck.RankEight),
		card(deck.RankNine), card(deck.RankEight),
	)

	s.expectWithdraw(s.testPlayerID, 40)
	s.placeBet(t, s.testPlayerID, 40)
	t.tick(s.ctx)

	// Three cards discarded, one outstanding as the hole card
	s.Equal(3, t.shoe.DiscardCount())
	s.Require().NotNil(t.dealer.hidden)
	s.Equal(deck.RankEight, t.dealer.hidden.Rank)

	s.expectDeposit(s.testPlayerID, 80)
	_, err := t.stand(s.ctx, s.testPlayerID)
	s.Require().NoError(err)

	// Round is over, every dealt card is back in the shoe (the
	// post-round shuffle moved them into the live queue)
	s.Equal(4, t.shoe.LiveCount()+t.shoe.DiscardCount())
}
