package slots

import (
	"context"
	"testing"

	diceMocks "github.com/mkrug/croupier/internal/dice/mocks"
	"github.com/mkrug/croupier/internal/models"
	accountRepo "github.com/mkrug/croupier/internal/repositories/account"
	accountMocks "github.com/mkrug/croupier/internal/repositories/account/mocks"
	settingsMocks "github.com/mkrug/croupier/internal/repositories/settings/mocks"
	"github.com/mkrug/croupier/internal/services/bank"
	bankMocks "github.com/mkrug/croupier/internal/services/bank/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotsServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockBank         *bankMocks.MockService
	mockSettingsRepo *settingsMocks.MockRepository
	mockAccountRepo  *accountMocks.MockRepository
	mockRoller       *diceMocks.MockRoller
	slotsService     Service
	ctx              context.Context

	testGuildID  string
	testPlayerID string
}

func (s *SlotsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockBank = bankMocks.NewMockService(s.mockCtrl)
	s.mockSettingsRepo = settingsMocks.NewMockRepository(s.mockCtrl)
	s.mockAccountRepo = accountMocks.NewMockRepository(s.mockCtrl)
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	s.testGuildID = "test-guild-id"
	s.testPlayerID = "test-player-id"

	s.mockSettingsRepo.EXPECT().
		GetSettings(gomock.Any(), gomock.Any()).
		Return(models.DefaultGameSettings(s.testGuildID), nil).
		AnyTimes()

	svc, err := New(&Config{
		Bank:         s.mockBank,
		SettingsRepo: s.mockSettingsRepo,
		AccountRepo:  s.mockAccountRepo,
		Roller:       s.mockRoller,
	})
	s.Require().NoError(err)
	s.slotsService = svc
}

func (s *SlotsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SlotsServiceTestSuite))
}

// expectSpin wires the cooldown gate, escrow, and reel stops for one
// spin. Rolls are 1-based ring positions.
func (s *SlotsServiceTestSuite) expectSpin(bid int64, rolls [3]int) {
	s.mockAccountRepo.EXPECT().
		OnCooldown(s.ctx, &accountRepo.OnCooldownInput{
			Name:    slotCooldownName,
			GuildID: s.testGuildID,
			OwnerID: s.testPlayerID,
		}).
		Return(false, nil)

	s.mockBank.EXPECT().
		Withdraw(s.ctx, &bank.WithdrawInput{
			GuildID: s.testGuildID,
			OwnerID: s.testPlayerID,
			Amount:  bid,
		}).
		Return(&bank.WithdrawOutput{}, nil)

	gomock.InOrder(
		s.mockRoller.EXPECT().Roll(10).Return(rolls[0]),
		s.mockRoller.EXPECT().Roll(10).Return(rolls[1]),
		s.mockRoller.EXPECT().Roll(10).Return(rolls[2]),
	)

	s.mockAccountRepo.EXPECT().
		SetCooldown(s.ctx, gomock.Any()).
		Return(nil)
}

func (s *SlotsServiceTestSuite) expectDeposit(amount int64, balance int64) {
	s.mockBank.EXPECT().
		Deposit(s.ctx, &bank.DepositInput{
			GuildID: s.testGuildID,
			OwnerID: s.testPlayerID,
			Amount:  amount,
		}).
		Return(&bank.DepositOutput{Balance: balance}, nil)
}

func (s *SlotsServiceTestSuite) spin(bid int64) *SpinOutput {
	out, err := s.slotsService.Spin(s.ctx, &SpinInput{
		GuildID:  s.testGuildID,
		PlayerID: s.testPlayerID,
		Bid:      bid,
	})
	s.Require().NoError(err)
	return out
}

func (s *SlotsServiceTestSuite) TestSpinJackpot() {
	// Ring stops two, two, six: the 2-2-6 jackpot
	s.expectSpin(10, [3]int{3, 3, 7})
	s.expectDeposit(10*2500+10, 25010)

	out := s.spin(10)
	s.True(out.Jackpot)
	s.Equal([3]Symbol{SymbolTwo, SymbolTwo, SymbolSix}, out.Rows[1])
	s.Equal(int64(25010), out.Payout)
	s.Equal(int64(25000), out.Net)
}

func (s *SlotsServiceTestSuite) TestSpinThreeClovers() {
	s.expectSpin(10, [3]int{4, 4, 4})
	s.expectDeposit(10+1000, 1010)

	out := s.spin(10)
	s.False(out.Jackpot)
	s.Equal(int64(1010), out.Payout)
}

func (s *SlotsServiceTestSuite) TestSpinThreeCherries() {
	s.expectSpin(10, [3]int{1, 1, 1})
	s.expectDeposit(10+800, 810)

	out := s.spin(10)
	s.Equal(int64(810), out.Payout)
}

func (s *SlotsServiceTestSuite) TestSpinTwoSixLead() {
	s.expectSpin(10, [3]int{3, 7, 1})
	s.expectDeposit(10*4+10, 50)

	out := s.spin(10)
	s.Equal(int64(40), out.Net)
}

func (s *SlotsServiceTestSuite) TestSpinCherryPairLead() {
	s.expectSpin(10, [3]int{1, 1, 2})
	s.expectDeposit(10*3+10, 40)

	out := s.spin(10)
	s.Equal(int64(30), out.Net)
}

func (s *SlotsServiceTestSuite) TestSpinThreeOfAKind() {
	s.expectSpin(10, [3]int{8, 8, 8})
	s.expectDeposit(10+500, 510)

	out := s.spin(10)
	s.Equal(int64(510), out.Payout)
}

func (s *SlotsServiceTestSuite) TestSpinTwoSixTrailing() {
	// Ring stops heart, two, six: the pair pays from the trailing window
	s.expectSpin(10, [3]int{9, 3, 7})
	s.expectDeposit(10*4+10, 50)

	out := s.spin(10)
	s.Equal([3]Symbol{SymbolHeart, SymbolTwo, SymbolSix}, out.Rows[1])
	s.Equal(int64(40), out.Net)
}

func (s *SlotsServiceTestSuite) TestSpinCherryPairTrailing() {
	s.expectSpin(10, [3]int{4, 1, 1})
	s.expectDeposit(10*3+10, 40)

	out := s.spin(10)
	s.Equal(int64(30), out.Net)
}

func (s *SlotsServiceTestSuite) TestSpinConsecutivePair() {
	s.expectSpin(10, [3]int{2, 5, 5})
	s.expectDeposit(10*2+10, 30)

	out := s.spin(10)
	s.Equal(int64(20), out.Net)
}

func (s *SlotsServiceTestSuite) TestSpinLosesBid() {
	s.expectSpin(10, [3]int{1, 3, 5})
	s.mockBank.EXPECT().
		GetBalance(s.ctx, gomock.Any()).
		Return(&bank.GetBalanceOutput{Balance: 90}, nil)

	out := s.spin(10)
	s.Equal(int64(0), out.Payout)
	s.Equal(int64(-10), out.Net)
	s.Equal(int64(90), out.Balance)
}

func (s *SlotsServiceTestSuite) TestSpinBidOutsideLimits() {
	_, err := s.slotsService.Spin(s.ctx, &SpinInput{
		GuildID:  s.testGuildID,
		PlayerID: s.testPlayerID,
		Bid:      4,
	})
	s.Require().ErrorIs(err, ErrInvalidBid)

	_, err = s.slotsService.Spin(s.ctx, &SpinInput{
		GuildID:  s.testGuildID,
		PlayerID: s.testPlayerID,
		Bid:      101,
	})
	s.Require().ErrorIs(err, ErrInvalidBid)
}

func (s *SlotsServiceTestSuite) TestSpinOnCooldown() {
	s.mockAccountRepo.EXPECT().
		OnCooldown(s.ctx, gomock.Any()).
		Return(true, nil)

	_, err := s.slotsService.Spin(s.ctx, &SpinInput{
		GuildID:  s.testGuildID,
		PlayerID: s.testPlayerID,
		Bid:      10,
	})
	s.Require().ErrorIs(err, ErrOnCooldown)
}

func (s *SlotsServiceTestSuite) TestSpinInsufficientBalance() {
	s.mockAccountRepo.EXPECT().
		OnCooldown(s.ctx, gomock.Any()).
		Return(false, nil)
	s.mockBank.EXPECT().
		Withdraw(s.ctx, gomock.Any()).
		Return(nil, bank.ErrInsufficientBalance)

	_, err := s.slotsService.Spin(s.ctx, &SpinInput{
		GuildID:  s.testGuildID,
		PlayerID: s.testPlayerID,
		Bid:      10,
	})
	s.Require().ErrorIs(err, bank.ErrInsufficientBalance)
}

func (s *SlotsServiceTestSuite) TestPlayDiceWin() {
	s.mockBank.EXPECT().
		Withdraw(s.ctx, &bank.WithdrawInput{
			GuildID: s.testGuildID,
			OwnerID: s.testPlayerID,
			Amount:  10,
		}).
		Return(&bank.WithdrawOutput{}, nil)
	s.mockRoller.EXPECT().Roll(6).Return(4)
	s.mockBank.EXPECT().
		Deposit(s.ctx, &bank.DepositInput{
			GuildID: s.testGuildID,
			OwnerID: s.testPlayerID,
			Amount:  60,
		}).
		Return(&bank.DepositOutput{Balance: 150}, nil)

	out, err := s.slotsService.PlayDice(s.ctx, &PlayDiceInput{
		GuildID:  s.testGuildID,
		PlayerID: s.testPlayerID,
		Guess:    4,
		Bid:      10,
	})
	s.Require().NoError(err)
	s.True(out.Won)
	s.Equal(4, out.Roll)
	s.Equal(int64(60), out.Payout)
	s.Equal(int64(50), out.Net)
}

func (s *SlotsServiceTestSuite) TestPlayDiceLoss() {
	s.mockBank.EXPECT().
		Withdraw(s.ctx, gomock.Any()).
		Return(&bank.WithdrawOutput{}, nil)
	s.mockRoller.EXPECT().Roll(6).Return(2)
	s.mockBank.EXPECT().
		GetBalance(s.ctx, gomock.Any()).
		Return(&bank.GetBalanceOutput{Balance: 90}, nil)

	out, err := s.slotsService.PlayDice(s.ctx, &PlayDiceInput{
		GuildID:  s.testGuildID,
		PlayerID: s.testPlayerID,
		Guess:    4,
		Bid:      10,
	})
	s.Require().NoError(err)
	s.False(out.Won)
	s.Equal(int64(-10), out.Net)
}

func (s *SlotsServiceTestSuite) TestPlayDiceInvalidGuess() {
	_, err := s.slotsService.PlayDice(s.ctx, &PlayDiceInput{
		GuildID:  s.testGuildID,
		PlayerID: s.testPlayerID,
		Guess:    7,
		Bid:      10,
	})
	s.Require().ErrorIs(err, ErrInvalidGuess)
}

func TestSettlePaylineOrdering(t *testing.T) {
	// Three cherries must hit the 800 line, not the cherry-pair line
	payout, jackpot := settlePayline([3]Symbol{SymbolCherries, SymbolCherries, SymbolCherries}, 10)
	assert.Equal(t, int64(810), payout)
	assert.False(t, jackpot)

	// A two-six lead beats the consecutive-pair rule
	payout, _ = settlePayline([3]Symbol{SymbolTwo, SymbolSix, SymbolSix}, 10)
	assert.Equal(t, int64(50), payout)

	// The 2-2-6 jackpot wins before the trailing two-six window
	payout, jackpot = settlePayline([3]Symbol{SymbolTwo, SymbolTwo, SymbolSix}, 10)
	assert.Equal(t, int64(25010), payout)
	assert.True(t, jackpot)
}
