package bank

import (
	"context"
	"testing"
	"time"

	clockMocks "github.com/mkrug/croupier/internal/common/clock/mocks"
	"github.com/mkrug/croupier/internal/models"
	accountRepo "github.com/mkrug/croupier/internal/repositories/account"
	accountMocks "github.com/mkrug/croupier/internal/repositories/account/mocks"
	settingsRepo "github.com/mkrug/croupier/internal/repositories/settings"
	settingsMocks "github.com/mkrug/croupier/internal/repositories/settings/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BankServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockAccountRepo  *accountMocks.MockRepository
	mockSettingsRepo *settingsMocks.MockRepository
	mockClock        *clockMocks.MockClock
	bankService      Service
	ctx              context.Context

	// Test data
	testTime    time.Time
	testGuildID string
	testOwnerID string
}

func (s *BankServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockAccountRepo = accountMocks.NewMockRepository(s.mockCtrl)
	s.mockSettingsRepo = settingsMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGuildID = "test-guild-id"
	s.testOwnerID = "test-owner-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	svc, err := New(&Config{
		AccountRepo:  s.mockAccountRepo,
		SettingsRepo: s.mockSettingsRepo,
		Clock:        s.mockClock,
	})
	s.Require().NoError(err)
	s.bankService = svc
}

func (s *BankServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBankServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BankServiceTestSuite))
}

// account returns a fresh account fixture with the given balance
func (s *BankServiceTestSuite) account(balance int64) *models.Account {
	return &models.Account{
		GuildID:   s.testGuildID,
		OwnerID:   s.testOwnerID,
		OwnerName: "Test Owner",
		Balance:   balance,
		CreatedAt: s.testTime,
	}
}

// expectGetAccount wires the repo to return the given account once
func (s *BankServiceTestSuite) expectGetAccount(ownerID string, acct *models.Account) {
	s.mockAccountRepo.EXPECT().
		GetAccount(s.ctx, &accountRepo.GetAccountInput{
			GuildID: s.testGuildID,
			OwnerID: ownerID,
		}).
		Return(acct, nil)
}

func (s *BankServiceTestSuite) TestCreateAccount() {
	s.mockAccountRepo.EXPECT().
		GetAccount(s.ctx, gomock.Any()).
		Return(nil, accountRepo.ErrAccountNotFound)

	s.mockAccountRepo.EXPECT().
		SaveAccount(s.ctx, &accountRepo.SaveAccountInput{
			Account: s.account(100),
		}).
		Return(nil)

	out, err := s.bankService.CreateAccount(s.ctx, &CreateAccountInput{
		GuildID:        s.testGuildID,
		OwnerID:        s.testOwnerID,
		OwnerName:      "Test Owner",
		InitialBalance: 100,
	})
	s.Require().NoError(err)
	s.Equal(int64(100), out.Account.Balance)
	s.Equal(s.testTime, out.Account.CreatedAt)
}

func (s *BankServiceTestSuite) TestCreateAccountAlreadyExists() {
	s.expectGetAccount(s.testOwnerID, s.account(50))

	_, err := s.bankService.CreateAccount(s.ctx, &CreateAccountInput{
		GuildID: s.testGuildID,
		OwnerID: s.testOwnerID,
	})
	s.Require().ErrorIs(err, ErrAccountExists)
}

func (s *BankServiceTestSuite) TestCreateAccountNegativeBalance() {
	_, err := s.bankService.CreateAccount(s.ctx, &CreateAccountInput{
		GuildID:        s.testGuildID,
		OwnerID:        s.testOwnerID,
		InitialBalance: -1,
	})
	s.Require().ErrorIs(err, ErrNegativeValue)
}

func (s *BankServiceTestSuite) TestRegisterUsesGuildCredits() {
	settings := models.DefaultGameSettings(s.testGuildID)
	settings.RegisterCredits = 250

	s.mockSettingsRepo.EXPECT().
		GetSettings(s.ctx, &settingsRepo.GetSettingsInput{GuildID: s.testGuildID}).
		Return(settings, nil)

	s.mockAccountRepo.EXPECT().
		GetAccount(s.ctx, gomock.Any()).
		Return(nil, accountRepo.ErrAccountNotFound)

	s.mockAccountRepo.EXPECT().
		SaveAccount(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *accountRepo.SaveAccountInput) error {
			s.Equal(int64(250), input.Account.Balance)
			return nil
		})

	out, err := s.bankService.Register(s.ctx, &RegisterInput{
		GuildID:   s.testGuildID,
		OwnerID:   s.testOwnerID,
		OwnerName: "Test Owner",
	})
	s.Require().NoError(err)
	s.Equal(int64(250), out.Account.Balance)
}

func (s *BankServiceTestSuite) TestGetBalanceNoAccount() {
	s.mockAccountRepo.EXPECT().
		GetAccount(s.ctx, gomock.Any()).
		Return(nil, accountRepo.ErrAccountNotFound)

	_, err := s.bankService.GetBalance(s.ctx, &GetBalanceInput{
		GuildID: s.testGuildID,
		OwnerID: s.testOwnerID,
	})
	s.Require().ErrorIs(err, ErrNoAccount)
}

func (s *BankServiceTestSuite) TestDeposit() {
	s.expectGetAccount(s.testOwnerID, s.account(100))

	s.mockAccountRepo.EXPECT().
		SaveAccount(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *accountRepo.SaveAccountInput) error {
			s.Equal(int64(150), input.Account.Balance)
			return nil
		})

	out, err := s.bankService.Deposit(s.ctx, &DepositInput{
		GuildID: s.testGuildID,
		OwnerID: s.testOwnerID,
		Amount:  50,
	})
	s.Require().NoError(err)
	s.Equal(int64(150), out.Balance)
}

func (s *BankServiceTestSuite) TestDepositNegativeAmount() {
	_, err := s.bankService.Deposit(s.ctx, &DepositInput{
		GuildID: s.testGuildID,
		OwnerID: s.testOwnerID,
		Amount:  -50,
	})
	s.Require().ErrorIs(err, ErrNegativeValue)
}

func (s *BankServiceTestSuite) TestWithdraw() {
	s.expectGetAccount(s.testOwnerID, s.account(100))

	s.mockAccountRepo.EXPECT().
		SaveAccount(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *accountRepo.SaveAccountInput) error {
			s.Equal(int64(60), input.Account.Balance)
			return nil
		})

	out, err := s.bankService.Withdraw(s.ctx, &WithdrawInput{
		GuildID: s.testGuildID,
		OwnerID: s.testOwnerID,
		Amount:  40,
	})
	s.Require().NoError(err)
	s.Equal(int64(60), out.Balance)
}

func (s *BankServiceTestSuite) TestWithdrawInsufficientBalance() {
	s.expectGetAccount(s.testOwnerID, s.account(30))

	// No SaveAccount expectation: a rejected withdrawal must not write
	_, err := s.bankService.Withdraw(s.ctx, &WithdrawInput{
		GuildID: s.testGuildID,
		OwnerID: s.testOwnerID,
		Amount:  40,
	})
	s.Require().ErrorIs(err, ErrInsufficientBalance)
}

func (s *BankServiceTestSuite) TestSetBalance() {
	s.expectGetAccount(s.testOwnerID, s.account(100))

	s.mockAccountRepo.EXPECT().
		SaveAccount(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *accountRepo.SaveAccountInput) error {
			s.Equal(int64(9000), input.Account.Balance)
			return nil
		})

	out, err := s.bankService.SetBalance(s.ctx, &SetBalanceInput{
		GuildID: s.testGuildID,
		OwnerID: s.testOwnerID,
		Amount:  9000,
	})
	s.Require().NoError(err)
	s.Equal(int64(9000), out.Balance)
}

func (s *BankServiceTestSuite) TestTransfer() {
	receiverID := "receiver-id"
	sender := s.account(100)
	receiver := &models.Account{
		GuildID: s.testGuildID,
		OwnerID: receiverID,
		Balance: 10,
	}

	s.expectGetAccount(s.testOwnerID, sender)
	s.expectGetAccount(receiverID, receiver)

	saved := make(map[string]int64)
	s.mockAccountRepo.EXPECT().
		SaveAccount(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *accountRepo.SaveAccountInput) error {
			saved[input.Account.OwnerID] = input.Account.Balance
			return nil
		}).
		Times(2)

	out, err := s.bankService.Transfer(s.ctx, &TransferInput{
		GuildID: s.testGuildID,
		FromID:  s.testOwnerID,
		ToID:    receiverID,
		Amount:  60,
	})
	s.Require().NoError(err)
	s.Equal(int64(40), out.FromBalance)
	s.Equal(int64(70), out.ToBalance)
	s.Equal(int64(40), saved[s.testOwnerID])
	s.Equal(int64(70), saved[receiverID])
}

func (s *BankServiceTestSuite) TestTransferInsufficientBalanceIsAtomic() {
	receiverID := "receiver-id"
	s.expectGetAccount(s.testOwnerID, s.account(10))
	s.expectGetAccount(receiverID, &models.Account{
		GuildID: s.testGuildID,
		OwnerID: receiverID,
		Balance: 0,
	})

	// No SaveAccount expectation: neither leg may be written
	_, err := s.bankService.Transfer(s.ctx, &TransferInput{
		GuildID: s.testGuildID,
		FromID:  s.testOwnerID,
		ToID:    receiverID,
		Amount:  60,
	})
	s.Require().ErrorIs(err, ErrInsufficientBalance)
}

func (s *BankServiceTestSuite) TestTransferToSelf() {
	_, err := s.bankService.Transfer(s.ctx, &TransferInput{
		GuildID: s.testGuildID,
		FromID:  s.testOwnerID,
		ToID:    s.testOwnerID,
		Amount:  60,
	})
	s.Require().ErrorIs(err, ErrSameSenderAndReceiver)
}

func (s *BankServiceTestSuite) TestCanSpend() {
	s.expectGetAccount(s.testOwnerID, s.account(100))

	out, err := s.bankService.CanSpend(s.ctx, &CanSpendInput{
		GuildID: s.testGuildID,
		OwnerID: s.testOwnerID,
		Amount:  100,
	})
	s.Require().NoError(err)
	s.True(out.CanSpend)
}

func (s *BankServiceTestSuite) TestCanSpendNoAccount() {
	s.mockAccountRepo.EXPECT().
		GetAccount(s.ctx, gomock.Any()).
		Return(nil, accountRepo.ErrAccountNotFound)

	out, err := s.bankService.CanSpend(s.ctx, &CanSpendInput{
		GuildID: s.testGuildID,
		OwnerID: s.testOwnerID,
		Amount:  1,
	})
	s.Require().NoError(err)
	s.False(out.CanSpend)
}

func (s *BankServiceTestSuite) TestPayday() {
	settings := models.DefaultGameSettings(s.testGuildID)

	s.mockSettingsRepo.EXPECT().
		GetSettings(s.ctx, gomock.Any()).
		Return(settings, nil)

	s.expectGetAccount(s.testOwnerID, s.account(0))

	s.mockAccountRepo.EXPECT().
		OnCooldown(s.ctx, &accountRepo.OnCooldownInput{
			Name:    "payday",
			GuildID: s.testGuildID,
			OwnerID: s.testOwnerID,
		}).
		Return(false, nil)

	s.expectGetAccount(s.testOwnerID, s.account(0))
	s.mockAccountRepo.EXPECT().
		SaveAccount(s.ctx, gomock.Any()).
		Return(nil)

	s.mockAccountRepo.EXPECT().
		SetCooldown(s.ctx, &accountRepo.SetCooldownInput{
			Name:    "payday",
			GuildID: s.testGuildID,
			OwnerID: s.testOwnerID,
			TTL:     300 * time.Second,
		}).
		Return(nil)

	out, err := s.bankService.Payday(s.ctx, &PaydayInput{
		GuildID: s.testGuildID,
		OwnerID: s.testOwnerID,
	})
	s.Require().NoError(err)
	s.Equal(int64(120), out.Credits)
	s.Equal(int64(120), out.Balance)
}

func (s *BankServiceTestSuite) TestPaydayOnCooldown() {
	s.mockSettingsRepo.EXPECT().
		GetSettings(s.ctx, gomock.Any()).
		Return(models.DefaultGameSettings(s.testGuildID), nil)

	s.expectGetAccount(s.testOwnerID, s.account(0))

	s.mockAccountRepo.EXPECT().
		OnCooldown(s.ctx, gomock.Any()).
		Return(true, nil)

	_, err := s.bankService.Payday(s.ctx, &PaydayInput{
		GuildID: s.testGuildID,
		OwnerID: s.testOwnerID,
	})
	s.Require().ErrorIs(err, ErrOnCooldown)
}

func (s *BankServiceTestSuite) TestLeaderboard() {
	s.mockAccountRepo.EXPECT().
		GetGuildAccounts(s.ctx, &accountRepo.GetGuildAccountsInput{
			GuildID: s.testGuildID,
		}).
		Return(&accountRepo.GetGuildAccountsOutput{
			Accounts: []*models.Account{
				{OwnerID: "a", OwnerName: "A", Balance: 10},
				{OwnerID: "b", OwnerName: "B", Balance: 300},
				{OwnerID: "c", OwnerName: "C", Balance: 50},
			},
		}, nil)

	out, err := s.bankService.Leaderboard(s.ctx, &LeaderboardInput{
		GuildID: s.testGuildID,
		Top:     2,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Entries, 2)
	s.Equal("b", out.Entries[0].OwnerID)
	s.Equal("c", out.Entries[1].OwnerID)
}
