package settings

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/mkrug/croupier/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestGetSettingsReturnsDefaults() {
	settings, err := s.repo.GetSettings(context.Background(), &GetSettingsInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(settings)

	defaults := models.DefaultGameSettings("guild-1")
	s.Equal(defaults, settings)
	s.Equal(int64(100000), settings.BlackjackMaxBet)
	s.Equal(20, settings.BettingSeconds)
	s.Equal(2, settings.DeckCount)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSettings() {
	stored := models.DefaultGameSettings("guild-1")
	stored.BlackjackMinBet = 10
	stored.BlackjackMaxBet = 5000
	stored.SlotCooldownSec = 30

	err := s.repo.SaveSettings(context.Background(), &SaveSettingsInput{
		Settings: stored,
	})
	s.Require().NoError(err)

	settings, err := s.repo.GetSettings(context.Background(), &GetSettingsInput{
		GuildID: "guild-1",
	})
	s.Require().NoError(err)
	s.Equal(int64(10), settings.BlackjackMinBet)
	s.Equal(int64(5000), settings.BlackjackMaxBet)
	s.Equal(30, settings.SlotCooldownSec)

	// Another guild still gets defaults
	other, err := s.repo.GetSettings(context.Background(), &GetSettingsInput{
		GuildID: "guild-2",
	})
	s.Require().NoError(err)
	s.Equal(models.DefaultGameSettings("guild-2"), other)
}
