package settings

import (
	"context"

	"github.com/mkrug/croupier/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/mkrug/croupier/internal/repositories/settings Repository

// Repository defines the interface for per-guild game settings persistence
type Repository interface {
	// SaveSettings persists a guild's settings
	SaveSettings(ctx context.Context, input *SaveSettingsInput) error

	// GetSettings retrieves a guild's settings, falling back to defaults
	// when the guild has none stored
	GetSettings(ctx context.Context, input *GetSettingsInput) (*models.GameSettings, error)
}

// SaveSettingsInput contains parameters for saving settings
type SaveSettingsInput struct {
	Settings *models.GameSettings
}

// GetSettingsInput contains parameters for retrieving settings
type GetSettingsInput struct {
	GuildID string
}
