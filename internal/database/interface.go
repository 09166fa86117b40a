package database

import (
	"context"

	"github.com/akyairhashvil/dealgrid/internal/models"
)

// DealRepository defines deal-related store operations.
type DealRepository interface {
	GetDeals(ctx context.Context) ([]models.Deal, error)
	GetDeal(ctx context.Context, id string) (models.Deal, error)
	InsertDeal(ctx context.Context, deal models.Deal) (models.Deal, error)
	UpdateDeal(ctx context.Context, deal models.Deal) error
	DeleteDeals(ctx context.Context, ids []string) error
	DuplicateDeal(ctx context.Context, id string) (models.Deal, error)
	AddActivity(ctx context.Context, dealID string, a models.Activity) error
}

// ViewStateRepository is the persistence gateway for grid view preferences.
type ViewStateRepository interface {
	SaveViewState(ctx context.Context, vs ViewState) error
	LoadViewState(ctx context.Context) ViewState
}

// SettingsRepository stores small key/value preferences.
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool)
	SetSetting(ctx context.Context, key, value string) error
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -source=interface.go -destination=mock_repository.go -package=database
type Repository interface {
	DealRepository
	ViewStateRepository
	SettingsRepository
}

var _ Repository = (*Database)(nil)
