package usecase

import (
	"context"

	"autohub/internal/domain/entity"
)

// DashboardUsecase summarises one day of a shop's activity.
type DashboardUsecase interface {
	// Summary uses the server's current date when date is empty.
	Summary(ctx context.Context, session *entity.Session, date string) (*entity.DashboardSummary, error)
}
