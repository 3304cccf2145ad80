package contracts

import (
	"context"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
)

type ReportEventPublisher interface {
	Publish(ctx context.Context, event *models.ReportEvent) error
}
