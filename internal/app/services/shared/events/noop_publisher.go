package events

import (
	"context"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
)

type noopPublisher struct{}

// NewNoopPublisher drops every event. Used when RabbitMQ is disabled.
func NewNoopPublisher() contracts.ReportEventPublisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(ctx context.Context, event *models.ReportEvent) error {
	return nil
}
