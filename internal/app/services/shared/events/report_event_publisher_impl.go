package events

import (
	"context"
	"fmt"
	"sync"

	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/contracts"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/drivers/messaging"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/app/models"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/constvars"
	"github.com/Gust4dev/PsicareAPI-Atualizada-sub000/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type reportEventPublisher struct {
	ch        *amqp.Channel
	confirms  <-chan amqp.Confirmation
	queueName string
	mu        sync.Mutex
	Log       *zap.Logger
}

// NewReportEventPublisher declares queueName and puts the channel in confirm mode,
// so Publish only returns once the broker acknowledged the message.
func NewReportEventPublisher(conn *amqp.Connection, queueName string, logger *zap.Logger) (contracts.ReportEventPublisher, error) {
	ch, err := messaging.DeclareDurableQueue(conn, queueName)
	if err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, err
	}

	return &reportEventPublisher{
		ch:        ch,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
		queueName: queueName,
		Log:       logger,
	}, nil
}

func (p *reportEventPublisher) Publish(ctx context.Context, event *models.ReportEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	p.Log.Info("reportEventPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventKey, event.Event),
		zap.String(constvars.LoggingReportIDKey, event.ReportID),
	)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		Type:          event.Event,
		CorrelationId: requestID,
		Timestamp:     event.OccurredAt,
	}

	if err := p.ch.PublishWithContext(ctx, "", p.queueName, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queueName)
	}

	select {
	case confirmed, ok := <-p.confirms:
		if !ok || !confirmed.Ack {
			return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), p.queueName)
		}
	case <-ctx.Done():
		return exceptions.ErrRabbitMQPublishMessage(ctx.Err(), p.queueName)
	}
	return nil
}
