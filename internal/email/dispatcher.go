package email

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/drishya/internal/logging"
	"github.com/dmitrijs2005/drishya/internal/models"
)

type Dispatcher struct {
	transport Transport
	logger    logging.Logger
}

func NewDispatcher(transport Transport, logger logging.Logger) *Dispatcher {
	return &Dispatcher{
		transport: transport,
		logger:    logger.With("module", "email"),
	}
}

// SendOrderConfirmation renders the confirmation body and delivers it.
// Returns the transport's message ID.
func (d *Dispatcher) SendOrderConfirmation(ctx context.Context, conf *models.OrderConfirmation) (string, error) {
	body, err := renderOrderConfirmation(conf)
	if err != nil {
		return "", fmt.Errorf("render confirmation: %w", err)
	}

	subject := fmt.Sprintf("Order Confirmed - %s", conf.OrderID)
	msgID, err := d.transport.Send(ctx, conf.CustomerEmail, subject, body)
	if err != nil {
		d.logger.Error(ctx, "confirmation delivery failed", "order_id", conf.OrderID, "error", err)
		return "", err
	}

	d.logger.Info(ctx, "confirmation sent", "order_id", conf.OrderID, "message_id", msgID)
	return msgID, nil
}

// SendStatusUpdate delivers a production-stage update for an order.
func (d *Dispatcher) SendStatusUpdate(ctx context.Context, orderID, customerEmail, stage, message string) (string, error) {
	body, err := renderStatusUpdate(orderID, stage, message)
	if err != nil {
		return "", fmt.Errorf("render status update: %w", err)
	}

	subject := fmt.Sprintf("Order Update - %s", orderID)
	msgID, err := d.transport.Send(ctx, customerEmail, subject, body)
	if err != nil {
		d.logger.Error(ctx, "status update delivery failed", "order_id", orderID, "error", err)
		return "", err
	}
	return msgID, nil
}
