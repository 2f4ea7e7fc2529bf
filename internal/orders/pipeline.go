// Package orders implements the submission pipeline: order ID generation,
// confirmation assembly, notification dispatch and the transition to the
// completed state.
package orders

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/drishya/internal/common"
	"github.com/dmitrijs2005/drishya/internal/kvstore"
	"github.com/dmitrijs2005/drishya/internal/logging"
	"github.com/dmitrijs2005/drishya/internal/models"
	"github.com/dmitrijs2005/drishya/internal/wizard"
	"github.com/jonboulle/clockwork"
)

// ConfirmationSender is the slice of the dispatcher the pipeline needs.
type ConfirmationSender interface {
	SendOrderConfirmation(ctx context.Context, conf *models.OrderConfirmation) (string, error)
}

type Pipeline struct {
	sender          ConfirmationSender
	store           kvstore.Store
	clock           clockwork.Clock
	logger          logging.Logger
	processingDelay time.Duration
}

func NewPipeline(sender ConfirmationSender, store kvstore.Store, clock clockwork.Clock, logger logging.Logger, processingDelay time.Duration) *Pipeline {
	return &Pipeline{
		sender:          sender,
		store:           store,
		clock:           clock,
		logger:          logger.With("module", "orders"),
		processingDelay: processingDelay,
	}
}

// Submit runs the whole pipeline against the wizard's current draft.
//
// On dispatch failure the error is returned and nothing is cleared; the user
// stays on the review step and may resubmit, which generates a fresh order
// ID. On success the persisted draft is removed, the simulated payment
// processing delay elapses, and the wizard is marked complete.
func (p *Pipeline) Submit(ctx context.Context, ctrl *wizard.Controller) (*models.OrderConfirmation, error) {
	d := ctrl.Draft()

	if d.Plan == nil {
		return nil, common.ErrPlanRequired
	}
	if d.Avatar == nil {
		return nil, common.ErrAvatarRequired
	}
	// Every step predicate must hold, including steps skipped by a
	// resume-at-plan entry.
	if missing := ctrl.IncompleteSteps(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", common.ErrValidationFailed, missing)
	}

	orderID, err := p.generateOrderID()
	if err != nil {
		return nil, err
	}

	now := p.clock.Now()
	conf := &models.OrderConfirmation{
		OrderID:       orderID,
		CustomerEmail: d.CustomerEmail,
		CustomerName:  d.CustomerName,
		VideoType:     d.VideoType,
		PlanName:      d.Plan.Name,
		DeliveryDays:  d.Plan.DeliveryDays,
		AvatarName:    d.Avatar.Name,
		DeliveryDate:  now.AddDate(0, 0, d.Plan.DeliveryDays),
		OrderTotal:    ctrl.TotalPrice(),
	}

	if _, err := p.sender.SendOrderConfirmation(ctx, conf); err != nil {
		p.logger.Error(ctx, "order submission failed", "order_id", orderID, "error", err)
		return nil, err
	}

	if err := p.store.Delete(ctx, kvstore.KeyDraft); err != nil {
		return nil, fmt.Errorf("clear persisted draft: %w", err)
	}

	if p.processingDelay > 0 {
		select {
		case <-p.clock.After(p.processingDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	ctrl.MarkComplete()
	p.logger.Info(ctx, "order submitted", "order_id", orderID, "total", conf.OrderTotal)
	return conf, nil
}

// generateOrderID builds a time-based ID with a short random suffix. The
// format is cosmetic; it is not guaranteed globally unique.
func (p *Pipeline) generateOrderID() (string, error) {
	suffix, err := common.MakeRandBase36String(6)
	if err != nil {
		return "", fmt.Errorf("generate order id: %w", err)
	}
	return fmt.Sprintf("ORD-%d-%s", p.clock.Now().UnixMilli(), strings.ToUpper(suffix)), nil
}
