package jobs

import (
	"context"
	"errors"
	"log/slog"

	"foodcourt/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ReOfferJob periodically re-offers unassigned sub-orders to the online
// couriers. It is the safety net behind the best-effort offer dispatch: a
// courier who was offline when the shop owner accepted, or whose connection
// dropped the offer, hears about the sub-order on the next sweep.
type ReOfferJob struct {
	handler commands.ReOfferSubOrdersCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewReOfferJob creates a job that sweeps for unassigned sub-orders every
// fifteen seconds.
func NewReOfferJob(handler commands.ReOfferSubOrdersCommandHandler, logger *slog.Logger) *ReOfferJob {
	return &ReOfferJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "reoffer_job"),
	}
}

// Start begins the sweep schedule.
func (j *ReOfferJob) Start() error {
	_, err := j.cron.AddFunc("*/15 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReOfferSubOrdersCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty sweep or an empty courier roster is the normal case.
			if !errors.Is(err, commands.ErrNoUnassignedSubOrders) && !errors.Is(err, commands.ErrNoCouriersOnline) {
				j.logger.ErrorContext(ctx, "Re-offer sweep failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Re-offer job started (sweeping every fifteen seconds)")
	return nil
}

// Stop stops the sweep schedule.
func (j *ReOfferJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Re-offer job stopped")
}
