package background

import (
	"context"
	"log/slog"
	"time"

	"github.com/dinepay/escrow-service/internal/usecase/escrow"
)

const DefaultReaperInterval = 30 * time.Second

// BackgroundTasks owns the periodic jobs of the service. Today that is the
// hold-expiry reaper; every task stops on ctx cancellation.
type BackgroundTasks struct {
	EscrowUsecase  escrow.EscrowUsecase
	ReaperInterval time.Duration
}

func NewBackgroundTasks(escrowUC escrow.EscrowUsecase, reaperInterval time.Duration) *BackgroundTasks {
	if reaperInterval <= 0 {
		reaperInterval = DefaultReaperInterval
	}
	return &BackgroundTasks{
		EscrowUsecase:  escrowUC,
		ReaperInterval: reaperInterval,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startHoldExpiryReaper(ctx)
}

func (bt *BackgroundTasks) startHoldExpiryReaper(ctx context.Context) {
	ticker := time.NewTicker(bt.ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.EscrowUsecase.CancelExpiredHolds(ctx); err != nil {
				slog.Error("hold-expiry reaper failed", "error", err)
			}
		}
	}
}
