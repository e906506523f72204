package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ChamilkaMihiraj2002/AutoShare/databases"
)

// sweepBatch bounds how many ended rents a single sweep run processes
const sweepBatch = 500

// Scheduler runs the background sweep that completes ended rents and flips
// their vehicles back to available
type Scheduler struct {
	cron *cron.Cron
	RDB  databases.RentDatabase
	VDB  databases.VehicleDatabase
}

// New creates a new scheduler instance
func New(rdb databases.RentDatabase, vdb databases.VehicleDatabase) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		RDB:  rdb,
		VDB:  vdb,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// re-list vehicles from ended rents daily at 1 AM UTC
	_, err := s.cron.AddFunc("0 1 * * *", s.SweepEndedRents)
	if err != nil {
		zap.S().Errorw("failed to register rent sweep job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("rent sweep scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// SweepEndedRents marks rents whose end date has passed as completed and
// makes the referenced vehicle available again. Failures are logged and
// retried implicitly on the next run; a rent is only marked completed after
// its vehicle was re-listed.
func (s *Scheduler) SweepEndedRents() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	today := time.Now().UTC().Format("2006-01-02")
	rents, err := s.RDB.ListEnded(ctx, today, sweepBatch)
	if err != nil {
		zap.S().Errorw("rent sweep: failed to list ended rents", "error", err)
		return
	}

	for _, rent := range rents {
		rentID, _ := rent["_id"].(string)
		if vehicleID, ok := rent["vehicle_id"].(string); ok && vehicleID != "" {
			if err := s.VDB.SetAvailability(ctx, vehicleID, true); err != nil {
				zap.S().Errorw("rent sweep: failed to re-list vehicle",
					"rent", rentID,
					"vehicle", vehicleID,
					"error", err)
				continue
			}
		}
		if err := s.RDB.MarkCompleted(ctx, rentID); err != nil {
			zap.S().Errorw("rent sweep: failed to mark rent completed",
				"rent", rentID,
				"error", err)
		}
	}

	if len(rents) > 0 {
		zap.S().Infow("rent sweep finished", "processed", len(rents))
	}
}
