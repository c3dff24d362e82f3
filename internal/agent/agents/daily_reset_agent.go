package agents

import (
	"context"
	"log"

	"github.com/thomasnguyen/corgi-quest-sub001/internal/service"
)

// DailyResetAgent runs the once-a-day goal/streak bookkeeping for every dog.
type DailyResetAgent struct {
	resetService service.ResetService
	schedule     string
}

func NewDailyResetAgent(resetService service.ResetService, schedule string) *DailyResetAgent {
	return &DailyResetAgent{
		resetService: resetService,
		schedule:     schedule,
	}
}

func (a *DailyResetAgent) GetName() string {
	return "daily-reset"
}

func (a *DailyResetAgent) GetSchedule() string {
	return a.schedule
}

func (a *DailyResetAgent) Execute(ctx context.Context) error {
	summary, err := a.resetService.RunDailyReset(ctx)
	if err != nil {
		return err
	}

	log.Printf("🐕 Daily reset: %d dogs processed, %d streaks updated (today=%s yesterday=%s)",
		summary.DogsProcessed, summary.StreaksUpdated, summary.TodayKey, summary.YesterdayKey)
	return nil
}
