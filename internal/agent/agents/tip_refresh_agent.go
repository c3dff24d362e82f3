package agents

import (
	"context"
	"log"
	"time"

	"github.com/thomasnguyen/corgi-quest-sub001/internal/service"
)

// TipRefreshAgent pre-warms the scraped training-tip cache for the configured
// topics so the first morning request never pays the fetch latency.
type TipRefreshAgent struct {
	tipService service.TipService
	topics     []string
	schedule   string
}

func NewTipRefreshAgent(tipService service.TipService, topics []string, schedule string) *TipRefreshAgent {
	return &TipRefreshAgent{
		tipService: tipService,
		topics:     topics,
		schedule:   schedule,
	}
}

func (a *TipRefreshAgent) GetName() string {
	return "tip-refresh"
}

func (a *TipRefreshAgent) GetSchedule() string {
	return a.schedule
}

func (a *TipRefreshAgent) Execute(ctx context.Context) error {
	for _, topic := range a.topics {
		if err := a.tipService.RefreshTopic(ctx, topic); err != nil {
			log.Printf("⚠️ Failed to refresh tip topic %q: %v", topic, err)
			continue
		}
		log.Printf("✅ Refreshed tip topic %q", topic)

		// Be polite to the upstream site between fetches.
		time.Sleep(5 * time.Second)
	}
	return nil
}
