package agent

import "context"

// Agent is a scheduled or on-demand background job.
//
// Implementations:
//   - DailyResetAgent: once-a-day goal/streak bookkeeping
//   - TipRefreshAgent: pre-warms the scraped training-tip cache
type Agent interface {
	// GetName returns the agent's unique name (logging & manual trigger).
	GetName() string

	// GetSchedule returns the cron expression, or "" for on-demand only.
	GetSchedule() string

	// Execute runs the agent's task.
	Execute(ctx context.Context) error
}
