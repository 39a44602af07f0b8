package model

import "time"

const (
	PlanFree     = "free"
	PlanPro      = "pro"
	PlanBusiness = "business"
)

// PlanLimits bounds what an account may configure and how long raw check
// results are kept. MaxMonitors of -1 means unlimited.
type PlanLimits struct {
	MaxMonitors      int
	MinCheckInterval int //seconds
	Retention        time.Duration
	AlertChannels    []string
}

var planLimits = map[string]PlanLimits{
	PlanFree: {
		MaxMonitors:      5,
		MinCheckInterval: 300,
		Retention:        24 * time.Hour,
		AlertChannels:    []string{AlertChannelEmail},
	},
	PlanPro: {
		MaxMonitors:      50,
		MinCheckInterval: 60,
		Retention:        90 * 24 * time.Hour,
		AlertChannels:    []string{AlertChannelEmail, AlertChannelWebhook},
	},
	PlanBusiness: {
		MaxMonitors:      -1,
		MinCheckInterval: 30,
		Retention:        365 * 24 * time.Hour,
		AlertChannels:    []string{AlertChannelEmail, AlertChannelWebhook, AlertChannelStream},
	},
}

// LimitsForPlan falls back to the free plan for unrecognized plan names so a
// bad row can never widen an account's limits.
func LimitsForPlan(plan string) PlanLimits {
	if limits, ok := planLimits[plan]; ok {
		return limits
	}
	return planLimits[PlanFree]
}
