package metrics

import "github.com/shopspring/decimal"

// Error categories recorded by RecordError.
const (
	CategoryAuthentication = "authentication"
	CategoryRateLimit      = "rate_limit"
	CategoryTimeout        = "timeout"
	CategoryGeneration     = "generation"
	CategoryBusy           = "busy"
	CategoryOther          = "other"
)

// Pricing is the cost of one million tokens in each direction.
type Pricing struct {
	InputPerMillion  decimal.Decimal
	OutputPerMillion decimal.Decimal
}

// Snapshot is a point-in-time copy of the collected metrics.
type Snapshot struct {
	UptimeSeconds       float64          `json:"uptime_seconds"`
	TotalRequests       int64            `json:"total_requests"`
	TotalErrors         int64            `json:"total_errors"`
	SuccessRate         float64          `json:"success_rate"`
	AverageResponseTime float64          `json:"average_response_time_ms"`
	Requests            map[string]int64 `json:"requests"`
	StatusErrors        map[string]int64 `json:"status_errors"`
	ChatErrors          map[string]int64 `json:"chat_errors"`
	ChatTurns           int64            `json:"chat_turns"`
	CrisisDetections    int64            `json:"crisis_detections"`
	SessionsCreated     int64            `json:"sessions_created"`
	SessionsDeleted     int64            `json:"sessions_deleted"`
	InputTokens         int64            `json:"input_tokens"`
	OutputTokens        int64            `json:"output_tokens"`
	TotalTokens         int64            `json:"total_tokens"`
	EstimatedCost       string           `json:"estimated_cost"`
}
