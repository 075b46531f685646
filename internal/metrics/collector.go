package metrics

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var million = decimal.NewFromInt(1_000_000)

// Collector aggregates request, token and error counters in memory.
type Collector struct {
	pricing Pricing
	now     func() time.Time
	started time.Time

	mu            sync.Mutex
	totalRequests int64
	totalErrors   int64
	totalLatency  time.Duration
	requests      map[string]int64
	statusErrors  map[string]int64
	chatErrors    map[string]int64
	chatTurns     int64
	crises        int64
	created       int64
	deleted       int64
	inputTokens   int64
	outputTokens  int64
	cost          decimal.Decimal
}

// New returns a Collector whose uptime starts now.
func New(pricing Pricing) *Collector {
	return newWithClock(pricing, time.Now)
}

func newWithClock(pricing Pricing, now func() time.Time) *Collector {
	return &Collector{
		pricing:      pricing,
		now:          now,
		started:      now(),
		requests:     make(map[string]int64),
		statusErrors: make(map[string]int64),
		chatErrors:   make(map[string]int64),
		cost:         decimal.Zero,
	}
}

// ParsePricing reads per-million prices written as decimal strings. Empty means free.
func ParsePricing(input, output string) (Pricing, error) {
	in, err := parsePrice(input)
	if err != nil {
		return Pricing{}, fmt.Errorf("input price: %w", err)
	}
	out, err := parsePrice(output)
	if err != nil {
		return Pricing{}, fmt.Errorf("output price: %w", err)
	}
	return Pricing{InputPerMillion: in, OutputPerMillion: out}, nil
}

func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative price %s", s)
	}
	return d, nil
}

// RecordRequest counts one HTTP request. Statuses >= 400 count as errors keyed "<status>:<route>".
func (c *Collector) RecordRequest(method, route string, status int, latency time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.totalRequests++
	c.totalLatency += latency
	c.requests[method+" "+route]++
	if status >= 400 {
		c.totalErrors++
		c.statusErrors[fmt.Sprintf("%d:%s", status, route)]++
	}
}

// RecordChat counts one successful turn and its token cost.
func (c *Collector) RecordChat(inputTokens, outputTokens int) {
	cost := c.Cost(inputTokens, outputTokens)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.chatTurns++
	c.inputTokens += int64(inputTokens)
	c.outputTokens += int64(outputTokens)
	c.cost = c.cost.Add(cost)
}

// Cost prices a token count.
func (c *Collector) Cost(inputTokens, outputTokens int) decimal.Decimal {
	in := decimal.NewFromInt(int64(inputTokens)).Mul(c.pricing.InputPerMillion)
	out := decimal.NewFromInt(int64(outputTokens)).Mul(c.pricing.OutputPerMillion)
	return in.Add(out).Div(million)
}

func (c *Collector) RecordError(category string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.chatErrors[category]++
}

func (c *Collector) RecordCrisis() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.crises++
}

func (c *Collector) SessionCreated() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.created++
}

func (c *Collector) SessionDeleted(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted += int64(n)
}

// Snapshot copies the current counters.
func (c *Collector) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := Snapshot{
		UptimeSeconds:    c.now().Sub(c.started).Seconds(),
		TotalRequests:    c.totalRequests,
		TotalErrors:      c.totalErrors,
		SuccessRate:      100,
		Requests:         maps.Clone(c.requests),
		StatusErrors:     maps.Clone(c.statusErrors),
		ChatErrors:       maps.Clone(c.chatErrors),
		ChatTurns:        c.chatTurns,
		CrisisDetections: c.crises,
		SessionsCreated:  c.created,
		SessionsDeleted:  c.deleted,
		InputTokens:      c.inputTokens,
		OutputTokens:     c.outputTokens,
		TotalTokens:      c.inputTokens + c.outputTokens,
		EstimatedCost:    c.cost.StringFixed(6),
	}
	if c.totalRequests > 0 {
		s.SuccessRate = float64(c.totalRequests-c.totalErrors) / float64(c.totalRequests) * 100
		s.AverageResponseTime = float64(c.totalLatency.Milliseconds()) / float64(c.totalRequests)
	}
	return s
}
