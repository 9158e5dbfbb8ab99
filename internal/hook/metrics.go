package hook

import "strconv"

// Metrics carries the per-event token, cost, and timing figures that some
// hook payloads include.
type Metrics struct {
	InputTokens  int64
	OutputTokens int64
	CostUSD      float64
	DurationMS   float64
}

// EventMetrics extracts token and cost figures from an event's data bag.
// The backend places these at different nesting levels depending on hook
// type, so multiple known paths are checked. First non-zero value wins.
func EventMetrics(e Event) Metrics {
	var m Metrics
	if v, ok := e.FloatField("input_tokens"); ok {
		m.InputTokens = int64(v)
	}
	if v, ok := e.FloatField("output_tokens"); ok {
		m.OutputTokens = int64(v)
	}
	if v, ok := e.FloatField("total_cost_usd"); ok {
		m.CostUSD = v
	}
	if v, ok := e.FloatField("duration_ms"); ok {
		m.DurationMS = v
	}
	if usage, ok := e.NestedField("usage"); ok {
		if m.InputTokens == 0 {
			if v, ok := usage["input_tokens"].(float64); ok {
				m.InputTokens = int64(v)
			}
		}
		if m.OutputTokens == 0 {
			if v, ok := usage["output_tokens"].(float64); ok {
				m.OutputTokens = int64(v)
			}
		}
	}
	return m
}

// formatFloat renders a float without trailing zeros.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
