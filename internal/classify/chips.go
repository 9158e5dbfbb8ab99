package classify

import (
	"sort"
	"strings"

	"flightdeck/internal/hook"
)

// Chip is one key/label/value triple rendered in compact step summaries.
type Chip struct {
	Key   string
	Label string
	Value string
}

// maxChips bounds the number of chips per event.
const maxChips = 4

// chipValueLimit is the length at which chip values are truncated.
const chipValueLimit = 42

// chipValueKeep is the number of characters kept before the ellipsis.
const chipValueKeep = 39

// deploymentChipKeys are the data fields surfaced first for deployment
// hooks, in priority order.
var deploymentChipKeys = []string{
	"branch",
	"organization_name",
	"project_name",
	"github_repo_url",
	"webhook_url",
	"deployment_host",
	"environment",
	"target",
	"framework",
}

// DetailChips collects at most four scalar detail chips for an event.
// Well-known fields are attempted in a fixed order, then deployment keys,
// then the remaining scalar data fields.
func DetailChips(e hook.Event) []Chip {
	var chips []Chip
	used := map[string]bool{}

	add := func(key, value string) bool {
		if len(chips) >= maxChips || value == "" || used[key] {
			return len(chips) >= maxChips
		}
		used[key] = true
		chips = append(chips, Chip{Key: key, Label: chipLabel(key), Value: truncateChip(value)})
		return len(chips) >= maxChips
	}
	addData := func(key string) bool {
		v, ok := e.Data[key]
		if !ok || !hook.IsScalar(v) {
			return len(chips) >= maxChips
		}
		return add(key, hook.Stringify(v))
	}

	if add("status", e.Status) {
		return chips
	}
	if add("phase", e.Phase) {
		return chips
	}
	if add("hook_type", e.HookType) {
		return chips
	}
	for _, key := range []string{"message_type", "content_type", "tool_name"} {
		if addData(key) {
			return chips
		}
	}
	for _, key := range deploymentChipKeys {
		if addData(key) {
			return chips
		}
	}
	for _, key := range sortedDataKeys(e.Data) {
		if used[key] {
			continue
		}
		if addData(key) {
			return chips
		}
	}
	return chips
}

// sortedDataKeys returns the data bag keys in deterministic order.
func sortedDataKeys(data map[string]any) []string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// chipLabel renders a field key as a display label.
func chipLabel(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// truncateChip bounds a chip value for compact display.
func truncateChip(value string) string {
	runes := []rune(value)
	if len(runes) <= chipValueLimit {
		return value
	}
	return string(runes[:chipValueKeep]) + "…"
}
