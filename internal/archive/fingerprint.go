package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"flightdeck/internal/step"
)

// Fingerprint returns a deterministic digest of a folded step list. Polls
// whose rollup did not change since the previous cycle share a fingerprint
// and are recorded without re-inserting identical step rows.
func Fingerprint(steps []step.Step) (string, error) {
	type row struct {
		ID         string `json:"id"`
		Status     string `json:"status"`
		HookCount  int    `json:"hook_count"`
		EndedAtSet bool   `json:"ended"`
	}
	rows := make([]row, 0, len(steps))
	for _, s := range steps {
		rows = append(rows, row{
			ID:         s.ID,
			Status:     string(s.Status),
			HookCount:  len(s.Hooks),
			EndedAtSet: !s.EndTime.IsZero(),
		})
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:]), nil
}
