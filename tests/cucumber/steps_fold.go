package cucumber

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"

	"flightdeck/internal/hook"
	"flightdeck/internal/step"
)

// theseHookEvents loads a scenario's hook feed from a data table with the
// columns offset_s, hook_type, status, message, step_name, content_type,
// and tool_name. Empty cells are omitted fields.
func (s *featureState) theseHookEvents(table *godog.Table) error {
	if len(table.Rows) < 2 {
		return fmt.Errorf("hook table needs a header and at least one row")
	}
	header := map[string]int{}
	for i, cell := range table.Rows[0].Cells {
		header[cell.Value] = i
	}
	cell := func(row int, name string) string {
		idx, ok := header[name]
		if !ok || idx >= len(table.Rows[row].Cells) {
			return ""
		}
		return table.Rows[row].Cells[idx].Value
	}

	for row := 1; row < len(table.Rows); row++ {
		offset, err := strconv.Atoi(cell(row, "offset_s"))
		if err != nil {
			return fmt.Errorf("row %d: bad offset_s: %w", row, err)
		}
		s.nextID++
		evt := hook.Event{
			ID:         fmt.Sprintf("hook-%03d", s.nextID),
			HookType:   cell(row, "hook_type"),
			Status:     cell(row, "status"),
			Message:    cell(row, "message"),
			ReceivedAt: s.baseTime.Add(time.Duration(offset) * time.Second),
			Data:       map[string]any{},
		}
		for _, key := range []string{"step_name", "content_type", "tool_name"} {
			if v := cell(row, key); v != "" {
				evt.Data[key] = v
			}
		}
		s.hooks = append(s.hooks, evt)
	}
	return nil
}

func (s *featureState) singletonGrouping() error {
	s.options.SplitStatusAndQuery = true
	return nil
}

func (s *featureState) theStepLogIsRebuilt() error {
	s.steps = step.Build(s.hooks, s.options)
	return nil
}

// theStepLogIsRebuiltAgain refolds and checks the result did not move.
func (s *featureState) theStepLogIsRebuiltAgain() error {
	previous := s.steps
	s.steps = step.Build(s.hooks, s.options)
	if len(previous) != len(s.steps) {
		return fmt.Errorf("refold changed step count: %d then %d", len(previous), len(s.steps))
	}
	for i := range previous {
		if previous[i].ID != s.steps[i].ID || previous[i].Status != s.steps[i].Status {
			return fmt.Errorf("refold changed step %d: %q/%q then %q/%q",
				i, previous[i].ID, previous[i].Status, s.steps[i].ID, s.steps[i].Status)
		}
	}
	return nil
}

func (s *featureState) theStepLogContainsSteps(count int) error {
	if len(s.steps) != count {
		return fmt.Errorf("expected %d steps, got %d", count, len(s.steps))
	}
	return nil
}

func (s *featureState) findStep(name string) (step.Step, error) {
	for _, st := range s.steps {
		if st.Name == name {
			return st, nil
		}
	}
	return step.Step{}, fmt.Errorf("no step named %q", name)
}

func (s *featureState) stepHasStatus(name, status string) error {
	st, err := s.findStep(name)
	if err != nil {
		return err
	}
	if string(st.Status) != status {
		return fmt.Errorf("step %q has status %q, expected %q", name, st.Status, status)
	}
	return nil
}

func (s *featureState) stepHoldsEvents(name string, count int) error {
	st, err := s.findStep(name)
	if err != nil {
		return err
	}
	if len(st.Hooks) != count {
		return fmt.Errorf("step %q holds %d events, expected %d", name, len(st.Hooks), count)
	}
	return nil
}

func (s *featureState) stepAtPositionIsNamed(position int, name string) error {
	if position < 1 || position > len(s.steps) {
		return fmt.Errorf("position %d out of range (%d steps)", position, len(s.steps))
	}
	if got := s.steps[position-1].Name; got != name {
		return fmt.Errorf("step %d is named %q, expected %q", position, got, name)
	}
	return nil
}

func (s *featureState) everyStepHoldsOneEvent() error {
	for _, st := range s.steps {
		if len(st.Hooks) != 1 {
			return fmt.Errorf("step %q holds %d events", st.Name, len(st.Hooks))
		}
	}
	return nil
}
