package classify

import (
	"testing"

	"flightdeck/internal/hook"
)

func TestStepLabelPrefersStepName(t *testing.T) {
	e := hook.Event{
		HookType: hook.TypeQuery,
		Data:     map[string]any{"step_name": "Install dependencies"},
	}
	if got := StepLabel(e); got != "Install dependencies" {
		t.Fatalf("expected explicit step name, got %q", got)
	}
}

func TestStepLabelIgnoresStepNameEchoingHookType(t *testing.T) {
	e := hook.Event{
		HookType: hook.TypeStatus,
		Message:  "Provisioning database",
		Data:     map[string]any{"step_name": "Status"},
	}
	if got := StepLabel(e); got != "Provisioning database" {
		t.Fatalf("expected message label when step_name echoes hook type, got %q", got)
	}
}

func TestStepLabelQueryCategories(t *testing.T) {
	cases := []struct {
		name string
		data map[string]any
		want string
	}{
		{"tool use with name", map[string]any{"content_type": "tool_use", "tool_name": "bash"}, "Tool Use · bash"},
		{"tool use anonymous", map[string]any{"content_type": "tool_use"}, "Tool Use"},
		{"tool result", map[string]any{"content_type": "tool_result", "tool_name": "bash"}, "Tool Result · bash"},
		{"assistant", map[string]any{"message_type": "AssistantMessage"}, "Assistant"},
		{"user", map[string]any{"message_type": "UserMessage"}, "User"},
		{"system", map[string]any{"message_type": "SystemMessage"}, "System"},
		{"result", map[string]any{"message_type": "ResultMessage"}, "Result"},
		{"unrecognized", map[string]any{}, "query"},
	}
	for _, tc := range cases {
		e := hook.Event{HookType: hook.TypeQuery, Data: tc.data}
		if got := StepLabel(e); got != tc.want {
			t.Fatalf("%s: expected %q, got %q", tc.name, tc.want, got)
		}
	}
}

func TestStepLabelContentTypeWinsOverMessageType(t *testing.T) {
	e := hook.Event{HookType: hook.TypeQuery, Data: map[string]any{
		"content_type": "tool_use",
		"message_type": "AssistantMessage",
		"tool_name":    "grep",
	}}
	if got := StepLabel(e); got != "Tool Use · grep" {
		t.Fatalf("expected content type to win, got %q", got)
	}
}

func TestStepLabelStatusFallsBackToMessage(t *testing.T) {
	e := hook.Event{HookType: hook.TypeStatus, Message: "Cloning repository"}
	if got := StepLabel(e); got != "Cloning repository" {
		t.Fatalf("expected status message label, got %q", got)
	}
	if got := StepLabel(hook.Event{HookType: hook.TypeStatus}); got != "Status Update" {
		t.Fatalf("expected status fallback, got %q", got)
	}
}

func TestStepLabelFallsBackToHookType(t *testing.T) {
	if got := StepLabel(hook.Event{HookType: "deploy_started"}); got != "deploy_started" {
		t.Fatalf("expected hook type label, got %q", got)
	}
	if got := StepLabel(hook.Event{}); got != "Deployment Step" {
		t.Fatalf("expected generic fallback, got %q", got)
	}
}
