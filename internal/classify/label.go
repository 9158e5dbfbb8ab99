package classify

import (
	"strings"

	"flightdeck/internal/hook"
)

// Fallback labels used when an event carries no better name.
const (
	labelQuery        = "Query"
	labelStatusUpdate = "Status Update"
	labelDeployment   = "Deployment Step"
)

// StepLabel derives the display label for the step that owns an event.
// An explicit step_name wins unless it merely restates the hook type;
// query hooks are named by their content category; everything else falls
// back to the hook type.
func StepLabel(e hook.Event) string {
	if name, ok := e.StringField("step_name"); ok && name != "" && !strings.EqualFold(name, e.HookType) {
		return name
	}
	switch e.HookType {
	case hook.TypeQuery:
		return queryLabel(e)
	case hook.TypeStatus:
		return statusLabel(e)
	}
	if e.HookType != "" {
		return e.HookType
	}
	return labelDeployment
}

// queryLabel names a query hook from its content category.
func queryLabel(e hook.Event) string {
	switch queryKind(e) {
	case KindToolUse:
		return toolLabel("Tool Use", e)
	case KindToolResult:
		return toolLabel("Tool Result", e)
	case KindAssistant:
		return "Assistant"
	case KindUser:
		return "User"
	case KindSystem:
		return "System"
	case KindResult:
		return "Result"
	}
	if e.HookType != "" {
		return e.HookType
	}
	return labelQuery
}

// toolLabel appends the tool name to a category prefix when known.
func toolLabel(prefix string, e hook.Event) string {
	if tool, ok := e.StringField("tool_name"); ok && tool != "" {
		return prefix + " · " + tool
	}
	return prefix
}

// statusLabel names a status hook from its message or step name.
func statusLabel(e hook.Event) string {
	if e.Message != "" {
		return e.Message
	}
	if name, ok := e.StringField("step_name"); ok && name != "" {
		return name
	}
	return labelStatusUpdate
}
