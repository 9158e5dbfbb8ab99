package classify

import "flightdeck/internal/hook"

// previewLimit bounds the one-line content preview.
const previewLimit = 220

// Summary derives a one-line content preview for an event. Query hooks
// prefer tool input/result text, then the message, then a category
// fallback; other hooks prefer the message, then common data fields.
func Summary(e hook.Event) string {
	if e.HookType == hook.TypeQuery {
		return truncate(querySummary(e), previewLimit)
	}
	if e.Message != "" {
		return truncate(e.Message, previewLimit)
	}
	for _, key := range []string{"status", "description", "summary", "step_name"} {
		if text, ok := e.TextField(key); ok && text != "" {
			return truncate(text, previewLimit)
		}
	}
	return ""
}

// querySummary builds the preview for a query hook by content category.
func querySummary(e hook.Event) string {
	switch queryKind(e) {
	case KindToolUse:
		if input, ok := e.TextField("tool_input"); ok && input != "" {
			if tool, ok := e.StringField("tool_name"); ok && tool != "" {
				return tool + ": " + input
			}
			return input
		}
		if e.Message != "" {
			return e.Message
		}
		return "Tool invocation"
	case KindToolResult:
		if result, ok := e.TextField("result"); ok && result != "" {
			return result
		}
		if e.Message != "" {
			return e.Message
		}
		return "Tool result received"
	case KindAssistant:
		return messageSummary(e, "Assistant message")
	case KindUser:
		return messageSummary(e, "User message")
	case KindSystem:
		return messageSummary(e, "System message")
	case KindResult:
		return messageSummary(e, "Result message")
	}
	return messageSummary(e, "Query event")
}

// messageSummary prefers the hook message, then data content, then the
// category fallback.
func messageSummary(e hook.Event, fallback string) string {
	if e.Message != "" {
		return e.Message
	}
	if content, ok := e.TextField("content"); ok && content != "" {
		return content
	}
	return fallback
}

// truncate bounds text to limit runes with a trailing ellipsis.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}
