package classify

import "flightdeck/internal/hook"

// Kind is the recognized content category of a hook event. Unknown events
// still carry their raw data bag and flow through the generic label,
// preview, and chip paths.
type Kind int

const (
	KindUnknown Kind = iota
	KindStatus
	KindError
	KindToolUse
	KindToolResult
	KindAssistant
	KindUser
	KindSystem
	KindResult
	KindQuery
)

// Message type tokens emitted by the agent session feed.
const (
	messageAssistant = "AssistantMessage"
	messageUser      = "UserMessage"
	messageSystem    = "SystemMessage"
	messageResult    = "ResultMessage"
)

// Content type tokens emitted inside query hooks.
const (
	contentToolUse    = "tool_use"
	contentToolResult = "tool_result"
)

// KindOf derives the content category for an event from its hook type and
// the message/content type tokens in its data bag.
func KindOf(e hook.Event) Kind {
	switch e.HookType {
	case hook.TypeStatus:
		return KindStatus
	case hook.TypeError:
		return KindError
	case hook.TypeQuery:
		return queryKind(e)
	default:
		return KindUnknown
	}
}

// queryKind resolves the category of a query hook.
func queryKind(e hook.Event) Kind {
	contentType, _ := e.StringField("content_type")
	switch contentType {
	case contentToolUse:
		return KindToolUse
	case contentToolResult:
		return KindToolResult
	}
	messageType, _ := e.StringField("message_type")
	switch messageType {
	case messageAssistant:
		return KindAssistant
	case messageUser:
		return KindUser
	case messageSystem:
		return KindSystem
	case messageResult:
		return KindResult
	}
	return KindQuery
}
