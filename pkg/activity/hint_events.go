package activity

import (
	"strings"
	"time"
)

const (
	// VerbOverrideDetected is emitted for each rendered override line.
	VerbOverrideDetected = "scopehint.override.detected"
	// VerbPathAnnotated is emitted when a field receives its path hint.
	VerbPathAnnotated = "scopehint.path.annotated"
	// ObjectTypeConfigField is the object type of every hint event.
	ObjectTypeConfigField = "config.field"
)

// ScopeContext describes the scope an override was found at.
type ScopeContext struct {
	Kind      string
	ID        string
	Code      string
	WebsiteID string
}

// SelectionContext describes the admin scope being viewed.
type SelectionContext struct {
	WebsiteID        string
	StoreID          string
	ImpliedWebsiteID string
}

// HintEventInput carries the fields shared by hint events.
type HintEventInput struct {
	ActorID    string
	UserID     string
	TenantID   string
	Channel    string
	Path       string
	FieldID    string
	Scope      ScopeContext
	Selection  SelectionContext
	Value      string
	Baseline   string
	Metadata   map[string]any
	OccurredAt time.Time
}

// BuildOverrideDetectedEvent reports a scope whose value differs from the
// viewed baseline.
func BuildOverrideDetectedEvent(input HintEventInput) Event {
	event := buildHintEvent(VerbOverrideDetected, input)
	event.Metadata["value"] = input.Value
	event.Metadata["baseline"] = input.Baseline
	return event
}

// BuildPathAnnotatedEvent reports a path hint injected into field data.
func BuildPathAnnotatedEvent(input HintEventInput) Event {
	return buildHintEvent(VerbPathAnnotated, input)
}

func buildHintEvent(verb string, input HintEventInput) Event {
	metadata := cloneMap(input.Metadata)
	if metadata == nil {
		metadata = map[string]any{}
	}
	if input.Path != "" {
		metadata["path"] = input.Path
	}
	if input.FieldID != "" {
		metadata["field_id"] = input.FieldID
	}
	if input.Scope.Kind != "" {
		metadata["scope_kind"] = input.Scope.Kind
		metadata["scope_id"] = input.Scope.ID
		metadata["scope_code"] = input.Scope.Code
		if input.Scope.WebsiteID != "" {
			metadata["scope_website_id"] = input.Scope.WebsiteID
		}
	}
	if input.Selection.WebsiteID != "" {
		metadata["selected_website"] = input.Selection.WebsiteID
	}
	if input.Selection.StoreID != "" {
		metadata["selected_store"] = input.Selection.StoreID
	}
	if input.Selection.ImpliedWebsiteID != "" {
		metadata["implied_website"] = input.Selection.ImpliedWebsiteID
	}

	objectID := strings.TrimSpace(input.Path)
	if objectID == "" {
		objectID = strings.TrimSpace(input.FieldID)
	}
	if objectID == "" {
		objectID = ObjectTypeConfigField
	}

	return Event{
		Verb:       verb,
		ActorID:    strings.TrimSpace(input.ActorID),
		UserID:     strings.TrimSpace(input.UserID),
		TenantID:   strings.TrimSpace(input.TenantID),
		ObjectType: ObjectTypeConfigField,
		ObjectID:   objectID,
		Channel:    strings.TrimSpace(input.Channel),
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}
