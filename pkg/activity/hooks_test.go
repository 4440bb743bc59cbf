package activity

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNormalizeEventTrimsClonesAndDefaults(t *testing.T) {
	meta := map[string]any{"k": "v"}
	evt := Event{
		Verb:       " scopehint.override.detected ",
		ActorID:    " actor ",
		UserID:     " user ",
		TenantID:   " tenant ",
		ObjectType: " config.field ",
		ObjectID:   " general/locale/code ",
		Channel:    " scopehint ",
		Metadata:   meta,
	}

	got := NormalizeEvent(evt)

	if got.Verb != "scopehint.override.detected" || got.ObjectType != "config.field" || got.ObjectID != "general/locale/code" {
		t.Fatalf("unexpected normalized fields: %+v", got)
	}
	if got.ActorID != "actor" || got.UserID != "user" || got.TenantID != "tenant" || got.Channel != "scopehint" {
		t.Fatalf("unexpected trimming: %+v", got)
	}
	if got.OccurredAt.IsZero() {
		t.Fatalf("expected OccurredAt to be set")
	}
	got.Metadata["k"] = "changed"
	if evt.Metadata["k"] != "v" {
		t.Fatalf("expected input metadata untouched: %+v", evt.Metadata)
	}
}

func TestHooksNotifyDropsIncompleteEvents(t *testing.T) {
	capture := &CaptureHook{}
	hooks := Hooks{capture}
	if err := hooks.Notify(context.Background(), Event{Verb: VerbPathAnnotated}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(capture.Events) != 0 {
		t.Fatalf("expected no events captured, got %d", len(capture.Events))
	}
}

func TestHooksNotifyFanOutAndJoinErrors(t *testing.T) {
	capture := &CaptureHook{}
	boom1 := errors.New("boom1")
	boom2 := errors.New("boom2")
	var ctxSeen bool
	hooks := Hooks{
		HookFunc(func(ctx context.Context, _ Event) error {
			ctxSeen = ctx != nil
			return nil
		}),
		capture,
		HookFunc(func(context.Context, Event) error { return boom1 }),
		nil,
		HookFunc(func(context.Context, Event) error { return boom2 }),
	}

	//nolint:staticcheck // nil context is normalised by Notify
	err := hooks.Notify(nil, Event{Verb: VerbPathAnnotated, ObjectType: ObjectTypeConfigField, ObjectID: "a/b/c"})
	if !errors.Is(err, boom1) || !errors.Is(err, boom2) {
		t.Fatalf("expected joined error, got %v", err)
	}
	if !ctxSeen {
		t.Fatalf("expected context fallback to be non-nil")
	}
	if len(capture.Events) != 1 {
		t.Fatalf("expected event to be captured once, got %d", len(capture.Events))
	}
}

func TestEmitterDisabledAndEnabled(t *testing.T) {
	capture := &CaptureHook{}
	event := Event{Verb: VerbPathAnnotated, ObjectType: ObjectTypeConfigField, ObjectID: "a/b/c"}

	disabled := NewEmitter(Hooks{capture}, Config{Enabled: false})
	if disabled.Enabled() {
		t.Fatalf("expected emitter to be disabled")
	}
	if err := disabled.Emit(context.Background(), event); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(capture.Events) != 0 {
		t.Fatalf("expected no events captured when disabled")
	}

	if NewEmitter(nil, Config{Enabled: true}).Enabled() {
		t.Fatalf("expected emitter without hooks to be disabled")
	}

	enabled := NewEmitter(Hooks{capture}, Config{Enabled: true})
	if err := enabled.Emit(context.Background(), event); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if got := capture.Verbs(); len(got) != 1 || got[0] != VerbPathAnnotated {
		t.Fatalf("unexpected verbs %v", got)
	}
	if capture.Events[0].Channel != DefaultChannel {
		t.Fatalf("expected default channel applied, got %q", capture.Events[0].Channel)
	}
}

func TestEmitterPreservesExplicitChannelAndTimestamp(t *testing.T) {
	capture := &CaptureHook{}
	emitter := NewEmitter(Hooks{capture}, Config{Enabled: true, Channel: "admin"})
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	err := emitter.Emit(context.Background(), Event{
		Verb:       VerbPathAnnotated,
		ObjectType: ObjectTypeConfigField,
		ObjectID:   "a/b/c",
		Channel:    "custom",
		OccurredAt: at,
	})
	if err != nil {
		t.Fatalf("emit: %v", err)
	}
	if capture.Events[0].Channel != "custom" {
		t.Fatalf("expected explicit channel preserved, got %q", capture.Events[0].Channel)
	}
	if !capture.Events[0].OccurredAt.Equal(at) {
		t.Fatalf("expected occurred_at preserved, got %v", capture.Events[0].OccurredAt)
	}
}
