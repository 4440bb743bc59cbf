package scopehint_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	scopehint "github.com/goliatone/go-scopehint"
	"github.com/goliatone/go-scopehint/pkg/activity"
)

func TestChainThreadsTooltipThroughPlugins(t *testing.T) {
	request := newResolver(t, listModeShop(t)).ForRequest(nil)
	suffix := scopehint.TooltipHookFunc(func(_ context.Context, _ *scopehint.Field, result string) string {
		return result + " (scoped)"
	})
	chain := scopehint.NewChain(suffix, request, "not a plugin", nil)

	got := chain.Tooltip(context.Background(), listModeField())
	want := `Layout (scoped)<br />Website <code>wholesale</code>: "List Only"<br />Store <code>b2b</code>: "List Only"`
	if got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestChainDataIsReentrant(t *testing.T) {
	cfg := newShop(t)
	set(t, cfg, scopehint.DefaultScope(), scopehint.DefaultShowPathFlag, "1")
	capture := &activity.CaptureHook{}
	request := newResolver(t, cfg, scopehint.WithActivityHooks(activity.Hooks{capture})).ForRequest(nil)

	calls := 0
	reentrant := scopehint.DataHookFunc(func(ctx context.Context, field *scopehint.Field, result map[string]any) map[string]any {
		calls++
		result = request.AfterData(ctx, field, result)
		result["seen"] = true
		return result
	})
	chain := scopehint.NewChain(request, reentrant, request)

	base := map[string]any{"label": "Locale"}
	field := &scopehint.Field{ID: "code", Path: "general/locale/code"}
	got := chain.Data(context.Background(), field, base)

	want := map[string]any{
		"label":               "Locale",
		"seen":                true,
		scopehint.PathHintKey: "<small>Path: <code>general/locale/code</code></small>",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
	if calls != 1 {
		t.Fatalf("expected plugin to run once, ran %d times", calls)
	}
	if len(base) != 1 {
		t.Fatalf("base map was mutated: %+v", base)
	}
	if verbs := capture.Verbs(); len(verbs) != 1 || verbs[0] != activity.VerbPathAnnotated {
		t.Fatalf("expected a single path event, got %v", verbs)
	}
}

func TestTooltipEmitsOverrideEvents(t *testing.T) {
	capture := &activity.CaptureHook{}
	resolver := newResolver(t, listModeShop(t),
		scopehint.WithActivityHooks(activity.Hooks{capture, nil}),
		scopehint.WithActivityConfig(activity.Config{Enabled: true, Channel: "admin"}),
	)
	resolver.ForRequest(nil).Tooltip(context.Background(), listModeField(), "")

	if len(capture.Events) != 2 {
		t.Fatalf("expected two override events, got %+v", capture.Events)
	}
	event := capture.Events[0]
	if event.Verb != activity.VerbOverrideDetected || event.Channel != "admin" || event.ObjectID != listModePath {
		t.Fatalf("unexpected event %+v", event)
	}
	if event.Metadata["scope_code"] != "wholesale" || event.Metadata["value"] != "list" || event.Metadata["baseline"] != "grid" {
		t.Fatalf("unexpected metadata %+v", event.Metadata)
	}
	if capture.Events[1].Metadata["scope_kind"] != "stores" {
		t.Fatalf("expected store event second, got %+v", capture.Events[1])
	}
}

func TestActivityDisabled(t *testing.T) {
	capture := &activity.CaptureHook{}
	resolver := newResolver(t, listModeShop(t),
		scopehint.WithActivityHooks(activity.Hooks{capture}),
		scopehint.WithActivityConfig(activity.Config{Enabled: false}),
	)
	resolver.ForRequest(nil).Tooltip(context.Background(), listModeField(), "")
	if len(capture.Events) != 0 {
		t.Fatalf("expected no events while disabled, got %d", len(capture.Events))
	}
}
