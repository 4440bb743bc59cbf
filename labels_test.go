package scopehint

import (
	"errors"
	"net"
	"testing"
	"time"
)

func TestResolveLabel(t *testing.T) {
	multi := &Field{
		Type: InputTypeMultiselect,
		Options: []FieldOption{
			{Value: "a", Label: "Alpha"},
			{Value: "b", Label: "Beta"},
		},
	}
	single := &Field{Type: InputTypeSelect, Options: multi.Options}

	cases := []struct {
		name  string
		field *Field
		raw   string
		want  string
	}{
		{"no options", &Field{}, "  raw  ", "raw"},
		{"nil field", nil, " x ", "x"},
		{"single match", single, " a ", "Alpha"},
		{"single unmatched", single, "z", "z"},
		{"single keeps commas", single, "a,b", "a,b"},
		{"multiselect", multi, "a,b", "Alpha, Beta"},
		{"multiselect spaced", multi, " a , z ,b", "Alpha, z, Beta"},
		{"multiselect empty part", multi, "a,", "Alpha, "},
	}
	for _, tc := range cases {
		if got := ResolveLabel(tc.field, tc.raw); got != tc.want {
			t.Fatalf("%s: want %q got %q", tc.name, tc.want, got)
		}
	}
}

func TestStringify(t *testing.T) {
	ip := net.ParseIP("10.0.0.1")
	cases := []struct {
		value any
		want  string
	}{
		{nil, ""},
		{"text", "text"},
		{true, "1"},
		{false, ""},
		{42, "42"},
		{int64(-7), "-7"},
		{uint32(9), "9"},
		{1.5, "1.5"},
		{10.0, "10"},
		{float32(0.25), "0.25"},
		{[]byte("raw"), "raw"},
		{ip, "10.0.0.1"},
		{time.Duration(0), "0s"},
	}
	for _, tc := range cases {
		if got := stringify(tc.value); got != tc.want {
			t.Fatalf("stringify(%#v): want %q got %q", tc.value, tc.want, got)
		}
	}
	value := "pointer"
	if got := stringify(&value); got != "pointer" {
		t.Fatalf("expected pointer to be dereferenced, got %q", got)
	}
}

func TestIsComposite(t *testing.T) {
	type pair struct{ A, B string }
	composite := []any{
		map[string]any{"a": 1},
		[]any{"a"},
		[2]int{1, 2},
		pair{"a", "b"},
		&pair{"a", "b"},
	}
	for _, value := range composite {
		if !isComposite(value) {
			t.Fatalf("expected %#v to be composite", value)
		}
	}
	scalar := []any{nil, "a", 1, 2.5, true, []byte("x"), time.Now(), (*pair)(nil)}
	for _, value := range scalar {
		if isComposite(value) {
			t.Fatalf("expected %#v to be scalar", value)
		}
	}
}

func TestToPrintf(t *testing.T) {
	cases := map[string]string{
		"plain":                 "plain",
		`Store <code>%1</code>`: `Store <code>%[1]v</code>`,
		`%2 then %1`:            `%[2]v then %[1]v`,
		`100% of %1`:            `100%% of %[1]v`,
		`%10`:                   `%[10]v`,
	}
	for template, want := range cases {
		if got := toPrintf(template); got != want {
			t.Fatalf("toPrintf(%q): want %q got %q", template, want, got)
		}
	}
	formatter := NewPhraseFormatter()
	if got := formatter.Format(`100% of %1 (%2)`, "stores", 3); got != "100% of stores (3)" {
		t.Fatalf("unexpected format %q", got)
	}
}

func TestWrapRuleErrorKeepsExistingMetadata(t *testing.T) {
	cause := errors.New("boom")
	inner := wrapRuleError("cel", "value == 1", "", cause)
	outer := wrapRuleError("expr", "other", "stores:1", inner)

	var ruleErr *RuleError
	if !errors.As(outer, &ruleErr) {
		t.Fatalf("expected RuleError, got %T", outer)
	}
	if ruleErr.Engine != "cel" || ruleErr.Expr != "value == 1" || ruleErr.Scope != "stores:1" {
		t.Fatalf("unexpected metadata %+v", ruleErr)
	}
	if !errors.Is(outer, cause) {
		t.Fatalf("expected cause to unwrap")
	}
	if wrapRuleError("expr", "x", "", nil) != nil {
		t.Fatalf("nil error must stay nil")
	}
}

func TestSelectionFromParams(t *testing.T) {
	cases := []struct {
		params Params
		want   Selection
		global bool
	}{
		{nil, Selection{}, true},
		{ParamMap{ParamWebsite: "0", ParamStore: ""}, Selection{}, true},
		{ParamMap{ParamWebsite: " 2 "}, Selection{WebsiteID: "2"}, false},
		{ParamMap{ParamStore: "3"}, Selection{StoreID: "3"}, false},
	}
	for _, tc := range cases {
		got := SelectionFromParams(tc.params)
		if got != tc.want || got.IsGlobal() != tc.global {
			t.Fatalf("params %v: want %+v got %+v", tc.params, tc.want, got)
		}
	}
	if baseline := (Selection{WebsiteID: "2", StoreID: "3"}).Baseline(); baseline.Kind != ScopeWebsites || baseline.ID != "2" {
		t.Fatalf("expected website baseline, got %+v", baseline)
	}
	if baseline := (Selection{StoreID: "3", ImpliedWebsiteID: "2"}).Baseline(); baseline.Kind != ScopeDefault {
		t.Fatalf("implied website must not change the baseline, got %+v", baseline)
	}
}

func TestParseScopeKind(t *testing.T) {
	cases := map[string]ScopeKind{
		"website": ScopeWebsites,
		"Stores":  ScopeStores,
		"default": ScopeDefault,
		"unknown": ScopeDefault,
		" store ": ScopeStores,
	}
	for input, want := range cases {
		if got := ParseScopeKind(input); got != want {
			t.Fatalf("ParseScopeKind(%q): want %q got %q", input, want, got)
		}
	}
}
