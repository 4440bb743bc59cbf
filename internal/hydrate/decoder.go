// Package hydrate decodes YAML fixture documents into typed structs with
// optional pre and post processing hooks.
package hydrate

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Context identifies the document being decoded in errors and hooks.
type Context struct {
	Name string
}

// PreHook may rewrite the raw document before it is decoded.
type PreHook func(Context, map[string]any) (map[string]any, error)

// PostHook may adjust or validate the decoded value.
type PostHook[T any] func(Context, *T) error

// DecoderOption configures a Decoder.
type DecoderOption[T any] func(*Decoder[T])

// Decoder converts YAML documents into T.
type Decoder[T any] struct {
	preHooks    []PreHook
	postHooks   []PostHook[T]
	knownFields bool
}

// WithPreHook applies hook before decoding.
func WithPreHook[T any](hook PreHook) DecoderOption[T] {
	return func(d *Decoder[T]) {
		d.preHooks = append(d.preHooks, hook)
	}
}

// WithPostHook applies hook after decoding.
func WithPostHook[T any](hook PostHook[T]) DecoderOption[T] {
	return func(d *Decoder[T]) {
		d.postHooks = append(d.postHooks, hook)
	}
}

// WithKnownFields rejects keys that do not map onto T.
func WithKnownFields[T any]() DecoderOption[T] {
	return func(d *Decoder[T]) {
		d.knownFields = true
	}
}

// NewDecoder builds a Decoder.
func NewDecoder[T any](opts ...DecoderOption[T]) *Decoder[T] {
	d := &Decoder[T]{}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Decode reads a single YAML document from r.
func (d *Decoder[T]) Decode(ctx Context, r io.Reader) (T, error) {
	var zero T
	if r == nil {
		return zero, fmt.Errorf("hydrate: reader is nil for %q", ctx.Name)
	}

	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return zero, fmt.Errorf("hydrate: document %q is empty", ctx.Name)
		}
		return zero, fmt.Errorf("hydrate: parse %q: %w", ctx.Name, err)
	}

	for _, hook := range d.preHooks {
		if hook == nil {
			continue
		}
		next, err := hook(ctx, raw)
		if err != nil {
			return zero, fmt.Errorf("hydrate: pre-hook for %q failed: %w", ctx.Name, err)
		}
		if next != nil {
			raw = next
		}
	}

	// Re-encode so hooks can work on the generic form while T still gets
	// yaml struct tag handling.
	buffer, err := yaml.Marshal(raw)
	if err != nil {
		return zero, fmt.Errorf("hydrate: encode %q: %w", ctx.Name, err)
	}
	decoder := yaml.NewDecoder(bytes.NewReader(buffer))
	decoder.KnownFields(d.knownFields)
	var result T
	if err := decoder.Decode(&result); err != nil {
		return zero, fmt.Errorf("hydrate: decode %q: %w", ctx.Name, err)
	}

	for _, hook := range d.postHooks {
		if hook == nil {
			continue
		}
		if err := hook(ctx, &result); err != nil {
			return zero, fmt.Errorf("hydrate: post-hook for %q failed: %w", ctx.Name, err)
		}
	}
	return result, nil
}
