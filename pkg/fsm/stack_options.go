package fsm

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/fsmkit/pkg/lockhub"
)

// StackOption is a functional option for configuring a stack.
type StackOption[T comparable] func(*stackOptions[T])

type stackOptions[T comparable] struct {
	name     string
	hub      *lockhub.Hub[Mask]
	logger   *slog.Logger
	observer Observer
}

func defaultStackOptions[T comparable]() *stackOptions[T] {
	return &stackOptions[T]{
		name:     uuid.NewString(),
		hub:      ProcessHub,
		logger:   slog.Default(),
		observer: nopObserver{},
	}
}

// WithStackName sets the stack's name, used in logs and metrics labels.
func WithStackName[T comparable](name string) StackOption[T] {
	return func(o *stackOptions[T]) {
		if name != "" {
			o.name = name
		}
	}
}

// WithHub scopes the stack to an explicit lock hub instead of the
// process-wide one.
func WithHub[T comparable](hub *lockhub.Hub[Mask]) StackOption[T] {
	return func(o *stackOptions[T]) {
		if hub != nil {
			o.hub = hub
		}
	}
}

// WithStackLogger sets the stack's logger.
func WithStackLogger[T comparable](logger *slog.Logger) StackOption[T] {
	return func(o *stackOptions[T]) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithStackObserver sets the stack's observer.
func WithStackObserver[T comparable](obs Observer) StackOption[T] {
	return func(o *stackOptions[T]) {
		if obs != nil {
			o.observer = obs
		}
	}
}
