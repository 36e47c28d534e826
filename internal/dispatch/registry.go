// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package dispatch

import (
	"context"
	"fmt"
	"sort"

	"github.com/juju/errors"

	"github.com/canonical/fastapi-demo-operator/internal/logger"
)

// Handler handles a single event.
type Handler func(ctx context.Context) (Outcome, error)

// Registry maps events to their handlers.
type Registry struct {
	handlers map[Event]Handler
	logger   logger.Logger
}

// NewRegistry returns an empty Registry.
func NewRegistry(logger logger.Logger) *Registry {
	return &Registry{
		handlers: make(map[Event]Handler),
		logger:   logger,
	}
}

// Register adds a handler for the given event. It is an error to register
// the same event twice.
func (r *Registry) Register(event Event, handler Handler) error {
	if handler == nil {
		return errors.NotValidf("nil handler for %q", event)
	}
	if _, ok := r.handlers[event]; ok {
		return errors.AlreadyExistsf("handler for %q", event)
	}
	r.handlers[event] = handler
	return nil
}

// MustRegister adds a handler for the given event and panics on failure.
func (r *Registry) MustRegister(event Event, handler Handler) {
	if err := r.Register(event, handler); err != nil {
		panic(fmt.Sprintf("registering %q: %v", event, err))
	}
}

// Events returns the registered events in dispatch path order.
func (r *Registry) Events() []Event {
	events := make([]Event, 0, len(r.handlers))
	for e := range r.handlers {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].String() < events[j].String()
	})
	return events
}

// Dispatch runs the handler registered for event. Events without a
// handler succeed with a Done outcome.
func (r *Registry) Dispatch(ctx context.Context, event Event) (Outcome, error) {
	handler, ok := r.handlers[event]
	if !ok {
		r.logger.Debugf("no handler for %s, ignoring", event)
		return Outcome{Kind: Done}, nil
	}
	r.logger.Debugf("handling %s", event)
	outcome, err := handler(ctx)
	if err != nil {
		return Outcome{}, errors.Annotatef(err, "handling %s", event)
	}
	r.logger.Debugf("%s finished: %s", event, outcome.Kind)
	return outcome, nil
}
