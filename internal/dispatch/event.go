// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package dispatch

import (
	"path"
	"strings"

	"github.com/juju/errors"
)

// EventKind distinguishes hooks from actions.
type EventKind string

const (
	// HookKind is a hook delivered by the unit agent.
	HookKind EventKind = "hooks"
	// ActionKind is an action invoked by an operator.
	ActionKind EventKind = "actions"
)

// Event identifies a single notification delivered to the charm.
type Event struct {
	Kind EventKind
	Name string
}

// Hook returns the event for the named hook.
func Hook(name string) Event {
	return Event{Kind: HookKind, Name: name}
}

// Action returns the event for the named action.
func Action(name string) Event {
	return Event{Kind: ActionKind, Name: name}
}

// String returns the event in dispatch path form, e.g. "hooks/start".
func (e Event) String() string {
	return string(e.Kind) + "/" + e.Name
}

// IsAction reports whether the event is an action.
func (e Event) IsAction() bool {
	return e.Kind == ActionKind
}

// ParseDispatchPath parses the value of JUJU_DISPATCH_PATH.
func ParseDispatchPath(dispatchPath string) (Event, error) {
	cleaned := path.Clean(strings.TrimSpace(dispatchPath))
	kind, name, ok := strings.Cut(cleaned, "/")
	if !ok || name == "" || strings.Contains(name, "/") {
		return Event{}, errors.NotValidf("dispatch path %q", dispatchPath)
	}
	switch EventKind(kind) {
	case HookKind, ActionKind:
		return Event{Kind: EventKind(kind), Name: name}, nil
	}
	return Event{}, errors.NotValidf("dispatch path %q", dispatchPath)
}
