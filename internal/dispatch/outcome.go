// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package dispatch

import (
	"github.com/canonical/fastapi-demo-operator/core/status"
)

// OutcomeKind classifies how the handling of an event ended.
type OutcomeKind int

const (
	// Done means the handler finished and has no status to report.
	Done OutcomeKind = iota
	// Active means the workload is up and serving.
	Active
	// Blocked means the charm needs operator intervention.
	Blocked
	// Waiting means the charm is waiting on something outside its control.
	Waiting
	// NeedsRelation means handling stopped because there is no database
	// relation data.
	NeedsRelation
)

// NeedsRelationMessage is reported while no database relation data is
// available.
const NeedsRelationMessage = "Waiting for database relation"

// Outcome is returned by every handler in place of an abort signal.
type Outcome struct {
	Kind    OutcomeKind
	Message string
}

// Status returns the workload status the outcome maps to. The boolean is
// false for Done, which leaves the current status untouched.
func (o Outcome) Status() (status.StatusInfo, bool) {
	switch o.Kind {
	case Active:
		return status.StatusInfo{Status: status.Active, Message: o.Message}, true
	case Blocked:
		return status.StatusInfo{Status: status.Blocked, Message: o.Message}, true
	case Waiting:
		return status.StatusInfo{Status: status.Waiting, Message: o.Message}, true
	case NeedsRelation:
		msg := o.Message
		if msg == "" {
			msg = NeedsRelationMessage
		}
		return status.StatusInfo{Status: status.Waiting, Message: msg}, true
	}
	return status.StatusInfo{}, false
}

// Aborted reports whether handling stopped before completing.
func (o Outcome) Aborted() bool {
	return o.Kind == NeedsRelation
}

func (k OutcomeKind) String() string {
	switch k {
	case Done:
		return "done"
	case Active:
		return "active"
	case Blocked:
		return "blocked"
	case Waiting:
		return "waiting"
	case NeedsRelation:
		return "needs-relation"
	}
	return "unknown"
}
