// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package status

// Status is the workload status a charm reports for its unit.
type Status string

// String returns a string representation of the Status.
func (s Status) String() string {
	return string(s)
}

const (
	// Maintenance is set when the charm is busy changing the workload and
	// the unit is not yet ready to serve.
	Maintenance Status = "maintenance"

	// Waiting is set when the unit is waiting on something outside of its
	// control, such as a relation or the workload container.
	Waiting Status = "waiting"

	// Blocked is set when the unit needs a human to intervene, usually
	// because of invalid configuration.
	Blocked Status = "blocked"

	// Active is set when the workload is configured and running.
	Active Status = "active"
)

// KnownWorkloadStatus returns true if the status is one a charm may set on
// its own unit.
func (s Status) KnownWorkloadStatus() bool {
	switch s {
	case Maintenance, Waiting, Blocked, Active:
		return true
	}
	return false
}

// StatusInfo holds a Status and an optional message.
type StatusInfo struct {
	Status  Status
	Message string
}
