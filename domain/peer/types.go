// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package peer

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

const (
	// RelationName is the peer relation shared by all units of the
	// application.
	RelationName = "fastapi-peer"

	// UnitStatsKey is the peer data key holding UnitStats.
	UnitStatsKey = "unit_stats"
)

const (
	// ErrNoPeerRelation is returned when the peer relation has not been
	// established yet.
	ErrNoPeerRelation = errors.ConstError("peer relation not established")

	// ErrNotLeader is returned when a unit other than the leader tries to
	// write application peer data.
	ErrNotLeader = errors.ConstError("unit is not the leader")
)

// UnitStats is shared by all units of the application.
type UnitStats struct {
	StartedCounter int `json:"started_counter"`
}

// UnmarshalJSON accepts the started counter as a JSON number or as a
// string holding one. Fractional values are truncated.
func (u *UnitStats) UnmarshalJSON(data []byte) error {
	var doc struct {
		StartedCounter json.RawMessage `json:"started_counter"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Trace(err)
	}
	raw := bytes.TrimSpace(doc.StartedCounter)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var quoted string
	if err := json.Unmarshal(raw, &quoted); err == nil {
		raw = []byte(strings.TrimSpace(quoted))
	}
	n, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		return errors.NotValidf("started counter %s", doc.StartedCounter)
	}
	u.StartedCounter = int(n)
	return nil
}
