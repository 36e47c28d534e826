// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package network

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/juju/errors"
)

// PortRange represents a single range of ports opened by a unit.
type PortRange struct {
	FromPort int
	ToPort   int
	Protocol string
}

// MustParsePortRange converts a raw port-range string into a PortRange.
// It panics on error.
func MustParsePortRange(portRange string) PortRange {
	pr, err := ParsePortRange(portRange)
	if err != nil {
		panic(err)
	}
	return pr
}

// ParsePortRange builds a PortRange from the provided string. The string
// is expected to be in the form reported by opened-ports, e.g. "80/tcp",
// "8080-8088/udp" or "icmp". A missing protocol defaults to tcp.
func ParsePortRange(inPortRange string) (PortRange, error) {
	// Extract the protocol.
	protocol := "tcp"
	parts := strings.SplitN(inPortRange, "/", 2)
	if len(parts) == 2 {
		inPortRange = parts[0]
		protocol = strings.ToLower(parts[1])
	}
	if protocol == "icmp" || inPortRange == "icmp" {
		return PortRange{FromPort: -1, ToPort: -1, Protocol: "icmp"}, nil
	}

	// Parse the ports.
	from, to, err := parsePortRange(inPortRange)
	if err != nil {
		return PortRange{}, errors.Trace(err)
	}
	result := PortRange{
		FromPort: from,
		ToPort:   to,
		Protocol: protocol,
	}
	return result, result.Validate()
}

func parsePortRange(portRange string) (int, int, error) {
	var start, end int
	parts := strings.Split(portRange, "-")
	if len(parts) > 2 {
		return -1, -1, errors.NotValidf("port range %q", portRange)
	}

	if len(parts) == 1 {
		port, err := strconv.Atoi(parts[0])
		if err != nil {
			return -1, -1, errors.Annotatef(err, "invalid port %q", portRange)
		}
		start, end = port, port
	} else {
		var err error
		if start, err = strconv.Atoi(parts[0]); err != nil {
			return -1, -1, errors.Annotatef(err, "invalid port %q", parts[0])
		}
		if end, err = strconv.Atoi(parts[1]); err != nil {
			return -1, -1, errors.Annotatef(err, "invalid port %q", parts[1])
		}
	}
	return start, end, nil
}

// Validate checks if the port range is valid.
func (p PortRange) Validate() error {
	proto := strings.ToLower(p.Protocol)
	if proto != "tcp" && proto != "udp" && proto != "icmp" {
		return errors.NotValidf("protocol %q", proto)
	}
	if proto == "icmp" {
		if p.FromPort == p.ToPort && p.FromPort == -1 {
			return nil
		}
		return errors.Errorf(`protocol "icmp" doesn't support any ports; got "%v"`, p.FromPort)
	}
	if p.FromPort > p.ToPort {
		return errors.Errorf("invalid port range %d-%d", p.FromPort, p.ToPort)
	}
	if p.FromPort <= 0 || p.FromPort > 65535 ||
		p.ToPort <= 0 || p.ToPort > 65535 {
		return errors.Errorf("port range bounds must be between 1 and 65535, got %d-%d", p.FromPort, p.ToPort)
	}
	return nil
}

// String returns the port range in the form accepted by open-port and
// close-port.
func (p PortRange) String() string {
	proto := strings.ToLower(p.Protocol)
	if proto == "icmp" {
		return proto
	}
	if p.FromPort == p.ToPort {
		return fmt.Sprintf("%d/%s", p.FromPort, proto)
	}
	return fmt.Sprintf("%d-%d/%s", p.FromPort, p.ToPort, proto)
}
