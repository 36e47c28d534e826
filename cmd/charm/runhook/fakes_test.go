// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package runhook_test

import (
	"context"
	"strings"

	"github.com/canonical/pebble/client"
)

type fakeRunner struct {
	outputs map[string]string
	errors  map[string]error
	calls   []string
}

func (f *fakeRunner) Run(_ context.Context, tool string, args []string) ([]byte, error) {
	if tool != "juju-log" {
		f.calls = append(f.calls, strings.Join(append([]string{tool}, args...), " "))
	}
	if err := f.errors[tool]; err != nil {
		return nil, err
	}
	return []byte(f.outputs[tool]), nil
}

type fakePebble struct {
	plan     string
	layers   []*client.AddLayerOptions
	restarts int
	services []*client.ServiceInfo
}

func (f *fakePebble) SysInfo() (*client.SysInfo, error) {
	return &client.SysInfo{Version: "1.17.0"}, nil
}

func (f *fakePebble) PlanBytes(*client.PlanOptions) ([]byte, error) {
	return []byte(f.plan), nil
}

func (f *fakePebble) AddLayer(opts *client.AddLayerOptions) error {
	f.layers = append(f.layers, opts)
	return nil
}

func (f *fakePebble) Restart(*client.ServiceOptions) (string, error) {
	f.restarts++
	return "1", nil
}

func (f *fakePebble) WaitChange(string, *client.WaitChangeOptions) (*client.Change, error) {
	return &client.Change{ID: "1", Ready: true, Status: "Done"}, nil
}

func (f *fakePebble) Services(*client.ServicesOptions) ([]*client.ServiceInfo, error) {
	return f.services, nil
}
