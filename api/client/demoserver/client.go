// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package demoserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/juju/errors"
	"gopkg.in/httprequest.v1"

	"github.com/canonical/fastapi-demo-operator/rpc/params"
)

// DefaultTimeout bounds every request made to the workload.
const DefaultTimeout = 10 * time.Second

// Client allows access to the demo server's own HTTP API.
type Client struct {
	client *httprequest.Client
}

// NewClient creates a new client for the demo server listening on the
// given port of the workload container.
func NewClient(port int) *Client {
	return newClient(
		fmt.Sprintf("http://localhost:%d", port),
		&http.Client{Timeout: DefaultTimeout},
	)
}

func newClient(baseURL string, doer httprequest.Doer) *Client {
	return &Client{
		client: &httprequest.Client{
			BaseURL: baseURL,
			Doer:    doer,
		},
	}
}

// Version returns the version the demo server reports for itself.
func (c *Client) Version(ctx context.Context) (string, error) {
	var result params.VersionResult
	if err := c.client.Get(ctx, "/version", &result); err != nil {
		return "", errors.Annotate(err, "getting workload version")
	}
	return result.Version, nil
}
