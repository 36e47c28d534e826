// Copyright 2024 Canonical Ltd.
// Licensed under the AGPLv3, see LICENCE file for details.

package hooktool

import (
	"context"
	"strings"

	"github.com/juju/collections/transform"
	"github.com/juju/errors"
	"github.com/juju/utils/v4"
	"github.com/juju/utils/v4/exec"
)

// Runner runs a hook tool and returns what it wrote to stdout.
type Runner interface {
	Run(ctx context.Context, tool string, args []string) ([]byte, error)
}

// ExecRunner runs hook tools as processes. Juju puts the tools on the PATH
// of every hook and action it dispatches.
type ExecRunner struct {
	// WorkingDir is the directory the tools are run from, normally the
	// charm directory.
	WorkingDir string
}

// Run is part of the Runner interface.
func (r ExecRunner) Run(ctx context.Context, tool string, args []string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Trace(err)
	}
	command := strings.Join(append([]string{tool}, transform.Slice(args, utils.ShQuote)...), " ")
	resp, err := exec.RunCommands(exec.RunParams{
		Commands:   command,
		WorkingDir: r.WorkingDir,
	})
	if err != nil {
		return nil, errors.Annotatef(err, "running %s", tool)
	}
	if resp.Code != 0 {
		return nil, errors.Errorf("%s exited %d: %s", tool, resp.Code, strings.TrimSpace(string(resp.Stderr)))
	}
	return resp.Stdout, nil
}
