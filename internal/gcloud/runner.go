// Package gcloud drives the Google Cloud CLI as a subprocess. The CLI owns
// the user's session: habls never touches credentials itself, it only asks
// gcloud for tokens or for instance listings.
package gcloud

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes the gcloud binary and returns its stdout. Tests stub
// this seam instead of spawning processes.
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

type execRunner struct{}

// NewRunner returns a Runner backed by the real gcloud binary.
func NewRunner() Runner {
	return execRunner{}
}

// IsInstalled checks for the gcloud binary.
func IsInstalled() bool {
	_, err := exec.LookPath("gcloud")
	return err == nil
}

func (execRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, "gcloud", args...)

	output, err := cmd.Output()
	if err != nil {
		// On non-zero exit, surface gcloud's own stderr text. It knows
		// why it failed (auth, permissions, bad project); we don't.
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("gcloud %s failed: %s", strings.Join(args, " "), strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, fmt.Errorf("gcloud %s: %w", strings.Join(args, " "), err)
	}

	return output, nil
}
