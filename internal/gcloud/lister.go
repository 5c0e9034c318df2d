package gcloud

import (
	"context"
	"encoding/json"
	"fmt"

	gce "google.golang.org/api/compute/v1"

	"github.com/kvale/habls/internal/compute"
)

// Lister delegates the whole listing operation to the gcloud CLI. Slower
// than the API path, but inherits every quirk of the user's gcloud setup
// (proxies, configurations, impersonation) for free.
type Lister struct {
	runner Runner
}

func NewLister(r Runner) *Lister {
	return &Lister{runner: r}
}

func (l *Lister) List(ctx context.Context, project, pattern string) ([]compute.Instance, error) {
	args := []string{"compute", "instances", "list", "--project", project, "--format", "json"}
	if pattern != "" {
		args = append(args, "--filter", "name~"+pattern)
	}

	out, err := l.runner.Run(ctx, args...)
	if err != nil {
		return nil, &compute.ListFailedError{Project: project, Diagnostic: err.Error(), Err: err}
	}

	// gcloud --format=json emits the API's own instance representation,
	// so the SDK types double as the decode target.
	var raw []*gce.Instance
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, &compute.ListFailedError{
			Project:    project,
			Diagnostic: fmt.Sprintf("unparseable gcloud output: %v", err),
			Err:        err,
		}
	}

	instances := make([]compute.Instance, 0, len(raw))
	for _, in := range raw {
		rec, err := compute.FromAPI(in)
		if err != nil {
			return nil, &compute.ListFailedError{
				Project:    project,
				Diagnostic: fmt.Sprintf("malformed instance record: %v", err),
				Err:        err,
			}
		}
		instances = append(instances, rec)
	}
	return instances, nil
}
