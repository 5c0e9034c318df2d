package compute

import (
	"context"
	"errors"
	"fmt"
	"sort"

	gce "google.golang.org/api/compute/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// APILister lists instances through the Compute Engine API, aggregated
// across all zones of the project. Pagination is handled by the client
// library; we only impose a deterministic zone order per page.
type APILister struct {
	opts []option.ClientOption
}

func NewAPILister(opts ...option.ClientOption) *APILister {
	return &APILister{opts: opts}
}

func (l *APILister) List(ctx context.Context, project, pattern string) ([]Instance, error) {
	svc, err := gce.NewService(ctx, l.opts...)
	if err != nil {
		return nil, &ListFailedError{Project: project, Err: err}
	}

	call := svc.Instances.AggregatedList(project)
	if pattern != "" && literalPattern(pattern) {
		// Cheap server-side pre-filter. Regex patterns are handled
		// client-side only, since embedding them in ".*p.*" mangles
		// anchors.
		call = call.Filter(fmt.Sprintf("(name eq .*%s.*)", pattern))
	}

	var out []Instance
	var convErr error
	err = call.Pages(ctx, func(page *gce.InstanceAggregatedList) error {
		scopes := make([]string, 0, len(page.Items))
		for scope := range page.Items {
			scopes = append(scopes, scope)
		}
		sort.Strings(scopes)

		for _, scope := range scopes {
			for _, in := range page.Items[scope].Instances {
				rec, err := FromAPI(in)
				if err != nil {
					convErr = err
					return err
				}
				out = append(out, rec)
			}
		}
		return nil
	})
	if err != nil {
		lf := &ListFailedError{Project: project, Err: err}
		if convErr != nil {
			lf.Diagnostic = fmt.Sprintf("malformed instance record: %v", convErr)
		}
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			lf.Diagnostic = apiErr.Message
			if lf.Diagnostic == "" {
				lf.Diagnostic = apiErr.Body
			}
		}
		return nil, lf
	}
	return out, nil
}
