package compute

import (
	"fmt"
	"sort"
	"strings"

	gce "google.golang.org/api/compute/v1"
)

// Instance is the transient record habls prints. It lives for one
// invocation; nothing is persisted.
type Instance struct {
	Name        string
	IP          string
	Zone        string
	MachineType string
	CPUPlatform string
	Status      string
	Labels      map[string]string
}

// FromAPI converts a Compute Engine API instance into our record.
// The API reports zone and machine type as resource URLs; only the
// trailing segment is worth showing.
func FromAPI(in *gce.Instance) (Instance, error) {
	if in == nil || in.Name == "" {
		return Instance{}, fmt.Errorf("instance record has no name")
	}

	rec := Instance{
		Name:        in.Name,
		Zone:        lastSegment(in.Zone),
		MachineType: lastSegment(in.MachineType),
		CPUPlatform: in.CpuPlatform,
		Status:      in.Status,
		Labels:      in.Labels,
	}
	if len(in.NetworkInterfaces) > 0 && in.NetworkInterfaces[0] != nil {
		rec.IP = in.NetworkInterfaces[0].NetworkIP
	}
	return rec, nil
}

// LabelString renders labels as "k=v, k=v" with sorted keys.
func (i Instance) LabelString() string {
	keys := make([]string, 0, len(i.Labels))
	for k := range i.Labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+i.Labels[k])
	}
	return strings.Join(pairs, ", ")
}

func lastSegment(url string) string {
	if url == "" {
		return ""
	}
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}
