package compute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gce "google.golang.org/api/compute/v1"
)

func TestFromAPI(t *testing.T) {
	rec, err := FromAPI(&gce.Instance{
		Name:        "store-lb-1",
		Zone:        "https://www.googleapis.com/compute/v1/projects/p/zones/europe-west1-b",
		MachineType: "https://www.googleapis.com/compute/v1/projects/p/machineTypes/n2-standard-4",
		CpuPlatform: "Intel Ice Lake",
		Status:      "RUNNING",
		Labels:      map[string]string{"cell": "a", "role": "lb"},
		NetworkInterfaces: []*gce.NetworkInterface{
			{NetworkIP: "10.0.4.17"},
			{NetworkIP: "10.0.9.2"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "store-lb-1", rec.Name)
	assert.Equal(t, "10.0.4.17", rec.IP, "first network interface wins")
	assert.Equal(t, "europe-west1-b", rec.Zone)
	assert.Equal(t, "n2-standard-4", rec.MachineType)
	assert.Equal(t, "Intel Ice Lake", rec.CPUPlatform)
	assert.Equal(t, "RUNNING", rec.Status)
	assert.Equal(t, "cell=a, role=lb", rec.LabelString())
}

func TestFromAPIMissingName(t *testing.T) {
	_, err := FromAPI(&gce.Instance{Status: "RUNNING"})
	assert.Error(t, err)

	_, err = FromAPI(nil)
	assert.Error(t, err)
}

func TestFromAPIDegradesGracefully(t *testing.T) {
	// Only the name is mandatory; everything else may be absent.
	rec, err := FromAPI(&gce.Instance{Name: "bare"})
	require.NoError(t, err)
	assert.Equal(t, "bare", rec.Name)
	assert.Empty(t, rec.IP)
	assert.Empty(t, rec.Zone)
	assert.Empty(t, rec.LabelString())
}
