package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "config.toml",
			content: `
[controller]
url = "https://ctrl.example.com"
username = "admin"
requests_per_second = 4.0

[assignment]
batch_size = 3
call_timeout = "10s"

[report]
types = ["csv", "pdf"]
`,
		},
		{
			name: "yaml",
			file: "config.yml",
			content: `
controller:
  url: https://ctrl.example.com
  username: admin
  requests_per_second: 4
assignment:
  batch_size: 3
  call_timeout: 10s
report:
  types: [csv, pdf]
`,
		},
		{
			name: "json",
			file: "config.json",
			content: `{
  "controller": {"url": "https://ctrl.example.com", "username": "admin", "requests_per_second": 4},
  "assignment": {"batch_size": 3, "call_timeout": "10s"},
  "report": {"types": ["csv", "pdf"]}
}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfigRepository().LoadConfigFile(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)

			assert.Equal(t, "https://ctrl.example.com", cfg.Controller.URL)
			assert.Equal(t, "admin", cfg.Controller.Username)
			assert.Equal(t, 4.0, cfg.Controller.RequestsPerSecond)
			assert.Equal(t, 3, cfg.Assignment.BatchSize)
			assert.Equal(t, "10s", cfg.Assignment.CallTimeout)
			assert.Equal(t, []string{"csv", "pdf"}, cfg.Report.Types)
		})
	}
}

func TestLoadConfigFile_Errors(t *testing.T) {
	repo := NewConfigRepository()

	_, err := repo.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "error accessing config file")

	_, err = repo.LoadConfigFile(t.TempDir())
	assert.ErrorContains(t, err, "is a directory")

	_, err = repo.LoadConfigFile(writeFile(t, "config.ini", "x=1"))
	assert.ErrorContains(t, err, "unsupported config file format: .ini")

	_, err = repo.LoadConfigFile(writeFile(t, "config.json", "{"))
	assert.ErrorContains(t, err, "error parsing JSON file")
}

func TestLoadDeploymentPlan(t *testing.T) {
	path := writeFile(t, "plan.yaml", `
service:
  name: Corp WiFi
  ssid: corp
  security: wpa2-personal
  passphrase: supersecret
  band: dual
  vlan_id: 20
  enabled: true
sites:
  - site_id: s1
  - site_id: s2
    deployment_mode: INCLUDE_ONLY
    included_profiles: [p1, p2]
    excluded_profiles: [p3]
  - site_id: s3
    site_name: Warehouse
    deployment_mode: EXCLUDE_SOME
    excluded_profiles: [p9]
`)

	plan, err := NewConfigRepository().LoadDeploymentPlan(path)
	require.NoError(t, err)

	assert.Equal(t, "Corp WiFi", plan.Service.Name)
	assert.Equal(t, entity.SecurityWPA2Personal, plan.Service.Security)
	require.NotNil(t, plan.Service.VLANID)
	assert.Equal(t, 20, *plan.Service.VLANID)

	require.Len(t, plan.Sites, 3)
	assert.Equal(t, entity.DeployAllProfilesAtSite, plan.Sites[0].DeploymentMode)
	assert.Equal(t, []string{"p1", "p2"}, plan.Sites[1].IncludedProfiles)
	assert.Nil(t, plan.Sites[1].ExcludedProfiles, "only the list of the selected mode is kept")
	assert.Equal(t, "Warehouse", plan.Sites[2].SiteName)
	assert.Equal(t, []string{"p9"}, plan.Sites[2].ExcludedProfiles)
}

func TestLoadDeploymentPlan_TOML(t *testing.T) {
	path := writeFile(t, "plan.toml", `
[service]
name = "Guest"
ssid = "guest"
security = "open"
band = "all"

[[sites]]
site_id = "s1"
deployment_mode = "EXCLUDE_SOME"
excluded_profiles = ["p1"]
`)

	plan, err := NewConfigRepository().LoadDeploymentPlan(path)
	require.NoError(t, err)

	assert.Equal(t, entity.SecurityOpen, plan.Service.Security)
	require.Len(t, plan.Sites, 1)
	assert.Equal(t, entity.DeployExcludeSome, plan.Sites[0].DeploymentMode)
}

func TestLoadDeploymentPlan_NoSites(t *testing.T) {
	path := writeFile(t, "plan.json", `{"service": {"name": "x"}, "sites": []}`)

	_, err := NewConfigRepository().LoadDeploymentPlan(path)

	assert.ErrorIs(t, err, types.ErrNoSitesSelected)
}
