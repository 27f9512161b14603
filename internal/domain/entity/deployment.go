package entity

// DeploymentMode define como os perfis de um site recebem o serviço.
type DeploymentMode string

const (
	DeployAllProfilesAtSite DeploymentMode = "ALL_PROFILES_AT_SITE"
	DeployIncludeOnly       DeploymentMode = "INCLUDE_ONLY"
	DeployExcludeSome       DeploymentMode = "EXCLUDE_SOME"
)

// IsValid reports whether m is one of the known deployment modes.
func (m DeploymentMode) IsValid() bool {
	switch m {
	case DeployAllProfilesAtSite, DeployIncludeOnly, DeployExcludeSome:
		return true
	}
	return false
}

// SiteDeploymentConfig narrows which discovered profiles of a site receive a service.
// IncludedProfiles only matters in INCLUDE_ONLY, ExcludedProfiles only in EXCLUDE_SOME.
type SiteDeploymentConfig struct {
	SiteID           string         `json:"site_id" yaml:"site_id" toml:"site_id"`
	SiteName         string         `json:"site_name,omitempty" yaml:"site_name" toml:"site_name"`
	DeploymentMode   DeploymentMode `json:"deployment_mode" yaml:"deployment_mode" toml:"deployment_mode"`
	IncludedProfiles []string       `json:"included_profiles,omitempty" yaml:"included_profiles" toml:"included_profiles"`
	ExcludedProfiles []string       `json:"excluded_profiles,omitempty" yaml:"excluded_profiles" toml:"excluded_profiles"`
	Profiles         []Profile      `json:"profiles,omitempty" yaml:"-" toml:"-"`
}

// SetMode troca o modo e limpa a lista que deixou de ser relevante.
func (c *SiteDeploymentConfig) SetMode(mode DeploymentMode) {
	c.DeploymentMode = mode
	switch mode {
	case DeployIncludeOnly:
		c.ExcludedProfiles = nil
	case DeployExcludeSome:
		c.IncludedProfiles = nil
	default:
		c.IncludedProfiles = nil
		c.ExcludedProfiles = nil
	}
}

// EffectiveProfileSet is the concrete list of profile ids a site will push the WLAN to.
type EffectiveProfileSet struct {
	SiteID     string   `json:"site_id"`
	ProfileIDs []string `json:"profile_ids"`
}

// ValidationResult collects every problem found in a site configuration.
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// DeploymentPlan é o arquivo de entrada do caminho site-centric.
type DeploymentPlan struct {
	Service ServiceSpec            `json:"service" yaml:"service" toml:"service"`
	Sites   []SiteDeploymentConfig `json:"sites" yaml:"sites" toml:"sites"`
}
