package usecase

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
)

// Mensagens de validação exibidas ao operador.
const (
	msgIncludeEmpty   = "must select at least one profile to include"
	msgExcludeAll     = "cannot exclude all profiles - this site would receive no deployment"
	msgUnknownModeFmt = "unknown deployment mode %q"
)

// CalculateEffectiveSet applies the site's deployment mode to its discovered
// profiles. The result follows the order of profiles. An unknown mode yields an
// empty set; ValidateSiteAssignment is what reports it.
func CalculateEffectiveSet(config entity.SiteDeploymentConfig, profiles []entity.Profile) entity.EffectiveProfileSet {
	set := entity.EffectiveProfileSet{SiteID: config.SiteID, ProfileIDs: []string{}}

	switch config.DeploymentMode {
	case entity.DeployAllProfilesAtSite:
		set.ProfileIDs = entity.ProfileIDs(profiles)

	case entity.DeployIncludeOnly:
		included := toSet(config.IncludedProfiles)
		for _, p := range profiles {
			if _, ok := included[p.ID]; ok {
				set.ProfileIDs = append(set.ProfileIDs, p.ID)
			}
		}

	case entity.DeployExcludeSome:
		excluded := toSet(config.ExcludedProfiles)
		for _, p := range profiles {
			if _, ok := excluded[p.ID]; !ok {
				set.ProfileIDs = append(set.ProfileIDs, p.ID)
			}
		}
	}

	set.ProfileIDs = uniqueStrings(set.ProfileIDs)
	return set
}

// ValidateSiteAssignment checks a site configuration against its discovered
// profiles (config.Profiles) and returns every problem found.
func ValidateSiteAssignment(config entity.SiteDeploymentConfig) entity.ValidationResult {
	if !config.DeploymentMode.IsValid() {
		return entity.ValidationResult{
			Valid:  false,
			Errors: []string{fmt.Sprintf(msgUnknownModeFmt, config.DeploymentMode)},
		}
	}

	var errs []string

	switch config.DeploymentMode {
	case entity.DeployIncludeOnly:
		if len(config.IncludedProfiles) == 0 {
			errs = append(errs, msgIncludeEmpty)
		}
	case entity.DeployExcludeSome:
		if excludesEverything(config) {
			errs = append(errs, msgExcludeAll)
		}
	}

	return entity.ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func excludesEverything(config entity.SiteDeploymentConfig) bool {
	if len(config.Profiles) == 0 {
		return false
	}
	excluded := toSet(config.ExcludedProfiles)
	for _, p := range config.Profiles {
		if _, ok := excluded[p.ID]; !ok {
			return false
		}
	}
	return true
}

// SiteValidationError reports every invalid site of a deployment at once.
type SiteValidationError struct {
	Results map[string]entity.ValidationResult
	err     *multierror.Error
}

func (e *SiteValidationError) Error() string {
	return e.err.Error()
}

// Is makes errors.Is(err, types.ErrInvalidSiteConfig) hold.
func (e *SiteValidationError) Is(target error) bool {
	return target == types.ErrInvalidSiteConfig
}

// ValidateSiteAssignments validates all configs and returns nil only when every
// site is valid. It never stops at the first invalid site.
func ValidateSiteAssignments(configs []entity.SiteDeploymentConfig) error {
	var merr *multierror.Error
	results := make(map[string]entity.ValidationResult)

	for _, c := range configs {
		res := ValidateSiteAssignment(c)
		if res.Valid {
			continue
		}
		results[c.SiteID] = res
		label := c.SiteID
		if c.SiteName != "" && c.SiteName != c.SiteID {
			label = fmt.Sprintf("%s (%s)", c.SiteName, c.SiteID)
		}
		merr = multierror.Append(merr, fmt.Errorf("site %s: %s", label, strings.Join(res.Errors, "; ")))
	}

	if merr.ErrorOrNil() == nil {
		return nil
	}
	return &SiteValidationError{Results: results, err: merr}
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
