package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/domain/repository"
)

// Discovery is the outcome of a discovery pass over a list of sites.
type Discovery struct {
	// SiteIDs keeps the input order, without repeated ids.
	SiteIDs []string
	// BySite has exactly one entry per id in SiteIDs, possibly empty.
	BySite       map[string][]entity.Profile
	DeviceGroups int
}

// Flatten concatena os perfis na ordem dos sites de entrada.
func (d Discovery) Flatten() []entity.Profile {
	var all []entity.Profile
	for _, id := range d.SiteIDs {
		all = append(all, d.BySite[id]...)
	}
	return all
}

// ProfileDiscovery resolves which device profiles are reachable from a set of sites.
type ProfileDiscovery struct {
	controller repository.ControllerRepository
	siteNames  *SiteNameCache
	batchSize  int
	log        zerolog.Logger
}

// NewProfileDiscovery creates a discovery component. siteNames may be nil, in
// which case profiles are enriched with the site id as their site name.
func NewProfileDiscovery(
	controller repository.ControllerRepository,
	siteNames *SiteNameCache,
	batchSize int,
	log zerolog.Logger,
) *ProfileDiscovery {
	return &ProfileDiscovery{
		controller: controller,
		siteNames:  siteNames,
		batchSize:  batchSize,
		log:        log,
	}
}

type siteDiscovery struct {
	profiles []entity.Profile
	groups   int
}

// DiscoverSites runs discovery over siteIDs. Sites are independent, so they are
// fetched concurrently in batches; results are still keyed by input position.
// A failure for one site or one device group only shrinks the result.
func (d *ProfileDiscovery) DiscoverSites(ctx context.Context, siteIDs []string) Discovery {
	ids := uniqueStrings(siteIDs)

	found := runInBatches(ctx, ids, d.batchSize,
		d.discoverSite,
		func(siteID string, err error) siteDiscovery {
			d.log.Warn().Err(err).Str("site_id", siteID).Msg("site discovery skipped")
			return siteDiscovery{}
		},
		nil,
	)

	out := Discovery{
		SiteIDs: ids,
		BySite:  make(map[string][]entity.Profile, len(ids)),
	}
	for i, id := range ids {
		profiles := found[i].profiles
		if profiles == nil {
			profiles = []entity.Profile{}
		}
		out.BySite[id] = profiles
		out.DeviceGroups += found[i].groups
	}

	return out
}

// DiscoverProfilesForSites maps every input site id to the profiles reachable from it.
func (d *ProfileDiscovery) DiscoverProfilesForSites(ctx context.Context, siteIDs []string) map[string][]entity.Profile {
	return d.DiscoverSites(ctx, siteIDs).BySite
}

// PreviewProfilesForSites returns the deduplicated profile set without mutating anything.
func (d *ProfileDiscovery) PreviewProfilesForSites(ctx context.Context, siteIDs []string) []entity.Profile {
	return DeduplicateProfiles(d.DiscoverSites(ctx, siteIDs).Flatten())
}

func (d *ProfileDiscovery) discoverSite(ctx context.Context, siteID string) siteDiscovery {
	log := d.log.With().Str("site_id", siteID).Logger()

	groups, err := d.controller.GetDeviceGroupsBySite(ctx, siteID)
	if err != nil {
		log.Warn().Err(err).Msg("failed to fetch device groups")
		return siteDiscovery{}
	}

	siteName := d.siteNames.Resolve(ctx, siteID)

	var profiles []entity.Profile
	for _, group := range groups {
		groupProfiles, err := d.controller.GetProfilesByDeviceGroup(ctx, group.ID)
		if err != nil {
			log.Warn().Err(err).Str("device_group_id", group.ID).Msg("failed to fetch profiles")
			continue
		}

		for _, p := range groupProfiles {
			p.DeviceGroupID = group.ID
			p.SiteID = siteID
			p.SiteName = siteName
			profiles = append(profiles, p)
		}
	}

	log.Debug().Int("device_groups", len(groups)).Int("profiles", len(profiles)).Msg("site discovered")

	return siteDiscovery{profiles: profiles, groups: len(groups)}
}

// DeduplicateProfiles keeps the first occurrence of every profile id, in input order.
func DeduplicateProfiles(profiles []entity.Profile) []entity.Profile {
	seen := make(map[string]struct{}, len(profiles))
	out := make([]entity.Profile, 0, len(profiles))

	for _, p := range profiles {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		out = append(out, p)
	}

	return out
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
