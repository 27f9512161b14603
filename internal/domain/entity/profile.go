package entity

// Profile represents a device configuration profile on the controller.
//
// DeviceGroupID, SiteID and SiteName are filled in by discovery. A profile
// reachable from several sites keeps the enrichment of the first site seen.
type Profile struct {
	ID            string `json:"id"`
	Name          string `json:"name,omitempty"`
	DeviceGroupID string `json:"device_group_id,omitempty"`
	SiteID        string `json:"site_id,omitempty"`
	SiteName      string `json:"site_name,omitempty"`
}

// DisplayName returns the profile name, or its id when the controller sent no name.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// ProfileIDs extracts the ids of the given profiles preserving order.
func ProfileIDs(profiles []Profile) []string {
	ids := make([]string, 0, len(profiles))
	for _, p := range profiles {
		ids = append(ids, p.ID)
	}
	return ids
}
