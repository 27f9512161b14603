package controller

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
)

// flexString aceita ids enviados como string ou como número.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*f = flexString(n.String())
	return nil
}

type rawSite struct {
	ID       flexString `json:"id"`
	SiteID   flexString `json:"siteId"`
	SiteName string     `json:"siteName"`
	Name     string     `json:"name"`
}

func (r rawSite) normalize(fallbackID string) entity.Site {
	id := firstNonEmpty(string(r.ID), string(r.SiteID), fallbackID)
	return entity.Site{
		ID:   id,
		Name: firstNonEmpty(r.SiteName, r.Name, id),
	}
}

type rawDeviceGroup struct {
	ID            flexString   `json:"id"`
	GroupID       flexString   `json:"groupId"`
	Name          string       `json:"name"`
	GroupName     string       `json:"groupName"`
	SiteID        flexString   `json:"siteId"`
	ProfileIDs    []flexString `json:"profileIds"`
	Profiles      []rawProfile `json:"profiles"`
	DeviceCount   int          `json:"deviceCount"`
	SerialNumbers []string     `json:"serialNumbers"`
}

func (r rawDeviceGroup) normalize(siteID string) entity.DeviceGroup {
	id := firstNonEmpty(string(r.ID), string(r.GroupID))

	profileIDs := make([]string, 0, len(r.ProfileIDs)+len(r.Profiles))
	for _, p := range r.ProfileIDs {
		profileIDs = append(profileIDs, string(p))
	}
	if len(profileIDs) == 0 {
		for _, p := range r.Profiles {
			if pid := p.id(); pid != "" {
				profileIDs = append(profileIDs, pid)
			}
		}
	}

	return entity.DeviceGroup{
		ID:            id,
		Name:          firstNonEmpty(r.Name, r.GroupName, id),
		SiteID:        firstNonEmpty(string(r.SiteID), siteID),
		ProfileIDs:    profileIDs,
		DeviceCount:   r.DeviceCount,
		SerialNumbers: r.SerialNumbers,
	}
}

type rawProfile struct {
	ID          flexString `json:"id"`
	ProfileID   flexString `json:"profileId"`
	Name        string     `json:"name"`
	ProfileName string     `json:"profileName"`
}

func (r rawProfile) id() string {
	return firstNonEmpty(string(r.ID), string(r.ProfileID))
}

func (r rawProfile) normalize() entity.Profile {
	id := r.id()
	return entity.Profile{
		ID:   id,
		Name: firstNonEmpty(r.Name, r.ProfileName, id),
	}
}

type rawService struct {
	ID          flexString `json:"id"`
	ServiceID   flexString `json:"serviceId"`
	ServiceName string     `json:"serviceName"`
	Name        string     `json:"name"`
	SSID        string     `json:"ssid"`
}

func (r rawService) normalize(spec entity.ServiceSpec) entity.Service {
	return entity.Service{
		ID:   firstNonEmpty(string(r.ID), string(r.ServiceID)),
		Name: firstNonEmpty(r.ServiceName, r.Name, spec.Name),
		SSID: firstNonEmpty(r.SSID, spec.SSID),
	}
}

// Chaves de envelope aceitas além da chave específica do recurso.
var listEnvelopeKeys = []string{"items", "data", "results"}

// decodeList decodes either a bare JSON array or an object wrapping the array
// under key or one of the generic envelope keys.
func decodeList[T any](data []byte, key string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	if trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
		}
		return out, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	for _, k := range append([]string{key}, listEnvelopeKeys...) {
		if inner, ok := envelope[k]; ok {
			return decodeList[T](inner, key)
		}
	}

	return nil, fmt.Errorf("%w: no %q list in response", ErrMalformedResponse, key)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
