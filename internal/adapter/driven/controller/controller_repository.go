package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/domain/repository"
)

const (
	servicesPath     = "/management/v1/services"
	sitesPath        = "/management/v3/sites"
	deviceGroupsPath = "/management/v3/devicegroups"
	profilesPath     = "/management/v3/profiles"
	profilesSyncPath = "/management/v3/profiles/sync"
)

// ControllerRepositoryImpl implementa o ControllerRepository sobre a API REST.
type ControllerRepositoryImpl struct {
	client *Client
	log    zerolog.Logger
}

// NewControllerRepository cria uma nova implementação do ControllerRepository.
func NewControllerRepository(client *Client) repository.ControllerRepository {
	return &ControllerRepositoryImpl{
		client: client,
		log:    client.log,
	}
}

type serviceRequest struct {
	ServiceName string           `json:"serviceName"`
	SSID        string           `json:"ssid"`
	Enabled     bool             `json:"enabled"`
	Band        string           `json:"band"`
	VLANID      *int             `json:"vlanId,omitempty"`
	Security    securitySettings `json:"security"`
}

type securitySettings struct {
	Mode       string `json:"mode"`
	Passphrase string `json:"passphrase,omitempty"`
}

// CreateService creates the WLAN service and returns it with the id assigned by the controller.
func (r *ControllerRepositoryImpl) CreateService(ctx context.Context, spec entity.ServiceSpec) (entity.Service, error) {
	req := serviceRequest{
		ServiceName: spec.Name,
		SSID:        spec.SSID,
		Enabled:     spec.Enabled,
		Band:        string(spec.Band),
		VLANID:      spec.VLANID,
		Security: securitySettings{
			Mode:       string(spec.Security),
			Passphrase: spec.Passphrase,
		},
	}

	var raw rawService
	if err := r.client.do(ctx, http.MethodPost, servicesPath, req, &raw); err != nil {
		return entity.Service{}, err
	}

	svc := raw.normalize(spec)
	if svc.ID == "" {
		return entity.Service{}, fmt.Errorf("%w: created service has no id", ErrMalformedResponse)
	}
	return svc, nil
}

// GetSites lists every site known to the controller.
func (r *ControllerRepositoryImpl) GetSites(ctx context.Context) ([]entity.Site, error) {
	var raw json.RawMessage
	if err := r.client.do(ctx, http.MethodGet, sitesPath, nil, &raw); err != nil {
		return nil, err
	}

	items, err := decodeList[rawSite](raw, "sites")
	if err != nil {
		return nil, err
	}

	sites := make([]entity.Site, 0, len(items))
	for _, item := range items {
		site := item.normalize("")
		if site.ID == "" {
			continue
		}
		sites = append(sites, site)
	}
	return sites, nil
}

// GetSiteByID fetches one site.
func (r *ControllerRepositoryImpl) GetSiteByID(ctx context.Context, siteID string) (entity.Site, error) {
	var raw rawSite
	if err := r.client.do(ctx, http.MethodGet, sitesPath+"/"+url.PathEscape(siteID), nil, &raw); err != nil {
		return entity.Site{}, err
	}
	return raw.normalize(siteID), nil
}

// GetDeviceGroupsBySite lists the device groups of a site.
func (r *ControllerRepositoryImpl) GetDeviceGroupsBySite(ctx context.Context, siteID string) ([]entity.DeviceGroup, error) {
	var raw json.RawMessage
	path := sitesPath + "/" + url.PathEscape(siteID) + "/devicegroups"
	if err := r.client.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	items, err := decodeList[rawDeviceGroup](raw, "deviceGroups")
	if err != nil {
		return nil, err
	}

	groups := make([]entity.DeviceGroup, 0, len(items))
	for _, item := range items {
		group := item.normalize(siteID)
		if group.ID == "" {
			r.log.Debug().Str("site_id", siteID).Msg("skipping device group without id")
			continue
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// GetProfilesByDeviceGroup lists the profiles applied to a device group.
func (r *ControllerRepositoryImpl) GetProfilesByDeviceGroup(ctx context.Context, deviceGroupID string) ([]entity.Profile, error) {
	var raw json.RawMessage
	path := deviceGroupsPath + "/" + url.PathEscape(deviceGroupID) + "/profiles"
	if err := r.client.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return nil, err
	}

	items, err := decodeList[rawProfile](raw, "profiles")
	if err != nil {
		return nil, err
	}

	profiles := make([]entity.Profile, 0, len(items))
	for _, item := range items {
		p := item.normalize()
		if p.ID == "" {
			r.log.Debug().Str("device_group_id", deviceGroupID).Msg("skipping profile without id")
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// AssignServiceToProfile adds serviceID to the service list of the profile.
// The profile document is read and written back whole so fields this client
// does not know survive. Assigning an already assigned service is a no-op.
func (r *ControllerRepositoryImpl) AssignServiceToProfile(ctx context.Context, serviceID, profileID string) error {
	path := profilesPath + "/" + url.PathEscape(profileID)

	var doc map[string]json.RawMessage
	if err := r.client.do(ctx, http.MethodGet, path, nil, &doc); err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("%w: empty profile %s", ErrMalformedResponse, profileID)
	}

	refs, err := parseServiceRefs(doc["services"])
	if err != nil {
		return fmt.Errorf("profile %s: %w", profileID, err)
	}
	if refs.contains(serviceID) {
		r.log.Debug().Str("profile_id", profileID).Str("service_id", serviceID).Msg("service already assigned")
		return nil
	}

	updated, err := refs.with(serviceID)
	if err != nil {
		return err
	}
	doc["services"] = updated

	return r.client.do(ctx, http.MethodPut, path, doc, nil)
}

// SyncMultipleProfiles pushes several profiles to their devices in one call.
func (r *ControllerRepositoryImpl) SyncMultipleProfiles(ctx context.Context, profileIDs []string) error {
	if len(profileIDs) == 0 {
		return nil
	}
	body := struct {
		ProfileIDs []string `json:"profileIds"`
	}{ProfileIDs: profileIDs}

	return r.client.do(ctx, http.MethodPost, profilesSyncPath, body, nil)
}

// SyncProfile pushes a single profile to its devices.
func (r *ControllerRepositoryImpl) SyncProfile(ctx context.Context, profileID string) error {
	return r.client.do(ctx, http.MethodPost, profilesPath+"/"+url.PathEscape(profileID)+"/sync", nil, nil)
}

// serviceRefs é a lista de serviços de um perfil. O controlador pode enviar
// ids soltos ou objetos {"id": ...}; a escrita mantém o formato recebido.
type serviceRefs struct {
	ids     []string
	objects bool
	raw     []json.RawMessage
}

func parseServiceRefs(data json.RawMessage) (serviceRefs, error) {
	var refs serviceRefs
	if len(data) == 0 || string(data) == "null" {
		return refs, nil
	}

	if err := json.Unmarshal(data, &refs.raw); err != nil {
		return refs, fmt.Errorf("%w: services is not a list: %w", ErrMalformedResponse, err)
	}

	for _, item := range refs.raw {
		var id flexString
		if err := json.Unmarshal(item, &id); err == nil {
			refs.ids = append(refs.ids, string(id))
			continue
		}

		var obj struct {
			ID        flexString `json:"id"`
			ServiceID flexString `json:"serviceId"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return refs, fmt.Errorf("%w: unexpected service reference %s", ErrMalformedResponse, item)
		}
		refs.objects = true
		refs.ids = append(refs.ids, firstNonEmpty(string(obj.ID), string(obj.ServiceID)))
	}

	return refs, nil
}

func (s serviceRefs) contains(serviceID string) bool {
	for _, id := range s.ids {
		if id == serviceID {
			return true
		}
	}
	return false
}

func (s serviceRefs) with(serviceID string) (json.RawMessage, error) {
	var ref interface{} = serviceID
	if s.objects {
		ref = map[string]string{"id": serviceID}
	}

	encoded, err := json.Marshal(ref)
	if err != nil {
		return nil, err
	}

	list := append(append([]json.RawMessage(nil), s.raw...), encoded)
	return json.Marshal(list)
}
