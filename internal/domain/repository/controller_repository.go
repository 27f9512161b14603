//go:generate mockgen -destination=mock_controller_repository.go -package=repository github.com/diillson/wlan-autoassign-go/internal/domain/repository ControllerRepository

package repository

import (
	"context"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
)

// ControllerRepository defines the interface for wireless controller API interactions.
type ControllerRepository interface {
	// Service Operations
	CreateService(ctx context.Context, spec entity.ServiceSpec) (entity.Service, error)

	// Site & Topology Operations
	GetSites(ctx context.Context) ([]entity.Site, error)
	GetSiteByID(ctx context.Context, siteID string) (entity.Site, error)
	GetDeviceGroupsBySite(ctx context.Context, siteID string) ([]entity.DeviceGroup, error)
	GetProfilesByDeviceGroup(ctx context.Context, deviceGroupID string) ([]entity.Profile, error)

	// Assignment Operations
	AssignServiceToProfile(ctx context.Context, serviceID, profileID string) error

	// Sync Operations
	SyncMultipleProfiles(ctx context.Context, profileIDs []string) error
	SyncProfile(ctx context.Context, profileID string) error
}
