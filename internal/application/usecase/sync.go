package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/domain/repository"
)

// ProfileSyncer pushes profile changes to the devices.
type ProfileSyncer struct {
	controller  repository.ControllerRepository
	callTimeout time.Duration
	now         func() time.Time
	log         zerolog.Logger
}

// NewProfileSyncer cria o componente de sincronização. callTimeout <= 0 desativa o timeout por chamada.
func NewProfileSyncer(controller repository.ControllerRepository, callTimeout time.Duration, log zerolog.Logger) *ProfileSyncer {
	return &ProfileSyncer{
		controller:  controller,
		callTimeout: callTimeout,
		now:         time.Now,
		log:         log,
	}
}

// SyncProfiles tries a single batch sync first. If the batch call fails every
// profile is synced on its own, concurrently, and each outcome is reported
// separately. Results follow the order of profileIDs.
func (s *ProfileSyncer) SyncProfiles(ctx context.Context, profileIDs []string) []entity.SyncResult {
	if len(profileIDs) == 0 {
		return []entity.SyncResult{}
	}

	err := s.withTimeout(ctx, func(ctx context.Context) error {
		return s.controller.SyncMultipleProfiles(ctx, profileIDs)
	})
	if err == nil {
		at := s.now()
		results := make([]entity.SyncResult, len(profileIDs))
		for i, id := range profileIDs {
			results[i] = entity.SyncResult{ProfileID: id, Success: true, SyncedAt: &at}
		}
		return results
	}

	s.log.Warn().Err(err).Int("profiles", len(profileIDs)).Msg("batch sync failed, falling back to per-profile sync")

	results := make([]entity.SyncResult, len(profileIDs))
	var g errgroup.Group
	for i, id := range profileIDs {
		g.Go(func() error {
			results[i] = s.syncOne(ctx, id)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *ProfileSyncer) syncOne(ctx context.Context, profileID string) entity.SyncResult {
	err := s.withTimeout(ctx, func(ctx context.Context) error {
		return s.controller.SyncProfile(ctx, profileID)
	})
	if err != nil {
		s.log.Warn().Err(err).Str("profile_id", profileID).Msg("profile sync failed")
		return entity.SyncResult{ProfileID: profileID, Success: false, Error: err.Error()}
	}

	at := s.now()
	return entity.SyncResult{ProfileID: profileID, Success: true, SyncedAt: &at}
}

func (s *ProfileSyncer) withTimeout(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.callTimeout <= 0 {
		return fn(ctx)
	}
	callCtx, cancel := context.WithTimeout(ctx, s.callTimeout)
	defer cancel()
	return fn(callCtx)
}
