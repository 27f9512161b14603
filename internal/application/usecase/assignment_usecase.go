package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/domain/repository"
	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
	"github.com/diillson/wlan-autoassign-go/pkg/logger"
)

const dryRunNote = "dry run: assignment skipped"

// AssignmentSettings tunes the bounded-concurrency assignment.
type AssignmentSettings struct {
	// BatchSize is how many profiles are assigned concurrently; batches run one after another.
	BatchSize int
	// CallTimeout bounds every single assignment and sync call. Zero disables it.
	CallTimeout time.Duration
}

// AssignmentUseCase orquestra a criação da WLAN e sua atribuição aos perfis.
type AssignmentUseCase struct {
	controller repository.ControllerRepository
	history    repository.HistoryRepository
	console    types.ConsoleInterface
	discovery  *ProfileDiscovery
	syncer     *ProfileSyncer
	siteNames  *SiteNameCache
	validate   *validator.Validate
	settings   AssignmentSettings
	log        zerolog.Logger
	newRunID   func() string
	now        func() time.Time
}

// NewAssignmentUseCase creates a new assignment use case. history may be nil to
// disable run recording.
func NewAssignmentUseCase(
	controller repository.ControllerRepository,
	history repository.HistoryRepository,
	siteNames *SiteNameCache,
	console types.ConsoleInterface,
	settings AssignmentSettings,
	log zerolog.Logger,
) *AssignmentUseCase {
	if settings.BatchSize <= 0 {
		settings.BatchSize = types.DefaultBatchSize
	}
	log = logger.WithComponent(log, "assignment")

	return &AssignmentUseCase{
		controller: controller,
		history:    history,
		console:    console,
		discovery:  NewProfileDiscovery(controller, siteNames, settings.BatchSize, log),
		syncer:     NewProfileSyncer(controller, settings.CallTimeout, log),
		siteNames:  siteNames,
		validate:   newSpecValidator(),
		settings:   settings,
		log:        log,
		newRunID:   uuid.NewString,
		now:        time.Now,
	}
}

// PreviewProfilesForSites lists the profiles a WLAN would reach, without side effects.
func (uc *AssignmentUseCase) PreviewProfilesForSites(ctx context.Context, siteIDs []string) []entity.Profile {
	return uc.discovery.PreviewProfilesForSites(ctx, siteIDs)
}

// CreateWLANWithAutoAssignment creates the service and assigns it to every
// profile found at the selected sites.
//
// Only spec validation and service creation return an error; from then on
// failures are captured per profile in the response.
func (uc *AssignmentUseCase) CreateWLANWithAutoAssignment(
	ctx context.Context,
	spec entity.ServiceSpec,
	opts entity.AssignmentOptions,
) (*entity.AutoAssignmentResponse, error) {
	if err := validateServiceSpec(uc.validate, spec); err != nil {
		return nil, err
	}

	runID := uc.newRunID()
	log := uc.log.With().Str("run_id", runID).Str("service", spec.Name).Logger()
	startedAt := uc.now()

	svc, err := uc.createService(ctx, spec, log)
	if err != nil {
		return nil, err
	}

	status := uc.console.Status(fmt.Sprintf("Discovering profiles for %d sites...", len(spec.Sites)))
	discovery := uc.discovery.DiscoverSites(ctx, spec.Sites)
	profiles := DeduplicateProfiles(discovery.Flatten())
	status.Stop()
	uc.warnEmptySites(ctx, discovery)

	log.Info().
		Int("sites", len(discovery.SiteIDs)).
		Int("device_groups", discovery.DeviceGroups).
		Int("profiles", len(profiles)).
		Msg("profiles discovered")

	resp := &entity.AutoAssignmentResponse{
		RunID:             runID,
		ServiceID:         svc.ID,
		ServiceName:       serviceName(svc, spec),
		SitesProcessed:    len(discovery.SiteIDs),
		DeviceGroupsFound: discovery.DeviceGroups,
		DryRun:            opts.DryRun,
		StartedAt:         startedAt,
	}

	if opts.DryRun {
		resp.AssignmentResults = dryRunResults(profiles)
		resp.Success = true
	} else {
		out := uc.assignAndSync(ctx, svc.ID, profiles, opts.SkipSync)
		resp.AssignmentResults = out.assignments
		resp.SyncResults = out.syncs
		resp.ProfilesAssigned = out.assigned
		resp.Success = out.failed == 0
		resp.Errors = out.errors
	}
	resp.FinishedAt = uc.now()

	log.Info().
		Int("assigned", resp.ProfilesAssigned).
		Int("failed", resp.FailedCount()).
		Bool("dry_run", resp.DryRun).
		Msg("auto assignment finished")

	uc.recordRun(runRecord{
		mode:        entity.RunModeAuto,
		spec:        spec,
		serviceID:   resp.ServiceID,
		assignments: resp.AssignmentResults,
		syncs:       resp.SyncResults,
		dryRun:      resp.DryRun,
		success:     resp.Success,
		errors:      resp.Errors,
		runID:       runID,
		assigned:    resp.ProfilesAssigned,
		startedAt:   resp.StartedAt,
		finishedAt:  resp.FinishedAt,
	})

	return resp, nil
}

// CreateWLANWithSiteCentricDeployment validates every site configuration and,
// only when all of them are valid, creates the service and assigns it to the
// union of the per-site effective profile sets.
func (uc *AssignmentUseCase) CreateWLANWithSiteCentricDeployment(
	ctx context.Context,
	spec entity.ServiceSpec,
	siteConfigs []entity.SiteDeploymentConfig,
	opts entity.AssignmentOptions,
) (*entity.SiteCentricResponse, error) {
	if len(siteConfigs) == 0 {
		return nil, types.ErrNoSitesSelected
	}

	configs := append([]entity.SiteDeploymentConfig(nil), siteConfigs...)
	if len(spec.Sites) == 0 {
		spec.Sites = siteIDsOf(configs)
	}
	if err := validateServiceSpec(uc.validate, spec); err != nil {
		return nil, err
	}

	runID := uc.newRunID()
	log := uc.log.With().Str("run_id", runID).Str("service", spec.Name).Logger()
	startedAt := uc.now()

	// Descoberta é somente leitura; nada é alterado antes da validação completa.
	status := uc.console.Status("Resolving profiles for each site...")
	discovery := uc.fillSiteProfiles(ctx, configs)
	status.Stop()
	uc.warnEmptySites(ctx, discovery)

	if err := ValidateSiteAssignments(configs); err != nil {
		log.Warn().Err(err).Msg("site deployment rejected")
		return nil, err
	}

	svc, err := uc.createService(ctx, spec, log)
	if err != nil {
		return nil, err
	}

	var selected []entity.Profile
	sets := make([]entity.EffectiveProfileSet, 0, len(configs))
	for _, c := range configs {
		set := CalculateEffectiveSet(c, c.Profiles)
		sets = append(sets, set)

		byID := indexProfiles(c.Profiles)
		for _, id := range set.ProfileIDs {
			selected = append(selected, byID[id])
		}
	}
	profiles := DeduplicateProfiles(selected)

	resp := &entity.SiteCentricResponse{
		RunID:             runID,
		ServiceID:         svc.ID,
		ServiceName:       serviceName(svc, spec),
		SitesProcessed:    len(uniqueStrings(siteIDsOf(configs))),
		DeviceGroupsFound: discovery.DeviceGroups,
		EffectiveSets:     sets,
		DryRun:            opts.DryRun,
		StartedAt:         startedAt,
	}

	if opts.DryRun {
		resp.AssignmentResults = dryRunResults(profiles)
		resp.Success = true
	} else {
		out := uc.assignAndSync(ctx, svc.ID, profiles, opts.SkipSync)
		resp.AssignmentResults = out.assignments
		resp.SyncResults = out.syncs
		resp.ProfilesAssigned = out.assigned
		resp.Success = out.failed == 0
		resp.Errors = out.errors
	}
	resp.FinishedAt = uc.now()

	log.Info().
		Int("sites", resp.SitesProcessed).
		Int("assigned", resp.ProfilesAssigned).
		Int("failed", resp.FailedCount()).
		Msg("site-centric deployment finished")

	uc.recordRun(runRecord{
		mode:        entity.RunModeSiteCentric,
		spec:        spec,
		serviceID:   resp.ServiceID,
		assignments: resp.AssignmentResults,
		syncs:       resp.SyncResults,
		dryRun:      resp.DryRun,
		success:     resp.Success,
		errors:      resp.Errors,
		runID:       runID,
		assigned:    resp.ProfilesAssigned,
		startedAt:   resp.StartedAt,
		finishedAt:  resp.FinishedAt,
	})

	return resp, nil
}

// SiteEvaluation is the live feedback for one site of a deployment plan.
type SiteEvaluation struct {
	Config     entity.SiteDeploymentConfig
	Effective  entity.EffectiveProfileSet
	Validation entity.ValidationResult
}

// EvaluateSiteAssignments discovers missing profiles and computes the effective
// set and validation of every site, without touching the controller state.
func (uc *AssignmentUseCase) EvaluateSiteAssignments(ctx context.Context, siteConfigs []entity.SiteDeploymentConfig) []SiteEvaluation {
	configs := append([]entity.SiteDeploymentConfig(nil), siteConfigs...)
	uc.warnEmptySites(ctx, uc.fillSiteProfiles(ctx, configs))

	out := make([]SiteEvaluation, 0, len(configs))
	for _, c := range configs {
		out = append(out, SiteEvaluation{
			Config:     c,
			Effective:  CalculateEffectiveSet(c, c.Profiles),
			Validation: ValidateSiteAssignment(c),
		})
	}
	return out
}

// AssignToProfiles assigns serviceID to every profile in batches of
// settings.BatchSize. A failing profile never stops the others; results keep
// the order of profiles.
func (uc *AssignmentUseCase) AssignToProfiles(ctx context.Context, serviceID string, profiles []entity.Profile) []entity.AssignmentResult {
	if len(profiles) == 0 {
		return []entity.AssignmentResult{}
	}

	progress := uc.console.ProgressWithTotal(len(profiles))
	defer progress.Stop()

	return runInBatches(ctx, profiles, uc.settings.BatchSize,
		func(ctx context.Context, p entity.Profile) entity.AssignmentResult {
			return uc.assignOne(ctx, serviceID, p)
		},
		failedAssignment,
		func(done []entity.AssignmentResult) {
			for range done {
				progress.Increment()
			}
		},
	)
}

func (uc *AssignmentUseCase) assignOne(ctx context.Context, serviceID string, p entity.Profile) entity.AssignmentResult {
	callCtx := ctx
	if uc.settings.CallTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, uc.settings.CallTimeout)
		defer cancel()
	}

	err := uc.controller.AssignServiceToProfile(callCtx, serviceID, p.ID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			err = fmt.Errorf("assignment timed out after %s: %w", uc.settings.CallTimeout, err)
		}
		uc.log.Warn().Err(err).Str("profile_id", p.ID).Str("service_id", serviceID).Msg("profile assignment failed")
		return failedAssignment(p, err)
	}

	return entity.AssignmentResult{ProfileID: p.ID, ProfileName: p.DisplayName(), Success: true}
}

type workflowOutcome struct {
	assignments []entity.AssignmentResult
	syncs       []entity.SyncResult
	assigned    int
	failed      int
	errors      []string
}

func (uc *AssignmentUseCase) assignAndSync(ctx context.Context, serviceID string, profiles []entity.Profile, skipSync bool) workflowOutcome {
	out := workflowOutcome{assignments: uc.AssignToProfiles(ctx, serviceID, profiles)}

	var assignedIDs []string
	for _, r := range out.assignments {
		if r.Success {
			out.assigned++
			assignedIDs = append(assignedIDs, r.ProfileID)
			continue
		}
		out.failed++
		out.errors = append(out.errors, fmt.Sprintf("assign %s: %s", labelOf(r.ProfileName, r.ProfileID), r.Error))
	}

	if skipSync || len(assignedIDs) == 0 {
		return out
	}

	status := uc.console.Status(fmt.Sprintf("Synchronizing %d profiles...", len(assignedIDs)))
	out.syncs = uc.syncer.SyncProfiles(ctx, assignedIDs)
	status.Stop()

	for _, s := range out.syncs {
		if !s.Success {
			out.errors = append(out.errors, fmt.Sprintf("sync %s: %s", s.ProfileID, s.Error))
		}
	}

	return out
}

func (uc *AssignmentUseCase) createService(ctx context.Context, spec entity.ServiceSpec, log zerolog.Logger) (entity.Service, error) {
	status := uc.console.Status(fmt.Sprintf("Creating service %s...", spec.Name))
	defer status.Stop()

	svc, err := uc.controller.CreateService(ctx, spec)
	if err != nil {
		log.Error().Err(err).Msg("service creation failed")
		return entity.Service{}, fmt.Errorf("failed to create service %q: %w", spec.Name, err)
	}

	log.Info().Str("service_id", svc.ID).Msg("service created")
	return svc, nil
}

// fillSiteProfiles discovers profiles for the configs that carry none and
// returns that discovery; configs with explicit profiles are not part of it.
func (uc *AssignmentUseCase) fillSiteProfiles(ctx context.Context, configs []entity.SiteDeploymentConfig) Discovery {
	var missing []string
	for _, c := range configs {
		if c.Profiles == nil {
			missing = append(missing, c.SiteID)
		}
	}

	var discovery Discovery
	if len(missing) > 0 {
		discovery = uc.discovery.DiscoverSites(ctx, missing)
	}

	for i := range configs {
		if configs[i].Profiles == nil {
			configs[i].Profiles = discovery.BySite[configs[i].SiteID]
		}
		if configs[i].SiteName == "" {
			configs[i].SiteName = uc.siteNames.Resolve(ctx, configs[i].SiteID)
		}
	}
	return discovery
}

func (uc *AssignmentUseCase) warnEmptySites(ctx context.Context, d Discovery) {
	for _, id := range d.SiteIDs {
		if len(d.BySite[id]) == 0 {
			uc.console.LogWarning("No profiles discovered for site %s", uc.siteNames.Resolve(ctx, id))
		}
	}
}

type runRecord struct {
	mode        string
	runID       string
	spec        entity.ServiceSpec
	serviceID   string
	assignments []entity.AssignmentResult
	syncs       []entity.SyncResult
	assigned    int
	dryRun      bool
	success     bool
	errors      []string
	startedAt   time.Time
	finishedAt  time.Time
}

// recordRun guarda o resumo da execução; falhas aqui nunca afetam o resultado.
func (uc *AssignmentUseCase) recordRun(r runRecord) {
	if uc.history == nil {
		return
	}

	syncFailures := 0
	for _, s := range r.syncs {
		if !s.Success {
			syncFailures++
		}
	}

	record := entity.RunRecord{
		RunID:            r.runID,
		Mode:             r.mode,
		ServiceID:        r.serviceID,
		ServiceName:      r.spec.Name,
		Sites:            r.spec.Sites,
		ProfilesTotal:    len(r.assignments),
		ProfilesAssigned: r.assigned,
		ProfilesFailed:   countFailedAssignments(r.assignments),
		SyncFailures:     syncFailures,
		DryRun:           r.dryRun,
		Success:          r.success,
		Errors:           r.errors,
		StartedAt:        r.startedAt,
		FinishedAt:       r.finishedAt,
	}

	if err := uc.history.SaveRun(record); err != nil {
		uc.log.Warn().Err(err).Str("run_id", r.runID).Msg("failed to record run history")
		uc.console.LogWarning("Could not save run history: %s", err)
	}
}

func dryRunResults(profiles []entity.Profile) []entity.AssignmentResult {
	results := make([]entity.AssignmentResult, len(profiles))
	for i, p := range profiles {
		results[i] = entity.AssignmentResult{
			ProfileID:   p.ID,
			ProfileName: p.DisplayName(),
			Success:     true,
			Note:        dryRunNote,
		}
	}
	return results
}

func failedAssignment(p entity.Profile, err error) entity.AssignmentResult {
	return entity.AssignmentResult{
		ProfileID:   p.ID,
		ProfileName: p.DisplayName(),
		Success:     false,
		Error:       err.Error(),
	}
}

func countFailedAssignments(results []entity.AssignmentResult) int {
	n := 0
	for _, r := range results {
		if !r.Success {
			n++
		}
	}
	return n
}

func indexProfiles(profiles []entity.Profile) map[string]entity.Profile {
	idx := make(map[string]entity.Profile, len(profiles))
	for _, p := range profiles {
		if _, ok := idx[p.ID]; !ok {
			idx[p.ID] = p
		}
	}
	return idx
}

func siteIDsOf(configs []entity.SiteDeploymentConfig) []string {
	ids := make([]string, 0, len(configs))
	for _, c := range configs {
		ids = append(ids, c.SiteID)
	}
	return ids
}

func serviceName(svc entity.Service, spec entity.ServiceSpec) string {
	if svc.Name != "" {
		return svc.Name
	}
	return spec.Name
}

func labelOf(name, id string) string {
	if name != "" && name != id {
		return fmt.Sprintf("%s (%s)", name, id)
	}
	return id
}
