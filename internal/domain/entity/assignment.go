package entity

import (
	"fmt"
	"time"
)

// AssignmentOptions controla o caminho simples de atribuição.
type AssignmentOptions struct {
	DryRun   bool
	SkipSync bool
}

// AssignmentResult is the outcome of assigning the service to one profile.
type AssignmentResult struct {
	ProfileID   string `json:"profile_id"`
	ProfileName string `json:"profile_name,omitempty"`
	Success     bool   `json:"success"`
	Error       string `json:"error,omitempty"`
	Note        string `json:"note,omitempty"`
}

// SyncResult is the outcome of pushing one profile to its devices.
type SyncResult struct {
	ProfileID string     `json:"profile_id"`
	Success   bool       `json:"success"`
	Error     string     `json:"error,omitempty"`
	SyncedAt  *time.Time `json:"synced_at,omitempty"`
}

// AutoAssignmentResponse é o artefato final do fluxo de auto-atribuição.
type AutoAssignmentResponse struct {
	RunID             string             `json:"run_id"`
	ServiceID         string             `json:"service_id"`
	ServiceName       string             `json:"service_name,omitempty"`
	SitesProcessed    int                `json:"sites_processed"`
	DeviceGroupsFound int                `json:"device_groups_found"`
	ProfilesAssigned  int                `json:"profiles_assigned"`
	AssignmentResults []AssignmentResult `json:"assignment_results"`
	SyncResults       []SyncResult       `json:"sync_results,omitempty"`
	Success           bool               `json:"success"`
	Errors            []string           `json:"errors,omitempty"`
	DryRun            bool               `json:"dry_run,omitempty"`
	StartedAt         time.Time          `json:"started_at"`
	FinishedAt        time.Time          `json:"finished_at"`
}

// FailedCount returns how many assignments failed.
func (r *AutoAssignmentResponse) FailedCount() int {
	return countFailed(r.AssignmentResults)
}

// Summary renders the partial-success message shown to operators.
func (r *AutoAssignmentResponse) Summary() string {
	return summarize(r.ProfilesAssigned, len(r.AssignmentResults), r.DryRun)
}

// SiteCentricResponse is returned by the per-site deployment path.
type SiteCentricResponse struct {
	RunID             string                `json:"run_id"`
	ServiceID         string                `json:"service_id"`
	ServiceName       string                `json:"service_name,omitempty"`
	SitesProcessed    int                   `json:"sites_processed"`
	DeviceGroupsFound int                   `json:"device_groups_found"`
	ProfilesAssigned  int                   `json:"profiles_assigned"`
	EffectiveSets     []EffectiveProfileSet `json:"effective_sets,omitempty"`
	AssignmentResults []AssignmentResult    `json:"assignment_results"`
	SyncResults       []SyncResult          `json:"sync_results,omitempty"`
	Success           bool                  `json:"success"`
	Errors            []string              `json:"errors,omitempty"`
	DryRun            bool                  `json:"dry_run,omitempty"`
	StartedAt         time.Time             `json:"started_at"`
	FinishedAt        time.Time             `json:"finished_at"`
}

// FailedCount returns how many assignments failed.
func (r *SiteCentricResponse) FailedCount() int {
	return countFailed(r.AssignmentResults)
}

// Summary renders the partial-success message shown to operators.
func (r *SiteCentricResponse) Summary() string {
	return summarize(r.ProfilesAssigned, len(r.AssignmentResults), r.DryRun)
}

// AsAutoAssignment converte a resposta site-centric para o formato comum de relatório.
func (r *SiteCentricResponse) AsAutoAssignment() *AutoAssignmentResponse {
	return &AutoAssignmentResponse{
		RunID:             r.RunID,
		ServiceID:         r.ServiceID,
		ServiceName:       r.ServiceName,
		SitesProcessed:    r.SitesProcessed,
		DeviceGroupsFound: r.DeviceGroupsFound,
		ProfilesAssigned:  r.ProfilesAssigned,
		AssignmentResults: r.AssignmentResults,
		SyncResults:       r.SyncResults,
		Success:           r.Success,
		Errors:            r.Errors,
		DryRun:            r.DryRun,
		StartedAt:         r.StartedAt,
		FinishedAt:        r.FinishedAt,
	}
}

func countFailed(results []AssignmentResult) int {
	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	return failed
}

func summarize(assigned, total int, dryRun bool) string {
	if dryRun {
		return fmt.Sprintf("Dry run: %d profiles would receive the service", total)
	}
	return fmt.Sprintf("%d of %d profiles assigned", assigned, total)
}
