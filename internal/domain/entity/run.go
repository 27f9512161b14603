package entity

import "time"

// RunRecord é o resumo persistido de uma execução do fluxo.
type RunRecord struct {
	RunID            string    `json:"run_id"`
	Mode             string    `json:"mode"`
	ServiceID        string    `json:"service_id"`
	ServiceName      string    `json:"service_name"`
	Sites            []string  `json:"sites"`
	ProfilesTotal    int       `json:"profiles_total"`
	ProfilesAssigned int       `json:"profiles_assigned"`
	ProfilesFailed   int       `json:"profiles_failed"`
	SyncFailures     int       `json:"sync_failures"`
	DryRun           bool      `json:"dry_run"`
	Success          bool      `json:"success"`
	Errors           []string  `json:"errors,omitempty"`
	StartedAt        time.Time `json:"started_at"`
	FinishedAt       time.Time `json:"finished_at"`
}

// Run modes recorded in history.
const (
	RunModeAuto        = "auto"
	RunModeSiteCentric = "site-centric"
)
