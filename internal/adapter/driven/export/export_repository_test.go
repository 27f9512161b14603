package export

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
)

func sampleReport() *entity.AutoAssignmentResponse {
	at := time.Date(2026, 4, 2, 9, 30, 0, 0, time.UTC)
	return &entity.AutoAssignmentResponse{
		RunID:             "run-1",
		ServiceID:         "svc-1",
		ServiceName:       "Corp WiFi",
		SitesProcessed:    2,
		DeviceGroupsFound: 3,
		ProfilesAssigned:  2,
		AssignmentResults: []entity.AssignmentResult{
			{ProfileID: "p1", ProfileName: "Lobby", Success: true},
			{ProfileID: "p2", ProfileName: "Floor 2", Success: false, Error: "PUT /management/v3/profiles/p2: 500"},
			{ProfileID: "p3", ProfileName: "Café", Success: true},
		},
		SyncResults: []entity.SyncResult{
			{ProfileID: "p1", Success: true, SyncedAt: &at},
			{ProfileID: "p3", Success: false, Error: "device offline"},
		},
		Errors:    []string{"assign Floor 2 (p2): 500", "sync p3: device offline"},
		StartedAt: at,
	}
}

func TestExportAssignmentReportToCSV(t *testing.T) {
	dir := t.TempDir()

	path, err := NewExportRepository().ExportAssignmentReportToCSV(sampleReport(), "assignment", dir)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filepath.Base(path), "assignment_"))
	assert.Equal(t, ".csv", filepath.Ext(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "Profile ID", records[0][3])
	assert.Equal(t, []string{"run-1", "svc-1", "Corp WiFi", "p1", "Lobby", "assigned", "", "synced", "", "2026-04-02T09:30:00Z"}, records[1])
	assert.Equal(t, "failed", records[2][5])
	assert.Equal(t, "not synced", records[2][7])
	assert.Equal(t, "sync failed", records[3][7])
	assert.Equal(t, "device offline", records[3][8])
}

func TestExportAssignmentReportToJSON(t *testing.T) {
	dir := t.TempDir()

	path, err := NewExportRepository().ExportAssignmentReportToJSON(sampleReport(), "assignment", dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got entity.AutoAssignmentResponse
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Len(t, got.AssignmentResults, 3)
	assert.Len(t, got.Errors, 2)
}

func TestExportAssignmentReportToPDF(t *testing.T) {
	dir := t.TempDir()
	report := sampleReport()
	report.DryRun = true

	path, err := NewExportRepository().ExportAssignmentReportToPDF(report, "assignment", filepath.Join(dir, "nested"))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF-"))
}

func TestBuildRows_DryRun(t *testing.T) {
	report := &entity.AutoAssignmentResponse{
		DryRun: true,
		AssignmentResults: []entity.AssignmentResult{
			{ProfileID: "p1", Success: true, Note: "dry run: assignment skipped"},
		},
	}

	rows := buildRows(report)

	require.Len(t, rows, 1)
	assert.Equal(t, "dry run", rows[0].Assignment)
	assert.Equal(t, "dry run: assignment skipped", rows[0].Detail)
	assert.Equal(t, "not synced", rows[0].Sync)
}

func TestCleanRichTags(t *testing.T) {
	assert.Equal(t, "failed: timeout", cleanRichTags("[red]failed[/red]: \x1b[1mtimeout\x1b[0m"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))

	cut := truncate("aaaaaaaaaaaaaaaaaaaaéééééééé", 24)
	assert.True(t, utf8.ValidString(cut))
	assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaé...", cut)
	assert.Equal(t, "Sala Reunião", truncate("Sala Reunião", 12))
}
