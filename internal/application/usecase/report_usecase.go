package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/domain/repository"
	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
)

// ReportUseCase renders run results on the console, exports them and reads the run history.
type ReportUseCase struct {
	exportRepo repository.ExportRepository
	archive    repository.ArchiveRepository
	history    repository.HistoryRepository
	console    types.ConsoleInterface
}

// NewReportUseCase cria o caso de uso de relatórios. archive e history podem ser nil.
func NewReportUseCase(
	exportRepo repository.ExportRepository,
	archive repository.ArchiveRepository,
	history repository.HistoryRepository,
	console types.ConsoleInterface,
) *ReportUseCase {
	return &ReportUseCase{
		exportRepo: exportRepo,
		archive:    archive,
		history:    history,
		console:    console,
	}
}

// DisplayAssignmentResults mostra a tabela de perfis, o painel de resumo e os erros da execução.
func (uc *ReportUseCase) DisplayAssignmentResults(report *entity.AutoAssignmentResponse) {
	syncs := make(map[string]entity.SyncResult, len(report.SyncResults))
	for _, s := range report.SyncResults {
		syncs[s.ProfileID] = s
	}

	if len(report.AssignmentResults) > 0 {
		table := uc.console.CreateTable()
		table.AddColumn("Profile ID")
		table.AddColumn("Profile Name")
		table.AddColumn("Assignment")
		table.AddColumn("Sync")

		for _, a := range report.AssignmentResults {
			table.AddRow(a.ProfileID, a.ProfileName, assignmentCell(a, report.DryRun), syncCell(syncs, a.ProfileID))
		}
		uc.console.Print(table.Render())
	}

	uc.console.DisplayAssignmentSummary(summaryOf(report))

	for _, e := range report.Errors {
		uc.console.LogError("%s", e)
	}

	switch {
	case report.DryRun:
		uc.console.LogInfo("%s", report.Summary())
	case report.Success:
		uc.console.LogSuccess("%s", report.Summary())
	default:
		uc.console.LogWarning("%s", report.Summary())
	}
}

// ExportReports grava o relatório em cada formato pedido e, se houver archive, envia os arquivos.
// Falhas são exibidas no console e não interrompem os demais formatos.
func (uc *ReportUseCase) ExportReports(ctx context.Context, report *entity.AutoAssignmentResponse, cfg types.ReportConfig) []string {
	if cfg.Name == "" || len(cfg.Types) == 0 {
		return nil
	}

	var paths []string
	for _, reportType := range cfg.Types {
		var (
			path string
			err  error
		)

		switch strings.ToLower(reportType) {
		case "csv":
			path, err = uc.exportRepo.ExportAssignmentReportToCSV(report, cfg.Name, cfg.Dir)
		case "json":
			path, err = uc.exportRepo.ExportAssignmentReportToJSON(report, cfg.Name, cfg.Dir)
		case "pdf":
			path, err = uc.exportRepo.ExportAssignmentReportToPDF(report, cfg.Name, cfg.Dir)
		default:
			uc.console.LogWarning("Unsupported report type: %s", reportType)
			continue
		}

		label := strings.ToUpper(reportType)
		if err != nil {
			uc.console.LogError("Failed to export to %s: %s", label, err)
			continue
		}
		uc.console.LogSuccess("Successfully exported to %s: %s", label, path)
		paths = append(paths, path)
	}

	if uc.archive == nil {
		return paths
	}

	for _, path := range paths {
		location, err := uc.archive.Upload(ctx, path)
		if err != nil {
			uc.console.LogError("Failed to archive report: %s", err)
			continue
		}
		uc.console.LogSuccess("Report archived to %s", location)
	}
	return paths
}

// DisplayPreview lista os perfis que receberiam o serviço.
func (uc *ReportUseCase) DisplayPreview(profiles []entity.Profile) {
	if len(profiles) == 0 {
		uc.console.LogWarning("No profiles found for the selected sites")
		return
	}

	table := uc.console.CreateTable()
	table.AddColumn("Site")
	table.AddColumn("Device Group")
	table.AddColumn("Profile ID")
	table.AddColumn("Profile Name")
	for _, p := range profiles {
		table.AddRow(labelOf(p.SiteName, p.SiteID), p.DeviceGroupID, p.ID, p.Name)
	}
	uc.console.Print(table.Render())
	uc.console.LogInfo("%d profiles would receive the service", len(profiles))
}

// DisplayEvaluations mostra o conjunto efetivo e a validação de cada site do plano.
// Retorna false quando algum site é inválido.
func (uc *ReportUseCase) DisplayEvaluations(evaluations []SiteEvaluation) bool {
	table := uc.console.CreateTable()
	table.AddColumn("Site")
	table.AddColumn("Mode")
	table.AddColumn("Discovered")
	table.AddColumn("Effective")
	table.AddColumn("Status")

	valid := true
	for _, ev := range evaluations {
		status := pterm.FgGreen.Sprint("valid")
		if !ev.Validation.Valid {
			valid = false
			status = pterm.FgRed.Sprint(strings.Join(ev.Validation.Errors, "\n"))
		}
		table.AddRow(
			labelOf(ev.Config.SiteName, ev.Config.SiteID),
			string(ev.Config.DeploymentMode),
			len(ev.Config.Profiles),
			strings.Join(ev.Effective.ProfileIDs, "\n"),
			status,
		)
	}
	uc.console.Print(table.Render())

	if valid {
		uc.console.LogSuccess("All %d sites are valid", len(evaluations))
	} else {
		uc.console.LogError("Deployment plan has invalid sites")
	}
	return valid
}

// DisplayHistory lista as execuções mais recentes.
func (uc *ReportUseCase) DisplayHistory(limit int) error {
	if uc.history == nil {
		return types.ErrHistoryDisabled
	}

	runs, err := uc.history.ListRuns(limit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		uc.console.LogInfo("No runs recorded yet")
		return nil
	}

	table := uc.console.CreateTable()
	table.AddColumn("Run ID")
	table.AddColumn("Started")
	table.AddColumn("Mode")
	table.AddColumn("Service")
	table.AddColumn("Profiles")
	table.AddColumn("Result")
	for _, r := range runs {
		table.AddRow(
			r.RunID,
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.Mode,
			labelOf(r.ServiceName, r.ServiceID),
			fmt.Sprintf("%d/%d", r.ProfilesAssigned, r.ProfilesTotal),
			runResultCell(r),
		)
	}
	uc.console.Print(table.Render())
	return nil
}

// DisplayRun mostra o detalhe de uma execução.
func (uc *ReportUseCase) DisplayRun(runID string) error {
	if uc.history == nil {
		return types.ErrHistoryDisabled
	}

	r, err := uc.history.GetRun(runID)
	if err != nil {
		return fmt.Errorf("failed to load run %s: %w", runID, err)
	}

	table := uc.console.CreateTable()
	table.AddColumn("Field")
	table.AddColumn("Value")
	table.AddRow("Run ID", r.RunID)
	table.AddRow("Mode", r.Mode)
	table.AddRow("Service", labelOf(r.ServiceName, r.ServiceID))
	table.AddRow("Sites", strings.Join(r.Sites, ", "))
	table.AddRow("Profiles", fmt.Sprintf("%d assigned, %d failed, %d total", r.ProfilesAssigned, r.ProfilesFailed, r.ProfilesTotal))
	table.AddRow("Sync failures", r.SyncFailures)
	table.AddRow("Started", r.StartedAt.Local().Format(time.RFC3339))
	table.AddRow("Duration", r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	table.AddRow("Result", runResultCell(r))
	uc.console.Print(table.Render())

	for _, e := range r.Errors {
		uc.console.LogError("%s", e)
	}
	return nil
}

func summaryOf(report *entity.AutoAssignmentResponse) types.AssignmentSummary {
	s := types.AssignmentSummary{
		Title:        report.Summary(),
		Assigned:     report.ProfilesAssigned,
		Failed:       report.FailedCount(),
		Sites:        report.SitesProcessed,
		DeviceGroups: report.DeviceGroupsFound,
		DryRun:       report.DryRun,
	}
	for _, r := range report.SyncResults {
		if r.Success {
			s.Synced++
		} else {
			s.SyncFailed++
		}
	}
	return s
}

func assignmentCell(a entity.AssignmentResult, dryRun bool) string {
	switch {
	case dryRun:
		return pterm.FgCyan.Sprint("dry run")
	case a.Success:
		return pterm.FgGreen.Sprint("assigned")
	}
	return pterm.FgRed.Sprint("failed: " + a.Error)
}

func syncCell(syncs map[string]entity.SyncResult, profileID string) string {
	s, ok := syncs[profileID]
	switch {
	case !ok:
		return "-"
	case s.Success:
		return pterm.FgGreen.Sprint("synced")
	}
	return pterm.FgRed.Sprint("failed: " + s.Error)
}

func runResultCell(r entity.RunRecord) string {
	switch {
	case r.DryRun:
		return pterm.FgCyan.Sprint("dry run")
	case r.Success:
		return pterm.FgGreen.Sprint("success")
	}
	return pterm.FgYellow.Sprint("partial")
}
