package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// reportRow junta a atribuição e a sincronização de um perfil.
type reportRow struct {
	ProfileID   string
	ProfileName string
	Assignment  string
	Detail      string
	Sync        string
	SyncError   string
	SyncedAt    string
}

func buildRows(report *entity.AutoAssignmentResponse) []reportRow {
	syncs := make(map[string]entity.SyncResult, len(report.SyncResults))
	for _, s := range report.SyncResults {
		syncs[s.ProfileID] = s
	}

	rows := make([]reportRow, 0, len(report.AssignmentResults))
	for _, a := range report.AssignmentResults {
		row := reportRow{
			ProfileID:   a.ProfileID,
			ProfileName: a.ProfileName,
			Assignment:  "assigned",
			Detail:      a.Note,
			Sync:        "not synced",
		}
		switch {
		case report.DryRun:
			row.Assignment = "dry run"
		case !a.Success:
			row.Assignment = "failed"
			row.Detail = a.Error
		}

		if s, ok := syncs[a.ProfileID]; ok {
			row.Sync = "synced"
			if !s.Success {
				row.Sync = "sync failed"
				row.SyncError = s.Error
			}
			if s.SyncedAt != nil {
				row.SyncedAt = s.SyncedAt.Format(time.RFC3339)
			}
		}

		rows = append(rows, row)
	}
	return rows
}

func (r *ExportRepositoryImpl) ExportAssignmentReportToCSV(report *entity.AutoAssignmentResponse, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := []string{
		"Run ID", "Service ID", "Service Name", "Profile ID", "Profile Name",
		"Assignment", "Detail", "Sync", "Sync Error", "Synced At",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range buildRows(report) {
		record := []string{
			report.RunID,
			report.ServiceID,
			report.ServiceName,
			row.ProfileID,
			row.ProfileName,
			row.Assignment,
			cleanRichTags(row.Detail),
			row.Sync,
			cleanRichTags(row.SyncError),
			row.SyncedAt,
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportAssignmentReportToJSON(report *entity.AutoAssignmentResponse, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportAssignmentReportToPDF(report *entity.AutoAssignmentResponse, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{0, 82, 147}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}
	failColor := [3]int{192, 0, 0}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("WLAN Assignment Report | %s", report.StartedAt.Format("2006-01-02 15:04"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	})

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	pdf.AddPage()

	// Cabeçalho
	serviceLabel := report.ServiceName
	if serviceLabel == "" {
		serviceLabel = report.ServiceID
	}
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Assignment Report: %s", truncate(serviceLabel, 70))), "", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Run ID: %s   Service ID: %s", report.RunID, report.ServiceID)), "", 1, "L", true, 0, "")
	pdf.Ln(10)

	sectionTitle("Summary")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	summary := fmt.Sprintf("%s\nSites processed: %d\nDevice groups found: %d\nFailed assignments: %d",
		report.Summary(), report.SitesProcessed, report.DeviceGroupsFound, report.FailedCount())
	pdf.MultiCell(190, 5, tr(summary), "", "L", false)
	pdf.Ln(8)

	sectionTitle("Profiles")
	widths := []float64{40, 55, 25, 70}
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, h := range []string{"Profile ID", "Profile Name", "Assignment", "Sync / Detail"} {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range buildRows(report) {
		detail := row.Sync
		if row.Detail != "" {
			detail = row.Detail
		}
		if row.SyncError != "" {
			detail = row.Sync + ": " + row.SyncError
		}

		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		if row.Assignment == "failed" || row.SyncError != "" {
			pdf.SetTextColor(failColor[0], failColor[1], failColor[2])
		}
		pdf.CellFormat(widths[0], 6, tr(truncate(row.ProfileID, 24)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 6, tr(truncate(row.ProfileName, 32)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, tr(row.Assignment), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, tr(truncate(cleanRichTags(detail), 42)), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(8)

	if len(report.Errors) > 0 {
		sectionTitle("Errors")
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(failColor[0], failColor[1], failColor[2])
		pdf.MultiCell(190, 5, tr(cleanRichTags(strings.Join(report.Errors, "\n"))), "", "L", false)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}

// truncate corta em n runas, nunca no meio de um caractere multibyte.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
