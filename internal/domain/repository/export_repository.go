package repository

import (
	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportAssignmentReportToCSV(report *entity.AutoAssignmentResponse, filename, outputDir string) (string, error)
	ExportAssignmentReportToJSON(report *entity.AutoAssignmentResponse, filename, outputDir string) (string, error)
	ExportAssignmentReportToPDF(report *entity.AutoAssignmentResponse, filename, outputDir string) (string, error)
}
