package repository

import (
	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
)

// HistoryRepository persiste o resumo de cada execução do fluxo.
type HistoryRepository interface {
	SaveRun(record entity.RunRecord) error
	ListRuns(limit int) ([]entity.RunRecord, error)
	GetRun(runID string) (entity.RunRecord, error)
	Close() error
}
