package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/domain/repository"
)

var ErrRunNotFound = errors.New("run not found")

var (
	bucketRuns     = []byte("runs")
	bucketRunIndex = []byte("run_index")
)

// Largura fixa para que a ordem das chaves seja a ordem cronológica.
const keyTimeFormat = "20060102T150405.000000000"

// BoltRepository persiste o histórico de execuções em um arquivo BoltDB.
type BoltRepository struct {
	db *bolt.DB
}

// NewBoltRepository opens or creates the history database at path.
func NewBoltRepository(path string) (repository.HistoryRepository, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open history db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, b := range [][]byte{bucketRuns, bucketRunIndex} {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	return &BoltRepository{db: db}, nil
}

func runKey(record entity.RunRecord) []byte {
	return []byte(record.StartedAt.UTC().Format(keyTimeFormat) + "/" + record.RunID)
}

// SaveRun stores record. Saving the same run id again replaces the previous entry.
func (r *BoltRepository) SaveRun(record entity.RunRecord) error {
	if record.RunID == "" {
		return errors.New("run id is required")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return r.db.Update(func(tx *bolt.Tx) error {
		runs := tx.Bucket(bucketRuns)
		index := tx.Bucket(bucketRunIndex)

		if old := index.Get([]byte(record.RunID)); old != nil {
			if err := runs.Delete(old); err != nil {
				return err
			}
		}

		key := runKey(record)
		if err := runs.Put(key, data); err != nil {
			return err
		}
		return index.Put([]byte(record.RunID), key)
	})
}

// ListRuns returns up to limit runs, newest first. limit <= 0 returns all of them.
func (r *BoltRepository) ListRuns(limit int) ([]entity.RunRecord, error) {
	var records []entity.RunRecord

	err := r.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketRuns).Cursor()
		for k, v := c.Last(); k != nil; k, v = c.Prev() {
			if limit > 0 && len(records) >= limit {
				break
			}
			var rec entity.RunRecord
			if err := json.Unmarshal(v, &rec); err != nil {
				return fmt.Errorf("decode run %s: %w", k, err)
			}
			records = append(records, rec)
		}
		return nil
	})

	return records, err
}

// GetRun fetches a run by id.
func (r *BoltRepository) GetRun(runID string) (entity.RunRecord, error) {
	var rec entity.RunRecord

	err := r.db.View(func(tx *bolt.Tx) error {
		key := tx.Bucket(bucketRunIndex).Get([]byte(runID))
		if key == nil {
			return fmt.Errorf("run %s: %w", runID, ErrRunNotFound)
		}
		data := tx.Bucket(bucketRuns).Get(key)
		if data == nil {
			return fmt.Errorf("run %s: %w", runID, ErrRunNotFound)
		}
		return json.Unmarshal(data, &rec)
	})

	return rec, err
}

func (r *BoltRepository) Close() error {
	return r.db.Close()
}
