package repository

import "context"

// ArchiveRepository uploads exported report files to long-term storage.
type ArchiveRepository interface {
	Upload(ctx context.Context, localPath string) (string, error)
}
