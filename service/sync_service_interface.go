package service

import (
	"context"

	"wce-catalog/models"
)

// SyncServiceInterface defines the contract for best-effort replication of local files
// to the remote content store. SyncFile never returns an error for network failure:
// callers inspect SyncResult.Synced and downgrade a failed sync to a warning, because
// local disk is the source of truth and the remote is a lagging mirror.
type SyncServiceInterface interface {
	SyncFile(ctx context.Context, localPath, repoPath, message string) models.SyncResult
}
