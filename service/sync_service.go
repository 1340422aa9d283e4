package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"wce-catalog/models"
)

const (
	// The existence check is retried a small fixed number of times on transient
	// failure (transport error or HTTP 500), with a short pause between attempts.
	// The final write is never retried.
	fetchMaxAttempts = 2
	fetchRetryDelay  = time.Second
)

// SyncService replicates locally written files to the remote content store using
// optimistic-concurrency writes: fetch the current revision marker for the path, then
// write carrying that marker (update) or without one (create). There is no rollback and
// no reconciliation loop; a failed write leaves the remote stale and is surfaced as a
// warning only.
// Implements SyncServiceInterface
type SyncService struct {
	github     GitHubServiceInterface
	retryDelay time.Duration
}

// NewSyncService creates a new SyncService. A nil GitHubService disables remote sync:
// every call reports Synced=false without touching the network.
func NewSyncService(github GitHubServiceInterface) *SyncService {
	return &SyncService{
		github:     github,
		retryDelay: fetchRetryDelay,
	}
}

// Ensure SyncService implements SyncServiceInterface
var _ SyncServiceInterface = (*SyncService)(nil)

// SyncFile uploads the file at localPath to repoPath in the remote store.
// Call sequence: auth pre-flight → fetch existing revision marker (retried) → build
// base64 payload → write → report. Authentication failure short-circuits before any
// content operation.
func (s *SyncService) SyncFile(ctx context.Context, localPath, repoPath, message string) models.SyncResult {
	if s.github == nil {
		return models.SyncResult{Detail: "remote sync disabled"}
	}

	log.Printf("🔄 Syncing %s -> %s", localPath, repoPath)

	if status, err := s.github.CheckAuth(ctx); err != nil {
		log.Printf("❌ Remote sync auth check failed for %s: %v", repoPath, err)
		return models.SyncResult{Status: status, Detail: fmt.Sprintf("auth check failed: %v", err)}
	}

	content, err := os.ReadFile(localPath)
	if err != nil {
		log.Printf("❌ Remote sync could not read %s: %v", localPath, err)
		return models.SyncResult{Detail: fmt.Sprintf("file read failed: %v", err)}
	}
	contentB64 := base64.StdEncoding.EncodeToString(content)

	sha, fetchErr := s.fetchExistingSHA(ctx, repoPath)
	if fetchErr != nil {
		log.Printf("❌ Remote sync existence check failed for %s: %v", repoPath, fetchErr)
		return models.SyncResult{Detail: fmt.Sprintf("existence check failed: %v", fetchErr)}
	}

	put, err := s.github.PutContent(ctx, repoPath, contentB64, message, sha)
	if err != nil {
		log.Printf("❌ Remote sync write failed for %s: %v", repoPath, err)
		return models.SyncResult{Detail: fmt.Sprintf("write failed: %v", err)}
	}

	if put.Status != http.StatusOK && put.Status != http.StatusCreated {
		log.Printf("⚠️  Remote sync write for %s returned %d: %s", repoPath, put.Status, put.Body)
		return models.SyncResult{Status: put.Status, Detail: put.Body}
	}

	result := models.SyncResult{
		Synced:    true,
		Status:    put.Status,
		CommitSHA: put.CommitSHA,
		RawURL:    s.github.RawURL(repoPath),
	}
	if put.CommitSHA != "" {
		result.RawURL = s.github.RawURLAtCommit(repoPath, put.CommitSHA)
	}

	log.Printf("✅ Synced %s (status %d)", repoPath, put.Status)
	return result
}

// fetchExistingSHA runs the retried existence check. HTTP 500 on the final attempt is
// treated like "no marker": the write still goes out as a create, matching the original
// behavior. Only a transport failure that survives every attempt aborts the sync.
func (s *SyncService) fetchExistingSHA(ctx context.Context, repoPath string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < fetchMaxAttempts; attempt++ {
		sha, status, err := s.github.GetContentSHA(ctx, repoPath)
		if err == nil && status != http.StatusInternalServerError {
			return sha, nil
		}

		lastErr = err
		if err != nil {
			log.Printf("⚠️  Existence check for %s failed (attempt %d/%d): %v", repoPath, attempt+1, fetchMaxAttempts, err)
		} else {
			log.Printf("⚠️  Existence check for %s returned 500 (attempt %d/%d)", repoPath, attempt+1, fetchMaxAttempts)
		}

		if attempt+1 < fetchMaxAttempts {
			time.Sleep(s.retryDelay)
		}
	}

	if lastErr != nil {
		return "", lastErr
	}
	return "", nil
}
