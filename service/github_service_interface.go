package service

import "context"

// GitHubServiceInterface defines the contract for the remote content store (GitHub
// Contents API). Errors from these methods are transport-level only; HTTP statuses are
// returned to the caller for classification.
type GitHubServiceInterface interface {
	// CheckAuth performs the lightweight identity pre-flight (GET /user).
	CheckAuth(ctx context.Context) (int, error)
	// GetContentSHA fetches the current revision marker for a repository path.
	// sha is non-empty only when the path exists (HTTP 200).
	GetContentSHA(ctx context.Context, repoPath string) (sha string, status int, err error)
	// PutContent creates or updates the file at repoPath. Passing the sha of the
	// existing file makes it an update; an empty sha makes it a create.
	PutContent(ctx context.Context, repoPath, contentB64, message, sha string) (*PutResult, error)
	// RawURL returns the branch-addressed public URL for a repository path.
	RawURL(repoPath string) string
	// RawURLAtCommit returns the commit-pinned public URL for a repository path.
	RawURLAtCommit(repoPath, commitSHA string) string
}
