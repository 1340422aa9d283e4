package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultRawBaseURL = "https://raw.githubusercontent.com"
	defaultBranch     = "main"

	// Fixed per-call timeouts, matching the historical client.
	authTimeout = 10 * time.Second
	getTimeout  = 15 * time.Second
	putTimeout  = 30 * time.Second
)

// GitHubConfig holds the settings for the remote content store.
type GitHubConfig struct {
	Token  string
	Owner  string
	Repo   string
	Branch string
	// APIBaseURL and RawBaseURL default to the public GitHub endpoints; tests point
	// them at a local server.
	APIBaseURL string
	RawBaseURL string
}

// PutResult is the decoded outcome of a Contents API write.
type PutResult struct {
	Status    int
	CommitSHA string
	Body      string
}

// GitHubService talks to the GitHub Contents API.
// Implements GitHubServiceInterface
type GitHubService struct {
	cfg    GitHubConfig
	client *http.Client
}

// NewGitHubService creates a new GitHubService from the given configuration
func NewGitHubService(cfg GitHubConfig) *GitHubService {
	if cfg.Branch == "" {
		cfg.Branch = defaultBranch
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.RawBaseURL == "" {
		cfg.RawBaseURL = defaultRawBaseURL
	}
	return &GitHubService{
		cfg:    cfg,
		client: &http.Client{},
	}
}

// Ensure GitHubService implements GitHubServiceInterface
var _ GitHubServiceInterface = (*GitHubService)(nil)

func (g *GitHubService) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "token "+strings.TrimSpace(g.cfg.Token))
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	return req, nil
}

func (g *GitHubService) contentsURL(repoPath string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s", g.cfg.APIBaseURL, g.cfg.Owner, g.cfg.Repo, repoPath)
}

// CheckAuth performs the identity pre-flight against GET /user. Any status other than
// 200 is an authentication failure carrying the response body as diagnostic text.
func (g *GitHubService) CheckAuth(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, authTimeout)
	defer cancel()

	req, err := g.newRequest(ctx, http.MethodGet, g.cfg.APIBaseURL+"/user", nil)
	if err != nil {
		return 0, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("auth test failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, fmt.Errorf("auth test returned %d: %s", resp.StatusCode, string(body))
	}
	return resp.StatusCode, nil
}

// GetContentSHA fetches the revision marker of an existing file. A 404 simply means the
// path does not exist yet; the sha stays empty and the next write is a create.
func (g *GitHubService) GetContentSHA(ctx context.Context, repoPath string) (string, int, error) {
	ctx, cancel := context.WithTimeout(ctx, getTimeout)
	defer cancel()

	req, err := g.newRequest(ctx, http.MethodGet, g.contentsURL(repoPath), nil)
	if err != nil {
		return "", 0, err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("GET %s failed: %w", repoPath, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return "", resp.StatusCode, nil
	}

	var content struct {
		SHA string `json:"sha"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&content); err != nil {
		// An unreadable body on a 200 is treated like a missing marker, not a failure.
		return "", resp.StatusCode, nil
	}
	return content.SHA, resp.StatusCode, nil
}

// PutContent writes base64-encoded content to a repository path, updating in place when
// a sha is supplied.
func (g *GitHubService) PutContent(ctx context.Context, repoPath, contentB64, message, sha string) (*PutResult, error) {
	ctx, cancel := context.WithTimeout(ctx, putTimeout)
	defer cancel()

	payload := map[string]string{
		"message": message,
		"content": contentB64,
	}
	if sha != "" {
		payload["sha"] = sha
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := g.newRequest(ctx, http.MethodPut, g.contentsURL(repoPath), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("PUT %s failed: %w", repoPath, err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	result := &PutResult{Status: resp.StatusCode, Body: string(raw)}

	if resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated {
		var decoded struct {
			Commit struct {
				SHA string `json:"sha"`
			} `json:"commit"`
		}
		if err := json.Unmarshal(raw, &decoded); err == nil {
			result.CommitSHA = decoded.Commit.SHA
		}
	}
	return result, nil
}

// RawURL returns the branch-addressed raw URL for a repository path.
func (g *GitHubService) RawURL(repoPath string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", g.cfg.RawBaseURL, g.cfg.Owner, g.cfg.Repo, g.cfg.Branch, repoPath)
}

// RawURLAtCommit returns a raw URL pinned to the exact commit that wrote the file.
func (g *GitHubService) RawURLAtCommit(repoPath, commitSHA string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", g.cfg.RawBaseURL, g.cfg.Owner, g.cfg.Repo, commitSHA, repoPath)
}
