package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGitHub is an httptest-backed stand-in for the Contents API.
type fakeGitHub struct {
	mu          sync.Mutex
	authStatus  int
	getStatuses []int // consumed one per GET on the contents path
	existingSHA string
	authCalls   int
	getCalls    int
	putCalls    int
	lastPutBody map[string]string
	server      *httptest.Server
}

func newFakeGitHub(t *testing.T) *fakeGitHub {
	t.Helper()
	f := &fakeGitHub{authStatus: http.StatusOK}

	mux := http.NewServeMux()
	mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.authCalls++
		w.WriteHeader(f.authStatus)
		w.Write([]byte(`{"login":"tester"}`))
	})
	mux.HandleFunc("/repos/wce/parts/contents/", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		switch r.Method {
		case http.MethodGet:
			status := http.StatusNotFound
			if f.getCalls < len(f.getStatuses) {
				status = f.getStatuses[f.getCalls]
			}
			f.getCalls++
			w.WriteHeader(status)
			if status == http.StatusOK {
				json.NewEncoder(w).Encode(map[string]string{"sha": f.existingSHA})
			}
		case http.MethodPut:
			f.putCalls++
			var body map[string]string
			json.NewDecoder(r.Body).Decode(&body)
			f.lastPutBody = body
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"commit":{"sha":"commit123"}}`))
		}
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeGitHub) service() *GitHubService {
	return NewGitHubService(GitHubConfig{
		Token:      "test-token",
		Owner:      "wce",
		Repo:       "parts",
		APIBaseURL: f.server.URL,
		RawBaseURL: "https://raw.test",
	})
}

// droppedGETTransport fails the first n existence-check requests at the connection
// level before they reach the server; everything else passes through.
type droppedGETTransport struct {
	remaining int
}

func (tr *droppedGETTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method == http.MethodGet && strings.Contains(req.URL.Path, "/contents/") && tr.remaining > 0 {
		tr.remaining--
		return nil, errors.New("connection reset by peer")
	}
	return http.DefaultTransport.RoundTrip(req)
}

// serviceWithDroppedGETs returns a client whose first n content GETs die in transit.
func (f *fakeGitHub) serviceWithDroppedGETs(n int) *GitHubService {
	svc := f.service()
	svc.client.Transport = &droppedGETTransport{remaining: n}
	return svc
}

func newSyncService(github GitHubServiceInterface) *SyncService {
	s := NewSyncService(github)
	s.retryDelay = 0 // no need to sleep in tests
	return s
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSyncFile_CreateWhenPathMissing(t *testing.T) {
	gh := newFakeGitHub(t)
	gh.getStatuses = []int{http.StatusNotFound}
	svc := newSyncService(gh.service())

	res := svc.SyncFile(context.Background(), writeTempFile(t, "[]"), "database/database.json", "update db")

	assert.True(t, res.Synced)
	assert.Equal(t, http.StatusCreated, res.Status)
	assert.Equal(t, "commit123", res.CommitSHA)
	// A create carries no revision marker.
	_, hasSHA := gh.lastPutBody["sha"]
	assert.False(t, hasSHA)
	assert.Equal(t, "update db", gh.lastPutBody["message"])
}

func TestSyncFile_UpdateCarriesFetchedSHA(t *testing.T) {
	gh := newFakeGitHub(t)
	gh.getStatuses = []int{http.StatusOK}
	gh.existingSHA = "abc123"
	svc := newSyncService(gh.service())

	res := svc.SyncFile(context.Background(), writeTempFile(t, "[]"), "database/database.json", "update db")

	assert.True(t, res.Synced)
	assert.Equal(t, "abc123", gh.lastPutBody["sha"])
}

func TestSyncFile_RetriesExistenceCheckOn500(t *testing.T) {
	gh := newFakeGitHub(t)
	gh.getStatuses = []int{http.StatusInternalServerError, http.StatusOK}
	gh.existingSHA = "abc123"
	svc := newSyncService(gh.service())

	res := svc.SyncFile(context.Background(), writeTempFile(t, "[]"), "database/database.json", "update db")

	assert.True(t, res.Synced)
	assert.Equal(t, 2, gh.getCalls)
	assert.Equal(t, "abc123", gh.lastPutBody["sha"])
}

func TestSyncFile_RetriesExistenceCheckOnTransportError(t *testing.T) {
	gh := newFakeGitHub(t)
	gh.getStatuses = []int{http.StatusOK}
	gh.existingSHA = "abc123"
	svc := newSyncService(gh.serviceWithDroppedGETs(1))

	res := svc.SyncFile(context.Background(), writeTempFile(t, "[]"), "database/database.json", "update db")

	assert.True(t, res.Synced)
	// The dropped attempt never reached the server; only the retry did.
	assert.Equal(t, 1, gh.getCalls)
	assert.Equal(t, "abc123", gh.lastPutBody["sha"])
}

func TestSyncFile_TransportFailureOnEveryAttemptAborts(t *testing.T) {
	gh := newFakeGitHub(t)
	svc := newSyncService(gh.serviceWithDroppedGETs(fetchMaxAttempts))

	res := svc.SyncFile(context.Background(), writeTempFile(t, "[]"), "database/database.json", "update db")

	// Unlike a persistent 500, a connection that keeps dying stops the sync
	// before any write is attempted.
	assert.False(t, res.Synced)
	assert.Contains(t, res.Detail, "existence check failed")
	assert.Equal(t, 0, gh.getCalls)
	assert.Equal(t, 0, gh.putCalls)
}

func TestSyncFile_500OnEveryAttemptStillWrites(t *testing.T) {
	gh := newFakeGitHub(t)
	gh.getStatuses = []int{http.StatusInternalServerError, http.StatusInternalServerError}
	svc := newSyncService(gh.service())

	res := svc.SyncFile(context.Background(), writeTempFile(t, "[]"), "database/database.json", "update db")

	// Retried up to the limit, then the write goes out without a marker.
	assert.Equal(t, fetchMaxAttempts, gh.getCalls)
	assert.True(t, res.Synced)
	_, hasSHA := gh.lastPutBody["sha"]
	assert.False(t, hasSHA)
}

func TestSyncFile_AuthFailureShortCircuits(t *testing.T) {
	gh := newFakeGitHub(t)
	gh.authStatus = http.StatusUnauthorized
	svc := newSyncService(gh.service())

	res := svc.SyncFile(context.Background(), writeTempFile(t, "[]"), "database/database.json", "update db")

	assert.False(t, res.Synced)
	assert.Equal(t, http.StatusUnauthorized, res.Status)
	assert.Contains(t, res.Detail, "auth check failed")
	// No content operation is attempted after a failed pre-flight.
	assert.Equal(t, 0, gh.getCalls)
	assert.Equal(t, 0, gh.putCalls)
}

func TestSyncFile_MissingLocalFile(t *testing.T) {
	gh := newFakeGitHub(t)
	svc := newSyncService(gh.service())

	res := svc.SyncFile(context.Background(), filepath.Join(t.TempDir(), "missing.json"), "database/database.json", "update db")

	assert.False(t, res.Synced)
	assert.Contains(t, res.Detail, "file read failed")
	assert.Equal(t, 0, gh.putCalls)
}

func TestSyncFile_DisabledWithoutGitHub(t *testing.T) {
	svc := newSyncService(nil)

	res := svc.SyncFile(context.Background(), "irrelevant", "database/database.json", "update db")

	assert.False(t, res.Synced)
	assert.Equal(t, "remote sync disabled", res.Detail)
}

func TestSyncFile_CommitPinnedRawURL(t *testing.T) {
	gh := newFakeGitHub(t)
	gh.getStatuses = []int{http.StatusNotFound}
	svc := newSyncService(gh.service())

	res := svc.SyncFile(context.Background(), writeTempFile(t, "pdf"), "pdfs/P100.pdf", "add manual")

	require.True(t, res.Synced)
	assert.Equal(t, "https://raw.test/wce/parts/commit123/pdfs/P100.pdf", res.RawURL)
}

func TestGitHubService_RawURLs(t *testing.T) {
	gh := NewGitHubService(GitHubConfig{Owner: "wce", Repo: "parts"})

	assert.Equal(t, "https://raw.githubusercontent.com/wce/parts/main/images/P100.png", gh.RawURL("images/P100.png"))
	assert.Equal(t, "https://raw.githubusercontent.com/wce/parts/abc/images/P100.png", gh.RawURLAtCommit("images/P100.png", "abc"))
}
