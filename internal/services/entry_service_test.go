package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tracktime-report/internal/clickup"
	"tracktime-report/internal/models"
)

type fakeClickUp struct {
	server           *httptest.Server
	entriesByUser    map[string][]models.TimeEntry
	failingAssignees map[string]bool
	teamRequests     atomic.Int64
	entryRequests    atomic.Int64
}

func newFakeClickUp(t *testing.T) *fakeClickUp {
	t.Helper()
	f := &fakeClickUp{
		entriesByUser:    make(map[string][]models.TimeEntry),
		failingAssignees: make(map[string]bool),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/team", func(w http.ResponseWriter, r *http.Request) {
		f.teamRequests.Add(1)
		resp := map[string]any{
			"teams": []map[string]any{
				{
					"id":   "42",
					"name": "Acme",
					"members": []map[string]any{
						{"user": map[string]any{"id": 1, "username": "Alice"}},
						{"user": map[string]any{"id": 2, "username": "Bob"}},
					},
				},
			},
		}
		_ = json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("/team/42/time_entries", func(w http.ResponseWriter, r *http.Request) {
		f.entryRequests.Add(1)
		assignee := r.URL.Query().Get("assignee")
		if f.failingAssignees[assignee] {
			http.Error(w, "upstream exploded", http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"data": f.entriesByUser[assignee]})
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *fakeClickUp) service(ttl time.Duration) *EntryService {
	client := clickup.NewClient(clickup.Config{
		BaseURL:  f.server.URL,
		APIToken: "pk_test",
	})
	return NewEntryService(client, ttl)
}

func testEntry(id string, userID int, userName string) models.TimeEntry {
	return models.TimeEntry{
		ID:       id,
		User:     models.User{ID: userID, Username: userName},
		Start:    models.RawNumber("1741780800000"),
		End:      models.RawNumber("1741784400000"),
		Duration: models.RawNumber("3600000"),
	}
}

func TestFetchTimeEntriesFansOutPerMember(t *testing.T) {
	fake := newFakeClickUp(t)
	fake.entriesByUser["1"] = []models.TimeEntry{testEntry("a1", 1, "Alice")}
	fake.entriesByUser["2"] = []models.TimeEntry{testEntry("b1", 2, "Bob"), testEntry("b2", 2, "Bob")}

	entries, err := fake.service(time.Minute).FetchTimeEntries(context.Background(), "", 0, 1, "")
	require.NoError(t, err)

	assert.Len(t, entries, 3)
	ids := make(map[string]bool)
	for _, e := range entries {
		ids[e.ID] = true
	}
	assert.True(t, ids["a1"] && ids["b1"] && ids["b2"])
}

func TestFetchTimeEntriesSwallowsSingleMemberFailure(t *testing.T) {
	fake := newFakeClickUp(t)
	fake.entriesByUser["1"] = []models.TimeEntry{testEntry("a1", 1, "Alice")}
	fake.failingAssignees["2"] = true

	entries, err := fake.service(time.Minute).FetchTimeEntries(context.Background(), "42", 0, 1, "")
	require.NoError(t, err, "a single member's failure must not fail the batch")

	require.Len(t, entries, 1)
	assert.Equal(t, "a1", entries[0].ID)
}

func TestFetchTimeEntriesDeduplicatesByID(t *testing.T) {
	fake := newFakeClickUp(t)
	shared := testEntry("dup", 1, "Alice")
	fake.entriesByUser["1"] = []models.TimeEntry{shared, testEntry("a2", 1, "Alice")}
	overwrite := testEntry("dup", 2, "Bob")
	overwrite.Description = "from second member"
	fake.entriesByUser["2"] = []models.TimeEntry{overwrite}

	entries, err := fake.service(time.Minute).FetchTimeEntries(context.Background(), "42", 0, 1, "")
	require.NoError(t, err)

	require.Len(t, entries, 2)
	// Last write wins, first-seen position is kept.
	assert.Equal(t, "dup", entries[0].ID)
	assert.Equal(t, "from second member", entries[0].Description)
	assert.Equal(t, "a2", entries[1].ID)
}

func TestFetchTimeEntriesSingleAssignee(t *testing.T) {
	fake := newFakeClickUp(t)
	fake.entriesByUser["7"] = []models.TimeEntry{testEntry("x1", 7, "Carol")}

	entries, err := fake.service(time.Minute).FetchTimeEntries(context.Background(), "42", 0, 1, "7")
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "x1", entries[0].ID)
}

func TestFetchTimeEntriesUsesCache(t *testing.T) {
	fake := newFakeClickUp(t)
	fake.entriesByUser["7"] = []models.TimeEntry{testEntry("x1", 7, "Carol")}
	svc := fake.service(time.Minute)

	_, err := svc.FetchTimeEntries(context.Background(), "42", 0, 1, "7")
	require.NoError(t, err)
	_, err = svc.FetchTimeEntries(context.Background(), "42", 0, 1, "7")
	require.NoError(t, err)

	assert.Equal(t, int64(1), fake.entryRequests.Load(), "second call must be served from cache")
}

func TestFetchTimeEntriesPropagatesMemberListFailure(t *testing.T) {
	fake := newFakeClickUp(t)
	fake.server.Close() // everything upstream is down

	_, err := fake.service(time.Minute).FetchTimeEntries(context.Background(), "", 0, 1, "")
	assert.Error(t, err)
}
