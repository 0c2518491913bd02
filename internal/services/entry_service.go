package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"tracktime-report/internal/clickup"
	"tracktime-report/internal/models"
)

// EntryService retrieves time entries from ClickUp, fanning out one request
// per team member when no assignee filter is given. Results are kept in a
// short-lived TTL cache so repeated dashboard loads don't hammer the API.
type EntryService struct {
	client *clickup.Client
	cache  *cache.Cache
}

// NewEntryService creates a new entry service. ttl controls how long fetched
// entry sets stay cached.
func NewEntryService(client *clickup.Client, ttl time.Duration) *EntryService {
	return &EntryService{
		client: client,
		cache:  cache.New(ttl, 2*ttl),
	}
}

// FetchTimeEntries returns the merged time entries for the window [start, end]
// (epoch milliseconds). With an assignee filter a single upstream call is
// made. Without one, every team member is queried concurrently and an
// individual member's failure is treated as zero entries for that member
// rather than failing the whole batch. Duplicate entry ids across member
// responses are collapsed, last write wins.
func (s *EntryService) FetchTimeEntries(ctx context.Context, teamID string, start, end int64, assignee string) ([]models.TimeEntry, error) {
	if teamID == "" {
		id, err := s.client.DefaultWorkspaceID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve default workspace: %w", err)
		}
		teamID = id
	}

	cacheKey := fmt.Sprintf("entries:%s:%d:%d:%s", teamID, start, end, assignee)
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]models.TimeEntry), nil
	}

	var entries []models.TimeEntry
	var err error
	if assignee != "" {
		entries, err = s.client.GetTimeEntries(ctx, teamID, start, end, assignee)
		if err != nil {
			return nil, err
		}
	} else {
		entries, err = s.fetchForAllMembers(ctx, teamID, start, end)
		if err != nil {
			return nil, err
		}
	}

	s.cache.Set(cacheKey, entries, cache.DefaultExpiration)
	return entries, nil
}

// Members returns the team's members, cached under the same TTL.
func (s *EntryService) Members(ctx context.Context, teamID string) ([]models.Member, error) {
	if teamID == "" {
		id, err := s.client.DefaultWorkspaceID(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve default workspace: %w", err)
		}
		teamID = id
	}

	cacheKey := "members:" + teamID
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]models.Member), nil
	}

	members, err := s.client.GetTeamMembers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKey, members, cache.DefaultExpiration)
	return members, nil
}

func (s *EntryService) fetchForAllMembers(ctx context.Context, teamID string, start, end int64) ([]models.TimeEntry, error) {
	members, err := s.Members(ctx, teamID)
	if err != nil {
		return nil, err
	}

	// One slot per member keeps the merge order deterministic even though
	// the requests themselves finish in any order.
	results := make([][]models.TimeEntry, len(members))
	var wg sync.WaitGroup
	for i, member := range members {
		wg.Add(1)
		go func(slot int, userID int) {
			defer wg.Done()
			entries, err := s.client.GetTimeEntries(ctx, teamID, start, end, strconv.Itoa(userID))
			if err != nil {
				log.Printf("WARNING: time entries fetch failed for member %d, treating as empty: %v", userID, err)
				return
			}
			results[slot] = entries
		}(i, member.User.ID)
	}
	wg.Wait()

	// Merge, deduplicating by entry id. A later occurrence of the same id
	// overwrites the earlier one in place, preserving first-seen position.
	seen := make(map[string]int)
	merged := make([]models.TimeEntry, 0)
	for _, memberEntries := range results {
		for _, entry := range memberEntries {
			if idx, ok := seen[entry.ID]; ok {
				merged[idx] = entry
				continue
			}
			seen[entry.ID] = len(merged)
			merged = append(merged, entry)
		}
	}
	return merged, nil
}
