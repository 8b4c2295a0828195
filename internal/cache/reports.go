// Package cache implements a read-through cache for computed monthly reports.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fguardian/backend/internal/report"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

const (
	DefaultExpiration = 10 * time.Minute
	CleanupInterval   = 20 * time.Minute
)

// Reports caches monthly reports per user, year and month.
//
// Every mutation of a user's transactions or categories must call Invalidate
// for that user. Reports computed concurrently with an invalidation are
// returned to their caller but not stored.
type Reports struct {
	c *cache.Cache

	mu       sync.Mutex
	inFlight map[uuid.UUID]*computation
}

// computation tracks the reports of a user that are being computed.
// Entries only exist while at least one computation is running.
type computation struct {
	generation uint64
	running    int
}

// NewReports returns a report cache whose entries expire after ttl.
// A ttl of zero uses DefaultExpiration.
func NewReports(ttl time.Duration) *Reports {
	if ttl == 0 {
		ttl = DefaultExpiration
	}

	cleanup := CleanupInterval
	if 2*ttl > cleanup {
		cleanup = 2 * ttl
	}

	return &Reports{
		c:        cache.New(ttl, cleanup),
		inFlight: make(map[uuid.UUID]*computation),
	}
}

func key(userID uuid.UUID, year int, month time.Month) string {
	return fmt.Sprintf("%s/%04d-%02d", userID, year, month)
}

// Get returns the cached report if there is one.
func (r *Reports) Get(userID uuid.UUID, year int, month time.Month) (report.Monthly, bool) {
	v, found := r.c.Get(key(userID, year, month))
	if !found {
		return report.Monthly{}, false
	}

	return v.(report.Monthly), true
}

// GetOrCompute returns the cached report or computes and stores it.
func (r *Reports) GetOrCompute(userID uuid.UUID, year int, month time.Month, compute func() (report.Monthly, error)) (report.Monthly, error) {
	if m, ok := r.Get(userID, year, month); ok {
		log.Debug().Str("user", userID.String()).Int("year", year).Int("month", int(month)).Msg("report cache hit")
		return m, nil
	}

	state, generation := r.start(userID)

	m, err := compute()

	r.mu.Lock()
	defer r.mu.Unlock()

	state.running--
	if state.running == 0 {
		delete(r.inFlight, userID)
	}

	if err != nil {
		return report.Monthly{}, err
	}

	if state.generation == generation {
		r.c.SetDefault(key(userID, year, month), m)
	}

	return m, nil
}

// Invalidate drops all cached reports of the user.
func (r *Reports) Invalidate(userID uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if state, ok := r.inFlight[userID]; ok {
		state.generation++
	}

	prefix := userID.String() + "/"
	for k := range r.c.Items() {
		if strings.HasPrefix(k, prefix) {
			r.c.Delete(k)
		}
	}
}

// Len returns the number of cached reports, including expired ones
// that have not yet been cleaned up.
func (r *Reports) Len() int {
	return r.c.ItemCount()
}

// start registers a running computation for the user and returns its
// state with the generation the computation started at.
func (r *Reports) start(userID uuid.UUID) (*computation, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	state, ok := r.inFlight[userID]
	if !ok {
		state = &computation{}
		r.inFlight[userID] = state
	}

	state.running++
	return state, state.generation
}
