package memory

import (
	"time"

	"promptlink-be/internal/entity"

	"github.com/patrickmn/go-cache"
)

// SessionRepository is the process-wide session map. Entries never expire on
// their own and no janitor runs: eviction is exclusively caller-driven through
// DeleteOlderThan, a documented operational dependency.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(cache.NoExpiration, 0)
	return &SessionRepository{
		cache: c,
	}
}

func (r *SessionRepository) Save(session *entity.RelaySession) {
	r.cache.Set(session.ID, session, cache.NoExpiration)
}

func (r *SessionRepository) Get(sessionID string) (*entity.RelaySession, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*entity.RelaySession), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

// Ids returns the ids of every stored session, in no particular order.
func (r *SessionRepository) Ids() []string {
	items := r.cache.Items()
	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	return ids
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}

// DeleteOlderThan removes every session created before the cutoff and returns
// how many were removed.
func (r *SessionRepository) DeleteOlderThan(cutoff time.Time) int {
	removed := 0
	for id, item := range r.cache.Items() {
		session, ok := item.Object.(*entity.RelaySession)
		if !ok {
			continue
		}
		if session.CreatedAt.Before(cutoff) {
			r.cache.Delete(id)
			removed++
		}
	}
	return removed
}
