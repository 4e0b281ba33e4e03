package store

import (
	"context"

	"github.com/thenoetrevino/flowmaster/internal/events"
	"github.com/thenoetrevino/flowmaster/internal/models"
)

// AddUsers inserts or replaces user reference data by id. Users without an
// id are skipped.
func (s *Store) AddUsers(ctx context.Context, users []models.User) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := 0
	for _, u := range users {
		if u.ID == "" {
			s.logger.Debug("add users: skipping user without id", "email", u.Email)
			continue
		}
		user := u
		s.users[u.ID] = &user
		added++
	}
	if added == 0 {
		return 0
	}

	s.commit(ctx, events.EventUsersChanged, "", "")
	return added
}
