package impl

import (
	"io"
	"log/slog"
	"time"

	"atrium/internal/domain/entity"

	"github.com/google/uuid"
)

// stubViewCache is a plain map-backed cache for exercising view
// invalidation without expiry behaviour getting in the way.
type stubViewCache struct {
	entries map[string]any
}

func newStubViewCache() *stubViewCache {
	return &stubViewCache{entries: make(map[string]any)}
}

func (c *stubViewCache) Get(path string) (any, bool) {
	payload, ok := c.entries[path]

	return payload, ok
}

func (c *stubViewCache) Set(path string, payload any) {
	c.entries[path] = payload
}

func (c *stubViewCache) Invalidate(paths ...string) {
	for _, path := range paths {
		delete(c.entries, path)
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testUser(role entity.Role) *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		Email:        "staff@example.com",
		Name:         "Test Staff",
		PasswordHash: "hashed",
		Role:         role,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}
