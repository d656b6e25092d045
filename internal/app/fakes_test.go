package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"hostbot/internal/domain"
)

// ---- fakes ----

type fakeRepo struct {
	mu      sync.Mutex
	actions []domain.Action
	failFor string
}

func (f *fakeRepo) LogAction(ctx context.Context, a domain.Action) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor != "" && a.GuestName == f.failFor {
		return 0, errors.New("db down")
	}
	a.ID = int64(len(f.actions) + 1)
	f.actions = append(f.actions, a)
	return a.ID, nil
}

func (f *fakeRepo) ListActions(ctx context.Context, q domain.ActionsQuery) (domain.ActionsPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Action
	for i := len(f.actions) - 1; i >= 0 && len(out) < q.Limit; i-- {
		if q.Kind != nil && f.actions[i].Kind != *q.Kind {
			continue
		}
		out = append(out, f.actions[i])
	}
	return domain.ActionsPage{Items: out}, nil
}

func (f *fakeRepo) byGuest(name string) (domain.Action, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.actions {
		if a.GuestName == name {
			return a, true
		}
	}
	return domain.Action{}, false
}

type fakeCache struct {
	store map[string][]byte
	gets  int
	hits  int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	c.gets++
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, dst)
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string][]byte{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

type fakeInbox struct {
	msgs []map[string]any
	err  error
}

func (f *fakeInbox) GetMessages(ctx context.Context) ([]map[string]any, error) {
	return f.msgs, f.err
}
