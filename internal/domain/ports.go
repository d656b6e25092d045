package domain

import "context"

type ActionRepository interface {
	LogAction(ctx context.Context, a Action) (int64, error)
	ListActions(ctx context.Context, q ActionsQuery) (ActionsPage, error)
}

// InboxClient fetches unread guest messages as loosely-shaped JSON objects.
type InboxClient interface {
	GetMessages(ctx context.Context) ([]map[string]any, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

type ActionsQuery struct {
	Limit int
	Kind  *ActionKind
}

type ActionsPage struct {
	Items []Action
}
