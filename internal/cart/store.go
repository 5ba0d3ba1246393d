package cart

import "context"

// Store persists cart state under a caller-chosen key. Watch delivers
// snapshots written by other holders of the same key; there is no merge —
// the latest write wins.
type Store interface {
	Save(ctx context.Context, key string, state State) error
	Load(ctx context.Context, key string) (State, bool, error)
	Watch(ctx context.Context, key string) (<-chan State, error)
}
