// Package cache memoizes read-only operations in a shared store for a fixed
// time. Outputs are kept as JSON, keyed by the operation name and a digest of
// the JSON encoding of its input.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/singleflight"
)

type Logger interface {
	DebugContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

// Func is the shape of an operation that can be cached.
type Func[I, O any] func(ctx context.Context, input I) (O, error)

type Cacher struct {
	store  Store
	config Config
	logger Logger
	group  singleflight.Group
}

func NewCacher(store Store, config Config, logger Logger) *Cacher {
	return &Cacher{
		store:  store,
		config: config,
		logger: logger,
	}
}

// Key is deterministic for equal inputs: struct fields are encoded in
// declaration order and map keys sorted.
func (c *Cacher) Key(name string, input any) (string, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to encode cache input: %w", err)
	}

	sum := sha256.Sum256(data)
	return c.config.Prefix + name + ":" + hex.EncodeToString(sum[:]), nil
}

// Wrap returns fn behind the cache. Store failures never fail a call; they
// are logged and fn is called instead. Errors from fn are returned as is and
// never stored. Concurrent misses on one key share a single call to fn, which
// is not cancelled with any one caller.
func Wrap[I, O any](c *Cacher, name string, fn Func[I, O]) Func[I, O] {
	return func(ctx context.Context, input I) (O, error) {
		key, err := c.Key(name, input)
		if err != nil {
			c.logger.ErrorContext(ctx, "Cache key failure, bypassing cache", "name", name, "error", err)
			return fn(ctx, input)
		}

		if output, ok := lookup[O](ctx, c, key); ok {
			return output, nil
		}

		shared := context.WithoutCancel(ctx)
		ch := c.group.DoChan(key, func() (any, error) {
			output, err := fn(shared, input)
			if err != nil {
				return nil, err
			}

			c.save(shared, key, output)
			return output, nil
		})

		select {
		case <-ctx.Done():
			var zero O
			return zero, ctx.Err()
		case res := <-ch:
			if res.Err != nil {
				var zero O
				return zero, res.Err
			}
			return res.Val.(O), nil
		}
	}
}

func lookup[O any](ctx context.Context, c *Cacher, key string) (O, bool) {
	var output O

	data, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.ErrorContext(ctx, "Cache read failure", "key", key, "error", err)
		return output, false
	}
	if !ok {
		c.logger.DebugContext(ctx, "Cache miss", "key", key)
		return output, false
	}

	if err = json.Unmarshal(data, &output); err != nil {
		c.logger.ErrorContext(ctx, "Cache entry undecodable", "key", key, "error", err)
		var zero O
		return zero, false
	}

	c.logger.DebugContext(ctx, "Cache hit", "key", key)
	return output, true
}

func (c *Cacher) save(ctx context.Context, key string, output any) {
	data, err := json.Marshal(output)
	if err != nil {
		c.logger.ErrorContext(ctx, "Cache encode failure", "key", key, "error", err)
		return
	}

	if err = c.store.Set(ctx, key, data, c.config.TTL); err != nil {
		c.logger.ErrorContext(ctx, "Cache write failure", "key", key, "error", err)
	}
}
