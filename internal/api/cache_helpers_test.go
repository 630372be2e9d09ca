package api

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/barrazadevis/evaluacion-dashboard-backend/internal/api/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

func TestFindAndCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss fetches and returns the value", func(t *testing.T) {
		var sf singleflight.Group
		calls := 0

		got, err := FindAndCache(ctx, &mocks.MockCacher{}, &sf, "k1", time.Minute, zap.NewNop(), func(ctx context.Context) (string, error) {
			calls++
			return "fresh", nil
		})

		assert.NoError(t, err)
		assert.Equal(t, "fresh", got)
		assert.Equal(t, 1, calls)
	})

	t.Run("hit returns the cached value", func(t *testing.T) {
		var sf singleflight.Group
		cacher := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				*dest.(*string) = "cached"
				return nil
			},
		}

		got, err := FindAndCache(ctx, cacher, &sf, "k2", time.Minute, zap.NewNop(), func(ctx context.Context) (string, error) {
			return "fresh", nil
		})

		assert.NoError(t, err)
		assert.Equal(t, "cached", got)
	})

	t.Run("fetch error propagates", func(t *testing.T) {
		var sf singleflight.Group
		boom := errors.New("boom")

		_, err := FindAndCache(ctx, &mocks.MockCacher{}, &sf, "k3", time.Minute, zap.NewNop(), func(ctx context.Context) (string, error) {
			return "", boom
		})

		assert.ErrorIs(t, err, boom)
	})

	t.Run("cache backend failure degrades to a fetch", func(t *testing.T) {
		var sf singleflight.Group
		cacher := &mocks.MockCacher{
			GetFunc: func(ctx context.Context, key string, dest any) error {
				return errors.New("redis down")
			},
		}

		got, err := FindAndCache(ctx, cacher, &sf, "k4", time.Minute, zap.NewNop(), func(ctx context.Context) (string, error) {
			return "fresh", nil
		})

		assert.NoError(t, err)
		assert.Equal(t, "fresh", got)
	})
}

func TestAddTTLJitter(t *testing.T) {
	t.Run("stays within 30 seconds of the base", func(t *testing.T) {
		base := 10 * time.Minute
		for i := 0; i < 100; i++ {
			got := addTTLJitter(base)
			assert.GreaterOrEqual(t, got, base-30*time.Second)
			assert.LessOrEqual(t, got, base+30*time.Second)
		}
	})

	t.Run("non-positive ttl unchanged", func(t *testing.T) {
		assert.Equal(t, time.Duration(0), addTTLJitter(0))
	})
}
