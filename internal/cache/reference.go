package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Cache keys for the seeded reference lists.
const (
	KeyRoles       = "ref:roles"
	KeySpecialties = "ref:specialties"
	KeySpecies     = "ref:species"
	KeyBreeds      = "ref:breeds"
	KeyVaccines    = "ref:vaccines"
)

// Reference is a read-through JSON cache for reference data. A nil *Reference
// is valid and disables caching, so callers never branch on configuration.
type Reference struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewFromURL(url string, ttl time.Duration) *Reference {
	if url == "" {
		return nil
	}

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("invalid REDIS_URL, reference cache disabled: %v", err)
		return nil
	}

	return &Reference{
		rdb: redis.NewClient(opts),
		ttl: ttl,
	}
}

// GetJSON loads key into dest. Returns false on miss or any cache failure;
// the store stays the source of truth.
func (r *Reference) GetJSON(ctx context.Context, key string, dest any) bool {
	if r == nil || r.rdb == nil {
		return false
	}

	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Println("cache get error:", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false
	}
	return true
}

func (r *Reference) SetJSON(ctx context.Context, key string, v any) {
	if r == nil || r.rdb == nil {
		return
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := r.rdb.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		log.Println("cache set error:", err)
	}
}

// Invalidate drops keys after a reference-data write.
func (r *Reference) Invalidate(ctx context.Context, keys ...string) {
	if r == nil || r.rdb == nil || len(keys) == 0 {
		return
	}

	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Println("cache del error:", err)
	}
}
