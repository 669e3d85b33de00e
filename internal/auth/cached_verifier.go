package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const tokenKeyPrefix = "auth-token-"

// CachedVerifier remembers successful verifications in redis for ttl.
// Rejections are never cached, and a broken cache only costs a call to next.
type CachedVerifier struct {
	next        Verifier
	ttl         time.Duration
	redisClient redis.Cmdable
}

func NewCachedVerifier(next Verifier, ttl time.Duration, redisClient redis.Cmdable) *CachedVerifier {
	return &CachedVerifier{
		next:        next,
		ttl:         ttl,
		redisClient: redisClient,
	}
}

func (v *CachedVerifier) Verify(ctx context.Context, token string) (*User, error) {
	key := TokenCacheKey(token)

	cached, err := v.redisClient.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var user User
		if err := json.Unmarshal(cached, &user); err == nil {
			return &user, nil
		}
		log.Warnf("token cache: corrupt entry %s", key)
	case !errors.Is(err, redis.Nil):
		log.Warnf("token cache get: %s", err)
	}

	user, err := v.next.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(user)
	if err != nil {
		return user, nil
	}
	if err := v.redisClient.Set(ctx, key, string(data), v.ttl).Err(); err != nil {
		log.Warnf("token cache set: %s", err)
	}
	return user, nil
}

// TokenCacheKey never contains the raw token.
func TokenCacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return tokenKeyPrefix + hex.EncodeToString(sum[:])
}
