package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPStore keeps registration codes in Redis, one key per (email, code).
// Expiry is owned by the store: a key simply stops existing once its TTL
// runs out, so an expired code and a wrong code are indistinguishable at
// lookup. Several live codes may exist for the same email.
type OTPStore interface {
	Save(ctx context.Context, email string, code string, ttl time.Duration) error
	Exists(ctx context.Context, email string, code string) (bool, error)
	Delete(ctx context.Context, email string, code string) error
}

type otpStore struct {
	client *redis.Client
}

func NewOTPStore(client *redis.Client) OTPStore {
	return &otpStore{client: client}
}

func otpKey(email string, code string) string {
	return "otp:" + email + ":" + code
}

func (s *otpStore) Save(ctx context.Context, email string, code string, ttl time.Duration) error {
	return s.client.Set(ctx, otpKey(email, code), time.Now().UTC().Format(time.RFC3339), ttl).Err()
}

func (s *otpStore) Exists(ctx context.Context, email string, code string) (bool, error) {
	_, err := s.client.Get(ctx, otpKey(email, code)).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *otpStore) Delete(ctx context.Context, email string, code string) error {
	return s.client.Del(ctx, otpKey(email, code)).Err()
}
