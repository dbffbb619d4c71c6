package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/lunacal-app/lunacal-backend/internal/model"
)

const (
	refreshTokenPrefix = "refresh_token:"
	userSessionsPrefix = "user_sessions:"
)

// RefreshTokensRepository stores refresh sessions with a TTL and keeps a
// per-user index so all of a user's sessions can be revoked at once.
type RefreshTokensRepository struct {
	pool *redis.Pool
	ttl  time.Duration
}

func NewRefreshTokensRepository(pool *redis.Pool, ttl time.Duration) *RefreshTokensRepository {
	return &RefreshTokensRepository{pool: pool, ttl: ttl}
}

func (r *RefreshTokensRepository) Add(ctx context.Context, session string, id int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("SET", refreshTokenPrefix+session, id, "PX", r.ttl.Milliseconds()); err != nil {
		return fmt.Errorf("set token: %w", err)
	}

	if _, err := conn.Do("SADD", fmt.Sprintf("%v%v", userSessionsPrefix, id), session); err != nil {
		return fmt.Errorf("add session to user index: %w", err)
	}

	return nil
}

func (r *RefreshTokensRepository) Get(ctx context.Context, session string) (int64, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	id, err := redis.Int64(conn.Do("GET", refreshTokenPrefix+session))
	if err != nil {
		if err == redis.ErrNil {
			return 0, model.ErrNoRecord
		}
		return 0, fmt.Errorf("get token: %w", err)
	}

	return id, nil
}

// Refresh atomically rotates a session token, keeping the user index in
// sync.
func (r *RefreshTokensRepository) Refresh(ctx context.Context, old, new string) error {
	id, err := r.Get(ctx, old)
	if err != nil {
		return err
	}

	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if err := conn.Send("MULTI"); err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	if err := conn.Send("DEL", refreshTokenPrefix+old); err != nil {
		return fmt.Errorf("delete old token: %w", err)
	}
	if err := conn.Send("SREM", fmt.Sprintf("%v%v", userSessionsPrefix, id), old); err != nil {
		return fmt.Errorf("remove old session: %w", err)
	}
	if err := conn.Send("SET", refreshTokenPrefix+new, id, "PX", r.ttl.Milliseconds()); err != nil {
		return fmt.Errorf("set new token: %w", err)
	}
	if err := conn.Send("SADD", fmt.Sprintf("%v%v", userSessionsPrefix, id), new); err != nil {
		return fmt.Errorf("add new session: %w", err)
	}
	if _, err := conn.Do("EXEC"); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func (r *RefreshTokensRepository) Delete(ctx context.Context, session string) error {
	id, err := r.Get(ctx, session)
	if err != nil {
		return err
	}

	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("DEL", refreshTokenPrefix+session); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}

	if _, err := conn.Do("SREM", fmt.Sprintf("%v%v", userSessionsPrefix, id), session); err != nil {
		return fmt.Errorf("remove session from user index: %w", err)
	}

	return nil
}

func (r *RefreshTokensRepository) DeleteByUserID(ctx context.Context, id int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	indexKey := fmt.Sprintf("%v%v", userSessionsPrefix, id)

	sessions, err := redis.Strings(conn.Do("SMEMBERS", indexKey))
	if err != nil {
		return fmt.Errorf("get user sessions: %w", err)
	}

	for _, session := range sessions {
		if _, err := conn.Do("DEL", refreshTokenPrefix+session); err != nil {
			return fmt.Errorf("delete token: %w", err)
		}
	}

	if _, err := conn.Do("DEL", indexKey); err != nil {
		return fmt.Errorf("delete user index: %w", err)
	}

	return nil
}

// DeleteExpired removes index entries whose tokens have already expired.
// Tokens themselves expire via TTL, the index has to be swept.
func (r *RefreshTokensRepository) DeleteExpired(ctx context.Context) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get connection: %w", err)
	}
	defer conn.Close()

	cursor := 0
	for {
		values, err := redis.Values(conn.Do("SCAN", cursor, "MATCH", userSessionsPrefix+"*"))
		if err != nil {
			return fmt.Errorf("scan user indexes: %w", err)
		}

		keys, err := redis.Strings(values[1], nil)
		if err != nil {
			return fmt.Errorf("parse scan keys: %w", err)
		}

		for _, key := range keys {
			sessions, err := redis.Strings(conn.Do("SMEMBERS", key))
			if err != nil {
				return fmt.Errorf("get user sessions: %w", err)
			}

			for _, session := range sessions {
				exists, err := redis.Bool(conn.Do("EXISTS", refreshTokenPrefix+session))
				if err != nil {
					return fmt.Errorf("check token: %w", err)
				}
				if !exists {
					if _, err := conn.Do("SREM", key, session); err != nil {
						return fmt.Errorf("remove expired session: %w", err)
					}
				}
			}
		}

		cursor, err = redis.Int(values[0], nil)
		if err != nil {
			return fmt.Errorf("parse scan cursor: %w", err)
		}
		if cursor == 0 {
			return nil
		}
	}
}
