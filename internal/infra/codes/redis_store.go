// Package codes implements the one-time confirmation code service on Redis.
// Codes live under a per-username key with a TTL and are stored bcrypt-hashed,
// so a storage dump never reveals a usable code.
package codes

import (
	"context"
	"log/slog"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"

	"critica/config"
	"critica/internal/domain/entity"
	"critica/internal/domain/lifecycle"
	"critica/internal/domain/service"
)

const codeKeyPrefix = "confirmation_code:"

// codeAlphabet keeps codes easy to transcribe from an email.
const codeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

const codeLength = 8

// redisCodeService implements service.CodeService backed by Redis.
type redisCodeService struct {
	client *redis.Client
	ttl    time.Duration
	cost   int
	logger *slog.Logger
}

// RedisParams defines the dependencies for the Redis client.
type RedisParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient creates the shared Redis client with fx lifecycle hooks.
func NewRedisClient(params RedisParams) (*redis.Client, error) {
	if params.Config.Redis == nil {
		return nil, errors.New("redis configuration must be provided")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping redis")
			}
			params.Logger.Info("Connected to redis", slog.String("addr", params.Config.Redis.Addr))

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client, nil
}

// NewRedisCodeService is the constructor for redisCodeService.
func NewRedisCodeService(client *redis.Client, cfg *config.Config, logger *slog.Logger) service.CodeService {
	ttl := 15 * time.Minute
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil {
		if cfg.Auth.CodeTTL > 0 {
			ttl = cfg.Auth.CodeTTL
		}
		if cfg.Auth.BcryptCost > 0 {
			cost = cfg.Auth.BcryptCost
		}
	}

	return &redisCodeService{
		client: client,
		ttl:    ttl,
		cost:   cost,
		logger: logger,
	}
}

// IssueCode generates a fresh code and stores its hash, replacing any
// outstanding code for the same user.
func (s *redisCodeService) IssueCode(ctx context.Context, user *entity.User) (string, error) {
	code, err := gonanoid.Generate(codeAlphabet, codeLength)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate confirmation code")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), s.cost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash confirmation code")
	}

	if err := s.client.Set(ctx, codeKeyPrefix+user.Username, hash, s.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "failed to store confirmation code")
	}
	s.logger.Debug("Confirmation code issued", slog.String("username", user.Username))

	return code, nil
}

// VerifyCode compares the presented code against the stored hash and deletes
// it on success, making each code single-use.
func (s *redisCodeService) VerifyCode(ctx context.Context, username, code string) (bool, error) {
	key := codeKeyPrefix + username

	hash, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "failed to load confirmation code")
	}

	if bcrypt.CompareHashAndPassword(hash, []byte(code)) != nil {
		return false, nil
	}

	if err := s.client.Del(ctx, key).Err(); err != nil {
		return false, errors.Wrap(err, "failed to consume confirmation code")
	}

	return true, nil
}
