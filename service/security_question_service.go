// file: service/security_question_service.go

package service

import (
	"context"
	"encoding/json"
	"errors"
	"go-auth-api/logger"
	"go-auth-api/model"
	"go-auth-api/repository"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const activeQuestionsCacheKey = "security_questions:active"

// ICacheClient is the slice of *redis.Client the question cache needs.
type ICacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// DefaultSecurityQuestions are seeded the first time the question list is read from an
// empty store.
var DefaultSecurityQuestions = []string{
	"What was the name of your first pet?",
	"What was the make and model of your first car?",
	"What elementary school did you attend?",
	"In what city were you born?",
	"What is your mother's maiden name?",
	"What was the name of your childhood best friend?",
	"What was the first concert you attended?",
	"What is the name of the street you grew up on?",
	"What was your favorite food as a child?",
	"What was the name of your first employer?",
}

// SecurityQuestionService lists, seeds and deactivates recovery questions, caching the
// active list in Redis (cache-aside). A nil cache disables caching.
type SecurityQuestionService struct {
	repo     repository.ISecurityQuestionRepository
	cache    ICacheClient
	cacheTTL time.Duration
}

func NewSecurityQuestionService(repo repository.ISecurityQuestionRepository, cache ICacheClient, cacheTTL time.Duration) *SecurityQuestionService {
	return &SecurityQuestionService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// EnsureSeeded inserts the default questions if the store holds none at all. It returns the
// number of rows created, which is zero on every call after the first.
func (s *SecurityQuestionService) EnsureSeeded(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	created, err := s.repo.CreateMany(ctx, DefaultSecurityQuestions)
	if err != nil {
		return 0, err
	}
	logger.Log.WithField("count", len(created)).Info("Seeded default security questions")
	s.invalidate(ctx)
	return len(created), nil
}

// ListActive returns the active questions in creation order, seeding defaults on first use.
func (s *SecurityQuestionService) ListActive(ctx context.Context) ([]*model.SecurityQuestion, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, activeQuestionsCacheKey).Result()
		if err == nil {
			var questions []*model.SecurityQuestion
			if err := json.Unmarshal([]byte(cached), &questions); err == nil {
				return questions, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logger.Log.WithError(err).Warn("Security question cache read failed")
		}
	}

	if _, err := s.EnsureSeeded(ctx); err != nil {
		return nil, err
	}

	questions, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(questions); err == nil {
			if err := s.cache.Set(ctx, activeQuestionsCacheKey, payload, s.cacheTTL).Err(); err != nil {
				logger.Log.WithError(err).Warn("Security question cache write failed")
			}
		}
	}
	return questions, nil
}

// Deactivate retires a question. Users that already chose it keep it for recovery.
func (s *SecurityQuestionService) Deactivate(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrSecurityQuestionNotFound
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSecurityQuestionNotFound
		}
		return err
	}
	logger.Log.WithField("security_question_id", id).Info("Security question deactivated")
	s.invalidate(ctx)
	return nil
}

func (s *SecurityQuestionService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, activeQuestionsCacheKey).Err(); err != nil {
		logger.Log.WithError(err).Warn("Security question cache invalidation failed")
	}
}
