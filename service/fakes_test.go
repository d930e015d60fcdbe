package service

import (
	"context"
	"go-auth-api/model"
	"go-auth-api/repository"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the three Postgres repositories.
type memStore struct {
	mu        sync.Mutex
	users     map[string]*model.User
	questions map[string]*model.SecurityQuestion
	tokens    map[string]*model.RefreshToken
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[string]*model.User),
		questions: make(map[string]*model.SecurityQuestion),
		tokens:    make(map[string]*model.RefreshToken),
	}
}

type memUsers struct{ *memStore }
type memQuestions struct{ *memStore }
type memTokens struct{ *memStore }

func (s *memStore) userRepo() repository.IUserRepository { return memUsers{s} }
func (s *memStore) questionRepo() repository.ISecurityQuestionRepository { return memQuestions{s} }
func (s *memStore) tokenRepo() repository.ITokenRepository { return memTokens{s} }

func cloneUser(u *model.User) *model.User {
	c := *u
	return &c
}

func (r memUsers) CreateUser(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
		if u.Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = time.Now()
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r memUsers) find(match func(*model.User) bool) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r memUsers) GetUserByID(_ context.Context, id string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.ID == id })
}

func (r memUsers) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Email == email })
}

func (r memUsers) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	return r.find(func(u *model.User) bool { return u.Username == username })
}

func (r memUsers) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.PasswordHash = passwordHash
	now := time.Now()
	u.UpdatedAt = &now
	return nil
}

func (r memQuestions) GetByID(_ context.Context, id string) (*model.SecurityQuestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.questions[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *q
	return &c, nil
}

func (r memQuestions) ListActive(_ context.Context) ([]*model.SecurityQuestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*model.SecurityQuestion, 0)
	for _, q := range r.questions {
		if q.IsActive {
			c := *q
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r memQuestions) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.questions)), nil
}

func (r memQuestions) CreateMany(_ context.Context, questions []string) ([]*model.SecurityQuestion, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	base := time.Now()
	created := make([]*model.SecurityQuestion, 0, len(questions))
	for i, text := range questions {
		dup := false
		for _, q := range r.questions {
			if q.IsActive && q.Question == text {
				dup = true
			}
		}
		if dup {
			continue
		}
		q := &model.SecurityQuestion{ID: uuid.NewString(), Question: text, IsActive: true, CreatedAt: base.Add(time.Duration(i) * time.Millisecond)}
		r.questions[q.ID] = q
		c := *q
		created = append(created, &c)
	}
	return created, nil
}

func (r memQuestions) Deactivate(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	q, ok := r.questions[id]
	if !ok {
		return repository.ErrNotFound
	}
	q.IsActive = false
	return nil
}

func (r memTokens) Create(_ context.Context, token *model.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[token.Token]; ok {
		return repository.ErrDuplicateToken
	}
	if token.ID == "" {
		token.ID = uuid.NewString()
	}
	token.CreatedAt = time.Now()
	c := *token
	r.tokens[token.Token] = &c
	return nil
}

func (r memTokens) GetByToken(_ context.Context, token string) (*model.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt, ok := r.tokens[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *rt
	return &c, nil
}

func (r memTokens) UpdateExpiry(_ context.Context, id string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rt := range r.tokens {
		if rt.ID == id {
			rt.ExpiresAt = expiresAt
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r memTokens) Revoke(_ context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rt, ok := r.tokens[token]
	if !ok || rt.IsRevoked {
		return false, nil
	}
	rt.IsRevoked = true
	return true, nil
}

func (r memTokens) RevokeAllForUser(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, rt := range r.tokens {
		if rt.UserID == userID && !rt.IsRevoked {
			rt.IsRevoked = true
			n++
		}
	}
	return n, nil
}

func (r memTokens) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for key, rt := range r.tokens {
		if !now.Before(rt.ExpiresAt) {
			delete(r.tokens, key)
			n++
		}
	}
	return n, nil
}

// validTokensFor counts tokens of a user that are still usable at now.
func (s *memStore) validTokensFor(userID string, now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, rt := range s.tokens {
		if rt.UserID == userID && rt.IsValid(now) {
			n++
		}
	}
	return n
}
