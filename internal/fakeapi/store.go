package fakeapi

import (
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/creatorpilot/internal/client/models"
	"github.com/dmitrijs2005/creatorpilot/internal/cryptox"
)

var (
	errUserExists      = errors.New("user already exists")
	errBadCredentials  = errors.New("invalid credentials")
	errUserNotFound    = errors.New("user not found")
	errOwnerImmutable  = errors.New("owner cannot be modified")
	errRecordNotFound  = errors.New("history item not found")
	errMissingAuthData = errors.New("email and password are required")
)

type account struct {
	id      string
	email   string
	salt    []byte
	hash    []byte
	isAdmin bool
	isOwner bool
	profile models.Profile
	created time.Time
}

func (a *account) summary() models.UserSummary {
	return models.UserSummary{ID: a.id, Email: a.email, IsAdmin: a.isAdmin, IsOwner: a.isOwner}
}

// store is the backend state. All methods are safe for concurrent use.
type store struct {
	mu       sync.Mutex
	accounts map[string]*account
	byEmail  map[string]string
	history  map[string][]models.HistoryRecord
	now      func() time.Time
}

func newStore() *store {
	return &store{
		accounts: make(map[string]*account),
		byEmail:  make(map[string]string),
		history:  make(map[string][]models.HistoryRecord),
		now:      time.Now,
	}
}

func (s *store) register(email string, password []byte) (*account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) == 0 {
		return nil, errMissingAuthData
	}

	salt, err := cryptox.NewSalt()
	if err != nil {
		return nil, err
	}
	hash := cryptox.HashPassword(password, salt)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byEmail[email]; ok {
		return nil, errUserExists
	}

	a := &account{
		id:      uuid.NewString(),
		email:   email,
		salt:    salt,
		hash:    hash,
		isOwner: len(s.accounts) == 0,
		created: s.now(),
	}
	s.accounts[a.id] = a
	s.byEmail[email] = a.id
	return a, nil
}

func (s *store) login(email string, password []byte) (*account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || len(password) == 0 {
		return nil, errMissingAuthData
	}

	s.mu.Lock()
	id, ok := s.byEmail[email]
	var a account
	if ok {
		a = *s.accounts[id]
	}
	s.mu.Unlock()

	if !ok || !cryptox.VerifyPassword(password, a.salt, a.hash) {
		return nil, errBadCredentials
	}
	return &a, nil
}

func (s *store) get(id string) (account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return account{}, false
	}
	return *a, true
}

func (s *store) setRoles(id string, isAdmin, isOwner bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if ok {
		a.isAdmin, a.isOwner = isAdmin, isOwner
	}
	return ok
}

func (s *store) users() []models.UserSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]*account, 0, len(s.accounts))
	for _, a := range s.accounts {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool {
		if !list[i].created.Equal(list[j].created) {
			return list[i].created.Before(list[j].created)
		}
		return list[i].email < list[j].email
	})

	out := make([]models.UserSummary, len(list))
	for i, a := range list {
		out[i] = a.summary()
	}
	return out
}

func (s *store) toggleAdmin(id string) (models.UserSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[id]
	if !ok {
		return models.UserSummary{}, errUserNotFound
	}
	if a.isOwner {
		return models.UserSummary{}, errOwnerImmutable
	}
	a.isAdmin = !a.isAdmin
	return a.summary(), nil
}

func (s *store) profile(id string) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[id]; ok {
		return a.profile
	}
	return models.Profile{}
}

func (s *store) setProfile(id string, p models.Profile) models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.accounts[id]; ok {
		a.profile = p
	}
	return p
}

func (s *store) addHistory(userID string, r models.HistoryRecord) models.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = uuid.NewString()
	r.CreatedAt = s.now().UTC()
	s.history[userID] = append(s.history[userID], r)
	return r
}

// listHistory returns the user's records newest first.
func (s *store) listHistory(userID string) []models.HistoryRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	src := s.history[userID]
	out := make([]models.HistoryRecord, len(src))
	for i, r := range src {
		out[len(src)-1-i] = r
	}
	return out
}

func (s *store) deleteHistory(userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.history[userID]
	for i, r := range list {
		if r.ID == id {
			s.history[userID] = append(list[:i:i], list[i+1:]...)
			return nil
		}
	}
	return errRecordNotFound
}
