// Package session owns the locally persisted user records and the
// current-session pointer. It gates the discovery surface; nothing here
// talks to a server.
package session

import (
	"encoding/json"
	"log"
	"net/mail"
	"strings"
	"time"

	"destinex/internal/models"
	"destinex/pkg/store"
	"destinex/pkg/utils"
)

const (
	credentialsKey    = "registered_users"
	currentSessionKey = "current_session"
)

type StoreInterface interface {
	Register(name, email, password, confirmPassword string) (models.Session, error)
	Authenticate(email, password string) (models.Session, error)
	Current() (models.Session, bool)
	Clear() error
}

type Store struct {
	kv     *store.Store
	secret []byte
}

func NewStore(kv *store.Store, secret []byte) StoreInterface {
	return &Store{kv: kv, secret: secret}
}

func (s *Store) Register(name, email, password, confirmPassword string) (models.Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" || email == "" || password == "" || confirmPassword == "" {
		return models.Session{}, utils.ErrMissingFields
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return models.Session{}, utils.ErrInvalidEmail
	}
	if len(password) < 6 {
		return models.Session{}, utils.ErrWeakPassword
	}
	if password != confirmPassword {
		return models.Session{}, utils.ErrPasswordMismatch
	}

	creds := s.loadCredentials()
	for _, c := range creds {
		if strings.EqualFold(c.Email, email) {
			return models.Session{}, utils.ErrEmailAlreadyExists
		}
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.Session{}, utils.ErrStoreError
	}

	creds = append(creds, models.Credential{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().Unix(),
	})

	credsJSON, err := json.Marshal(creds)
	if err != nil {
		return models.Session{}, utils.ErrStoreError
	}
	token, err := utils.SignSession(s.secret, name, email)
	if err != nil {
		return models.Session{}, utils.ErrStoreError
	}

	// Appending the record and establishing the session is one write.
	err = s.kv.PutAll(map[string][]byte{
		credentialsKey:    credsJSON,
		currentSessionKey: []byte(token),
	})
	if err != nil {
		log.Printf("Error persisting registration: %v", err)
		return models.Session{}, utils.ErrStoreError
	}

	return models.Session{Name: name, Email: email}, nil
}

// Authenticate reports the same error for an unknown email and a wrong
// password so callers cannot enumerate accounts.
func (s *Store) Authenticate(email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)

	for _, c := range s.loadCredentials() {
		if !strings.EqualFold(c.Email, email) {
			continue
		}
		if utils.ComparePasswords(c.PasswordHash, password) != nil {
			return models.Session{}, utils.ErrInvalidCredentials
		}

		token, err := utils.SignSession(s.secret, c.Name, c.Email)
		if err != nil {
			return models.Session{}, utils.ErrStoreError
		}
		if err := s.kv.Put(currentSessionKey, []byte(token)); err != nil {
			log.Printf("Error persisting session: %v", err)
			return models.Session{}, utils.ErrStoreError
		}
		return models.Session{Name: c.Name, Email: c.Email}, nil
	}
	return models.Session{}, utils.ErrInvalidCredentials
}

// Current rehydrates the persisted session pointer. A corrupt or tampered
// value is purged and reported as no session, never as a failure.
func (s *Store) Current() (models.Session, bool) {
	value, found, err := s.kv.Get(currentSessionKey)
	if err != nil {
		log.Printf("Error reading session: %v", err)
		return models.Session{}, false
	}
	if !found {
		return models.Session{}, false
	}

	claims, err := utils.ParseSession(s.secret, string(value))
	if err != nil || claims.Email == "" {
		log.Printf("Discarding invalid persisted session: %v", err)
		if err := s.kv.Delete(currentSessionKey); err != nil {
			log.Printf("Error purging invalid session: %v", err)
		}
		return models.Session{}, false
	}
	return models.Session{Name: claims.Name, Email: claims.Email}, true
}

func (s *Store) Clear() error {
	if err := s.kv.Delete(currentSessionKey); err != nil {
		log.Printf("Error clearing session: %v", err)
		return utils.ErrStoreError
	}
	return nil
}

// loadCredentials defaults a missing or corrupt collection to empty. Corrupt
// entries do not take the whole store down.
func (s *Store) loadCredentials() []models.Credential {
	value, found, err := s.kv.Get(credentialsKey)
	if err != nil {
		log.Printf("Error reading credentials: %v", err)
		return nil
	}
	if !found {
		return nil
	}

	var creds []models.Credential
	if err := json.Unmarshal(value, &creds); err != nil {
		log.Printf("Discarding corrupt credential records: %v", err)
		return nil
	}
	return creds
}
