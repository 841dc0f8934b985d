// Package services contains server-side business logic. This file implements
// CredentialService, which registers accounts, verifies login credentials,
// issues session tokens and deletes accounts.
//
// Concurrent Register calls for the same username are safe only because every
// accounts.Repository in this module rejects a second insert atomically
// (common.ErrorAlreadyExists). A store without insert-if-absent would let two
// racing registrations both pass the existence check.
package services

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"time"

	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/cryptox"
	"github.com/dmitrijs2005/credkeeper/internal/logging"
	"github.com/dmitrijs2005/credkeeper/internal/server/auth"
	"github.com/dmitrijs2005/credkeeper/internal/server/models"
	"github.com/dmitrijs2005/credkeeper/internal/server/repositories/accounts"
	"github.com/google/uuid"
)

// ErrDuplicateAccount is returned by Register when the username is taken.
var ErrDuplicateAccount = errors.New("username already taken")

// dummyPassword seeds the record used to equalise login cost for unknown users.
const dummyPassword = "credkeeper-absent-account"

// CredentialService provides authentication-related operations:
// - Register: create accounts with a salted, slow-hashed credential record
// - Login: verify credentials and mint a session token
// - DeleteAccount: remove accounts
type CredentialService struct {
	repo   accounts.Repository
	logger logging.Logger
	random io.Reader
	now    func() time.Time
	newID  func() string

	dummyRecord string
}

// Option customises a CredentialService.
type Option func(*CredentialService)

// WithRandom replaces the randomness source for salts and tokens.
func WithRandom(r io.Reader) Option {
	return func(s *CredentialService) { s.random = r }
}

// WithClock replaces the wall clock used for token generation and timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *CredentialService) { s.now = now }
}

// WithIDGenerator replaces the account ID generator.
func WithIDGenerator(newID func() string) Option {
	return func(s *CredentialService) { s.newID = newID }
}

// NewCredentialService constructs a CredentialService over repo. The service
// only calls repo and logger; both must outlive it. The record verified for
// unknown usernames is hashed here, so constructing the service costs one key
// derivation.
func NewCredentialService(repo accounts.Repository, logger logging.Logger, opts ...Option) *CredentialService {
	s := &CredentialService{
		repo:   repo,
		logger: logger,
		random: rand.Reader,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.dummyRecord = absentAccountRecord(s.random)
	return s
}

// Register creates an account for username. It returns ErrDuplicateAccount
// if the username exists; store failures are returned unchanged.
func (s *CredentialService) Register(ctx context.Context, username, password string) error {
	_, err := s.repo.GetAccount(ctx, username)
	if err == nil {
		return ErrDuplicateAccount
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return err
	}

	record, err := cryptox.HashPassword(s.random, password)
	if err != nil {
		return err
	}

	account := &models.Account{
		ID:               s.newID(),
		Username:         username,
		CredentialRecord: record,
		CreatedAt:        s.now().UTC(),
	}

	if err := s.repo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return ErrDuplicateAccount
		}
		return err
	}

	s.logger.Info(ctx, "registered account", "username", username)
	return nil
}

// Login verifies password for username and returns a fresh session token.
//
// ok is false, with a nil error, when the account is absent, the password is
// wrong, or the stored record is unreadable; callers cannot tell these apart.
// An absent account still costs one key derivation. err is non-nil only for
// store or randomness failures.
func (s *CredentialService) Login(ctx context.Context, username, password string) (token string, ok bool, err error) {
	account, err := s.repo.GetAccount(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			cryptox.VerifyPassword(password, s.dummyRecord)
			return "", false, nil
		}
		return "", false, err
	}

	if !cryptox.VerifyPassword(password, account.CredentialRecord) {
		return "", false, nil
	}

	token, err = auth.GenerateToken(username, s.now(), s.random)
	if err != nil {
		return "", false, err
	}
	return token, true, nil
}

// DeleteAccount removes username. Deleting an absent account succeeds.
func (s *CredentialService) DeleteAccount(ctx context.Context, username string) error {
	if err := s.repo.DeleteAccount(ctx, username); err != nil {
		return err
	}

	s.logger.Info(ctx, "deleted account", "username", username)
	return nil
}

// absentAccountRecord returns a well-formed record that no caller knows the
// password for. If rnd fails, a fixed salt is used instead; the record only
// has to cost the same to verify.
func absentAccountRecord(rnd io.Reader) string {
	record, err := cryptox.HashPassword(rnd, dummyPassword)
	if err != nil {
		record, _ = cryptox.HashPassword(zeroReader{}, dummyPassword)
	}
	return record
}

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}
