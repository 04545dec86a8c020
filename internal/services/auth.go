// Package services contains the application logic of userkeep. This file
// implements AuthService: registration and login against the JSON user store.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/userkeep/internal/common"
	"github.com/dmitrijs2005/userkeep/internal/cryptox"
	"github.com/dmitrijs2005/userkeep/internal/logging"
	"github.com/dmitrijs2005/userkeep/internal/models"
	"github.com/dmitrijs2005/userkeep/internal/repositories/users"
)

// PasswordPrompt supplies the plaintext password. It is called only when the
// operation actually needs a password. The returned slice is wiped after use.
type PasswordPrompt func() ([]byte, error)

// AuthService defines the register/login operations.
//
// Expected business results (user exists, user not found, wrong password)
// are reported through Outcome. The error is reserved for faults: storage
// failures, prompt failures and invalid input.
type AuthService interface {
	Register(ctx context.Context, username string, prompt PasswordPrompt) (Outcome, error)
	Login(ctx context.Context, username string, prompt PasswordPrompt) (Outcome, error)
}

type authService struct {
	repo   users.Repository
	logger logging.Logger
	salt   func() (string, error)
}

// NewAuthService constructs an AuthService over repo.
func NewAuthService(repo users.Repository, logger logging.Logger) AuthService {
	return &authService{repo: repo, logger: logger, salt: cryptox.GenerateSalt}
}

// Register stores a new credential record for username. If the name is
// already taken the store is left untouched and prompt is not called.
func (s *authService) Register(ctx context.Context, username string, prompt PasswordPrompt) (Outcome, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return OutcomeNone, err
	}

	store, err := s.load(ctx)
	if err != nil {
		return OutcomeNone, err
	}

	if store.Has(username) {
		s.logger.Info(ctx, "registration rejected, user exists", "username", username)
		return OutcomeUserExists, nil
	}

	password, err := prompt()
	if err != nil {
		return OutcomeNone, fmt.Errorf("read password: %w", err)
	}
	defer common.WipeByteArray(password)

	salt, err := s.salt()
	if err != nil {
		return OutcomeNone, fmt.Errorf("generate salt: %w", err)
	}

	store[username] = models.CredentialRecord{
		Salt:         salt,
		PasswordHash: cryptox.HashPassword(password, salt),
	}

	if err := s.repo.Save(ctx, store); err != nil {
		s.logger.Error(ctx, "saving user store failed", "error", err)
		return OutcomeNone, err
	}

	s.logger.Info(ctx, "user registered", "username", username)
	return OutcomeRegistered, nil
}

// Login checks the password for username against the stored record. prompt
// is not called for unknown users.
func (s *authService) Login(ctx context.Context, username string, prompt PasswordPrompt) (Outcome, error) {
	username, err := normalizeUsername(username)
	if err != nil {
		return OutcomeNone, err
	}

	store, err := s.load(ctx)
	if err != nil {
		return OutcomeNone, err
	}

	record, ok := store[username]
	if !ok {
		s.logger.Info(ctx, "login rejected, unknown user", "username", username)
		return OutcomeUserNotFound, nil
	}

	password, err := prompt()
	if err != nil {
		return OutcomeNone, fmt.Errorf("read password: %w", err)
	}
	defer common.WipeByteArray(password)

	if !cryptox.VerifyPassword(password, record.Salt, record.PasswordHash) {
		s.logger.Warn(ctx, "login failed, incorrect password", "username", username)
		return OutcomeWrongPassword, nil
	}

	s.logger.Info(ctx, "user logged in", "username", username)
	return OutcomeLoggedIn, nil
}

func (s *authService) load(ctx context.Context) (models.UserStore, error) {
	store, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Error(ctx, "loading user store failed", "error", err)
		return nil, err
	}
	return store, nil
}

func normalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", fmt.Errorf("%w: username is required", common.ErrValidation)
	}
	return username, nil
}
