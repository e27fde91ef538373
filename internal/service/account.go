package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
)

func (s *Service) SignUp(ctx context.Context, name, surname, email, password string) (domain.User, error) {
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return domain.User{}, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.repo.CreateUser(ctx, domain.User{
		ID:           newULID(),
		Name:         name,
		Surname:      surname,
		Email:        email,
		PasswordHash: string(hash),
		Role:         "user",
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, err
	}
	return user, nil
}

// LogIn verifies the credentials and returns the user. A missing account and
// a wrong password are indistinguishable to the caller.
func (s *Service) LogIn(ctx context.Context, email, password string) (domain.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	return user, nil
}
