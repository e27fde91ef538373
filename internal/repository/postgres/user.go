package postgres

import (
	"context"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
)

func (r *repositoryImpl) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	q := `INSERT INTO users (id, name, surname, email, password_hash, role)
	      VALUES ($1, $2, $3, $4, $5, $6)
	      RETURNING id, name, surname, email, password_hash, role, created_at`
	var u domain.User
	err := r.getQuerier(ctx).QueryRow(ctx, q, user.ID, user.Name, user.Surname, user.Email, user.PasswordHash, user.Role).
		Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, r.handleError(err)
}

func (r *repositoryImpl) GetUser(ctx context.Context, id string) (domain.User, error) {
	q := `SELECT id, name, surname, email, password_hash, role, created_at FROM users WHERE id = $1`
	var u domain.User
	err := r.getQuerier(ctx).QueryRow(ctx, q, id).
		Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, r.handleError(err)
}

func (r *repositoryImpl) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	q := `SELECT id, name, surname, email, password_hash, role, created_at FROM users WHERE email = $1`
	var u domain.User
	err := r.getQuerier(ctx).QueryRow(ctx, q, email).
		Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, r.handleError(err)
}

func (r *repositoryImpl) EmailExists(ctx context.Context, email string) (bool, error) {
	q := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`
	var exists bool
	err := r.getQuerier(ctx).QueryRow(ctx, q, email).Scan(&exists)
	return exists, r.handleError(err)
}
