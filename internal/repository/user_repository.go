package repository

import (
	"context"
	"database/sql"

	"github.com/carlosRosario19/EventEase-Backend/internal/model"
)

// UserRepo reads login accounts for authentication. Writes go through
// MemberRepo.Register, which creates the account inside the registration
// transaction.
type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{db: db} }

// FindByUsername fetches a login account by username.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (model.User, error) {
	var u model.User
	var enabled string
	err := r.db.QueryRowContext(ctx,
		`SELECT username, password, enabled FROM users WHERE username=? LIMIT 1`,
		username).Scan(&u.Username, &u.PasswordHash, &enabled)
	if err == sql.ErrNoRows {
		return model.User{}, ErrUserNotFound
	}
	if err != nil {
		return model.User{}, err
	}
	u.Enabled = enabled == "Y"
	return u, nil
}

// FindAuthorities returns the authority strings granted to a username.
// The grants live in their own table, so this is an explicit second fetch
// rather than part of the account row.
func (r *UserRepo) FindAuthorities(ctx context.Context, username string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT authority FROM authorities WHERE username=?`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
