package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/carlosRosario19/EventEase-Backend/internal/model"
)

// MemberRepo manages persistence for member profiles and owns the
// registration transaction that creates the login account alongside the
// profile.
type MemberRepo struct {
	db *sql.DB
}

func NewMemberRepo(db *sql.DB) *MemberRepo { return &MemberRepo{db: db} }

const memberColumns = `member_id, first_name, last_name, phone, username, email,
	bank_account_number, bank_routing_number, bank_name, bank_country, created_at`

func scanMember(row interface{ Scan(...any) error }, m *model.Member) error {
	return row.Scan(
		&m.ID,
		&m.FirstName,
		&m.LastName,
		&m.Phone,
		&m.Username,
		&m.Email,
		&m.BankAccountNumber,
		&m.BankRoutingNumber,
		&m.BankName,
		&m.BankCountry,
		&m.CreatedAt,
	)
}

// FindByID fetches a member by primary key.
func (r *MemberRepo) FindByID(ctx context.Context, id int) (model.Member, error) {
	var m model.Member
	err := scanMember(r.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE member_id=? LIMIT 1`, id), &m)
	if err == sql.ErrNoRows {
		return model.Member{}, ErrMemberNotFound
	}
	return m, err
}

// FindByUsername fetches a member by username.
func (r *MemberRepo) FindByUsername(ctx context.Context, username string) (model.Member, error) {
	var m model.Member
	err := scanMember(r.db.QueryRowContext(ctx,
		`SELECT `+memberColumns+` FROM members WHERE username=? LIMIT 1`, username), &m)
	if err == sql.ErrNoRows {
		return model.Member{}, ErrMemberNotFound
	}
	return m, err
}

// Register creates the login account, its role grant and the member profile
// in a single transaction. Either all three rows exist afterwards or none
// do. A duplicate username on any of the inserts is reported as
// ErrUsernameExists. On success the generated member ID is filled in.
func (r *MemberRepo) Register(ctx context.Context, u model.User, a model.Authority, m *model.Member) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	enabled := "N"
	if u.Enabled {
		enabled = "Y"
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO users (username, password, enabled) VALUES (?,?,?)`,
		u.Username, u.PasswordHash, enabled); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrUsernameExists
		}
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO authorities (username, authority) VALUES (?,?)`,
		a.Username, a.Authority); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO members (first_name, last_name, phone, username, email,
			bank_account_number, bank_routing_number, bank_name, bank_country, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?)`,
		m.FirstName, m.LastName, m.Phone, m.Username, m.Email,
		m.BankAccountNumber, m.BankRoutingNumber, m.BankName, m.BankCountry, m.CreatedAt)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrUsernameExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	m.ID = int(id)
	return nil
}

// Update overwrites every mutable profile field of the member with the
// given ID. The username column is deliberately not part of the statement;
// identity is immutable after registration.
func (r *MemberRepo) Update(ctx context.Context, m model.Member) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE members SET first_name=?, last_name=?, phone=?, email=?,
			bank_account_number=?, bank_routing_number=?, bank_name=?, bank_country=?
		WHERE member_id=?`,
		m.FirstName, m.LastName, m.Phone, m.Email,
		m.BankAccountNumber, m.BankRoutingNumber, m.BankName, m.BankCountry, m.ID)
	return err
}
