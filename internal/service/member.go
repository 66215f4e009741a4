package service

import (
	"context"
	"errors"
	"time"

	"github.com/carlosRosario19/EventEase-Backend/internal/model"
	"github.com/carlosRosario19/EventEase-Backend/internal/repository"
	"github.com/carlosRosario19/EventEase-Backend/internal/utils"
)

// MemberRepository is the data access port consumed by MemberService.
type MemberRepository interface {
	FindByID(ctx context.Context, id int) (model.Member, error)
	FindByUsername(ctx context.Context, username string) (model.Member, error)
	Register(ctx context.Context, u model.User, a model.Authority, m *model.Member) error
	Update(ctx context.Context, m model.Member) error
}

// AddMemberInput carries a registration request. The password arrives in
// plain text and is hashed here before anything is persisted.
type AddMemberInput struct {
	FirstName         string
	LastName          string
	Phone             string
	Username          string
	Password          string
	Email             string
	BankAccountNumber string
	BankRoutingNumber string
	BankName          string
	BankCountry       string
}

// UpdateMemberInput carries replacement values for every mutable profile
// field. Username and password are absent: the username is immutable and
// passwords are not changed through profile updates.
type UpdateMemberInput struct {
	ID                int
	FirstName         string
	LastName          string
	Phone             string
	Email             string
	BankAccountNumber string
	BankRoutingNumber string
	BankName          string
	BankCountry       string
}

// MemberDTO is the response shape for member profiles.
type MemberDTO struct {
	ID                int    `json:"id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Phone             string `json:"phone"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	BankAccountNumber string `json:"bank_account_number"`
	BankRoutingNumber string `json:"bank_routing_number"`
	BankName          string `json:"bank_name"`
	BankCountry       string `json:"bank_country"`
}

// MemberService owns registration and profile maintenance.
type MemberService struct {
	members    MemberRepository
	bcryptCost int
}

func NewMemberService(members MemberRepository, bcryptCost int) *MemberService {
	return &MemberService{members: members, bcryptCost: bcryptCost}
}

// Add registers a new member: it rejects taken usernames, hashes the
// password, and writes the login account, its ROLE_MEMBER grant and the
// profile as one atomic unit.
func (s *MemberService) Add(ctx context.Context, in AddMemberInput) error {
	if _, err := s.members.FindByUsername(ctx, in.Username); err == nil {
		return repository.ErrUsernameExists
	} else if !errors.Is(err, repository.ErrMemberNotFound) {
		return err
	}

	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return err
	}

	user := model.User{
		Username:     in.Username,
		PasswordHash: hash,
		Enabled:      true,
	}
	grant := model.Authority{
		Username:  in.Username,
		Authority: model.RoleMember,
	}
	member := model.Member{
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		Phone:             in.Phone,
		Username:          in.Username,
		Email:             in.Email,
		BankAccountNumber: in.BankAccountNumber,
		BankRoutingNumber: in.BankRoutingNumber,
		BankName:          in.BankName,
		BankCountry:       in.BankCountry,
		CreatedAt:         time.Now(),
	}
	return s.members.Register(ctx, user, grant, &member)
}

// Get returns the profile of the member with the given username.
func (s *MemberService) Get(ctx context.Context, username string) (MemberDTO, error) {
	m, err := s.members.FindByUsername(ctx, username)
	if err != nil {
		return MemberDTO{}, err
	}
	return toMemberDTO(m), nil
}

// Update overwrites the mutable fields of an existing member. The stored
// username is carried over untouched regardless of the input.
func (s *MemberService) Update(ctx context.Context, in UpdateMemberInput) error {
	current, err := s.members.FindByID(ctx, in.ID)
	if err != nil {
		return err
	}
	current.FirstName = in.FirstName
	current.LastName = in.LastName
	current.Phone = in.Phone
	current.Email = in.Email
	current.BankAccountNumber = in.BankAccountNumber
	current.BankRoutingNumber = in.BankRoutingNumber
	current.BankName = in.BankName
	current.BankCountry = in.BankCountry
	return s.members.Update(ctx, current)
}

func toMemberDTO(m model.Member) MemberDTO {
	return MemberDTO{
		ID:                m.ID,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		Phone:             m.Phone,
		Username:          m.Username,
		Email:             m.Email,
		BankAccountNumber: m.BankAccountNumber,
		BankRoutingNumber: m.BankRoutingNumber,
		BankName:          m.BankName,
		BankCountry:       m.BankCountry,
	}
}
