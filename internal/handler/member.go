package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carlosRosario19/EventEase-Backend/internal/repository"
	"github.com/carlosRosario19/EventEase-Backend/internal/service"
)

// MemberService is the application-service port consumed by MemberHandler.
type MemberService interface {
	Add(ctx context.Context, in service.AddMemberInput) error
	Get(ctx context.Context, username string) (service.MemberDTO, error)
	Update(ctx context.Context, in service.UpdateMemberInput) error
}

// MemberHandler bundles dependencies for member endpoints.
type MemberHandler struct {
	Members MemberService
}

func NewMemberHandler(members MemberService) *MemberHandler {
	return &MemberHandler{Members: members}
}

// ----- DTOs -----

type registerReq struct {
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Phone             string `json:"phone"`
	Username          string `json:"username"`
	Password          string `json:"password"`
	Email             string `json:"email"`
	BankAccountNumber string `json:"bank_account_number"`
	BankRoutingNumber string `json:"bank_routing_number"`
	BankName          string `json:"bank_name"`
	BankCountry       string `json:"bank_country"`
}

type updateMemberReq struct {
	ID                int    `json:"id"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	BankAccountNumber string `json:"bank_account_number"`
	BankRoutingNumber string `json:"bank_routing_number"`
	BankName          string `json:"bank_name"`
	BankCountry       string `json:"bank_country"`
}

// Register creates a login account and member profile in one step.
func (h *MemberHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "username/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Members.Add(ctx, service.AddMemberInput{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Phone:             req.Phone,
		Username:          req.Username,
		Password:          req.Password,
		Email:             req.Email,
		BankAccountNumber: req.BankAccountNumber,
		BankRoutingNumber: req.BankRoutingNumber,
		BankName:          req.BankName,
		BankCountry:       req.BankCountry,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUsernameExists) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "username already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "register failed"})
	}
	return c.NoContent(http.StatusCreated)
}

// Get returns a member profile by username.
func (h *MemberHandler) Get(c echo.Context) error {
	username := c.Param("username")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dto, err := h.Members.Get(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, dto)
}

// Update overwrites the mutable fields of a member profile. The username
// is not part of the request body and never changes.
func (h *MemberHandler) Update(c echo.Context) error {
	var req updateMemberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.ID <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid member id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Members.Update(ctx, service.UpdateMemberInput{
		ID:                req.ID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Phone:             req.Phone,
		Email:             req.Email,
		BankAccountNumber: req.BankAccountNumber,
		BankRoutingNumber: req.BankRoutingNumber,
		BankName:          req.BankName,
		BankCountry:       req.BankCountry,
	})
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
