package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/carlosRosario19/EventEase-Backend/internal/repository"
	"github.com/carlosRosario19/EventEase-Backend/internal/service"
)

// dateTimeLayout is the ISO-8601 local date-time accepted on event
// creation; RFC3339 values with an explicit offset are accepted too.
const dateTimeLayout = "2006-01-02T15:04:05"

// EventService is the application-service port consumed by EventHandler.
type EventService interface {
	GetAll(ctx context.Context, page, size int, title, location, category string) ([]service.EventDTO, int64, error)
	Get(ctx context.Context, id int) (service.EventDetailDTO, error)
	GetAllByUsername(ctx context.Context, username string, page, size int) ([]service.EventDTO, int64, error)
	Save(ctx context.Context, in service.CreateEventInput) error
}

// EventHandler bundles dependencies for event endpoints.
type EventHandler struct {
	Events EventService
}

func NewEventHandler(events EventService) *EventHandler {
	return &EventHandler{Events: events}
}

// pageParams reads the page/size query parameters with their defaults.
// Range validation happens in the service so it applies to every caller.
func pageParams(c echo.Context) (int, int) {
	page := 0
	if v := c.QueryParam("page"); v != "" {
		page, _ = strconv.Atoi(v)
	}
	size := 10
	if v := c.QueryParam("size"); v != "" {
		size, _ = strconv.Atoi(v)
	}
	return page, size
}

// GetAll lists events, optionally filtered by title prefix and
// location/category substring, ordered by date descending.
func (h *EventHandler) GetAll(c echo.Context) error {
	page, size := pageParams(c)
	title := strings.TrimSpace(c.QueryParam("title"))
	location := strings.TrimSpace(c.QueryParam("location"))
	category := strings.TrimSpace(c.QueryParam("category"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, total, err := h.Events.GetAll(ctx, page, size, title, location, category)
	if err != nil {
		if errors.Is(err, service.ErrPageOutOfRange) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data":  items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}

// Get returns the detail of a single event.
func (h *EventHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dto, err := h.Events.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, dto)
}

// GetAllByUsername lists the events owned by a member.
func (h *EventHandler) GetAllByUsername(c echo.Context) error {
	username := c.Param("username")
	page, size := pageParams(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, total, err := h.Events.GetAllByUsername(ctx, username, page, size)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPageOutOfRange):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrMemberNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data":  items,
		"total": total,
		"page":  page,
		"size":  size,
	})
}

// Create accepts a multipart form describing a new event with an optional
// image upload.
func (h *EventHandler) Create(c echo.Context) error {
	dateTime, err := parseDateTime(c.FormValue("dateTime"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid dateTime"})
	}
	totalTickets, err := strconv.Atoi(c.FormValue("totalTickets"))
	if err != nil || totalTickets <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid totalTickets"})
	}
	price, err := strconv.ParseFloat(c.FormValue("pricePerTicket"), 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid pricePerTicket"})
	}
	memberID, err := strconv.Atoi(c.FormValue("memberId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid memberId"})
	}
	title := strings.TrimSpace(c.FormValue("title"))
	location := strings.TrimSpace(c.FormValue("location"))
	if title == "" || location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title/location required"})
	}

	// The image is optional; a missing form file is not an error.
	file, err := c.FormFile("file")
	if err != nil {
		file = nil
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	err = h.Events.Save(ctx, service.CreateEventInput{
		Title:          title,
		Description:    c.FormValue("description"),
		Category:       c.FormValue("category"),
		DateTime:       dateTime,
		Location:       location,
		TotalTickets:   totalTickets,
		PricePerTicket: price,
		MemberID:       memberID,
		File:           file,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidDateTime), errors.Is(err, service.ErrInvalidPrice):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, repository.ErrMemberNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "member not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create event failed"})
	}
	return c.NoContent(http.StatusCreated)
}

func parseDateTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(dateTimeLayout, v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
