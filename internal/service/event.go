package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/carlosRosario19/EventEase-Backend/internal/model"
	"github.com/carlosRosario19/EventEase-Backend/internal/repository"
)

// MaxPageSize caps the size of a single result page.
const MaxPageSize = 100

// EventRepository is the data access port consumed by EventService.
type EventRepository interface {
	Search(ctx context.Context, q repository.EventSearchQuery) ([]model.Event, int64, error)
	FindByID(ctx context.Context, id int) (model.Event, error)
	FindByDateAndLocation(ctx context.Context, dateTime time.Time, location string) (model.Event, error)
	FindAllByMember(ctx context.Context, memberID, page, size int) ([]model.Event, int64, error)
	Create(ctx context.Context, e *model.Event) error
}

// MemberReader resolves event owners.
type MemberReader interface {
	FindByID(ctx context.Context, id int) (model.Member, error)
	FindByUsername(ctx context.Context, username string) (model.Member, error)
}

// ImageStore is the blob storage port consumed by EventService.
type ImageStore interface {
	Store(name string, src io.Reader, size int64) (string, error)
	Exists(name string) bool
}

// EventDTO is the response shape for event listings.
type EventDTO struct {
	ID             int     `json:"id"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	ImagePath      string  `json:"image_path,omitempty"`
	Category       string  `json:"category"`
	Location       string  `json:"location"`
	TicketsLeft    int     `json:"tickets_left"`
	PricePerTicket float64 `json:"price_per_ticket"`
}

// EventDetailDTO is the response shape for a single event fetch; unlike
// the listing shape it carries the event date.
type EventDetailDTO struct {
	ID             int       `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImagePath      string    `json:"image_path,omitempty"`
	Category       string    `json:"category"`
	DateTime       time.Time `json:"date_time"`
	Location       string    `json:"location"`
	TicketsLeft    int       `json:"tickets_left"`
	PricePerTicket float64   `json:"price_per_ticket"`
}

// CreateEventInput carries the fields of an event creation request. File
// is the optional uploaded image; a nil or empty file means no image.
type CreateEventInput struct {
	Title          string
	Description    string
	Category       string
	DateTime       time.Time
	Location       string
	TotalTickets   int
	PricePerTicket float64
	MemberID       int
	File           *multipart.FileHeader
}

// EventService owns validation and mapping for event operations.
type EventService struct {
	events  EventRepository
	members MemberReader
	images  ImageStore
}

func NewEventService(events EventRepository, members MemberReader, images ImageStore) *EventService {
	return &EventService{events: events, members: members, images: images}
}

func checkPage(page, size int) error {
	switch {
	case page < 0:
		return fmt.Errorf("%w: page number cannot be negative", ErrPageOutOfRange)
	case size <= 0:
		return fmt.Errorf("%w: page size must be greater than 0", ErrPageOutOfRange)
	case size > MaxPageSize:
		return fmt.Errorf("%w: page size cannot exceed %d", ErrPageOutOfRange, MaxPageSize)
	}
	return nil
}

// GetAll returns one page of events matching the optional filters plus the
// total match count. Page bounds are validated before any query runs.
func (s *EventService) GetAll(ctx context.Context, page, size int, title, location, category string) ([]EventDTO, int64, error) {
	if err := checkPage(page, size); err != nil {
		return nil, 0, err
	}
	events, total, err := s.events.Search(ctx, repository.EventSearchQuery{
		Title:    title,
		Location: location,
		Category: category,
		Page:     page,
		Size:     size,
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]EventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, s.toDTO(e))
	}
	return out, total, nil
}

// Get returns the detail shape of a single event.
func (s *EventService) Get(ctx context.Context, id int) (EventDetailDTO, error) {
	e, err := s.events.FindByID(ctx, id)
	if err != nil {
		return EventDetailDTO{}, err
	}
	return EventDetailDTO{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		ImagePath:      s.imageOrEmpty(e.ImagePath),
		Category:       e.Category,
		DateTime:       e.DateTime,
		Location:       e.Location,
		TicketsLeft:    e.TotalTickets - e.TicketsSold,
		PricePerTicket: e.PricePerTicket,
	}, nil
}

// GetAllByUsername returns one page of the events owned by the member with
// the given username.
func (s *EventService) GetAllByUsername(ctx context.Context, username string, page, size int) ([]EventDTO, int64, error) {
	if err := checkPage(page, size); err != nil {
		return nil, 0, err
	}
	m, err := s.members.FindByUsername(ctx, username)
	if err != nil {
		return nil, 0, err
	}
	events, total, err := s.events.FindAllByMember(ctx, m.ID, page, size)
	if err != nil {
		return nil, 0, err
	}
	out := make([]EventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, s.toDTO(e))
	}
	return out, total, nil
}

// Save validates and persists a new event. The checks run in a fixed
// order and the first failure wins: slot conflict, then date, then price,
// then image storage, then owner lookup.
func (s *EventService) Save(ctx context.Context, in CreateEventInput) error {
	if _, err := s.events.FindByDateAndLocation(ctx, in.DateTime, in.Location); err == nil {
		return ErrEventConflict
	} else if !errors.Is(err, repository.ErrEventNotFound) {
		return err
	}
	if !in.DateTime.After(time.Now()) {
		return ErrInvalidDateTime
	}
	if in.PricePerTicket <= 0 {
		return ErrInvalidPrice
	}

	imagePath := ""
	if in.File != nil && in.File.Size > 0 {
		name, err := s.storeImage(in.File)
		if err != nil {
			return fmt.Errorf("store event image: %w", err)
		}
		imagePath = name
	}

	m, err := s.members.FindByID(ctx, in.MemberID)
	if err != nil {
		return err
	}

	err = s.events.Create(ctx, &model.Event{
		Title:          in.Title,
		Description:    in.Description,
		Category:       in.Category,
		DateTime:       in.DateTime,
		Location:       in.Location,
		TotalTickets:   in.TotalTickets,
		TicketsSold:    0,
		PricePerTicket: in.PricePerTicket,
		ImagePath:      imagePath,
		MemberID:       m.ID,
		CreatedAt:      time.Now(),
	})
	// A concurrent creation can slip past the pre-insert check; the unique
	// key on (date_time, location) catches it and it is still a conflict.
	if errors.Is(err, repository.ErrEventExists) {
		return ErrEventConflict
	}
	return err
}

// storeImage writes the upload under a fresh random name that keeps the
// original extension, so stored names can never collide or carry path
// segments from the client.
func (s *EventService) storeImage(fh *multipart.FileHeader) (string, error) {
	name := uuid.New().String() + filepath.Ext(fh.Filename)
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()
	return s.images.Store(name, src, fh.Size)
}

// imageOrEmpty drops an image reference whose file is no longer readable;
// a lost image must not fail the fetch that references it.
func (s *EventService) imageOrEmpty(name string) string {
	if name == "" || !s.images.Exists(name) {
		return ""
	}
	return name
}

func (s *EventService) toDTO(e model.Event) EventDTO {
	return EventDTO{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		ImagePath:      s.imageOrEmpty(e.ImagePath),
		Category:       e.Category,
		Location:       e.Location,
		TicketsLeft:    e.TotalTickets - e.TicketsSold,
		PricePerTicket: e.PricePerTicket,
	}
}
