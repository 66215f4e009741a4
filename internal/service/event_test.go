package service

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosRosario19/EventEase-Backend/internal/model"
	"github.com/carlosRosario19/EventEase-Backend/internal/repository"
)

// --- Mock EventRepository ---

type mockEventRepo struct {
	searchFn          func(ctx context.Context, q repository.EventSearchQuery) ([]model.Event, int64, error)
	findByIDFn        func(ctx context.Context, id int) (model.Event, error)
	findByDateLocFn   func(ctx context.Context, dateTime time.Time, location string) (model.Event, error)
	findAllByMemberFn func(ctx context.Context, memberID, page, size int) ([]model.Event, int64, error)
	createFn          func(ctx context.Context, e *model.Event) error
}

func (m *mockEventRepo) Search(ctx context.Context, q repository.EventSearchQuery) ([]model.Event, int64, error) {
	return m.searchFn(ctx, q)
}
func (m *mockEventRepo) FindByID(ctx context.Context, id int) (model.Event, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockEventRepo) FindByDateAndLocation(ctx context.Context, dateTime time.Time, location string) (model.Event, error) {
	return m.findByDateLocFn(ctx, dateTime, location)
}
func (m *mockEventRepo) FindAllByMember(ctx context.Context, memberID, page, size int) ([]model.Event, int64, error) {
	return m.findAllByMemberFn(ctx, memberID, page, size)
}
func (m *mockEventRepo) Create(ctx context.Context, e *model.Event) error {
	return m.createFn(ctx, e)
}

// --- Mock MemberReader ---

type mockMemberReader struct {
	findByIDFn       func(ctx context.Context, id int) (model.Member, error)
	findByUsernameFn func(ctx context.Context, username string) (model.Member, error)
}

func (m *mockMemberReader) FindByID(ctx context.Context, id int) (model.Member, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockMemberReader) FindByUsername(ctx context.Context, username string) (model.Member, error) {
	return m.findByUsernameFn(ctx, username)
}

// --- Mock ImageStore ---

type mockImageStore struct {
	storeFn  func(name string, src io.Reader, size int64) (string, error)
	existsFn func(name string) bool
}

func (m *mockImageStore) Store(name string, src io.Reader, size int64) (string, error) {
	return m.storeFn(name, src, size)
}
func (m *mockImageStore) Exists(name string) bool {
	if m.existsFn == nil {
		return true
	}
	return m.existsFn(name)
}

// --- Tests ---

func sampleEvent() model.Event {
	return model.Event{
		ID:             1,
		Title:          "Tech Conference",
		Description:    "Annual meetup",
		Category:       "Technology",
		DateTime:       time.Date(2027, 6, 1, 19, 0, 0, 0, time.UTC),
		Location:       "Exhibition Park",
		TotalTickets:   100,
		TicketsSold:    50,
		PricePerTicket: 25,
		MemberID:       7,
	}
}

func failSearch(t *testing.T) func(context.Context, repository.EventSearchQuery) ([]model.Event, int64, error) {
	return func(context.Context, repository.EventSearchQuery) ([]model.Event, int64, error) {
		t.Fatal("search must not run for out-of-range pages")
		return nil, 0, nil
	}
}

func TestGetAll_NegativePage(t *testing.T) {
	svc := NewEventService(&mockEventRepo{searchFn: failSearch(t)}, &mockMemberReader{}, &mockImageStore{})

	_, _, err := svc.GetAll(context.Background(), -1, 10, "", "", "")

	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestGetAll_ZeroSize(t *testing.T) {
	svc := NewEventService(&mockEventRepo{searchFn: failSearch(t)}, &mockMemberReader{}, &mockImageStore{})

	_, _, err := svc.GetAll(context.Background(), 0, 0, "", "", "")

	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestGetAll_SizeOverCeiling(t *testing.T) {
	svc := NewEventService(&mockEventRepo{searchFn: failSearch(t)}, &mockMemberReader{}, &mockImageStore{})

	_, _, err := svc.GetAll(context.Background(), 0, MaxPageSize+1, "", "", "")

	assert.ErrorIs(t, err, ErrPageOutOfRange)
}

func TestGetAll_MaxSizeAllowed(t *testing.T) {
	repo := &mockEventRepo{
		searchFn: func(ctx context.Context, q repository.EventSearchQuery) ([]model.Event, int64, error) {
			return nil, 0, nil
		},
	}
	svc := NewEventService(repo, &mockMemberReader{}, &mockImageStore{})

	_, _, err := svc.GetAll(context.Background(), 0, MaxPageSize, "", "", "")

	assert.NoError(t, err)
}

func TestGetAll_PassesFilters(t *testing.T) {
	var got repository.EventSearchQuery
	repo := &mockEventRepo{
		searchFn: func(ctx context.Context, q repository.EventSearchQuery) ([]model.Event, int64, error) {
			got = q
			return []model.Event{sampleEvent()}, 1, nil
		},
	}
	svc := NewEventService(repo, &mockMemberReader{}, &mockImageStore{})

	items, total, err := svc.GetAll(context.Background(), 2, 25, "Tech", "Park", "Music")

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)
	assert.Equal(t, "Tech", got.Title)
	assert.Equal(t, "Park", got.Location)
	assert.Equal(t, "Music", got.Category)
	assert.Equal(t, 2, got.Page)
	assert.Equal(t, 25, got.Size)
}

func TestGetAll_ComputesTicketsLeft(t *testing.T) {
	repo := &mockEventRepo{
		searchFn: func(ctx context.Context, q repository.EventSearchQuery) ([]model.Event, int64, error) {
			return []model.Event{sampleEvent()}, 1, nil
		},
	}
	svc := NewEventService(repo, &mockMemberReader{}, &mockImageStore{})

	items, _, err := svc.GetAll(context.Background(), 0, 10, "", "", "")

	require.NoError(t, err)
	assert.Equal(t, 50, items[0].TicketsLeft)
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id int) (model.Event, error) {
			return model.Event{}, repository.ErrEventNotFound
		},
	}
	svc := NewEventService(repo, &mockMemberReader{}, &mockImageStore{})

	_, err := svc.Get(context.Background(), 99)

	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}

func TestGet_MissingImageDegrades(t *testing.T) {
	e := sampleEvent()
	e.ImagePath = "gone.png"
	repo := &mockEventRepo{
		findByIDFn: func(ctx context.Context, id int) (model.Event, error) { return e, nil },
	}
	images := &mockImageStore{existsFn: func(name string) bool { return false }}
	svc := NewEventService(repo, &mockMemberReader{}, images)

	dto, err := svc.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.Empty(t, dto.ImagePath)
	assert.Equal(t, 50, dto.TicketsLeft)
	assert.Equal(t, e.DateTime, dto.DateTime)
}

func TestGetAllByUsername_MemberNotFound(t *testing.T) {
	members := &mockMemberReader{
		findByUsernameFn: func(ctx context.Context, username string) (model.Member, error) {
			return model.Member{}, repository.ErrMemberNotFound
		},
	}
	svc := NewEventService(&mockEventRepo{}, members, &mockImageStore{})

	_, _, err := svc.GetAllByUsername(context.Background(), "ghost", 0, 10)

	assert.ErrorIs(t, err, repository.ErrMemberNotFound)
}

func TestGetAllByUsername_Success(t *testing.T) {
	members := &mockMemberReader{
		findByUsernameFn: func(ctx context.Context, username string) (model.Member, error) {
			return model.Member{ID: 7, Username: username}, nil
		},
	}
	var gotMemberID int
	repo := &mockEventRepo{
		findAllByMemberFn: func(ctx context.Context, memberID, page, size int) ([]model.Event, int64, error) {
			gotMemberID = memberID
			return []model.Event{sampleEvent()}, 1, nil
		},
	}
	svc := NewEventService(repo, members, &mockImageStore{})

	items, total, err := svc.GetAllByUsername(context.Background(), "alice", 0, 10)

	require.NoError(t, err)
	assert.Equal(t, 7, gotMemberID)
	assert.Equal(t, int64(1), total)
	assert.Len(t, items, 1)
}

func saveInput() CreateEventInput {
	return CreateEventInput{
		Title:          "Tech Conference",
		Description:    "Annual meetup",
		Category:       "Technology",
		DateTime:       time.Now().Add(48 * time.Hour),
		Location:       "Exhibition Park",
		TotalTickets:   100,
		PricePerTicket: 25,
		MemberID:       7,
	}
}

func slotFree(ctx context.Context, dateTime time.Time, location string) (model.Event, error) {
	return model.Event{}, repository.ErrEventNotFound
}

func TestSave_ConflictWinsOverOtherFailures(t *testing.T) {
	repo := &mockEventRepo{
		findByDateLocFn: func(ctx context.Context, dateTime time.Time, location string) (model.Event, error) {
			return sampleEvent(), nil
		},
	}
	svc := NewEventService(repo, &mockMemberReader{}, &mockImageStore{})

	// Past date and non-positive price would fail too; the slot conflict
	// must still be the reported error.
	in := saveInput()
	in.DateTime = time.Now().Add(-time.Hour)
	in.PricePerTicket = -1

	err := svc.Save(context.Background(), in)

	assert.ErrorIs(t, err, ErrEventConflict)
}

func TestSave_PastDateWinsOverBadPrice(t *testing.T) {
	repo := &mockEventRepo{findByDateLocFn: slotFree}
	svc := NewEventService(repo, &mockMemberReader{}, &mockImageStore{})

	in := saveInput()
	in.DateTime = time.Now().Add(-time.Hour)
	in.PricePerTicket = -1

	err := svc.Save(context.Background(), in)

	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestSave_NonPositivePrice(t *testing.T) {
	repo := &mockEventRepo{findByDateLocFn: slotFree}
	svc := NewEventService(repo, &mockMemberReader{}, &mockImageStore{})

	in := saveInput()
	in.PricePerTicket = 0

	err := svc.Save(context.Background(), in)

	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestSave_MemberNotFound(t *testing.T) {
	repo := &mockEventRepo{
		findByDateLocFn: slotFree,
		createFn: func(ctx context.Context, e *model.Event) error {
			t.Fatal("create must not run when the member is missing")
			return nil
		},
	}
	members := &mockMemberReader{
		findByIDFn: func(ctx context.Context, id int) (model.Member, error) {
			return model.Member{}, repository.ErrMemberNotFound
		},
	}
	svc := NewEventService(repo, members, &mockImageStore{})

	err := svc.Save(context.Background(), saveInput())

	assert.ErrorIs(t, err, repository.ErrMemberNotFound)
}

func TestSave_Success(t *testing.T) {
	var created *model.Event
	repo := &mockEventRepo{
		findByDateLocFn: slotFree,
		createFn: func(ctx context.Context, e *model.Event) error {
			created = e
			e.ID = 42
			return nil
		},
	}
	members := &mockMemberReader{
		findByIDFn: func(ctx context.Context, id int) (model.Member, error) {
			return model.Member{ID: id, Username: "alice"}, nil
		},
	}
	svc := NewEventService(repo, members, &mockImageStore{})

	err := svc.Save(context.Background(), saveInput())

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 0, created.TicketsSold)
	assert.Equal(t, 7, created.MemberID)
	assert.Empty(t, created.ImagePath)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestSave_RacedDuplicateReportsConflict(t *testing.T) {
	// The slot looks free at check time but a concurrent creation takes it
	// before the insert lands.
	repo := &mockEventRepo{
		findByDateLocFn: slotFree,
		createFn: func(ctx context.Context, e *model.Event) error {
			return repository.ErrEventExists
		},
	}
	members := &mockMemberReader{
		findByIDFn: func(ctx context.Context, id int) (model.Member, error) {
			return model.Member{ID: id, Username: "alice"}, nil
		},
	}
	svc := NewEventService(repo, members, &mockImageStore{})

	err := svc.Save(context.Background(), saveInput())

	assert.ErrorIs(t, err, ErrEventConflict)
}

// multipartFile builds a real multipart.FileHeader the way echo would hand
// it to the handler.
func multipartFile(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["file"][0]
}

func TestSave_StoresImageUnderGeneratedName(t *testing.T) {
	var created *model.Event
	repo := &mockEventRepo{
		findByDateLocFn: slotFree,
		createFn: func(ctx context.Context, e *model.Event) error {
			created = e
			return nil
		},
	}
	members := &mockMemberReader{
		findByIDFn: func(ctx context.Context, id int) (model.Member, error) {
			return model.Member{ID: id}, nil
		},
	}
	var storedName string
	var storedBytes []byte
	images := &mockImageStore{
		storeFn: func(name string, src io.Reader, size int64) (string, error) {
			storedName = name
			b, err := io.ReadAll(src)
			storedBytes = b
			return name, err
		},
	}
	svc := NewEventService(repo, members, images)

	in := saveInput()
	in.File = multipartFile(t, "poster.png", []byte("png-bytes"))

	err := svc.Save(context.Background(), in)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, storedName, created.ImagePath)
	assert.Equal(t, ".png", filepath.Ext(storedName))
	assert.NotEqual(t, "poster.png", storedName) // name is regenerated, not client-controlled
	assert.Equal(t, []byte("png-bytes"), storedBytes)
}

func TestSave_StorageFailureAborts(t *testing.T) {
	repo := &mockEventRepo{
		findByDateLocFn: slotFree,
		createFn: func(ctx context.Context, e *model.Event) error {
			t.Fatal("create must not run after a storage failure")
			return nil
		},
	}
	images := &mockImageStore{
		storeFn: func(name string, src io.Reader, size int64) (string, error) {
			return "", assert.AnError
		},
	}
	svc := NewEventService(repo, &mockMemberReader{}, images)

	in := saveInput()
	in.File = multipartFile(t, "poster.png", []byte("png-bytes"))

	err := svc.Save(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, strings.Contains(err.Error(), "store event image"))
}
