package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atrium/internal/delivery/http/middleware"
	"atrium/internal/delivery/http/validator"
	"atrium/internal/domain/entity"
	"atrium/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBuildingUsecase counts how far requests make it into the usecase layer.
type stubBuildingUsecase struct {
	getCalls    int
	createCalls int
}

func (s *stubBuildingUsecase) ListBuildings(_ context.Context) ([]*entity.Building, error) {
	return nil, nil
}

func (s *stubBuildingUsecase) GetBuilding(_ context.Context, id uuid.UUID) (*entity.Building, error) {
	s.getCalls++

	return &entity.Building{ID: id, Name: "Main"}, nil
}

func (s *stubBuildingUsecase) CreateBuilding(_ context.Context, _ uuid.UUID, input *usecase.CreateBuildingInput) (*entity.Building, error) {
	s.createCalls++

	return &entity.Building{ID: uuid.New(), Name: input.Name}, nil
}

func (s *stubBuildingUsecase) UpdateBuilding(_ context.Context, _, id uuid.UUID, input *usecase.UpdateBuildingInput) (*entity.Building, error) {
	return &entity.Building{ID: id, Name: input.Name}, nil
}

func (s *stubBuildingUsecase) DeleteBuilding(_ context.Context, _, _ uuid.UUID) error {
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newBuildingTestContext(method, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, "/", reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestBuildingHandler_Get_MalformedID(t *testing.T) {
	uc := &stubBuildingUsecase{}
	h := NewBuildingHandler(uc, discardLogger())

	c, rec := newBuildingTestContext(http.MethodGet, "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Zero(t, uc.getCalls)
	// The central error handler renders the response, not the handler.
	assert.Zero(t, rec.Body.Len())
}

func TestBuildingHandler_Create_MissingActor(t *testing.T) {
	uc := &stubBuildingUsecase{}
	h := NewBuildingHandler(uc, discardLogger())

	c, rec := newBuildingTestContext(http.MethodPost, `{"name":"Main Building"}`)

	err := h.Create(c)

	require.Error(t, err)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
	assert.Zero(t, uc.createCalls)
	assert.Zero(t, rec.Body.Len())
}

func TestBuildingHandler_Create_ValidationFailure(t *testing.T) {
	uc := &stubBuildingUsecase{}
	h := NewBuildingHandler(uc, discardLogger())

	c, rec := newBuildingTestContext(http.MethodPost, `{"address":"12 Main St"}`)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Zero(t, uc.createCalls)
}

func TestBuildingHandler_Create_Success(t *testing.T) {
	uc := &stubBuildingUsecase{}
	h := NewBuildingHandler(uc, discardLogger())

	c, rec := newBuildingTestContext(http.MethodPost, `{"name":"Main Building"}`)
	c.Set(middleware.ContextKeyUserID, uuid.New())

	err := h.Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, uc.createCalls)
	assert.Contains(t, rec.Body.String(), "Main Building")
}
