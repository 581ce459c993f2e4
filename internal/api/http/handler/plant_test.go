package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/plantnet/plantnet-server/internal/model"
	"github.com/plantnet/plantnet-server/internal/testutil"
)

type mockCatalogService struct {
	mock.Mock
}

func (m *mockCatalogService) List(ctx context.Context) ([]model.Plant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Plant), args.Error(1)
}

func (m *mockCatalogService) Get(ctx context.Context, id uuid.UUID) (model.Plant, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Plant), args.Error(1)
}

func (m *mockCatalogService) Add(ctx context.Context, plant model.Plant) (model.Plant, error) {
	args := m.Called(ctx, plant)
	return args.Get(0).(model.Plant), args.Error(1)
}

func (m *mockCatalogService) AttachImage(ctx context.Context, id uuid.UUID, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, id, reader, size, contentType)
	return args.Error(0)
}

func (m *mockCatalogService) Image(ctx context.Context, id uuid.UUID) (io.ReadCloser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

// withURLParam routes the request through chi so URLParam resolves.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestPlant_List(t *testing.T) {
	svc := &mockCatalogService{}
	svc.On("List", mock.Anything).Return([]model.Plant{{Name: "Monstera", Price: 10}}, nil)

	h := NewPlant(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/plants", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Monstera")
}

func TestPlant_Get_InvalidID(t *testing.T) {
	svc := &mockCatalogService{}
	h := NewPlant(svc, testutil.MakeNoopLogger())

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/plant/abc", nil), "id", "abc")
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestPlant_Get_NotFound(t *testing.T) {
	svc := &mockCatalogService{}
	id := uuid.New()
	svc.On("Get", mock.Anything, id).Return(model.Plant{}, model.ErrNotFound)

	h := NewPlant(svc, testutil.MakeNoopLogger())

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/plant/"+id.String(), nil), "id", id.String())
	rec := httptest.NewRecorder()
	h.Get(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlant_Add_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"price":10}`},
		{name: "zero price", body: `{"name":"Fern","price":0}`},
		{name: "negative stock", body: `{"name":"Fern","price":10,"stock":-1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCatalogService{}
			h := NewPlant(svc, testutil.MakeNoopLogger())

			rec := httptest.NewRecorder()
			h.Add(rec, httptest.NewRequest(http.MethodPost, "/add-plant", strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			svc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestPlant_Add_Success(t *testing.T) {
	svc := &mockCatalogService{}
	id := uuid.New()
	svc.On("Add", mock.Anything, mock.MatchedBy(func(p model.Plant) bool {
		return p.Name == "Fern" && p.Price == 12.50
	})).Return(model.Plant{ID: id, Name: "Fern", Price: 12.50}, nil)

	h := NewPlant(svc, testutil.MakeNoopLogger())

	rec := httptest.NewRecorder()
	h.Add(rec, httptest.NewRequest(http.MethodPost, "/add-plant", strings.NewReader(`{"name":"Fern","price":12.50,"stock":4}`)))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"insertedId":"`+id.String()+`"}`, rec.Body.String())
}

func TestPlant_Image_Streams(t *testing.T) {
	svc := &mockCatalogService{}
	id := uuid.New()
	svc.On("Image", mock.Anything, id).Return(io.NopCloser(bytes.NewReader([]byte("img-bytes"))), nil)

	h := NewPlant(svc, testutil.MakeNoopLogger())

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/plant/"+id.String()+"/image", nil), "id", id.String())
	rec := httptest.NewRecorder()
	h.Image(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "img-bytes", rec.Body.String())
}
