package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-epi-api/internal/application/dto"
	"github.com/jhoicas/controle-epi-api/internal/domain"
)

func TestStatusFor_MapeiaCadaTipo(t *testing.T) {
	cases := map[domain.ErrorKind]int{
		domain.KindValidation:        http.StatusBadRequest,
		domain.KindInsufficientStock: http.StatusBadRequest,
		domain.KindNotFound:          http.StatusNotFound,
		domain.KindDependentRecords:  http.StatusConflict,
		domain.KindConflict:          http.StatusConflict,
		domain.KindUnauthorized:      http.StatusUnauthorized,
		domain.KindForbidden:         http.StatusForbidden,
		domain.KindStorage:           http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, statusFor(kind), string(kind))
	}
}

func errorApp(err error) *fiber.App {
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error { return respondError(c, err) })
	return app
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func TestRespondError_EstoqueInsuficiente(t *testing.T) {
	resp, err := errorApp(domain.ErrInsufficientStock).Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "INSUFFICIENT_STOCK", body.Code)
	assert.Equal(t, "Quantidade insuficiente em estoque", body.Message)
}

func TestRespondError_NaoEncontradoEnvolvido(t *testing.T) {
	wrapped := errors.Join(domain.ErrLotNotFound)
	resp, err := errorApp(wrapped).Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

func TestRespondError_FalhaDeBancoNaoVazaDetalhe(t *testing.T) {
	resp, err := errorApp(errors.New("pq: connection refused")).Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "STORAGE", body.Code)
	assert.NotContains(t, body.Message, "connection refused")
}

func TestParamIDEQueryInt(t *testing.T) {
	app := fiber.New()
	app.Get("/itens/:id", func(c *fiber.Ctx) error {
		id, err := paramID(c, "id")
		if err != nil {
			return respondError(c, err)
		}
		dias, err := queryInt(c, "dias", 30)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(fiber.Map{"id": id, "dias": dias})
	})

	cases := []struct {
		url    string
		status int
	}{
		{"/itens/7", http.StatusOK},
		{"/itens/7?dias=5", http.StatusOK},
		{"/itens/abc", http.StatusBadRequest},
		{"/itens/0", http.StatusBadRequest},
		{"/itens/7?dias=-1", http.StatusBadRequest},
	}
	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, tc.url, nil), -1)
		require.NoError(t, err)
		assert.Equal(t, tc.status, resp.StatusCode, tc.url)
		resp.Body.Close()
	}
}

// fakeCategories guarda categorias em memória.
type fakeCategories struct {
	items map[int64]dto.CategoryResponse
	next  int64
}

func (f *fakeCategories) Create(_ context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	f.next++
	out := dto.CategoryResponse{ID: f.next, Name: in.Name}
	f.items[out.ID] = out
	return &out, nil
}

func (f *fakeCategories) GetByID(_ context.Context, id int64) (*dto.CategoryResponse, error) {
	out, ok := f.items[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	return &out, nil
}

func (f *fakeCategories) Update(ctx context.Context, id int64, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if _, err := f.GetByID(ctx, id); err != nil {
		return nil, err
	}
	out := dto.CategoryResponse{ID: id, Name: in.Name}
	f.items[id] = out
	return &out, nil
}

func (f *fakeCategories) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeCategories) List(context.Context) ([]dto.CategoryResponse, error) {
	out := make([]dto.CategoryResponse, 0, len(f.items))
	for _, v := range f.items {
		out = append(out, v)
	}
	return out, nil
}

func catalogApp() *fiber.App {
	app := fiber.New()
	svc := &fakeCategories{items: map[int64]dto.CategoryResponse{}}
	pass := func(c *fiber.Ctx) error { return c.Next() }
	newCatalogHandler[dto.CategoryRequest, dto.CategoryResponse](svc, "Categoria excluída com sucesso").
		mount(app.Group("/categorias"), pass)
	return app
}

func jsonRequest(method, url, body string) *http.Request {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCatalogHandler_CicloCompleto(t *testing.T) {
	app := catalogApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/categorias", `{"nome_categoria":"Proteção auditiva"}`), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.CategoryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, int64(1), created.ID)

	resp, err = app.Test(jsonRequest(http.MethodPut, "/categorias/1", `{"nome_categoria":"Auditiva"}`), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/categorias/1", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/categorias/1", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBind_CampoObrigatorioAusente(t *testing.T) {
	app := catalogApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/categorias", `{}`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.NotNil(t, body.Details)
}

func TestBind_CorpoMalformado(t *testing.T) {
	app := catalogApp()

	resp, err := app.Test(jsonRequest(http.MethodPost, "/categorias", `{"nome_categoria":`), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}

type recordingObserver struct {
	method string
	status int
}

func (r *recordingObserver) ObserveRequest(method string, status int) {
	r.method, r.status = method, status
}

func TestRequestLogger_ObservaStatus(t *testing.T) {
	obs := &recordingObserver{}
	app := fiber.New()
	app.Use(RequestLogger(zerolog.Nop(), obs))
	app.Get("/x", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusTeapot) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.MethodGet, obs.method)
	assert.Equal(t, fiber.StatusTeapot, obs.status)
}

func TestRequestLogger_ErroDoHandlerViraResposta(t *testing.T) {
	obs := &recordingObserver{}
	app := fiber.New()
	app.Use(RequestLogger(zerolog.Nop(), obs))
	app.Get("/x", func(c *fiber.Ctx) error { return fiber.ErrNotFound })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, obs.status)
}
