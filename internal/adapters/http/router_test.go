package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpServer "notehive/internal/adapters/http"
	"notehive/internal/domain/entities"
	"notehive/internal/ports/api"
	"notehive/pkg/logger"
)

const validToken = "valid-token"

var testTenant = &entities.Tenant{
	ID:               "tenant-1",
	Slug:             "acme",
	Name:             "Acme",
	SubscriptionPlan: entities.PlanFree,
}

var testUser = &entities.User{
	ID:       "user-1",
	Email:    "admin@acme.test",
	Role:     entities.RoleAdmin,
	TenantID: "tenant-1",
}

type stubTokenService struct{}

func (s *stubTokenService) Issue(_ context.Context, _ *entities.User, _ *entities.Tenant) (string, error) {
	return validToken, nil
}

func (s *stubTokenService) Validate(_ context.Context, token string) (*entities.Claims, error) {
	if token != validToken {
		return nil, entities.ErrInvalidToken
	}
	return &entities.Claims{
		UserID: testUser.ID,
		Email:  testUser.Email,
		Role:   testUser.Role,
		Tenant: entities.NewTenantRefByID(testTenant.ID),
	}, nil
}

type stubResolver struct{}

func (s *stubResolver) Resolve(_ context.Context, ref entities.TenantRef) (*entities.Tenant, error) {
	if ref.Value != testTenant.ID {
		return nil, entities.ErrTenantNotFound
	}
	return testTenant, nil
}

type stubAuthUseCase struct{}

func (s *stubAuthUseCase) Login(_ context.Context, email, password string) (*api.LoginResult, error) {
	if email == "" || password == "" {
		return nil, entities.ErrMissingCredentials
	}
	if email != testUser.Email || password != "password" {
		return nil, entities.ErrInvalidCredentials
	}
	return &api.LoginResult{User: testUser, Tenant: testTenant, Token: validToken}, nil
}

type stubNotesUseCase struct {
	notes map[string]*entities.Note
}

func (s *stubNotesUseCase) List(_ context.Context, _ *entities.AuthContext) ([]*entities.Note, error) {
	result := make([]*entities.Note, 0, len(s.notes))
	for _, note := range s.notes {
		result = append(result, note)
	}
	return result, nil
}

func (s *stubNotesUseCase) Get(_ context.Context, actx *entities.AuthContext, noteID string) (*entities.Note, error) {
	note, ok := s.notes[noteID]
	if !ok || note.UserID != actx.UserID || note.TenantID != actx.TenantID {
		return nil, entities.ErrNoteNotFound
	}
	return note, nil
}

func (s *stubNotesUseCase) Create(_ context.Context, actx *entities.AuthContext, title, content string) (*entities.Note, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, entities.ErrEmptyTitle
	}
	if actx.SubscriptionPlan == entities.PlanFree && len(s.notes) >= entities.FreePlanNoteLimit {
		return nil, entities.ErrQuotaExceeded
	}
	note := &entities.Note{
		ID:       "note-" + title,
		Title:    title,
		Content:  content,
		UserID:   actx.UserID,
		TenantID: actx.TenantID,
	}
	s.notes[note.ID] = note
	return note, nil
}

func (s *stubNotesUseCase) Update(_ context.Context, actx *entities.AuthContext, noteID, title, content string) (*entities.Note, error) {
	note, err := s.Get(context.Background(), actx, noteID)
	if err != nil {
		return nil, err
	}
	note.Title = title
	note.Content = content
	return note, nil
}

func (s *stubNotesUseCase) Delete(_ context.Context, actx *entities.AuthContext, noteID string) error {
	if _, err := s.Get(context.Background(), actx, noteID); err != nil {
		return err
	}
	delete(s.notes, noteID)
	return nil
}

type stubTenantUseCase struct{}

func (s *stubTenantUseCase) UpgradeToPro(_ context.Context, actx *entities.AuthContext, targetSlug string) (*entities.Tenant, error) {
	if actx.Role != entities.RoleAdmin {
		return nil, entities.ErrForbidden
	}
	if actx.TenantSlug != strings.ToLower(targetSlug) {
		return nil, entities.ErrForbidden
	}
	upgraded := *testTenant
	upgraded.SubscriptionPlan = entities.PlanPro
	return &upgraded, nil
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	logger.SetGlobalLogger(testLogger)

	app := fiber.New()
	httpServer.SetupRouter(app,
		&stubAuthUseCase{},
		&stubNotesUseCase{notes: make(map[string]*entities.Note)},
		&stubTenantUseCase{},
		&stubTokenService{},
		&stubResolver{},
	)
	return app
}

func decodeBody(t *testing.T, resp io.Reader) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp).Decode(&body))
	return body
}

func TestRouter_Health(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_UnknownRoute(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodGet, "/nope", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRouter_CORSPreflight(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodOptions, "/notes", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "PUT")
}

func TestRouter_Login(t *testing.T) {
	app := newTestApp(t)

	t.Run("Успешный вход возвращает пользователя и токен", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"admin@acme.test","password":"password"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, validToken, body["token"])

		user, ok := body["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "admin@acme.test", user["email"])
		assert.Equal(t, "acme", user["tenant_slug"])
		assert.Equal(t, "free", user["subscription_plan"])
	})

	t.Run("Неверные данные дают 401", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"admin@acme.test","password":"wrong"}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, "Invalid credentials", body["error"])
	})

	t.Run("Пустые поля дают 400", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/auth/login",
			strings.NewReader(`{"email":"","password":""}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestRouter_NotesRequireAuth(t *testing.T) {
	app := newTestApp(t)

	t.Run("Без токена 401", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/notes", nil)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("С мусорным токеном 401", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/notes", nil)
		req.Header.Set("Authorization", "Bearer garbage")

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("Без схемы Bearer 401", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/notes", nil)
		req.Header.Set("Authorization", validToken)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
}

func TestRouter_NotesFlow(t *testing.T) {
	app := newTestApp(t)

	t.Run("Полный цикл: список пуст, три заметки, квота", func(t *testing.T) {
		listReq := httptest.NewRequest(fiber.MethodGet, "/notes", nil)
		listReq.Header.Set("Authorization", "Bearer "+validToken)

		resp, err := app.Test(listReq)
		require.NoError(t, err)
		_ = resp.Body.Close()
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		// Три заметки проходят, четвертая упирается в квоту free.
		for _, title := range []string{"a", "b", "c"} {
			req := httptest.NewRequest(fiber.MethodPost, "/notes",
				strings.NewReader(`{"title":"`+title+`","content":"x"}`))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+validToken)

			resp, err := app.Test(req)
			require.NoError(t, err)
			_ = resp.Body.Close()
			require.Equal(t, fiber.StatusCreated, resp.StatusCode)
		}

		fourth := httptest.NewRequest(fiber.MethodPost, "/notes",
			strings.NewReader(`{"title":"d","content":"x"}`))
		fourth.Header.Set("Content-Type", "application/json")
		fourth.Header.Set("Authorization", "Bearer "+validToken)

		resp, err = app.Test(fourth)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, "Free plan limit reached. Upgrade to Pro for unlimited notes.", body["error"])
	})

	t.Run("Перевод своего арендатора на pro", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/tenants/acme/upgrade", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp.Body)
		assert.Equal(t, "Subscription upgraded to Pro successfully", body["message"])

		tenant, ok := body["tenant"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "pro", tenant["subscription_plan"])
	})

	t.Run("Чужой арендатор дает 403", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodPost, "/tenants/globex/upgrade", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("Удаление несуществующей заметки дает 404", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodDelete, "/notes/missing", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
