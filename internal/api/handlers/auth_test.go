package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hugh/go-roster/internal/api/dto"
	"github.com/hugh/go-roster/internal/api/handlers"
	"github.com/hugh/go-roster/internal/auth"
	"github.com/hugh/go-roster/internal/store"
	"github.com/hugh/go-roster/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authEnvelope struct {
	Status  string       `json:"status"`
	Message string       `json:"message"`
	Data    dto.AuthData `json:"data"`
}

func setupAuthTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db := testutil.SetupTestDB(t)
	authService := auth.NewService(store.NewGormStore(db), testutil.CreateTestJWTService())
	handler := handlers.NewAuthHandler(authService)

	r := chi.NewRouter()
	r.Post("/auth/register", handler.Register)
	r.Post("/auth/login", handler.Login)

	return r
}

func TestAuthHandler_Register(t *testing.T) {
	router := setupAuthTestRouter(t)

	t.Run("successful registration", func(t *testing.T) {
		body := map[string]string{
			"email":     "johndoe@example.com",
			"firstName": "John",
			"lastName":  "Doe",
			"password":  "password123",
			"phone":     "1234567890",
		}

		req := testutil.UnauthenticatedRequest(t, "POST", "/auth/register", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var resp authEnvelope
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Equal(t, "success", resp.Status)
		assert.NotEmpty(t, resp.Data.AccessToken)
		assert.Equal(t, "John", resp.Data.User.FirstName)
		assert.Equal(t, "Doe", resp.Data.User.LastName)
		assert.Equal(t, "johndoe@example.com", resp.Data.User.Email)
		assert.Equal(t, "1234567890", resp.Data.User.Phone)
		assert.NotEmpty(t, resp.Data.User.UserID)

		// The projection never carries the hash.
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("missing first and last name yields exactly those field errors", func(t *testing.T) {
		body := map[string]string{
			"email":    "missingfields@example.com",
			"password": "password123",
		}

		req := testutil.UnauthenticatedRequest(t, "POST", "/auth/register", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var resp dto.ValidationErrors
		testutil.ParseJSONResponse(t, rr, &resp)
		require.Len(t, resp.Errors, 2)
		assert.Contains(t, resp.Errors, dto.FieldError{
			Field: "firstName", Message: "First name must be between 1 and 50 characters",
		})
		assert.Contains(t, resp.Errors, dto.FieldError{
			Field: "lastName", Message: "Last name must be between 1 and 50 characters",
		})
	})

	t.Run("invalid email", func(t *testing.T) {
		body := map[string]string{
			"email":     "not-an-email",
			"firstName": "John",
			"lastName":  "Doe",
			"password":  "password123",
		}

		req := testutil.UnauthenticatedRequest(t, "POST", "/auth/register", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var resp dto.ValidationErrors
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Contains(t, resp.Errors, dto.FieldError{Field: "email", Message: "Invalid email address"})
	})

	t.Run("password too short", func(t *testing.T) {
		body := map[string]string{
			"email":     "shortpw@example.com",
			"firstName": "Short",
			"lastName":  "Password",
			"password":  "short",
		}

		req := testutil.UnauthenticatedRequest(t, "POST", "/auth/register", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var resp dto.ValidationErrors
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Contains(t, resp.Errors, dto.FieldError{
			Field: "password", Message: "Password must be at least 8 characters long",
		})
	})

	t.Run("duplicate email", func(t *testing.T) {
		body := map[string]string{
			"email":     "duplicate@example.com",
			"firstName": "First",
			"lastName":  "User",
			"password":  "password123",
		}

		req := testutil.UnauthenticatedRequest(t, "POST", "/auth/register", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusCreated, rr.Code)

		req = testutil.UnauthenticatedRequest(t, "POST", "/auth/register", body)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

		var resp dto.ValidationErrors
		testutil.ParseJSONResponse(t, rr, &resp)
		assert.Contains(t, resp.Errors, dto.FieldError{Field: "email", Message: "Email already in use"})
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/register", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthHandler_Login(t *testing.T) {
	router := setupAuthTestRouter(t)

	registerBody := map[string]string{
		"email":     "a@b.com",
		"firstName": "Login",
		"lastName":  "Test",
		"password":  "rightpw12",
	}
	req := testutil.UnauthenticatedRequest(t, "POST", "/auth/register", registerBody)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	t.Run("successful login returns a decodable token", func(t *testing.T) {
		body := map[string]string{"email": "a@b.com", "password": "rightpw12"}

		req := testutil.UnauthenticatedRequest(t, "POST", "/auth/login", body)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var resp authEnvelope
		testutil.ParseJSONResponse(t, rr, &resp)
		require.NotEmpty(t, resp.Data.AccessToken)
		assert.Equal(t, "a@b.com", resp.Data.User.Email)

		claims, err := testutil.CreateTestJWTService().ValidateToken(resp.Data.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", claims.Email)
		assert.True(t, claims.ExpiresAt.After(time.Now()))
	})

	t.Run("wrong password and unknown email are indistinguishable", func(t *testing.T) {
		wrongPw := map[string]string{"email": "a@b.com", "password": "wrongpw99"}
		req := testutil.UnauthenticatedRequest(t, "POST", "/auth/login", wrongPw)
		rrWrong := httptest.NewRecorder()
		router.ServeHTTP(rrWrong, req)

		unknown := map[string]string{"email": "nobody@b.com", "password": "rightpw12"}
		req = testutil.UnauthenticatedRequest(t, "POST", "/auth/login", unknown)
		rrUnknown := httptest.NewRecorder()
		router.ServeHTTP(rrUnknown, req)

		assert.Equal(t, http.StatusUnauthorized, rrWrong.Code)
		assert.Equal(t, http.StatusUnauthorized, rrUnknown.Code)
		assert.Equal(t, rrWrong.Body.String(), rrUnknown.Body.String())
	})
}
