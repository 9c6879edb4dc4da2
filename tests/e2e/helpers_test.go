//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/homefax/homefax-backend/internal/adapter/postgres"
	assignmentrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/assignment"
	auditrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/audit"
	communityrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/communityupdate"
	propertyrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/property"
	renovationrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/renovation"
	reportrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/report"
	"github.com/homefax/homefax-backend/internal/adapter/postgres/testhelper"
	tokenrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/token"
	userrepo "github.com/homefax/homefax-backend/internal/adapter/postgres/user"
	authpkg "github.com/homefax/homefax-backend/internal/auth"
	"github.com/homefax/homefax-backend/internal/config"
	"github.com/homefax/homefax-backend/internal/domain"
	adminsvc "github.com/homefax/homefax-backend/internal/service/admin"
	authsvc "github.com/homefax/homefax-backend/internal/service/auth"
	communitysvc "github.com/homefax/homefax-backend/internal/service/community"
	contractorsvc "github.com/homefax/homefax-backend/internal/service/contractor"
	propertysvc "github.com/homefax/homefax-backend/internal/service/property"
	reportsvc "github.com/homefax/homefax-backend/internal/service/report"
	usersvc "github.com/homefax/homefax-backend/internal/service/user"
	"github.com/homefax/homefax-backend/internal/transport/rest"
)

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// setupTestServer wires the complete application against a containerized
// database and serves it over httptest.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

	authCfg := config.AuthConfig{
		JWTSecret:        "e2e-test-secret",
		JWTIssuer:        "homefax-e2e",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  24 * time.Hour,
		PasswordHashCost: 4,
	}

	users := userrepo.New(pool)
	tokens := tokenrepo.New(pool)
	properties := propertyrepo.New(pool)
	reports := reportrepo.New(pool)
	updates := communityrepo.New(pool)
	renovations := renovationrepo.New(pool)
	assignments := assignmentrepo.New(pool)
	audit := auditrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	jwtManager := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	hasher := authpkg.NewPasswordHasher(authCfg.PasswordHashCost)

	authService := authsvc.NewService(logger, users, tokens, audit, tx, jwtManager, hasher, authCfg)
	userService := usersvc.NewService(logger, users, audit, tx)
	propertyService := propertysvc.NewService(logger, properties, audit, tx)
	reportService := reportsvc.NewService(logger, reports, audit, tx)
	communityService := communitysvc.NewService(logger, updates, audit, tx)
	contractorService := contractorsvc.NewService(logger, renovations, assignments, audit, tx)
	adminService := adminsvc.NewService(logger, reports, updates, properties, users, renovations, audit, tx)

	cfg := &config.Config{
		Auth: authCfg,
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		Rate: config.RateConfig{Enabled: false},
	}

	router := rest.NewRouter(rest.RouterDeps{
		Cfg:        cfg,
		Log:        logger,
		Validator:  authService,
		Health:     rest.NewHealthHandler(pool, "e2e"),
		Auth:       rest.NewAuthHandler(authService, logger),
		Users:      rest.NewUserHandler(userService, logger),
		Properties: rest.NewPropertyHandler(propertyService, logger),
		Reports:    rest.NewReportHandler(reportService, logger),
		Community:  rest.NewCommunityHandler(communityService, logger),
		Contractor: rest.NewContractorHandler(contractorService, logger),
		Admin:      rest.NewAdminHandler(adminService, reportService, communityService, logger),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtManager,
	}
}

// restRequest performs a JSON request against the test server. body may be
// nil for requests without a payload.
func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeBody decodes a JSON response body into a generic map and closes it.
func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// decodeList decodes a JSON array response body and closes it.
func decodeList(t *testing.T, resp *http.Response) []any {
	t.Helper()
	defer resp.Body.Close()

	var body []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// registerUser registers a user through the API and returns the access
// token and user ID.
func registerUser(t *testing.T, ts *testServer, role string) (token string, userID uuid.UUID) {
	t.Helper()

	email := fmt.Sprintf("%s-%s@example.com", role, uuid.New().String()[:8])
	resp := restRequest(t, ts, "POST", "/api/auth/register", "", map[string]any{
		"email":     email,
		"password":  "securepassword123",
		"role":      role,
		"firstName": "Test",
		"lastName":  "User",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken in response")

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user object in response")
	id, err := uuid.Parse(user["id"].(string))
	require.NoError(t, err)

	return token, id
}

// adminToken seeds an admin user directly (admins cannot self-register) and
// mints an access token for it.
func adminToken(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	admin := testhelper.SeedUser(t, ts.Pool, domain.UserRoleAdmin)
	token, err := ts.jwt.GenerateAccessToken(admin.ID, domain.UserRoleAdmin.String())
	require.NoError(t, err)
	return token, admin.ID
}
