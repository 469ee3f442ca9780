//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/peritagem-backend/internal/adapter/postgres"
	historyrepo "github.com/heartmarshall/peritagem-backend/internal/adapter/postgres/history"
	inspectionrepo "github.com/heartmarshall/peritagem-backend/internal/adapter/postgres/inspection"
	intakerepo "github.com/heartmarshall/peritagem-backend/internal/adapter/postgres/intake"
	profilerepo "github.com/heartmarshall/peritagem-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/peritagem-backend/internal/adapter/postgres/testhelper"
	authpkg "github.com/heartmarshall/peritagem-backend/internal/auth"
	"github.com/heartmarshall/peritagem-backend/internal/config"
	"github.com/heartmarshall/peritagem-backend/internal/domain"
	authsvc "github.com/heartmarshall/peritagem-backend/internal/service/auth"
	inspectionsvc "github.com/heartmarshall/peritagem-backend/internal/service/inspection"
	intakesvc "github.com/heartmarshall/peritagem-backend/internal/service/intake"
	profilesvc "github.com/heartmarshall/peritagem-backend/internal/service/profile"
	"github.com/heartmarshall/peritagem-backend/internal/telemetry"
	"github.com/heartmarshall/peritagem-backend/internal/transport/dataloader"
	"github.com/heartmarshall/peritagem-backend/internal/transport/middleware"
	"github.com/heartmarshall/peritagem-backend/internal/transport/rest"
)

type testServer struct {
	URL      string
	Client   *http.Client
	Pool     *pgxpool.Pool
	profiles *profilerepo.Repo
}

// setupTestServer wires the full stack against a migrated test database,
// the same way app.Run does, and serves it over httptest.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.Default()

	authCfg := config.AuthConfig{
		JWTSecret:          "e2e-secret-at-least-32-characters!!",
		JWTIssuer:          "peritagem-e2e",
		AccessTokenTTL:     time.Hour,
		PasswordCost:       4,
		LoginRatePerMinute: 1000,
	}

	profiles := profilerepo.New(pool)
	inspections := inspectionrepo.New(pool)
	history := historyrepo.New(pool)
	intake := intakerepo.New(pool)

	lifecycle, err := telemetry.NewLifecycle(otel.GetMeterProvider(), otel.GetTracerProvider())
	require.NoError(t, err)

	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)
	authService := authsvc.NewService(logger, profiles, jwtMgr, authCfg)
	inspectionService := inspectionsvc.NewService(
		logger, inspections, history, profiles,
		dataloader.NewActorResolver(profiles), lifecycle,
		inspectionsvc.Limits{DefaultPageSize: 50, MaxPageSize: 200},
	)
	intakeService := intakesvc.NewService(logger, intake, inspections, profiles, postgres.NewTxManager(pool))
	profileService := profilesvc.NewService(logger, profiles)

	limiter := middleware.NewRateLimiter(authCfg.LoginRatePerMinute, logger)
	t.Cleanup(limiter.Stop)

	router := rest.NewRouter(rest.Handlers{
		Health:      rest.NewHealthHandler(pool, "test-version"),
		Auth:        rest.NewAuthHandler(authService, logger),
		Inspections: rest.NewInspectionHandler(inspectionService, logger),
		Intake:      rest.NewIntakeHandler(intakeService, logger),
		Profiles:    rest.NewProfileHandler(profileService, logger),
	}, limiter.Limit())

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.CORS(config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         86400,
		}),
		middleware.Auth(authService),
		dataloader.Middleware(profiles),
	)(router)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, profiles: profiles}
}

// do sends a JSON request and returns the status and raw body.
func (ts *testServer) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, ts.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out.Bytes()
}

// doJSON is do plus decoding of a JSON object body.
func (ts *testServer) doJSON(t *testing.T, method, path string, body any, token string) (int, map[string]any) {
	t.Helper()

	status, raw := ts.do(t, method, path, body, token)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return status, out
}

type member struct {
	ID    uuid.UUID
	Token string
}

// newMember registers a profile over HTTP, admits it directly in the
// database with role and company, and logs in.
func (ts *testServer) newMember(t *testing.T, role domain.Role, company *uuid.UUID) member {
	t.Helper()

	email := fmt.Sprintf("%s-%s@shop.test", role, uuid.NewString()[:8])
	password := "correct-horse-battery"

	status, body := ts.doJSON(t, http.MethodPost, "/auth/register", map[string]any{
		"email": email, "name": "E2E " + string(role), "password": password,
	}, "")
	require.Equal(t, http.StatusCreated, status, body)
	id := uuid.MustParse(body["id"].(string))

	approved := domain.ProfileStatusApproved
	_, err := ts.profiles.Update(context.Background(), id, domain.ProfileUpdateParams{
		Role: &role, Status: &approved, CompanyID: company,
	})
	require.NoError(t, err)

	status, body = ts.doJSON(t, http.MethodPost, "/auth/login", map[string]any{
		"email": email, "password": password,
	}, "")
	require.Equal(t, http.StatusOK, status, body)

	return member{ID: id, Token: body["accessToken"].(string)}
}

// transition posts an action and returns the status and decoded body.
func (ts *testServer) transition(t *testing.T, m member, id, action string, body any) (int, map[string]any) {
	t.Helper()
	return ts.doJSON(t, http.MethodPost, "/inspections/"+id+"/transitions/"+action, body, m.Token)
}

func stageOf(t *testing.T, inspection map[string]any) int {
	t.Helper()
	stage, ok := inspection["stage"].(float64)
	require.True(t, ok, "expected numeric stage in %v", inspection)
	return int(stage)
}
