package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/goleak"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/config"
	"github.com/zapponejosh/lunar-calendar-api/internal/database"
	"github.com/zapponejosh/lunar-calendar-api/internal/festival"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("database/sql.(*DB).connectionOpener"),
	)
}

// =============================================================================
// TEST SETUP HELPERS
// =============================================================================

const testAPIKey = "test-admin-key"

// testEnv sets up a complete test environment with database, config, and router
type testEnv struct {
	db     *database.DB
	cfg    *config.Config
	router http.Handler
}

// setupTest creates a fresh test environment. "Today" is 2023-01-22 UTC.
func setupTest(t *testing.T) *testEnv {
	t.Helper()

	dbCfg := database.Config{
		Path:            ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError + 4, // Quiet during tests
	}))

	db, err := database.Open(dbCfg, logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	cfg := &config.Config{
		Port:         8080,
		Env:          config.EnvDevelopment,
		DatabasePath: ":memory:",
		APIKey:       testAPIKey,
		LogLevel:     "error",
		LogFormat:    "text",
		MaxRangeDays: 90,
		Location:     time.UTC,
	}

	conv := calendar.NewConverter(
		calendar.WithClock(calendar.FixedClock(time.Date(2023, 1, 22, 9, 30, 0, 0, time.UTC))),
		calendar.WithLocation(time.UTC),
	)

	handlers := NewHandlers(db, conv, festival.Default(), cfg, logger)

	return &testEnv{
		db:     db,
		cfg:    cfg,
		router: SetupRoutes(handlers, cfg, logger),
	}
}

// envelope mirrors Response with the payload left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorInfo      `json:"error"`
}

// do sends a request through the router and decodes the envelope.
func (env *testEnv) do(t *testing.T, method, path, apiKey string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	var body envelope
	if rr.Code != http.StatusNoContent {
		if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v, body: %s", err, rr.Body.String())
		}
	}
	return rr, body
}

func decodeData(t *testing.T, body envelope, v any) {
	t.Helper()
	if err := json.Unmarshal(body.Data, v); err != nil {
		t.Fatalf("decode data: %v, data: %s", err, body.Data)
	}
}

func errorCode(body envelope) string {
	if body.Error == nil {
		return ""
	}
	return body.Error.Code
}

// =============================================================================
// MIDDLEWARE TESTS
// =============================================================================

func TestRequestIDMiddleware(t *testing.T) {
	env := setupTest(t)

	rr, _ := env.do(t, http.MethodGet, "/health", "")
	id := rr.Header().Get("X-Request-ID")
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("X-Request-ID = %q, want a UUID: %v", id, err)
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	rr = httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "client-supplied" {
		t.Errorf("X-Request-ID = %q, want %q", got, "client-supplied")
	}
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError + 4}))
	handler := RecoveryMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	var body envelope
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Success || errorCode(body) != "INTERNAL_ERROR" {
		t.Errorf("body = %+v, want INTERNAL_ERROR", body)
	}
}

func TestCORSPreflight(t *testing.T) {
	env := setupTest(t)

	rr, _ := env.do(t, http.MethodOptions, "/api/v1/today", "")
	if rr.Code != http.StatusNoContent {
		t.Errorf("Status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.Config
		apiKey     string
		wantStatus int
	}{
		{"valid key", config.Config{Env: config.EnvProduction, APIKey: "k"}, "k", http.StatusOK},
		{"missing key", config.Config{Env: config.EnvProduction, APIKey: "k"}, "", http.StatusUnauthorized},
		{"wrong key", config.Config{Env: config.EnvProduction, APIKey: "k"}, "nope", http.StatusUnauthorized},
		{"development without key", config.Config{Env: config.EnvDevelopment}, "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			handler := AuthMiddleware(&cfg, slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				}),
			)

			req := httptest.NewRequest(http.MethodPost, "/admin", nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Errorf("Status = %d, want %d", rr.Code, tt.wantStatus)
			}
		})
	}
}

// =============================================================================
// CONVERSION ENDPOINT TESTS
// =============================================================================

func TestHealthCheck(t *testing.T) {
	env := setupTest(t)

	rr, body := env.do(t, http.MethodGet, "/health", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !body.Success {
		t.Errorf("Success = false, want true")
	}
}

func TestNotFoundRoute(t *testing.T) {
	env := setupTest(t)

	rr, body := env.do(t, http.MethodGet, "/api/v1/nope", "")
	if rr.Code != http.StatusNotFound || errorCode(body) != "NOT_FOUND" {
		t.Errorf("got %d %q, want 404 NOT_FOUND", rr.Code, errorCode(body))
	}
}

func TestGetToday(t *testing.T) {
	env := setupTest(t)

	rr, body := env.do(t, http.MethodGet, "/api/v1/today", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d: %s", rr.Code, http.StatusOK, body.Data)
	}

	var day DayResponse
	decodeData(t, body, &day)

	if day.SolarDate != "2023-01-22" {
		t.Errorf("SolarDate = %q, want %q", day.SolarDate, "2023-01-22")
	}
	if day.LunarDate != "2023-01-01" {
		t.Errorf("LunarDate = %q, want %q", day.LunarDate, "2023-01-01")
	}
	if !day.IsToday {
		t.Error("IsToday = false, want true")
	}
	if len(day.Festivals.Lunar) != 1 || day.Festivals.Lunar[0] != "春节" {
		t.Errorf("Festivals.Lunar = %v, want [春节]", day.Festivals.Lunar)
	}
	if day.Zodiac != "水瓶座" {
		t.Errorf("Zodiac = %q, want %q", day.Zodiac, "水瓶座")
	}
}

func TestGetSolarDate(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name       string
		date       string
		wantStatus int
		wantCode   string
		wantLunar  string
		wantTerm   string
	}{
		{"summer solstice", "2023-06-21", http.StatusOK, "", "2023-05-04", "夏至"},
		{"leap month", "2023-04-19", http.StatusOK, "", "2023-02-29", ""},
		{"first day", "1900-01-31", http.StatusOK, "", "1900-01-01", ""},
		{"before range", "1900-01-30", http.StatusUnprocessableEntity, "OUT_OF_RANGE", "", ""},
		{"after range", "2101-01-01", http.StatusUnprocessableEntity, "OUT_OF_RANGE", "", ""},
		{"impossible day", "2023-02-30", http.StatusUnprocessableEntity, "OUT_OF_RANGE", "", ""},
		{"bad format", "20230101", http.StatusBadRequest, "BAD_REQUEST", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, body := env.do(t, http.MethodGet, "/api/v1/solar/"+tt.date, "")
			if rr.Code != tt.wantStatus {
				t.Fatalf("Status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if body.Success || errorCode(body) != tt.wantCode {
					t.Errorf("error code = %q, want %q", errorCode(body), tt.wantCode)
				}
				return
			}

			var day DayResponse
			decodeData(t, body, &day)
			if day.LunarDate != tt.wantLunar {
				t.Errorf("LunarDate = %q, want %q", day.LunarDate, tt.wantLunar)
			}
			if day.TermName() != tt.wantTerm {
				t.Errorf("Term = %q, want %q", day.TermName(), tt.wantTerm)
			}
		})
	}
}

func TestGetSolarRange(t *testing.T) {
	env := setupTest(t)

	rr, body := env.do(t, http.MethodGet, "/api/v1/solar?start=2023-01-20&end=2023-01-25", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}
	var days []DayResponse
	decodeData(t, body, &days)
	if len(days) != 6 {
		t.Fatalf("got %d days, want 6", len(days))
	}
	if days[0].SolarDate != "2023-01-20" || days[5].SolarDate != "2023-01-25" {
		t.Errorf("range = %s..%s, want 2023-01-20..2023-01-25", days[0].SolarDate, days[5].SolarDate)
	}
	if days[2].LunarDate != "2023-01-01" {
		t.Errorf("days[2].LunarDate = %q, want 2023-01-01", days[2].LunarDate)
	}

	errorTests := []struct {
		name       string
		query      string
		wantStatus int
		wantCode   string
	}{
		{"missing end", "start=2023-01-01", http.StatusBadRequest, "BAD_REQUEST"},
		{"reversed", "start=2023-02-01&end=2023-01-01", http.StatusBadRequest, "BAD_REQUEST"},
		{"too long", "start=2023-01-01&end=2023-12-31", http.StatusBadRequest, "BAD_REQUEST"},
		{"past the end", "start=2100-12-30&end=2101-01-02", http.StatusUnprocessableEntity, "OUT_OF_RANGE"},
	}
	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			rr, body := env.do(t, http.MethodGet, "/api/v1/solar?"+tt.query, "")
			if rr.Code != tt.wantStatus || errorCode(body) != tt.wantCode {
				t.Errorf("got %d %q, want %d %q", rr.Code, errorCode(body), tt.wantStatus, tt.wantCode)
			}
		})
	}
}

func TestGetLunarDate(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
		wantSolar  string
	}{
		{"new year", "/api/v1/lunar/2023/1/1", http.StatusOK, "", "2023-01-22"},
		{"leap month", "/api/v1/lunar/2023/2/29?leap=true", http.StatusOK, "", "2023-04-19"},
		{"last day", "/api/v1/lunar/2100/12/1", http.StatusOK, "", "2100-12-31"},
		{"leap flag on regular month", "/api/v1/lunar/2023/3/1?leap=true", http.StatusBadRequest, "INVALID_ARGUMENT", ""},
		{"past last day", "/api/v1/lunar/2100/12/2", http.StatusUnprocessableEntity, "OUT_OF_RANGE", ""},
		{"not a number", "/api/v1/lunar/2023/x/1", http.StatusBadRequest, "BAD_REQUEST", ""},
		{"bad leap flag", "/api/v1/lunar/2023/2/1?leap=maybe", http.StatusBadRequest, "BAD_REQUEST", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, body := env.do(t, http.MethodGet, tt.path, "")
			if rr.Code != tt.wantStatus {
				t.Fatalf("Status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if tt.wantCode != "" {
				if errorCode(body) != tt.wantCode {
					t.Errorf("error code = %q, want %q", errorCode(body), tt.wantCode)
				}
				return
			}
			var day DayResponse
			decodeData(t, body, &day)
			if day.SolarDate != tt.wantSolar {
				t.Errorf("SolarDate = %q, want %q", day.SolarDate, tt.wantSolar)
			}
		})
	}
}

func TestGetYear(t *testing.T) {
	env := setupTest(t)

	rr, body := env.do(t, http.MethodGet, "/api/v1/years/2023", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}
	var year YearResponse
	decodeData(t, body, &year)

	if year.Days != 384 || year.LeapMonth != 2 || year.LeapMonthDays != 29 {
		t.Errorf("year = %+v, want 384 days with a 29-day leap second month", year)
	}
	if len(year.Months) != 13 || !year.Months[2].Leap {
		t.Errorf("Months = %v, want 13 with the leap month third", year.Months)
	}
	if year.NewYear != "2023-01-22" || year.GzYear != "癸卯" || year.Animal != "兔" {
		t.Errorf("year = %+v, want 2023-01-22 癸卯 兔", year)
	}

	rr, body = env.do(t, http.MethodGet, "/api/v1/years/2101", "")
	if rr.Code != http.StatusUnprocessableEntity || errorCode(body) != "OUT_OF_RANGE" {
		t.Errorf("got %d %q, want 422 OUT_OF_RANGE", rr.Code, errorCode(body))
	}
}

func TestGetTerms(t *testing.T) {
	env := setupTest(t)

	rr, body := env.do(t, http.MethodGet, "/api/v1/terms/2023", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Status = %d, want %d", rr.Code, http.StatusOK)
	}
	var terms []calendar.SolarTerm
	decodeData(t, body, &terms)
	if len(terms) != 24 {
		t.Fatalf("got %d terms, want 24", len(terms))
	}
	if terms[11].Name != "夏至" || terms[11].Date != "2023-06-21" {
		t.Errorf("terms[11] = %+v, want 夏至 on 2023-06-21", terms[11])
	}
}

// =============================================================================
// ALMANAC ENDPOINT TESTS
// =============================================================================

func TestBuildAlmanac_RequiresKey(t *testing.T) {
	env := setupTest(t)

	rr, body := env.do(t, http.MethodPost, "/api/v1/admin/almanac?from=2023&to=2023", "")
	if rr.Code != http.StatusUnauthorized || errorCode(body) != "UNAUTHORIZED" {
		t.Errorf("got %d %q, want 401 UNAUTHORIZED", rr.Code, errorCode(body))
	}

	rr, body = env.do(t, http.MethodPost, "/api/v1/admin/almanac?from=2023", testAPIKey)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("missing to: got %d %q, want 400", rr.Code, errorCode(body))
	}
}

func TestAlmanacFlow(t *testing.T) {
	env := setupTest(t)

	rr, body := env.do(t, http.MethodPost, "/api/v1/admin/almanac?from=2023&to=2024", testAPIKey)
	if rr.Code != http.StatusOK {
		t.Fatalf("build: Status = %d, want %d: %+v", rr.Code, http.StatusOK, body.Error)
	}
	var result database.MaterializeResult
	decodeData(t, body, &result)
	if result.Written != 731 {
		t.Errorf("Written = %d, want 731", result.Written)
	}

	rr, body = env.do(t, http.MethodGet, "/api/v1/almanac/lunar/1/1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("lunar lookup: Status = %d, want %d", rr.Code, http.StatusOK)
	}
	var days []database.AlmanacDay
	decodeData(t, body, &days)
	if len(days) != 2 || days[0].SolarDate != "2023-01-22" || days[1].SolarDate != "2024-02-10" {
		t.Errorf("lunar 1-1 days = %v, want 2023-01-22 and 2024-02-10", days)
	}

	rr, body = env.do(t, http.MethodGet, "/api/v1/almanac/lunar/2/1?leap=true", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("leap lookup: Status = %d, want %d", rr.Code, http.StatusOK)
	}
	days = nil
	decodeData(t, body, &days)
	if len(days) != 1 || days[0].SolarDate != "2023-03-22" {
		t.Errorf("leap 2-1 days = %v, want 2023-03-22", days)
	}

	rr, body = env.do(t, http.MethodGet, "/api/v1/almanac/terms/"+url.PathEscape("夏至")+"?from=2024", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("term lookup: Status = %d, want %d", rr.Code, http.StatusOK)
	}
	days = nil
	decodeData(t, body, &days)
	if len(days) != 1 || days[0].SolarDate != "2024-06-21" {
		t.Errorf("夏至 days = %v, want 2024-06-21", days)
	}

	rr, body = env.do(t, http.MethodGet, "/api/v1/almanac/stats", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("stats: Status = %d, want %d", rr.Code, http.StatusOK)
	}
	var stats database.AlmanacStats
	decodeData(t, body, &stats)
	if stats.TotalDays != 731 || stats.EarliestDate != "2023-01-01" || stats.LatestDate != "2024-12-31" {
		t.Errorf("stats = %+v, want 731 days 2023-01-01..2024-12-31", stats)
	}
}

func TestAlmanacLookupErrors(t *testing.T) {
	env := setupTest(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantCode   string
	}{
		{"unknown term", "/api/v1/almanac/terms/" + url.PathEscape("春节"), http.StatusBadRequest, "INVALID_ARGUMENT"},
		{"lunar month 13", "/api/v1/almanac/lunar/13/1", http.StatusUnprocessableEntity, "OUT_OF_RANGE"},
		{"lunar day 31", "/api/v1/almanac/lunar/1/31", http.StatusUnprocessableEntity, "OUT_OF_RANGE"},
		{"reversed years", "/api/v1/almanac/lunar/1/1?from=2024&to=2023", http.StatusBadRequest, "BAD_REQUEST"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, body := env.do(t, http.MethodGet, tt.path, "")
			if rr.Code != tt.wantStatus || errorCode(body) != tt.wantCode {
				t.Errorf("got %d %q, want %d %q", rr.Code, errorCode(body), tt.wantStatus, tt.wantCode)
			}
		})
	}

	// Nothing stored yet: an empty list, not an error.
	rr, body := env.do(t, http.MethodGet, "/api/v1/almanac/lunar/1/1", "")
	if rr.Code != http.StatusOK || string(body.Data) != "[]" {
		t.Errorf("empty lookup = %d %s, want 200 []", rr.Code, body.Data)
	}
}
