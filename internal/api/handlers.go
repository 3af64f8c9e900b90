package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/lunar-calendar-api/internal/calendar"
	"github.com/zapponejosh/lunar-calendar-api/internal/config"
	"github.com/zapponejosh/lunar-calendar-api/internal/database"
	"github.com/zapponejosh/lunar-calendar-api/internal/festival"
	"github.com/zapponejosh/lunar-calendar-api/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db        *database.DB
	converter *calendar.Converter
	festivals *festival.Table
	cfg       *config.Config
	logger    *slog.Logger
}

// NewHandlers creates a new Handlers instance. A nil festival table falls
// back to the built-in festivals.
func NewHandlers(db *database.DB, converter *calendar.Converter, festivals *festival.Table, cfg *config.Config, logger *slog.Logger) *Handlers {
	if festivals == nil {
		festivals = festival.Default()
	}
	return &Handlers{
		db:        db,
		converter: converter,
		festivals: festivals,
		cfg:       cfg,
		logger:    logger,
	}
}

// DayResponse is a conversion enriched with festivals and the zodiac sign.
type DayResponse struct {
	calendar.Conversion
	Festivals festival.Festivals `json:"festivals"`
	Zodiac    string             `json:"zodiac"`
}

// YearResponse describes one lunar year.
type YearResponse struct {
	Year          int                  `json:"year"`
	Days          int                  `json:"days"`
	LeapMonth     int                  `json:"leapMonth"`
	LeapMonthDays int                  `json:"leapMonthDays"`
	GzYear        string               `json:"gzYear"`
	Animal        string               `json:"animal"`
	NewYear       string               `json:"newYear"`
	Months        []calendar.MonthSpan `json:"months"`
}

// =============================================================================
// Health
// =============================================================================

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed",
			slog.Any("error", err),
			slog.String("request_id", logger.RequestID(ctx)),
		)
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// =============================================================================
// Conversion
// =============================================================================

// GetToday handles GET /api/v1/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	c, err := h.converter.Today()
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteSuccess(w, h.dayResponse(c))
}

// GetSolarDate handles GET /api/v1/solar/{YYYY-MM-DD}
func (h *Handlers) GetSolarDate(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")

	date, err := calendar.ParseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	c, err := h.converter.SolarToLunar(date.Year, date.Month, date.Day)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteSuccess(w, h.dayResponse(c))
}

// GetSolarRange handles GET /api/v1/solar?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetSolarRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	start, err := calendar.ParseDate(startStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid start date format: %s. Use YYYY-MM-DD", startStr))
		return
	}
	end, err := calendar.ParseDate(endStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid end date format: %s. Use YYYY-MM-DD", endStr))
		return
	}

	// Converting both ends first validates them against the supported span.
	first, err := h.converter.SolarToLunar(start.Year, start.Month, start.Day)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if _, err := h.converter.SolarToLunar(end.Year, end.Month, end.Day); err != nil {
		h.writeError(w, r, err)
		return
	}

	startDate := toTime(start)
	endDate := toTime(end)
	if startDate.After(endDate) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	span := int(endDate.Sub(startDate).Hours()/24) + 1
	if span > h.cfg.MaxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", h.cfg.MaxRangeDays))
		return
	}

	results := make([]DayResponse, 0, span)
	results = append(results, h.dayResponse(first))
	for d := startDate.AddDate(0, 0, 1); !d.After(endDate); d = d.AddDate(0, 0, 1) {
		c, err := h.converter.SolarToLunar(d.Year(), int(d.Month()), d.Day())
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		results = append(results, h.dayResponse(c))
	}

	WriteSuccess(w, results)
}

// GetLunarDate handles GET /api/v1/lunar/{year}/{month}/{day}?leap=true
func (h *Handlers) GetLunarDate(w http.ResponseWriter, r *http.Request) {
	year, ok := pathInt(w, r, "year")
	if !ok {
		return
	}
	month, ok := pathInt(w, r, "month")
	if !ok {
		return
	}
	day, ok := pathInt(w, r, "day")
	if !ok {
		return
	}
	leap, ok := queryBool(w, r, "leap")
	if !ok {
		return
	}

	c, err := h.converter.LunarToSolar(year, month, day, leap)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteSuccess(w, h.dayResponse(c))
}

// GetYear handles GET /api/v1/years/{year}
func (h *Handlers) GetYear(w http.ResponseWriter, r *http.Request) {
	year, ok := pathInt(w, r, "year")
	if !ok {
		return
	}

	months, err := calendar.Months(year)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	days, _ := calendar.YearDays(year)
	leapMonth, _ := calendar.LeapMonth(year)
	leapDays, _ := calendar.LeapMonthDays(year)
	newYear, err := h.converter.LunarToSolar(year, 1, 1, false)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	WriteSuccess(w, YearResponse{
		Year:          year,
		Days:          days,
		LeapMonth:     leapMonth,
		LeapMonthDays: leapDays,
		GzYear:        calendar.GanZhiYear(year),
		Animal:        calendar.Animal(year),
		NewYear:       newYear.SolarDate,
		Months:        months,
	})
}

// GetTerms handles GET /api/v1/terms/{year}
func (h *Handlers) GetTerms(w http.ResponseWriter, r *http.Request) {
	year, ok := pathInt(w, r, "year")
	if !ok {
		return
	}

	terms, err := calendar.SolarTerms(year)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteSuccess(w, terms)
}

// =============================================================================
// Stored almanac
// =============================================================================

// FindLunarDate handles GET /api/v1/almanac/lunar/{month}/{day}?leap=&from=&to=
func (h *Handlers) FindLunarDate(w http.ResponseWriter, r *http.Request) {
	month, ok := pathInt(w, r, "month")
	if !ok {
		return
	}
	day, ok := pathInt(w, r, "day")
	if !ok {
		return
	}
	if month < 1 || month > 12 {
		WriteUnprocessable(w, fmt.Sprintf("lunar month %d, expected [1-12]", month))
		return
	}
	if day < 1 || day > 30 {
		WriteUnprocessable(w, fmt.Sprintf("lunar day %d, expected [1-30]", day))
		return
	}
	leap, ok := queryBool(w, r, "leap")
	if !ok {
		return
	}
	years, ok := queryYearRange(w, r)
	if !ok {
		return
	}

	days, err := h.db.FindByLunarDate(r.Context(), month, day, leap, years)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteSuccess(w, days)
}

// FindTerm handles GET /api/v1/almanac/terms/{name}?from=&to=
func (h *Handlers) FindTerm(w http.ResponseWriter, r *http.Request) {
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil || !isSolarTerm(name) {
		WriteInvalidArgument(w, fmt.Sprintf("Unknown solar term: %s", chi.URLParam(r, "name")))
		return
	}
	years, ok := queryYearRange(w, r)
	if !ok {
		return
	}

	days, err := h.db.FindByTerm(r.Context(), name, years)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteSuccess(w, days)
}

// GetAlmanacStats handles GET /api/v1/almanac/stats
func (h *Handlers) GetAlmanacStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.db.GetStats(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	WriteSuccess(w, stats)
}

// BuildAlmanac handles POST /api/v1/admin/almanac?from=YEAR&to=YEAR&keep=
func (h *Handlers) BuildAlmanac(w http.ResponseWriter, r *http.Request) {
	from, ok := queryInt(w, r, "from")
	if !ok {
		return
	}
	to, ok := queryInt(w, r, "to")
	if !ok {
		return
	}
	if from == 0 || to == 0 {
		WriteBadRequest(w, "Both from and to year parameters are required")
		return
	}
	keep, ok := queryBool(w, r, "keep")
	if !ok {
		return
	}

	result, err := h.db.Materialize(r.Context(), h.converter, from, to, keep)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	logger.Info(r.Context(), "almanac rebuilt via API",
		slog.Int("from", from),
		slog.Int("to", to),
		slog.Int("written", result.Written),
	)
	WriteSuccess(w, result)
}

// =============================================================================
// Helpers
// =============================================================================

func (h *Handlers) dayResponse(c calendar.Conversion) DayResponse {
	zodiac, _ := calendar.ZodiacSign(c.SMonth, c.SDay)
	return DayResponse{
		Conversion: c,
		Festivals:  h.festivals.ForConversion(c),
		Zodiac:     zodiac,
	}
}

// writeError maps calendar and store errors onto the response envelope.
func (h *Handlers) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case calendar.IsOutOfRange(err):
		WriteUnprocessable(w, err.Error())
	case calendar.IsInvalidArgument(err):
		WriteInvalidArgument(w, err.Error())
	case database.IsNotFound(err):
		WriteNotFound(w, "Not found")
	default:
		h.logger.ErrorContext(r.Context(), "request failed",
			slog.Any("error", err),
			slog.String("path", r.URL.Path),
			slog.String("request_id", logger.RequestID(r.Context())),
		)
		WriteInternalError(w, "Internal server error")
	}
}

func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	n, err := strconv.Atoi(raw)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid %s: %q is not a number", name, raw))
		return 0, false
	}
	return n, true
}

// queryInt reads an optional integer query parameter; absent means 0.
func queryInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid %s: %q is not a number", name, raw))
		return 0, false
	}
	return n, true
}

// queryBool reads an optional boolean query parameter; absent means false.
func queryBool(w http.ResponseWriter, r *http.Request, name string) (bool, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, true
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid %s: %q is not a boolean", name, raw))
		return false, false
	}
	return b, true
}

func queryYearRange(w http.ResponseWriter, r *http.Request) (database.YearRange, bool) {
	from, ok := queryInt(w, r, "from")
	if !ok {
		return database.YearRange{}, false
	}
	to, ok := queryInt(w, r, "to")
	if !ok {
		return database.YearRange{}, false
	}
	if from != 0 && to != 0 && from > to {
		WriteBadRequest(w, "from year must be before or equal to to year")
		return database.YearRange{}, false
	}
	return database.YearRange{From: from, To: to}, true
}

func isSolarTerm(name string) bool {
	for n := 1; n <= 24; n++ {
		if term, _ := calendar.SolarTermName(n); term == name {
			return true
		}
	}
	return false
}

func toTime(d calendar.SolarDate) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}
