// Command apitest runs known-answer checks against a running lunar calendar API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// DayResponse is the response for /solar/{date}, /lunar/... and /today
type DayResponse struct {
	SolarDate string  `json:"solarDate"`
	LunarDate string  `json:"lunarDate"`
	LYear     int     `json:"lYear"`
	LMonth    int     `json:"lMonth"`
	LDay      int     `json:"lDay"`
	IsLeap    bool    `json:"isLeap"`
	Weekday   int     `json:"weekday"`
	GzYear    string  `json:"gzYear"`
	GzMonth   string  `json:"gzMonth"`
	GzDay     string  `json:"gzDay"`
	Animal    string  `json:"animal"`
	MonthCn   string  `json:"monthCn"`
	DayCn     string  `json:"dayCn"`
	IsTerm    bool    `json:"isTerm"`
	Term      *string `json:"term"`
	Zodiac    string  `json:"zodiac"`
	Festivals struct {
		Solar []string `json:"solar"`
		Lunar []string `json:"lunar"`
	} `json:"festivals"`
}

// YearResponse is the response for /years/{year}
type YearResponse struct {
	Year      int    `json:"year"`
	Days      int    `json:"days"`
	LeapMonth int    `json:"leapMonth"`
	GzYear    string `json:"gzYear"`
	NewYear   string `json:"newYear"`
	Months    []struct {
		Month int  `json:"month"`
		Leap  bool `json:"leap"`
		Days  int  `json:"days"`
	} `json:"months"`
}

// SolarTerm is one entry of /terms/{year}
type SolarTerm struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Date  string `json:"date"`
}

// HealthResponse is the response for /health
type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Lunar Calendar API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	tr.testHealth()
	tr.testToday()
	tr.testSolarDates()
	tr.testLunarDates()
	tr.testYearsAndTerms()
	tr.testDateRange()
	tr.testEdgeCases()

	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, err := tr.get("/health")
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	var health HealthResponse
	if err := json.Unmarshal(resp.Data, &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testToday() {
	tr.printSection("Today")

	resp, err := tr.get("/api/v1/today")
	if err != nil {
		tr.recordError("Today", err.Error())
		return
	}

	var day DayResponse
	if err := json.Unmarshal(resp.Data, &day); err != nil {
		tr.recordError("Today", err.Error())
		return
	}

	tr.recordSuccess(fmt.Sprintf("Today (%s): %s %s%s", day.SolarDate, day.GzYear, day.MonthCn, day.DayCn))
	tr.printDayDetail(&day)
}

func (tr *TestRunner) testSolarDates() {
	tr.printSection("Gregorian To Lunar")

	testCases := []struct {
		date        string
		lunar       string
		leap        bool
		gzYear      string
		term        string
		description string
	}{
		{"1900-01-31", "1900-01-01", false, "庚子", "", "First supported day"},
		{"2000-01-01", "1999-11-25", false, "己卯", "", "Millennium"},
		{"2023-01-22", "2023-01-01", false, "癸卯", "", "Spring Festival 2023"},
		{"2023-03-22", "2023-02-01", true, "癸卯", "", "First day of leap second month"},
		{"2023-04-19", "2023-02-29", true, "癸卯", "", "Last day of leap second month"},
		{"2023-06-21", "2023-05-04", false, "癸卯", "夏至", "Summer solstice 2023"},
		{"2024-02-04", "2023-12-25", false, "癸卯", "立春", "Start of spring before new year"},
		{"2024-02-10", "2024-01-01", false, "甲辰", "", "Spring Festival 2024"},
		{"2024-06-21", "2024-05-16", false, "甲辰", "夏至", "Summer solstice 2024"},
		{"2100-12-31", "2100-12-01", false, "庚申", "", "Last supported day"},
	}

	for _, tc := range testCases {
		resp, err := tr.get("/api/v1/solar/" + tc.date)
		if err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}

		var day DayResponse
		if err := json.Unmarshal(resp.Data, &day); err != nil {
			tr.recordError(tc.date, err.Error())
			continue
		}

		term := ""
		if day.Term != nil {
			term = *day.Term
		}

		switch {
		case day.LunarDate != tc.lunar || day.IsLeap != tc.leap:
			tr.recordError(tc.date, fmt.Sprintf("Expected lunar '%s' (leap %t), got '%s' (leap %t)",
				tc.lunar, tc.leap, day.LunarDate, day.IsLeap))
		case day.GzYear != tc.gzYear:
			tr.recordError(tc.date, fmt.Sprintf("Expected year pillar '%s', got '%s'", tc.gzYear, day.GzYear))
		case term != tc.term:
			tr.recordError(tc.date, fmt.Sprintf("Expected term '%s', got '%s'", tc.term, term))
		default:
			tr.recordSuccess(fmt.Sprintf("%s: %s (%s)", tc.date, day.LunarDate, tc.description))
		}

		if tr.verbose {
			tr.printDayDetail(&day)
		}
	}
}

func (tr *TestRunner) testLunarDates() {
	tr.printSection("Lunar To Gregorian")

	testCases := []struct {
		path  string
		solar string
	}{
		{"/api/v1/lunar/2023/1/1", "2023-01-22"},
		{"/api/v1/lunar/2023/2/1?leap=true", "2023-03-22"},
		{"/api/v1/lunar/2023/2/1", "2023-02-20"},
		{"/api/v1/lunar/2023/2/29?leap=true", "2023-04-19"},
		{"/api/v1/lunar/1900/1/1", "1900-01-31"},
		{"/api/v1/lunar/2100/12/1", "2100-12-31"},
	}

	for _, tc := range testCases {
		resp, err := tr.get(tc.path)
		if err != nil {
			tr.recordError(tc.path, err.Error())
			continue
		}

		var day DayResponse
		if err := json.Unmarshal(resp.Data, &day); err != nil {
			tr.recordError(tc.path, err.Error())
			continue
		}

		if day.SolarDate == tc.solar {
			tr.recordSuccess(fmt.Sprintf("%s: %s", tc.path, day.SolarDate))
		} else {
			tr.recordError(tc.path, fmt.Sprintf("Expected '%s', got '%s'", tc.solar, day.SolarDate))
		}
	}

	tr.expectStatus("Leap flag on a non-leap month", "/api/v1/lunar/2024/2/1?leap=true", http.StatusBadRequest)
	tr.expectStatus("Day past month end", "/api/v1/lunar/2100/12/2", http.StatusUnprocessableEntity)
}

func (tr *TestRunner) testYearsAndTerms() {
	tr.printSection("Years And Solar Terms")

	resp, err := tr.get("/api/v1/years/2023")
	if err != nil {
		tr.recordError("Year 2023", err.Error())
	} else {
		var year YearResponse
		if err := json.Unmarshal(resp.Data, &year); err != nil {
			tr.recordError("Year 2023", err.Error())
		} else if year.Days != 384 || year.LeapMonth != 2 || len(year.Months) != 13 {
			tr.recordError("Year 2023", fmt.Sprintf("Expected 384 days, leap month 2, 13 months; got %d, %d, %d",
				year.Days, year.LeapMonth, len(year.Months)))
		} else {
			tr.recordSuccess(fmt.Sprintf("Year 2023: %s, %d days, new year %s", year.GzYear, year.Days, year.NewYear))
		}
	}

	resp, err = tr.get("/api/v1/terms/2024")
	if err != nil {
		tr.recordError("Terms 2024", err.Error())
		return
	}

	var terms []SolarTerm
	if err := json.Unmarshal(resp.Data, &terms); err != nil {
		tr.recordError("Terms 2024", err.Error())
		return
	}

	if len(terms) != 24 {
		tr.recordError("Terms 2024", fmt.Sprintf("Expected 24 terms, got %d", len(terms)))
		return
	}
	tr.recordSuccess(fmt.Sprintf("Terms 2024: %s on %s .. %s on %s",
		terms[0].Name, terms[0].Date, terms[23].Name, terms[23].Date))
}

func (tr *TestRunner) testDateRange() {
	tr.printSection("Date Range Tests")

	resp, err := tr.get("/api/v1/solar?start=2023-01-16&end=2023-01-22")
	if err != nil {
		tr.recordError("Range (week)", err.Error())
		return
	}

	var days []DayResponse
	if err := json.Unmarshal(resp.Data, &days); err != nil {
		tr.recordError("Range (week)", err.Error())
		return
	}

	if len(days) == 7 && days[6].LunarDate == "2023-01-01" {
		tr.recordSuccess(fmt.Sprintf("Week range returned %d days ending on new year", len(days)))
	} else {
		tr.recordError("Range (week)", fmt.Sprintf("Expected 7 days ending 2023-01-01, got %d", len(days)))
	}

	tr.expectStatus("Range limit enforced", "/api/v1/solar?start=2025-01-01&end=2025-12-31", http.StatusBadRequest)
	tr.expectStatus("End before start rejected", "/api/v1/solar?start=2025-12-31&end=2025-01-01", http.StatusBadRequest)
	tr.expectStatus("Missing end rejected", "/api/v1/solar?start=2025-01-01", http.StatusBadRequest)
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	tr.expectStatus("Invalid date format", "/api/v1/solar/invalid", http.StatusBadRequest)
	tr.expectStatus("Before supported span", "/api/v1/solar/1900-01-30", http.StatusUnprocessableEntity)
	tr.expectStatus("After supported span", "/api/v1/solar/2101-01-01", http.StatusUnprocessableEntity)
	tr.expectStatus("Impossible day", "/api/v1/solar/2023-02-30", http.StatusUnprocessableEntity)
	tr.expectStatus("Leap day", "/api/v1/solar/2024-02-29", http.StatusOK)
	tr.expectStatus("Unknown solar term", "/api/v1/almanac/terms/"+url.PathEscape("春分节"), http.StatusBadRequest)
	tr.expectStatus("Unknown route", "/api/v1/nowhere", http.StatusNotFound)
}

// =============================================================================
// Helper Methods
// =============================================================================

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, err := tr.getRaw(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = fmt.Sprintf("%s (%s)", apiResp.Error.Message, apiResp.Error.Code)
		}
		return nil, fmt.Errorf("API error: %s", errMsg)
	}

	return &apiResp, nil
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	return tr.client.Get(tr.baseURL + path)
}

func (tr *TestRunner) expectStatus(name, path string, status int) {
	resp, err := tr.getRaw(path)
	if err != nil {
		tr.recordError(name, err.Error())
		return
	}
	resp.Body.Close()

	if resp.StatusCode == status {
		tr.recordSuccess(fmt.Sprintf("%s (HTTP %d)", name, status))
	} else {
		tr.recordError(name, fmt.Sprintf("Expected HTTP %d, got %d", status, resp.StatusCode))
	}
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) printDayDetail(d *DayResponse) {
	if d == nil {
		return
	}
	fmt.Printf("    Pillars:   %s年 %s月 %s日\n", d.GzYear, d.GzMonth, d.GzDay)
	fmt.Printf("    Animal:    %s, %s\n", d.Animal, d.Zodiac)
	if d.Term != nil {
		fmt.Printf("    Term:      %s\n", *d.Term)
	}
	if len(d.Festivals.Solar)+len(d.Festivals.Lunar) > 0 {
		fmt.Printf("    Festivals: %v %v\n", d.Festivals.Solar, d.Festivals.Lunar)
	}
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
	}

	if tr.errorCount == 0 {
		fmt.Println("All tests passed! ✓")
	} else {
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (show day details)")
	flag.Parse()

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	runner := NewTestRunner(*baseURL, *verbose)
	runner.Run()

	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
