// Command coverage sweeps every day of a year span through a running API and
// checks that each Gregorian date converts to lunar and back to itself.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"time"
)

// APIResponse matches the API response structure
type APIResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *ErrorInfo      `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type Day struct {
	SolarDate string  `json:"solarDate"`
	LYear     int     `json:"lYear"`
	LMonth    int     `json:"lMonth"`
	LDay      int     `json:"lDay"`
	IsLeap    bool    `json:"isLeap"`
	Term      *string `json:"term"`
}

// TestResult holds the result for a single date
type TestResult struct {
	Date      string `json:"date"`
	LunarDate string `json:"lunar_date,omitempty"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

type YearStats struct {
	Year        int `json:"year"`
	TotalDays   int `json:"total_days"`
	SuccessDays int `json:"success_days"`
	FailedDays  int `json:"failed_days"`
	LeapDays    int `json:"leap_days"`
	Terms       int `json:"terms"`
}

// Analysis holds the analyzed results
type Analysis struct {
	TotalDays    int
	TotalSuccess int
	TotalFailed  int
	ByYear       map[int]*YearStats
	AllFailures  []TestResult
}

const chunkDays = 90

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	startYear := flag.Int("start", 2020, "Start year")
	years := flag.Int("years", 4, "Number of years to test")
	verbose := flag.Bool("v", false, "Verbose output (show each date)")
	outputFile := flag.String("o", "", "Output results to JSON file")
	flag.Parse()

	endYear := *startYear + *years - 1

	fmt.Println("================================================================")
	fmt.Println("Lunar Calendar API - Round Trip Coverage")
	fmt.Println("================================================================")
	fmt.Printf("Base URL:    %s\n", *baseURL)
	fmt.Printf("Date Range:  %d-01-01 to %d-12-31\n", *startYear, endYear)
	fmt.Println()

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}
	resp.Body.Close()

	analysis := &Analysis{ByYear: make(map[int]*YearStats)}
	for year := *startYear; year <= endYear; year++ {
		testYear(client, *baseURL, year, *verbose, analysis)
	}

	printSummary(analysis, *startYear, endYear)
	printFailures(analysis)

	if *outputFile != "" {
		saveResults(*outputFile, analysis)
	}

	if analysis.TotalFailed > 0 {
		os.Exit(1)
	}
}

func testYear(client *http.Client, baseURL string, year int, verbose bool, analysis *Analysis) {
	stats := &YearStats{Year: year}
	analysis.ByYear[year] = stats

	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)

	for from := start; !from.After(end); from = from.AddDate(0, 0, chunkDays) {
		to := from.AddDate(0, 0, chunkDays-1)
		if to.After(end) {
			to = end
		}

		var days []Day
		path := fmt.Sprintf("/api/v1/solar?start=%s&end=%s", from.Format("2006-01-02"), to.Format("2006-01-02"))
		if err := getData(client, baseURL+path, &days); err != nil {
			// Count the whole chunk as failed.
			for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
				record(analysis, stats, TestResult{Date: d.Format("2006-01-02"), Error: err.Error()})
			}
			continue
		}

		for _, day := range days {
			result := roundTrip(client, baseURL, day)
			if day.IsLeap {
				stats.LeapDays++
			}
			if day.Term != nil {
				stats.Terms++
			}
			record(analysis, stats, result)

			if verbose {
				status := "✓"
				if !result.Success {
					status = "✗"
				}
				fmt.Printf("  %s %s -> %s\n", status, result.Date, result.LunarDate)
			}
		}
	}

	fmt.Printf("  %d: %d/%d days round trip\n", year, stats.SuccessDays, stats.TotalDays)
}

func roundTrip(client *http.Client, baseURL string, day Day) TestResult {
	result := TestResult{
		Date:      day.SolarDate,
		LunarDate: fmt.Sprintf("%d-%02d-%02d leap=%t", day.LYear, day.LMonth, day.LDay, day.IsLeap),
	}

	url := fmt.Sprintf("%s/api/v1/lunar/%d/%d/%d?leap=%t", baseURL, day.LYear, day.LMonth, day.LDay, day.IsLeap)
	var back Day
	if err := getData(client, url, &back); err != nil {
		result.Error = err.Error()
		return result
	}

	if back.SolarDate != day.SolarDate {
		result.Error = fmt.Sprintf("round trip returned %s", back.SolarDate)
		return result
	}

	result.Success = true
	return result
}

func record(analysis *Analysis, stats *YearStats, r TestResult) {
	analysis.TotalDays++
	stats.TotalDays++
	if r.Success {
		analysis.TotalSuccess++
		stats.SuccessDays++
		return
	}
	analysis.TotalFailed++
	stats.FailedDays++
	analysis.AllFailures = append(analysis.AllFailures, r)
}

func getData(client *http.Client, url string, target any) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	if !apiResp.Success {
		if apiResp.Error != nil {
			return fmt.Errorf("%s (%s)", apiResp.Error.Message, apiResp.Error.Code)
		}
		return fmt.Errorf("unknown error (HTTP %d)", resp.StatusCode)
	}

	return json.Unmarshal(apiResp.Data, target)
}

func printSummary(analysis *Analysis, startYear, endYear int) {
	fmt.Println()
	fmt.Println("================================================================")
	fmt.Println("SUMMARY")
	fmt.Println("================================================================")
	if analysis.TotalDays == 0 {
		fmt.Println("No days tested.")
		return
	}
	fmt.Printf("Total Days Tested: %d\n", analysis.TotalDays)
	fmt.Printf("Successful:        %d (%.1f%%)\n", analysis.TotalSuccess,
		float64(analysis.TotalSuccess)/float64(analysis.TotalDays)*100)
	fmt.Printf("Failed:            %d (%.1f%%)\n", analysis.TotalFailed,
		float64(analysis.TotalFailed)/float64(analysis.TotalDays)*100)
	fmt.Println()

	fmt.Println("By Year:")
	for year := startYear; year <= endYear; year++ {
		if stats, ok := analysis.ByYear[year]; ok {
			status := "✓"
			if stats.FailedDays > 0 {
				status = "✗"
			}
			fmt.Printf("  %s %d: %d/%d days, %d leap-month days, %d terms\n",
				status, year, stats.SuccessDays, stats.TotalDays, stats.LeapDays, stats.Terms)
		}
	}
	fmt.Println()
}

func printFailures(analysis *Analysis) {
	if analysis.TotalFailed == 0 {
		fmt.Println("No failures! 🎉")
		return
	}

	fmt.Println("================================================================")
	fmt.Println("FAILURES BY ERROR")
	fmt.Println("================================================================")

	errorGroups := make(map[string][]TestResult)
	for _, f := range analysis.AllFailures {
		errorGroups[f.Error] = append(errorGroups[f.Error], f)
	}

	messages := make([]string, 0, len(errorGroups))
	for msg := range errorGroups {
		messages = append(messages, msg)
	}
	sort.Slice(messages, func(i, j int) bool {
		return len(errorGroups[messages[i]]) > len(errorGroups[messages[j]])
	})

	for _, msg := range messages {
		failures := errorGroups[msg]
		fmt.Printf("\nError: %s (%d occurrences)\n", msg, len(failures))
		for i, f := range failures {
			if i >= 5 {
				fmt.Printf("  ... and %d more\n", len(failures)-5)
				break
			}
			fmt.Printf("  - %s %s\n", f.Date, f.LunarDate)
		}
	}
	fmt.Println()
}

func saveResults(filename string, analysis *Analysis) {
	output := struct {
		GeneratedAt string             `json:"generated_at"`
		Summary     map[string]any     `json:"summary"`
		ByYear      map[int]*YearStats `json:"by_year"`
		Failures    []TestResult       `json:"failures"`
	}{
		GeneratedAt: time.Now().Format(time.RFC3339),
		Summary: map[string]any{
			"total_days":    analysis.TotalDays,
			"total_success": analysis.TotalSuccess,
			"total_failed":  analysis.TotalFailed,
		},
		ByYear:   analysis.ByYear,
		Failures: analysis.AllFailures,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling results: %v\n", err)
		return
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		fmt.Printf("Error writing file: %v\n", err)
		return
	}

	fmt.Printf("Results saved to: %s\n", filename)
}
