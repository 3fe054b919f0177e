// Package main provides a performance benchmarking tool for the bikeshare CLI.
// It measures execution times across different dataset sizes and command types,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - bikeshare binary installed and available in PATH
// - A writable directory for the generated datasets
//
// Usage: go run benchmark/main.go [data-dir]
//
//	data-dir: Directory where trip datasets are generated and read back
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (cold run and average of warm runs).
type BenchmarkResult struct {
	Dataset  string
	Command  string
	Rows     int
	ColdTime string
	WarmTime string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	DataDir  string
	Timeout  time.Duration
	Runs     int
	TestSets []string
	RowSizes map[string]int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [data-dir]\n", os.Args[0])
		os.Exit(1)
	}
	dataDir := os.Args[1]

	config := BenchmarkConfig{
		DataDir:  dataDir,
		Timeout:  5 * time.Minute,
		Runs:     4,
		TestSets: []string{"smallville", "midtown", "metropolis"},
		RowSizes: map[string]int{
			"smallville": 10_000,
			"midtown":    100_000,
			"metropolis": 500_000,
		},
	}

	if err := checkPrerequisites(config); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Generate any datasets that are not on disk yet
	fmt.Printf("Preparing datasets...\n")
	if err := prepareDatasets(config); err != nil {
		fmt.Printf("Failed to prepare datasets: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the bikeshare binary and the data directory exist
func checkPrerequisites(config BenchmarkConfig) error {
	// Check if bikeshare is available
	if _, err := exec.LookPath("bikeshare"); err != nil {
		return fmt.Errorf("bikeshare binary not found in PATH")
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("cannot create data directory %s: %w", config.DataDir, err)
	}

	return nil
}

// prepareDatasets generates one trip CSV per configured size, skipping files
// that already exist so repeated runs reuse the same data.
func prepareDatasets(config BenchmarkConfig) error {
	for _, name := range config.TestSets {
		rows := config.RowSizes[name]
		path := filepath.Join(config.DataDir, name+".csv")
		if _, err := os.Stat(path); err == nil {
			fmt.Printf("  %s exists, skipping generation\n", path)
			continue
		}
		fmt.Printf("  Generating %s (%d rows)\n", path, rows)
		if err := generateDataset(path, rows); err != nil {
			return err
		}
	}
	return nil
}

// generateDataset writes a synthetic trip CSV shaped like the city exports:
// a leading unnamed index column followed by the six trip columns and the
// two optional demographic columns. The generator is seeded per row count so
// repeated runs produce identical files.
func generateDataset(path string, rows int) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", path, closeErr)
		}
	}()

	stations := []string{
		"Canal St & Taylor St",
		"Clark St & Randolph St",
		"Columbus Dr & Randolph St",
		"Damen Ave & Chicago Ave",
		"Desplaines St & Kinzie St",
		"State St & Van Buren St",
		"Streeter Dr & Grand Ave",
		"Wood St & Hubbard St",
	}
	userTypes := []string{"Subscriber", "Subscriber", "Subscriber", "Customer"}
	genders := []string{"Male", "Female", ""}

	rng := rand.New(rand.NewSource(int64(rows)))
	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type", "Gender", "Birth Year"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	janFirst := time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < rows; i++ {
		start := janFirst.Add(time.Duration(rng.Intn(181*24*3600)) * time.Second)
		duration := 60 + rng.Intn(3540)
		end := start.Add(time.Duration(duration) * time.Second)

		gender := genders[rng.Intn(len(genders))]
		birthYear := ""
		if gender != "" {
			birthYear = fmt.Sprintf("%d.0", 1950+rng.Intn(50))
		}

		record := []string{
			strconv.Itoa(i),
			start.Format("2006-01-02 15:04:05"),
			end.Format("2006-01-02 15:04:05"),
			strconv.Itoa(duration),
			stations[rng.Intn(len(stations))],
			stations[rng.Intn(len(stations))],
			userTypes[rng.Intn(len(userTypes))],
			gender,
			birthYear,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	return nil
}

// runBenchmarks executes all benchmark tests across configured datasets
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d datasets, %v timeout, %d runs each\n",
		len(config.TestSets), config.Timeout, config.Runs)

	for _, name := range config.TestSets {
		rows := config.RowSizes[name]
		fmt.Printf("Benchmarking %s\n", name)

		// Full statistics
		result := runBenchmarkSuite(config, name, rows, "stats", "stats", nil)
		results = append(results, result)

		// Filtered statistics
		filterArgs := []string{"--month", "June", "--day", "Monday"}
		result = runBenchmarkSuite(config, name, rows, "stats-filtered", "stats (June, Monday)", filterArgs)
		results = append(results, result)

		// Parquet export
		exportArgs := []string{"--output-file", filepath.Join(os.TempDir(), name+"_bench.parquet")}
		result = runBenchmarkSuite(config, name, rows, "export", "export", exportArgs)
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs the cold/warm benchmark phases for a command
func runBenchmarkSuite(config BenchmarkConfig, dataset string, rows int, command, description string, extraArgs []string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, dataset)

	coldTime, warmTimes := runBenchmark(config, dataset, command, extraArgs)

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	warmAvg := "TIMEOUT"
	if len(warmTimes) > 0 {
		var sum float64
		for _, t := range warmTimes {
			sum += t
		}
		warmAvg = fmt.Sprintf("%.3fs", sum/float64(len(warmTimes)))
	}

	fmt.Printf("  Cold time: %s, Warm average: %s\n", coldTimeStr, warmAvg)

	return BenchmarkResult{
		Dataset:  dataset,
		Command:  command,
		Rows:     rows,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes a bikeshare command multiple times and returns cold time and warm times
func runBenchmark(config BenchmarkConfig, dataset, command string, extraArgs []string) (coldTime float64, warmTimes []float64) {
	// Prepare command arguments
	subcommand := command
	if command == "stats-filtered" {
		subcommand = "stats"
	}
	args := []string{subcommand, dataset, "--data-dir", config.DataDir}
	args = append(args, extraArgs...)

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("bikeshare", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output, subcommand) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte, subcommand string) bool {
	outputStr := string(output)

	var completionPhrase string
	if subcommand == "export" {
		completionPhrase = "Exported"
	} else {
		completionPhrase = "Computed statistics over"
	}

	return strings.Contains(outputStr, completionPhrase)
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/bikeshare_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"dataset", "cmd", "rows", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		record := []string{result.Dataset, result.Command, strconv.Itoa(result.Rows), result.ColdTime, result.WarmTime}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "stats", "Statistics:")
	printCommandSummary(results, "stats-filtered", "Filtered Statistics:")
	printCommandSummary(results, "export", "Parquet Export:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: Rows: %d, Cold: %s, Warm: %s\n", result.Dataset, result.Rows, result.ColdTime, result.WarmTime)
		}
	}
}
