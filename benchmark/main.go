// Package main provides a performance benchmarking tool for the courtside CLI.
// It generates synthetic leagues of increasing size, times the teams and timeseries views
// against CSV files and against an imported SQLite league database,
// running each test multiple times, treating the first successful run as cold and averaging the rest as warm,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - courtside binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory for the generated league files (defaults to a temp directory)
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

// BenchmarkResult holds the result of a benchmark run (CSV average, database cold run and average of warm runs).
type BenchmarkResult struct {
	League   string
	Command  string
	CSVTime  string
	ColdTime string
	WarmTime string
}

// LeagueSize describes one synthetic league.
type LeagueSize struct {
	Name  string
	Teams int
	Games int
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir string
	Timeout time.Duration
	CSVRuns int
	DBRuns  int
	Seed    int64
	Leagues []LeagueSize
}

// leagueFiles are the generated inputs of one league.
type leagueFiles struct {
	games string
	teams string
	db    string
}

func main() {
	if len(os.Args) > 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := ""
	if len(os.Args) == 2 {
		workDir = os.Args[1]
	} else {
		dir, err := os.MkdirTemp("", "courtside-benchmark-*")
		if err != nil {
			fmt.Printf("Failed to create work dir: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = os.RemoveAll(dir) }()
		workDir = dir
	}

	config := BenchmarkConfig{
		WorkDir: workDir,
		Timeout: 5 * time.Minute,
		CSVRuns: 3,
		DBRuns:  4,
		Seed:    42,
		Leagues: []LeagueSize{
			{Name: "conference", Teams: 12, Games: 200},
			{Name: "division", Teams: 64, Games: 2_000},
			{Name: "ncaa", Teams: 360, Games: 5_500},
			{Name: "decade", Teams: 360, Games: 55_000},
		},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	results, err := runBenchmarks(config)
	if err != nil {
		fmt.Printf("Benchmark failed: %v\n", err)
		os.Exit(1)
	}

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the courtside binary exists.
func checkPrerequisites() error {
	if _, err := exec.LookPath("courtside"); err != nil {
		return fmt.Errorf("courtside binary not found in PATH")
	}
	return nil
}

// generateLeague writes a random league of the given size and imports it into its own SQLite file.
func generateLeague(config BenchmarkConfig, size LeagueSize) (leagueFiles, error) {
	dir := filepath.Join(config.WorkDir, size.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return leagueFiles{}, err
	}
	files := leagueFiles{
		games: filepath.Join(dir, "games.csv"),
		teams: filepath.Join(dir, "teams.csv"),
		db:    filepath.Join(dir, "league.db"),
	}
	rng := rand.New(rand.NewSource(config.Seed))

	teamRows := [][]string{{"TeamID", "TeamName"}}
	for id := 1; id <= size.Teams; id++ {
		teamRows = append(teamRows, []string{strconv.Itoa(1000 + id), fmt.Sprintf("Team %s %d", size.Name, id)})
	}
	if err := writeCSV(files.teams, teamRows); err != nil {
		return leagueFiles{}, err
	}

	start := time.Date(2015, time.November, 1, 0, 0, 0, 0, time.UTC)
	gameRows := make([][]string, 0, size.Games)
	for id := 1; id <= size.Games; id++ {
		t1 := 1001 + rng.Intn(size.Teams)
		t2 := 1001 + rng.Intn(size.Teams-1)
		if t2 >= t1 {
			t2++
		}
		loc := rng.Intn(3) - 1
		date := start.AddDate(0, 0, id*3650/size.Games).Format("20060102")
		gameRows = append(gameRows, []string{
			strconv.Itoa(id), date,
			strconv.Itoa(t1), strconv.Itoa(loc), strconv.Itoa(50 + rng.Intn(50)),
			strconv.Itoa(t2), strconv.Itoa(-loc), strconv.Itoa(50 + rng.Intn(50)),
		})
	}
	if err := writeCSV(files.games, gameRows); err != nil {
		return leagueFiles{}, err
	}

	importCmd := exec.Command("courtside", "db", "import",
		"--games", files.games, "--teams", files.teams,
		"--data-backend", "sqlite", "--data-db-connect", files.db)
	if output, err := importCmd.CombinedOutput(); err != nil {
		return leagueFiles{}, fmt.Errorf("import failed: %w\nOutput: %s", err, string(output))
	}
	return files, nil
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// runBenchmarks executes all benchmark tests across configured leagues.
func runBenchmarks(config BenchmarkConfig) ([]BenchmarkResult, error) {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d leagues, %v timeout, csv: %d runs, db: %d runs\n",
		len(config.Leagues), config.Timeout, config.CSVRuns, config.DBRuns)

	for _, size := range config.Leagues {
		fmt.Printf("Generating %s league (%d teams, %d games)\n", size.Name, size.Teams, size.Games)
		files, err := generateLeague(config, size)
		if err != nil {
			return nil, err
		}

		results = append(results, runBenchmarkSuite(config, size.Name, files, "teams", "--detail"))
		results = append(results, runBenchmarkSuite(config, size.Name, files, "timeseries", "--id 1001"))
	}

	return results, nil
}

// runBenchmarkSuite runs both CSV and database benchmarks for a command.
func runBenchmarkSuite(config BenchmarkConfig, league string, files leagueFiles, command, extraArgs string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", command, league)

	runPhase := func(sourceArgs []string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		args := append([]string{command}, sourceArgs...)
		args = append(args, strings.Fields(extraArgs)...)
		cold, times := runBenchmark(config, args, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avgTime = fmt.Sprintf("%.3fs", sum/float64(len(times)))
		}
		return cold, avgTime
	}

	// Phase 1: CSV files
	_, csvAvg := runPhase([]string{"--games", files.games, "--teams", files.teams}, config.CSVRuns, "CSV")

	// Phase 2: SQLite league database
	coldTime, warmAvg := runPhase([]string{"--data-backend", "sqlite", "--data-db-connect", files.db}, config.DBRuns, "Database")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  CSV average: %s, Cold time: %s, Warm average: %s\n", csvAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		League:   league,
		Command:  command,
		CSVTime:  csvAvg,
		ColdTime: coldTimeStr,
		WarmTime: warmAvg,
	}
}

// runBenchmark executes a courtside command multiple times and returns cold time and warm times.
func runBenchmark(config BenchmarkConfig, args []string, numRuns int) (coldTime float64, warmTimes []float64) {
	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("courtside", args...)

		done := make(chan bool, 1)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			_ = cmd.Process.Kill()
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion.
func isSuccess(output []byte) bool {
	return strings.Contains(strings.ToLower(string(output)), "completed in")
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("courtside_benchmark_%s.csv", timestamp))

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

	if err := writer.Write([]string{"league", "cmd", "csv_avg", "db_cold_time", "db_warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write([]string{result.League, result.Command, result.CSVTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "teams", "Team List:")
	printCommandSummary(results, "timeseries", "Timeseries:")
}

// printCommandSummary displays results for a specific command type.
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: CSV: %s, Cold: %s, Warm: %s\n", result.League, result.CSVTime, result.ColdTime, result.WarmTime)
		}
	}
}
