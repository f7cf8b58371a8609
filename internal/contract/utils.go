package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/courtside/courtside/schema"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
)

// Color variables for console output.
var (
	EliteColor   = color.New(color.FgGreen, color.Bold) // EliteColor marks the strongest records.
	StrongColor  = color.New(color.FgCyan, color.Bold)  // StrongColor marks clearly winning records.
	AverageColor = color.New(color.FgYellow)            // AverageColor marks records around .500.
	WeakColor    = color.New(color.FgRed)               // WeakColor marks losing records.
)

// GetPlainLabel returns a plain text label for a total win percentage.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(winPct float64) string {
	return schema.GetPlainLabel(winPct)
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(winPct float64) string {
	text := GetPlainLabel(winPct)

	switch text {
	case schema.EliteLabel:
		return EliteColor.Sprint(text)
	case schema.StrongLabel:
		return StrongColor.Sprint(text)
	case schema.AverageLabel:
		return AverageColor.Sprint(text)
	default: // "Weak"
		return WeakColor.Sprint(text)
	}
}

// GetLabel returns the colored or plain label depending on the color setting.
func GetLabel(winPct float64, useColors bool) string {
	if useColors {
		return GetColorLabel(winPct)
	}
	return GetPlainLabel(winPct)
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	log.Error().Err(err).Msg(msg)
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	log.Warn().Err(err).Msg(msg)
}

// GetDataDBFilePath returns the path to the SQLite DB file for league records.
func GetDataDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".courtside_league.db"
	}
	return filepath.Join(homeDir, ".courtside_league.db")
}

// TruncateName truncates a team name to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave room for the "..." suffix and at least one character.
func TruncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
