package outwriter

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/courtside/courtside/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTeamDetailText(t *testing.T) {
	cfg := testConfig(schema.TextOut)
	fmtFloat, _ := createFormatters(cfg.Precision)
	detail := schema.NewTeamDetail(testPerformance(), schema.OpenDateRange())

	var buf bytes.Buffer
	require.NoError(t, writeTeamDetailText(&buf, detail, cfg, fmtFloat, time.Millisecond))

	out := buf.String()
	assert.Contains(t, out, "Duke Performance Details (Average)")
	assert.Contains(t, out, "Overall:  50.00% (1-1)")
	assert.Contains(t, out, "Home:     100.00% (1-0)")
	assert.Contains(t, out, "Away:     0.00% (0-0)")
	assert.Contains(t, out, "Neutral:  0.00% (0-1)")
	assert.Contains(t, out, "01/05/2023")
	assert.Contains(t, out, "78-70")
	assert.Contains(t, out, "72-80")
	assert.Contains(t, out, "2 games played")
}

func TestWriteHistoryCSV(t *testing.T) {
	fmtFloat, intFmt := createFormatters(2)

	var buf bytes.Buffer
	require.NoError(t, writeHistoryCSV(&buf, testPerformance(), fmtFloat, intFmt))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "101,Duke,1,01/05/2023,202,North Carolina,Home,W,78,70,1,0,100.00", lines[1])
	assert.Equal(t, "101,Duke,3,01/10/2023,303,Virginia,Neutral,L,72,80,1,1,50.00", lines[2])
}

func TestWriteTeamDetailJSONFile(t *testing.T) {
	cfg := testConfig(schema.JSONOut)
	cfg.OutputFile = filepath.Join(t.TempDir(), "duke.json")
	detail := schema.NewTeamDetail(testPerformance(), schema.DateRange{Start: 20230101, End: 20230131})

	require.NoError(t, WriteTeamDetail(detail, cfg, time.Millisecond))

	data, err := os.ReadFile(cfg.OutputFile)
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "Duke", result["team_name"])
	assert.Equal(t, schema.AverageLabel, result["label"])
	assert.Len(t, result["game_history"], 2)
	assert.Len(t, result["performance_over_time"], 2)
	assert.Equal(t, map[string]any{"start": 20230101.0, "end": 20230131.0}, result["date_range"])
}
