// Package cli — summary_test.go contains unit tests for the summary
// formatting helpers. They build reports by hand and need no filesystem.
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/replacename/internal/model"
	"github.com/mmr-tortoise/replacename/internal/renamer"
)

// sampleReport returns a report with one change, one skip and one failure.
func sampleReport() *renamer.Report {
	report := renamer.NewReport("/work", renamer.Options{Mode: model.ModeSuffixReplace, From: "_old", To: "_new"})
	report.Record(renamer.OutcomeRenamed,
		model.NewFileEntry("/work", "b_old.txt"), model.NewFileEntry("/work", "b_new.txt"), nil)
	report.Record(renamer.OutcomeSkipped,
		model.NewFileEntry("/work", "c.txt"), model.NewFileEntry("/work", "c.txt"), nil)
	report.Record(renamer.OutcomeFailed,
		model.NewFileEntry("/work", "a_old.txt"), model.NewFileEntry("/work", "a_new.txt"),
		errors.New("permission denied"))
	return report
}

// TestFormatSummaryLine verifies the counters line.
func TestFormatSummaryLine(t *testing.T) {
	tests := []struct {
		name   string
		report *renamer.Report
		want   string
	}{
		{
			name:   "empty run",
			report: renamer.NewReport("/work", renamer.Options{Mode: model.ModeReplace}),
			want:   "Finished. visited=0 renamed=0 unchanged=0 skipped=0 failed=0",
		},
		{
			name:   "mixed outcomes",
			report: sampleReport(),
			want:   "Finished. visited=3 renamed=1 unchanged=0 skipped=1 failed=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSummaryLine(tt.report))
		})
	}
}

func TestPrintSummary_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, model.FormatText, sampleReport()))

	assert.Equal(t,
		"Finished. visited=3 renamed=1 unchanged=0 skipped=1 failed=1\n"+
			"  failed: /work/a_old.txt -> /work/a_new.txt: permission denied\n",
		buf.String())
}

func TestPrintSummary_TextWithoutFailures(t *testing.T) {
	var buf bytes.Buffer
	report := renamer.NewReport("/work", renamer.Options{Mode: model.ModeReplace})
	report.Visited, report.Unchanged = 2, 2
	require.NoError(t, printSummary(&buf, model.FormatText, report))

	assert.Equal(t, "Finished. visited=2 renamed=0 unchanged=2 skipped=0 failed=0\n", buf.String())
}

func TestPrintSummary_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, model.FormatJSON, sampleReport()))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "suffixReplace", decoded["mode"])
	assert.EqualValues(t, 3, decoded["visited"])
	assert.EqualValues(t, 1, decoded["failed"])

	changes, ok := decoded["changes"].([]interface{})
	require.True(t, ok)
	require.Len(t, changes, 1)
	assert.Equal(t, "/work/b_new.txt", changes[0].(map[string]interface{})["target"])
}

// TestPrintSummary_JSONEmptyLists makes sure empty lists print as [] not null.
func TestPrintSummary_JSONEmptyLists(t *testing.T) {
	var buf bytes.Buffer
	report := renamer.NewReport("/work", renamer.Options{Mode: model.ModeReplace})
	require.NoError(t, printSummary(&buf, model.FormatJSON, report))

	assert.Contains(t, buf.String(), `"changes": []`)
	assert.Contains(t, buf.String(), `"failures": []`)
}

func TestPrintSummary_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printSummary(&buf, model.FormatYAML, sampleReport()))

	var decoded struct {
		Root     string `yaml:"root"`
		Mode     string `yaml:"mode"`
		Renamed  int    `yaml:"renamed"`
		Failures []struct {
			Path  string `yaml:"path"`
			Error string `yaml:"error"`
		} `yaml:"failures"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "/work", decoded.Root)
	assert.Equal(t, "suffixReplace", decoded.Mode)
	assert.Equal(t, 1, decoded.Renamed)
	require.Len(t, decoded.Failures, 1)
	assert.Equal(t, "/work/a_old.txt", decoded.Failures[0].Path)
	assert.Equal(t, "permission denied", decoded.Failures[0].Error)
}
