package formatter

import (
	"encoding/csv"
	"strings"
	"testing"
)

func TestCSVFormatterFormat(t *testing.T) {
	view := sampleView()

	output := captureOutput(t, func() error {
		return NewCSVFormatter().Format(view)
	})

	reader := csv.NewReader(strings.NewReader(output))
	rows, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("Output is not valid CSV: %v\n%s", err, output)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "request_id" {
		t.Errorf("Expected request_id header, got %q", rows[0][0])
	}
	if rows[1][0] != "abc" || rows[1][6] != "0.00" {
		t.Errorf("Unexpected first row: %v", rows[1])
	}
	// CSV quoting keeps the multi-line message intact
	if !strings.Contains(rows[2][5], "\n") {
		t.Errorf("Expected multi-line message to survive, got %q", rows[2][5])
	}
}

func TestSummaryFormatterFormat(t *testing.T) {
	view := sampleView()

	output := captureOutput(t, func() error {
		return NewSummaryFormatter().Format(view)
	})

	for _, want := range []string{
		"Log Summary Report: api",
		"Records: 2 across 1 request ids",
		"abc:",
		"Errors:        1",
		"Elapsed (sec): 3.00",
		"Total Time (sec): 3.00",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("Expected output to contain %q.\nGot:\n%s", want, output)
		}
	}
}

func TestSummaryFormatterEmptyView(t *testing.T) {
	output := captureOutput(t, func() error {
		return NewSummaryFormatter().Format(ViewData{Source: "api"})
	})

	if !strings.Contains(output, "No logs found") {
		t.Errorf("Expected empty-view notice, got:\n%s", output)
	}
}

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"table", false},
		{"", false},
		{"json", false},
		{"csv", false},
		{"summary", false},
		{"xml", true},
	}

	for _, tt := range tests {
		_, err := NewFormatter(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewFormatter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}
