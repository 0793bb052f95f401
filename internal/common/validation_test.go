package common

import (
	"testing"
)

func TestNormalizeOutputFormat(t *testing.T) {
	supported := []string{"json", "text", "markdown"}

	tests := []struct {
		name        string
		format      string
		supported   []string
		want        string
		expectError bool
	}{
		{name: "json", format: "json", supported: supported, want: "json"},
		{name: "markdown", format: "markdown", supported: supported, want: "markdown"},
		{name: "case folded", format: "JSON", supported: supported, want: "json"},
		{name: "surrounding whitespace", format: " text ", supported: supported, want: "text"},
		{name: "unsupported", format: "xml", supported: supported, expectError: true},
		{name: "empty format", format: "", supported: supported, expectError: true},
		{name: "no restriction", format: "yaml", supported: nil, want: "yaml"},
		{name: "single format valid", format: "json", supported: []string{"json"}, want: "json"},
		{name: "single format invalid", format: "text", supported: []string{"json"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeOutputFormat(tt.format, tt.supported)
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error for format %q, got none", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	supported := []string{"json", "text", "markdown"}

	if err := ValidateOutputFormat("text", supported); err != nil {
		t.Errorf("expected text to be accepted: %v", err)
	}

	err := ValidateOutputFormat("csv", supported)
	if err == nil {
		t.Fatal("expected csv to be rejected")
	}
	want := "unsupported output format 'csv'. Supported formats: [json text markdown]"
	if err.Error() != want {
		t.Errorf("expected error %q, got %q", want, err.Error())
	}
}

func TestValidateTopN(t *testing.T) {
	tests := []struct {
		name        string
		topN        int
		maxTopN     int
		expectError bool
	}{
		{name: "zero means default", topN: 0, maxTopN: 50},
		{name: "within bound", topN: 10, maxTopN: 50},
		{name: "at bound", topN: 50, maxTopN: 50},
		{name: "over bound", topN: 51, maxTopN: 50, expectError: true},
		{name: "negative", topN: -1, maxTopN: 50, expectError: true},
		{name: "unbounded", topN: 1000, maxTopN: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTopN(tt.topN, tt.maxTopN)
			if tt.expectError && err == nil {
				t.Errorf("expected error for topN=%d max=%d", tt.topN, tt.maxTopN)
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestGetSupportedFormats(t *testing.T) {
	supported := []string{"json", "text", "markdown"}
	got := GetSupportedFormats(supported)
	if len(got) != 3 || got[0] != "json" || got[2] != "markdown" {
		t.Errorf("unexpected formats: %v", got)
	}
}
