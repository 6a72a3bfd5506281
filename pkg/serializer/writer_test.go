package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

const (
	testName  = "test"
	test1Name = "test1"
)

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}

	if result[0].Name != test1Name || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result []testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}

	if result[0].Name != test1Name || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := struct {
		Current string `json:"current"`
		Next    struct {
			Development string `json:"development"`
			Release     string `json:"release,omitempty"`
		} `json:"next"`
		Hidden string `json:"-"`
	}{
		Current: "1.2.0-SNAPSHOT",
		Hidden:  "secret",
	}
	data.Next.Development = "1.3.0-SNAPSHOT"
	data.Next.Release = "1.2.0"

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"FIELD", "VALUE", "current", "1.2.0-SNAPSHOT", "next.development", "1.3.0-SNAPSHOT", "next.release"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "secret") {
		t.Errorf("table output contains excluded field:\n%s", out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// header, separator, three rows in sorted key order
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[2], "current") || !strings.HasPrefix(lines[4], "next.release") {
		t.Errorf("rows not sorted by key:\n%s", out)
	}
}

func TestWriter_SerializeTable_Scalar(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), "1.2.3"); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "value") || !strings.Contains(buf.String(), "1.2.3") {
		t.Errorf("unexpected scalar table output:\n%s", buf.String())
	}
}

func TestWriter_SerializeTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	if err := writer.Serialize(context.Background(), map[string]string{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if buf.String() != "<empty>\n" {
		t.Errorf("expected empty marker, got %q", buf.String())
	}
}

func TestWriter_SerializeTable_NilValues(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := struct {
		Name  *string           `json:"name"`
		Items []string          `json:"items"`
		Attrs map[string]string `json:"attrs"`
	}{
		Items: []string{"a", "b"},
		Attrs: map[string]string{"k": "v"},
	}

	if err := writer.Serialize(context.Background(), data); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"name", "<nil>", "items.[0]", "items.[1]", "attrs.k"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriter_UnknownFormatDefaultsToJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(Format("xml"), &buf)

	if err := writer.Serialize(context.Background(), testConfig{Name: testName, Value: 1}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var result testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
}

func TestWriter_SerializeFailureWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	err := writer.Serialize(context.Background(), map[string]any{"ch": make(chan int)})
	if err == nil {
		t.Fatal("expected error for unserializable value")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output on failure, got %q", buf.String())
	}
}

func TestFormat_IsUnknown(t *testing.T) {
	tests := []struct {
		format   Format
		expected bool
	}{
		{FormatJSON, false},
		{FormatYAML, false},
		{FormatTable, false},
		{Format(""), true},
		{Format("JSON"), true},
		{Format("xml"), true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			if got := tt.format.IsUnknown(); got != tt.expected {
				t.Errorf("IsUnknown(%q) = %v, want %v", tt.format, got, tt.expected)
			}
		})
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 3 {
		t.Fatalf("expected 3 formats, got %v", formats)
	}
	for _, f := range formats {
		if Format(f).IsUnknown() {
			t.Errorf("supported format %q reported as unknown", f)
		}
	}
}

func TestFileWriter_CommitsOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "next.yaml")

	writer, err := NewFileWriter(FormatYAML, path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}

	if err := writer.Serialize(context.Background(), testConfig{Name: testName, Value: 7}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s to be absent before Close, stat err: %v", path, err)
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}

	var result testConfig
	if err := yaml.Unmarshal(content, &result); err != nil {
		t.Fatalf("failed to unmarshal output: %v", err)
	}
	if result.Name != testName || result.Value != 7 {
		t.Errorf("unexpected file content: %+v", result)
	}

	// second close is a no-op
	if err := writer.Close(); err != nil {
		t.Errorf("second Close returned error: %v", err)
	}
}

func TestFileWriter_NothingWrittenKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "next.json")
	if err := os.WriteFile(path, []byte("original"), 0o600); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	writer, err := NewFileWriter(FormatJSON, path)
	if err != nil {
		t.Fatalf("NewFileWriter failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(content) != "original" {
		t.Errorf("expected file to be untouched, got %q", content)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("failed to list dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected temporary file to be cleaned up, found %d entries", len(entries))
	}
}

func TestFileWriter_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "next.json")
	if _, err := NewFileWriter(FormatJSON, path); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestNewFileWriterOrStdout(t *testing.T) {
	writer, err := NewFileWriterOrStdout(FormatJSON, "  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if writer.output != os.Stdout {
		t.Error("expected stdout writer for blank path")
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close on stdout writer returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.json")
	writer, err = NewFileWriterOrStdout(FormatJSON, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer writer.Close()
	if writer.pending == nil {
		t.Error("expected file writer for non-empty path")
	}
}

func TestMarshal_UnsupportedFormat(t *testing.T) {
	if _, err := Marshal(Format("xml"), testConfig{}); err == nil {
		t.Error("expected error for unsupported format")
	}
}
