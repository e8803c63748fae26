//nolint:revive // utils is a common and acceptable package name
package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type testStruct struct {
	Name    string        `yaml:"name"`
	Jobs    int           `yaml:"jobs"`
	Timeout time.Duration `yaml:"timeout"`
	Tags    []string      `yaml:"tags"`
}

// TestParseYamlFromBytes_Success tests successful YAML parsing from bytes
func TestParseYamlFromBytes_Success(t *testing.T) {
	yamlData := []byte(`
name: advent
jobs: 4
timeout: 30s
tags:
  - tag1
  - tag2
`)

	var result testStruct
	if err := ParseYamlFromBytes(yamlData, &result); err != nil {
		t.Fatalf("ParseYamlFromBytes() failed: %v", err)
	}

	if result.Name != "advent" {
		t.Errorf("Name = %q, want %q", result.Name, "advent")
	}
	if result.Jobs != 4 {
		t.Errorf("Jobs = %d, want %d", result.Jobs, 4)
	}
	if result.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want %v", result.Timeout, 30*time.Second)
	}
	if len(result.Tags) != 2 {
		t.Errorf("len(Tags) = %d, want 2", len(result.Tags))
	}
}

// TestParseYamlFromBytes_UnknownKey tests that typos are reported
func TestParseYamlFromBytes_UnknownKey(t *testing.T) {
	var result testStruct
	err := ParseYamlFromBytes([]byte("nmae: typo\n"), &result)
	if err == nil {
		t.Fatal("ParseYamlFromBytes() should reject unknown keys")
	}
	if !strings.Contains(err.Error(), "error unmarshal yaml") {
		t.Errorf("error = %q, want it wrapped", err)
	}
}

// TestParseYamlFromBytes_Invalid tests malformed input
func TestParseYamlFromBytes_Invalid(t *testing.T) {
	var result testStruct
	if err := ParseYamlFromBytes([]byte("name: [unclosed\njobs: 2"), &result); err == nil {
		t.Error("ParseYamlFromBytes() should fail on invalid syntax")
	}
}

// TestParseYamlFromFile tests reading from disk
func TestParseYamlFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	if err := os.WriteFile(path, []byte("name: from-file\n"), 0600); err != nil {
		t.Fatal(err)
	}

	var result testStruct
	if err := ParseYamlFromFile(path, &result); err != nil {
		t.Fatalf("ParseYamlFromFile() failed: %v", err)
	}
	if result.Name != "from-file" {
		t.Errorf("Name = %q, want %q", result.Name, "from-file")
	}
}

// TestParseYamlFromFile_Missing tests a missing file
func TestParseYamlFromFile_Missing(t *testing.T) {
	var result testStruct
	err := ParseYamlFromFile(filepath.Join(t.TempDir(), "nope.yaml"), &result)
	if err == nil || !strings.Contains(err.Error(), "file open error") {
		t.Errorf("ParseYamlFromFile() error = %v, want file open error", err)
	}
}

func TestMarshalYaml_RoundTrip(t *testing.T) {
	in := testStruct{Name: "x", Jobs: 2}
	out, err := MarshalYaml(in)
	if err != nil {
		t.Fatal(err)
	}

	var back testStruct
	if err := ParseYamlFromBytes(out, &back); err != nil {
		t.Fatalf("round trip failed: %v\n%s", err, out)
	}
	if back.Name != in.Name || back.Jobs != in.Jobs {
		t.Errorf("round trip = %+v, want %+v", back, in)
	}
}
