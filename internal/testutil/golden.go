// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// ExpectedFile is the golden file name inside a case directory.
const ExpectedFile = "expected.golden"

// GenerateFunc produces the output for the case stored in dir.
type GenerateFunc func(t *testing.T, dir string) string

// AssertGolden compares actual against the golden file at path, or rewrites
// the file when -update is set.
func AssertGolden(t *testing.T, path, actual string) {
	t.Helper()

	if *Update {
		if err := os.WriteFile(path, []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", path, err)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	expectedBytes, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	expected := string(expectedBytes)
	if actual != expected {
		t.Errorf("output mismatch for %s:\n--- expected\n%s\n--- actual\n%s", path, expected, actual)
	}
}

// RunGolden runs a single golden case: it calls generate for dir and
// compares the result against dir/expected.golden.
func RunGolden(t *testing.T, dir string, generate GenerateFunc) {
	t.Helper()
	AssertGolden(t, filepath.Join(dir, ExpectedFile), generate(t, dir))
}

// RunGoldenDir walks all subdirectories under testdataDir and runs
// RunGolden for each as a subtest.
func RunGoldenDir(t *testing.T, testdataDir string, generate GenerateFunc) {
	t.Helper()

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatalf("failed to read testdata dir %s: %v", testdataDir, err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		t.Run(entry.Name(), func(t *testing.T) {
			dir := filepath.Join(testdataDir, entry.Name())
			RunGolden(t, dir, generate)
		})
	}
}
