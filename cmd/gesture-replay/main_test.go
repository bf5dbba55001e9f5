package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestRunFixture(t *testing.T) {
	silenceStdout(t)
	fixture := filepath.Join("..", "..", "engine", "replay", "testdata", "pinch_and_pan.json")
	if !run([]string{fixture}, 2, false) {
		t.Error("run reported failure for a valid recording")
	}
}

func TestRunMissingFile(t *testing.T) {
	silenceStdout(t)
	prev := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(prev)

	if run([]string{filepath.Join(t.TempDir(), "missing.json")}, 1, false) {
		t.Error("run reported success for a missing file")
	}
}

func silenceStdout(t *testing.T) {
	t.Helper()
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatalf("open %s: %v", os.DevNull, err)
	}
	prev := os.Stdout
	os.Stdout = devNull
	t.Cleanup(func() {
		os.Stdout = prev
		devNull.Close()
	})
}
