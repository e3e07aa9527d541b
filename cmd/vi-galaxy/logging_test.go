package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDiscardsWithoutDebug(t *testing.T) {
	if f := setupLogging(false); f != nil {
		f.Close()
		t.Fatal("log file opened without debug")
	}
	if log.Writer() != io.Discard {
		t.Errorf("log output = %v, want io.Discard", log.Writer())
	}
}

func TestSetupLoggingWritesFile(t *testing.T) {
	t.Chdir(t.TempDir())

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file in debug mode")
	}
	defer f.Close()

	if w := log.Writer(); w == os.Stdout || w == os.Stderr {
		t.Error("debug log must not share the terminal")
	}

	log.Println("frame loop started")

	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("stat log: %v", err)
	}
	if info.Size() == 0 {
		t.Error("log file is empty")
	}
}

func TestSetupLoggingRotatesLargeFile(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(logDir, 0755); err != nil {
		t.Fatal(err)
	}
	logPath := filepath.Join(logDir, logFileName)
	if err := os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644); err != nil {
		t.Fatal(err)
	}

	f := setupLogging(true)
	if f == nil {
		t.Fatal("no log file after rotation")
	}
	defer f.Close()

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("log dir has %d entries, want current plus rotated", len(entries))
	}

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() > maxLogSize {
		t.Errorf("current log not rotated, size %d", info.Size())
	}
}
