package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestSetupLoggingDiscardsByDefault(t *testing.T) {
	prev := log.Writer()
	defer log.SetOutput(prev)

	if f := setupLogging(false); f != nil {
		f.Close()
		t.Error("Expected nil log file when debug=false")
	}
	if log.Writer() != io.Discard {
		t.Errorf("Expected log output to be io.Discard, got %v", log.Writer())
	}
}

func TestSetupLoggingWritesToFile(t *testing.T) {
	prev := log.Writer()
	defer log.SetOutput(prev)

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	f := setupLogging(true)
	if f == nil {
		t.Fatal("Expected non-nil log file when debug=true")
	}
	defer f.Close()

	if out := log.Writer(); out == os.Stdout || out == os.Stderr {
		t.Error("Log output must not be the terminal")
	}

	log.Println("burst sandbox test line")
	info, err := os.Stat(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestMousePressTriggersOnce(t *testing.T) {
	var s sandbox
	if !s.pressed(1) {
		t.Error("Expected first Button1 event to count as a press")
	}
	if s.pressed(1) {
		t.Error("Expected drag with Button1 held to be ignored")
	}
	if s.pressed(0) {
		t.Error("Expected release not to be a press")
	}
	if !s.pressed(1) {
		t.Error("Expected a new press after release")
	}
}
