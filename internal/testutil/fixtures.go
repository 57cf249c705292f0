package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TimetableText is a small faculty timetable in the one-line-per-page
// shape produced by PDF extraction.
const TimetableText = "MONDAY CSC 201 Intro to Programming 8:00-10:00 LT1 " +
	"MTH 101 Algebra 10:00-12:00 Hall A\n" +
	"TUESDAY PHY 101 Mechanics 2:00pm-4:00 Lab 3 " +
	"CSC 305 Operating Systems 9:00-11:00 LT2\n" +
	"FRIDAY CSC 201 Intro to Programming 1:00-3:00 LT1"

// RegistrationText registers CSC 201 and PHY 101.
const RegistrationText = "Course Registration Form\n1 CSC 201 Intro to Programming 3\n2 PHY 101 Mechanics 2"

// UnrelatedRegistrationText registers nothing on TimetableText.
const UnrelatedRegistrationText = "1 BIO 111 Cell Biology 3"

// WriteFile writes content to name under a fresh temp dir and returns the path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
