package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackzampolin/classgrid/internal/ingest"
	"github.com/jackzampolin/classgrid/internal/schedule"
)

const timetableText = `MONDAY
SOE 322 Software Quality Engineering 10:00am-12:00pm NHA1
CSC 201 Intro to Programming 8:00-10:00 LT2
PHY 102 Physics 2:00pm-4:00 LAB
TUESDAY
CSC 201 10:00-12:00`

const registrationText = `S/N Code Title
1 SOE 322 Software Quality Engineering
2 CSC 201 Intro to Programming`

func TestRun(t *testing.T) {
	res, err := Run(context.Background(), Request{
		Timetable:    TextSource{Label: "timetable", Text: timetableText},
		Registration: TextSource{Label: "registration", Text: registrationText},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Outcome != OutcomeScheduled {
		t.Fatalf("Outcome = %s, want %s", res.Outcome, OutcomeScheduled)
	}
	if res.ID == "" {
		t.Error("expected a run ID")
	}
	if len(res.Entries) != 4 {
		t.Errorf("Entries = %d, want 4", len(res.Entries))
	}
	if len(res.Matched) != 3 {
		t.Errorf("Matched = %d, want 3", len(res.Matched))
	}

	monday := res.Schedule[schedule.Monday]
	if len(monday) != 2 {
		t.Fatalf("Monday has %d entries, want 2", len(monday))
	}
	if monday[0].Code != "CSC 201" || monday[1].Code != "SOE 322" {
		t.Errorf("Monday order = %s, %s; want CSC 201, SOE 322", monday[0].Code, monday[1].Code)
	}
	tuesday := res.Schedule[schedule.Tuesday]
	if len(tuesday) != 1 || tuesday[0].Name != schedule.NameUnavailable {
		t.Errorf("Tuesday = %+v", tuesday)
	}

	sum := res.Summarize()
	if sum.Matched != 3 || len(sum.Days) != 2 || len(sum.Codes) != 2 {
		t.Errorf("Summarize() = %+v", sum)
	}
}

func TestRun_NoMatches(t *testing.T) {
	res, err := Run(context.Background(), Request{
		Timetable:    TextSource{Label: "timetable", Text: timetableText},
		Registration: TextSource{Label: "registration", Text: "1 MTH 999 Topology"},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Outcome != OutcomeNoMatches {
		t.Errorf("Outcome = %s, want %s", res.Outcome, OutcomeNoMatches)
	}
	if res.Schedule != nil {
		t.Errorf("Schedule = %v, want nil", res.Schedule)
	}
	if len(res.Entries) == 0 {
		t.Error("entries should still be reported")
	}
}

func TestRun_InputMissing(t *testing.T) {
	tests := []struct {
		name string
		req  Request
	}{
		{
			name: "nil timetable",
			req:  Request{Registration: TextSource{Text: registrationText}},
		},
		{
			name: "nil registration",
			req:  Request{Timetable: TextSource{Text: timetableText}},
		},
		{
			name: "missing file",
			req: Request{
				Timetable:    Files(ingest.LayoutPage, filepath.Join(t.TempDir(), "missing.pdf")),
				Registration: TextSource{Text: registrationText},
			},
		},
		{
			name: "no paths",
			req: Request{
				Timetable:    TextSource{Text: timetableText},
				Registration: FileSource{},
			},
		},
		{
			name: "empty upload",
			req: Request{
				Timetable:    BytesSource{Filename: "tt.pdf"},
				Registration: TextSource{Text: registrationText},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Run(context.Background(), tt.req)
			if !errors.Is(err, ErrInputMissing) {
				t.Errorf("Run() error = %v, want ErrInputMissing", err)
			}
			if res != nil {
				t.Errorf("Run() returned partial result %+v", res)
			}
		})
	}
}

type failingSource struct{ err error }

func (failingSource) Name() string { return "broken" }
func (s failingSource) Read(context.Context) (*ingest.Document, error) {
	return nil, s.err
}

func TestRun_SourceFailureAborts(t *testing.T) {
	boom := errors.New("boom")
	res, err := Run(context.Background(), Request{
		Timetable:    TextSource{Text: timetableText},
		Registration: failingSource{err: boom},
	})
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
	if errors.Is(err, ErrInputMissing) {
		t.Error("read failure should not be reported as missing input")
	}
	if res != nil {
		t.Error("expected no result")
	}
}

// rendezvousSource only completes once its partner has started reading.
type rendezvousSource struct {
	text    string
	started chan struct{}
	partner chan struct{}
}

func (s rendezvousSource) Name() string { return "rendezvous" }

func (s rendezvousSource) Read(ctx context.Context) (*ingest.Document, error) {
	close(s.started)
	select {
	case <-s.partner:
	case <-time.After(2 * time.Second):
		return nil, errors.New("partner never started")
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return &ingest.Document{Name: "rendezvous", Text: s.text}, nil
}

func TestRun_ReadsConcurrently(t *testing.T) {
	a, b := make(chan struct{}), make(chan struct{})
	res, err := Run(context.Background(), Request{
		Timetable:    rendezvousSource{text: timetableText, started: a, partner: b},
		Registration: rendezvousSource{text: registrationText, started: b, partner: a},
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Outcome != OutcomeScheduled {
		t.Errorf("Outcome = %s", res.Outcome)
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, Request{
		Timetable:    TextSource{Text: timetableText},
		Registration: TextSource{Text: registrationText},
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRun_Files(t *testing.T) {
	dir := t.TempDir()
	tt := filepath.Join(dir, "timetable.txt")
	reg := filepath.Join(dir, "registration.txt")
	if err := os.WriteFile(tt, []byte(timetableText), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(reg, []byte(registrationText), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Run(context.Background(), Request{
		Timetable:    Files(ingest.LayoutRows, tt),
		Registration: Files(ingest.LayoutRows, reg),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.Schedule.Len() != 3 {
		t.Errorf("Schedule.Len() = %d, want 3", res.Schedule.Len())
	}
	if res.Timetable.Name != "timetable" {
		t.Errorf("Timetable.Name = %q", res.Timetable.Name)
	}
}
