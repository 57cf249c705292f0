// Package pipeline runs one timetable build: it reads both documents,
// extracts entries and registered codes, matches them and groups the result
// by day.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jackzampolin/classgrid/internal/ingest"
	"github.com/jackzampolin/classgrid/internal/schedule"
)

// ErrInputMissing is returned when either document is not supplied or
// cannot be found. No partial result accompanies it.
var ErrInputMissing = errors.New("input missing")

// Outcome distinguishes a usable schedule from an empty match.
type Outcome string

const (
	OutcomeScheduled Outcome = "scheduled"
	// OutcomeNoMatches means no timetable entry carried a registered code.
	// It is a normal result, not an error.
	OutcomeNoMatches Outcome = "no_matches"
)

// Request contains the two documents for a run.
type Request struct {
	Timetable    Source
	Registration Source

	// Title labels exports of the result; empty means the default title.
	Title  string
	Logger *slog.Logger
}

// Result is everything a run produced. Schedule is nil unless Outcome is
// OutcomeScheduled.
type Result struct {
	ID           string
	Title        string
	Outcome      Outcome
	Timetable    *ingest.Document
	Registration *ingest.Document
	Entries      []schedule.CourseEntry
	Codes        schedule.CodeSet
	Matched      []schedule.CourseEntry
	Schedule     schedule.GroupedSchedule
	StartedAt    time.Time
	Duration     time.Duration
}

// Run reads both documents concurrently, waits for both, then extracts,
// matches and groups. A failure reading either document aborts the run.
func Run(ctx context.Context, req Request) (*Result, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}
	if req.Timetable == nil {
		return nil, fmt.Errorf("%w: timetable", ErrInputMissing)
	}
	if req.Registration == nil {
		return nil, fmt.Errorf("%w: registration", ErrInputMissing)
	}

	res := &Result{ID: uuid.New().String(), Title: req.Title, StartedAt: time.Now()}
	log = log.With("run_id", res.ID)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		doc, err := acquire(gctx, "timetable", req.Timetable)
		res.Timetable = doc
		return err
	})
	g.Go(func() error {
		doc, err := acquire(gctx, "registration", req.Registration)
		res.Registration = doc
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("run aborted", "error", err)
		return nil, err
	}

	res.Entries = schedule.ExtractSchedule(res.Timetable.Text)
	res.Codes = schedule.ExtractRegisteredCodes(res.Registration.Text)
	log.Debug("extracted", "entries", len(res.Entries), "codes", res.Codes.Sorted())

	res.Matched = schedule.Match(res.Entries, res.Codes)
	res.Duration = time.Since(res.StartedAt)
	if len(res.Matched) == 0 {
		res.Outcome = OutcomeNoMatches
		log.Warn("no matching courses found", "entries", len(res.Entries), "codes", res.Codes.Len())
		return res, nil
	}

	res.Outcome = OutcomeScheduled
	res.Schedule = schedule.GroupAndSort(res.Matched)
	log.Info("schedule built",
		"entries", len(res.Entries),
		"codes", res.Codes.Len(),
		"matched", len(res.Matched),
		"days", len(res.Schedule.Days()),
		"duration", res.Duration)
	return res, nil
}

func acquire(ctx context.Context, role string, src Source) (*ingest.Document, error) {
	doc, err := src.Read(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s %q: %w", ErrInputMissing, role, src.Name(), err)
		}
		return nil, fmt.Errorf("failed to read %s %q: %w", role, src.Name(), err)
	}
	return doc, nil
}

// Summary is a compact description of a result for status output.
type Summary struct {
	ID       string         `json:"id" yaml:"id"`
	Title    string         `json:"title,omitempty" yaml:"title,omitempty"`
	Outcome  Outcome        `json:"outcome" yaml:"outcome"`
	Entries  int            `json:"entries" yaml:"entries"`
	Codes    []string       `json:"codes" yaml:"codes"`
	Matched  int            `json:"matched" yaml:"matched"`
	Days     []schedule.Day `json:"days,omitempty" yaml:"days,omitempty"`
	Duration string         `json:"duration" yaml:"duration"`
}

// Summarize condenses r.
func (r *Result) Summarize() Summary {
	return Summary{
		ID:       r.ID,
		Title:    r.Title,
		Outcome:  r.Outcome,
		Entries:  len(r.Entries),
		Codes:    r.Codes.Sorted(),
		Matched:  len(r.Matched),
		Days:     r.Schedule.Days(),
		Duration: r.Duration.Round(time.Microsecond).String(),
	}
}
