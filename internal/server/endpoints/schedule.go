package endpoints

import (
	"github.com/jackzampolin/classgrid/internal/pipeline"
	"github.com/jackzampolin/classgrid/internal/render"
)

// ScheduleResponse describes the outcome of a build and, when courses
// matched, the grouped timetable.
type ScheduleResponse struct {
	Outcome  pipeline.Outcome `json:"outcome" yaml:"outcome"`
	Summary  pipeline.Summary `json:"summary" yaml:"summary"`
	Document *render.Document `json:"document,omitempty" yaml:"document,omitempty"`
}

func scheduleResponse(res *pipeline.Result) ScheduleResponse {
	resp := ScheduleResponse{Outcome: res.Outcome, Summary: res.Summarize()}
	if res.Outcome == pipeline.OutcomeScheduled {
		resp.Document = render.NewDocument(res.Title, res.Schedule)
	}
	return resp
}

// scheduleGroup places schedule commands under "api schedule".
type scheduleGroup struct{}

func (scheduleGroup) Group() string { return "schedule" }
