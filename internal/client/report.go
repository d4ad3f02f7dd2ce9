package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"tikkeul/internal/domain"
	"tikkeul/internal/pkg/logger"
)

const (
	MsgChecklistIncomplete = "모든 체크리스트 항목에 답변해주세요."
	MsgReportFailed        = "미세산재 신고에 실패했습니다."
)

// ErrChecklistIncomplete blocks submission while any question is unanswered.
var ErrChecklistIncomplete = errors.New(MsgChecklistIncomplete)

// ChecklistItem is a question with an answer that may still be unset.
type ChecklistItem struct {
	Question string
	Answer   *bool
}

// Checklist keeps the server's question order.
type Checklist []ChecklistItem

func NewChecklist(questions []string) Checklist {
	out := make(Checklist, 0, len(questions))
	for _, q := range questions {
		out = append(out, ChecklistItem{Question: q})
	}
	return out
}

// Answer sets the answer for question. It reports false for unknown
// questions.
func (c Checklist) Answer(question string, v bool) bool {
	for i := range c {
		if c[i].Question == question {
			c[i].Answer = &v
			return true
		}
	}
	return false
}

func (c Checklist) Complete() bool {
	for _, item := range c {
		if item.Answer == nil {
			return false
		}
	}
	return true
}

// Pairs returns the answered checklist in order. Unanswered items are
// skipped.
func (c Checklist) Pairs() domain.CheckPairs {
	out := make(domain.CheckPairs, 0, len(c))
	for _, item := range c {
		if item.Answer == nil {
			continue
		}
		out = append(out, domain.CheckAnswer{Question: item.Question, Answer: *item.Answer})
	}
	return out
}

// ReportForm is the state of the incident-report form. Zero ids mean "not
// selected".
type ReportForm struct {
	WorkerName            string `validate:"required"`
	AgeRangeID            int    `validate:"gt=0"`
	Sex                   string `validate:"required"`
	WorkExperienceRangeID int    `validate:"gt=0"`
	IndustryTypeLargeID   int    `validate:"gte=0"`
	IndustryTypeMediumID  int    `validate:"gte=0"`
	ThreatTypeID          int    `validate:"gt=0"`
	ThreatLevel           int    `validate:"min=1,max=5"`
	WorkTypeID            int    `validate:"gt=0"`
	Checklist             Checklist
	Description           string
	Date                  domain.Date
	FactoryID             int    `validate:"gte=0"`
	ImageURL              string `validate:"omitempty,url"`
}

// NewReportForm seeds the checklist from the loaded questions and selects
// the first factory, if any.
func NewReportForm(l Lookups) *ReportForm {
	f := &ReportForm{
		Checklist: NewChecklist(l.Checks),
		FactoryID: domain.NoFactoryID,
	}
	if len(l.Factories) > 0 {
		f.FactoryID = l.Factories[0].ID
	}
	return f
}

var formValidator = validator.New()

// Validate runs the checklist rule first, then required-field checks.
func (f *ReportForm) Validate() error {
	if !f.Checklist.Complete() {
		return ErrChecklistIncomplete
	}
	if err := formValidator.Struct(f); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if f.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	return nil
}

// ErrValidation marks any local form error other than the checklist rule.
var ErrValidation = errors.New("invalid form")

// SubmitError is a failed submission after validation passed. WorkerID is
// set when the worker was created before the incident failed; that worker
// is left behind.
type SubmitError struct {
	WorkerID int
	Err      error
}

func (e *SubmitError) Error() string { return MsgReportFailed }

func (e *SubmitError) Unwrap() error { return e.Err }

// Reporter is the part of the API a submission needs.
type Reporter interface {
	CreateWorker(ctx context.Context, w domain.NewWorker) (int, error)
	CreateIncident(ctx context.Context, in domain.NewIncident) error
}

// Submit validates, then creates the worker and the incident referencing
// it. A validation failure makes no calls and leaves the form untouched.
func (f *ReportForm) Submit(ctx context.Context, api Reporter) error {
	if err := f.Validate(); err != nil {
		return err
	}
	workerID, err := api.CreateWorker(ctx, domain.NewWorker{
		Name:                  f.WorkerName,
		AgeRangeID:            f.AgeRangeID,
		Sex:                   f.Sex,
		WorkExperienceRangeID: f.WorkExperienceRangeID,
	})
	if err != nil {
		logger.Errorf(ctx, "create worker: %v", err)
		return &SubmitError{Err: err}
	}
	if err := api.CreateIncident(ctx, f.payload(workerID)); err != nil {
		logger.Errorf(ctx, "create incident (worker %d left without incident): %v", workerID, err)
		return &SubmitError{WorkerID: workerID, Err: err}
	}
	return nil
}

func (f *ReportForm) payload(workerID int) domain.NewIncident {
	in := domain.NewIncident{
		WorkerID:     workerID,
		ThreatTypeID: f.ThreatTypeID,
		ThreatLevel:  f.ThreatLevel,
		WorkTypeID:   f.WorkTypeID,
		Checks:       f.Checklist.Pairs(),
		Description:  f.Description,
		Date:         domain.ISODate(f.Date),
		FactoryID:    f.FactoryID,
		ImageURL:     f.ImageURL,
	}
	if f.IndustryTypeLargeID > 0 {
		id := f.IndustryTypeLargeID
		in.IndustryTypeLargeID = &id
	}
	if f.IndustryTypeMediumID > 0 {
		id := f.IndustryTypeMediumID
		in.IndustryTypeMediumID = &id
	}
	return in
}
