package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type JobKind string

const (
	JobPrompt   JobKind = "prompt"
	JobFollowUp JobKind = "followup"
	JobCleanup  JobKind = "cleanup"
)

// Job is the record a scheduled job carries. The runner hands it back to the
// handler when the job fires, so nothing is captured from the scheduling scope.
type Job struct {
	Kind       JobKind
	ChatID     int64
	Hour       int       // recurring jobs
	Minute     int       // recurring jobs
	RunAt      time.Time // one-shot jobs
	ReportDate string
	MessageID  int
}

// Name is unique per logical job and doubles as the distributed lock key.
func (j Job) Name() string {
	switch j.Kind {
	case JobPrompt:
		return fmt.Sprintf("prompt:%d", j.ChatID)
	case JobFollowUp:
		return fmt.Sprintf("followup:%d:%s", j.ChatID, j.ReportDate)
	default:
		return fmt.Sprintf("%s:%d:%d", j.Kind, j.ChatID, j.MessageID)
	}
}

func (j Job) PendingCheck() PendingCheck {
	return PendingCheck{
		ChatID:          j.ChatID,
		ReportDate:      j.ReportDate,
		PromptMessageID: j.MessageID,
		RunAt:           j.RunAt,
	}
}

func FollowUpJob(check PendingCheck) Job {
	return Job{
		Kind:       JobFollowUp,
		ChatID:     check.ChatID,
		RunAt:      check.RunAt,
		ReportDate: check.ReportDate,
		MessageID:  check.PromptMessageID,
	}
}

// Trigger is an installed recurring prompt job.
type Trigger struct {
	ChatID int64     `json:"chat_id"`
	Hour   int       `json:"hour"`
	Minute int       `json:"minute"`
	JobID  uuid.UUID `json:"job_id"`
}
