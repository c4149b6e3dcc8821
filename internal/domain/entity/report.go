package entity

import "time"

// ReportDateLayout is the calendar date format used for report dates.
const ReportDateLayout = "2006-01-02"

type Report struct {
	ChatID           int64     `json:"chat_id" db:"chat_id"`
	UserID           int64     `json:"user_id" db:"user_id"`
	Date             string    `json:"date" db:"date"`
	ReplyToMessageID int       `json:"reply_to_message_id" db:"reply_to_message_id"`
	MessageID        int       `json:"message_id" db:"message_id"`
	Text             string    `json:"text" db:"text"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// ReportView joins a report with its author for the /report listing.
type ReportView struct {
	UserID   int64
	Username string
	Text     string
}

// PendingCheck is a follow-up that has been scheduled but not fired yet.
type PendingCheck struct {
	ChatID          int64     `json:"chat_id" db:"chat_id"`
	ReportDate      string    `json:"report_date" db:"report_date"`
	PromptMessageID int       `json:"prompt_message_id" db:"prompt_message_id"`
	RunAt           time.Time `json:"run_at" db:"run_at"`
}
