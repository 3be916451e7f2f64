package analysis

import (
	"time"

	"gorm.io/datatypes"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Request is a code analysis submission. Results is a JSON blob filled
// in by the configured provider; a malformed blob is treated as "no
// results" on the read path, never as a hard failure.
type Request struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Code        string         `gorm:"type:text;not null" json:"code"`
	Language    string         `gorm:"size:50" json:"language"`
	SubmittedBy uint           `gorm:"not null;index" json:"submitted_by"`
	Status      Status         `gorm:"size:20;default:'pending'" json:"status"`
	Results     datatypes.JSON `json:"results,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"submitted_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Request) TableName() string {
	return "analysis_requests"
}

type Issue struct {
	Type        string `json:"type"`
	Line        int    `json:"line"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Suggestion  string `json:"suggestion"`
}

type Result struct {
	Issues       []Issue `json:"issues"`
	Summary      string  `json:"summary"`
	QualityScore int     `json:"quality_score"`
}

type SubmitDTO struct {
	Code     string `json:"code" form:"code" binding:"required"`
	Language string `json:"language" form:"language"`
}
