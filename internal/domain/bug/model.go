package bug

import "time"

type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in_progress"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
	StatusReopened   Status = "reopened"
)

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

type Severity string

const (
	SeverityMinor    Severity = "minor"
	SeverityMajor    Severity = "major"
	SeverityCritical Severity = "critical"
	SeverityBlocker  Severity = "blocker"
)

func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed, StatusReopened:
		return true
	}
	return false
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

func (s Severity) Valid() bool {
	switch s {
	case SeverityMinor, SeverityMajor, SeverityCritical, SeverityBlocker:
		return true
	}
	return false
}

// Bug is a tracked defect record. ProjectID and ReportedByID are
// immutable after creation; ResolvedAt marks the last time the bug
// entered the resolved status and is never cleared.
type Bug struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text;not null" json:"description"`
	ProjectID   uint       `gorm:"not null;index" json:"project_id"`
	VersionID   *uint      `gorm:"index" json:"version_id,omitempty"`
	Status      Status     `gorm:"size:20;default:'open';index" json:"status"`
	Priority    Priority   `gorm:"size:20;default:'medium'" json:"priority"`
	Severity    Severity   `gorm:"size:20;default:'major'" json:"severity"`
	ReportedBy  uint       `gorm:"not null;index" json:"reported_by"`
	AssignedTo  *uint      `gorm:"index" json:"assigned_to,omitempty"`
	Tags        string     `gorm:"size:200" json:"tags"`
	CreatedAt   time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	ResolvedAt  *time.Time `json:"resolved_at,omitempty"`
}

func (Bug) TableName() string {
	return "bugs"
}

// Comment is owned exclusively by its Bug and ordered by creation time.
type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BugID     uint      `gorm:"not null;index" json:"bug_id"`
	AuthorID  uint      `gorm:"not null" json:"author_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Comment) TableName() string {
	return "bug_comments"
}

// Attachment references uploaded bytes by an opaque content ref; the
// bytes themselves live in the content store.
type Attachment struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BugID      uint      `gorm:"not null;index" json:"bug_id"`
	ContentRef string    `gorm:"size:200;not null" json:"content_ref"`
	Filename   string    `gorm:"size:100;not null" json:"filename"`
	UploadedBy uint      `gorm:"not null" json:"uploaded_by"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Attachment) TableName() string {
	return "bug_attachments"
}
