package bug

type CreateBugDTO struct {
	Title       string    `json:"title" form:"title" binding:"required"`
	Description string    `json:"description" form:"description" binding:"required"`
	ProjectID   uint      `json:"project_id" form:"project_id" binding:"required"`
	VersionID   *uint     `json:"version_id,omitempty" form:"version_id,omitempty"`
	Priority    *Priority `json:"priority,omitempty" form:"priority,omitempty"`
	Severity    *Severity `json:"severity,omitempty" form:"severity,omitempty"`
	Tags        string    `json:"tags" form:"tags"`
}

// UpdateBugDTO carries each changeable field independently; nil means
// "leave unchanged". The diff-and-audit logic operates on this closed
// set, never on a loose field map.
type UpdateBugDTO struct {
	Title       *string   `json:"title,omitempty" form:"title,omitempty"`
	Description *string   `json:"description,omitempty" form:"description,omitempty"`
	Priority    *Priority `json:"priority,omitempty" form:"priority,omitempty"`
	Severity    *Severity `json:"severity,omitempty" form:"severity,omitempty"`
	Status      *Status   `json:"status,omitempty" form:"status,omitempty"`
	AssignedTo  *uint     `json:"assigned_to,omitempty" form:"assigned_to,omitempty"`
	VersionID   *uint     `json:"version_id,omitempty" form:"version_id,omitempty"`
	Tags        *string   `json:"tags,omitempty" form:"tags,omitempty"`
}

type ChangeStatusDTO struct {
	Status Status `json:"status" form:"status" binding:"required"`
}

type AddCommentDTO struct {
	Content string `json:"content" form:"content"`
}

// SearchFilter narrows bug listings; zero values mean "no filter".
// Query is a case-insensitive substring match over title, description
// and tags.
type SearchFilter struct {
	Query     string   `form:"q"`
	ProjectID uint     `form:"project"`
	Status    Status   `form:"status"`
	Priority  Priority `form:"priority"`
	Severity  Severity `form:"severity"`
}
