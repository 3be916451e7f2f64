package history

import (
	"fmt"
	"time"
)

// Kind discriminates the structured audit entry variants. Entries are
// machine-parseable; the free-text action line is rendered on demand.
type Kind string

const (
	KindCreated           Kind = "created"
	KindFieldChanged      Kind = "field_changed"
	KindCommentAdded      Kind = "comment_added"
	KindCommentDeleted    Kind = "comment_deleted"
	KindAttachmentAdded   Kind = "attachment_added"
	KindAttachmentDeleted Kind = "attachment_deleted"
)

// Entry is append-only and immutable once written. It is never updated
// or deleted individually; rows go away only when the owning bug is
// cascade-deleted.
type Entry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	BugID     uint      `gorm:"not null;index" json:"bug_id"`
	UserID    uint      `gorm:"not null" json:"user_id"`
	Kind      Kind      `gorm:"size:30;not null" json:"kind"`
	Field     string    `gorm:"size:30" json:"field,omitempty"`
	OldValue  string    `gorm:"size:200" json:"old_value,omitempty"`
	NewValue  string    `gorm:"size:200" json:"new_value,omitempty"`
	Detail    string    `gorm:"size:200" json:"detail,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Entry) TableName() string {
	return "bug_history"
}

// commentPreviewLen bounds how much comment text leaks into the audit
// line; deletion entries carry no content at all.
const commentPreviewLen = 50

// Action renders the legacy free-text description of the entry.
func (e Entry) Action() string {
	switch e.Kind {
	case KindCreated:
		return "Created bug"
	case KindFieldChanged:
		return fmt.Sprintf("Changed %s from '%s' to '%s'", e.Field, e.OldValue, e.NewValue)
	case KindCommentAdded:
		return "Added comment: " + e.Detail
	case KindCommentDeleted:
		return "Deleted a comment"
	case KindAttachmentAdded:
		return "Added attachment: " + e.Detail
	case KindAttachmentDeleted:
		return "Deleted attachment: " + e.Detail
	}
	return string(e.Kind)
}

// CommentPreview produces the bounded detail text stored with a
// comment_added entry.
func CommentPreview(content string) string {
	runes := []rune(content)
	if len(runes) > commentPreviewLen {
		runes = runes[:commentPreviewLen]
	}
	return string(runes) + "..."
}

func Created(bugID, userID uint) Entry {
	return Entry{BugID: bugID, UserID: userID, Kind: KindCreated}
}

func FieldChanged(bugID, userID uint, field, oldValue, newValue string) Entry {
	return Entry{
		BugID:    bugID,
		UserID:   userID,
		Kind:     KindFieldChanged,
		Field:    field,
		OldValue: oldValue,
		NewValue: newValue,
	}
}

func CommentAdded(bugID, userID uint, content string) Entry {
	return Entry{BugID: bugID, UserID: userID, Kind: KindCommentAdded, Detail: CommentPreview(content)}
}

func CommentDeleted(bugID, userID uint) Entry {
	return Entry{BugID: bugID, UserID: userID, Kind: KindCommentDeleted}
}

func AttachmentAdded(bugID, userID uint, filename string) Entry {
	return Entry{BugID: bugID, UserID: userID, Kind: KindAttachmentAdded, Detail: filename}
}

func AttachmentDeleted(bugID, userID uint, filename string) Entry {
	return Entry{BugID: bugID, UserID: userID, Kind: KindAttachmentDeleted, Detail: filename}
}
