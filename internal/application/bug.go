package application

import (
	"errors"
	"strings"
	"time"

	"github.com/linweiyu/bugtrack-go/internal/domain/bug"
	"github.com/linweiyu/bugtrack-go/internal/domain/history"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
	"github.com/linweiyu/bugtrack-go/pkg/identity"
	"gorm.io/gorm"
)

// BugService enforces the bug lifecycle: validation on create, the
// diff-and-audit rule on update, reporter-or-admin permission on
// delete. Every accepted mutation commits together with its history
// rows in one transaction.
type BugService struct {
	Repos *repository.Repos
}

func NewBugService(repos *repository.Repos) *BugService {
	return &BugService{Repos: repos}
}

func (s *BugService) Create(actor identity.Identity, input bug.CreateBugDTO) (*bug.Bug, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, apperr.Validation("title is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, apperr.Validation("description is required")
	}

	b := &bug.Bug{
		Title:       input.Title,
		Description: input.Description,
		ProjectID:   input.ProjectID,
		VersionID:   input.VersionID,
		Status:      bug.StatusOpen,
		Priority:    bug.PriorityMedium,
		Severity:    bug.SeverityMajor,
		ReportedBy:  actor.UserID,
		Tags:        input.Tags,
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, apperr.Validation("invalid priority %q", *input.Priority)
		}
		b.Priority = *input.Priority
	}
	if input.Severity != nil {
		if !input.Severity.Valid() {
			return nil, apperr.Validation("invalid severity %q", *input.Severity)
		}
		b.Severity = *input.Severity
	}

	if _, err := s.Repos.Project.GetProjectByID(input.ProjectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("project %d does not exist", input.ProjectID)
		}
		return nil, apperr.Storage(err)
	}
	if input.VersionID != nil {
		if err := s.checkVersion(*input.VersionID, input.ProjectID); err != nil {
			return nil, err
		}
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.Bug.CreateBug(b); err != nil {
			return err
		}
		entry := history.Created(b.ID, actor.UserID)
		return tx.History.CreateEntry(&entry)
	})
	if err != nil {
		return nil, storageOr(err)
	}
	return b, nil
}

// Update applies an optional-field patch. One history entry is written
// per changed audited field, in the fixed order title, priority,
// severity, status; status goes last because it may also stamp
// ResolvedAt. The read, the save and the history rows share one
// transaction so concurrent writers cannot split the pairing.
func (s *BugService) Update(actor identity.Identity, bugID uint, input bug.UpdateBugDTO) (*bug.Bug, error) {
	if input.Priority != nil && !input.Priority.Valid() {
		return nil, apperr.Validation("invalid priority %q", *input.Priority)
	}
	if input.Severity != nil && !input.Severity.Valid() {
		return nil, apperr.Validation("invalid severity %q", *input.Severity)
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, apperr.Validation("invalid status %q", *input.Status)
	}

	var updated bug.Bug
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		b, err := tx.Bug.GetBugByID(bugID)
		if err != nil {
			return lookupErr(err, "bug", bugID)
		}

		if input.VersionID != nil {
			if err := s.checkVersionTx(tx, *input.VersionID, b.ProjectID); err != nil {
				return err
			}
			b.VersionID = input.VersionID
		}

		var entries []history.Entry
		if input.Title != nil && *input.Title != b.Title {
			if strings.TrimSpace(*input.Title) == "" {
				return apperr.Validation("title is required")
			}
			entries = append(entries, history.FieldChanged(b.ID, actor.UserID, "title", b.Title, *input.Title))
			b.Title = *input.Title
		}
		if input.Description != nil {
			// Description edits persist without an audit line.
			b.Description = *input.Description
		}
		if input.Priority != nil && *input.Priority != b.Priority {
			entries = append(entries, history.FieldChanged(b.ID, actor.UserID, "priority", string(b.Priority), string(*input.Priority)))
			b.Priority = *input.Priority
		}
		if input.Severity != nil && *input.Severity != b.Severity {
			entries = append(entries, history.FieldChanged(b.ID, actor.UserID, "severity", string(b.Severity), string(*input.Severity)))
			b.Severity = *input.Severity
		}
		if input.Status != nil && *input.Status != b.Status {
			entries = append(entries, history.FieldChanged(b.ID, actor.UserID, "status", string(b.Status), string(*input.Status)))
			applyStatus(&b, *input.Status)
		}
		if input.AssignedTo != nil {
			b.AssignedTo = input.AssignedTo
		}
		if input.Tags != nil {
			b.Tags = *input.Tags
		}

		if err := tx.Bug.SaveBug(&b); err != nil {
			return err
		}
		if err := tx.History.CreateEntries(entries); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, storageOr(err)
	}
	return &updated, nil
}

// ChangeStatus is Update narrowed to the status field. Setting the
// current status again is a no-op: no save, no history entry.
func (s *BugService) ChangeStatus(actor identity.Identity, bugID uint, newStatus bug.Status) (*bug.Bug, error) {
	if !newStatus.Valid() {
		return nil, apperr.Validation("invalid status %q", newStatus)
	}

	var updated bug.Bug
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		b, err := tx.Bug.GetBugByID(bugID)
		if err != nil {
			return lookupErr(err, "bug", bugID)
		}
		if b.Status == newStatus {
			updated = b
			return nil
		}

		entry := history.FieldChanged(b.ID, actor.UserID, "status", string(b.Status), string(newStatus))
		applyStatus(&b, newStatus)

		if err := tx.Bug.SaveBug(&b); err != nil {
			return err
		}
		if err := tx.History.CreateEntry(&entry); err != nil {
			return err
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, storageOr(err)
	}
	return &updated, nil
}

// Delete cascades to comments, attachments and history in the same
// transaction, so an in-flight mutation on the bug either commits
// before the cascade or rolls back with it.
func (s *BugService) Delete(actor identity.Identity, bugID uint) error {
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		b, err := tx.Bug.GetBugByID(bugID)
		if err != nil {
			return lookupErr(err, "bug", bugID)
		}
		if !identity.CanMutate(actor, b.ReportedBy) {
			return apperr.Permission("only the reporter or an administrator may delete this bug")
		}

		if err := tx.Comment.DeleteCommentsByBug(bugID); err != nil {
			return err
		}
		if err := tx.Attachment.DeleteAttachmentsByBug(bugID); err != nil {
			return err
		}
		if err := tx.History.DeleteHistoryByBug(bugID); err != nil {
			return err
		}
		return tx.Bug.DeleteBug(bugID)
	})
	return storageOr(err)
}

func (s *BugService) Get(bugID uint) (*bug.Bug, error) {
	b, err := s.Repos.Bug.GetBugByID(bugID)
	if err != nil {
		return nil, lookupErr(err, "bug", bugID)
	}
	return &b, nil
}

func (s *BugService) List(filter bug.SearchFilter) ([]bug.Bug, error) {
	bugs, err := s.Repos.Bug.ListBugs(filter)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return bugs, nil
}

// MyBugs returns the bugs the user reported and the bugs assigned to
// them, for the personal dashboard.
func (s *BugService) MyBugs(actor identity.Identity) (reported, assigned []bug.Bug, err error) {
	if reported, err = s.Repos.Bug.ListBugsByReporter(actor.UserID); err != nil {
		return nil, nil, apperr.Storage(err)
	}
	if assigned, err = s.Repos.Bug.ListBugsByAssignee(actor.UserID); err != nil {
		return nil, nil, apperr.Storage(err)
	}
	return reported, assigned, nil
}

// applyStatus sets the status and stamps ResolvedAt when the bug
// enters resolved from any other status. ResolvedAt is set-only: it
// marks the last time the bug became resolved and no transition
// clears it.
func applyStatus(b *bug.Bug, newStatus bug.Status) {
	if newStatus == bug.StatusResolved && b.Status != bug.StatusResolved {
		now := time.Now()
		b.ResolvedAt = &now
	}
	b.Status = newStatus
}

func (s *BugService) checkVersion(versionID, projectID uint) error {
	return s.checkVersionTx(s.Repos, versionID, projectID)
}

func (s *BugService) checkVersionTx(tx *repository.Repos, versionID, projectID uint) error {
	v, err := tx.Project.GetVersionByID(versionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Validation("version %d does not exist", versionID)
		}
		return apperr.Storage(err)
	}
	if v.ProjectID != projectID {
		return apperr.Validation("version %d does not belong to project %d", versionID, projectID)
	}
	return nil
}
