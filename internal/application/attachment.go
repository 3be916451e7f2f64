package application

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/linweiyu/bugtrack-go/internal/domain/bug"
	"github.com/linweiyu/bugtrack-go/internal/domain/history"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/internal/storage"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
	"github.com/linweiyu/bugtrack-go/pkg/identity"
)

// AttachmentService records attachment rows against content refs. It
// never inspects bytes; size and content-type policing is the content
// store caller's problem.
type AttachmentService struct {
	Repos    *repository.Repos
	Contents storage.ContentStore
}

func NewAttachmentService(repos *repository.Repos, contents storage.ContentStore) *AttachmentService {
	return &AttachmentService{Repos: repos, Contents: contents}
}

// Upload stores the bytes first, then commits the attachment row and
// its history entry together. If the transaction fails the uploaded
// object is orphaned in the store, not half-recorded in the database.
func (s *AttachmentService) Upload(ctx context.Context, actor identity.Identity, bugID uint, r io.Reader, size int64, filename string) (*bug.Attachment, error) {
	if strings.TrimSpace(filename) == "" {
		return nil, apperr.Validation("filename is required")
	}
	if _, err := s.Repos.Bug.GetBugByID(bugID); err != nil {
		return nil, lookupErr(err, "bug", bugID)
	}

	ref, err := s.Contents.Put(ctx, r, size, filename)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return s.Add(actor, bugID, ref, filename)
}

func (s *AttachmentService) Add(actor identity.Identity, bugID uint, contentRef, filename string) (*bug.Attachment, error) {
	attachment := &bug.Attachment{
		BugID:      bugID,
		ContentRef: contentRef,
		Filename:   filename,
		UploadedBy: actor.UserID,
	}
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if _, err := tx.Bug.GetBugByID(bugID); err != nil {
			return lookupErr(err, "bug", bugID)
		}
		if err := tx.Attachment.CreateAttachment(attachment); err != nil {
			return err
		}
		entry := history.AttachmentAdded(bugID, actor.UserID, filename)
		return tx.History.CreateEntry(&entry)
	})
	if err != nil {
		return nil, storageOr(err)
	}
	return attachment, nil
}

// Delete is uploader-or-admin. The filename goes into the history
// entry before the row disappears; the stored object is removed
// best-effort after the transaction commits.
func (s *AttachmentService) Delete(ctx context.Context, actor identity.Identity, bugID, attachmentID uint) error {
	var contentRef string
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if _, err := tx.Bug.GetBugByID(bugID); err != nil {
			return lookupErr(err, "bug", bugID)
		}
		attachment, err := tx.Attachment.GetAttachmentByID(bugID, attachmentID)
		if err != nil {
			return lookupErr(err, "attachment", attachmentID)
		}
		if !identity.CanMutate(actor, attachment.UploadedBy) {
			return apperr.Permission("only the uploader or an administrator may delete this attachment")
		}
		contentRef = attachment.ContentRef

		if err := tx.Attachment.DeleteAttachment(attachmentID); err != nil {
			return err
		}
		entry := history.AttachmentDeleted(bugID, actor.UserID, attachment.Filename)
		return tx.History.CreateEntry(&entry)
	})
	if err != nil {
		return storageOr(err)
	}

	if s.Contents != nil && contentRef != "" {
		if err := s.Contents.Remove(ctx, contentRef); err != nil {
			log.Printf("failed to remove attachment object %s: %v", contentRef, err)
		}
	}
	return nil
}

func (s *AttachmentService) Open(ctx context.Context, bugID, attachmentID uint) (*bug.Attachment, io.ReadCloser, error) {
	attachment, err := s.Repos.Attachment.GetAttachmentByID(bugID, attachmentID)
	if err != nil {
		return nil, nil, lookupErr(err, "attachment", attachmentID)
	}
	rc, err := s.Contents.Get(ctx, attachment.ContentRef)
	if err != nil {
		return nil, nil, apperr.Storage(err)
	}
	return &attachment, rc, nil
}

func (s *AttachmentService) ListForBug(bugID uint) ([]bug.Attachment, error) {
	if _, err := s.Repos.Bug.GetBugByID(bugID); err != nil {
		return nil, lookupErr(err, "bug", bugID)
	}
	attachments, err := s.Repos.Attachment.ListAttachmentsByBug(bugID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return attachments, nil
}
