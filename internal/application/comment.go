package application

import (
	"strings"

	"github.com/linweiyu/bugtrack-go/internal/domain/bug"
	"github.com/linweiyu/bugtrack-go/internal/domain/history"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
	"github.com/linweiyu/bugtrack-go/pkg/identity"
)

type CommentService struct {
	Repos *repository.Repos
}

func NewCommentService(repos *repository.Repos) *CommentService {
	return &CommentService{Repos: repos}
}

// Add writes the comment and a history entry carrying a bounded
// preview of the content in one transaction.
func (s *CommentService) Add(actor identity.Identity, bugID uint, content string) (*bug.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.Validation("comment content is required")
	}

	comment := &bug.Comment{
		BugID:    bugID,
		AuthorID: actor.UserID,
		Content:  content,
	}
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if _, err := tx.Bug.GetBugByID(bugID); err != nil {
			return lookupErr(err, "bug", bugID)
		}
		if err := tx.Comment.CreateComment(comment); err != nil {
			return err
		}
		entry := history.CommentAdded(bugID, actor.UserID, content)
		return tx.History.CreateEntry(&entry)
	})
	if err != nil {
		return nil, storageOr(err)
	}
	return comment, nil
}

// Delete is author-or-admin. The history entry records the deletion
// without the original content.
func (s *CommentService) Delete(actor identity.Identity, bugID, commentID uint) error {
	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if _, err := tx.Bug.GetBugByID(bugID); err != nil {
			return lookupErr(err, "bug", bugID)
		}
		comment, err := tx.Comment.GetCommentByID(bugID, commentID)
		if err != nil {
			return lookupErr(err, "comment", commentID)
		}
		if !identity.CanMutate(actor, comment.AuthorID) {
			return apperr.Permission("only the author or an administrator may delete this comment")
		}

		if err := tx.Comment.DeleteComment(commentID); err != nil {
			return err
		}
		entry := history.CommentDeleted(bugID, actor.UserID)
		return tx.History.CreateEntry(&entry)
	})
	return storageOr(err)
}

func (s *CommentService) ListForBug(bugID uint) ([]bug.Comment, error) {
	if _, err := s.Repos.Bug.GetBugByID(bugID); err != nil {
		return nil, lookupErr(err, "bug", bugID)
	}
	comments, err := s.Repos.Comment.ListCommentsByBug(bugID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return comments, nil
}
