package application

import (
	"errors"

	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/internal/storage"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
	"gorm.io/gorm"
)

type Services struct {
	User       *UserService
	Project    *ProjectService
	Bug        *BugService
	Comment    *CommentService
	Attachment *AttachmentService
	History    *HistoryService
	Stats      *StatsService
	Analysis   *AnalysisService
}

func New(repos *repository.Repos, contents storage.ContentStore, provider AnalysisProvider) *Services {
	return &Services{
		User:       NewUserService(repos),
		Project:    NewProjectService(repos),
		Bug:        NewBugService(repos),
		Comment:    NewCommentService(repos),
		Attachment: NewAttachmentService(repos, contents),
		History:    NewHistoryService(repos),
		Stats:      NewStatsService(repos),
		Analysis:   NewAnalysisService(repos, provider),
	}
}

// lookupErr maps a repo read failure: a missing row becomes NotFound,
// anything else is a storage fault.
func lookupErr(err error, resource string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(resource, id)
	}
	return apperr.Storage(err)
}

// storageOr passes through errors already classified by the taxonomy
// and wraps everything else (aborted transactions included) as a
// storage failure.
func storageOr(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.KindOf(err); ok {
		return err
	}
	return apperr.Storage(err)
}
