package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User       UserRepo
	Project    ProjectRepo
	Bug        BugRepo
	Comment    CommentRepo
	Attachment AttachmentRepo
	History    HistoryRepo
	Analysis   AnalysisRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:       NewUserRepo(db),
		Project:    NewProjectRepo(db),
		Bug:        NewBugRepo(db),
		Comment:    NewCommentRepo(db),
		Attachment: NewAttachmentRepo(db),
		History:    NewHistoryRepo(db),
		Analysis:   NewAnalysisRepo(db),
		db:         db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:       r.User.WithTx(tx),
		Project:    r.Project.WithTx(tx),
		Bug:        r.Bug.WithTx(tx),
		Comment:    r.Comment.WithTx(tx),
		Attachment: r.Attachment.WithTx(tx),
		History:    r.History.WithTx(tx),
		Analysis:   r.Analysis.WithTx(tx),
		db:         tx,
	}
}

// ExecTx runs fn against transaction-bound repos. Every mutation that
// must pair with an audit write goes through here so that either both
// rows commit or neither does.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
