package repository

import (
	"github.com/linweiyu/bugtrack-go/internal/domain/bug"
	"gorm.io/gorm"
)

type CommentRepo interface {
	GetCommentByID(bugID, id uint) (bug.Comment, error)
	CreateComment(c *bug.Comment) error
	DeleteComment(id uint) error
	DeleteCommentsByBug(bugID uint) error
	ListCommentsByBug(bugID uint) ([]bug.Comment, error)
	CountCommentsByBug(bugID uint) (int64, error)
	WithTx(tx *gorm.DB) CommentRepo
}

type DBCommentRepo struct {
	db *gorm.DB
}

func NewCommentRepo(db *gorm.DB) *DBCommentRepo {
	return &DBCommentRepo{db: db}
}

func (r *DBCommentRepo) GetCommentByID(bugID, id uint) (bug.Comment, error) {
	var c bug.Comment
	err := r.db.Where("bug_id = ?", bugID).First(&c, id).Error
	return c, err
}

func (r *DBCommentRepo) CreateComment(c *bug.Comment) error {
	return r.db.Create(c).Error
}

func (r *DBCommentRepo) DeleteComment(id uint) error {
	return r.db.Delete(&bug.Comment{}, id).Error
}

func (r *DBCommentRepo) DeleteCommentsByBug(bugID uint) error {
	return r.db.Where("bug_id = ?", bugID).Delete(&bug.Comment{}).Error
}

func (r *DBCommentRepo) ListCommentsByBug(bugID uint) ([]bug.Comment, error) {
	var comments []bug.Comment
	err := r.db.Where("bug_id = ?", bugID).Order("created_at").Find(&comments).Error
	return comments, err
}

func (r *DBCommentRepo) CountCommentsByBug(bugID uint) (int64, error) {
	var n int64
	err := r.db.Model(&bug.Comment{}).Where("bug_id = ?", bugID).Count(&n).Error
	return n, err
}

func (r *DBCommentRepo) WithTx(tx *gorm.DB) CommentRepo {
	if tx == nil {
		return r
	}
	return &DBCommentRepo{db: tx}
}
