package repository

import (
	"github.com/linweiyu/bugtrack-go/internal/domain/bug"
	"gorm.io/gorm"
)

type AttachmentRepo interface {
	GetAttachmentByID(bugID, id uint) (bug.Attachment, error)
	CreateAttachment(a *bug.Attachment) error
	DeleteAttachment(id uint) error
	DeleteAttachmentsByBug(bugID uint) error
	ListAttachmentsByBug(bugID uint) ([]bug.Attachment, error)
	CountAttachmentsByBug(bugID uint) (int64, error)
	WithTx(tx *gorm.DB) AttachmentRepo
}

type DBAttachmentRepo struct {
	db *gorm.DB
}

func NewAttachmentRepo(db *gorm.DB) *DBAttachmentRepo {
	return &DBAttachmentRepo{db: db}
}

func (r *DBAttachmentRepo) GetAttachmentByID(bugID, id uint) (bug.Attachment, error) {
	var a bug.Attachment
	err := r.db.Where("bug_id = ?", bugID).First(&a, id).Error
	return a, err
}

func (r *DBAttachmentRepo) CreateAttachment(a *bug.Attachment) error {
	return r.db.Create(a).Error
}

func (r *DBAttachmentRepo) DeleteAttachment(id uint) error {
	return r.db.Delete(&bug.Attachment{}, id).Error
}

func (r *DBAttachmentRepo) DeleteAttachmentsByBug(bugID uint) error {
	return r.db.Where("bug_id = ?", bugID).Delete(&bug.Attachment{}).Error
}

func (r *DBAttachmentRepo) ListAttachmentsByBug(bugID uint) ([]bug.Attachment, error) {
	var attachments []bug.Attachment
	err := r.db.Where("bug_id = ?", bugID).Order("created_at").Find(&attachments).Error
	return attachments, err
}

func (r *DBAttachmentRepo) CountAttachmentsByBug(bugID uint) (int64, error) {
	var n int64
	err := r.db.Model(&bug.Attachment{}).Where("bug_id = ?", bugID).Count(&n).Error
	return n, err
}

func (r *DBAttachmentRepo) WithTx(tx *gorm.DB) AttachmentRepo {
	if tx == nil {
		return r
	}
	return &DBAttachmentRepo{db: tx}
}
