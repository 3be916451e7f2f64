package repository

import (
	"github.com/linweiyu/bugtrack-go/internal/domain/history"
	"gorm.io/gorm"
)

// HistoryRepo is append-only: there is no update or single-row delete.
// DeleteHistoryByBug exists solely for the bug cascade delete.
type HistoryRepo interface {
	CreateEntry(e *history.Entry) error
	CreateEntries(entries []history.Entry) error
	ListHistoryByBug(bugID uint, ascending bool) ([]history.Entry, error)
	ListRecentHistory(limit int) ([]history.Entry, error)
	CountHistoryByBug(bugID uint) (int64, error)
	DeleteHistoryByBug(bugID uint) error
	WithTx(tx *gorm.DB) HistoryRepo
}

type DBHistoryRepo struct {
	db *gorm.DB
}

func NewHistoryRepo(db *gorm.DB) *DBHistoryRepo {
	return &DBHistoryRepo{db: db}
}

func (r *DBHistoryRepo) CreateEntry(e *history.Entry) error {
	return r.db.Create(e).Error
}

func (r *DBHistoryRepo) CreateEntries(entries []history.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Create(&entries).Error
}

func (r *DBHistoryRepo) ListHistoryByBug(bugID uint, ascending bool) ([]history.Entry, error) {
	order := "created_at DESC, id DESC"
	if ascending {
		order = "created_at, id"
	}
	var entries []history.Entry
	err := r.db.Where("bug_id = ?", bugID).Order(order).Find(&entries).Error
	return entries, err
}

func (r *DBHistoryRepo) ListRecentHistory(limit int) ([]history.Entry, error) {
	var entries []history.Entry
	err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (r *DBHistoryRepo) CountHistoryByBug(bugID uint) (int64, error) {
	var n int64
	err := r.db.Model(&history.Entry{}).Where("bug_id = ?", bugID).Count(&n).Error
	return n, err
}

func (r *DBHistoryRepo) DeleteHistoryByBug(bugID uint) error {
	return r.db.Where("bug_id = ?", bugID).Delete(&history.Entry{}).Error
}

func (r *DBHistoryRepo) WithTx(tx *gorm.DB) HistoryRepo {
	if tx == nil {
		return r
	}
	return &DBHistoryRepo{db: tx}
}
