package repository

import (
	"time"

	"github.com/linweiyu/bugtrack-go/internal/domain/bug"
	"gorm.io/gorm"
)

// GroupCount is one row of a GROUP BY count over a bug column.
type GroupCount struct {
	Value string `gorm:"column:value"`
	Count int64  `gorm:"column:count"`
}

// ProjectBugCount ranks a project by how many bugs reference it.
type ProjectBugCount struct {
	ProjectID uint   `gorm:"column:project_id" json:"project_id"`
	Name      string `gorm:"column:name" json:"name"`
	BugCount  int64  `gorm:"column:bug_count" json:"bug_count"`
}

type BugRepo interface {
	GetBugByID(id uint) (bug.Bug, error)
	CreateBug(b *bug.Bug) error
	SaveBug(b *bug.Bug) error
	DeleteBug(id uint) error
	ListBugs(filter bug.SearchFilter) ([]bug.Bug, error)
	ListBugsByProject(projectID uint) ([]bug.Bug, error)
	ListBugsByReporter(userID uint) ([]bug.Bug, error)
	ListBugsByAssignee(userID uint) ([]bug.Bug, error)
	ListRecentlyUpdated(limit int) ([]bug.Bug, error)

	CountBugs() (int64, error)
	CountByColumnForProject(column string, projectID uint) ([]GroupCount, error)
	CountByColumn(column string) ([]GroupCount, error)
	TopProjectsByBugCount(limit int) ([]ProjectBugCount, error)
	CreationTimes() ([]time.Time, error)

	WithTx(tx *gorm.DB) BugRepo
}

type DBBugRepo struct {
	db *gorm.DB
}

func NewBugRepo(db *gorm.DB) *DBBugRepo {
	return &DBBugRepo{db: db}
}

func (r *DBBugRepo) GetBugByID(id uint) (bug.Bug, error) {
	var b bug.Bug
	err := r.db.First(&b, id).Error
	return b, err
}

func (r *DBBugRepo) CreateBug(b *bug.Bug) error {
	return r.db.Create(b).Error
}

func (r *DBBugRepo) SaveBug(b *bug.Bug) error {
	return r.db.Save(b).Error
}

func (r *DBBugRepo) DeleteBug(id uint) error {
	return r.db.Delete(&bug.Bug{}, id).Error
}

func (r *DBBugRepo) ListBugs(filter bug.SearchFilter) ([]bug.Bug, error) {
	query := r.db.Model(&bug.Bug{})

	if filter.Query != "" {
		like := "%" + filter.Query + "%"
		query = query.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(tags) LIKE LOWER(?)",
			like, like, like,
		)
	}
	if filter.ProjectID != 0 {
		query = query.Where("project_id = ?", filter.ProjectID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Severity != "" {
		query = query.Where("severity = ?", filter.Severity)
	}

	var bugs []bug.Bug
	err := query.Order("created_at DESC").Find(&bugs).Error
	return bugs, err
}

func (r *DBBugRepo) ListBugsByProject(projectID uint) ([]bug.Bug, error) {
	var bugs []bug.Bug
	err := r.db.Where("project_id = ?", projectID).Find(&bugs).Error
	return bugs, err
}

func (r *DBBugRepo) ListBugsByReporter(userID uint) ([]bug.Bug, error) {
	var bugs []bug.Bug
	err := r.db.Where("reported_by = ?", userID).Order("created_at DESC").Find(&bugs).Error
	return bugs, err
}

func (r *DBBugRepo) ListBugsByAssignee(userID uint) ([]bug.Bug, error) {
	var bugs []bug.Bug
	err := r.db.Where("assigned_to = ?", userID).Order("updated_at DESC").Find(&bugs).Error
	return bugs, err
}

func (r *DBBugRepo) ListRecentlyUpdated(limit int) ([]bug.Bug, error) {
	var bugs []bug.Bug
	err := r.db.Order("updated_at DESC").Limit(limit).Find(&bugs).Error
	return bugs, err
}

func (r *DBBugRepo) CountBugs() (int64, error) {
	var n int64
	err := r.db.Model(&bug.Bug{}).Count(&n).Error
	return n, err
}

// CountByColumnForProject groups bug counts by one of the enum columns
// (status, priority, severity) within a project. The column name comes
// from the stats service, never from request input.
func (r *DBBugRepo) CountByColumnForProject(column string, projectID uint) ([]GroupCount, error) {
	var counts []GroupCount
	err := r.db.Model(&bug.Bug{}).
		Select(column+" AS value, COUNT(*) AS count").
		Where("project_id = ?", projectID).
		Group(column).
		Scan(&counts).Error
	return counts, err
}

func (r *DBBugRepo) CountByColumn(column string) ([]GroupCount, error) {
	var counts []GroupCount
	err := r.db.Model(&bug.Bug{}).
		Select(column + " AS value, COUNT(*) AS count").
		Group(column).
		Scan(&counts).Error
	return counts, err
}

func (r *DBBugRepo) TopProjectsByBugCount(limit int) ([]ProjectBugCount, error) {
	var results []ProjectBugCount
	err := r.db.Table("projects p").
		Select("p.id AS project_id, p.name AS name, COUNT(b.id) AS bug_count").
		Joins("LEFT JOIN bugs b ON b.project_id = p.id").
		Group("p.id, p.name").
		Order("bug_count DESC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}

// CreationTimes returns every bug's created_at; the month bucketing
// happens in Go so the query stays portable across dialects.
func (r *DBBugRepo) CreationTimes() ([]time.Time, error) {
	var times []time.Time
	err := r.db.Model(&bug.Bug{}).Order("created_at").Pluck("created_at", &times).Error
	return times, err
}

func (r *DBBugRepo) WithTx(tx *gorm.DB) BugRepo {
	if tx == nil {
		return r
	}
	return &DBBugRepo{db: tx}
}
