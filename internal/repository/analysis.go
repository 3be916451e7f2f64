package repository

import (
	"github.com/linweiyu/bugtrack-go/internal/domain/analysis"
	"gorm.io/gorm"
)

type AnalysisRepo interface {
	GetRequestByID(id uint) (analysis.Request, error)
	CreateRequest(req *analysis.Request) error
	SaveRequest(req *analysis.Request) error
	ListRequestsByUser(userID uint, limit int) ([]analysis.Request, error)
	WithTx(tx *gorm.DB) AnalysisRepo
}

type DBAnalysisRepo struct {
	db *gorm.DB
}

func NewAnalysisRepo(db *gorm.DB) *DBAnalysisRepo {
	return &DBAnalysisRepo{db: db}
}

func (r *DBAnalysisRepo) GetRequestByID(id uint) (analysis.Request, error) {
	var req analysis.Request
	err := r.db.First(&req, id).Error
	return req, err
}

func (r *DBAnalysisRepo) CreateRequest(req *analysis.Request) error {
	return r.db.Create(req).Error
}

func (r *DBAnalysisRepo) SaveRequest(req *analysis.Request) error {
	return r.db.Save(req).Error
}

func (r *DBAnalysisRepo) ListRequestsByUser(userID uint, limit int) ([]analysis.Request, error) {
	query := r.db.Where("submitted_by = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var requests []analysis.Request
	err := query.Find(&requests).Error
	return requests, err
}

func (r *DBAnalysisRepo) WithTx(tx *gorm.DB) AnalysisRepo {
	if tx == nil {
		return r
	}
	return &DBAnalysisRepo{db: tx}
}
