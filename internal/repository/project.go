package repository

import (
	"github.com/linweiyu/bugtrack-go/internal/domain/project"
	"gorm.io/gorm"
)

type ProjectRepo interface {
	GetProjectByID(id uint) (project.Project, error)
	CreateProject(p *project.Project) error
	SaveProject(p *project.Project) error
	DeleteProject(id uint) error
	ListProjects() ([]project.Project, error)
	ListProjectsByManager(userID uint) ([]project.Project, error)
	CountProjects() (int64, error)

	GetVersionByID(id uint) (project.Version, error)
	CreateVersion(v *project.Version) error
	DeleteVersion(id uint) error
	DeleteVersionsByProject(projectID uint) error
	ListVersionsByProject(projectID uint) ([]project.Version, error)

	WithTx(tx *gorm.DB) ProjectRepo
}

type DBProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *DBProjectRepo {
	return &DBProjectRepo{db: db}
}

func (r *DBProjectRepo) GetProjectByID(id uint) (project.Project, error) {
	var p project.Project
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBProjectRepo) CreateProject(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *DBProjectRepo) SaveProject(p *project.Project) error {
	return r.db.Save(p).Error
}

func (r *DBProjectRepo) DeleteProject(id uint) error {
	return r.db.Delete(&project.Project{}, id).Error
}

func (r *DBProjectRepo) ListProjects() ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Order("name").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) ListProjectsByManager(userID uint) ([]project.Project, error) {
	var projects []project.Project
	err := r.db.Where("manager_id = ?", userID).Order("name").Find(&projects).Error
	return projects, err
}

func (r *DBProjectRepo) CountProjects() (int64, error) {
	var n int64
	err := r.db.Model(&project.Project{}).Count(&n).Error
	return n, err
}

func (r *DBProjectRepo) GetVersionByID(id uint) (project.Version, error) {
	var v project.Version
	err := r.db.First(&v, id).Error
	return v, err
}

func (r *DBProjectRepo) CreateVersion(v *project.Version) error {
	return r.db.Create(v).Error
}

func (r *DBProjectRepo) DeleteVersion(id uint) error {
	return r.db.Delete(&project.Version{}, id).Error
}

func (r *DBProjectRepo) DeleteVersionsByProject(projectID uint) error {
	return r.db.Where("project_id = ?", projectID).Delete(&project.Version{}).Error
}

func (r *DBProjectRepo) ListVersionsByProject(projectID uint) ([]project.Version, error) {
	var versions []project.Version
	err := r.db.Where("project_id = ?", projectID).Order("release_date DESC").Find(&versions).Error
	return versions, err
}

func (r *DBProjectRepo) WithTx(tx *gorm.DB) ProjectRepo {
	if tx == nil {
		return r
	}
	return &DBProjectRepo{db: tx}
}
