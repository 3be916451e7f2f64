package project

import "time"

// Project is plain attribute storage: no transition rules apply to it.
// Deleting a project removes its versions and bugs along with it.
type Project struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	ManagerID   uint       `gorm:"not null;index" json:"manager_id"`
	StartDate   time.Time  `gorm:"autoCreateTime" json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Project) TableName() string {
	return "projects"
}

type Version struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ProjectID     uint      `gorm:"not null;index;constraint:OnDelete:CASCADE" json:"project_id"`
	VersionNumber string    `gorm:"size:20;not null" json:"version_number"`
	ReleaseDate   time.Time `json:"release_date"`
	Notes         string    `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Version) TableName() string {
	return "project_versions"
}
