package project

import "time"

type CreateProjectDTO struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
}

type UpdateProjectDTO struct {
	Name        *string    `json:"name,omitempty" form:"name,omitempty"`
	Description *string    `json:"description,omitempty" form:"description,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty" form:"end_date,omitempty"`
}

type CreateVersionDTO struct {
	VersionNumber string     `json:"version_number" form:"version_number" binding:"required"`
	ReleaseDate   *time.Time `json:"release_date,omitempty" form:"release_date,omitempty"`
	Notes         string     `json:"notes" form:"notes"`
}
