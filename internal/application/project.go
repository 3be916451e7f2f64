package application

import (
	"time"

	"github.com/linweiyu/bugtrack-go/internal/domain/project"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
	"github.com/linweiyu/bugtrack-go/pkg/identity"
)

// ProjectService is plain attribute storage with a manager-or-admin
// permission gate on mutation. No transition rules, no audit trail;
// those belong to bugs.
type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{Repos: repos}
}

func (s *ProjectService) Create(actor identity.Identity, input project.CreateProjectDTO) (*project.Project, error) {
	p := &project.Project{
		Name:        input.Name,
		Description: input.Description,
		ManagerID:   actor.UserID,
	}
	if err := s.Repos.Project.CreateProject(p); err != nil {
		return nil, apperr.Storage(err)
	}
	return p, nil
}

func (s *ProjectService) Update(actor identity.Identity, id uint, input project.UpdateProjectDTO) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return nil, lookupErr(err, "project", id)
	}
	if !identity.CanMutate(actor, p.ManagerID) {
		return nil, apperr.Permission("only the manager or an administrator may edit this project")
	}

	if input.Name != nil {
		p.Name = *input.Name
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.EndDate != nil {
		p.EndDate = input.EndDate
	}

	if err := s.Repos.Project.SaveProject(&p); err != nil {
		return nil, apperr.Storage(err)
	}
	return &p, nil
}

func (s *ProjectService) Delete(actor identity.Identity, id uint) error {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return lookupErr(err, "project", id)
	}
	if !identity.CanMutate(actor, p.ManagerID) {
		return apperr.Permission("only the manager or an administrator may delete this project")
	}

	// A project takes its versions and bugs with it, and each bug its
	// comments, attachments and history, all in one transaction.
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		bugs, err := tx.Bug.ListBugsByProject(id)
		if err != nil {
			return err
		}
		for _, b := range bugs {
			if err := tx.Comment.DeleteCommentsByBug(b.ID); err != nil {
				return err
			}
			if err := tx.Attachment.DeleteAttachmentsByBug(b.ID); err != nil {
				return err
			}
			if err := tx.History.DeleteHistoryByBug(b.ID); err != nil {
				return err
			}
			if err := tx.Bug.DeleteBug(b.ID); err != nil {
				return err
			}
		}
		if err := tx.Project.DeleteVersionsByProject(id); err != nil {
			return err
		}
		return tx.Project.DeleteProject(id)
	})
	return storageOr(err)
}

func (s *ProjectService) Get(id uint) (*project.Project, error) {
	p, err := s.Repos.Project.GetProjectByID(id)
	if err != nil {
		return nil, lookupErr(err, "project", id)
	}
	return &p, nil
}

func (s *ProjectService) List() ([]project.Project, error) {
	projects, err := s.Repos.Project.ListProjects()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return projects, nil
}

func (s *ProjectService) ListByManager(userID uint) ([]project.Project, error) {
	projects, err := s.Repos.Project.ListProjectsByManager(userID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return projects, nil
}

func (s *ProjectService) CreateVersion(actor identity.Identity, projectID uint, input project.CreateVersionDTO) (*project.Version, error) {
	p, err := s.Repos.Project.GetProjectByID(projectID)
	if err != nil {
		return nil, lookupErr(err, "project", projectID)
	}
	if !identity.CanMutate(actor, p.ManagerID) {
		return nil, apperr.Permission("only the manager or an administrator may add versions to this project")
	}

	v := &project.Version{
		ProjectID:     projectID,
		VersionNumber: input.VersionNumber,
		ReleaseDate:   time.Now(),
		Notes:         input.Notes,
	}
	if input.ReleaseDate != nil {
		v.ReleaseDate = *input.ReleaseDate
	}
	if err := s.Repos.Project.CreateVersion(v); err != nil {
		return nil, apperr.Storage(err)
	}
	return v, nil
}

func (s *ProjectService) ListVersions(projectID uint) ([]project.Version, error) {
	if _, err := s.Repos.Project.GetProjectByID(projectID); err != nil {
		return nil, lookupErr(err, "project", projectID)
	}
	versions, err := s.Repos.Project.ListVersionsByProject(projectID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return versions, nil
}
