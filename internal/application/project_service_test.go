package application_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/internal/domain/project"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/internal/repository/mock"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
	"github.com/stretchr/testify/require"
)

func setupProjectMocks(t *testing.T) (*application.ProjectService, *mock.MockProjectRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockProject := mock.NewMockProjectRepo(ctrl)
	repos := &repository.Repos{Project: mockProject}
	return application.NewProjectService(repos), mockProject
}

func TestProjectServiceUpdatePermission(t *testing.T) {
	svc, mockProject := setupProjectMocks(t)
	stored := project.Project{ID: 1, Name: "payments", ManagerID: reporter.UserID}
	newName := "payments-v2"

	t.Run("manager may edit", func(t *testing.T) {
		mockProject.EXPECT().GetProjectByID(uint(1)).Return(stored, nil)
		mockProject.EXPECT().SaveProject(gomock.Any()).Return(nil)

		p, err := svc.Update(reporter, 1, project.UpdateProjectDTO{Name: &newName})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Name != newName {
			t.Fatalf("expected %s, got %s", newName, p.Name)
		}
	})

	t.Run("non-manager is refused before any write", func(t *testing.T) {
		mockProject.EXPECT().GetProjectByID(uint(1)).Return(stored, nil)

		if _, err := svc.Update(stranger, 1, project.UpdateProjectDTO{Name: &newName}); !apperr.IsPermission(err) {
			t.Fatalf("expected permission error, got %v", err)
		}
	})

	t.Run("admin may edit any project", func(t *testing.T) {
		mockProject.EXPECT().GetProjectByID(uint(1)).Return(stored, nil)
		mockProject.EXPECT().SaveProject(gomock.Any()).Return(nil)

		if _, err := svc.Update(admin, 1, project.UpdateProjectDTO{Name: &newName}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectServiceDeletePermission(t *testing.T) {
	svc, mockProject := setupProjectMocks(t)
	stored := project.Project{ID: 1, Name: "payments", ManagerID: reporter.UserID}

	t.Run("non-manager is refused", func(t *testing.T) {
		mockProject.EXPECT().GetProjectByID(uint(1)).Return(stored, nil)

		if err := svc.Delete(stranger, 1); !apperr.IsPermission(err) {
			t.Fatalf("expected permission error, got %v", err)
		}
	})
}

func TestDeleteProjectCascades(t *testing.T) {
	repos, bugSvc, p := setupBugEnv(t)
	projSvc := application.NewProjectService(repos)

	_, err := projSvc.CreateVersion(reporter, p.ID, project.CreateVersionDTO{VersionNumber: "1.0"})
	require.NoError(t, err)
	b := createBug(t, bugSvc, p.ID)
	_, err = application.NewCommentService(repos).Add(stranger, b.ID, "seen this on staging too")
	require.NoError(t, err)
	_, err = application.NewAttachmentService(repos, nil).Add(reporter, b.ID, "mem/1/trace.log", "trace.log")
	require.NoError(t, err)

	require.NoError(t, projSvc.Delete(reporter, p.ID))

	_, err = projSvc.Get(p.ID)
	require.True(t, apperr.IsNotFound(err))
	_, err = bugSvc.Get(b.ID)
	require.True(t, apperr.IsNotFound(err))

	versions, err := repos.Project.ListVersionsByProject(p.ID)
	require.NoError(t, err)
	require.Empty(t, versions)
	nc, err := repos.Comment.CountCommentsByBug(b.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, nc)
	na, err := repos.Attachment.CountAttachmentsByBug(b.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, na)
	nh, err := repos.History.CountHistoryByBug(b.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, nh)
}

func TestProjectServiceCreateVersionPermission(t *testing.T) {
	svc, mockProject := setupProjectMocks(t)
	stored := project.Project{ID: 1, Name: "payments", ManagerID: reporter.UserID}

	t.Run("non-manager is refused", func(t *testing.T) {
		mockProject.EXPECT().GetProjectByID(uint(1)).Return(stored, nil)

		_, err := svc.CreateVersion(stranger, 1, project.CreateVersionDTO{VersionNumber: "1.2"})
		if !apperr.IsPermission(err) {
			t.Fatalf("expected permission error, got %v", err)
		}
	})

	t.Run("manager adds a version", func(t *testing.T) {
		mockProject.EXPECT().GetProjectByID(uint(1)).Return(stored, nil)
		mockProject.EXPECT().CreateVersion(gomock.Any()).Do(func(v *project.Version) {
			v.ID = 7
		}).Return(nil)

		v, err := svc.CreateVersion(reporter, 1, project.CreateVersionDTO{VersionNumber: "1.2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.ID != 7 || v.VersionNumber != "1.2" {
			t.Fatalf("unexpected version %+v", v)
		}
	})
}
