package application_test

import (
	"errors"
	"testing"
	"time"

	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/internal/domain/bug"
	"github.com/linweiyu/bugtrack-go/internal/domain/history"
	"github.com/linweiyu/bugtrack-go/internal/domain/project"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/internal/testutils"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
	"github.com/linweiyu/bugtrack-go/pkg/identity"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var (
	reporter = identity.Identity{UserID: 1}
	stranger = identity.Identity{UserID: 2}
	admin    = identity.Identity{UserID: 3, IsAdmin: true}
)

func setupBugEnv(t *testing.T) (*repository.Repos, *application.BugService, project.Project) {
	t.Helper()
	db := testutils.SetupSQLite(t)
	repos := repository.NewRepositories(db)

	p := project.Project{Name: "payments", ManagerID: reporter.UserID}
	require.NoError(t, repos.Project.CreateProject(&p))

	return repos, application.NewBugService(repos), p
}

func createBug(t *testing.T, svc *application.BugService, projectID uint) *bug.Bug {
	t.Helper()
	b, err := svc.Create(reporter, bug.CreateBugDTO{
		Title:       "Checkout times out",
		Description: "POST /checkout hangs for 30s under load",
		ProjectID:   projectID,
	})
	require.NoError(t, err)
	return b
}

func TestCreateBugWritesCreationEntry(t *testing.T) {
	repos, svc, p := setupBugEnv(t)

	b := createBug(t, svc, p.ID)
	require.NotZero(t, b.ID)
	require.Equal(t, bug.StatusOpen, b.Status)
	require.Equal(t, bug.PriorityMedium, b.Priority)
	require.Equal(t, bug.SeverityMajor, b.Severity)
	require.Equal(t, reporter.UserID, b.ReportedBy)

	entries, err := repos.History.ListHistoryByBug(b.ID, true)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, history.KindCreated, entries[0].Kind)
	require.Equal(t, "Created bug", entries[0].Action())
	require.Equal(t, reporter.UserID, entries[0].UserID)
}

func TestCreateBugValidation(t *testing.T) {
	_, svc, p := setupBugEnv(t)

	_, err := svc.Create(reporter, bug.CreateBugDTO{Title: "  ", Description: "d", ProjectID: p.ID})
	require.True(t, apperr.IsValidation(err))

	_, err = svc.Create(reporter, bug.CreateBugDTO{Title: "t", Description: "d", ProjectID: 999})
	require.True(t, apperr.IsValidation(err))

	badPriority := bug.Priority("urgent")
	_, err = svc.Create(reporter, bug.CreateBugDTO{
		Title: "t", Description: "d", ProjectID: p.ID, Priority: &badPriority,
	})
	require.True(t, apperr.IsValidation(err))
}

func TestCreateBugRejectsForeignVersion(t *testing.T) {
	repos, svc, p := setupBugEnv(t)

	other := project.Project{Name: "search", ManagerID: reporter.UserID}
	require.NoError(t, repos.Project.CreateProject(&other))
	v := project.Version{ProjectID: other.ID, VersionNumber: "2.1"}
	require.NoError(t, repos.Project.CreateVersion(&v))

	_, err := svc.Create(reporter, bug.CreateBugDTO{
		Title: "t", Description: "d", ProjectID: p.ID, VersionID: &v.ID,
	})
	require.True(t, apperr.IsValidation(err))
}

func TestUpdateBugAuditsChangedFieldsInOrder(t *testing.T) {
	repos, svc, p := setupBugEnv(t)
	b := createBug(t, svc, p.ID)

	newTitle := "Checkout times out under load"
	newDescription := "repro narrowed down to the retry loop"
	newPriority := bug.PriorityHigh
	newSeverity := bug.SeverityCritical
	newStatus := bug.StatusInProgress
	updated, err := svc.Update(stranger, b.ID, bug.UpdateBugDTO{
		Title:       &newTitle,
		Description: &newDescription,
		Priority:    &newPriority,
		Severity:    &newSeverity,
		Status:      &newStatus,
	})
	require.NoError(t, err)
	require.Equal(t, newTitle, updated.Title)
	require.Equal(t, newDescription, updated.Description)

	entries, err := repos.History.ListHistoryByBug(b.ID, true)
	require.NoError(t, err)
	// creation entry plus one per audited changed field; description
	// edits never get a line
	require.Len(t, entries, 5)

	fields := []string{entries[1].Field, entries[2].Field, entries[3].Field, entries[4].Field}
	require.Equal(t, []string{"title", "priority", "severity", "status"}, fields)
	require.Equal(t, "Changed title from 'Checkout times out' to 'Checkout times out under load'", entries[1].Action())
	require.Equal(t, "Changed priority from 'medium' to 'high'", entries[2].Action())
	require.Equal(t, "Changed status from 'open' to 'in_progress'", entries[4].Action())
	for _, e := range entries[1:] {
		require.Equal(t, stranger.UserID, e.UserID)
	}
}

func TestUpdateBugUnchangedValuesWriteNothing(t *testing.T) {
	repos, svc, p := setupBugEnv(t)
	b := createBug(t, svc, p.ID)

	sameTitle := b.Title
	samePriority := b.Priority
	_, err := svc.Update(reporter, b.ID, bug.UpdateBugDTO{Title: &sameTitle, Priority: &samePriority})
	require.NoError(t, err)

	n, err := repos.History.CountHistoryByBug(b.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestUpdateBugNotFound(t *testing.T) {
	_, svc, _ := setupBugEnv(t)
	newTitle := "x"
	_, err := svc.Update(reporter, 404, bug.UpdateBugDTO{Title: &newTitle})
	require.True(t, apperr.IsNotFound(err))
}

func TestChangeStatusNoOp(t *testing.T) {
	repos, svc, p := setupBugEnv(t)
	b := createBug(t, svc, p.ID)

	got, err := svc.ChangeStatus(reporter, b.ID, bug.StatusOpen)
	require.NoError(t, err)
	require.Equal(t, bug.StatusOpen, got.Status)

	n, err := repos.History.CountHistoryByBug(b.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestResolvedAtIsSetOnceAndNeverCleared(t *testing.T) {
	_, svc, p := setupBugEnv(t)
	b := createBug(t, svc, p.ID)

	got, err := svc.ChangeStatus(reporter, b.ID, bug.StatusResolved)
	require.NoError(t, err)
	require.NotNil(t, got.ResolvedAt)
	firstResolved := *got.ResolvedAt

	got, err = svc.ChangeStatus(reporter, b.ID, bug.StatusClosed)
	require.NoError(t, err)
	require.NotNil(t, got.ResolvedAt)
	require.WithinDuration(t, firstResolved, *got.ResolvedAt, time.Second)

	got, err = svc.ChangeStatus(reporter, b.ID, bug.StatusReopened)
	require.NoError(t, err)
	require.NotNil(t, got.ResolvedAt)
	require.WithinDuration(t, firstResolved, *got.ResolvedAt, time.Second)

	got, err = svc.ChangeStatus(reporter, b.ID, bug.StatusResolved)
	require.NoError(t, err)
	require.NotNil(t, got.ResolvedAt)
	require.False(t, got.ResolvedAt.Before(firstResolved))
}

func TestChangeStatusRejectsUnknownValue(t *testing.T) {
	_, svc, p := setupBugEnv(t)
	b := createBug(t, svc, p.ID)

	_, err := svc.ChangeStatus(reporter, b.ID, bug.Status("wontfix"))
	require.True(t, apperr.IsValidation(err))
}

// failingHistoryRepo refuses appends while delegating everything else,
// to force a rollback from inside the mutation transaction.
type failingHistoryRepo struct {
	repository.HistoryRepo
}

func (f failingHistoryRepo) CreateEntry(e *history.Entry) error {
	return errors.New("history write refused")
}

func (f failingHistoryRepo) CreateEntries(entries []history.Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return errors.New("history write refused")
}

func (f failingHistoryRepo) WithTx(tx *gorm.DB) repository.HistoryRepo {
	return failingHistoryRepo{f.HistoryRepo.WithTx(tx)}
}

func TestMutationRollsBackWhenHistoryWriteFails(t *testing.T) {
	repos, svc, p := setupBugEnv(t)
	repos.History = failingHistoryRepo{repos.History}

	_, err := svc.Create(reporter, bug.CreateBugDTO{
		Title: "t", Description: "d", ProjectID: p.ID,
	})
	require.Error(t, err)

	n, err := repos.Bug.CountBugs()
	require.NoError(t, err)
	require.EqualValues(t, 0, n, "bug row must not survive a failed history write")
}

func TestUpdateRollsBackWhenHistoryWriteFails(t *testing.T) {
	repos, svc, p := setupBugEnv(t)
	b := createBug(t, svc, p.ID)
	repos.History = failingHistoryRepo{repos.History}

	newStatus := bug.StatusClosed
	_, err := svc.Update(reporter, b.ID, bug.UpdateBugDTO{Status: &newStatus})
	require.Error(t, err)

	stored, err := svc.Get(b.ID)
	require.NoError(t, err)
	require.Equal(t, bug.StatusOpen, stored.Status, "status change must roll back with the audit write")
}

func TestDeleteBugPermission(t *testing.T) {
	repos, svc, p := setupBugEnv(t)
	b := createBug(t, svc, p.ID)

	err := svc.Delete(stranger, b.ID)
	require.True(t, apperr.IsPermission(err))

	_, err = svc.Get(b.ID)
	require.NoError(t, err)
	n, err := repos.History.CountHistoryByBug(b.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	require.NoError(t, svc.Delete(admin, b.ID))
}

func TestDeleteBugCascades(t *testing.T) {
	repos, svc, p := setupBugEnv(t)
	b := createBug(t, svc, p.ID)

	comments := application.NewCommentService(repos)
	_, err := comments.Add(stranger, b.ID, "seen this on staging too")
	require.NoError(t, err)
	attachments := application.NewAttachmentService(repos, nil)
	_, err = attachments.Add(reporter, b.ID, "mem/1/trace.log", "trace.log")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(reporter, b.ID))

	_, err = svc.Get(b.ID)
	require.True(t, apperr.IsNotFound(err))

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

func TestListBugsFilters(t *testing.T) {
	_, svc, p := setupBugEnv(t)

	b1 := createBug(t, svc, p.ID)
	high := bug.PriorityHigh
	_, err := svc.Create(reporter, bug.CreateBugDTO{
		Title:       "Search index drifts",
		Description: "stale results after bulk import",
		ProjectID:   p.ID,
		Priority:    &high,
		Tags:        "search,index",
	})
	require.NoError(t, err)
	_, err = svc.ChangeStatus(reporter, b1.ID, bug.StatusResolved)
	require.NoError(t, err)

	got, err := svc.List(bug.SearchFilter{Query: "DRIFT"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Search index drifts", got[0].Title)

	got, err = svc.List(bug.SearchFilter{Status: bug.StatusResolved})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, b1.ID, got[0].ID)

	got, err = svc.List(bug.SearchFilter{ProjectID: p.ID, Priority: bug.PriorityHigh})
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestMyBugs(t *testing.T) {
	_, svc, p := setupBugEnv(t)
	b := createBug(t, svc, p.ID)

	other, err := svc.Create(stranger, bug.CreateBugDTO{
		Title: "Profile avatar 404s", Description: "d", ProjectID: p.ID,
	})
	require.NoError(t, err)
	assignee := reporter.UserID
	_, err = svc.Update(stranger, other.ID, bug.UpdateBugDTO{AssignedTo: &assignee})
	require.NoError(t, err)

	reported, assigned, err := svc.MyBugs(reporter)
	require.NoError(t, err)
	require.Len(t, reported, 1)
	require.Equal(t, b.ID, reported[0].ID)
	require.Len(t, assigned, 1)
	require.Equal(t, other.ID, assigned[0].ID)
}
