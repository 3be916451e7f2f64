package application_test

import (
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/internal/domain/bug"
	"github.com/linweiyu/bugtrack-go/internal/domain/history"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/internal/repository/mock"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
	"github.com/stretchr/testify/require"
)

func TestAddCommentWritesPreviewEntry(t *testing.T) {
	repos, bugs, p := setupBugEnv(t)
	b := createBug(t, bugs, p.ID)
	svc := application.NewCommentService(repos)

	long := strings.Repeat("Deadlock in the retry loop. ", 4) // > 50 chars
	comment, err := svc.Add(stranger, b.ID, long)
	require.NoError(t, err)
	require.NotZero(t, comment.ID)
	require.Equal(t, stranger.UserID, comment.AuthorID)

	entries, err := repos.History.ListHistoryByBug(b.ID, true)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	last := entries[1]
	require.Equal(t, history.KindCommentAdded, last.Kind)
	require.Equal(t, long[:50]+"...", last.Detail)
	require.Equal(t, "Added comment: "+long[:50]+"...", last.Action())
}

func TestAddCommentValidation(t *testing.T) {
	repos, bugs, p := setupBugEnv(t)
	b := createBug(t, bugs, p.ID)
	svc := application.NewCommentService(repos)

	_, err := svc.Add(stranger, b.ID, "   ")
	require.True(t, apperr.IsValidation(err))

	_, err = svc.Add(stranger, 404, "orphan comment")
	require.True(t, apperr.IsNotFound(err))
}

func TestDeleteCommentPermission(t *testing.T) {
	repos, bugs, p := setupBugEnv(t)
	b := createBug(t, bugs, p.ID)
	svc := application.NewCommentService(repos)

	comment, err := svc.Add(stranger, b.ID, "author-owned note")
	require.NoError(t, err)

	// the bug reporter is not the comment author
	err = svc.Delete(reporter, b.ID, comment.ID)
	require.True(t, apperr.IsPermission(err))
	n, err := repos.Comment.CountCommentsByBug(b.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	require.NoError(t, svc.Delete(stranger, b.ID, comment.ID))

	entries, err := repos.History.ListHistoryByBug(b.ID, true)
	require.NoError(t, err)
	last := entries[len(entries)-1]
	require.Equal(t, history.KindCommentDeleted, last.Kind)
	require.Equal(t, "Deleted a comment", last.Action())
	require.Empty(t, last.Detail, "deletion entries carry no content")
}

func TestDeleteCommentAsAdmin(t *testing.T) {
	repos, bugs, p := setupBugEnv(t)
	b := createBug(t, bugs, p.ID)
	svc := application.NewCommentService(repos)

	comment, err := svc.Add(stranger, b.ID, "to be moderated")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(admin, b.ID, comment.ID))
}

func TestListCommentsOrderedByCreation(t *testing.T) {
	repos, bugs, p := setupBugEnv(t)
	b := createBug(t, bugs, p.ID)
	svc := application.NewCommentService(repos)

	_, err := svc.Add(reporter, b.ID, "first")
	require.NoError(t, err)
	_, err = svc.Add(stranger, b.ID, "second")
	require.NoError(t, err)

	comments, err := svc.ListForBug(b.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	require.Equal(t, "first", comments[0].Content)
	require.Equal(t, "second", comments[1].Content)
}

// A blank comment is refused before any store is touched.
func TestAddCommentBlankContentWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockBug := mock.NewMockBugRepo(ctrl)
	mockComment := mock.NewMockCommentRepo(ctrl)
	svc := application.NewCommentService(&repository.Repos{Bug: mockBug, Comment: mockComment})

	if _, err := svc.Add(reporter, 1, "   "); !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListCommentsRequiresExistingBug(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockBug := mock.NewMockBugRepo(ctrl)
	mockComment := mock.NewMockCommentRepo(ctrl)
	svc := application.NewCommentService(&repository.Repos{Bug: mockBug, Comment: mockComment})

	mockBug.EXPECT().GetBugByID(uint(4)).Return(bug.Bug{ID: 4}, nil)
	mockComment.EXPECT().ListCommentsByBug(uint(4)).Return([]bug.Comment{{ID: 1, BugID: 4}}, nil)

	comments, err := svc.ListForBug(4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(comments) != 1 {
		t.Fatalf("expected 1 comment, got %d", len(comments))
	}
}
