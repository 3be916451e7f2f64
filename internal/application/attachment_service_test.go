package application_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/internal/domain/history"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/internal/repository/mock"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
	"github.com/stretchr/testify/require"
)

// memStore keeps uploaded bytes in a map, standing in for the object
// store.
type memStore struct {
	objects map[string][]byte
	seq     int
}

func newMemStore() *memStore {
	return &memStore{objects: make(map[string][]byte)}
}

func (s *memStore) Put(ctx context.Context, r io.Reader, size int64, filename string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.seq++
	ref := fmt.Sprintf("mem/%d/%s", s.seq, filename)
	s.objects[ref] = data
	return ref, nil
}

func (s *memStore) Get(ctx context.Context, ref string) (io.ReadCloser, error) {
	data, ok := s.objects[ref]
	if !ok {
		return nil, fmt.Errorf("object %s not found", ref)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStore) Remove(ctx context.Context, ref string) error {
	delete(s.objects, ref)
	return nil
}

func TestUploadAttachmentRecordsHistory(t *testing.T) {
	repos, bugs, p := setupBugEnv(t)
	b := createBug(t, bugs, p.ID)
	store := newMemStore()
	svc := application.NewAttachmentService(repos, store)

	payload := []byte("panic: runtime error: index out of range")
	attachment, err := svc.Upload(context.Background(), stranger, b.ID,
		bytes.NewReader(payload), int64(len(payload)), "crash.log")
	require.NoError(t, err)
	require.NotZero(t, attachment.ID)
	require.Equal(t, "crash.log", attachment.Filename)
	require.Equal(t, stranger.UserID, attachment.UploadedBy)
	require.Len(t, store.objects, 1)

	entries, err := repos.History.ListHistoryByBug(b.ID, true)
	require.NoError(t, err)
	last := entries[len(entries)-1]
	require.Equal(t, history.KindAttachmentAdded, last.Kind)
	require.Equal(t, "Added attachment: crash.log", last.Action())

	_, rc, err := svc.Open(context.Background(), b.ID, attachment.ID)
	require.NoError(t, err)
	defer rc.Close()
	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestUploadAttachmentValidation(t *testing.T) {
	repos, bugs, p := setupBugEnv(t)
	b := createBug(t, bugs, p.ID)
	svc := application.NewAttachmentService(repos, newMemStore())

	_, err := svc.Upload(context.Background(), stranger, b.ID, bytes.NewReader(nil), 0, " ")
	require.True(t, apperr.IsValidation(err))

	_, err = svc.Upload(context.Background(), stranger, 404, bytes.NewReader(nil), 0, "x.txt")
	require.True(t, apperr.IsNotFound(err))
}

func TestDeleteAttachmentPermissionAndCleanup(t *testing.T) {
	repos, bugs, p := setupBugEnv(t)
	b := createBug(t, bugs, p.ID)
	store := newMemStore()
	svc := application.NewAttachmentService(repos, store)

	payload := []byte("screenshot bytes")
	attachment, err := svc.Upload(context.Background(), stranger, b.ID,
		bytes.NewReader(payload), int64(len(payload)), "screen.png")
	require.NoError(t, err)

	// the bug reporter is not the uploader
	err = svc.Delete(context.Background(), reporter, b.ID, attachment.ID)
	require.True(t, apperr.IsPermission(err))
	require.Len(t, store.objects, 1, "denied delete must not touch stored bytes")

	require.NoError(t, svc.Delete(context.Background(), stranger, b.ID, attachment.ID))
	require.Empty(t, store.objects)

	entries, err := repos.History.ListHistoryByBug(b.ID, true)
	require.NoError(t, err)
	last := entries[len(entries)-1]
	require.Equal(t, history.KindAttachmentDeleted, last.Kind)
	require.Equal(t, "Deleted attachment: screen.png", last.Action())
}

// A blank filename is refused before the object store or any row
// store is touched.
func TestUploadBlankFilenameTouchesNoStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockBug := mock.NewMockBugRepo(ctrl)
	mockAttachment := mock.NewMockAttachmentRepo(ctrl)
	repos := &repository.Repos{Bug: mockBug, Attachment: mockAttachment}
	svc := application.NewAttachmentService(repos, newMemStore())

	_, err := svc.Upload(context.Background(), reporter, 1, bytes.NewReader(nil), 0, "  ")
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
