package application

import (
	"github.com/linweiyu/bugtrack-go/internal/domain/history"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
)

// HistoryService is the read side of the audit log. Writes happen only
// inside the mutation transactions of the other services.
type HistoryService struct {
	Repos *repository.Repos
}

func NewHistoryService(repos *repository.Repos) *HistoryService {
	return &HistoryService{Repos: repos}
}

// EntryView pairs the structured entry with its rendered action line
// for display.
type EntryView struct {
	history.Entry
	Action string `json:"action"`
}

func renderEntries(entries []history.Entry) []EntryView {
	views := make([]EntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, EntryView{Entry: e, Action: e.Action()})
	}
	return views
}

// ListForBug returns the bug's audit trail, ascending for replay or
// descending for display.
func (s *HistoryService) ListForBug(bugID uint, ascending bool) ([]EntryView, error) {
	if _, err := s.Repos.Bug.GetBugByID(bugID); err != nil {
		return nil, lookupErr(err, "bug", bugID)
	}
	entries, err := s.Repos.History.ListHistoryByBug(bugID, ascending)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return renderEntries(entries), nil
}

func (s *HistoryService) Recent(limit int) ([]EntryView, error) {
	if limit <= 0 {
		limit = 50
	}
	entries, err := s.Repos.History.ListRecentHistory(limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return renderEntries(entries), nil
}
