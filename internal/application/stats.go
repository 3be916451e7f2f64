package application

import (
	"time"

	"github.com/linweiyu/bugtrack-go/internal/domain/bug"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
)

// StatsService derives dashboard counts from current store state. It
// is strictly read-only and never touches the audit log. Every call
// re-reads the store; there is no caching and no cross-query snapshot
// guarantee.
type StatsService struct {
	Repos *repository.Repos
}

func NewStatsService(repos *repository.Repos) *StatsService {
	return &StatsService{Repos: repos}
}

type ProjectSummary struct {
	Total      int64 `json:"total"`
	Open       int64 `json:"open"`
	InProgress int64 `json:"in_progress"`
	Resolved   int64 `json:"resolved"`
	Closed     int64 `json:"closed"`
}

type MonthCount struct {
	Month time.Month `json:"month"`
	Count int64      `json:"count"`
}

type SystemSummary struct {
	TotalProjects  int64                        `json:"total_projects"`
	TotalBugs      int64                        `json:"total_bugs"`
	StatusCounts   map[bug.Status]int64         `json:"status_counts"`
	PriorityCounts map[bug.Priority]int64       `json:"priority_counts"`
	SeverityCounts map[bug.Severity]int64       `json:"severity_counts"`
	TopProjects    []repository.ProjectBugCount `json:"top_projects"`
	BugsByMonth    []MonthCount                 `json:"bugs_by_month"`
}

// ProjectSummary counts a project's bugs by status, zero-filled for
// absent statuses. Total covers every status, reopened included.
func (s *StatsService) ProjectSummary(projectID uint) (*ProjectSummary, error) {
	if _, err := s.Repos.Project.GetProjectByID(projectID); err != nil {
		return nil, lookupErr(err, "project", projectID)
	}

	counts, err := s.Repos.Bug.CountByColumnForProject("status", projectID)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	summary := &ProjectSummary{}
	for _, c := range counts {
		summary.Total += c.Count
		switch bug.Status(c.Value) {
		case bug.StatusOpen:
			summary.Open = c.Count
		case bug.StatusInProgress:
			summary.InProgress = c.Count
		case bug.StatusResolved:
			summary.Resolved = c.Count
		case bug.StatusClosed:
			summary.Closed = c.Count
		}
	}
	return summary, nil
}

func (s *StatsService) SystemSummary(topLimit int) (*SystemSummary, error) {
	if topLimit <= 0 {
		topLimit = 10
	}

	summary := &SystemSummary{
		StatusCounts: map[bug.Status]int64{
			bug.StatusOpen: 0, bug.StatusInProgress: 0, bug.StatusResolved: 0,
			bug.StatusClosed: 0, bug.StatusReopened: 0,
		},
		PriorityCounts: map[bug.Priority]int64{
			bug.PriorityLow: 0, bug.PriorityMedium: 0, bug.PriorityHigh: 0, bug.PriorityCritical: 0,
		},
		SeverityCounts: map[bug.Severity]int64{
			bug.SeverityMinor: 0, bug.SeverityMajor: 0, bug.SeverityCritical: 0, bug.SeverityBlocker: 0,
		},
	}

	var err error
	if summary.TotalProjects, err = s.Repos.Project.CountProjects(); err != nil {
		return nil, apperr.Storage(err)
	}
	if summary.TotalBugs, err = s.Repos.Bug.CountBugs(); err != nil {
		return nil, apperr.Storage(err)
	}

	statusCounts, err := s.Repos.Bug.CountByColumn("status")
	if err != nil {
		return nil, apperr.Storage(err)
	}
	for _, c := range statusCounts {
		summary.StatusCounts[bug.Status(c.Value)] = c.Count
	}

	priorityCounts, err := s.Repos.Bug.CountByColumn("priority")
	if err != nil {
		return nil, apperr.Storage(err)
	}
	for _, c := range priorityCounts {
		summary.PriorityCounts[bug.Priority(c.Value)] = c.Count
	}

	severityCounts, err := s.Repos.Bug.CountByColumn("severity")
	if err != nil {
		return nil, apperr.Storage(err)
	}
	for _, c := range severityCounts {
		summary.SeverityCounts[bug.Severity(c.Value)] = c.Count
	}

	if summary.TopProjects, err = s.Repos.Bug.TopProjectsByBugCount(topLimit); err != nil {
		return nil, apperr.Storage(err)
	}

	times, err := s.Repos.Bug.CreationTimes()
	if err != nil {
		return nil, apperr.Storage(err)
	}
	summary.BugsByMonth = bucketByMonth(times)

	return summary, nil
}

// bucketByMonth groups creation timestamps by calendar month of the
// year, mirroring the chart the dashboard draws. Only months with at
// least one bug appear, in month order.
func bucketByMonth(times []time.Time) []MonthCount {
	byMonth := make(map[time.Month]int64)
	for _, t := range times {
		byMonth[t.Month()]++
	}
	counts := make([]MonthCount, 0, len(byMonth))
	for m := time.January; m <= time.December; m++ {
		if n, ok := byMonth[m]; ok {
			counts = append(counts, MonthCount{Month: m, Count: n})
		}
	}
	return counts
}
