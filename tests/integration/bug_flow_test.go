package integration

import (
	"net/http"
	"testing"

	"github.com/linweiyu/bugtrack-go/internal/application"
	"github.com/linweiyu/bugtrack-go/internal/domain/bug"
	"github.com/linweiyu/bugtrack-go/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func TestBugLifecycleOverHTTP(t *testing.T) {
	reporterToken := registerAndLogin(t, "flow_reporter", "123456")
	strangerToken := registerAndLogin(t, "flow_stranger", "123456")

	// project
	w := doRequest(t, "POST", "/projects", reporterToken, map[string]string{
		"name": "flow-payments",
	}, http.StatusCreated)
	var p project.Project
	decodeBody(t, w, &p)
	require.NotZero(t, p.ID)

	// unauthenticated requests are rejected
	doRequest(t, "GET", "/bugs", "", nil, http.StatusUnauthorized)

	// create with defaults
	w = doRequest(t, "POST", "/bugs", reporterToken, map[string]interface{}{
		"title":       "Checkout times out",
		"description": "POST /checkout hangs under load",
		"project_id":  p.ID,
	}, http.StatusCreated)
	var b bug.Bug
	decodeBody(t, w, &b)
	require.Equal(t, bug.StatusOpen, b.Status)
	require.Equal(t, bug.PriorityMedium, b.Priority)
	require.Equal(t, bug.SeverityMajor, b.Severity)

	bugPath := urlf("/bugs/%d", b.ID)

	// validation failure
	doRequest(t, "POST", "/bugs", reporterToken, map[string]interface{}{
		"title":       "orphan",
		"description": "d",
		"project_id":  999999,
	}, http.StatusBadRequest)

	// update two audited fields plus the unaudited description
	w = doRequest(t, "PUT", bugPath, strangerToken, map[string]interface{}{
		"title":       "Checkout times out under load",
		"description": "narrowed to the retry loop",
		"priority":    "high",
	}, http.StatusOK)
	decodeBody(t, w, &b)
	require.Equal(t, bug.PriorityHigh, b.Priority)

	// status change stamps resolved_at
	w = doRequest(t, "PUT", bugPath+"/status", reporterToken, map[string]string{
		"status": "resolved",
	}, http.StatusOK)
	decodeBody(t, w, &b)
	require.Equal(t, bug.StatusResolved, b.Status)
	require.NotNil(t, b.ResolvedAt)

	// comments
	w = doRequest(t, "POST", bugPath+"/comments", strangerToken, map[string]string{
		"content": "confirmed on staging",
	}, http.StatusCreated)
	var comment bug.Comment
	decodeBody(t, w, &comment)

	// audit trail in replay order
	w = doRequest(t, "GET", bugPath+"/history?order=asc", reporterToken, nil, http.StatusOK)
	var trail []application.EntryView
	decodeBody(t, w, &trail)
	require.Len(t, trail, 5)
	require.Equal(t, "Created bug", trail[0].Action)
	require.Equal(t, "Changed title from 'Checkout times out' to 'Checkout times out under load'", trail[1].Action)
	require.Equal(t, "Changed priority from 'medium' to 'high'", trail[2].Action)
	require.Equal(t, "Changed status from 'open' to 'resolved'", trail[3].Action)
	require.Equal(t, "Added comment: confirmed on staging...", trail[4].Action)

	// only the comment author or an admin may remove it
	doRequest(t, "DELETE", urlf("/bugs/%d/comments/%d", b.ID, comment.ID), reporterToken, nil, http.StatusForbidden)
	doRequest(t, "DELETE", urlf("/bugs/%d/comments/%d", b.ID, comment.ID), strangerToken, nil, http.StatusOK)

	// project stats
	w = doRequest(t, "GET", urlf("/projects/%d/stats", p.ID), reporterToken, nil, http.StatusOK)
	var summary application.ProjectSummary
	decodeBody(t, w, &summary)
	require.EqualValues(t, 1, summary.Total)
	require.EqualValues(t, 1, summary.Resolved)

	// only the reporter or an admin may delete the bug
	doRequest(t, "DELETE", bugPath, strangerToken, nil, http.StatusForbidden)
	doRequest(t, "DELETE", bugPath, reporterToken, nil, http.StatusOK)
	doRequest(t, "GET", bugPath, reporterToken, nil, http.StatusNotFound)
}

func TestSearchAndMyBugsOverHTTP(t *testing.T) {
	token := registerAndLogin(t, "search_user", "123456")

	w := doRequest(t, "POST", "/projects", token, map[string]string{"name": "search-proj"}, http.StatusCreated)
	var p project.Project
	decodeBody(t, w, &p)

	doRequest(t, "POST", "/bugs", token, map[string]interface{}{
		"title":       "Index drifts after bulk import",
		"description": "stale search results",
		"project_id":  p.ID,
		"tags":        "search,index",
	}, http.StatusCreated)

	w = doRequest(t, "GET", urlf("/bugs?q=drifts&project=%d", p.ID), token, nil, http.StatusOK)
	var found []bug.Bug
	decodeBody(t, w, &found)
	require.Len(t, found, 1)

	w = doRequest(t, "GET", "/bugs?q=no_such_bug_anywhere", token, nil, http.StatusOK)
	decodeBody(t, w, &found)
	require.Empty(t, found)

	w = doRequest(t, "GET", "/bugs/my", token, nil, http.StatusOK)
	var mine struct {
		Reported []bug.Bug `json:"reported"`
		Assigned []bug.Bug `json:"assigned"`
	}
	decodeBody(t, w, &mine)
	require.Len(t, mine.Reported, 1)
}
