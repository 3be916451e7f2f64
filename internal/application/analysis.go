package application

import (
	"context"
	"encoding/json"
	"log"

	"github.com/linweiyu/bugtrack-go/internal/domain/analysis"
	"github.com/linweiyu/bugtrack-go/internal/repository"
	"github.com/linweiyu/bugtrack-go/pkg/apperr"
	"github.com/linweiyu/bugtrack-go/pkg/identity"
)

// AnalysisProvider produces findings for a submitted code snippet.
// Implementations: the Anthropic-backed provider and a canned one for
// installations without an API key.
type AnalysisProvider interface {
	Analyze(ctx context.Context, code, language string) (analysis.Result, error)
}

type AnalysisService struct {
	Repos    *repository.Repos
	Provider AnalysisProvider
}

func NewAnalysisService(repos *repository.Repos, provider AnalysisProvider) *AnalysisService {
	return &AnalysisService{Repos: repos, Provider: provider}
}

// Submit persists the request, runs the provider synchronously and
// stores the outcome. Provider failures mark the row failed; they do
// not surface as request errors since the submission itself succeeded.
func (s *AnalysisService) Submit(ctx context.Context, actor identity.Identity, input analysis.SubmitDTO) (*analysis.Request, error) {
	if input.Code == "" {
		return nil, apperr.Validation("code is required")
	}

	req := &analysis.Request{
		Code:        input.Code,
		Language:    input.Language,
		SubmittedBy: actor.UserID,
		Status:      analysis.StatusPending,
	}
	if err := s.Repos.Analysis.CreateRequest(req); err != nil {
		return nil, apperr.Storage(err)
	}

	req.Status = analysis.StatusProcessing
	if err := s.Repos.Analysis.SaveRequest(req); err != nil {
		return nil, apperr.Storage(err)
	}

	result, err := s.Provider.Analyze(ctx, input.Code, input.Language)
	if err != nil {
		log.Printf("analysis provider failed for request %d: %v", req.ID, err)
		req.Status = analysis.StatusFailed
	} else {
		blob, merr := json.Marshal(result)
		if merr != nil {
			req.Status = analysis.StatusFailed
		} else {
			req.Results = blob
			req.Status = analysis.StatusCompleted
		}
	}
	if err := s.Repos.Analysis.SaveRequest(req); err != nil {
		return nil, apperr.Storage(err)
	}
	return req, nil
}

// Get returns the request and its decoded result. A malformed stored
// results blob decodes to "no results" rather than failing the read.
func (s *AnalysisService) Get(actor identity.Identity, id uint) (*analysis.Request, *analysis.Result, error) {
	req, err := s.Repos.Analysis.GetRequestByID(id)
	if err != nil {
		return nil, nil, lookupErr(err, "analysis request", id)
	}
	if !identity.CanMutate(actor, req.SubmittedBy) {
		return nil, nil, apperr.Permission("analysis requests are visible only to their submitter")
	}

	var result *analysis.Result
	if len(req.Results) > 0 {
		var decoded analysis.Result
		if err := json.Unmarshal(req.Results, &decoded); err == nil {
			result = &decoded
		}
	}
	return &req, result, nil
}

func (s *AnalysisService) History(actor identity.Identity, limit int) ([]analysis.Request, error) {
	requests, err := s.Repos.Analysis.ListRequestsByUser(actor.UserID, limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return requests, nil
}

// CannedProvider returns fixed findings. It stands in when no real
// provider is configured.
type CannedProvider struct{}

func (CannedProvider) Analyze(ctx context.Context, code, language string) (analysis.Result, error) {
	return analysis.Result{
		Issues: []analysis.Issue{
			{
				Type:        "bug",
				Line:        10,
				Description: "Potential null reference exception",
				Severity:    "high",
				Suggestion:  "Add null check before accessing this property",
			},
			{
				Type:        "improvement",
				Line:        15,
				Description: "Inefficient algorithm detected",
				Severity:    "medium",
				Suggestion:  "Consider using a hash map for better performance",
			},
		},
		Summary:      "The code has 1 potential bug and 1 performance issue.",
		QualityScore: 75,
	}, nil
}
