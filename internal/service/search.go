package service

import (
	"context"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
)

// SearchIssues matches the query against issue titles of a project,
// case-insensitively. The participant check runs before the store is queried;
// an empty result set is not an error.
func (s *Service) SearchIssues(ctx context.Context, callerID, projectID, query string) ([]domain.Issue, error) {
	if err := s.ensureParticipant(ctx, projectID, callerID); err != nil {
		return nil, err
	}
	return s.repo.SearchIssues(ctx, projectID, query)
}
