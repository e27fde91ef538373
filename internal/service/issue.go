package service

import (
	"context"
	"errors"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
	"github.com/mustafamengutay/koly-sub000/internal/repository"
)

// Pure transition guards. Each one checks a single precondition against an
// already fetched issue and returns a domain sentinel on violation.

func validateIssueNotAdopted(adoptedBy *string) error {
	if adoptedBy != nil {
		return domain.ErrIssueAdopted
	}
	return nil
}

func validateIssueNotCompleted(status domain.IssueStatus) error {
	if status == domain.IssueStatusCompleted {
		return domain.ErrIssueCompleted
	}
	return nil
}

func validateIssueReporter(reportedBy, callerID string) error {
	if reportedBy != callerID {
		return domain.ErrNotReporter
	}
	return nil
}

func validateIssueAdopter(adoptedBy *string, callerID string) error {
	if adoptedBy == nil || *adoptedBy != callerID {
		return domain.ErrNotAdopter
	}
	return nil
}

// ReportIssue creates an open, unadopted issue on behalf of a participant.
func (s *Service) ReportIssue(ctx context.Context, reporterID, projectID, title, description string, issueType domain.IssueType) (domain.Issue, error) {
	if err := s.ensureParticipant(ctx, projectID, reporterID); err != nil {
		return domain.Issue{}, err
	}
	return s.repo.CreateIssue(ctx, domain.Issue{
		ID:           newULID(),
		ProjectID:    projectID,
		Title:        title,
		Description:  description,
		Type:         issueType,
		Status:       domain.IssueStatusOpen,
		ReportedByID: reporterID,
	})
}

func (s *Service) AdoptIssue(ctx context.Context, callerID, issueID string) (domain.Issue, error) {
	return s.adoptAs(ctx, issueID, callerID)
}

func (s *Service) ReleaseIssue(ctx context.Context, callerID, issueID string) (domain.Issue, error) {
	return s.releaseAs(ctx, issueID, callerID)
}

func (s *Service) CompleteIssue(ctx context.Context, callerID, issueID string) (domain.Issue, error) {
	txRepo, ok := s.repo.(repository.Transactor)
	if !ok {
		return domain.Issue{}, errors.New("repository does not support transactions")
	}

	var completed domain.Issue
	err := txRepo.RunInTx(ctx, func(ctxTx context.Context) error {
		issue, err := s.repo.GetIssueForUpdate(ctxTx, issueID)
		if err != nil {
			return err
		}
		if err := s.ensureParticipant(ctxTx, issue.ProjectID, callerID); err != nil {
			return err
		}
		if err := validateIssueAdopter(issue.AdoptedByID, callerID); err != nil {
			return err
		}
		if err := validateIssueNotCompleted(issue.Status); err != nil {
			return err
		}
		completed, err = s.repo.CompleteIssue(ctxTx, issueID)
		return err
	})
	if err != nil {
		return domain.Issue{}, err
	}
	return completed, nil
}

// RemoveIssue deletes an issue; only its reporter may do so.
func (s *Service) RemoveIssue(ctx context.Context, callerID, issueID string) error {
	issue, err := s.repo.GetIssue(ctx, issueID)
	if err != nil {
		return err
	}
	if err := s.ensureParticipant(ctx, issue.ProjectID, callerID); err != nil {
		return err
	}
	if err := validateIssueReporter(issue.ReportedByID, callerID); err != nil {
		return err
	}
	return s.repo.DeleteIssue(ctx, issueID)
}

// AssignIssue runs the adopt flow for a participant on behalf of a project
// leader.
func (s *Service) AssignIssue(ctx context.Context, leaderID, issueID, participantID string) (domain.Issue, error) {
	issue, err := s.repo.GetIssue(ctx, issueID)
	if err != nil {
		return domain.Issue{}, err
	}
	if err := s.ensureLeader(ctx, issue.ProjectID, leaderID); err != nil {
		return domain.Issue{}, err
	}
	return s.adoptAs(ctx, issueID, participantID)
}

// UnassignIssue runs the release flow for a participant on behalf of a
// project leader.
func (s *Service) UnassignIssue(ctx context.Context, leaderID, issueID, participantID string) (domain.Issue, error) {
	issue, err := s.repo.GetIssue(ctx, issueID)
	if err != nil {
		return domain.Issue{}, err
	}
	if err := s.ensureLeader(ctx, issue.ProjectID, leaderID); err != nil {
		return domain.Issue{}, err
	}
	return s.releaseAs(ctx, issueID, participantID)
}

func (s *Service) ListProjectIssues(ctx context.Context, callerID, projectID string) ([]domain.Issue, error) {
	if err := s.ensureParticipant(ctx, projectID, callerID); err != nil {
		return nil, err
	}
	return s.repo.ListProjectIssues(ctx, projectID)
}

func (s *Service) adoptAs(ctx context.Context, issueID, userID string) (domain.Issue, error) {
	txRepo, ok := s.repo.(repository.Transactor)
	if !ok {
		return domain.Issue{}, errors.New("repository does not support transactions")
	}

	var adopted domain.Issue
	err := txRepo.RunInTx(ctx, func(ctxTx context.Context) error {
		issue, err := s.repo.GetIssueForUpdate(ctxTx, issueID)
		if err != nil {
			return err
		}
		if err := s.ensureParticipant(ctxTx, issue.ProjectID, userID); err != nil {
			return err
		}
		if err := validateIssueNotAdopted(issue.AdoptedByID); err != nil {
			return err
		}
		adopted, err = s.repo.UpdateIssueAdoption(ctxTx, issueID, &userID, domain.IssueStatusInProgress)
		return err
	})
	if err != nil {
		return domain.Issue{}, err
	}
	return adopted, nil
}

func (s *Service) releaseAs(ctx context.Context, issueID, userID string) (domain.Issue, error) {
	txRepo, ok := s.repo.(repository.Transactor)
	if !ok {
		return domain.Issue{}, errors.New("repository does not support transactions")
	}

	var released domain.Issue
	err := txRepo.RunInTx(ctx, func(ctxTx context.Context) error {
		issue, err := s.repo.GetIssueForUpdate(ctxTx, issueID)
		if err != nil {
			return err
		}
		if err := s.ensureParticipant(ctxTx, issue.ProjectID, userID); err != nil {
			return err
		}
		if err := validateIssueAdopter(issue.AdoptedByID, userID); err != nil {
			return err
		}
		if err := validateIssueNotCompleted(issue.Status); err != nil {
			return err
		}
		released, err = s.repo.UpdateIssueAdoption(ctxTx, issueID, nil, domain.IssueStatusOpen)
		return err
	})
	if err != nil {
		return domain.Issue{}, err
	}
	return released, nil
}
