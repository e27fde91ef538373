package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
	"github.com/mustafamengutay/koly-sub000/internal/repository"
)

func (s *Service) ensureParticipant(ctx context.Context, projectID, userID string) error {
	ok, err := s.repo.IsParticipant(ctx, projectID, userID)
	if err != nil {
		return fmt.Errorf("checking participant: %w", err)
	}
	if !ok {
		return domain.ErrNotParticipant
	}
	return nil
}

func (s *Service) ensureLeader(ctx context.Context, projectID, userID string) error {
	ok, err := s.repo.IsLeader(ctx, projectID, userID)
	if err != nil {
		return fmt.Errorf("checking leader: %w", err)
	}
	if !ok {
		return domain.ErrNotLeader
	}
	return nil
}

// CreateProject creates a project with the creator as its sole leader and
// participant.
func (s *Service) CreateProject(ctx context.Context, ownerID, name string) (domain.Project, error) {
	txRepo, ok := s.repo.(repository.Transactor)
	if !ok {
		return domain.Project{}, errors.New("repository does not support transactions")
	}

	var created domain.Project
	err := txRepo.RunInTx(ctx, func(ctxTx context.Context) error {
		project, err := s.repo.CreateProject(ctxTx, domain.Project{ID: newULID(), Name: name})
		if err != nil {
			return err
		}
		if err := s.repo.ConnectParticipant(ctxTx, project.ID, ownerID); err != nil {
			return err
		}
		if err := s.repo.AddLeader(ctxTx, project.ID, ownerID); err != nil {
			return err
		}
		created = project
		return nil
	})
	if err != nil {
		return domain.Project{}, err
	}
	return created, nil
}

func (s *Service) RemoveProject(ctx context.Context, callerID, projectID string) error {
	if err := s.ensureLeader(ctx, projectID, callerID); err != nil {
		return err
	}
	return s.repo.DeleteProject(ctx, projectID)
}

func (s *Service) RenameProject(ctx context.Context, callerID, projectID, name string) (domain.Project, error) {
	if err := s.ensureLeader(ctx, projectID, callerID); err != nil {
		return domain.Project{}, err
	}
	return s.repo.RenameProject(ctx, projectID, name)
}

func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return s.repo.ListProjects(ctx)
}

func (s *Service) ListLedProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	return s.repo.ListLedProjects(ctx, userID)
}

func (s *Service) ListJoinedProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	return s.repo.ListJoinedProjects(ctx, userID)
}

func (s *Service) ListParticipants(ctx context.Context, callerID, projectID string) ([]domain.Member, error) {
	if err := s.ensureParticipant(ctx, projectID, callerID); err != nil {
		return nil, err
	}
	return s.repo.ListParticipants(ctx, projectID)
}

func (s *Service) ListLeaders(ctx context.Context, callerID, projectID string) ([]domain.Member, error) {
	if err := s.ensureParticipant(ctx, projectID, callerID); err != nil {
		return nil, err
	}
	return s.repo.ListLeaders(ctx, projectID)
}

// RemoveParticipant disconnects a participant on behalf of a leader. The
// leader count is read under a row lock on the project, so two concurrent
// removals cannot both pass the last-leader guard.
func (s *Service) RemoveParticipant(ctx context.Context, leaderID, projectID, participantID string) error {
	txRepo, ok := s.repo.(repository.Transactor)
	if !ok {
		return errors.New("repository does not support transactions")
	}

	return txRepo.RunInTx(ctx, func(ctxTx context.Context) error {
		if _, err := s.repo.GetProjectForUpdate(ctxTx, projectID); err != nil {
			return err
		}
		if err := s.ensureLeader(ctxTx, projectID, leaderID); err != nil {
			return err
		}

		isLeader, err := s.repo.IsLeader(ctxTx, projectID, participantID)
		if err != nil {
			return fmt.Errorf("checking leader: %w", err)
		}
		if isLeader {
			count, err := s.repo.CountLeaders(ctxTx, projectID)
			if err != nil {
				return fmt.Errorf("counting leaders: %w", err)
			}
			if count <= 1 {
				return domain.ErrLastLeader
			}
		}

		return s.repo.DisconnectParticipant(ctxTx, projectID, participantID)
	})
}

// PromoteLeader adds a leadership edge to an existing participant.
func (s *Service) PromoteLeader(ctx context.Context, leaderID, projectID, participantID string) error {
	if err := s.ensureLeader(ctx, projectID, leaderID); err != nil {
		return err
	}
	if err := s.ensureParticipant(ctx, projectID, participantID); err != nil {
		return err
	}

	isLeader, err := s.repo.IsLeader(ctx, projectID, participantID)
	if err != nil {
		return fmt.Errorf("checking leader: %w", err)
	}
	if isLeader {
		return domain.ErrAlreadyLeader
	}

	if err := s.repo.AddLeader(ctx, projectID, participantID); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.ErrAlreadyLeader
		}
		return err
	}
	return nil
}
