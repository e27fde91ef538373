package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
	"github.com/mustafamengutay/koly-sub000/internal/repository"
)

// InviteUser creates a pending invitation from a project leader to a user
// resolved by email. At most one pending invitation may exist per
// (invitee, project) pair; the unique constraint on the invitations table
// backs the pre-check.
func (s *Service) InviteUser(ctx context.Context, inviterID, projectID, inviteeEmail string) (domain.Invitation, error) {
	if err := s.ensureLeader(ctx, projectID, inviterID); err != nil {
		return domain.Invitation{}, err
	}

	invitee, err := s.repo.GetUserByEmail(ctx, inviteeEmail)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Invitation{}, domain.ErrUserNotFound
		}
		return domain.Invitation{}, fmt.Errorf("resolving invitee: %w", err)
	}

	isParticipant, err := s.repo.IsParticipant(ctx, projectID, invitee.ID)
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("checking participant: %w", err)
	}
	if isParticipant {
		return domain.Invitation{}, domain.ErrAlreadyParticipant
	}

	if err := s.ensureInvitationNotSent(ctx, projectID, invitee.ID); err != nil {
		return domain.Invitation{}, err
	}

	invitation, err := s.repo.CreateInvitation(ctx, domain.Invitation{
		ID:        newULID(),
		ProjectID: projectID,
		InviterID: inviterID,
		InviteeID: invitee.ID,
		Status:    domain.InvitationStatusPending,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.Invitation{}, domain.ErrInvitationSent
		}
		return domain.Invitation{}, err
	}
	return invitation, nil
}

func (s *Service) ensureInvitationNotSent(ctx context.Context, projectID, inviteeID string) error {
	_, err := s.repo.FindInvitation(ctx, projectID, inviteeID)
	if err == nil {
		return domain.ErrInvitationSent
	}
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("checking invitation: %w", err)
}

// AcceptInvitation turns a pending invitation into a membership. Connecting
// the participant and consuming the invitation commit as one transaction.
func (s *Service) AcceptInvitation(ctx context.Context, inviteeID, projectID string) error {
	txRepo, ok := s.repo.(repository.Transactor)
	if !ok {
		return errors.New("repository does not support transactions")
	}

	return txRepo.RunInTx(ctx, func(ctxTx context.Context) error {
		invitation, err := s.repo.FindInvitation(ctxTx, projectID, inviteeID)
		if err != nil {
			return err
		}
		if err := s.repo.ConnectParticipant(ctxTx, projectID, inviteeID); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				return domain.ErrAlreadyParticipant
			}
			return err
		}
		return s.repo.DeleteInvitation(ctxTx, invitation.ID, inviteeID)
	})
}

// RejectInvitation deletes the invitation, scoped to the invitee so it cannot
// resolve someone else's invitation.
func (s *Service) RejectInvitation(ctx context.Context, inviteeID, invitationID string) error {
	return s.repo.DeleteInvitation(ctx, invitationID, inviteeID)
}

func (s *Service) ListReceivedInvitations(ctx context.Context, userID string) ([]domain.ReceivedInvitation, error) {
	return s.repo.ListReceivedInvitations(ctx, userID)
}
