package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
)

func TestService_Invitation(t *testing.T) {
	svc, repo, teardown := setupService(t)
	defer teardown()

	ctx := context.Background()

	leader := signUp(t, svc, "leader@x.com")
	invitee := signUp(t, svc, "b@x.com")
	project, err := svc.CreateProject(ctx, leader.ID, "koly")
	require.NoError(t, err)

	t.Run("Invite_NonLeaderFails", func(t *testing.T) {
		_, err := svc.InviteUser(ctx, invitee.ID, project.ID, "leader@x.com")

		require.ErrorIs(t, err, domain.ErrNotLeader)
	})

	t.Run("Invite_UnknownEmail", func(t *testing.T) {
		_, err := svc.InviteUser(ctx, leader.ID, project.ID, "ghost@x.com")

		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("Invite_ThenDuplicateFails", func(t *testing.T) {
		invitation, err := svc.InviteUser(ctx, leader.ID, project.ID, "b@x.com")
		require.NoError(t, err)
		assert.Equal(t, domain.InvitationStatusPending, invitation.Status)
		assert.Equal(t, invitee.ID, invitation.InviteeID)

		_, err = svc.InviteUser(ctx, leader.ID, project.ID, "b@x.com")
		require.ErrorIs(t, err, domain.ErrInvitationSent)
	})

	t.Run("Accept_AddsParticipantAndConsumesInvitation", func(t *testing.T) {
		require.NoError(t, svc.AcceptInvitation(ctx, invitee.ID, project.ID))

		isParticipant, err := repo.IsParticipant(ctx, project.ID, invitee.ID)
		require.NoError(t, err)
		assert.True(t, isParticipant)

		_, err = repo.FindInvitation(ctx, project.ID, invitee.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Invite_ExistingParticipant", func(t *testing.T) {
		_, err := svc.InviteUser(ctx, leader.ID, project.ID, "b@x.com")

		require.ErrorIs(t, err, domain.ErrAlreadyParticipant)
	})

	t.Run("RejectThenReinvite", func(t *testing.T) {
		third := signUp(t, svc, "c@x.com")

		invitation, err := svc.InviteUser(ctx, leader.ID, project.ID, "c@x.com")
		require.NoError(t, err)

		require.NoError(t, svc.RejectInvitation(ctx, third.ID, invitation.ID))

		_, err = svc.InviteUser(ctx, leader.ID, project.ID, "c@x.com")
		require.NoError(t, err, "a resolved pair can be invited again")
	})

	t.Run("Reject_ScopedToInvitee", func(t *testing.T) {
		fourth := signUp(t, svc, "d@x.com")
		invitation, err := svc.InviteUser(ctx, leader.ID, project.ID, "d@x.com")
		require.NoError(t, err)

		err = svc.RejectInvitation(ctx, leader.ID, invitation.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)

		received, err := svc.ListReceivedInvitations(ctx, fourth.ID)
		require.NoError(t, err)
		require.Len(t, received, 1)
		assert.Equal(t, invitation.ID, received[0].ID)
		assert.Equal(t, "koly", received[0].ProjectName)
	})

	t.Run("Accept_WithoutInvitation", func(t *testing.T) {
		stranger := signUp(t, svc, "e@x.com")

		err := svc.AcceptInvitation(ctx, stranger.ID, project.ID)

		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
