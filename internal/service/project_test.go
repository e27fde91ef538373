package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
)

func TestService_Project(t *testing.T) {
	svc, repo, teardown := setupService(t)
	defer teardown()

	ctx := context.Background()

	t.Run("CreateProject_OwnerIsSoleLeaderAndParticipant", func(t *testing.T) {
		owner := signUp(t, svc, "owner@x.com")

		project, err := svc.CreateProject(ctx, owner.ID, "koly")

		require.NoError(t, err)
		isParticipant, err := repo.IsParticipant(ctx, project.ID, owner.ID)
		require.NoError(t, err)
		assert.True(t, isParticipant)
		isLeader, err := repo.IsLeader(ctx, project.ID, owner.ID)
		require.NoError(t, err)
		assert.True(t, isLeader)
		count, err := repo.CountLeaders(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("RenameProject_NonLeaderFails", func(t *testing.T) {
		owner := signUp(t, svc, "rn-owner@x.com")
		outsider := signUp(t, svc, "rn-outsider@x.com")
		project, err := svc.CreateProject(ctx, owner.ID, "rename-me")
		require.NoError(t, err)

		_, err = svc.RenameProject(ctx, outsider.ID, project.ID, "stolen")

		require.ErrorIs(t, err, domain.ErrNotLeader)
	})

	t.Run("RemoveProject_LeaderOnly", func(t *testing.T) {
		owner := signUp(t, svc, "rm-owner@x.com")
		outsider := signUp(t, svc, "rm-outsider@x.com")
		project, err := svc.CreateProject(ctx, owner.ID, "remove-me")
		require.NoError(t, err)

		err = svc.RemoveProject(ctx, outsider.ID, project.ID)
		require.ErrorIs(t, err, domain.ErrNotLeader)

		err = svc.RemoveProject(ctx, owner.ID, project.ID)
		require.NoError(t, err)
	})

	t.Run("PromoteLeader_RequiresParticipant", func(t *testing.T) {
		owner := signUp(t, svc, "pl-owner@x.com")
		outsider := signUp(t, svc, "pl-outsider@x.com")
		project, err := svc.CreateProject(ctx, owner.ID, "promote")
		require.NoError(t, err)

		err = svc.PromoteLeader(ctx, owner.ID, project.ID, outsider.ID)

		require.ErrorIs(t, err, domain.ErrNotParticipant)
	})

	t.Run("PromoteLeader_AlreadyLeader", func(t *testing.T) {
		owner := signUp(t, svc, "al-owner@x.com")
		project, err := svc.CreateProject(ctx, owner.ID, "already-leader")
		require.NoError(t, err)

		err = svc.PromoteLeader(ctx, owner.ID, project.ID, owner.ID)

		require.ErrorIs(t, err, domain.ErrAlreadyLeader)
	})

	t.Run("RemoveParticipant_LastLeaderGuard", func(t *testing.T) {
		first := signUp(t, svc, "lead1@x.com")
		second := signUp(t, svc, "lead2@x.com")
		project, err := svc.CreateProject(ctx, first.ID, "leaders")
		require.NoError(t, err)
		require.NoError(t, repo.ConnectParticipant(ctx, project.ID, second.ID))
		require.NoError(t, svc.PromoteLeader(ctx, first.ID, project.ID, second.ID))

		err = svc.RemoveParticipant(ctx, first.ID, project.ID, second.ID)
		require.NoError(t, err)
		count, err := repo.CountLeaders(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		err = svc.RemoveParticipant(ctx, first.ID, project.ID, first.ID)
		require.ErrorIs(t, err, domain.ErrLastLeader)

		isParticipant, err := repo.IsParticipant(ctx, project.ID, first.ID)
		require.NoError(t, err)
		assert.True(t, isParticipant, "a failed removal must not disconnect the participant")
	})

	t.Run("RemoveParticipant_CallerMustBeLeader", func(t *testing.T) {
		owner := signUp(t, svc, "rp-owner@x.com")
		member := signUp(t, svc, "rp-member@x.com")
		project, err := svc.CreateProject(ctx, owner.ID, "rp")
		require.NoError(t, err)
		require.NoError(t, repo.ConnectParticipant(ctx, project.ID, member.ID))

		err = svc.RemoveParticipant(ctx, member.ID, project.ID, owner.ID)

		require.ErrorIs(t, err, domain.ErrNotLeader)
	})

	t.Run("ListParticipants_RequiresMembership", func(t *testing.T) {
		owner := signUp(t, svc, "lp-owner@x.com")
		outsider := signUp(t, svc, "lp-outsider@x.com")
		project, err := svc.CreateProject(ctx, owner.ID, "lp")
		require.NoError(t, err)

		_, err = svc.ListParticipants(ctx, outsider.ID, project.ID)
		require.ErrorIs(t, err, domain.ErrNotParticipant)

		members, err := svc.ListParticipants(ctx, owner.ID, project.ID)
		require.NoError(t, err)
		require.Len(t, members, 1)
		assert.Equal(t, owner.ID, members[0].ID)
	})
}
