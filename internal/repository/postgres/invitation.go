package postgres

import (
	"context"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
)

const invitationColumns = `id, project_id, inviter_id, invitee_id, status, created_at`

func (r *repositoryImpl) CreateInvitation(ctx context.Context, invitation domain.Invitation) (domain.Invitation, error) {
	q := `INSERT INTO invitations (id, project_id, inviter_id, invitee_id, status)
	      VALUES ($1, $2, $3, $4, $5)
	      RETURNING ` + invitationColumns
	var inv domain.Invitation
	err := r.getQuerier(ctx).QueryRow(ctx, q,
		invitation.ID, invitation.ProjectID, invitation.InviterID, invitation.InviteeID, invitation.Status).
		Scan(&inv.ID, &inv.ProjectID, &inv.InviterID, &inv.InviteeID, &inv.Status, &inv.CreatedAt)
	return inv, r.handleError(err)
}

func (r *repositoryImpl) FindInvitation(ctx context.Context, projectID, inviteeID string) (domain.Invitation, error) {
	q := `SELECT ` + invitationColumns + ` FROM invitations WHERE project_id = $1 AND invitee_id = $2`
	var inv domain.Invitation
	err := r.getQuerier(ctx).QueryRow(ctx, q, projectID, inviteeID).
		Scan(&inv.ID, &inv.ProjectID, &inv.InviterID, &inv.InviteeID, &inv.Status, &inv.CreatedAt)
	return inv, r.handleError(err)
}

// DeleteInvitation is scoped to the invitee so one user cannot resolve
// another user's invitation.
func (r *repositoryImpl) DeleteInvitation(ctx context.Context, invitationID, inviteeID string) error {
	q := `DELETE FROM invitations WHERE id = $1 AND invitee_id = $2`
	cmdTag, err := r.getQuerier(ctx).Exec(ctx, q, invitationID, inviteeID)
	if err != nil {
		return r.handleError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repositoryImpl) ListReceivedInvitations(ctx context.Context, userID string) ([]domain.ReceivedInvitation, error) {
	q := `SELECT i.id, p.id, p.name, u.name, u.surname
	      FROM invitations i
	      JOIN projects p ON p.id = i.project_id
	      JOIN users u ON u.id = i.inviter_id
	      WHERE i.invitee_id = $1
	      ORDER BY i.created_at`
	rows, err := r.getQuerier(ctx).Query(ctx, q, userID)
	if err != nil {
		return nil, r.handleError(err)
	}
	defer rows.Close()
	invitations := make([]domain.ReceivedInvitation, 0)
	for rows.Next() {
		var inv domain.ReceivedInvitation
		if err := rows.Scan(&inv.ID, &inv.ProjectID, &inv.ProjectName, &inv.InviterName, &inv.InviterSurname); err != nil {
			return nil, r.handleError(err)
		}
		invitations = append(invitations, inv)
	}
	return invitations, nil
}
