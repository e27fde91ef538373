package postgres

import (
	"context"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
)

const projectColumns = `id, name, created_at, updated_at`

func (r *repositoryImpl) CreateProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	q := `INSERT INTO projects (id, name) VALUES ($1, $2) RETURNING ` + projectColumns
	var p domain.Project
	err := r.getQuerier(ctx).QueryRow(ctx, q, project.ID, project.Name).
		Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	return p, r.handleError(err)
}

func (r *repositoryImpl) GetProject(ctx context.Context, id string) (domain.Project, error) {
	return r.getProjectInternal(ctx, id, false)
}

func (r *repositoryImpl) GetProjectForUpdate(ctx context.Context, id string) (domain.Project, error) {
	return r.getProjectInternal(ctx, id, true)
}

func (r *repositoryImpl) getProjectInternal(ctx context.Context, id string, forUpdate bool) (domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	if forUpdate {
		q += ` FOR UPDATE`
	}
	var p domain.Project
	err := r.getQuerier(ctx).QueryRow(ctx, q, id).
		Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	return p, r.handleError(err)
}

func (r *repositoryImpl) ListProjects(ctx context.Context) ([]domain.Project, error) {
	q := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at`
	return r.queryProjects(ctx, q)
}

func (r *repositoryImpl) ListLedProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	q := `SELECT p.id, p.name, p.created_at, p.updated_at
	      FROM projects p
	      JOIN project_leaders l ON p.id = l.project_id
	      WHERE l.user_id = $1
	      ORDER BY p.created_at`
	return r.queryProjects(ctx, q, userID)
}

func (r *repositoryImpl) ListJoinedProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	q := `SELECT p.id, p.name, p.created_at, p.updated_at
	      FROM projects p
	      JOIN project_participants m ON p.id = m.project_id
	      WHERE m.user_id = $1
	      ORDER BY p.created_at`
	return r.queryProjects(ctx, q, userID)
}

func (r *repositoryImpl) queryProjects(ctx context.Context, q string, args ...any) ([]domain.Project, error) {
	rows, err := r.getQuerier(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, r.handleError(err)
	}
	defer rows.Close()
	projects := make([]domain.Project, 0)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, r.handleError(err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}

func (r *repositoryImpl) RenameProject(ctx context.Context, id, name string) (domain.Project, error) {
	q := `UPDATE projects SET name = $1, updated_at = now() WHERE id = $2 RETURNING ` + projectColumns
	var p domain.Project
	err := r.getQuerier(ctx).QueryRow(ctx, q, name, id).
		Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	return p, r.handleError(err)
}

func (r *repositoryImpl) DeleteProject(ctx context.Context, id string) error {
	q := `DELETE FROM projects WHERE id = $1`
	cmdTag, err := r.getQuerier(ctx).Exec(ctx, q, id)
	if err != nil {
		return r.handleError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repositoryImpl) IsParticipant(ctx context.Context, projectID, userID string) (bool, error) {
	q := `SELECT EXISTS(SELECT 1 FROM project_participants WHERE project_id = $1 AND user_id = $2)`
	var exists bool
	err := r.getQuerier(ctx).QueryRow(ctx, q, projectID, userID).Scan(&exists)
	return exists, r.handleError(err)
}

func (r *repositoryImpl) IsLeader(ctx context.Context, projectID, userID string) (bool, error) {
	q := `SELECT EXISTS(SELECT 1 FROM project_leaders WHERE project_id = $1 AND user_id = $2)`
	var exists bool
	err := r.getQuerier(ctx).QueryRow(ctx, q, projectID, userID).Scan(&exists)
	return exists, r.handleError(err)
}

func (r *repositoryImpl) ConnectParticipant(ctx context.Context, projectID, userID string) error {
	q := `INSERT INTO project_participants (project_id, user_id) VALUES ($1, $2)`
	_, err := r.getQuerier(ctx).Exec(ctx, q, projectID, userID)
	return r.handleError(err)
}

// DisconnectParticipant removes the membership row; the leadership edge, if
// any, goes with it through the composite foreign key cascade.
func (r *repositoryImpl) DisconnectParticipant(ctx context.Context, projectID, userID string) error {
	q := `DELETE FROM project_participants WHERE project_id = $1 AND user_id = $2`
	cmdTag, err := r.getQuerier(ctx).Exec(ctx, q, projectID, userID)
	if err != nil {
		return r.handleError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotParticipant
	}
	return nil
}

func (r *repositoryImpl) AddLeader(ctx context.Context, projectID, userID string) error {
	q := `INSERT INTO project_leaders (project_id, user_id) VALUES ($1, $2)`
	_, err := r.getQuerier(ctx).Exec(ctx, q, projectID, userID)
	return r.handleError(err)
}

func (r *repositoryImpl) CountLeaders(ctx context.Context, projectID string) (int, error) {
	q := `SELECT COUNT(*) FROM project_leaders WHERE project_id = $1`
	var count int
	err := r.getQuerier(ctx).QueryRow(ctx, q, projectID).Scan(&count)
	return count, r.handleError(err)
}

func (r *repositoryImpl) ListParticipants(ctx context.Context, projectID string) ([]domain.Member, error) {
	q := `SELECT u.id, u.name, u.surname
	      FROM users u
	      JOIN project_participants m ON u.id = m.user_id
	      WHERE m.project_id = $1
	      ORDER BY m.joined_at`
	return r.queryMembers(ctx, q, projectID)
}

func (r *repositoryImpl) ListLeaders(ctx context.Context, projectID string) ([]domain.Member, error) {
	q := `SELECT u.id, u.name, u.surname
	      FROM users u
	      JOIN project_leaders l ON u.id = l.user_id
	      WHERE l.project_id = $1
	      ORDER BY u.id`
	return r.queryMembers(ctx, q, projectID)
}

func (r *repositoryImpl) queryMembers(ctx context.Context, q string, args ...any) ([]domain.Member, error) {
	rows, err := r.getQuerier(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, r.handleError(err)
	}
	defer rows.Close()
	members := make([]domain.Member, 0)
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Surname); err != nil {
			return nil, r.handleError(err)
		}
		members = append(members, m)
	}
	return members, nil
}
