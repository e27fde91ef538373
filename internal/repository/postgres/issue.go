package postgres

import (
	"context"
	"strings"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
)

const issueColumns = `id, project_id, title, description, type, status, reported_by, adopted_by, created_at, updated_at`

func (r *repositoryImpl) CreateIssue(ctx context.Context, issue domain.Issue) (domain.Issue, error) {
	q := `INSERT INTO issues (id, project_id, title, description, type, status, reported_by)
	      VALUES ($1, $2, $3, $4, $5, $6, $7)
	      RETURNING ` + issueColumns
	var i domain.Issue
	err := r.getQuerier(ctx).QueryRow(ctx, q,
		issue.ID, issue.ProjectID, issue.Title, issue.Description, issue.Type, issue.Status, issue.ReportedByID).
		Scan(&i.ID, &i.ProjectID, &i.Title, &i.Description, &i.Type, &i.Status, &i.ReportedByID, &i.AdoptedByID, &i.CreatedAt, &i.UpdatedAt)
	return i, r.handleError(err)
}

func (r *repositoryImpl) GetIssue(ctx context.Context, id string) (domain.Issue, error) {
	return r.getIssueInternal(ctx, id, false)
}

func (r *repositoryImpl) GetIssueForUpdate(ctx context.Context, id string) (domain.Issue, error) {
	return r.getIssueInternal(ctx, id, true)
}

func (r *repositoryImpl) getIssueInternal(ctx context.Context, id string, forUpdate bool) (domain.Issue, error) {
	q := `SELECT ` + issueColumns + ` FROM issues WHERE id = $1`
	if forUpdate {
		q += ` FOR UPDATE`
	}
	var i domain.Issue
	err := r.getQuerier(ctx).QueryRow(ctx, q, id).
		Scan(&i.ID, &i.ProjectID, &i.Title, &i.Description, &i.Type, &i.Status, &i.ReportedByID, &i.AdoptedByID, &i.CreatedAt, &i.UpdatedAt)
	return i, r.handleError(err)
}

func (r *repositoryImpl) UpdateIssueAdoption(ctx context.Context, id string, adoptedBy *string, status domain.IssueStatus) (domain.Issue, error) {
	q := `UPDATE issues SET adopted_by = $1, status = $2, updated_at = now() WHERE id = $3 RETURNING ` + issueColumns
	var i domain.Issue
	err := r.getQuerier(ctx).QueryRow(ctx, q, adoptedBy, status, id).
		Scan(&i.ID, &i.ProjectID, &i.Title, &i.Description, &i.Type, &i.Status, &i.ReportedByID, &i.AdoptedByID, &i.CreatedAt, &i.UpdatedAt)
	return i, r.handleError(err)
}

func (r *repositoryImpl) CompleteIssue(ctx context.Context, id string) (domain.Issue, error) {
	q := `UPDATE issues SET status = $1, updated_at = now() WHERE id = $2 RETURNING ` + issueColumns
	var i domain.Issue
	err := r.getQuerier(ctx).QueryRow(ctx, q, domain.IssueStatusCompleted, id).
		Scan(&i.ID, &i.ProjectID, &i.Title, &i.Description, &i.Type, &i.Status, &i.ReportedByID, &i.AdoptedByID, &i.CreatedAt, &i.UpdatedAt)
	return i, r.handleError(err)
}

func (r *repositoryImpl) DeleteIssue(ctx context.Context, id string) error {
	q := `DELETE FROM issues WHERE id = $1`
	cmdTag, err := r.getQuerier(ctx).Exec(ctx, q, id)
	if err != nil {
		return r.handleError(err)
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repositoryImpl) ListProjectIssues(ctx context.Context, projectID string) ([]domain.Issue, error) {
	q := `SELECT ` + issueColumns + ` FROM issues WHERE project_id = $1 ORDER BY created_at`
	return r.queryIssues(ctx, q, projectID)
}

// escapeLikePattern neutralizes LIKE wildcards so the query matches as a
// literal substring.
func escapeLikePattern(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *repositoryImpl) SearchIssues(ctx context.Context, projectID, query string) ([]domain.Issue, error) {
	q := `SELECT ` + issueColumns + ` FROM issues
	      WHERE project_id = $1 AND title ILIKE '%' || $2 || '%' ESCAPE '\'
	      ORDER BY created_at`
	return r.queryIssues(ctx, q, projectID, escapeLikePattern(query))
}

func (r *repositoryImpl) queryIssues(ctx context.Context, q string, args ...any) ([]domain.Issue, error) {
	rows, err := r.getQuerier(ctx).Query(ctx, q, args...)
	if err != nil {
		return nil, r.handleError(err)
	}
	defer rows.Close()
	issues := make([]domain.Issue, 0)
	for rows.Next() {
		var i domain.Issue
		if err := rows.Scan(&i.ID, &i.ProjectID, &i.Title, &i.Description, &i.Type, &i.Status, &i.ReportedByID, &i.AdoptedByID, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, r.handleError(err)
		}
		issues = append(issues, i)
	}
	return issues, nil
}
