package repository

import (
	"context"

	"github.com/mustafamengutay/koly-sub000/internal/domain"
)

type Repository interface {
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	CreateProject(ctx context.Context, project domain.Project) (domain.Project, error)
	GetProject(ctx context.Context, id string) (domain.Project, error)
	GetProjectForUpdate(ctx context.Context, id string) (domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListLedProjects(ctx context.Context, userID string) ([]domain.Project, error)
	ListJoinedProjects(ctx context.Context, userID string) ([]domain.Project, error)
	RenameProject(ctx context.Context, id, name string) (domain.Project, error)
	DeleteProject(ctx context.Context, id string) error

	IsParticipant(ctx context.Context, projectID, userID string) (bool, error)
	IsLeader(ctx context.Context, projectID, userID string) (bool, error)
	ConnectParticipant(ctx context.Context, projectID, userID string) error
	DisconnectParticipant(ctx context.Context, projectID, userID string) error
	AddLeader(ctx context.Context, projectID, userID string) error
	CountLeaders(ctx context.Context, projectID string) (int, error)
	ListParticipants(ctx context.Context, projectID string) ([]domain.Member, error)
	ListLeaders(ctx context.Context, projectID string) ([]domain.Member, error)

	CreateIssue(ctx context.Context, issue domain.Issue) (domain.Issue, error)
	GetIssue(ctx context.Context, id string) (domain.Issue, error)
	GetIssueForUpdate(ctx context.Context, id string) (domain.Issue, error)
	UpdateIssueAdoption(ctx context.Context, id string, adoptedBy *string, status domain.IssueStatus) (domain.Issue, error)
	CompleteIssue(ctx context.Context, id string) (domain.Issue, error)
	DeleteIssue(ctx context.Context, id string) error
	ListProjectIssues(ctx context.Context, projectID string) ([]domain.Issue, error)
	SearchIssues(ctx context.Context, projectID, query string) ([]domain.Issue, error)

	CreateInvitation(ctx context.Context, invitation domain.Invitation) (domain.Invitation, error)
	FindInvitation(ctx context.Context, projectID, inviteeID string) (domain.Invitation, error)
	DeleteInvitation(ctx context.Context, invitationID, inviteeID string) error
	ListReceivedInvitations(ctx context.Context, userID string) ([]domain.ReceivedInvitation, error)
}

type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
