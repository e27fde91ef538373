package domain

import "time"

type User struct {
	ID           string    `json:"user_id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Member is the projection of a user exposed in membership listings.
type Member struct {
	ID      string `json:"user_id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
}

type Project struct {
	ID        string    `json:"project_id"`
	Name      string    `json:"project_name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type IssueType string

const (
	IssueTypeBug         IssueType = "bug"
	IssueTypeFeature     IssueType = "feature"
	IssueTypeImprovement IssueType = "improvement"
)

type IssueStatus string

const (
	IssueStatusOpen       IssueStatus = "open"
	IssueStatusInProgress IssueStatus = "in-progress"
	IssueStatusCompleted  IssueStatus = "completed"
)

type Issue struct {
	ID           string      `json:"issue_id"`
	ProjectID    string      `json:"project_id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Type         IssueType   `json:"type"`
	Status       IssueStatus `json:"status"`
	ReportedByID string      `json:"reported_by"`
	AdoptedByID  *string     `json:"adopted_by"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

const InvitationStatusPending = "pending"

type Invitation struct {
	ID        string    `json:"invitation_id"`
	ProjectID string    `json:"project_id"`
	InviterID string    `json:"inviter_id"`
	InviteeID string    `json:"invitee_id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReceivedInvitation joins inviter and project details for the invitee's inbox.
type ReceivedInvitation struct {
	ID             string `json:"invitation_id"`
	ProjectID      string `json:"project_id"`
	ProjectName    string `json:"project_name"`
	InviterName    string `json:"inviter_name"`
	InviterSurname string `json:"inviter_surname"`
}
