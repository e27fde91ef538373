package domain

import "errors"

// Error messages are part of the API contract and rendered to clients verbatim.
var (
	ErrNotFound = errors.New("resource not found")
	ErrConflict = errors.New("resource already exists or conflict state")

	ErrUserNotFound       = errors.New("The user does not exist")
	ErrEmailTaken         = errors.New("Email is already taken")
	ErrInvalidCredentials = errors.New("Incorrect email or password")

	ErrNotParticipant     = errors.New("User is not a participant of the project")
	ErrNotLeader          = errors.New("User is not the leader of the project")
	ErrAlreadyParticipant = errors.New("User is already a participant of the project")
	ErrAlreadyLeader      = errors.New("User is already a leader of the project")
	ErrLastLeader         = errors.New("Project leader cannot leave the project unless they add a new project leader")

	ErrIssueAdopted   = errors.New("Issue is already adopted")
	ErrIssueCompleted = errors.New("Issue is already completed")
	ErrNotReporter    = errors.New("Issue can only be processed by its reporter")
	ErrNotAdopter     = errors.New("Issue can only be processed by its adopter")

	ErrInvitationSent = errors.New("Invitation is already sent to the user")
)
