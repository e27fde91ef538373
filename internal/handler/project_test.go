package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Project(t *testing.T) {
	r, _, teardown := setupIntegration(t)
	defer teardown()

	ownerToken, ownerID := register(t, r, "Owner", "owner@x.com")
	memberToken, memberID := register(t, r, "Member", "member@x.com")

	projectID := createProject(t, r, ownerToken, "koly")

	t.Run("CreateProject_OwnerIsSoleMember", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/projects/"+projectID+"/participants", ownerToken, "")

		require.Equal(t, http.StatusOK, w.Code)
		participants := decodeBody(t, w)["data"].(map[string]any)["participants"].([]any)
		require.Len(t, participants, 1)
		assert.Equal(t, ownerID, participants[0].(map[string]any)["user_id"])

		w = doJSON(t, r, http.MethodGet, "/projects/"+projectID+"/leaders", ownerToken, "")
		require.Equal(t, http.StatusOK, w.Code)
		leaders := decodeBody(t, w)["data"].(map[string]any)["leaders"].([]any)
		require.Len(t, leaders, 1)
	})

	t.Run("Rename_NonLeader", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/projects/"+projectID, memberToken, `{"project_name":"stolen"}`)

		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "User is not the leader of the project", decodeBody(t, w)["message"])
	})

	t.Run("Rename_Leader", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/projects/"+projectID, ownerToken, `{"project_name":"koly-v2"}`)

		require.Equal(t, http.StatusOK, w.Code)
		project := decodeBody(t, w)["data"].(map[string]any)["project"].(map[string]any)
		assert.Equal(t, "koly-v2", project["project_name"])
	})

	t.Run("MembershipListing_NonParticipant", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/projects/"+projectID+"/participants", memberToken, "")

		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "User is not a participant of the project", decodeBody(t, w)["message"])
	})

	t.Run("LastLeaderCannotBeRemoved", func(t *testing.T) {
		// bring the member in and promote them, then walk leadership back down
		w := doJSON(t, r, http.MethodPost, "/projects/"+projectID+"/invitations", ownerToken, `{"email":"member@x.com"}`)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		w = doJSON(t, r, http.MethodPost, "/projects/"+projectID+"/invitations/accept", memberToken, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(t, r, http.MethodPost, fmt.Sprintf("/projects/%s/leaders/%s", projectID, memberID), ownerToken, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/projects/%s/participants/%s", projectID, memberID), ownerToken, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/projects/%s/participants/%s", projectID, ownerID), ownerToken, "")
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t,
			"Project leader cannot leave the project unless they add a new project leader",
			decodeBody(t, w)["message"])
	})

	t.Run("ListJoined", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/projects/joined", ownerToken, "")

		require.Equal(t, http.StatusOK, w.Code)
		projects := decodeBody(t, w)["data"].(map[string]any)["projects"].([]any)
		require.Len(t, projects, 1)
	})

	t.Run("RemoveProject_LeaderOnly", func(t *testing.T) {
		w := doJSON(t, r, http.MethodDelete, "/projects/"+projectID, memberToken, "")
		require.Equal(t, http.StatusConflict, w.Code)

		w = doJSON(t, r, http.MethodDelete, "/projects/"+projectID, ownerToken, "")
		require.Equal(t, http.StatusOK, w.Code)
	})
}
