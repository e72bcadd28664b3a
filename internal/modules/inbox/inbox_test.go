package inbox_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/modules/inbox"
	"github.com/ahmetcoskunkizilkaya/monjez-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func send(t *testing.T, h *testutil.Harness, token string, to uint, text string) uint {
	t.Helper()
	resp := h.Do(t, http.MethodPost, "/api/inbox/send", map[string]interface{}{
		"receiver_id": to, "subject": "hello", "message": text,
	}, token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out struct {
		Success bool `json:"success"`
		ID      uint `json:"id"`
	}
	testutil.Decode(t, resp, &out)
	require.True(t, out.Success)
	return out.ID
}

func list(t *testing.T, h *testutil.Harness, token string) []inbox.Message {
	t.Helper()
	resp := h.Do(t, http.MethodGet, "/api/inbox", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rows []inbox.Message
	testutil.Decode(t, resp, &rows)
	return rows
}

func TestInboxVisibility(t *testing.T) {
	h := testutil.New(t)
	admin := h.CreateUser(t, "admin@example.com", models.RoleAdmin)
	alice := h.CreateUser(t, "alice@example.com", models.RoleUser)
	bob := h.CreateUser(t, "bob@example.com", models.RoleUser)

	send(t, h, h.Token(t, admin), alice.ID, "for alice")
	send(t, h, h.Token(t, alice), bob.ID, "for bob")

	mine := list(t, h, h.Token(t, alice))
	require.Len(t, mine, 1)
	assert.Equal(t, "for alice", mine[0].Message)
	assert.Equal(t, admin.ID, mine[0].SenderID)
	require.NotNil(t, mine[0].SenderName)
	assert.Equal(t, "Test", *mine[0].SenderName)

	assert.Len(t, list(t, h, h.Token(t, admin)), 2)
	assert.Empty(t, list(t, h, h.Token(t, h.CreateUser(t, "carol@example.com", models.RoleUser))))
}

func TestInboxSendValidation(t *testing.T) {
	h := testutil.New(t)
	alice := h.CreateUser(t, "alice@example.com", models.RoleUser)
	token := h.Token(t, alice)

	resp := h.Do(t, http.MethodPost, "/api/inbox/send", map[string]interface{}{"receiver_id": alice.ID}, token)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.Do(t, http.MethodPost, "/api/inbox/send", map[string]interface{}{"receiver_id": 9999, "message": "hi"}, token)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = h.Do(t, http.MethodPost, "/api/inbox/send", map[string]interface{}{"receiver_id": alice.ID, "message": "hi"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestInboxMutationsAreOwnerScoped(t *testing.T) {
	h := testutil.New(t)
	alice := h.CreateUser(t, "alice@example.com", models.RoleUser)
	bob := h.CreateUser(t, "bob@example.com", models.RoleUser)
	aliceToken, bobToken := h.Token(t, alice), h.Token(t, bob)

	id := send(t, h, bobToken, alice.ID, "private")

	resp := h.Do(t, http.MethodPut, fmt.Sprintf("/api/inbox/read/%d", id), nil, bobToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = h.Do(t, http.MethodDelete, fmt.Sprintf("/api/inbox/delete/%d", id), nil, bobToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var msg models.InboxMessage
	require.NoError(t, h.DB.First(&msg, id).Error)
	assert.False(t, msg.IsRead)

	resp = h.Do(t, http.MethodPut, fmt.Sprintf("/api/inbox/read/%d", id), nil, aliceToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = h.Do(t, http.MethodPut, fmt.Sprintf("/api/inbox/read/%d", id), nil, aliceToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var read models.InboxMessage
	require.NoError(t, h.DB.First(&read, id).Error)
	assert.True(t, read.IsRead)

	resp = h.Do(t, http.MethodDelete, fmt.Sprintf("/api/inbox/delete/%d", id), nil, aliceToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = h.Do(t, http.MethodDelete, fmt.Sprintf("/api/inbox/delete/%d", id), nil, aliceToken)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
