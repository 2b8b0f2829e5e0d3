package queue

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEvent(t *testing.T) {
	line := FormatEvent(NotificationEvent{
		Entity: "venue", Action: "create", Status: "success", EntityID: 3,
		Message: "Venue The Musical Hop was successfully listed!", At: "2021-06-01T12:00:00Z",
	})
	assert.Equal(t, `[2021-06-01T12:00:00Z] venue create success | id=3 | "Venue The Musical Hop was successfully listed!"`+"\n", line)
}

func TestAppendEvent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "notifications.log")

	for _, ev := range []NotificationEvent{
		{Entity: "artist", Action: "delete", Status: "conflict", EntityID: 2, Message: "Artist 2 has shows and cannot be deleted.", At: "t1"},
		{Entity: "show", Action: "create", Status: "write_failed", Message: "An error occurred. Show could not be listed.", At: "t2"},
	} {
		body, err := json.Marshal(ev)
		require.NoError(t, err)
		require.NoError(t, appendEvent(path, body))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		`[t1] artist delete conflict | id=2 | "Artist 2 has shows and cannot be deleted."`+"\n"+
			`[t2] show create write_failed | id=0 | "An error occurred. Show could not be listed."`+"\n",
		string(data))
}

func TestAppendEventRejectsBadPayload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "n.log")
	assert.Error(t, appendEvent(path, []byte("{not json")))
	assert.Error(t, appendEvent(path, []byte(`{"status":"success"}`)))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
