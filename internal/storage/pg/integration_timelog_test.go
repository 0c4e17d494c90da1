package pg

import (
	"testing"

	"github.com/iqtrace/iqtrace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveTimelog(t *testing.T) {
	require.NoError(t, storage.CreateRoom(domain.Room{Number: 501}))

	log, err := storage.SaveTimelog(domain.Timelog{UserEmail: "visitor@example.com", RoomNumber: 501})
	require.NoError(t, err)
	assert.Greater(t, log.Id, int64(0))
	assert.Equal(t, "visitor@example.com", log.UserEmail)
	assert.Equal(t, int64(501), log.RoomNumber)
	assert.False(t, log.Timestamp.IsZero(), "timestamp is assigned by the database")
}

func TestTimelogsByRoom(t *testing.T) {
	require.NoError(t, storage.CreateRoom(domain.Room{Number: 502}))

	first, err := storage.SaveTimelog(domain.Timelog{UserEmail: "a@example.com", RoomNumber: 502})
	require.NoError(t, err)
	second, err := storage.SaveTimelog(domain.Timelog{UserEmail: "b@example.com", RoomNumber: 502})
	require.NoError(t, err)

	logs, err := storage.TimelogsByRoom(502)
	require.NoError(t, err)
	require.Len(t, logs, 2)

	// Newest first.
	assert.Equal(t, second.Id, logs[0].Id)
	assert.Equal(t, first.Id, logs[1].Id)

	t.Run("history survives room deletion", func(t *testing.T) {
		require.NoError(t, storage.DeleteRoom(502))

		logs, err := storage.TimelogsByRoom(502)
		require.NoError(t, err)
		assert.Len(t, logs, 2)
	})

	t.Run("empty room", func(t *testing.T) {
		logs, err := storage.TimelogsByRoom(599)
		require.NoError(t, err)
		assert.Empty(t, logs)
	})
}
