package log

import (
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDB points the logger at a database inside a temp directory.
func useTempDB(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	origDBPath := dbPathFunc
	dbPathFunc = func() string {
		return filepath.Join(tmpDir, "log", "test.db")
	}
	t.Cleanup(func() {
		Close()
		dbPathFunc = origDBPath
	})
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", DBPath())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestLogger(t *testing.T) {
	useTempDB(t)

	t.Run("open and close", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		assert.FileExists(t, DBPath())
	})

	t.Run("log entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		SetProject("/work/clinic")

		Log(Entry{
			Source:  "check:bool",
			Author:  "test-user",
			Action:  "check",
			Subject: "boolean",
			Success: true,
		})

		db := openDB(t)

		var source, action, subject, project string
		var success int
		err := db.QueryRow("SELECT source, action, subject, project, success FROM log ORDER BY id DESC LIMIT 1").
			Scan(&source, &action, &subject, &project, &success)
		require.NoError(t, err)
		assert.Equal(t, "check:bool", source)
		assert.Equal(t, "check", action)
		assert.Equal(t, "boolean", subject)
		assert.Equal(t, hash("/work/clinic"), project)
		assert.Equal(t, 1, success)
	})

	t.Run("log error entry", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Log(Entry{
			Source:  "qkidney:validate",
			Action:  "validate",
			Success: false,
			Error:   "invalid qkidney arguments",
		})

		db := openDB(t)

		var success int
		var errMsg string
		err := db.QueryRow("SELECT success, error FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "invalid qkidney arguments", errMsg)
	})

	t.Run("log without logger is noop", func(t *testing.T) {
		Close()

		assert.NotPanics(t, func() {
			Log(Entry{Source: "test:cmd", Action: "test", Success: true})
		})
	})

	t.Run("open is idempotent", func(t *testing.T) {
		require.NoError(t, Open())
		require.NoError(t, Open())
		Close()
	})
}

func TestBuilder(t *testing.T) {
	useTempDB(t)

	t.Run("success with detail", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("strl:cat", "append").
			Author("test-user").
			Subject("size=5").
			Detail("length", 6).
			Detail("truncated", true).
			Write(nil)

		db := openDB(t)

		var source, author, subject, detail string
		var start, end int64
		var success int
		err := db.QueryRow("SELECT source, author, subject, detail, start, end, success FROM log ORDER BY id DESC LIMIT 1").
			Scan(&source, &author, &subject, &detail, &start, &end, &success)
		require.NoError(t, err)
		assert.Equal(t, "strl:cat", source)
		assert.Equal(t, "test-user", author)
		assert.Equal(t, "size=5", subject)
		assert.Contains(t, detail, `"truncated":true`)
		assert.Contains(t, detail, `"length":6`)
		assert.LessOrEqual(t, start, end)
		assert.Equal(t, 1, success)
	})

	t.Run("failure", func(t *testing.T) {
		require.NoError(t, Open())
		defer Close()

		Event("core:config", "set").Write(errors.New("unknown config key"))

		db := openDB(t)

		var success int
		var errMsg string
		var author sql.NullString
		err := db.QueryRow("SELECT success, error, author FROM log ORDER BY id DESC LIMIT 1").
			Scan(&success, &errMsg, &author)
		require.NoError(t, err)
		assert.Equal(t, 0, success)
		assert.Equal(t, "unknown config key", errMsg)
		assert.False(t, author.Valid, "empty author stored as NULL")
	})
}

func TestHash(t *testing.T) {
	h1 := hash("/home/user/clinic")
	h2 := hash("/home/user/clinic")
	h3 := hash("/home/user/other")

	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, h3)
	assert.Len(t, h1, 16, "BLAKE2b-64 should produce 16 hex chars")
}

func TestDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	origDBPath := dbPathFunc
	dbPathFunc = defaultDBPath
	defer func() { dbPathFunc = origDBPath }()

	assert.Equal(t, filepath.Join(home, ".irisk", "log", "irisk-log.db"), DBPath())
}
