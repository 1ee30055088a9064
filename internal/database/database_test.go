package database

import (
	"aistudio-academy/config"
	"net"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "academy.db")

	db, err := Connect(&config.Config{DBDriver: "sqlite", SQLitePath: path})
	require.NoError(t, err)
	assert.Same(t, db, DB)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	assert.NoError(t, sqlDB.Ping())
	assert.FileExists(t, path)
}

func TestConnect_UnknownDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestConnectRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	host, port, err := net.SplitHostPort(mr.Addr())
	require.NoError(t, err)

	require.NoError(t, ConnectRedis(&config.Config{RedisAddr: host, RedisPort: port}))
	t.Cleanup(func() { _ = RedisClient.Close() })

	require.NoError(t, RedisClient.Set(Ctx, "k", "v", 0).Err())
	got, err := mr.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", got)
}
