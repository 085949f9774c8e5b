package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	q := "SELECT a FROM t WHERE x = ? AND y IN (?, ?)"
	assert.Equal(t, q, SQLite.Rebind(q))
	assert.Equal(t, "SELECT a FROM t WHERE x = $1 AND y IN ($2, $3)", Postgres.Rebind(q))
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("postgres")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)
	assert.Equal(t, "pgx", d.DriverName())

	d, err = ParseDialect("")
	require.NoError(t, err)
	assert.Equal(t, SQLite, d)

	_, err = ParseDialect("oracle")
	assert.Error(t, err)
}

func TestOpenSQLiteMemory(t *testing.T) {
	db, err := Open(SQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()

	var one int
	require.NoError(t, db.QueryRow("SELECT 1").Scan(&one))
	assert.Equal(t, 1, one)

	_, err = Open(SQLite, " ")
	assert.Error(t, err)
}
