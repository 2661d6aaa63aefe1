package database

import (
	"io/fs"
	"testing"

	"practice-booking-service/config"
	"practice-booking-service/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationURL(t *testing.T) {
	url := MigrationURL(config.DBConfig{
		Host:     "db",
		Port:     "5432",
		User:     "booking",
		Password: "p@ss word",
		Name:     "practice",
		SSLMode:  "disable",
	})

	assert.Equal(t, "pgx5://booking:p%40ss%20word@db:5432/practice?sslmode=disable", url)
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	ups, err := fs.Glob(migrations.FS, "*.up.sql")
	require.NoError(t, err)
	downs, err := fs.Glob(migrations.FS, "*.down.sql")
	require.NoError(t, err)

	require.NotEmpty(t, ups)
	assert.Len(t, downs, len(ups))

	schema, err := fs.ReadFile(migrations.FS, "000001_init.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(schema), "availability_slots_active_start_uq")
	assert.Contains(t, string(schema), "bookings_active_slot_date_uq")
}

func TestPostgresDSN(t *testing.T) {
	dsn := PostgresDSN(config.DBConfig{
		Host:     "localhost",
		Port:     "5432",
		User:     "postgres",
		Password: "postgres",
		Name:     "practice_booking",
		SSLMode:  "disable",
		TimeZone: "UTC",
	})

	assert.Equal(t, "host=localhost user=postgres password=postgres dbname=practice_booking port=5432 sslmode=disable TimeZone=UTC", dsn)
}
