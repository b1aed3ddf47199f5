package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setKeys(t *testing.T) {
	t.Setenv("STUDENT_KEY", "s-key")
	t.Setenv("TEACHER_KEY", "t-key")
	t.Setenv("ADMIN_KEY", "a-key")
}

// unsetEnv clears variables for the duration of a test.
func unsetEnv(t *testing.T, keys ...string) {
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	unsetEnv(t, "SERVER_PORT", "PORT", "DB_MAX_OPEN_CONNS", "STORAGE_PATH", "JWT_TOKEN_EXPIRATION")
	setKeys(t)
	t.Setenv("DB_USER", "app")

	cfg, err := LoadConfig("missing.yaml")
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, "uploads", cfg.Server.StoragePath)
	assert.Equal(t, "720h", cfg.JWT.TokenExpiration)
	assert.Equal(t, "s-key", cfg.JWT.StudentKey)
}

func TestLoadConfigMissingRoleKey(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("STUDENT_KEY", "s-key")
	t.Setenv("TEACHER_KEY", "t-key")
	t.Setenv("ADMIN_KEY", "")

	_, err := LoadConfig("missing.yaml")
	assert.ErrorContains(t, err, "ADMIN_KEY")
}

func TestEnvOverridesFileAndPrefixedNamesWin(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	unsetEnv(t, "SERVER_PORT")
	setKeys(t)

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "7000"
database:
  host: yaml-host
  dbname: yaml-db
  user: yaml-user
`), 0o600))

	t.Setenv("HOST", "plain-host")
	t.Setenv("DATABASE", "plain-db")
	t.Setenv("DB_NAME", "prefixed-db")
	t.Setenv("DB_USER", "prefixed-user")
	t.Setenv("PORT", "8081")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "plain-host", cfg.Database.Host)
	assert.Equal(t, "prefixed-db", cfg.Database.DBName)
	assert.Equal(t, "prefixed-user", cfg.Database.User)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSOrigins)
}

func TestDotEnvFileIsLoaded(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"STUDENT_KEY=from-dotenv\nTEACHER_KEY=t\nADMIN_KEY=a\n"), 0o600))
	// godotenv sets variables for the whole process; unsetEnv restores them afterwards.
	unsetEnv(t, "STUDENT_KEY", "TEACHER_KEY", "ADMIN_KEY")

	cfg, err := LoadConfig("missing.yaml")
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.JWT.StudentKey)
}

func TestDotEnvDatabaseNamesBeatShell(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(
		"USER=app\nHOST=db.internal\nSTUDENT_KEY=from-dotenv\n"), 0o600))
	unsetEnv(t, "DB_USER", "DB_HOST")
	setKeys(t)
	t.Setenv("USER", "shell-user")
	t.Setenv("HOST", "shell-host")

	cfg, err := LoadConfig("missing.yaml")
	require.NoError(t, err)
	assert.Equal(t, "app", cfg.Database.User)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	// Other variables already set in the shell are left alone.
	assert.Equal(t, "s-key", cfg.JWT.StudentKey)
}

func TestMySQLDSN(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "pw"

	dsn := cfg.MySQLDSN()
	assert.Contains(t, dsn, "app:pw@tcp(localhost:3306)/coursehub")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

// chdir changes the working directory for the duration of a test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
