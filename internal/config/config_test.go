package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name          string
		envValue      string
		expected      int
		expectedError bool
	}{
		{name: "not set", envValue: "", expected: 60},
		{name: "set", envValue: "30", expected: 30},
		{name: "not a number", envValue: "thirty", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT_KEY", tt.envValue)

			result, err := getEnvInt("TEST_INT_KEY", 60)

			if tt.expectedError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "TEST_INT_KEY")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

// setRequiredEnv sets every required variable and clears the optional ones
func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER",
		"DEFAULT_LOCALE", "LOG_LEVEL", "HISTORY_RETENTION_DAYS", "HISTORY_PAGE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 60, cfg.History.RetentionDays)
	assert.Equal(t, 7, cfg.History.PageSize)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "datelabel", cfg.Database.Name)
	assert.Equal(t, "datelabel", cfg.Database.User)
}

func TestLoad_WithOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DEFAULT_LOCALE", "ru")
	t.Setenv("HISTORY_RETENTION_DAYS", "30")
	t.Setenv("HISTORY_PAGE_SIZE", "10")
	t.Setenv("DB_HOST", "db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ru", cfg.DefaultLocale)
	assert.Equal(t, 30, cfg.History.RetentionDays)
	assert.Equal(t, 10, cfg.History.PageSize)
	assert.Equal(t, "db", cfg.Database.Host)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name          string
		key           string
		value         string
		expectedError string
	}{
		{name: "missing bot token", key: "BOT_TOKEN", value: "", expectedError: "BOT_TOKEN"},
		{name: "missing db password", key: "DB_PASSWORD", value: "", expectedError: "DB_PASSWORD"},
		{name: "zero retention", key: "HISTORY_RETENTION_DAYS", value: "0", expectedError: "HISTORY_RETENTION_DAYS"},
		{name: "bad page size", key: "HISTORY_PAGE_SIZE", value: "many", expectedError: "HISTORY_PAGE_SIZE"},
		{name: "negative page size", key: "HISTORY_PAGE_SIZE", value: "-1", expectedError: "HISTORY_PAGE_SIZE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestLoad_IgnoresMissingDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	setRequiredEnv(t)

	_, err = Load()
	assert.NoError(t, err)
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(dir+"/.env", []byte("DEFAULT_LOCALE=ru\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	setRequiredEnv(t)
	// godotenv never overrides variables that are already set
	os.Unsetenv("DEFAULT_LOCALE")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ru", cfg.DefaultLocale)
}
