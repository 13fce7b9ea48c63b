package configs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("NGUVAN_TEST_SET", "value")
	t.Setenv("NGUVAN_TEST_EMPTY", "")

	assert.Equal(t, "value", GetEnv("NGUVAN_TEST_SET", "fallback"))
	assert.Equal(t, "fallback", GetEnv("NGUVAN_TEST_EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("NGUVAN_TEST_MISSING", "fallback"))
	assert.Empty(t, GetEnv("NGUVAN_TEST_MISSING"))
}

func TestGetEnvIntBool(t *testing.T) {
	t.Setenv("NGUVAN_TEST_INT", "90")
	t.Setenv("NGUVAN_TEST_BAD_INT", "abc")
	t.Setenv("NGUVAN_TEST_BOOL", "false")

	assert.Equal(t, 90, GetEnvInt("NGUVAN_TEST_INT", 60))
	assert.Equal(t, 60, GetEnvInt("NGUVAN_TEST_BAD_INT", 60))
	assert.Equal(t, 60, GetEnvInt("NGUVAN_TEST_NONE", 60))
	assert.False(t, GetEnvBool("NGUVAN_TEST_BOOL", true))
	assert.True(t, GetEnvBool("NGUVAN_TEST_NONE", true))
}

func TestLoadEnv_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("ATTEMPT_SWEEP_GRACE_SECONDS", "30")
	t.Setenv("ATTEMPT_SWEEP_CRON", "")

	LoadEnv()

	assert.Equal(t, "sqlite", DBDriver)
	assert.Equal(t, "30s", AttemptSweepGrace.String())
	assert.Empty(t, AttemptSweepCron)
}
