package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Run("Missing Key Uses Default", func(t *testing.T) {
		assert.Equal(t, "fallback", GetEnvString("PIDELOCAL_TEST_MISSING", "fallback"))
		assert.Equal(t, 7, GetEnvInt("PIDELOCAL_TEST_MISSING", 7))
	})

	t.Run("Typed Values", func(t *testing.T) {
		t.Setenv("PIDELOCAL_TEST_INT", "42")
		t.Setenv("PIDELOCAL_TEST_BOOL", "true")
		t.Setenv("PIDELOCAL_TEST_DURATION", "1500ms")
		t.Setenv("PIDELOCAL_TEST_INT64", "5242880")

		assert.Equal(t, 42, GetEnvInt("PIDELOCAL_TEST_INT", 0))
		assert.True(t, GetEnvBool("PIDELOCAL_TEST_BOOL", false))
		assert.Equal(t, 1500*time.Millisecond, GetEnvDuration("PIDELOCAL_TEST_DURATION", time.Second))
		assert.Equal(t, int64(5242880), GetEnvInt64("PIDELOCAL_TEST_INT64", 0))
	})

	t.Run("Unparsable Value Falls Back", func(t *testing.T) {
		t.Setenv("PIDELOCAL_TEST_BAD_INT", "twelve")
		assert.Equal(t, 12, GetEnvInt("PIDELOCAL_TEST_BAD_INT", 12))
	})
}
