package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("CONFIG_TEST_KEY", "some-value")
	t.Setenv("CONFIG_TEST_EQUALS", "a=b=c")

	cfg := New()
	assert.Equal(t, "some-value", cfg["CONFIG_TEST_KEY"])
	assert.Equal(t, "a=b=c", cfg["CONFIG_TEST_EQUALS"])
}

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "8080", "EMPTY": ""}

	assert.Equal(t, "8080", GetString(cfg, "PORT", "3000"))
	assert.Equal(t, "", GetString(cfg, "EMPTY", "fallback"))
	assert.Equal(t, "fallback", GetString(cfg, "MISSING", "fallback"))
	assert.Equal(t, "fallback", GetString(nil, "PORT", "fallback"))
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"TIMEOUT": "30", "BAD": "thirty"}

	assert.Equal(t, 30, GetInt(cfg, "TIMEOUT", 10))
	assert.Equal(t, 10, GetInt(cfg, "BAD", 10))
	assert.Equal(t, 10, GetInt(cfg, "MISSING", 10))
	assert.Equal(t, 10, GetInt(nil, "TIMEOUT", 10))
}

func TestGetBool(t *testing.T) {
	cfg := map[string]string{"ON": "true", "OFF": "0", "BAD": "yep"}

	assert.True(t, GetBool(cfg, "ON", false))
	assert.False(t, GetBool(cfg, "OFF", true))
	assert.True(t, GetBool(cfg, "BAD", true))
	assert.False(t, GetBool(cfg, "MISSING", false))
	assert.True(t, GetBool(nil, "ON", true))
}
