package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("DATABASE_NAME", "halfsy_test")
	assert.Equal(t, "halfsy_test", getEnv("DATABASE_NAME", "halfsy"))

	t.Setenv("DATABASE_NAME", "")
	assert.Equal(t, "halfsy", getEnv("DATABASE_NAME", "halfsy"))
}
