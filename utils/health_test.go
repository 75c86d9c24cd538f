package utils

import (
	"testing"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeDependenciesReportsEveryRole(t *testing.T) {
	probeDependencies(map[string]*redis.Client{
		"cache":         nil,
		"auth":          nil,
		"reminderQueue": nil,
	}, nil)

	status := GetHealthStatus()
	assert.False(t, status.Mongo)
	assert.False(t, status.CheckedAt.IsZero())
	require.Len(t, status.Redis, 3)
	assert.Contains(t, status.Redis, "reminderQueue")
	for role, ok := range status.Redis {
		assert.False(t, ok, role)
	}
}

func TestGetHealthStatusReturnsACopy(t *testing.T) {
	probeDependencies(map[string]*redis.Client{"cache": nil}, nil)

	first := GetHealthStatus()
	first.Redis["cache"] = true

	assert.False(t, GetHealthStatus().Redis["cache"])
}
