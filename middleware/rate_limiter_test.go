package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wastewise/config"
)

func TestRequestsPerMinuteUsesConfiguredBudget(t *testing.T) {
	orig := config.AppConfig.MaxRequestsPerMin
	defer func() { config.AppConfig.MaxRequestsPerMin = orig }()

	config.AppConfig.MaxRequestsPerMin = 30
	assert.Equal(t, 30, requestsPerMinute())
}

func TestRequestsPerMinuteFallsBackOnBadValue(t *testing.T) {
	orig := config.AppConfig.MaxRequestsPerMin
	defer func() { config.AppConfig.MaxRequestsPerMin = orig }()

	config.AppConfig.MaxRequestsPerMin = 0
	assert.Equal(t, 100, requestsPerMinute())

	config.AppConfig.MaxRequestsPerMin = -5
	assert.Equal(t, 100, requestsPerMinute())
}
