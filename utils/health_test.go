package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestComposeHealthAllHealthy(t *testing.T) {
	at := time.Now()
	status := composeHealth(true, map[string]bool{"cache": true, "auth": true}, at)

	require.Equal(t, healthStatusOK, status.Status)
	require.True(t, status.Mongo)
	require.Equal(t, map[string]bool{"cache": true, "auth": true}, status.Redis)
	require.Equal(t, at, status.CheckedAt)
}

func TestComposeHealthMongoDown(t *testing.T) {
	status := composeHealth(false, map[string]bool{"cache": true, "auth": true}, time.Now())
	require.Equal(t, healthStatusDegraded, status.Status)
	require.False(t, status.Mongo)
}

func TestComposeHealthSingleRedisDown(t *testing.T) {
	status := composeHealth(true, map[string]bool{"cache": true, "auth": false}, time.Now())
	require.Equal(t, healthStatusDegraded, status.Status)
	require.False(t, status.Redis["auth"])
	require.True(t, status.Redis["cache"])
}
