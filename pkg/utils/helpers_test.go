package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTo(t *testing.T) {
	require.InDelta(t, 105.61, RoundTo(105.61000000000001, 2), 1e-12)
	require.InDelta(t, 1.0, RoundTo(0.9999999, 4), 1e-12)
	require.InDelta(t, -147.59, RoundTo(-147.5901, 2), 1e-12)
}

func TestClampInt(t *testing.T) {
	require.Equal(t, 1, ClampInt(0, 1, 100))
	require.Equal(t, 100, ClampInt(500, 1, 100))
	require.Equal(t, 42, ClampInt(42, 1, 100))
}
