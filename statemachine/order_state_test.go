package statemachine_test

import (
	"testing"

	"service-marketplace-api/models"
	"service-marketplace-api/statemachine"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name  string
		from  models.OrderStatus
		to    models.OrderStatus
		actor string
		ok    bool
	}{
		{"business completes", models.StatusInProgress, models.StatusCompleted, "business", true},
		{"business cancels", models.StatusInProgress, models.StatusCancelled, "business", true},
		{"admin completes", models.StatusInProgress, models.StatusCompleted, "admin", true},
		{"customer cannot complete", models.StatusInProgress, models.StatusCompleted, "customer", false},
		{"completed is terminal", models.StatusCompleted, models.StatusInProgress, "business", false},
		{"cancelled is terminal", models.StatusCancelled, models.StatusCompleted, "business", false},
		{"no self transition", models.StatusInProgress, models.StatusInProgress, "business", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := statemachine.CanTransition(tc.from, tc.to, tc.actor)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := statemachine.ValidTransitionsFrom(models.StatusInProgress)
	require.ElementsMatch(t, []models.OrderStatus{models.StatusCompleted, models.StatusCancelled}, nexts)

	require.Empty(t, statemachine.ValidTransitionsFrom(models.StatusCompleted))
	require.Empty(t, statemachine.ValidTransitionsFrom(models.StatusCancelled))
}

func TestIsTerminal(t *testing.T) {
	require.False(t, statemachine.IsTerminal(models.StatusInProgress))
	require.True(t, statemachine.IsTerminal(models.StatusCompleted))
	require.True(t, statemachine.IsTerminal(models.StatusCancelled))
}
