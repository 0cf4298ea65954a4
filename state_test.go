package lexgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStateDescriptorValid(t *testing.T) {
	require.True(t, StateDescriptor[string]{ID: InitialState}.valid())
	require.True(t, StateDescriptor[string]{ID: StateReserved}.valid())
	require.True(t, StateDescriptor[string]{ID: StateReserved + 10}.valid())

	require.False(t, StateDescriptor[string]{ID: AllStates}.valid())
	require.False(t, StateDescriptor[string]{ID: StateReserved - 1}.valid())
	require.False(t, StateDescriptor[string]{ID: 42}.valid())
}
