package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func arrivalIDs(evs []*ArrivalEvent) []int {
	ids := make([]int, len(evs))
	for i, ev := range evs {
		ids[i] = ev.Request.ID
	}
	return ids
}

func TestNewRegistry_AssignsSequentialIDs(t *testing.T) {
	reg := NewRegistry([]Arrival{{0, 5}, {3, 1}, {3, 9}})

	require.Equal(t, 3, reg.Len())
	for i, r := range reg.Requests() {
		assert.Equal(t, i, r.ID)
		assert.Equal(t, StateCreated, r.State)
	}
	assert.Equal(t, 9, reg.Requests()[2].Track)
}

func TestRegistry_ArrivalsAt_SimultaneousArrivalsInInputOrder(t *testing.T) {
	// GIVEN three requests arriving at tick 2 and one at tick 4
	reg := NewRegistry([]Arrival{{2, 10}, {2, 20}, {4, 5}, {2, 30}})

	// WHEN each tick is polled
	// THEN each arrival is produced exactly once, in input order within a tick
	assert.Empty(t, reg.ArrivalsAt(0))
	assert.Empty(t, reg.ArrivalsAt(1))
	assert.Equal(t, []int{0, 1, 3}, arrivalIDs(reg.ArrivalsAt(2)))
	assert.Empty(t, reg.ArrivalsAt(3))
	assert.Equal(t, []int{2}, arrivalIDs(reg.ArrivalsAt(4)))
	assert.Empty(t, reg.ArrivalsAt(5))
}

func TestRegistry_ArrivalsAt_UnsortedInput_ReplaysByTime(t *testing.T) {
	reg := NewRegistry([]Arrival{{5, 1}, {0, 2}, {3, 3}})

	assert.Equal(t, []int{1}, arrivalIDs(reg.ArrivalsAt(0)))
	assert.Equal(t, []int{2}, arrivalIDs(reg.ArrivalsAt(3)))
	assert.Equal(t, []int{0}, arrivalIDs(reg.ArrivalsAt(5)))
}

func TestRegistry_AnyActive_FalseOnlyWhenAllComplete(t *testing.T) {
	reg := NewRegistry([]Arrival{{0, 1}, {0, 2}})
	assert.True(t, reg.AnyActive())

	reg.Requests()[0].complete(1)
	reg.markComplete()
	assert.True(t, reg.AnyActive())

	reg.Requests()[1].complete(2)
	reg.markComplete()
	assert.False(t, reg.AnyActive())
}

func TestRegistry_Empty_NotActive(t *testing.T) {
	reg := NewRegistry(nil)
	assert.False(t, reg.AnyActive())
	assert.Empty(t, reg.ArrivalsAt(0))
}
