package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_Add_KeepsTimeOrder(t *testing.T) {
	// GIVEN arrivals added out of order
	s := NewSchedule()
	s.Add(5, Customer{TEnter: 5})
	s.Add(1, Customer{TEnter: 1})
	s.Add(3, Customer{TEnter: 3})

	// THEN the earliest instant comes first
	require.Equal(t, 3, s.Len())
	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 1.0, first.At)
}

func TestSchedule_Add_GroupsEqualTimes(t *testing.T) {
	// GIVEN two customers added at the same instant
	s := NewSchedule()
	s.Add(2, Customer{TWait: 4, TEnter: 2})
	s.Add(2, Customer{TWait: 1, TEnter: 2})

	// THEN they share one entry, in add order
	require.Equal(t, 1, s.Len())
	first, ok := s.First()
	require.True(t, ok)
	require.Len(t, first.Customers, 2)
	assert.Equal(t, 4.0, first.Customers[0].TWait)
	assert.Equal(t, 1.0, first.Customers[1].TWait)
}

func TestSchedule_RemoveFirst_Advances(t *testing.T) {
	s := NewSchedule()
	s.Add(1, Customer{TEnter: 1})
	s.Add(2, Customer{TEnter: 2})

	s.RemoveFirst()

	require.Equal(t, 1, s.Len())
	first, ok := s.First()
	require.True(t, ok)
	assert.Equal(t, 2.0, first.At)
}

func TestSchedule_RemoveFirst_Empty_NoOp(t *testing.T) {
	s := NewSchedule()

	s.RemoveFirst()

	assert.True(t, s.Empty())
}

func TestSchedule_First_Empty(t *testing.T) {
	s := NewSchedule()

	_, ok := s.First()

	assert.False(t, ok)
}
