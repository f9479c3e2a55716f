package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		expected bool
	}{
		{name: "group", level: LevelGroup, expected: true},
		{name: "subgroup", level: LevelSubgroup, expected: true},
		{name: "product", level: LevelProduct, expected: true},
		{name: "empty", level: Level(""), expected: false},
		{name: "unknown", level: Level("aisle"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidLevel(tt.level))
		})
	}
}

func TestScope_Key(t *testing.T) {
	tests := []struct {
		name     string
		scope    Scope
		level    Level
		expected string
	}{
		{name: "group scope is empty", scope: GroupScope(), level: LevelGroup, expected: ""},
		{name: "subgroup scope is the group", scope: SubgroupScope("Dairy"), level: LevelSubgroup, expected: "Dairy"},
		{name: "product scope joins group and subgroup", scope: ProductScope("Dairy", "Milk"), level: LevelProduct, expected: "Dairy|Milk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.scope.Key())
			assert.Equal(t, tt.level, tt.scope.Level())
		})
	}
}

func TestParseScope(t *testing.T) {
	tests := []struct {
		name        string
		level       Level
		key         string
		expected    Scope
		expectError bool
	}{
		{name: "group", level: LevelGroup, key: "", expected: GroupScope()},
		{name: "group with key", level: LevelGroup, key: "Dairy", expectError: true},
		{name: "subgroup", level: LevelSubgroup, key: "Dairy", expected: SubgroupScope("Dairy")},
		{name: "subgroup without group", level: LevelSubgroup, key: "", expectError: true},
		{name: "product", level: LevelProduct, key: "Dairy|Milk", expected: ProductScope("Dairy", "Milk")},
		{name: "product without separator", level: LevelProduct, key: "Dairy", expectError: true},
		{name: "product with empty subgroup", level: LevelProduct, key: "Dairy|", expectError: true},
		{name: "unknown level", level: Level("aisle"), key: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope, err := ParseScope(tt.level, tt.key)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, scope)
			assert.Equal(t, tt.key, scope.Key())
		})
	}
}

func TestScope_Comparable(t *testing.T) {
	orders := map[Scope]int{
		ProductScope("Dairy", "Milk"): 1,
	}
	assert.Equal(t, 1, orders[ProductScope("Dairy", "Milk")])
	assert.NotEqual(t, SubgroupScope("Dairy"), ProductScope("Dairy", ""))
}

func TestNewPair(t *testing.T) {
	pair, swapped := NewPair("Dairy", "Bakery")
	assert.Equal(t, Pair{A: "Bakery", B: "Dairy"}, pair)
	assert.True(t, swapped)

	reversed, swapped := NewPair("Bakery", "Dairy")
	assert.Equal(t, pair, reversed)
	assert.False(t, swapped)

	assert.True(t, pair.Contains("Dairy"))
	assert.False(t, pair.Contains("Produce"))
}

func TestTripCompletedEvent_Valid(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		event    TripCompletedEvent
		expected bool
	}{
		{
			name:     "complete event",
			event:    TripCompletedEvent{TripID: "t1", ListID: "l1", CompletedAt: now},
			expected: true,
		},
		{
			name:     "missing trip",
			event:    TripCompletedEvent{ListID: "l1", CompletedAt: now},
			expected: false,
		},
		{
			name:     "missing completion time",
			event:    TripCompletedEvent{TripID: "t1", ListID: "l1"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.event.Valid())
		})
	}
}
