package domain

import (
	"fmt"
	"strings"
	"time"
)

// Level represents one of the three nested ordering levels learned per store
type Level string

const (
	LevelGroup    Level = "group"
	LevelSubgroup Level = "subgroup"
	LevelProduct  Level = "product"
)

// Levels lists all levels from the outermost to the innermost
var Levels = []Level{LevelGroup, LevelSubgroup, LevelProduct}

// IsValidLevel checks if a level is valid
func IsValidLevel(level Level) bool {
	return level == LevelGroup ||
		level == LevelSubgroup ||
		level == LevelProduct
}

// scopeSeparator joins group and subgroup in the persisted product scope key
const scopeSeparator = "|"

// Scope identifies the set of items a ranking applies to.
// The group level has a single unscoped ranking, the subgroup level is scoped
// by group, and the product level by (group, subgroup).
type Scope struct {
	level    Level
	group    string
	subgroup string
}

// GroupScope returns the scope of the top-level group ranking
func GroupScope() Scope {
	return Scope{level: LevelGroup}
}

// SubgroupScope returns the scope of the subgroup ranking within a group
func SubgroupScope(group string) Scope {
	return Scope{level: LevelSubgroup, group: group}
}

// ProductScope returns the scope of the product ranking within a (group, subgroup)
func ProductScope(group, subgroup string) Scope {
	return Scope{level: LevelProduct, group: group, subgroup: subgroup}
}

// Level returns the level of the scope
func (s Scope) Level() Level {
	return s.level
}

// Group returns the group of a subgroup or product scope
func (s Scope) Group() string {
	return s.group
}

// Subgroup returns the subgroup of a product scope
func (s Scope) Subgroup() string {
	return s.subgroup
}

// Key returns the persisted scope key: empty for the group level, the group
// name for the subgroup level and "group|subgroup" for the product level
func (s Scope) Key() string {
	switch s.level {
	case LevelSubgroup:
		return s.group
	case LevelProduct:
		return s.group + scopeSeparator + s.subgroup
	default:
		return ""
	}
}

// String returns a human readable representation of the scope
func (s Scope) String() string {
	if s.level == LevelGroup {
		return string(s.level)
	}
	return fmt.Sprintf("%s:%s", s.level, s.Key())
}

// ParseScope reconstructs a scope from its level and persisted key
func ParseScope(level Level, key string) (Scope, error) {
	switch level {
	case LevelGroup:
		if key != "" {
			return Scope{}, fmt.Errorf("group scope must be empty, got %q", key)
		}
		return GroupScope(), nil
	case LevelSubgroup:
		if key == "" {
			return Scope{}, fmt.Errorf("subgroup scope requires a group")
		}
		return SubgroupScope(key), nil
	case LevelProduct:
		group, subgroup, ok := strings.Cut(key, scopeSeparator)
		if !ok || group == "" || subgroup == "" {
			return Scope{}, fmt.Errorf("invalid product scope %q", key)
		}
		return ProductScope(group, subgroup), nil
	default:
		return Scope{}, fmt.Errorf("unknown level: %s", level)
	}
}

// Pair is an unordered pair of item identifiers stored in canonical order (A < B)
type Pair struct {
	A string `json:"item_a"`
	B string `json:"item_b"`
}

// NewPair returns the canonical pair for two distinct items.
// swapped reports whether x was placed second.
func NewPair(x, y string) (pair Pair, swapped bool) {
	if y < x {
		return Pair{A: y, B: x}, true
	}
	return Pair{A: x, B: y}, false
}

// Contains checks if the item is one of the pair members
func (p Pair) Contains(item string) bool {
	return p.A == item || p.B == item
}

// PairDelta is one unit of ordering evidence extracted from a single trip
type PairDelta struct {
	Scope    Scope
	Pair     Pair
	ABeforeB int64
	BBeforeA int64
}

// PairCount holds (possibly weighted) ordering evidence for a canonical pair
type PairCount struct {
	Pair     Pair
	ABeforeB float64
	BBeforeA float64
}

// SequenceEntry is one checked-off item of a trip, annotated with the catalog
// metadata resolved when the trip was archived
type SequenceEntry struct {
	ProductID      *string   `json:"product_id,omitempty"`
	Name           string    `json:"name"`
	CategoryID     *int64    `json:"category_id,omitempty"`
	DemandGroup    *string   `json:"demand_group,omitempty"`
	DemandSubGroup *string   `json:"demand_sub_group,omitempty"`
	CheckPosition  int       `json:"check_position"`
	CheckedAt      time.Time `json:"checked_at"`
}

// CategoryRank is the first-seen position (1-based) of a category within one trip
type CategoryRank struct {
	CategoryID int64 `json:"category_id"`
	Position   int   `json:"position"`
}

// TripCompletedEvent is published when a list has been archived into a trip.
// It is the unit of work of the learning pipeline.
type TripCompletedEvent struct {
	EventID     string    `json:"event_id"`
	TripID      string    `json:"trip_id"`
	ListID      string    `json:"list_id"`
	StoreID     *string   `json:"store_id,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// Valid checks if the event carries enough information to drive learning
func (e *TripCompletedEvent) Valid() bool {
	return e.TripID != "" && e.ListID != "" && !e.CompletedAt.IsZero()
}
