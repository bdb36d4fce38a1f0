// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// RecommendationEntry is the predicate function for recommendationentry builders.
type RecommendationEntry func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)
