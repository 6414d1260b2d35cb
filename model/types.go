// Package model defines the chronological model handed to the sampler:
// dated contexts, the groups (phases) they belong to, and the relationships
// between consecutive groups.
//
// Contexts are stored as one array of structs keyed by a typed ContextID;
// Index builds the id → position maps once so the sampler never scans.
// All dates are Cal BP (larger = older). Above lists the older neighbours of
// a context, Below the younger ones; groups are listed oldest first.
package model

import (
	"fmt"
	"strings"
)

// ContextID identifies a context.
type ContextID string

// GroupID identifies a group (phase).
type GroupID string

// ContextType classifies how a dated sample relates to its deposit.
type ContextType int

const (
	// Normal samples are bounded on both sides.
	Normal ContextType = iota

	// Residual samples are suspected to be older than their deposit; only the
	// upper bound is enforced.
	Residual

	// Intrusive samples are suspected to be younger than their deposit; only
	// the lower bound is enforced.
	Intrusive
)

var contextTypeNames = [...]string{"normal", "residual", "intrusive"}

// String returns the lower-case name.
func (t ContextType) String() string {
	if t < 0 || int(t) >= len(contextTypeNames) {
		return fmt.Sprintf("ContextType(%d)", int(t))
	}

	return contextTypeNames[t]
}

// EnforcesLower reports whether the type honours lower (younger-side) bounds.
func (t ContextType) EnforcesLower() bool { return t != Residual }

// EnforcesUpper reports whether the type honours upper (older-side) bounds.
func (t ContextType) EnforcesUpper() bool { return t != Intrusive }

// ParseContextType parses a type name; the empty string means Normal.
func ParseContextType(s string) (ContextType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Normal, nil
	}
	for i, n := range contextTypeNames {
		if n == s {
			return ContextType(i), nil
		}
	}

	return Normal, fmt.Errorf("%q: %w", s, ErrUnknownType)
}

// Relationship describes how a group meets its neighbour.
type Relationship int

const (
	// Start marks the oldest group's outer edge.
	Start Relationship = iota

	// Abutting groups share one boundary value.
	Abutting

	// Overlap groups may cross: the younger group starts no earlier than the
	// older one and the older group ends no later than the younger one.
	Overlap

	// Gap groups keep disjoint ranges.
	Gap

	// End marks the youngest group's outer edge.
	End
)

// NumRelationships is the number of Relationship values.
const NumRelationships = int(End) + 1

var relationshipNames = [...]string{"start", "abutting", "overlap", "gap", "end"}

// String returns the lower-case name.
func (r Relationship) String() string {
	if r < 0 || int(r) >= len(relationshipNames) {
		return fmt.Sprintf("Relationship(%d)", int(r))
	}

	return relationshipNames[r]
}

// ParseRelationship parses a relationship name.
func ParseRelationship(s string) (Relationship, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range relationshipNames {
		if n == s {
			return Relationship(i), nil
		}
	}

	return Start, fmt.Errorf("%q: %w", s, ErrUnknownRelationship)
}

// Determination is one radiocarbon measurement.
type Determination struct {
	Age   float64 // radiocarbon age BP
	Error float64 // 1σ measurement error
}

// Context is one dated excavation context.
type Context struct {
	ID    ContextID
	Group GroupID
	Date  Determination
	Type  ContextType

	// Above lists the directly older neighbours.
	Above []ContextID

	// Below lists the directly younger neighbours.
	Below []ContextID
}

// Group is one phase of the sequence.
type Group struct {
	ID GroupID

	// Members in oldest → youngest order. Prepare fills it from the global
	// order when left empty.
	Members []ContextID

	// Prev is the relationship to the next-older group (Start for the oldest).
	Prev Relationship

	// Next is the relationship to the next-younger group (End for the youngest).
	Next Relationship
}

// Model is the complete input of one sampling run.
type Model struct {
	Contexts []Context

	// Groups oldest → youngest.
	Groups []Group

	// Order lists every context oldest → youngest. Prepare computes it from
	// the relations when left empty.
	Order []ContextID
}
