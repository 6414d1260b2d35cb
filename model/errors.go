// SPDX-License-Identifier: MIT
// Package model: sentinel errors.

package model

import "errors"

var (
	// ErrUnknownType indicates an unrecognized context type name.
	ErrUnknownType = errors.New("model: unknown context type")

	// ErrUnknownRelationship indicates an unrecognized relationship name.
	ErrUnknownRelationship = errors.New("model: unknown relationship")

	// ErrDuplicateID indicates two contexts or two groups share an id.
	ErrDuplicateID = errors.New("model: duplicate id")

	// ErrUnknownContext indicates a reference to a context that is not declared.
	ErrUnknownContext = errors.New("model: unknown context")

	// ErrUnknownGroup indicates a context names a group that is not declared.
	ErrUnknownGroup = errors.New("model: unknown group")

	// ErrEmptyModel indicates a model without contexts or groups.
	ErrEmptyModel = errors.New("model: no contexts or groups")

	// ErrEmptyGroup indicates a group with no member contexts.
	ErrEmptyGroup = errors.New("model: group has no members")

	// ErrRelationshipMismatch indicates inconsistent relationship labels
	// between consecutive groups, or start/end labels in the wrong place.
	ErrRelationshipMismatch = errors.New("model: inconsistent group relationships")

	// ErrBadDetermination indicates a non-finite age or a non-positive error.
	ErrBadDetermination = errors.New("model: invalid determination")

	// ErrOrderMismatch indicates Order is not a permutation of the contexts or
	// places a context before one of its older neighbours.
	ErrOrderMismatch = errors.New("model: order inconsistent with contexts")

	// ErrAsymmetricRelation indicates a context lists a neighbour that does
	// not list it back.
	ErrAsymmetricRelation = errors.New("model: asymmetric stratigraphic relation")
)
