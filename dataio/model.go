// SPDX-License-Identifier: MIT
// Package dataio: model document import.

package dataio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/strata/model"
	"github.com/katalvlaran/strata/strat"
)

// modelDoc is the on-disk layout of a model.
type modelDoc struct {
	Groups   []groupDoc   `yaml:"groups"`
	Contexts []contextDoc `yaml:"contexts"`
	Order    []string     `yaml:"order"`
}

type groupDoc struct {
	ID   string `yaml:"id"`
	Prev string `yaml:"prev"`
	Next string `yaml:"next"`
}

type contextDoc struct {
	ID    string  `yaml:"id"`
	Group string  `yaml:"group"`
	Age   float64 `yaml:"age"`
	Error float64 `yaml:"error"`
	Type  string  `yaml:"type"`

	// Above and Below follow the date axis: older and younger neighbours.
	Above []string `yaml:"above"`
	Below []string `yaml:"below"`

	// OnTopOf lists the contexts this one physically lies on.
	OnTopOf []string `yaml:"on_top_of"`
}

// ReadModelYAML decodes a model document and returns a prepared model
// (symmetric relations, order and group members filled, validated).
//
// Physical on_top_of records are converted with strat.FromDeposition and
// merged into the date-axis lists. An empty type defaults to normal.
//
// Errors: yaml decode errors, ErrBadModelFile, and anything model.Prepare
// reports.
func ReadModelYAML(r io.Reader) (*model.Model, error) {
	var doc modelDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrBadModelFile)
		}

		return nil, fmt.Errorf("decoding model: %w", err)
	}

	m, err := mapModel(doc)
	if err != nil {
		return nil, err
	}
	if err := m.Prepare(); err != nil {
		return nil, fmt.Errorf("preparing model: %w", err)
	}

	return m, nil
}

func mapModel(doc modelDoc) (*model.Model, error) {
	m := &model.Model{
		Groups:   make([]model.Group, 0, len(doc.Groups)),
		Contexts: make([]model.Context, 0, len(doc.Contexts)),
	}
	for _, gd := range doc.Groups {
		if gd.ID == "" {
			return nil, fmt.Errorf("group without id: %w", ErrBadModelFile)
		}
		prev, err := model.ParseRelationship(gd.Prev)
		if err != nil {
			return nil, fmt.Errorf("group %q prev: %w: %w", gd.ID, ErrBadModelFile, err)
		}
		next, err := model.ParseRelationship(gd.Next)
		if err != nil {
			return nil, fmt.Errorf("group %q next: %w: %w", gd.ID, ErrBadModelFile, err)
		}
		m.Groups = append(m.Groups, model.Group{ID: model.GroupID(gd.ID), Prev: prev, Next: next})
	}

	dep, err := deposition(doc.Contexts)
	if err != nil {
		return nil, err
	}
	for _, cd := range doc.Contexts {
		if cd.ID == "" {
			return nil, fmt.Errorf("context without id: %w", ErrBadModelFile)
		}
		typ, err := model.ParseContextType(cd.Type)
		if err != nil {
			return nil, fmt.Errorf("context %q: %w: %w", cd.ID, ErrBadModelFile, err)
		}
		above := cd.Above
		if dep.HasContext(cd.ID) {
			older, _ := dep.Above(cd.ID)
			above = append(append([]string(nil), above...), older...)
		}
		m.Contexts = append(m.Contexts, model.Context{
			ID:    model.ContextID(cd.ID),
			Group: model.GroupID(cd.Group),
			Date:  model.Determination{Age: cd.Age, Error: cd.Error},
			Type:  typ,
			Above: ids(above),
			Below: ids(cd.Below),
		})
	}
	m.Order = ids(doc.Order)

	return m, nil
}

// deposition collects every on_top_of record into one graph.
func deposition(contexts []contextDoc) (*strat.Graph, error) {
	var records []strat.Deposition
	for _, cd := range contexts {
		for _, lower := range cd.OnTopOf {
			records = append(records, strat.Deposition{Upper: cd.ID, Lower: lower})
		}
	}
	g, err := strat.FromDeposition(records)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadModelFile, err)
	}

	return g, nil
}

func ids(ss []string) []model.ContextID {
	if len(ss) == 0 {
		return nil
	}
	out := make([]model.ContextID, len(ss))
	for i, s := range ss {
		out[i] = model.ContextID(s)
	}

	return out
}
