package models

import "fmt"

// DrawIndex is a flat, id-keyed view over a draw document. It is rebuilt per
// call and points into the indexed document.
type DrawIndex struct {
	Draw       *DrawDefinition
	structures map[string]*Structure
	parents    map[string]*Structure
	matchUps   map[string]*MatchUp
	owners     map[string]*Structure
}

func NewDrawIndex(draw *DrawDefinition) (*DrawIndex, error) {
	if draw == nil {
		return nil, ErrMissingDrawDefinition
	}
	idx := &DrawIndex{
		Draw:       draw,
		structures: make(map[string]*Structure),
		parents:    make(map[string]*Structure),
		matchUps:   make(map[string]*MatchUp),
		owners:     make(map[string]*Structure),
	}
	var walk func(s, parent *Structure) error
	walk = func(s, parent *Structure) error {
		if s.StructureID == "" {
			return ErrMissingStructureID
		}
		if _, dup := idx.structures[s.StructureID]; dup {
			return fmt.Errorf("%w: duplicate structure id %s", ErrInvalidValues, s.StructureID)
		}
		idx.structures[s.StructureID] = s
		if parent != nil {
			idx.parents[s.StructureID] = parent
		}
		for _, m := range s.MatchUps {
			if _, dup := idx.matchUps[m.MatchUpID]; dup {
				return fmt.Errorf("%w: duplicate matchUp id %s", ErrInvalidValues, m.MatchUpID)
			}
			idx.matchUps[m.MatchUpID] = m
			idx.owners[m.MatchUpID] = s
		}
		for _, child := range s.Structures {
			if err := walk(child, s); err != nil {
				return err
			}
		}
		return nil
	}
	for _, s := range draw.Structures {
		if err := walk(s, nil); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

func (i *DrawIndex) Structure(structureID string) (*Structure, error) {
	if structureID == "" {
		return nil, ErrMissingStructureID
	}
	s, ok := i.structures[structureID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStructureNotFound, structureID)
	}
	return s, nil
}

func (i *DrawIndex) MatchUp(matchUpID string) (*MatchUp, error) {
	if matchUpID == "" {
		return nil, ErrMissingMatchUpID
	}
	m, ok := i.matchUps[matchUpID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMatchUpNotFound, matchUpID)
	}
	return m, nil
}

// StructureOf returns the structure that directly owns the matchUp.
func (i *DrawIndex) StructureOf(matchUpID string) *Structure {
	return i.owners[matchUpID]
}

// Parent returns the container of a nested structure, or nil.
func (i *DrawIndex) Parent(structureID string) *Structure {
	return i.parents[structureID]
}

// LinkStructure resolves the structure a link endpoint refers to: a nested
// group resolves to its container.
func (i *DrawIndex) LinkStructure(structureID string) *Structure {
	if parent := i.parents[structureID]; parent != nil {
		return parent
	}
	return i.structures[structureID]
}

// LinksFrom returns links whose source is the structure and round. A zero
// roundNumber matches every round.
func (i *DrawIndex) LinksFrom(structureID string, roundNumber int) []*Link {
	var links []*Link
	for _, l := range i.Draw.Links {
		if l.Source.StructureID != structureID {
			continue
		}
		if roundNumber != 0 && l.Source.RoundNumber != roundNumber {
			continue
		}
		links = append(links, l)
	}
	return links
}

func (i *DrawIndex) LinksTo(structureID string) []*Link {
	var links []*Link
	for _, l := range i.Draw.Links {
		if l.Target.StructureID == structureID {
			links = append(links, l)
		}
	}
	return links
}

// MatchUps returns every matchUp ordered by structure, round and position.
func (i *DrawIndex) MatchUps() []*MatchUp {
	var all []*MatchUp
	var walk func(s *Structure)
	walk = func(s *Structure) {
		for _, round := range s.RoundNumbers() {
			all = append(all, s.RoundMatchUps(round)...)
		}
		for _, child := range s.Structures {
			walk(child)
		}
	}
	for _, s := range i.Draw.Structures {
		walk(s)
	}
	return all
}

func (i *DrawIndex) StructuresCount() int {
	return len(i.structures)
}

// MatchUpFormatOf resolves the format code that governs a matchUp: its own,
// then its structure's (nested groups inherit from the container), then the draw's.
func (i *DrawIndex) MatchUpFormatOf(matchUpID string) string {
	m := i.matchUps[matchUpID]
	if m == nil {
		return ""
	}
	if m.MatchUpFormat != "" {
		return m.MatchUpFormat
	}
	for s := i.owners[matchUpID]; s != nil; s = i.parents[s.StructureID] {
		if s.MatchUpFormat != "" {
			return s.MatchUpFormat
		}
	}
	return i.Draw.MatchUpFormat
}
