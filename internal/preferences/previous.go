package preferences

import (
	"slices"

	"github.com/samber/lo"
)

// addPrevious puts entry in front of list, removing an older occurrence and
// dropping entries beyond the limit.
func addPrevious(list []string, entry string) ([]string, bool) {
	entry = xmlText(entry)
	if entry == "" || (len(list) > 0 && list[0] == entry) {
		return list, false
	}
	list = append([]string{entry}, lo.Without(list, entry)...)
	if len(list) > MaximumNumberOfPreviousEntries {
		list = list[:MaximumNumberOfPreviousEntries]
	}
	return list, true
}

func removePrevious(list []string, entry string) ([]string, bool) {
	if !lo.Contains(list, entry) {
		return list, false
	}
	return lo.Without(list, entry), true
}

// Monomers

// PreviousMonomers returns the previously used monomers, newest first
func (s *Store) PreviousMonomers() []string { return slices.Clone(s.previousMonomers) }

func (s *Store) HasPreviousMonomers() bool { return len(s.previousMonomers) > 0 }

func (s *Store) AddPreviousMonomer(monomer string) bool {
	var added bool
	s.previousMonomers, added = addPrevious(s.previousMonomers, monomer)
	return added
}

func (s *Store) RemovePreviousMonomer(monomer string) bool {
	var removed bool
	s.previousMonomers, removed = removePrevious(s.previousMonomers, monomer)
	return removed
}

func (s *Store) ClearPreviousMonomers() { s.previousMonomers = nil }

// Structures

func (s *Store) PreviousStructures() []string { return slices.Clone(s.previousStructures) }

func (s *Store) HasPreviousStructures() bool { return len(s.previousStructures) > 0 }

func (s *Store) AddPreviousStructure(structure string) bool {
	var added bool
	s.previousStructures, added = addPrevious(s.previousStructures, structure)
	return added
}

func (s *Store) RemovePreviousStructure(structure string) bool {
	var removed bool
	s.previousStructures, removed = removePrevious(s.previousStructures, structure)
	return removed
}

func (s *Store) ClearPreviousStructures() { s.previousStructures = nil }

// Peptides

func (s *Store) PreviousPeptides() []string { return slices.Clone(s.previousPeptides) }

func (s *Store) HasPreviousPeptides() bool { return len(s.previousPeptides) > 0 }

func (s *Store) AddPreviousPeptide(peptide string) bool {
	var added bool
	s.previousPeptides, added = addPrevious(s.previousPeptides, peptide)
	return added
}

func (s *Store) RemovePreviousPeptide(peptide string) bool {
	var removed bool
	s.previousPeptides, removed = removePrevious(s.previousPeptides, peptide)
	return removed
}

func (s *Store) ClearPreviousPeptides() { s.previousPeptides = nil }
