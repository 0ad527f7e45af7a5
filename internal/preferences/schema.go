package preferences

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"

	"mfsim/internal/common"
	"mfsim/internal/valueitem"
)

// AddSchemaValueItem stores item under its name, replacing an item with the same name
func (s *Store) AddSchemaValueItem(item *valueitem.ValueItem) {
	if item == nil {
		return
	}
	s.schemaValueItems.Add(item)
}

func (s *Store) RemoveSchemaValueItem(name string) bool {
	return s.schemaValueItems.Remove(name)
}

// RemoveSchemaValueItems removes the named items and returns how many existed
func (s *Store) RemoveSchemaValueItems(names ...string) int {
	return lo.CountBy(names, func(name string) bool {
		return s.schemaValueItems.Remove(name)
	})
}

func (s *Store) RemoveAllSchemaValueItems() {
	s.schemaValueItems = valueitem.NewContainer()
}

// ReplaceSchemaValueItem replaces the item named oldName by item
func (s *Store) ReplaceSchemaValueItem(oldName string, item *valueitem.ValueItem) bool {
	if item == nil || !s.schemaValueItems.Has(oldName) {
		return false
	}
	s.schemaValueItems.Remove(oldName)
	s.schemaValueItems.Add(item)
	return true
}

func (s *Store) SchemaValueItem(name string) (*valueitem.ValueItem, bool) {
	return s.schemaValueItems.Get(name)
}

func (s *Store) HasSchemaValueItems() bool {
	return s.schemaValueItems.Len() > 0
}

func (s *Store) NumberOfSchemaValueItems() int {
	return s.schemaValueItems.Len()
}

func (s *Store) SortedSchemaValueItemNames() []string {
	return s.schemaValueItems.Names()
}

// NameSortedSchemaValueItems returns the items ordered by name
func (s *Store) NameSortedSchemaValueItems() []*valueitem.ValueItem {
	items := s.schemaValueItems.Items()
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

func (s *Store) HasSchemaValueItemWithDisplayName(displayName string) bool {
	return lo.SomeBy(s.schemaValueItems.Items(), func(item *valueitem.ValueItem) bool {
		return item.DisplayName == displayName
	})
}

// HasMatchingSchemaValueItem reports whether a stored item matches item
func (s *Store) HasMatchingSchemaValueItem(item *valueitem.ValueItem) bool {
	return lo.SomeBy(s.schemaValueItems.Items(), func(existing *valueitem.ValueItem) bool {
		return existing.Matches(item)
	})
}

// WriteSchemaValueItemContainerToFile writes all schema items as a table data schemata document
func (s *Store) WriteSchemaValueItemContainerToFile(path string) error {
	data, err := valueitem.EncodeSchemaDocument(s.NameSortedSchemaValueItems())
	if err != nil {
		return NewPersistenceError("schema write", path, err)
	}
	if err := os.WriteFile(path, data, common.DefaultFilePermissions); err != nil {
		return NewPersistenceError("schema write", path, err)
	}
	return nil
}

// ReadSchemaValueItemContainerFromFile replaces all schema items by the content of path
func (s *Store) ReadSchemaValueItemContainerFromFile(path string) error {
	items, err := readSchemaFile(path)
	if err != nil {
		return err
	}

	s.RemoveAllSchemaValueItems()
	for _, item := range items {
		s.schemaValueItems.Add(item)
	}
	return nil
}

// MergeSchemaValueItemContainerFromFile adds the items of path that do not
// match an existing item. Name collisions get a " (n)" suffix. It returns
// the number of added items.
func (s *Store) MergeSchemaValueItemContainerFromFile(path string) (int, error) {
	items, err := readSchemaFile(path)
	if err != nil {
		return 0, err
	}

	added := 0
	for _, item := range items {
		if s.HasMatchingSchemaValueItem(item) {
			continue
		}
		name := s.uniqueSchemaName(item.Name)
		if name != item.Name {
			item.DisplayName += strings.TrimPrefix(name, item.Name)
			item.Name = name
		}
		item.VerticalPosition = 0
		s.schemaValueItems.Add(item)
		added++
	}
	return added, nil
}

func (s *Store) uniqueSchemaName(name string) string {
	candidate := name
	for n := 1; s.schemaValueItems.Has(candidate); n++ {
		candidate = fmt.Sprintf("%s (%d)", name, n)
	}
	return candidate
}

func readSchemaFile(path string) ([]*valueitem.ValueItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewPersistenceError("schema read", path, err)
	}
	items, err := valueitem.DecodeSchemaDocument(data)
	if err != nil {
		return nil, NewPersistenceError("schema read", path, err)
	}
	return items, nil
}
