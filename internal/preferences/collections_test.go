package preferences

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mfsim/internal/valueitem"
)

func TestFilter_Matches(t *testing.T) {
	created := time.Date(2024, 5, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		filter   Filter
		expected bool
	}{
		{"empty", Filter{}, true},
		{"after passes", Filter{AfterTimestamp: "2024/05/01 - 00:00:00"}, true},
		{"after fails", Filter{AfterTimestamp: "2024/06/01 - 00:00:00"}, false},
		{"before passes", Filter{BeforeTimestamp: "2024/06/01 - 00:00:00"}, true},
		{"before fails", Filter{BeforeTimestamp: "2024/05/01 - 00:00:00"}, false},
		{"unparsable timestamp ignored", Filter{AfterTimestamp: "yesterday"}, true},
		{"phrase case insensitive", Filter{ContainsPhrase: "WATER"}, true},
		{"phrase missing", Filter{ContainsPhrase: "octanol"}, false},
		{"all criteria", Filter{AfterTimestamp: "2024/05/01 - 00:00:00", BeforeTimestamp: "2024/06/01 - 00:00:00", ContainsPhrase: "box"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.filter.Matches(created, "Water box equilibration"))
		})
	}
}

func TestJobFilters(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.ClearJobInputFilter())
	assert.True(t, s.SetJobInputFilterContainsPhrase("membrane").Changed)
	assert.True(t, s.HasJobInputFilter())
	assert.False(t, s.HasJobResultFilter())
	assert.Equal(t, "membrane", s.JobInputFilter().ContainsPhrase)

	assert.True(t, s.ClearJobInputFilter())
	assert.False(t, s.HasJobInputFilter())

	s.SetJobResultFilterAfterTimestamp("2024/01/01 - 00:00:00")
	s.SetJobResultFilterBeforeTimestamp("2024/12/31 - 00:00:00")
	assert.Equal(t, "2024/01/01 - 00:00:00", s.JobResultFilterAfterTimestamp())
	assert.Equal(t, "2024/12/31 - 00:00:00", s.JobResultFilterBeforeTimestamp())
	assert.True(t, s.ClearJobResultFilter())
	assert.True(t, s.JobResultFilter().IsEmpty())
}

func TestPreviousMonomers(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.AddPreviousMonomer(""))
	assert.True(t, s.AddPreviousMonomer("A"))
	assert.True(t, s.AddPreviousMonomer("B"))
	assert.False(t, s.AddPreviousMonomer("B"))
	assert.True(t, s.AddPreviousMonomer("A"))
	assert.Equal(t, []string{"A", "B"}, s.PreviousMonomers())

	assert.True(t, s.RemovePreviousMonomer("B"))
	assert.False(t, s.RemovePreviousMonomer("B"))
	assert.Equal(t, []string{"A"}, s.PreviousMonomers())

	s.ClearPreviousMonomers()
	assert.False(t, s.HasPreviousMonomers())
}

func TestPreviousStructures_Capped(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < MaximumNumberOfPreviousEntries+10; i++ {
		s.AddPreviousStructure(fmt.Sprintf("S%d", i))
	}

	structures := s.PreviousStructures()
	require.Len(t, structures, MaximumNumberOfPreviousEntries)
	assert.Equal(t, fmt.Sprintf("S%d", MaximumNumberOfPreviousEntries+9), structures[0])
	assert.Equal(t, "S10", structures[len(structures)-1])
}

func TestPreviousPeptides_ReturnsCopy(t *testing.T) {
	s := newTestStore(t)
	s.AddPreviousPeptide("GLY")

	peptides := s.PreviousPeptides()
	peptides[0] = "changed"

	assert.Equal(t, []string{"GLY"}, s.PreviousPeptides())
	s.ClearPreviousPeptides()
	assert.False(t, s.HasPreviousPeptides())
}

func schemaItem(name, displayName, value string) *valueitem.ValueItem {
	item := valueitem.New(name, displayName, valueitem.TextFormat())
	item.SetValue(value)
	return item
}

func TestSchemaValueItems(t *testing.T) {
	s := newTestStore(t)

	s.AddSchemaValueItem(schemaItem("b", "Beta", "2"))
	s.AddSchemaValueItem(schemaItem("a", "Alpha", "1"))
	s.AddSchemaValueItem(nil)

	assert.True(t, s.HasSchemaValueItems())
	assert.Equal(t, 2, s.NumberOfSchemaValueItems())
	assert.Equal(t, []string{"a", "b"}, s.SortedSchemaValueItemNames())
	assert.True(t, s.HasSchemaValueItemWithDisplayName("Beta"))
	assert.True(t, s.HasMatchingSchemaValueItem(schemaItem("x", "Alpha", "1")))
	assert.False(t, s.HasMatchingSchemaValueItem(schemaItem("x", "Alpha", "9")))

	assert.True(t, s.ReplaceSchemaValueItem("b", schemaItem("c", "Gamma", "3")))
	assert.False(t, s.ReplaceSchemaValueItem("missing", schemaItem("d", "Delta", "4")))
	_, ok := s.SchemaValueItem("c")
	assert.True(t, ok)

	assert.Equal(t, 1, s.RemoveSchemaValueItems("c", "missing"))
	assert.True(t, s.RemoveSchemaValueItem("a"))
	assert.False(t, s.HasSchemaValueItems())
}

func TestSchemaValueItemContainerFile(t *testing.T) {
	s := newTestStore(t)
	path := filepath.Join(t.TempDir(), "schemata.xml")

	s.AddSchemaValueItem(schemaItem("a", "Alpha", "1"))
	s.AddSchemaValueItem(schemaItem("b", "Beta", "2"))
	require.NoError(t, s.WriteSchemaValueItemContainerToFile(path))

	s.RemoveAllSchemaValueItems()
	s.AddSchemaValueItem(schemaItem("z", "Zeta", "26"))
	require.NoError(t, s.ReadSchemaValueItemContainerFromFile(path))
	assert.Equal(t, []string{"a", "b"}, s.SortedSchemaValueItemNames())

	err := s.ReadSchemaValueItemContainerFromFile(filepath.Join(t.TempDir(), "missing.xml"))
	var persistenceErr *PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	assert.Equal(t, "schema read", persistenceErr.Operation)
}

func TestMergeSchemaValueItemContainerFromFile(t *testing.T) {
	source := newTestStore(t)
	path := filepath.Join(t.TempDir(), "schemata.xml")
	source.AddSchemaValueItem(schemaItem("a", "Alpha", "1"))
	source.AddSchemaValueItem(schemaItem("b", "Beta", "2"))
	require.NoError(t, source.WriteSchemaValueItemContainerToFile(path))

	s := newTestStore(t)
	s.AddSchemaValueItem(schemaItem("a", "Alpha", "1"))
	s.AddSchemaValueItem(schemaItem("b", "Other", "7"))

	added, err := s.MergeSchemaValueItemContainerFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"a", "b", "b (1)"}, s.SortedSchemaValueItemNames())

	renamed, ok := s.SchemaValueItem("b (1)")
	require.True(t, ok)
	assert.Equal(t, "Beta (1)", renamed.DisplayName)
}
