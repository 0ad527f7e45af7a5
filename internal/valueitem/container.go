package valueitem

import (
	"fmt"
	"slices"
	"sort"

	"github.com/samber/lo"
)

// UpdateNotifier is told when an item value changes through Container.SetValue
// so dependent items can follow.
type UpdateNotifier interface {
	ItemChanged(container *Container, item *ValueItem)
}

// Container is a set of value items keyed by name
type Container struct {
	items        map[string]*ValueItem
	nextPosition int
	notifier     UpdateNotifier
}

func NewContainer() *Container {
	return &Container{items: make(map[string]*ValueItem)}
}

func (c *Container) SetUpdateNotifier(notifier UpdateNotifier) {
	c.notifier = notifier
}

// Add stores items, replacing items with the same name. Items without a
// vertical position are placed after the existing ones.
func (c *Container) Add(items ...*ValueItem) {
	for _, item := range items {
		if item.VerticalPosition == 0 {
			c.nextPosition++
			item.VerticalPosition = c.nextPosition
		} else if item.VerticalPosition > c.nextPosition {
			c.nextPosition = item.VerticalPosition
		}
		c.items[item.Name] = item
	}
}

func (c *Container) Get(name string) (*ValueItem, bool) {
	item, ok := c.items[name]
	return item, ok
}

func (c *Container) Has(name string) bool {
	_, ok := c.items[name]
	return ok
}

func (c *Container) Remove(name string) bool {
	if _, ok := c.items[name]; !ok {
		return false
	}
	delete(c.items, name)
	return true
}

func (c *Container) Len() int {
	return len(c.items)
}

// Items returns the items ordered by vertical position
func (c *Container) Items() []*ValueItem {
	items := lo.Values(c.items)
	sort.Slice(items, func(i, j int) bool {
		if items[i].VerticalPosition != items[j].VerticalPosition {
			return items[i].VerticalPosition < items[j].VerticalPosition
		}
		return items[i].Name < items[j].Name
	})
	return items
}

// Names returns the item names in alphabetical order
func (c *Container) Names() []string {
	names := lo.Keys(c.items)
	sort.Strings(names)
	return names
}

// ItemsOfNode returns the items placed below the given top-level node
func (c *Container) ItemsOfNode(node string) []*ValueItem {
	return lo.Filter(c.Items(), func(item *ValueItem, _ int) bool {
		return len(item.NodeNames) > 0 && item.NodeNames[0] == node
	})
}

// TopLevelNodes returns the distinct first node names in item order
func (c *Container) TopLevelNodes() []string {
	return lo.Uniq(lo.FilterMap(c.Items(), func(item *ValueItem, _ int) (string, bool) {
		if len(item.NodeNames) == 0 {
			return "", false
		}
		return item.NodeNames[0], true
	}))
}

// SetValue replaces the values of the named item and notifies dependents
func (c *Container) SetValue(name string, values ...string) error {
	item, ok := c.items[name]
	if !ok {
		return fmt.Errorf("no value item named %q", name)
	}
	if slices.Equal(item.Values, values) {
		return nil
	}
	item.SetValues(values...)
	if c.notifier != nil {
		c.notifier.ItemChanged(c, item)
	}
	return nil
}

// Clone returns a deep copy without the update notifier
func (c *Container) Clone() *Container {
	clone := NewContainer()
	clone.nextPosition = c.nextPosition
	for name, item := range c.items {
		clone.items[name] = item.Clone()
	}
	return clone
}
