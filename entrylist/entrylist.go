// Package entrylist holds the displayed view over a loaded set of diary entries.
//
// Two lists are kept: the visible one, which filtering and sorting act on,
// and the full one, which is the last set loaded (or the result of the last removal).
// Filtering and sorting never touch the full list, so Revert can always restore it.
// Removing entries does update the full list, as a removal is a real deletion.
package entrylist

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"
	"terminaldiary/database"
	"time"
)

type IndexError struct {
	Index, Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for %d entries", e.Index, e.Count)
}

type Controller struct {
	mutex sync.Mutex

	visible []database.Entry
	full    []database.Entry
}

func New() *Controller {
	return &Controller{
		visible: []database.Entry{},
		full:    []database.Entry{},
	}
}

func (c *Controller) ReplaceAll(entries []database.Entry) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.visible = slices.Clone(entries)
	if c.visible == nil {
		c.visible = []database.Entry{}
	}

	c.syncFull()
}

func (c *Controller) FilterByTitle(query string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.filter(query)
}

func (c *Controller) SortByTitleDescending() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.sortByTitleDescending()
}

// Fails without reordering anything if any visible entry has an unparseable date.
func (c *Controller) SortByDateDescending() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return c.sortByDateDescending()
}

func (c *Controller) FilterThenSortByTitleDescending(query string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.filter(query)
	c.sortByTitleDescending()
}

func (c *Controller) FilterThenSortByDate(query string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.filter(query)
	return c.sortByDateDescending()
}

// Sorts the visible entries without filtering, SORTNONE restores the full list.
func (c *Controller) ApplySort(mode SortMode) error {
	switch mode {
	case SORTNONE:
		c.Revert()
		return nil

	case SORTDATE:
		return c.SortByDateDescending()

	case SORTTITLEDESC:
		c.SortByTitleDescending()
		return nil

	default:
		panic(fmt.Sprintf("unexpected entrylist.SortMode: %#v", mode))
	}
}

// Filters by title, then sorts according to mode.
func (c *Controller) Search(query string, mode SortMode) error {
	switch mode {
	case SORTNONE:
		c.FilterByTitle(query)
		return nil

	case SORTDATE:
		return c.FilterThenSortByDate(query)

	case SORTTITLEDESC:
		c.FilterThenSortByTitleDescending(query)
		return nil

	default:
		panic(fmt.Sprintf("unexpected entrylist.SortMode: %#v", mode))
	}
}

func (c *Controller) Revert() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.visible = slices.Clone(c.full)
}

func (c *Controller) RemoveAt(index int) (database.Entry, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if index < 0 || index >= len(c.visible) {
		return database.Entry{}, &IndexError{Index: index, Count: len(c.visible)}
	}

	removed := c.visible[index]
	c.visible = slices.Delete(c.visible, index, index+1)

	c.syncFull()

	return removed, nil
}

func (c *Controller) ClearAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.visible = []database.Entry{}

	c.syncFull()
}

func (c *Controller) ItemAt(index int) (database.Entry, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if index < 0 || index >= len(c.visible) {
		return database.Entry{}, &IndexError{Index: index, Count: len(c.visible)}
	}

	return c.visible[index], nil
}

func (c *Controller) Count() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return len(c.visible)
}

func (c *Controller) Visible() []database.Entry {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return slices.Clone(c.visible)
}

func (c *Controller) Full() []database.Entry {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	return slices.Clone(c.full)
}

func (c *Controller) syncFull() {
	c.full = slices.Clone(c.visible)
}

func (c *Controller) filter(query string) {
	pattern := strings.ToLower(strings.TrimSpace(query))

	if pattern == "" {
		c.visible = slices.Clone(c.full)
		return
	}

	result := []database.Entry{}
	for _, entry := range c.full {
		if strings.Contains(strings.ToLower(entry.Title), pattern) {
			result = append(result, entry)
		}
	}

	c.visible = result
}

// Ties are broken by id, ascending
func (c *Controller) sortByTitleDescending() {
	slices.SortStableFunc(c.visible, func(left, right database.Entry) int {
		if result := cmp.Compare(right.Title, left.Title); result != 0 {
			return result
		}

		return cmp.Compare(left.Id, right.Id)
	})
}

func (c *Controller) sortByDateDescending() error {
	type datedEntry struct {
		entry database.Entry
		date  time.Time
	}

	dated := make([]datedEntry, len(c.visible))

	for i, entry := range c.visible {
		date, err := database.ParseDate(entry.Date)
		if err != nil {
			return err
		}

		dated[i] = datedEntry{entry: entry, date: date}
	}

	slices.SortStableFunc(dated, func(left, right datedEntry) int {
		if result := right.date.Compare(left.date); result != 0 {
			return result
		}

		return cmp.Compare(left.entry.Id, right.entry.Id)
	})

	for i, de := range dated {
		c.visible[i] = de.entry
	}

	return nil
}
