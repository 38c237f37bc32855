package belanja

import (
	"iter"
	"log/slog"
	"slices"
	"strings"

	"github.com/prasetyo/belanja/kvstore"
)

// keyItems is the store key holding the serialized item collection.
const keyItems = "shoppingItems"

// List is the ordered shopping list. Insertion order is display and
// export order. Every mutation persists the full collection to the
// backing store before returning.
type List struct {
	items []Item
	kv    kvstore.Store // nil for a detached, in-memory list
}

// NewList returns an empty list detached from any store.
func NewList() *List { return &List{} }

// LoadList reads the persisted collection from kv. Missing or corrupt
// data yields the empty list; corruption is logged, never surfaced.
func LoadList(kv kvstore.Store) *List {
	l := &List{kv: kv}
	raw, ok, err := kv.Get(keyItems)
	if err != nil {
		slog.Warn("could not read shopping list, starting empty", "err", err)
		return l
	}
	if !ok {
		return l
	}
	items, err := DecodeItems(strings.NewReader(raw))
	if err != nil {
		slog.Warn("discarding corrupt shopping list", "err", err)
		return l
	}
	l.items = items
	return l
}

// Add validates the draft, appends the resulting item to the end of the
// list and persists. On a validation failure the list is unchanged and
// the error is a *ValidationError.
func (l *List) Add(d Draft) (Item, error) {
	it, err := newItem(d)
	if err != nil {
		return Item{}, err
	}
	l.items = append(l.items, it)
	return it, l.persist()
}

// Delete removes the item with the given id. Deleting an unknown id is
// a no-op, not an error.
func (l *List) Delete(id string) error {
	for i, it := range l.items {
		if it.ID == id {
			l.items = slices.Delete(l.items, i, i+1)
			break
		}
	}
	return l.persist()
}

// Clear empties the list unconditionally.
func (l *List) Clear() error {
	l.items = nil
	return l.persist()
}

// Total returns the grand total: the sum of every item's stored total.
// Since items are immutable after creation this always equals the sum
// of quantity times price over the list.
func (l *List) Total() Amount {
	var sum Amount
	for _, it := range l.items {
		sum = sum.Add(it.Total)
	}
	return sum
}

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// Items iterates the list in insertion order.
func (l *List) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range l.items {
			if !yield(it) {
				return
			}
		}
	}
}

// Snapshot returns a copy of the items in insertion order.
func (l *List) Snapshot() []Item { return slices.Clone(l.items) }

func (l *List) persist() error {
	if l.kv == nil {
		return nil
	}
	var b strings.Builder
	if err := EncodeItems(&b, l.items); err != nil {
		return err
	}
	return l.kv.Set(keyItems, b.String())
}
