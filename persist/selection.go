package persist

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// Selection holds the index of the selected animation. It implements
// animation.Selector and is safe for concurrent use.
type Selection struct {
	store Store
	index atomic.Uint32
}

// LoadSelection creates a selection backed by the given store, initialized
// from its newest record. The index defaults to 0 if the store is empty.
func LoadSelection(store Store) (*Selection, error) {
	r, _, err := store.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load selection")
	}

	s := &Selection{store: store}
	s.index.Store(uint32(r.Index))
	return s, nil
}

// Index returns the selected index.
func (s *Selection) Index() uint8 {
	return uint8(s.index.Load())
}

// SetIndex sets the selected index without saving it.
func (s *Selection) SetIndex(i uint8) {
	s.index.Store(uint32(i))
}

// Save persists the selected index.
func (s *Selection) Save() error {
	return s.store.Save(Record{Index: s.Index()})
}
