package addon

import "slices"

// Selection is an immutable set of add-on ids.
type Selection struct {
	ids map[string]struct{}
}

func NewSelection(ids ...string) Selection {
	s := Selection{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Toggle flips membership of id: toggling twice yields the original set.
func (s Selection) Toggle(id string) Selection {
	next := NewSelection(s.IDs()...)
	if _, ok := next.ids[id]; ok {
		delete(next.ids, id)
	} else {
		next.ids[id] = struct{}{}
	}
	return next
}

func (s Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s Selection) Len() int {
	return len(s.ids)
}

func (s Selection) IsEmpty() bool {
	return len(s.ids) == 0
}

// IDs are returned sorted so snapshots are deterministic
func (s Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (s Selection) Equal(other Selection) bool {
	return slices.Equal(s.IDs(), other.IDs())
}
