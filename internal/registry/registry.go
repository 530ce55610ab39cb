package registry

import "math/rand"

// Record is one cached entity as produced by a loader. Every record
// carries at least "id" and "tenant_id"; what else it carries is the
// contract between the producing loader and its consumers, not a
// reflection of the database row.
type Record map[string]any

// Registry is the in-memory identity cache for one pipeline run. Loaders
// append the entities they create and later loaders pick from them to
// resolve foreign keys, so the cache always reflects referential closure.
//
// Append-only within a run, single-threaded by design, discarded at exit.
type Registry struct {
	rand  *rand.Rand
	kinds map[string][]Record
}

func New(rnd *rand.Rand) *Registry {
	return &Registry{
		rand:  rnd,
		kinds: make(map[string][]Record),
	}
}

// Put appends rec under kind.
func (r *Registry) Put(kind string, rec Record) {
	r.kinds[kind] = append(r.kinds[kind], rec)
}

// Pick returns a uniformly random record of kind, or nil when none exist.
func (r *Registry) Pick(kind string) Record {
	recs := r.kinds[kind]
	if len(recs) == 0 {
		return nil
	}
	return recs[r.rand.Intn(len(recs))]
}

// PickBy returns a uniformly random record of kind satisfying pred, or
// nil. Used to scope picks by tenant or property.
func (r *Registry) PickBy(kind string, pred func(Record) bool) Record {
	var matches []Record
	for _, rec := range r.kinds[kind] {
		if pred(rec) {
			matches = append(matches, rec)
		}
	}
	if len(matches) == 0 {
		return nil
	}
	return matches[r.rand.Intn(len(matches))]
}

// All returns the records of kind in insertion order. Callers must not
// mutate the returned slice.
func (r *Registry) All(kind string) []Record {
	return r.kinds[kind]
}

// Count reports how many records exist under kind.
func (r *Registry) Count(kind string) int {
	return len(r.kinds[kind])
}

// Reset clears every kind. The pack runner calls this between packs so
// foreign keys never leak across pack boundaries.
func (r *Registry) Reset() {
	r.kinds = make(map[string][]Record)
}
