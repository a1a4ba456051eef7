package materials

import "sync"

type registryKey struct {
	scope string
	kind  Kind
	value int
}

// Registry remembers which fixed instructions a job has already counted.
// Create one per job and drop it afterwards; sharing it across jobs would
// suppress legitimate counts.
type Registry struct {
	mu   sync.Mutex
	seen map[registryKey]struct{}
}

func NewRegistry() *Registry {
	return &Registry{seen: make(map[registryKey]struct{})}
}

// Claim returns true the first time (scope, kind, value) is seen.
func (r *Registry) Claim(scope string, kind Kind, value int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := registryKey{scope: scope, kind: kind, value: value}
	if _, ok := r.seen[k]; ok {
		return false
	}
	r.seen[k] = struct{}{}
	return true
}

// Len reports how many distinct instructions have been claimed.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.seen)
}
