package keymap

import "slices"

// Conflict records a key claimed by more than one action. The earlier
// binding keeps the key.
type Conflict struct {
	Key     string
	Kept    Action
	Dropped Action
}

// Resolver maps key strings to actions.
type Resolver struct {
	bindings  map[string]Action
	byAction  map[Action][]string
	conflicts []Conflict
}

// NewResolver creates a resolver from bindings. Bindings are applied in
// order, so global keys listed first cannot be shadowed by later contexts.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			if prev, ok := r.bindings[key]; ok {
				if prev != b.Action {
					r.conflicts = append(r.conflicts, Conflict{Key: key, Kept: prev, Dropped: b.Action})
				}
				continue
			}
			r.bindings[key] = b.Action
			r.byAction[b.Action] = append(r.byAction[b.Action], key)
		}
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys that resolve to action, in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return slices.Clone(r.byAction[action])
}

// Conflicts returns the keys that were bound to more than one action.
func (r *Resolver) Conflicts() []Conflict {
	return r.conflicts
}
