package actions

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownAction = errors.New("unknown action")

type Registry struct {
	actions map[string]Action
}

func NewRegistry(actions ...Action) (*Registry, error) {
	r := &Registry{actions: make(map[string]Action, len(actions))}
	for _, a := range actions {
		if _, ok := r.actions[a.Name()]; ok {
			return nil, fmt.Errorf("action %q registered twice", a.Name())
		}
		r.actions[a.Name()] = a
	}
	return r, nil
}

func (r *Registry) Get(name string) (Action, error) {
	a, ok := r.actions[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}

// Describe lists registered action names in sorted order.
func (r *Registry) Describe() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
