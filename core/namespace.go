package core

import "sort"

// Namespace is the binding context of an interactive session - variables
// set by the user and results bound by executed queries.
// The host issues one invocation at a time, so no locking is needed.
type Namespace struct {
	vars map[string]any
}

func NewNamespace() *Namespace {
	return &Namespace{
		vars: make(map[string]any),
	}
}

func (n *Namespace) Get(name string) (any, bool) {
	val, ok := n.vars[name]
	return val, ok
}

func (n *Namespace) Set(name string, value any) {
	n.vars[name] = value
}

func (n *Namespace) Delete(name string) {
	delete(n.vars, name)
}

func (n *Namespace) Len() int {
	return len(n.vars)
}

// Names returns the bound variable names in deterministic order.
func (n *Namespace) Names() []string {
	names := make([]string, 0, len(n.vars))
	for name := range n.vars {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
