package generator

import (
	"fmt"
	"sync"
)

// Filter narrows List results. Empty fields match everything.
type Filter struct {
	Category  Category
	Framework string
}

// Registry is an in-memory catalog of templates keyed by id and slug.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	templates []Template
	byKey     map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string]int)}
}

// NewDefaultRegistry creates a registry holding the built-in templates.
func NewDefaultRegistry() (*Registry, error) {
	r := NewRegistry()
	if err := r.RegisterAll(Builtin()); err != nil {
		return nil, fmt.Errorf("registering built-in templates: %w", err)
	}
	return r, nil
}

// Register adds a template. It fails if the template is invalid or if its id
// or slug is already taken by another template, as either id or slug.
func (r *Registry) Register(t Template) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTemplate, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byKey[t.ID]; ok {
		return fmt.Errorf("%w: id %q already registered", ErrDuplicateTemplate, t.ID)
	}
	if _, ok := r.byKey[t.Slug]; ok {
		return fmt.Errorf("%w: slug %q already registered", ErrDuplicateTemplate, t.Slug)
	}

	idx := len(r.templates)
	r.templates = append(r.templates, t.Clone())
	r.byKey[t.ID] = idx
	r.byKey[t.Slug] = idx
	return nil
}

// RegisterAll registers templates in order and stops at the first failure.
// Templates registered before the failure stay registered.
func (r *Registry) RegisterAll(templates []Template) error {
	for _, t := range templates {
		if err := r.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// Get looks a template up by id or slug.
func (r *Registry) Get(idOrSlug string) (Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byKey[idOrSlug]
	if !ok {
		return Template{}, false
	}
	return r.templates[idx].Clone(), true
}

// Lookup is Get returning ErrTemplateNotFound when nothing matches.
func (r *Registry) Lookup(idOrSlug string) (Template, error) {
	t, ok := r.Get(idOrSlug)
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrTemplateNotFound, idOrSlug)
	}
	return t, nil
}

// List returns matching templates in registration order.
func (r *Registry) List(filter Filter) []Template {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Template{}
	for _, t := range r.templates {
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		if filter.Framework != "" && !t.HasFramework(filter.Framework) {
			continue
		}
		out = append(out, t.Clone())
	}
	return out
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}
