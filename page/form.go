package page

import (
	"maps"
	"slices"
	"sync"
)

// Form keeps the values of a named set of inputs between renders.
type Form struct {
	mu     sync.Mutex
	fields []string
	values map[string]string
}

func NewForm(fields ...string) *Form {
	return &Form{fields: fields, values: map[string]string{}}
}

// Fill replaces the held values with the submitted values of known fields.
func (f *Form) Fill(values map[string]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = make(map[string]string, len(f.fields))
	for k, v := range values {
		if slices.Contains(f.fields, k) {
			f.values[k] = v
		}
	}
}

func (f *Form) Values() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return maps.Clone(f.values)
}

func (f *Form) Reset() {
	f.mu.Lock()
	f.values = map[string]string{}
	f.mu.Unlock()
}

func (f *Form) Fields() []string {
	return slices.Clone(f.fields)
}
