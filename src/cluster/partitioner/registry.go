// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package partitioner

import (
	"errors"
	"fmt"
)

var (
	// ErrClassTooSmall is returned when an equivalence class has fewer than
	// two members.
	ErrClassTooSmall = errors.New("equivalence class must have at least two partitioners")
	// ErrOverlappingClasses is returned when a partitioner belongs to more
	// than one equivalence class.
	ErrOverlappingClasses = errors.New("partitioner belongs to more than one equivalence class")
)

type registry struct {
	byID    map[string]EquivalenceClass
	classes []EquivalenceClass
}

// NewRegistry returns an immutable registry over the given equivalence
// classes. Classes must be disjoint so that equivalence stays transitive.
func NewRegistry(classes ...EquivalenceClass) (Registry, error) {
	r := &registry{
		byID:    make(map[string]EquivalenceClass),
		classes: make([]EquivalenceClass, 0, len(classes)),
	}
	for _, class := range classes {
		if class.Len() < 2 {
			return nil, fmt.Errorf("invalid class %s: %w", class, ErrClassTooSmall)
		}
		for id := range class.members {
			if existing, ok := r.byID[id]; ok {
				return nil, fmt.Errorf("partitioner %s in %s and %s: %w",
					id, existing, class, ErrOverlappingClasses)
			}
			r.byID[id] = class
		}
		r.classes = append(r.classes, class)
	}
	return r, nil
}

// MustNewRegistry returns a new registry and panics if the classes are invalid.
func MustNewRegistry(classes ...EquivalenceClass) Registry {
	r, err := NewRegistry(classes...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *registry) AreEquivalent(a, b string) bool {
	if a == b {
		return true
	}
	class, ok := r.byID[a]
	if !ok {
		return false
	}
	return class.Contains(b)
}

func (r *registry) EquivalenceClass(id string) (EquivalenceClass, bool) {
	class, ok := r.byID[id]
	return class, ok
}

func (r *registry) EquivalenceClasses() []EquivalenceClass {
	classes := make([]EquivalenceClass, len(r.classes))
	copy(classes, r.classes)
	return classes
}
