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
	"fmt"

	"go.uber.org/multierr"
)

// Configuration configures the equivalence registry.
type Configuration struct {
	// DisableDefaults drops the built in equivalence classes.
	DisableDefaults bool `yaml:"disableDefaults"`

	// Equivalences are additional equivalence classes.
	Equivalences []EquivalenceClassConfiguration `yaml:"equivalences"`
}

// EquivalenceClassConfiguration configures a single equivalence class.
type EquivalenceClassConfiguration struct {
	Partitioners []string `yaml:"partitioners" validate:"min=2"`
}

// Validate validates the configuration.
func (c Configuration) Validate() error {
	var err error
	for i, eq := range c.Equivalences {
		if len(eq.Partitioners) < 2 {
			err = multierr.Append(err, fmt.Errorf("equivalences[%d]: %w", i, ErrClassTooSmall))
		}
		for j, id := range eq.Partitioners {
			if id == "" {
				err = multierr.Append(err, fmt.Errorf("equivalences[%d].partitioners[%d] is empty", i, j))
			}
		}
	}
	return err
}

// NewRegistry builds a registry from the configuration.
func (c Configuration) NewRegistry() (Registry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var classes []EquivalenceClass
	if !c.DisableDefaults {
		classes = append(classes, DefaultEquivalenceClasses()...)
	}
	for _, eq := range c.Equivalences {
		classes = append(classes, NewEquivalenceClass(eq.Partitioners...))
	}
	return NewRegistry(classes...)
}
