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
	"sort"
	"strings"
)

// EquivalenceClass is an immutable set of partitioner identifiers that are
// interchangeable for the purpose of hybrid ring operation.
type EquivalenceClass struct {
	members map[string]struct{}
}

// NewEquivalenceClass returns a new equivalence class holding the given
// identifiers, duplicates are collapsed.
func NewEquivalenceClass(ids ...string) EquivalenceClass {
	members := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		members[id] = struct{}{}
	}
	return EquivalenceClass{members: members}
}

// Contains returns whether the identifier is a member of the class.
func (c EquivalenceClass) Contains(id string) bool {
	_, ok := c.members[id]
	return ok
}

// Len returns the number of members.
func (c EquivalenceClass) Len() int {
	return len(c.members)
}

// Members returns the members sorted ascending. The returned slice is a copy.
func (c EquivalenceClass) Members() []string {
	ids := make([]string, 0, len(c.members))
	for id := range c.members {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c EquivalenceClass) String() string {
	return "[" + strings.Join(c.Members(), ", ") + "]"
}
