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

// Package partitioner answers whether two partitioner implementations can
// coexist in the same ring while a cluster migrates from one to the other.
package partitioner

// Registry maps partitioner identifiers to the equivalence class they belong
// to. Implementations are immutable and safe for concurrent use.
type Registry interface {
	// AreEquivalent returns true when a and b are identical or a belongs to
	// an equivalence class containing b.
	AreEquivalent(a, b string) bool

	// EquivalenceClass returns the class the identifier belongs to, if any.
	EquivalenceClass(id string) (EquivalenceClass, bool)

	// EquivalenceClasses returns every registered class in registration order.
	EquivalenceClasses() []EquivalenceClass
}
