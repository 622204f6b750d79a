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

const (
	// ByteOrderedPartitioner is the legacy byte ordered partitioner.
	ByteOrderedPartitioner = "org.apache.cassandra.dht.ByteOrderedPartitioner"
	// EmoPartitioner replaces ByteOrderedPartitioner. Tokens are identical,
	// only the ownership computation differs.
	EmoPartitioner = "com.bazaarvoice.emodb.partitioner.EmoPartitioner"
	// Murmur3Partitioner is not equivalent to any other partitioner.
	Murmur3Partitioner = "org.apache.cassandra.dht.Murmur3Partitioner"
)

var defaultRegistry = MustNewRegistry(DefaultEquivalenceClasses()...)

// DefaultEquivalenceClasses returns the built in equivalence classes.
func DefaultEquivalenceClasses() []EquivalenceClass {
	return []EquivalenceClass{
		NewEquivalenceClass(ByteOrderedPartitioner, EmoPartitioner),
	}
}

// DefaultRegistry returns the process wide registry of built in classes.
func DefaultRegistry() Registry {
	return defaultRegistry
}

// AreEquivalent returns whether the two partitioners may gossip with each
// other in a hybrid ring. Every partitioner is equivalent to itself.
//
// Quorum reads, writes and read repair have been shown to work in a hybrid
// ring. Repair jobs, node joins and bootstrapping have not and should be
// avoided until every node runs the same partitioner.
func AreEquivalent(a, b string) bool {
	return defaultRegistry.AreEquivalent(a, b)
}
