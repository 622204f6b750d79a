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

// Package hybridring checks that gossiping peers run partitioners the local
// node can share a ring with, and reports whether the ring is in the middle
// of a partitioner migration.
package hybridring

import (
	"errors"
	"fmt"
	"sort"

	"github.com/bazaarvoice/emopartitioner/src/cluster/partitioner"
	"github.com/bazaarvoice/emopartitioner/src/x/instrument"

	"go.uber.org/multierr"
)

var (
	errNoPeerID          = errors.New("peer id not set")
	errNoPeerPartitioner = errors.New("peer partitioner not set")
)

// Peer is the partitioner state a remote node advertised over gossip.
type Peer struct {
	ID          string `yaml:"id"`
	Partitioner string `yaml:"partitioner"`
}

// Validate returns an error when the peer has no ID or no partitioner.
func (p Peer) Validate() error {
	var err error
	if p.ID == "" {
		err = multierr.Append(err, errNoPeerID)
	}
	if p.Partitioner == "" {
		err = multierr.Append(err, fmt.Errorf("peer %s: %w", p.ID, errNoPeerPartitioner))
	}
	return err
}

// State is the partitioner state of the ring as seen by the local node.
type State int

const (
	// Homogeneous means every node runs the local partitioner.
	Homogeneous State = iota
	// Hybrid means every node runs a partitioner equivalent to the local one
	// but more than one partitioner is in use.
	Hybrid
	// Incompatible means at least one peer runs a partitioner that is not
	// equivalent to the local one.
	Incompatible
)

func (s State) String() string {
	switch s {
	case Homogeneous:
		return "homogeneous"
	case Hybrid:
		return "hybrid"
	case Incompatible:
		return "incompatible"
	}
	return "unknown"
}

// Status describes the ring as seen by the local node.
type Status struct {
	State State

	// Local is the partitioner of the local node.
	Local string

	// Partitioners maps each partitioner advertised by peers to the sorted
	// IDs of the peers running it.
	Partitioners map[string][]string

	// Incompatible are the peers whose partitioner is not equivalent to Local.
	Incompatible []Peer
}

// SafeForTopologyChange returns whether repairs, node joins and
// bootstrapping may run. Only quorum reads, writes and read repair are known
// to work in a hybrid ring.
func (s Status) SafeForTopologyChange() bool {
	return s.State == Homogeneous
}

// PartitionerNames returns the partitioners advertised by peers, sorted.
func (s Status) PartitionerNames() []string {
	names := make([]string, 0, len(s.Partitioners))
	for p := range s.Partitioners {
		names = append(names, p)
	}
	sort.Strings(names)
	return names
}

// Checker validates peers against the local partitioner.
type Checker interface {
	// Check returns an error wrapping ErrIncompatiblePartitioner when the
	// peer cannot share a ring with the local node.
	Check(peer Peer) error

	// Status classifies the ring made of the local node and the given peers.
	Status(peers []Peer) Status
}

// Options is a set of checker options.
type Options interface {
	// Validate validates the options.
	Validate() error

	// SetInstrumentOptions sets the instrument options.
	SetInstrumentOptions(value instrument.Options) Options

	// InstrumentOptions returns the instrument options.
	InstrumentOptions() instrument.Options

	// SetRegistry sets the partitioner equivalence registry.
	SetRegistry(value partitioner.Registry) Options

	// Registry returns the partitioner equivalence registry.
	Registry() partitioner.Registry

	// SetLocalPartitioner sets the partitioner run by the local node.
	SetLocalPartitioner(value string) Options

	// LocalPartitioner returns the partitioner run by the local node.
	LocalPartitioner() string
}
