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

package hybridring

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bazaarvoice/emopartitioner/src/cluster/partitioner"

	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

// ErrIncompatiblePartitioner is returned when a peer runs a partitioner that
// is not equivalent to the local one.
var ErrIncompatiblePartitioner = errors.New("incompatible partitioner")

type checkerMetrics struct {
	compatible   tally.Counter
	incompatible tally.Counter
	ringState    tally.Gauge
}

func newCheckerMetrics(scope tally.Scope) checkerMetrics {
	return checkerMetrics{
		compatible:   scope.Tagged(map[string]string{"result": "compatible"}).Counter("peer-checks"),
		incompatible: scope.Tagged(map[string]string{"result": "incompatible"}).Counter("peer-checks"),
		ringState:    scope.Gauge("ring-state"),
	}
}

type checker struct {
	sync.Mutex

	local    string
	registry partitioner.Registry
	logger   *zap.Logger
	scope    tally.Scope
	metrics  checkerMetrics

	// partitioners last reported by Status, so that gauges of partitioners
	// that left the ring are zeroed.
	reported map[string]struct{}
}

// NewChecker returns a new peer checker.
func NewChecker(opts Options) (Checker, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	iOpts := opts.InstrumentOptions()
	scope := iOpts.MetricsScope().SubScope("hybrid-ring")
	return &checker{
		local:    opts.LocalPartitioner(),
		registry: opts.Registry(),
		logger:   iOpts.Logger().With(zap.String("localPartitioner", opts.LocalPartitioner())),
		scope:    scope,
		metrics:  newCheckerMetrics(scope),
		reported: make(map[string]struct{}),
	}, nil
}

func (c *checker) Check(peer Peer) error {
	if c.registry.AreEquivalent(c.local, peer.Partitioner) {
		c.metrics.compatible.Inc(1)
		return nil
	}

	c.metrics.incompatible.Inc(1)
	c.logger.Warn("rejecting peer with incompatible partitioner",
		zap.String("peer", peer.ID),
		zap.String("peerPartitioner", peer.Partitioner))
	return fmt.Errorf("peer %s runs %s, local node runs %s: %w",
		peer.ID, peer.Partitioner, c.local, ErrIncompatiblePartitioner)
}

func (c *checker) Status(peers []Peer) Status {
	status := Status{
		State:        Homogeneous,
		Local:        c.local,
		Partitioners: make(map[string][]string),
	}

	for _, peer := range peers {
		status.Partitioners[peer.Partitioner] = append(status.Partitioners[peer.Partitioner], peer.ID)
		if !c.registry.AreEquivalent(c.local, peer.Partitioner) {
			status.Incompatible = append(status.Incompatible, peer)
		}
	}
	for _, ids := range status.Partitioners {
		sort.Strings(ids)
	}

	switch {
	case len(status.Incompatible) > 0:
		status.State = Incompatible
		ids := make([]string, 0, len(status.Incompatible))
		for _, peer := range status.Incompatible {
			ids = append(ids, peer.ID)
		}
		c.logger.Error("ring contains peers with incompatible partitioners",
			zap.Strings("peers", ids))
	case c.isHybrid(status):
		status.State = Hybrid
		c.logger.Warn("hybrid ring detected, avoid repair, node joins and bootstrap until every node runs the same partitioner",
			zap.Strings("partitioners", status.PartitionerNames()))
	}

	c.report(status)
	return status
}

func (c *checker) isHybrid(status Status) bool {
	for p := range status.Partitioners {
		if p != c.local {
			return true
		}
	}
	return false
}

func (c *checker) report(status Status) {
	c.Lock()
	defer c.Unlock()

	c.metrics.ringState.Update(float64(status.State))

	current := make(map[string]struct{}, len(status.Partitioners))
	for p, ids := range status.Partitioners {
		current[p] = struct{}{}
		c.peersGauge(p).Update(float64(len(ids)))
	}
	for p := range c.reported {
		if _, ok := current[p]; !ok {
			c.peersGauge(p).Update(0)
		}
	}
	c.reported = current
}

func (c *checker) peersGauge(p string) tally.Gauge {
	return c.scope.Tagged(map[string]string{"partitioner": p}).Gauge("peers")
}
