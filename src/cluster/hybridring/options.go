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

	"github.com/bazaarvoice/emopartitioner/src/cluster/partitioner"
	"github.com/bazaarvoice/emopartitioner/src/x/instrument"

	"go.uber.org/multierr"
)

var (
	errNoInstrumentOptions = errors.New("instrument options not set")
	errNoRegistry          = errors.New("partitioner registry not set")
	errNoLocalPartitioner  = errors.New("local partitioner not set")
)

type options struct {
	iOpts            instrument.Options
	registry         partitioner.Registry
	localPartitioner string
}

// NewOptions creates new checker options using the built in equivalences.
func NewOptions() Options {
	return &options{
		iOpts:    instrument.NewOptions(),
		registry: partitioner.DefaultRegistry(),
	}
}

func (o *options) Validate() error {
	var err error
	if o.iOpts == nil {
		err = multierr.Append(err, errNoInstrumentOptions)
	}
	if o.registry == nil {
		err = multierr.Append(err, errNoRegistry)
	}
	if o.localPartitioner == "" {
		err = multierr.Append(err, errNoLocalPartitioner)
	}
	return err
}

func (o *options) SetInstrumentOptions(value instrument.Options) Options {
	opts := *o
	opts.iOpts = value
	return &opts
}

func (o *options) InstrumentOptions() instrument.Options {
	return o.iOpts
}

func (o *options) SetRegistry(value partitioner.Registry) Options {
	opts := *o
	opts.registry = value
	return &opts
}

func (o *options) Registry() partitioner.Registry {
	return o.registry
}

func (o *options) SetLocalPartitioner(value string) Options {
	opts := *o
	opts.localPartitioner = value
	return &opts
}

func (o *options) LocalPartitioner() string {
	return o.localPartitioner
}
