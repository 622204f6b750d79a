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

package main

import (
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/bazaarvoice/emopartitioner/src/cluster/partitioner"
)

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, contents string) string {
	f, err := ioutil.TempFile("", "partitioner-equiv")
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString(contents)
	require.NoError(t, err)
	return f.Name()
}

func TestCheckCommand(t *testing.T) {
	out, err := run(t, "check", partitioner.ByteOrderedPartitioner, partitioner.EmoPartitioner)
	require.NoError(t, err)
	assert.Equal(t, "equivalent\n", out)

	out, err = run(t, "check", partitioner.Murmur3Partitioner, partitioner.EmoPartitioner)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNotEquivalent))
	assert.Equal(t, "not equivalent\n", out)

	_, err = run(t, "check", partitioner.EmoPartitioner)
	require.Error(t, err)
}

func TestCheckCommandWithConfig(t *testing.T) {
	fname := writeConfig(t, `
partitioner:
  equivalences:
    - partitioners: [a.Partitioner, b.Partitioner]
`)
	defer os.Remove(fname)

	out, err := run(t, "-f", fname, "check", "a.Partitioner", "b.Partitioner")
	require.NoError(t, err)
	assert.Equal(t, "equivalent\n", out)
}

func TestClassesCommand(t *testing.T) {
	out, err := run(t, "classes")
	require.NoError(t, err)
	assert.Equal(t, partitioner.EmoPartitioner+" "+partitioner.ByteOrderedPartitioner+"\n", out)
}

func TestInvalidPartitionerConfig(t *testing.T) {
	fname := writeConfig(t, `
partitioner:
  equivalences:
    - partitioners: [a.Partitioner]
`)
	defer os.Remove(fname)

	_, err := run(t, "-f", fname, "classes")
	require.Error(t, err)
	assert.True(t, errors.Is(err, partitioner.ErrClassTooSmall))
}

func TestRingCommandHybrid(t *testing.T) {
	fname := writeConfig(t, `
logging:
  level: error
ring:
  local: com.bazaarvoice.emodb.partitioner.EmoPartitioner
  peers:
    - id: node-b
      partitioner: org.apache.cassandra.dht.ByteOrderedPartitioner
    - id: node-a
      partitioner: org.apache.cassandra.dht.ByteOrderedPartitioner
`)
	defer os.Remove(fname)

	out, err := run(t, "-f", fname, "ring")
	require.NoError(t, err)
	assert.Equal(t, "state: hybrid\n"+
		"local: "+partitioner.EmoPartitioner+"\n"+
		"safe for topology change: false\n"+
		partitioner.ByteOrderedPartitioner+": node-a, node-b\n", out)
}

func TestRingCommandIncompatible(t *testing.T) {
	fname := writeConfig(t, `
logging:
  level: fatal
ring:
  local: com.bazaarvoice.emodb.partitioner.EmoPartitioner
  peers:
    - id: node-a
      partitioner: org.apache.cassandra.dht.Murmur3Partitioner
`)
	defer os.Remove(fname)

	out, err := run(t, "-f", fname, "ring")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errIncompatibleRing))
	assert.Contains(t, out, "state: incompatible\n")
}

func TestRingCommandRequiresLocal(t *testing.T) {
	_, err := run(t, "ring")
	require.Equal(t, errNoLocal, err)
}

func TestRingCommandRejectsIncompletePeers(t *testing.T) {
	fname := writeConfig(t, `
ring:
  local: com.bazaarvoice.emodb.partitioner.EmoPartitioner
  peers:
    - partitioner: org.apache.cassandra.dht.ByteOrderedPartitioner
    - id: node-b
`)
	defer os.Remove(fname)

	out, err := run(t, "-f", fname, "ring")
	require.Error(t, err)
	assert.Empty(t, out)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "ring.peers[0]")
	assert.Contains(t, errs[0].Error(), "peer id not set")
	assert.Contains(t, errs[1].Error(), "ring.peers[1]")
	assert.Contains(t, errs[1].Error(), "peer partitioner not set")
}
