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

package configflag

import (
	"bytes"
	"flag"
	"io"
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazaarvoice/emopartitioner/src/x/config"
)

type testConfig struct {
	Local string `yaml:"local"`
}

type mockOS struct {
	stdout   bytes.Buffer
	exitCode int
	exited   bool
}

func (m *mockOS) Exit(status int) {
	m.exited = true
	m.exitCode = status
}

func (m *mockOS) Stdout() io.Writer {
	return &m.stdout
}

func writeConfig(t *testing.T, contents string) string {
	f, err := ioutil.TempFile("", "configflag")
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString(contents)
	require.NoError(t, err)
	return f.Name()
}

func TestMainLoadNoFiles(t *testing.T) {
	var opts Options
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts.RegisterFlagSet(fs)
	require.NoError(t, fs.Parse(nil))

	cfg := testConfig{Local: "default.Partitioner"}
	require.NoError(t, opts.MainLoad(&cfg, config.Options{}))
	assert.Equal(t, "default.Partitioner", cfg.Local)
}

func TestMainLoadFiles(t *testing.T) {
	first := writeConfig(t, "local: a.Partitioner\n")
	defer os.Remove(first)
	second := writeConfig(t, "local: b.Partitioner\n")
	defer os.Remove(second)

	var opts Options
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts.RegisterFlagSet(fs)
	require.NoError(t, fs.Parse([]string{"-f", first, "-f", second}))

	var cfg testConfig
	require.NoError(t, opts.MainLoad(&cfg, config.Options{}))
	assert.Equal(t, "b.Partitioner", cfg.Local)
}

func TestMainLoadMissingFile(t *testing.T) {
	var opts Options
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts.RegisterFlagSet(fs)
	require.NoError(t, fs.Parse([]string{"-f", "./does-not-exist.yaml"}))

	var cfg testConfig
	require.Error(t, opts.MainLoad(&cfg, config.Options{}))
}

func TestMainLoadDumpAndExit(t *testing.T) {
	fname := writeConfig(t, "local: a.Partitioner\n")
	defer os.Remove(fname)

	fakeOS := &mockOS{}
	opts := Options{osFns: fakeOS}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	opts.RegisterFlagSet(fs)
	require.NoError(t, fs.Parse([]string{"-f", fname, "-d"}))

	var cfg testConfig
	require.NoError(t, opts.MainLoad(&cfg, config.Options{}))
	assert.True(t, fakeOS.exited)
	assert.Equal(t, 0, fakeOS.exitCode)
	assert.Equal(t, "local: a.Partitioner\n", fakeOS.stdout.String())
}

func TestFlagStringSliceOverridesDefaults(t *testing.T) {
	files := FlagStringSlice{Value: []string{"default.yaml"}}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Var(&files, "f", "config files")

	require.NoError(t, fs.Parse([]string{"-f", "a.yaml", "-f", "b.yaml"}))
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, files.Value)
	assert.Equal(t, "[a.yaml b.yaml]", files.String())
}
