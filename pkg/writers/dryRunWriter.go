// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"bytes"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"
)

// DryRunWriter is the functional interface for working
// with dry run writers
type DryRunWriter interface {
	// GetWriter creates DryRunWriters writing to the
	// same backend but for different roots
	GetWriter(root string) Writer
	// Flush wraps up dryrun writing and flushes
	// results to the underlying writer (e.g. os.Stdout)
	Flush() bool
}

type dryRunWriter struct {
	Writer io.Writer
	files  []*file
	mux    sync.Mutex
	t1     time.Time
}

type file struct {
	path string
	size int
}

type writer struct {
	root   string
	parent *dryRunWriter
}

// NewDryRunWritersFactory creates factory for DryRunWriters
// writing to the same backend but for different roots
func NewDryRunWritersFactory(w io.Writer) DryRunWriter {
	return &dryRunWriter{
		Writer: w,
		files:  []*file{},
		t1:     time.Now(),
	}
}

func (d *dryRunWriter) GetWriter(root string) Writer {
	return &writer{
		root:   root,
		parent: d,
	}
}

func (w *writer) Write(name, path string, content []byte) error {
	p := strings.Join(slices.DeleteFunc([]string{w.root, path, name}, func(s string) bool { return s == "" }), "/")
	w.parent.mux.Lock()
	defer w.parent.mux.Unlock()
	w.parent.files = append(w.parent.files, &file{
		path: p,
		size: len(content),
	})
	return nil
}

// Flush formats and writes the dry-run result to the
// underlying writer
func (d *dryRunWriter) Flush() bool {
	var b bytes.Buffer
	d.mux.Lock()
	defer d.mux.Unlock()
	sort.Slice(d.files, func(i, j int) bool { return d.files[i].path < d.files[j].path })
	format(d.files, &b)

	elapsedTime := time.Since(d.t1)
	b.WriteString(fmt.Sprintf("\nBuild finished in %f seconds\n", elapsedTime.Seconds()))
	if _, err := d.Writer.Write(b.Bytes()); err != nil {
		fmt.Println(err.Error())
		return false
	}
	return true
}

func format(files []*file, b *bytes.Buffer) {
	all := map[string]struct{}{}
	for _, f := range files {
		dd := strings.Split(f.path, "/")
		for i, s := range dd {
			p := strings.Join(dd[:i+1], "/")
			if _, ok := all[p]; ok {
				continue
			}
			all[p] = struct{}{}
			b.WriteString(strings.Repeat("  ", i))
			if i == len(dd)-1 && f.size > 0 {
				b.WriteString(fmt.Sprintf("%s (%d bytes)\n", s, f.size))
				continue
			}
			b.WriteString(fmt.Sprintf("%s\n", s))
		}
	}
}
