// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package writers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio/v2"
	"k8s.io/klog/v2"
)

// FSWriter is implementation of Writer interface for writing blobs to the file system.
// Existing files are replaced atomically
type FSWriter struct {
	Root string
}

func (f *FSWriter) Write(name, path string, content []byte) error {
	p := filepath.Join(f.Root, path)
	if len(content) == 0 {
		return nil
	}
	if err := os.MkdirAll(p, os.ModePerm); err != nil {
		return err
	}
	filePath := filepath.Join(p, name)
	if err := renameio.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error writing %s: %v", filePath, err)
	}
	klog.V(6).Infof("written %s", filePath)
	return nil
}
