package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"sgc/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates an initialized empty report, falling back to a temporary
// file when the configured destination is not writable.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	r := &Report{entries: make(map[string]entry)}

	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	r.file = f
	return r, nil
}

// entry is a single report item: either a path captured now and read at
// finalization time, or a data blob captured immediately.
type entry struct {
	source string
	abs    string
	stamp  time.Time
	data   []byte
}

// Report accumulates everything needed for a debug hand-off: logs, active
// configuration, raw container blocks and decoded document dumps. All
// methods tolerate a nil receiver so call sites do not need to check whether
// reporting was requested.
// NOTE: presently not to be used concurrently!
type Report struct {
	entries map[string]entry
	file    *os.File
}

// Close writes out the final archive.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	defer r.file.Close()
	return r.finalize()
}

// Name returns the name of the underlying archive file.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store records a file path to be archived under name at finalization.
func (r *Report) Store(name, path string) {
	if r == nil {
		return
	}
	if old, exists := r.entries[name]; exists && old.source != path {
		// a name must always refer to the same file
		panic(fmt.Sprintf("attempt to overwrite report entry [%s]: was %s, now %s", name, old.source, path))
	}

	e := entry{source: path, abs: path}
	if p, err := filepath.Abs(path); err == nil {
		e.abs = p
	}
	r.entries[name] = e
}

// StoreData records a data blob to be archived under name. Colliding names
// are versioned rather than rejected since container block tags repeat.
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	if _, exists := r.entries[name]; exists {
		name = fmt.Sprintf("%s-%d", name, time.Now().UnixNano())
	}
	r.entries[name] = entry{data: data, stamp: time.Now()}
}

func (r *Report) finalize() error {
	arc := zip.NewWriter(r.file)
	defer arc.Close()

	names, manifest := r.manifest()
	if err := archive(arc, "MANIFEST", time.Now(), manifest); err != nil {
		return err
	}

	// same order as the manifest
	for _, name := range names {
		e := r.entries[name]
		if len(e.data) > 0 {
			if err := archive(arc, name, e.stamp, bytes.NewReader(e.data)); err != nil {
				return err
			}
			continue
		}

		// files that never materialized are not an error
		info, err := os.Stat(e.abs)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		f, err := os.Open(e.abs)
		if err != nil {
			return err
		}
		if err := archive(arc, name, info.ModTime(), f); err != nil {
			f.Close()
			return err
		}
		f.Close()
	}
	return nil
}

func (r *Report) manifest() ([]string, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	if len(r.entries) == 0 {
		return nil, buf
	}

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	now := time.Now()
	for _, name := range names {
		e := r.entries[name]
		if e.stamp.IsZero() {
			e.stamp = now
		}
		fmt.Fprintf(buf, "%s\t%s\t%s : %s\n", e.stamp.UTC().Format(time.UnixDate), name, e.source, e.abs)
	}
	return names, buf
}

func archive(dst *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := dst.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return err
	}
	_, err = io.Copy(w, src)
	return err
}
