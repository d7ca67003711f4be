// Package listfile reads and writes the line-oriented text files the
// classifier consumes and produces: plain signature lists, flag CSV files,
// and the merged output. Files ending in ".gz" are compressed and
// decompressed transparently.
package listfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/agentstation/apiflags/pkg/apilist"
	"github.com/agentstation/apiflags/pkg/constants"
	"github.com/agentstation/apiflags/pkg/errors"
)

// ReadLines returns the content lines of the file at path. Lines are
// trimmed of surrounding whitespace; blank lines and comment lines are
// dropped. Order is preserved and duplicates are kept, callers decide how
// to treat repeats.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WrapIO("open", path, err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, constants.GzipExtension) {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, errors.WrapIO("decompress", path, err)
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, constants.ScannerBufferSize), constants.MaxLineBytes)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, constants.CommentPrefix) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return lines, nil
}

// ReadEntries reads a plain list file of one member signature per line.
func ReadEntries(path string) ([]apilist.Entry, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	return apilist.Entries(lines), nil
}

// ReadRows reads a flag CSV file where each line holds a member signature
// optionally followed by comma-separated tags.
func ReadRows(path string) ([]apilist.Row, error) {
	lines, err := ReadLines(path)
	if err != nil {
		return nil, err
	}
	rows := make([]apilist.Row, len(lines))
	for i, line := range lines {
		rows[i] = apilist.ParseRow(line)
	}
	return rows, nil
}

// WriteLines writes lines to path, one per line, each with a trailing
// newline. The data lands in a temporary sibling file first and is renamed
// into place, so readers never observe a partial file. A ".gz" path is
// compressed. Missing parent directories are created.
func WriteLines(path string, lines []string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("mkdir", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return errors.WrapIO("create", path, err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	var w io.Writer = tmp
	var gz *gzip.Writer
	if strings.HasSuffix(path, constants.GzipExtension) {
		gz = gzip.NewWriter(tmp)
		w = gz
	}

	buf := bufio.NewWriterSize(w, constants.WriteBufferSize)
	for _, line := range lines {
		if _, err := fmt.Fprintln(buf, line); err != nil {
			return errors.WrapIO("write", path, err)
		}
	}
	if err := buf.Flush(); err != nil {
		return errors.WrapIO("write", path, err)
	}
	if gz != nil {
		if err := gz.Close(); err != nil {
			return errors.WrapIO("compress", path, err)
		}
	}

	if err := tmp.Chmod(constants.FilePermissions); err != nil {
		return errors.WrapIO("chmod", path, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.WrapIO("rename", path, err)
	}
	return nil
}
