/*
Package dictionary reads seed word lists used to pre-populate a completer.

Two formats are understood, picked by file extension:

	words.txt      one term per line, blank lines and lines starting with # skipped
	words.msgpack  a single msgpack array of strings

Terms are returned in file order and passed on untouched apart from
trimming surrounding whitespace in text files. Deduplication is left to
the trie, which ignores repeated inserts.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// LoaderStats describes one LoadSeeds run
type LoaderStats struct {
	Files   int
	Terms   int
	Skipped int
}

// ReadText reads a newline separated word list.
func ReadText(r io.Reader) ([]string, error) {
	var terms []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		terms = append(terms, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return terms, nil
}

// ReadMsgpack reads a msgpack encoded array of strings.
func ReadMsgpack(r io.Reader) ([]string, error) {
	var terms []string
	if err := msgpack.NewDecoder(r).Decode(&terms); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode msgpack word list: %w", err)
	}
	return terms, nil
}

// WriteMsgpack encodes terms as a msgpack array.
func WriteMsgpack(w io.Writer, terms []string) error {
	return msgpack.NewEncoder(w).Encode(terms)
}

// LoadFile reads one seed file in the format its extension names.
func LoadFile(filename string) ([]string, error) {
	format, err := DetectFileFormat(filename)
	if err != nil {
		return nil, err
	}
	if err := ValidateFileFormat(filename, format); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer file.Close()

	var terms []string
	switch format {
	case FormatText:
		terms, err = ReadText(file)
	case FormatMsgpack:
		terms, err = ReadMsgpack(file)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	log.Debugf("Loaded %d terms from %s", len(terms), filename)
	return terms, nil
}

// ListSeedFiles returns the seed files directly inside dir, sorted by name.
func ListSeedFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := DetectFileFormat(e.Name()); err == nil {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoSeedFiles)
	}
	sort.Strings(files)
	return files, nil
}

// LoadSeeds reads every path in order and concatenates the terms.
// A directory contributes its seed files in name order. Unreadable
// paths and files are logged and skipped so one bad list does not block
// startup. Path level failures are joined into the returned error after
// every remaining path has been loaded.
func LoadSeeds(paths []string) ([]string, LoaderStats, error) {
	var stats LoaderStats
	var terms []string
	var errs []error

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			log.Warnf("Skipping seed path: %v", err)
			stats.Skipped++
			errs = append(errs, fmt.Errorf("seed path %s: %w", p, err))
			continue
		}

		files := []string{p}
		if info.IsDir() {
			if files, err = ListSeedFiles(p); err != nil {
				log.Warnf("Skipping seed directory: %v", err)
				stats.Skipped++
				errs = append(errs, err)
				continue
			}
		}

		for _, f := range files {
			loaded, err := LoadFile(f)
			if err != nil {
				log.Warnf("Skipping seed file: %v", err)
				stats.Skipped++
				continue
			}
			stats.Files++
			stats.Terms += len(loaded)
			terms = append(terms, loaded...)
		}
	}
	return terms, stats, errors.Join(errs...)
}
