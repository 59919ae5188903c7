// Package scorefile persists finished session scores as a plain text file
// holding one non-negative integer per line.
package scorefile

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// File is a newline-delimited score file. It is safe for concurrent use;
// appends from several sessions never interleave.
type File struct {
	path string
	mu   sync.Mutex
}

// Open returns a File for path, expanding a leading ~ to the home directory.
// The file itself is not touched until the first read or append.
func Open(path string) (*File, error) {
	expanded, err := ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &File{path: expanded}, nil
}

// Path returns the resolved file path.
func (f *File) Path() string {
	return f.path
}

// Scores reads every score in file order. A missing file yields no scores.
// A line that is not a non-negative integer is an error naming that line.
func (f *File) Scores() ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scorefile: cannot open %s: %w", f.path, err)
	}
	defer file.Close()

	var scores []int
	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		n, err := strconv.Atoi(text)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("scorefile: %s:%d: invalid score %q", f.path, line, text)
		}
		scores = append(scores, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scorefile: cannot read %s: %w", f.path, err)
	}
	return scores, nil
}

// HighScore returns the largest stored score, or 0 when the file is missing
// or empty.
func (f *File) HighScore() (int, error) {
	scores, err := f.Scores()
	if err != nil {
		return 0, err
	}
	high := 0
	for _, s := range scores {
		high = max(high, s)
	}
	return high, nil
}

// Append writes score on its own line, creating the file and its parent
// directory if needed. The file is opened, written and closed in one call.
func (f *File) Append(score int) error {
	if score < 0 {
		return fmt.Errorf("scorefile: negative score %d", score)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("scorefile: cannot create directory: %w", err)
	}

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("scorefile: cannot open %s: %w", f.path, err)
	}
	if _, err := fmt.Fprintf(file, "%d\n", score); err != nil {
		file.Close()
		return fmt.Errorf("scorefile: cannot write %s: %w", f.path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("scorefile: cannot close %s: %w", f.path, err)
	}
	return nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("scorefile: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
