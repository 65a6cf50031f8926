// Package source collects URLs to work on from command line arguments,
// standard input, plain text files and zip archives.
package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/h2non/filetype"
)

// Stdin is the argument which requests reading from standard input.
const Stdin = "-"

// Item is a single URL candidate together with place it came from.
type Item struct {
	Origin string
	Line   int
	Text   string
}

func (i Item) String() string {
	if i.Line == 0 {
		return i.Origin
	}
	return fmt.Sprintf("%s:%d", i.Origin, i.Line)
}

// FromArgs turns command line arguments into items. Every argument is taken
// verbatim, except for "-" which makes stdin to be read line by line.
func FromArgs(ctx context.Context, args []string, stdin io.Reader) ([]Item, error) {
	var items []Item
	for i, arg := range args {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if arg != Stdin {
			items = append(items, Item{Origin: fmt.Sprintf("arg[%d]", i), Text: arg})
			continue
		}
		if stdin == nil {
			return nil, fmt.Errorf("standard input requested but not available")
		}
		lines, err := scanLines(ctx, "stdin", stdin)
		if err != nil {
			return nil, err
		}
		items = append(items, lines...)
	}
	return items, nil
}

// FromFile reads items from the file. Zip archives are recognized by content,
// only entries with names starting with pattern are read from them.
func FromFile(ctx context.Context, path, pattern string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open source: %w", err)
	}
	defer f.Close()

	head := make([]byte, 262)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("unable to read source: %w", err)
	}

	if filetype.Is(head[:n], "zip") {
		return fromArchive(ctx, path, pattern)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("unable to rewind source: %w", err)
	}
	return scanLines(ctx, path, f)
}

// scanLines reads one URL per line, blank lines and lines starting with "#"
// are skipped.
func scanLines(ctx context.Context, origin string, r io.Reader) ([]Item, error) {
	var items []Item

	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, Item{Origin: origin, Line: line, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", origin, err)
	}
	return items, nil
}
