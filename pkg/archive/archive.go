// pkg/archive/archive.go

// Package archive lists the members of Unix static library archives.
package archive

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/blakesmith/ar"
)

// Magic starts every ar archive
const Magic = "!<arch>\n"

// ErrNotArchive is returned for files that are not ar archives
var ErrNotArchive = errors.New("not an ar archive")

// Member is one object file stored in an archive
type Member struct {
	Name string
	Size int64
}

// Members reads the archive at path and returns its object members in
// archive order. Symbol and long-name tables are not reported.
func Members(path string) ([]Member, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}
	defer f.Close()

	members, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return members, nil
}

// Read lists the object members of the archive in r. GNU (System V)
// and BSD member naming are both understood.
func Read(r io.Reader) ([]Member, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(len(Magic))
	if err != nil || string(magic) != Magic {
		return nil, ErrNotArchive
	}

	arReader := ar.NewReader(newHeaderReader(br))

	var longNames []byte
	members := []Member{}
	for {
		header, err := arReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading ar entry: %w", err)
		}

		name, size := header.Name, header.Size
		switch {
		case name == "/" || name == "/SYM64/" || strings.HasPrefix(name, "__.SYMDEF"):
			// symbol index
			continue
		case name == "//":
			longNames, err = io.ReadAll(arReader)
			if err != nil {
				return nil, fmt.Errorf("reading long name table: %w", err)
			}
			continue
		case strings.HasPrefix(name, "#1/"):
			name, size, err = bsdName(arReader, name[3:], size)
			if err != nil {
				return nil, err
			}
			if strings.HasPrefix(name, "__.SYMDEF") {
				continue
			}
		case strings.HasPrefix(name, "/"):
			name = longName(longNames, name[1:])
		default:
			name = strings.TrimSuffix(name, "/")
		}

		members = append(members, Member{Name: name, Size: size})
	}

	return members, nil
}

// longName resolves a GNU "/offset" reference into the long name table
func longName(table []byte, offset string) string {
	off, err := strconv.Atoi(offset)
	if err != nil || off < 0 || off >= len(table) {
		return "/" + offset
	}
	name := table[off:]
	if end := bytes.IndexByte(name, '\n'); end >= 0 {
		name = name[:end]
	}
	return strings.TrimSuffix(string(name), "/")
}

// bsdName reads a BSD "#1/len" name stored at the start of the member
// data and returns it with the size of the data that follows it
func bsdName(r io.Reader, length string, size int64) (string, int64, error) {
	n, err := strconv.ParseInt(length, 10, 64)
	if err != nil || n < 0 || n > size {
		return "", 0, fmt.Errorf("reading ar entry: bad BSD name length %q", length)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", 0, fmt.Errorf("reading BSD member name: %w", err)
	}
	return string(bytes.TrimRight(buf, "\x00")), size - n, nil
}
