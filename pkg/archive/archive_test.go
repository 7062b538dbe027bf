package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/blakesmith/ar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	name string
	body string
}

func buildArchive(t *testing.T, entries ...entry) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := ar.NewWriter(&buf)
	require.NoError(t, w.WriteGlobalHeader())
	for _, e := range entries {
		require.NoError(t, w.WriteHeader(&ar.Header{
			Name:    e.name,
			Size:    int64(len(e.body)),
			Mode:    0644,
			ModTime: time.Unix(0, 0),
		}))
		_, err := w.Write([]byte(e.body))
		require.NoError(t, err)
	}
	return buf.Bytes()
}

func TestReadMembers(t *testing.T) {
	data := buildArchive(t,
		entry{"/", "symtab"},
		entry{"graph.o/", "abc"},
		entry{"layout.o", "defgh"},
	)

	members, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []Member{
		{Name: "graph.o", Size: 3},
		{Name: "layout.o", Size: 5},
	}, members)
}

func TestReadLongNames(t *testing.T) {
	table := "a_very_long_object_name.o/\nanother_long_member.o/\n"
	data := buildArchive(t,
		entry{"//", table},
		entry{"/0", "x"},
		entry{"/27", "yy"},
		entry{"/999", "z"},
	)

	members, err := Read(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, []Member{
		{Name: "a_very_long_object_name.o", Size: 1},
		{Name: "another_long_member.o", Size: 2},
		{Name: "/999", Size: 1},
	}, members)
}

func TestReadEmptyArchive(t *testing.T) {
	members, err := Read(bytes.NewReader([]byte(Magic)))
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestReadNotArchive(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte("\x7fELF not an archive")))
	assert.True(t, errors.Is(err, ErrNotArchive))

	_, err = Read(bytes.NewReader(nil))
	assert.True(t, errors.Is(err, ErrNotArchive))
}

func TestMembersFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "libigraph.a")
	require.NoError(t, os.WriteFile(path, buildArchive(t, entry{"igraph.o", "1234"}), 0644))

	members, err := Members(path)
	require.NoError(t, err)
	assert.Equal(t, []Member{{Name: "igraph.o", Size: 4}}, members)

	_, err = Members(filepath.Join(dir, "missing.a"))
	assert.ErrorContains(t, err, "opening archive")

	bad := filepath.Join(dir, "igraph.lib")
	require.NoError(t, os.WriteFile(bad, []byte("MZ"), 0644))
	_, err = Members(bad)
	assert.True(t, errors.Is(err, ErrNotArchive))
}

// rawHeader formats an ar member header the way GNU and BSD ar write it
func rawHeader(name, mode string, size int) string {
	return fmt.Sprintf("%-16s%-12s%-6s%-6s%-8s%-10d`\n", name, "0", "0", "0", mode, size)
}

func rawMember(name, mode, body string) string {
	s := rawHeader(name, mode, len(body)) + body
	if len(body)%2 == 1 {
		s += "\n"
	}
	return s
}

func TestReadGNULayout(t *testing.T) {
	table := "a_very_long_object_name.o/\n"
	data := Magic +
		rawMember("/", "0", "\x00\x00\x00\x01\x00\x00\x00\x00sym\x00") +
		rawMember("//", "", table) +
		rawMember("short.o/", "644", "abc") +
		rawMember("/0", "644", "defgh")

	members, err := Read(bytes.NewReader([]byte(data)))
	require.NoError(t, err)
	assert.Equal(t, []Member{
		{Name: "short.o", Size: 3},
		{Name: "a_very_long_object_name.o", Size: 5},
	}, members)
}

func TestReadBSDLayout(t *testing.T) {
	data := Magic +
		rawMember("#1/20", "100644", "__.SYMDEF SORTED\x00\x00\x00\x00symbols!") +
		rawMember("#1/28", "100644", "a_very_long_object_name.o\x00\x00\x00body") +
		rawMember("b.o", "100644", "xy")

	members, err := Read(bytes.NewReader([]byte(data)))
	require.NoError(t, err)
	assert.Equal(t, []Member{
		{Name: "a_very_long_object_name.o", Size: 4},
		{Name: "b.o", Size: 2},
	}, members)
}

func TestReadBadBSDNameLength(t *testing.T) {
	data := Magic + rawMember("#1/99", "100644", "short")

	_, err := Read(bytes.NewReader([]byte(data)))
	assert.ErrorContains(t, err, "bad BSD name length")
}

func TestHeaderReaderFixesShortModes(t *testing.T) {
	data := Magic + rawMember("/", "0", "x") + rawMember("b.o/", "100644", "yz")

	out, err := io.ReadAll(newHeaderReader(bytes.NewReader([]byte(data))))
	require.NoError(t, err)
	require.Len(t, out, len(data))

	first := out[len(Magic) : len(Magic)+headerSize]
	assert.Equal(t, "0000    ", string(first[modeStart:modeEnd]))
	assert.Equal(t, data[len(Magic)+headerSize:], string(out[len(Magic)+headerSize:]))
}

func TestHeaderReaderPassesWellFormedArchives(t *testing.T) {
	data := buildArchive(t, entry{"graph.o/", "abc"}, entry{"layout.o", "defgh"})

	out, err := io.ReadAll(newHeaderReader(bytes.NewReader(data)))
	require.NoError(t, err)
	assert.Equal(t, data, out)
}
