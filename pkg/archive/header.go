// pkg/archive/header.go
package archive

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// ar header field layout
const (
	headerSize = 60
	modeStart  = 40
	modeEnd    = 48
	sizeStart  = 48
	sizeEnd    = 58
)

// headerReader passes an ar stream through unchanged except for member
// mode fields shorter than three digits. GNU ar writes "0" or blanks for
// the symbol and long-name tables, and ar.Reader slices the first three
// mode characters off unconditionally.
type headerReader struct {
	r       io.Reader
	pending []byte // header bytes not yet returned
	body    int64  // member data left to pass through
	pad     bool   // a padding byte follows the member data
	started bool
}

func newHeaderReader(r io.Reader) *headerReader {
	return &headerReader{r: r}
}

func (h *headerReader) Read(p []byte) (int, error) {
	if !h.started {
		h.started = true
		h.pending = make([]byte, len(Magic))
		if _, err := io.ReadFull(h.r, h.pending); err != nil {
			return 0, err
		}
	}

	if len(h.pending) == 0 && h.body == 0 {
		if h.pad {
			h.pad = false
			if err := h.readPad(); err != nil {
				return 0, err
			}
		} else if err := h.nextHeader(); err != nil {
			return 0, err
		}
	}

	if len(h.pending) > 0 {
		n := copy(p, h.pending)
		h.pending = h.pending[n:]
		return n, nil
	}

	if int64(len(p)) > h.body {
		p = p[:h.body]
	}
	n, err := h.r.Read(p)
	h.body -= int64(n)
	if err == io.EOF && h.body > 0 {
		err = io.ErrUnexpectedEOF
	}
	return n, err
}

func (h *headerReader) nextHeader() error {
	header := make([]byte, headerSize)
	n, err := io.ReadFull(h.r, header)
	if err == io.ErrUnexpectedEOF && bytes.Count(header[:n], []byte("\n")) == n {
		// trailing padding some writers leave after the last member
		return io.EOF
	}
	if err != nil {
		return err
	}

	mode := bytes.TrimRight(header[modeStart:modeEnd], " ")
	if len(mode) < 3 {
		copy(header[modeStart:modeEnd], fmt.Sprintf("%-8s", "000"+string(mode)))
	}

	size, err := strconv.ParseInt(string(bytes.TrimSpace(header[sizeStart:sizeEnd])), 10, 64)
	if err != nil || size < 0 {
		size = 0
	}
	h.body = size
	h.pad = size%2 == 1
	h.pending = header
	return nil
}

// readPad queues the padding byte after odd-sized member data. A
// missing pad at the end of the archive is supplied.
func (h *headerReader) readPad() error {
	pad := make([]byte, 1)
	if _, err := io.ReadFull(h.r, pad); err != nil {
		if err != io.EOF {
			return err
		}
		pad[0] = '\n'
	}
	h.pending = pad
	return nil
}
