// This file is part of vm6502.
//
// vm6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vm6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vm6502.  If not, see <https://www.gnu.org/licenses/>.

package scrollback

import (
	"strings"
	"sync"
)

const (
	backspace = 0x08
	del       = 0x7f
)

// Buffer is an io.Writer that keeps at most a fixed number of complete lines.
// Backspace and delete characters remove the most recent character of the
// incomplete line. Other control characters, apart from newline and tab, are
// ignored.
//
// Safe for use from more than one goroutine.
type Buffer struct {
	crit sync.Mutex

	maxLines int
	lines    []string
	partial  []rune
}

// NewBuffer is the preferred method of initialisation for the Buffer type.
// A maxLines value of less than one is treated as one.
func NewBuffer(maxLines int) *Buffer {
	return &Buffer{
		maxLines: max(1, maxLines),
		lines:    make([]string, 0, max(1, maxLines)),
	}
}

// Write implements the io.Writer interface.
func (b *Buffer) Write(p []byte) (int, error) {
	b.crit.Lock()
	defer b.crit.Unlock()

	for _, c := range p {
		switch {
		case c == '\n':
			b.lines = append(b.lines, string(b.partial))
			b.partial = b.partial[:0]
			if len(b.lines) > b.maxLines {
				b.lines = b.lines[len(b.lines)-b.maxLines:]
			}
		case c == backspace || c == del:
			if len(b.partial) > 0 {
				b.partial = b.partial[:len(b.partial)-1]
			}
		case c == '\t' || (c >= 0x20 && c < 0x7f):
			b.partial = append(b.partial, rune(c))
		}
	}

	return len(p), nil
}

// Lines returns a copy of the complete lines followed by the incomplete line.
// The last entry is an empty string if the incomplete line is empty.
func (b *Buffer) Lines() []string {
	b.crit.Lock()
	defer b.crit.Unlock()

	l := make([]string, 0, len(b.lines)+1)
	l = append(l, b.lines...)
	l = append(l, string(b.partial))
	return l
}

// Tail returns no more than the last n entries returned by Lines().
func (b *Buffer) Tail(n int) []string {
	l := b.Lines()
	if n < len(l) {
		l = l[len(l)-max(0, n):]
	}
	return l
}

func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Clear removes all text from the buffer.
func (b *Buffer) Clear() {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.lines = b.lines[:0]
	b.partial = b.partial[:0]
}
