// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// String renders m with right-aligned columns and bracket glyphs:
//
//	⎡ 8 3 2 ⎤
//	⎢ 1 7 9 ⎥
//	⎣ 5 3 3 ⎦
//
// A single-row matrix is rendered as "[ a b c ]". Values are printed with %v,
// so the output reproduces the stored values exactly. Every line, including
// the last, ends with a newline.
func (m *Matrix[T]) String() string {
	if m == nil {
		return "<nil>"
	}

	// Render each cell once and track the widest cell per column.
	cells := make([]string, len(m.data))
	width := make([]int, m.c)
	for idx, v := range m.data {
		s := fmt.Sprint(v)
		cells[idx] = s
		if w := utf8.RuneCountInString(s); w > width[idx%m.c] {
			width[idx%m.c] = w
		}
	}

	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		open, closing := "⎢", "⎥"
		switch {
		case m.r == 1:
			open, closing = "[", "]"
		case i == 0:
			open, closing = "⎡", "⎤"
		case i == m.r-1:
			open, closing = "⎣", "⎦"
		}

		sb.WriteString(open)
		for j := 0; j < m.c; j++ {
			s := cells[i*m.c+j]
			sb.WriteByte(' ')
			sb.WriteString(strings.Repeat(" ", width[j]-utf8.RuneCountInString(s)))
			sb.WriteString(s)
		}
		sb.WriteByte(' ')
		sb.WriteString(closing)
		sb.WriteByte('\n')
	}

	return sb.String()
}
