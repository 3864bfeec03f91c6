package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"strings"
)

const emptyField = " "

// String renders the universe one line per row with cells separated by a space
func (u *Universe[T]) String() string {
	return u.Format(1)
}

// Format renders like String with every field left-justified to justify columns
func (u *Universe[T]) Format(justify int) string {
	justify = max(justify, 1)

	var b strings.Builder
	b.Grow(u.height * u.width * (justify + 1))
	for y, row := range u.Rows() {
		if y > 0 {
			b.WriteByte('\n')
		}
		x := 0
		for v, ok := range row {
			if x > 0 {
				b.WriteByte(' ')
			}
			field := emptyField
			if ok {
				field = fmt.Sprint(v)
			}
			b.WriteString(field)
			if pad := justify - len(field); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			x++
		}
	}
	return b.String()
}

// Hash returns an MD5 digest of the dimensions and the live positions
func (u *Universe[T]) Hash() string {
	h := md5.New()
	var dims [16]byte
	binary.LittleEndian.PutUint64(dims[:8], uint64(u.width))
	binary.LittleEndian.PutUint64(dims[8:], uint64(u.height))
	h.Write(dims[:])

	row := make([]byte, u.width)
	for y := range u.height {
		for x := range u.width {
			row[x] = 0
			if _, ok := u.cells[Position{X: x, Y: y}]; ok {
				row[x] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
