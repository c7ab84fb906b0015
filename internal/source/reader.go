// Package source implements the buffered character cursor the lexer reads
// from: one- and two-character lookahead, line/column tracking, lexeme
// marking, and a rolling content digest.
package source

import (
	"bufio"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
)

// EOT is the sentinel rune returned once the underlying stream is exhausted.
const EOT = rune(-1)

// Position is a 1-based line/column pair sampled at the first character of a
// lexeme.
type Position struct {
	Line   int
	Column int
}

// Reader presents an input file as a cursor with Current/Lookahead2 queries.
// Consume advances the cursor by exactly one character. It is not safe for
// concurrent use by multiple goroutines; each compilation owns its own
// Reader.
type Reader struct {
	r    *bufio.Reader
	name string

	cur   rune
	next  rune
	atEOT bool

	line   int
	column int

	markLine, markColumn int
	lexeme               []rune

	h        hash.Hash
	finalSum [32]byte
	eofSeen  bool
}

// New constructs a Reader over r. name is used only for diagnostics produced
// by callers (e.g. resource errors); the Reader itself never opens files.
func New(r io.Reader, name string) *Reader {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 with a nil key never errors; guard anyway rather
		// than silently losing the digest.
		panic(err)
	}

	rd := &Reader{
		r:      bufio.NewReader(r),
		name:   name,
		line:   1,
		column: 1,
		h:      h,
	}
	rd.cur = rd.readRune()
	rd.next = rd.readRune()
	if rd.cur == EOT {
		rd.eofSeen = true
		copy(rd.finalSum[:], rd.h.Sum(nil))
	}
	return rd
}

// Name returns the name the Reader was constructed with (typically a file
// path), purely for diagnostic messages.
func (rd *Reader) Name() string {
	return rd.name
}

func (rd *Reader) readRune() rune {
	if rd.atEOT {
		return EOT
	}
	r, _, err := rd.r.ReadRune()
	if err != nil {
		rd.atEOT = true
		return EOT
	}
	return r
}

// Current returns the character under the cursor without consuming it.
func (rd *Reader) Current() rune {
	return rd.cur
}

// Lookahead2 returns the character one past the cursor without consuming
// anything.
func (rd *Reader) Lookahead2() rune {
	return rd.next
}

// AtEnd reports whether Current() is the end-of-text sentinel.
func (rd *Reader) AtEnd() bool {
	return rd.cur == EOT
}

// Pos returns the current 1-based line/column.
func (rd *Reader) Pos() Position {
	return Position{Line: rd.line, Column: rd.column}
}

// Consume advances the cursor by one character, feeding the consumed
// character into both the lexeme buffer and the rolling digest, and updating
// line/column per the newline/tab rules in SPEC_FULL.md §1.
func (rd *Reader) Consume() {
	rd.advance(true)
}

// ConsumeSkip advances the cursor by one character like Consume, but bypasses
// the rolling digest. Used inside comments and pragmas, whose content must
// not perturb the digest of "real" source text.
func (rd *Reader) ConsumeSkip() {
	rd.advance(false)
}

func (rd *Reader) advance(digest bool) {
	if rd.cur == EOT {
		return
	}

	if digest {
		var buf [4]byte
		n := encodeRune(buf[:], rd.cur)
		rd.h.Write(buf[:n])
	}

	rd.lexeme = append(rd.lexeme, rd.cur)

	if rd.cur == '\n' {
		rd.line++
		rd.column = 1
	} else {
		rd.column++
	}

	rd.cur = rd.next
	rd.next = rd.readRune()

	if rd.cur == EOT && !rd.eofSeen {
		rd.eofSeen = true
		copy(rd.finalSum[:], rd.h.Sum(nil))
	}
}

func encodeRune(buf []byte, r rune) int {
	if r < 0 {
		return 0
	}
	n := 0
	// minimal UTF-8 encoder; avoids importing unicode/utf8 twice with the
	// bufio.Reader's own decoding.
	switch {
	case r < 0x80:
		buf[0] = byte(r)
		n = 1
	case r < 0x800:
		buf[0] = byte(0xC0 | (r >> 6))
		buf[1] = byte(0x80 | (r & 0x3F))
		n = 2
	case r < 0x10000:
		buf[0] = byte(0xE0 | (r >> 12))
		buf[1] = byte(0x80 | ((r >> 6) & 0x3F))
		buf[2] = byte(0x80 | (r & 0x3F))
		n = 3
	default:
		buf[0] = byte(0xF0 | (r >> 18))
		buf[1] = byte(0x80 | ((r >> 12) & 0x3F))
		buf[2] = byte(0x80 | ((r >> 6) & 0x3F))
		buf[3] = byte(0x80 | (r & 0x3F))
		n = 4
	}
	return n
}

// Mark remembers the current position as the start of the next lexeme.
func (rd *Reader) Mark() {
	rd.lexeme = rd.lexeme[:0]
	rd.markLine = rd.line
	rd.markColumn = rd.column
}

// Lexeme returns the substring consumed since the last call to Mark, and the
// position Mark was called at.
func (rd *Reader) Lexeme() (string, Position) {
	return string(rd.lexeme), Position{Line: rd.markLine, Column: rd.markColumn}
}

// Digest returns the rolling content digest of every character consumed via
// Consume (not ConsumeSkip) up to end-of-text. Digest panics if end-of-text
// has not yet been reached, since the spec requires the digest be readable
// only once the whole file has been seen.
func (rd *Reader) Digest() [32]byte {
	if !rd.eofSeen {
		panic("source: Digest called before end-of-text was reached")
	}
	return rd.finalSum
}
