// Package scanner implements a single pass stream tokenizer iterator.
//
// The package makes use of the standard library bufio.Scanner to buffer and
// split data read from an io.Reader.  Scanner has a set of standard splitters
// for words, lines and runes and supports custom split functions as well.
//
// The cursor scans the first token when it is created and one more token
// each time it is incremented.  All copies of a cursor share the scanner.
package scanner

import (
	"fmt"

	"github.com/jake-scott/go-iterator"
)

// Scanner() is an interface defining a subset of the methods exposed by
// bufio.Scanner, and is here primarily to assist with unit testing.
type Scanner interface {
	Scan() bool
	Text() string
	Err() error
}

// ErrTooManyTokens is returned in response to a panic in the
// scanner.Scan() method, the result of too many tokens being returned without
// the scanner advancing.
type ErrTooManyTokens struct {
	panicMessage string
	err          error
}

func (e ErrTooManyTokens) Error() string {
	if e.err == nil {
		return "too many tokens: " + e.panicMessage
	} else {
		return fmt.Sprintf("too many tokens: %s", e.err)
	}
}

func (e ErrTooManyTokens) Unwrap() error {
	return e.err
}

type tokens struct {
	scanner Scanner
	token   string
	pos     int
	done    bool
	err     error
}

// scan calls Scanner.Scan().  If the scanner panics, the stream ends and
// the panic is recorded as an ErrTooManyTokens error.
func (t *tokens) scan() {
	defer func() {
		switch err := recover().(type) {
		default:
			t.err = ErrTooManyTokens{panicMessage: fmt.Sprintf("%v", err)}
			t.token, t.done = "", true
		case error:
			t.err = ErrTooManyTokens{err: err}
			t.token, t.done = "", true
		case nil:
		}
	}()

	if t.scanner.Scan() {
		t.token = t.scanner.Text()
		t.pos++
		return
	}

	t.token, t.done = "", true
}

// Cursor is a position in a stream of tokens.
type Cursor struct {
	t   *tokens
	pos int
}

// Iterator is the facade over a Cursor.
type Iterator = iterator.Facade[Cursor, string, *Cursor]

// Begin returns an iterator over the tokens of s, positioned at the first
// token.
func Begin(s Scanner) Iterator {
	t := &tokens{scanner: s}
	t.scan()

	return iterator.New[Cursor, string](Cursor{t: t, pos: t.pos})
}

// End returns the iterator every exhausted scanner iterator is equal to.
func End() Iterator {
	return iterator.New[Cursor, string](Cursor{})
}

// Range returns the range of all tokens of s.
func Range(s Scanner) iterator.Range[Cursor, string, *Cursor] {
	return iterator.MakeRange(Begin(s), End())
}

func (c Cursor) atEnd() bool {
	return c.t == nil || c.t.done
}

// Err returns the panic message from the scanner if one occurred during
// a scan.  Otherwise, Err calls the Scanner's Err() method, which
// returns nil if there are no errors or if the end of input is reached,
// otherwise the first error encountered by the scanner.
func (c Cursor) Err() error {
	if c.t == nil {
		return nil
	}
	if c.t.err != nil {
		return c.t.err
	}

	return c.t.scanner.Err()
}

// Dereference returns the most recently scanned token, or the empty string
// at the end of the stream.
func (c Cursor) Dereference() string {
	if c.t == nil {
		return ""
	}
	return c.t.token
}

// Increment scans the next token.
func (c *Cursor) Increment() {
	if c.atEnd() {
		return
	}

	c.t.scan()
	c.pos = c.t.pos
}

// Decrement panics: tokens can not be scanned backwards.
func (c *Cursor) Decrement() {
	panic(iterator.Unsupported("scanner: decrement"))
}

// Advance scans n tokens.  It panics if n is negative.
func (c *Cursor) Advance(n int) {
	if n < 0 {
		panic(iterator.Unsupported("scanner: advance backwards"))
	}
	for ; n > 0; n-- {
		c.Increment()
	}
}

func (c *Cursor) Equal(other Cursor) bool {
	if c.atEnd() || other.atEnd() {
		return c.atEnd() == other.atEnd()
	}
	return c.t == other.t && c.pos == other.pos
}

func (c *Cursor) DistanceFrom(other Cursor) int {
	if c.atEnd() || other.atEnd() || c.t != other.t {
		panic(iterator.Unsupported("scanner: distance"))
	}
	return other.pos - c.pos
}

func (c Cursor) Categories() (iterator.ReturnCategory, iterator.TraversalCategory) {
	return iterator.Readable, iterator.InputTraversal
}
