// Package logger provides the source-location and diagnostic primitives
// shared by the tokenizer, parser, and printer: byte offsets ("Loc"),
// byte ranges ("Range"), and a line/column tracker that reports
// UTF-16 columns per the CSS source map convention.
package logger

import (
	"unicode/utf8"
)

// Loc is a byte offset into a Source's contents. It is intentionally a
// flat integer rather than a (line, column) pair: most of the lexer and
// parser only ever need to compare or add offsets, and deferring
// line/column computation to LineColumnTracker keeps the hot path cheap.
type Loc struct {
	Start int32
}

// Range is a [Loc, Loc+Len) byte span.
type Range struct {
	Loc Loc
	Len int32
}

func (r Range) End() int32 {
	return r.Loc.Start + r.Len
}

// Source is an immutable view of the input being parsed, plus an
// optional name used to tag diagnostics (e.g. "<stdin>" or a file path
// supplied by the caller).
type Source struct {
	Contents string
	// PrettyPath is shown in formatted diagnostics; it has no effect on
	// parsing and is never read from disk by this package.
	PrettyPath string
}

func (s *Source) TextForRange(r Range) string {
	return s.Contents[r.Loc.Start:r.End()]
}

// SourceLocation is the public, already-resolved form of a position:
// line (0-based), UTF-16 column (1-based), and the offending text.
type SourceLocation struct {
	File     string
	Line     int // 0-based
	Column   int // 1-based, UTF-16 code units
	Length   int // UTF-16 code units
	LineText string
}

// LineColumnTracker resolves byte offsets into (line, column) pairs. It
// is scoped to one parse call and caches the last offset it resolved so
// that repeated calls with monotonically increasing offsets (the common
// case — the lexer and parser both visit the source in order) are O(1)
// amortized instead of O(n) each time.
type LineColumnTracker struct {
	source       *Source
	lastByte     int32
	lastLine     int
	lastLineByte int32 // byte offset of the start of lastLine
}

func MakeLineColumnTracker(source *Source) LineColumnTracker {
	return LineColumnTracker{source: source}
}

// locate walks from the cached position to "offset", normalizing "\r",
// "\r\n", and "\f" to a single line increment each (per spec: CR, CRLF,
// and FF all count as one line break for line-tracking purposes).
func (t *LineColumnTracker) locate(offset int32) (line int, lineByteStart int32) {
	contents := t.source.Contents

	if offset >= t.lastByte {
		i := t.lastByte
		line = t.lastLine
		lineByteStart = t.lastLineByte
		for i < offset && int(i) < len(contents) {
			c := contents[i]
			switch c {
			case '\n':
				line++
				i++
				lineByteStart = i
			case '\r':
				i++
				if int(i) < len(contents) && contents[i] == '\n' {
					i++
				}
				line++
				lineByteStart = i
			case '\f':
				i++
				line++
				lineByteStart = i
			default:
				i++
			}
		}
	} else {
		// Backwards seek: rare (only used for "matching" error locations
		// that point earlier than the current lex position). Recompute
		// from the start of the file rather than maintaining a reverse
		// scan — this path is not hot.
		line = 0
		lineByteStart = 0
		i := int32(0)
		for i < offset {
			c := contents[i]
			switch c {
			case '\n':
				line++
				i++
				lineByteStart = i
			case '\r':
				i++
				if int(i) < len(contents) && contents[i] == '\n' {
					i++
				}
				line++
				lineByteStart = i
			case '\f':
				i++
				line++
				lineByteStart = i
			default:
				i++
			}
		}
	}

	t.lastByte = offset
	t.lastLine = line
	t.lastLineByte = lineByteStart
	return
}

// utf16ColumnOf counts UTF-16 code units between a line's first byte and
// "offset", 1-based (an offset equal to lineByteStart is column 1).
func utf16ColumnOf(contents string, lineByteStart int32, offset int32) int {
	column := 1
	i := lineByteStart
	for i < offset {
		r, width := utf8.DecodeRuneInString(contents[i:])
		if width == 0 {
			break
		}
		if r > 0xFFFF {
			column += 2 // surrogate pair
		} else {
			column++
		}
		i += int32(width)
	}
	return column
}

func lineTextFor(contents string, lineByteStart int32) string {
	end := lineByteStart
	for int(end) < len(contents) {
		c := contents[end]
		if c == '\n' || c == '\r' || c == '\f' {
			break
		}
		end++
	}
	return contents[lineByteStart:end]
}

// Locate resolves a range into a SourceLocation with UTF-16 column and
// length, and the text of the line it starts on.
func (t *LineColumnTracker) Locate(r Range) SourceLocation {
	line, lineByteStart := t.locate(r.Loc.Start)
	column := utf16ColumnOf(t.source.Contents, lineByteStart, r.Loc.Start)
	endColumn := utf16ColumnOf(t.source.Contents, lineByteStart, r.End())
	length := endColumn - column
	if length < 0 {
		length = 0
	}
	return SourceLocation{
		File:     t.source.PrettyPath,
		Line:     line,
		Column:   column,
		Length:   length,
		LineText: lineTextFor(t.source.Contents, lineByteStart),
	}
}

// MsgData is a single resolved diagnostic payload: text plus an optional
// location (nil for messages not tied to a source span).
type MsgData struct {
	Text     string
	Location *SourceLocation
}

func (t *LineColumnTracker) MsgData(r Range, text string) MsgData {
	loc := t.Locate(r)
	return MsgData{Text: text, Location: &loc}
}

type MsgKind uint8

const (
	Error MsgKind = iota
	Warning
)

func (k MsgKind) String() string {
	if k == Warning {
		return "warning"
	}
	return "error"
}

type Msg struct {
	Kind  MsgKind
	Data  MsgData
	Notes []MsgData
}

// String renders a diagnostic the way a caller formatting errors for a
// terminal would: "file:line:column: kind: message" (spec §7 "User-
// visible: applications read errors after parsing and may format each
// as file:line:column: message").
func (m Msg) String() string {
	if m.Data.Location == nil {
		return m.Kind.String() + ": " + m.Data.Text
	}
	loc := m.Data.Location
	file := loc.File
	if file == "" {
		file = "<input>"
	}
	return fmtLoc(file, loc.Line, loc.Column) + ": " + m.Kind.String() + ": " + m.Data.Text
}

func fmtLoc(file string, line, column int) string {
	return file + ":" + itoa(line+1) + ":" + itoa(column)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Log accumulates diagnostics for one parse call. It is intentionally a
// value type wrapping a pointer to a slice so it can be passed by value
// through the lexer and parser the way esbuild's own Log is.
type Log struct {
	msgs *[]Msg
}

func NewLog() Log {
	msgs := make([]Msg, 0, 4)
	return Log{msgs: &msgs}
}

func (log Log) Add(kind MsgKind, tracker *LineColumnTracker, r Range, text string) {
	log.AddWithNotes(kind, tracker, r, text, nil)
}

func (log Log) AddWithNotes(kind MsgKind, tracker *LineColumnTracker, r Range, text string, notes []MsgData) {
	*log.msgs = append(*log.msgs, Msg{
		Kind:  kind,
		Data:  tracker.MsgData(r, text),
		Notes: notes,
	})
}

func (log Log) Msgs() []Msg {
	return *log.msgs
}

func (log Log) HasErrors() bool {
	for _, m := range *log.msgs {
		if m.Kind == Error {
			return true
		}
	}
	return false
}
