package deck

import (
	"bufio"
	"bytes"
	"io"
	"math"
	"strconv"

	"go.uber.org/zap"

	"github.com/arcanaland/promptdeck/internal/card"
)

const (
	// Delimiter separates the prompt from its time field
	Delimiter = '~'

	// CommentMarker starts a comment line when found in the first column
	CommentMarker = '#'

	// DefaultMaxArenaSize caps the prompt arena allocated for one file
	DefaultMaxArenaSize = 64 << 20
)

// Option configures Parse
type Option func(*parser)

// WithLogger sets the logger used for debug output while parsing
func WithLogger(logger *zap.Logger) Option {
	return func(p *parser) {
		if logger != nil {
			p.log = logger
		}
	}
}

// WithMaxArenaSize limits the worst-case arena size. Non-positive values keep the default.
func WithMaxArenaSize(n int) Option {
	return func(p *parser) {
		if n > 0 {
			p.maxArena = n
		}
	}
}

// WithStripCarriageReturns drops every '\r' byte from the input before it is parsed.
// By default '\r' is kept as ordinary prompt text.
func WithStripCarriageReturns(strip bool) Option {
	return func(p *parser) {
		p.stripCR = strip
	}
}

type parser struct {
	log      *zap.Logger
	maxArena int
	stripCR  bool
}

// Parse reads a cards file into a Table.
//
// The stream is read twice: a sizing scan finds the line count and the longest
// line, then a fill scan packs every card prompt into a fixed-stride arena slot.
// The stream is rewound between scans but never closed.
func Parse(r io.ReadSeeker, opts ...Option) (*Table, error) {
	p := &parser{
		log:      zap.NewNop(),
		maxArena: DefaultMaxArenaSize,
	}
	for _, opt := range opts {
		opt(p)
	}

	lines, longest, err := p.measure(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, &IOError{Op: "rewind", Err: err}
	}

	// Room for the terminating NUL
	stride := longest + 1

	if lines > 0 && stride > math.MaxInt/lines || lines*stride > p.maxArena {
		return nil, &AllocationError{Lines: lines, Stride: stride, Limit: p.maxArena}
	}

	p.log.Debug("Sized cards file",
		zap.Int("lines", lines),
		zap.Int("stride", stride))

	f := &filler{
		parser: p,
		stride: stride,
		arena:  make([]byte, lines*stride),
		cards:  make([]card.Card, 0, lines),
	}
	if err := f.fill(bufio.NewReader(r)); err != nil {
		return nil, err
	}

	if len(f.cards) == 0 {
		return nil, ErrEmptyTable
	}

	// Shrink to the slots actually holding cards
	t := &Table{
		records: make([]card.Card, len(f.cards)),
		arena:   make([]byte, f.slot*stride),
		stride:  stride,
	}
	copy(t.records, f.cards)
	copy(t.arena, f.arena)

	return t, nil
}

// measure counts lines and finds the longest one. A final line without a
// trailing newline still counts.
func (p *parser) measure(br *bufio.Reader) (lines, longest int, err error) {
	current := 0
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, &IOError{Op: "sizing scan", Err: err}
		}

		if p.stripCR && b == '\r' {
			continue
		}

		if b == '\n' {
			lines++
			longest = max(longest, current)
			current = 0
			continue
		}
		current++
	}

	if current > 0 {
		lines++
		longest = max(longest, current)
	}

	return lines, longest, nil
}

// filler holds the state of the fill scan
type filler struct {
	*parser

	stride int
	arena  []byte
	cards  []card.Card

	slot     int // arena slot for the current line
	col      int // column within the current line
	lineNo   int // physical lines completed so far
	hitTilde bool
	tildeCol int // column of the last delimiter on the line
}

func (f *filler) fill(br *bufio.Reader) error {
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return f.finish()
		}
		if err != nil {
			return &IOError{Op: "fill scan", Err: err}
		}

		if f.stripCR && b == '\r' {
			continue
		}

		switch {
		case b == CommentMarker && f.col == 0:
			f.lineNo++
			f.log.Debug("Skipping comment line", zap.Int("line", f.lineNo))
			eof, err := skipLine(br)
			if err != nil {
				return &IOError{Op: "fill scan", Err: err}
			}
			if eof {
				return nil
			}

		case b == '\n':
			if err := f.endLine(); err != nil {
				return err
			}

		case b == Delimiter:
			f.delimit()

		default:
			f.currentSlot()[f.col] = b
			f.col++
		}
	}
}

// finish closes out a line left open at end of stream
func (f *filler) finish() error {
	if f.col == 0 && !f.hitTilde {
		return nil
	}
	return f.endLine()
}

// currentSlot returns the arena slot of the line being filled
func (f *filler) currentSlot() []byte {
	start := f.slot * f.stride
	return f.arena[start : start+f.stride]
}

// delimit ends the prompt at the current column and trims one blank before
// it. The prompt already ends at the first delimiter, so later ones skip the
// trim. The time field is read after the last delimiter.
func (f *filler) delimit() {
	slot := f.currentSlot()
	slot[f.col] = 0

	if !f.hitTilde && f.col > 0 && (slot[f.col-1] == ' ' || slot[f.col-1] == '\t') {
		slot[f.col-1] = 0
	}

	f.hitTilde = true
	f.tildeCol = f.col
	f.col++
}

func (f *filler) endLine() error {
	slot := f.currentSlot()
	slot[f.col] = 0
	f.lineNo++

	defer func() {
		f.col = 0
		f.hitTilde = false
		f.tildeCol = 0
	}()

	if !f.hitTilde {
		f.log.Debug("Ignoring line without delimiter", zap.Int("line", f.lineNo))
		return nil
	}

	prompt := cString(slot)
	if len(prompt) == 0 {
		f.log.Debug("Ignoring line with empty prompt", zap.Int("line", f.lineNo))
		return nil
	}

	field := slot[f.tildeCol+1 : f.col]
	seconds, _ := parseSeconds(field)
	if seconds == 0 {
		return &InvalidDurationError{
			Line:   f.lineNo,
			Prompt: string(prompt),
			Field:  string(field),
		}
	}

	if seconds < 0 {
		seconds = -seconds
	}

	f.cards = append(f.cards, card.Card{
		PromptOffset: f.slot * f.stride,
		Seconds:      seconds,
	})
	f.slot++

	return nil
}

// skipLine discards input up to and including the next newline
func skipLine(br *bufio.Reader) (eof bool, err error) {
	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			return true, nil
		}
		if err != nil {
			return false, err
		}
		if b == '\n' {
			return false, nil
		}
	}
}

// cString returns the bytes of slot up to the first NUL
func cString(slot []byte) []byte {
	if i := bytes.IndexByte(slot, 0); i >= 0 {
		return slot[:i]
	}
	return slot
}

// parseSeconds reads a leading base-10 integer the way strtol does: optional
// blanks, an optional sign, then digits. It returns the value and the number
// of bytes consumed. No digits, or a value outside the int32 range, yields 0.
func parseSeconds(field []byte) (int, int) {
	i := 0
	for i < len(field) && isSpace(field[i]) {
		i++
	}

	start := i
	if i < len(field) && (field[i] == '+' || field[i] == '-') {
		i++
	}

	digits := i
	for i < len(field) && field[i] >= '0' && field[i] <= '9' {
		i++
	}
	if i == digits {
		return 0, 0
	}

	n, err := strconv.ParseInt(string(field[start:i]), 10, 32)
	if err != nil {
		return 0, i
	}

	return int(n), i
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// ParseSeconds parses a card time field. It returns the normalised number of
// seconds and any text left after the number. A zero or missing value is
// reported as ErrInvalidDuration.
func ParseSeconds(field string) (int, string, error) {
	seconds, n := parseSeconds([]byte(field))
	if seconds == 0 {
		return 0, field, ErrInvalidDuration
	}
	if seconds < 0 {
		seconds = -seconds
	}
	return seconds, field[n:], nil
}
