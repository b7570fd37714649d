package parse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/nodeadmin/geneweaver-core/enum"
	"github.com/nodeadmin/geneweaver-core/schema"
)

const scannerBufferSize = 1 << 20 // 1 MB

// Header accumulates header values for the geneset being read, keyed by
// field name.
type Header map[string]string

// UpdateHeader records value under key. Descriptions accumulate across
// lines joined by a single space; every other field is overwritten.
func UpdateHeader(h Header, key, value string) {
	if key == schema.FieldDescription {
		if prev, ok := h[key]; ok && prev != "" {
			h[key] = prev + " " + value
			return
		}
	}
	h[key] = value
}

// CheckRequiredHeaders fails with ErrMissingRequiredHeader naming the first
// required field absent from h.
func CheckRequiredHeaders(h Header, required []string) error {
	for _, key := range required {
		if _, ok := h[key]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingRequiredHeader, key)
		}
	}
	return nil
}

// ResetRequiredHeaders removes the required fields from h. Everything else
// carries over into the next geneset.
func ResetRequiredHeaders(h Header, required []string) {
	for _, key := range required {
		delete(h, key)
	}
}

// CreateGeneset builds and validates a geneset from accumulated header
// values and gene rows.
func CreateGeneset(h Header, values []schema.GeneValue) (schema.BatchUploadGeneset, error) {
	if values == nil {
		values = []schema.GeneValue{}
	}
	g := schema.BatchUploadGeneset{
		Private:       true,
		Abbreviation:  h[schema.FieldAbbreviation],
		Name:          h[schema.FieldName],
		Description:   h[schema.FieldDescription],
		PubmedID:      optional(h, schema.FieldPubmedID),
		Ontology:      optional(h, schema.FieldOntology),
		UserID:        optional(h, schema.FieldUserID),
		AttributionID: optional(h, schema.FieldAttributionID),
		Values:        values,
	}

	raw, ok := h[schema.FieldScore]
	if !ok {
		return g, fmt.Errorf("%w: %s is required", ErrInvalidGeneset, schema.FieldScore)
	}
	score, err := ParseScore(raw)
	if err != nil {
		return g, fmt.Errorf("%w: %w", ErrInvalidGeneset, err)
	}
	g.Score = score

	raw, ok = h[schema.FieldSpecies]
	if !ok {
		return g, fmt.Errorf("%w: %s is required", ErrInvalidGeneset, schema.FieldSpecies)
	}
	if g.Species, err = enum.ParseSpecies(raw); err != nil {
		return g, fmt.Errorf("%w: %w", ErrInvalidGeneset, err)
	}

	raw, ok = h[schema.FieldGeneIDType]
	if !ok {
		return g, fmt.Errorf("%w: %s is required", ErrInvalidGeneset, schema.FieldGeneIDType)
	}
	if g.GeneIDType, err = enum.ParseGeneIDType(raw); err != nil {
		return g, fmt.Errorf("%w: %w", ErrInvalidGeneset, err)
	}

	if raw, ok = h[schema.FieldPrivate]; ok {
		g.Private = !strings.EqualFold(strings.TrimSpace(raw), "public")
	}

	if raw = strings.TrimSpace(h[schema.FieldCurationID]); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return g, fmt.Errorf("%w: curation id %q is not an integer", ErrInvalidGeneset, raw)
		}
		g.CurationID = &id
	} else {
		id := int(enum.DefaultTier(g.Private))
		g.CurationID = &id
	}

	if err := g.Validate(); err != nil {
		return g, fmt.Errorf("%w: %w", ErrInvalidGeneset, err)
	}
	return g, nil
}

func optional(h Header, key string) *string {
	v, ok := h[key]
	if !ok {
		return nil
	}
	return &v
}

// BatchParser reads GeneWeaver batch files. The zero value uses the default
// prefix table and discards logs.
type BatchParser struct {
	Tokenizer *Tokenizer
	Logger    *slog.Logger
}

func (p *BatchParser) tokenizer() *Tokenizer {
	if p.Tokenizer == nil {
		return defaultTokenizer
	}
	return p.Tokenizer
}

func (p *BatchParser) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// ParseBatchFile parses batch-file text with the default prefix table.
func ParseBatchFile(text string) ([]schema.BatchUploadGeneset, error) {
	var p BatchParser
	return p.Parse(strings.NewReader(text))
}

type readMode int

const (
	readingHeader readMode = iota
	readingValues
)

type batchState struct {
	tok      *Tokenizer
	log      *slog.Logger
	required []string

	mode     readMode
	header   Header
	values   []schema.GeneValue
	genesets []schema.BatchUploadGeneset
}

// Parse reads a whole batch file from r. Any malformed line aborts the parse
// with a *LineError wrapping one of the package errors.
//
// The required-header check runs when values start and when a new header
// follows values. The geneset still open at end of input is finalized
// without it, so a trailing geneset missing a required field fails geneset
// validation rather than ErrMissingRequiredHeader.
func (p *BatchParser) Parse(r io.Reader) ([]schema.BatchUploadGeneset, error) {
	tok := p.tokenizer()
	st := &batchState{
		tok:      tok,
		log:      p.logger(),
		required: tok.Prefixes().RequiredFields(),
		header:   Header{},
	}

	n, err := eachLine(r, st.consume)
	if err != nil {
		return nil, err
	}

	if err := st.finish(); err != nil {
		return nil, &LineError{Line: n, Err: err}
	}
	st.log.Debug("parsed batch file", "lines", n, "genesets", len(st.genesets))
	return st.genesets, nil
}

func (st *batchState) consume(text string) error {
	line, err := st.tok.ClassifyLine(text)
	if errors.Is(err, ErrIgnoreLine) {
		return nil
	}
	if err != nil {
		return err
	}

	switch line.Kind {
	case HeaderLine:
		if st.mode == readingValues {
			if err := CheckRequiredHeaders(st.header, st.required); err != nil {
				return err
			}
			if err := st.finish(); err != nil {
				return err
			}
			ResetRequiredHeaders(st.header, st.required)
			st.values = nil
			st.mode = readingHeader
		}
		if _, known := st.tok.Prefixes().Prefix(line.Key); !known {
			st.log.Debug("unrecognised header field", "field", line.Key)
		}
		UpdateHeader(st.header, line.Key, line.Value)
	case ValueLine:
		if st.mode == readingHeader {
			if err := CheckRequiredHeaders(st.header, st.required); err != nil {
				return err
			}
			st.mode = readingValues
		}
		v, err := strconv.ParseFloat(line.Value, 64)
		if err != nil {
			return fmt.Errorf("%w: value %q for %s is not a number", ErrInvalidValueLine, line.Value, line.Key)
		}
		st.values = append(st.values, schema.NewGeneValue(line.Key, v))
	}
	return nil
}

func (st *batchState) finish() error {
	g, err := CreateGeneset(st.header, st.values)
	if err != nil {
		return err
	}
	st.log.Debug("geneset complete", "abbreviation", g.Abbreviation, "values", len(g.Values))
	st.genesets = append(st.genesets, g)
	return nil
}

// eachLine feeds fn every line of r and returns the line count. Errors
// from fn come back as *LineError.
func eachLine(r io.Reader, fn func(string) error) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), scannerBufferSize)
	scanner.Split(scanLines)

	n := 0
	for scanner.Scan() {
		n++
		text := scanner.Text()
		if err := fn(text); err != nil {
			return n, &LineError{Line: n, Text: text, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("read line %d: %w", n+1, err)
	}
	return n, nil
}

// scanLines splits on "\r\n", "\r" or "\n" and drops the terminator.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		if !atEOF {
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
