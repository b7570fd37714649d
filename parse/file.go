package parse

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nodeadmin/geneweaver-core/enum"
	"github.com/nodeadmin/geneweaver-core/schema"
)

var errStop = errors.New("stop")

// DetectFileType reports whether text is a batch file or a plain values
// file by classifying its first substantive line.
func DetectFileType(text string) (enum.GeneweaverFileType, error) {
	return defaultTokenizer.DetectFileType(text)
}

// DetectFileType is DetectFileType using t's prefix table.
func (t *Tokenizer) DetectFileType(text string) (enum.GeneweaverFileType, error) {
	var kind enum.GeneweaverFileType
	_, err := eachLine(strings.NewReader(text), func(line string) error {
		l, err := t.ClassifyLine(line)
		switch {
		case errors.Is(err, ErrIgnoreLine):
			return nil
		case err != nil:
			return err
		case l.Kind == HeaderLine:
			kind = enum.GeneweaverBatch
		default:
			kind = enum.GeneweaverValues
		}
		return errStop
	})
	switch {
	case errors.Is(err, errStop):
		return kind, nil
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrUnsupportedFileType, err)
	}
	return "", fmt.Errorf("%w: no header or value lines", ErrUnsupportedFileType)
}

// ParseValuesFile reads a file of "symbol value" rows with no headers.
// Blank and comment lines are skipped.
func ParseValuesFile(text string) ([]schema.GeneValue, error) {
	return defaultTokenizer.ParseValuesFile(text)
}

// ParseValuesFile is ParseValuesFile using t's prefix table.
func (t *Tokenizer) ParseValuesFile(text string) ([]schema.GeneValue, error) {
	values := []schema.GeneValue{}
	_, err := eachLine(strings.NewReader(text), func(line string) error {
		l, err := t.ClassifyLine(line)
		switch {
		case errors.Is(err, ErrIgnoreLine):
			return nil
		case err != nil:
			return err
		case l.Kind == HeaderLine:
			return fmt.Errorf("%w: header %s in a values file", ErrInvalidValueLine, l.Key)
		}
		v, err := strconv.ParseFloat(l.Value, 64)
		if err != nil {
			return fmt.Errorf("%w: value %q for %s is not a number", ErrInvalidValueLine, l.Value, l.Key)
		}
		values = append(values, schema.NewGeneValue(l.Key, v))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// Result is the outcome of ParseFile. Exactly one of Genesets and Values is
// set, matching Type.
type Result struct {
	Type     enum.GeneweaverFileType     `json:"type" yaml:"type"`
	Genesets []schema.BatchUploadGeneset `json:"genesets,omitempty" yaml:"genesets,omitempty"`
	Values   []schema.GeneValue          `json:"values,omitempty" yaml:"values,omitempty"`
}

// ParseFile sniffs text and parses it as a batch or values file.
func ParseFile(text string) (Result, error) {
	var p BatchParser
	return p.ParseFile(text)
}

// ParseFile is ParseFile using p's tokenizer and logger.
func (p *BatchParser) ParseFile(text string) (Result, error) {
	tok := p.tokenizer()
	kind, err := tok.DetectFileType(text)
	if err != nil {
		return Result{}, err
	}
	res := Result{Type: kind}
	if kind == enum.GeneweaverBatch {
		res.Genesets, err = p.Parse(strings.NewReader(text))
	} else {
		res.Values, err = tok.ParseValuesFile(text)
	}
	if err != nil {
		return Result{}, err
	}
	p.logger().Debug("parsed file", "type", kind, "genesets", len(res.Genesets), "values", len(res.Values))
	return res, nil
}

// FileTypeFromPath maps a file extension to an upload file type.
func FileTypeFromPath(path string) (enum.FileType, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFileType, path)
	}
	t, err := enum.ParseFileType(ext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedFileType, err)
	}
	return t, nil
}

// ReadFileContent returns the contents of a text upload.
func ReadFileContent(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(b), nil
}
