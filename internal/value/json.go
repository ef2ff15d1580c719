package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// jsonReader builds a Value tree from the token stream of one JSON document.
type jsonReader struct {
	*builder
	dec      *json.Decoder
	newlines []int
}

func parseJSON(data []byte, limit int) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	r := &jsonReader{
		builder:  &builder{limit: limit},
		dec:      dec,
		newlines: newlineOffsets(data),
	}

	root, err := r.value(0)
	if err != nil {
		return nil, r.annotate(err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, r.annotate(err)
		}
		return nil, fmt.Errorf("line %d: unexpected data after the document", r.line())
	}
	return root, nil
}

func newlineOffsets(data []byte) []int {
	var offsets []int
	for i, c := range data {
		if c == '\n' {
			offsets = append(offsets, i)
		}
	}
	return offsets
}

func (r *jsonReader) lineAt(offset int64) int {
	return sort.SearchInts(r.newlines, int(offset)) + 1
}

// line is the line of the token just read. Tokens never span lines in JSON.
func (r *jsonReader) line() int {
	return r.lineAt(r.dec.InputOffset())
}

// annotate prefixes decoder errors with the line they occurred on.
func (r *jsonReader) annotate(err error) error {
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("line %d: %w", r.lineAt(syntaxErr.Offset), err)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("line %d: unexpected end of document: %w", r.line(), err)
	default:
		return err
	}
}

func (r *jsonReader) token() (json.Token, error) {
	tok, err := r.dec.Token()
	if errors.Is(err, io.EOF) {
		return nil, io.ErrUnexpectedEOF
	}
	return tok, err
}

func (r *jsonReader) value(depth int) (*Value, error) {
	tok, err := r.token()
	if err != nil {
		return nil, err
	}

	line := r.line()
	if depth > maxDepth {
		return nil, fmt.Errorf("line %d: document nested deeper than %d levels", line, maxDepth)
	}
	if err := r.count(line); err != nil {
		return nil, err
	}

	switch tok := tok.(type) {
	case nil:
		return &Value{kind: KindNull, line: line}, nil
	case bool:
		return &Value{kind: KindBool, b: tok, line: line}, nil
	case string:
		return &Value{kind: KindString, s: tok, line: line}, nil
	case json.Number:
		n, err := strconv.ParseFloat(tok.String(), 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("line %d: invalid number %q", line, tok.String())
		}
		return &Value{kind: KindNumber, n: n, line: line}, nil
	case json.Delim:
		switch tok {
		case '[':
			return r.array(line, depth)
		case '{':
			return r.object(line, depth)
		}
	}
	return nil, fmt.Errorf("line %d: unexpected token %v", line, tok)
}

func (r *jsonReader) array(line, depth int) (*Value, error) {
	var items []*Value
	for r.dec.More() {
		item, err := r.value(depth + 1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := r.closing(']'); err != nil {
		return nil, err
	}
	return &Value{kind: KindArray, items: items, line: line}, nil
}

func (r *jsonReader) object(line, depth int) (*Value, error) {
	var members []Member
	for r.dec.More() {
		tok, err := r.token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("line %d: object keys must be strings", r.line())
		}
		child, err := r.value(depth + 1)
		if err != nil {
			return nil, err
		}
		members = append(members, Member{Key: key, Value: child})
	}
	if err := r.closing('}'); err != nil {
		return nil, err
	}
	return &Value{kind: KindObject, members: members, line: line}, nil
}

func (r *jsonReader) closing(want json.Delim) error {
	tok, err := r.token()
	if err != nil {
		return err
	}
	if tok != want {
		return fmt.Errorf("line %d: expected %q, found %v", r.line(), want, tok)
	}
	return nil
}
