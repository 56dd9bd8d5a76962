// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package data

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Parse reads a JSON document into a Value tree with source spans attached
// to every node, so validation diagnostics can point back into the input.
func Parse(src []byte) (Value, error) {
	p := &jsonParser{dec: json.NewDecoder(bytes.NewReader(src)), src: src}
	p.lineStarts = append(p.lineStarts, 0)
	for i, b := range src {
		if b == '\n' {
			p.lineStarts = append(p.lineStarts, i+1)
		}
	}
	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	if _, err := p.dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

type jsonParser struct {
	dec        *json.Decoder
	src        []byte
	lineStarts []int
}

// next reads one token and computes its span by scanning past structural
// separators from the decoder's last offset to the token start.
func (p *jsonParser) next() (json.Token, Span, error) {
	start := p.tokenStart(int(p.dec.InputOffset()))
	tok, err := p.dec.Token()
	if err != nil {
		return nil, Span{}, err
	}
	return tok, Span{Start: p.pos(start), End: p.pos(int(p.dec.InputOffset()))}, nil
}

// pos converts a byte offset into a 1-based line/column position.
func (p *jsonParser) pos(off int) Pos {
	line := sort.SearchInts(p.lineStarts, off+1)
	return Pos{Line: line, Col: off - p.lineStarts[line-1] + 1, Offset: off}
}

func (p *jsonParser) tokenStart(off int) int {
	for off < len(p.src) {
		switch p.src[off] {
		case ' ', '\t', '\n', '\r', ',', ':':
			off++
		default:
			return off
		}
	}
	return off
}

func (p *jsonParser) parseValue() (Value, error) {
	tok, loc, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok := tok.(type) {
	case json.Delim:
		switch tok {
		case '{':
			return p.parseObject(loc)
		case '[':
			return p.parseArray(loc)
		}
		return nil, fmt.Errorf("unexpected delimiter %q", tok.String())
	case string:
		return &String{Value: tok, Loc: loc}, nil
	case float64:
		return &Number{Value: tok, Loc: loc}, nil
	case bool:
		return &Boolean{Value: tok, Loc: loc}, nil
	case nil:
		return &Null{Loc: loc}, nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func (p *jsonParser) parseObject(open Span) (*Object, error) {
	obj := &Object{}
	for p.dec.More() {
		keyTok, keyLoc, err := p.next()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		obj.Entries = append(obj.Entries, Entry{Key: key, KeyLoc: keyLoc, Value: val})
	}
	_, closeLoc, err := p.next() // '}'
	if err != nil {
		return nil, err
	}
	obj.Loc = Span{Start: open.Start, End: closeLoc.End}
	return obj, nil
}

func (p *jsonParser) parseArray(open Span) (*Array, error) {
	arr := &Array{}
	for p.dec.More() {
		item, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr.Items = append(arr.Items, item)
	}
	_, closeLoc, err := p.next() // ']'
	if err != nil {
		return nil, err
	}
	arr.Loc = Span{Start: open.Start, End: closeLoc.End}
	return arr, nil
}
