package grid

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"traiteur/internal/errors"
)

// ErrMalformedQuery is returned when a query-string request cannot be parsed.
var ErrMalformedQuery = errors.New("malformed grid query")

// ParseQuery reads a request in the compact query-string form used by server-side
// grid wrappers:
//
//	page=2&pageSize=20&sort=Name-asc~Rating-desc&filter=Name~contains~'acme'~and~(Rating~eq~'A'~or~Rating~eq~'B')
//
// Date literals are written datetime'2024-05-01T13-30-00' and compare as Unix
// milliseconds in UTC.
func ParseQuery(values url.Values) (Request, error) {
	var req Request

	var err error
	if req.Page, err = parseInt(values.Get("page")); err != nil {
		return Request{}, errors.Wrap(ErrMalformedQuery, "page")
	}
	if req.PageSize, err = parseInt(values.Get("pageSize")); err != nil {
		return Request{}, errors.Wrap(ErrMalformedQuery, "pageSize")
	}

	if raw := strings.TrimSpace(values.Get("sort")); raw != "" {
		for _, part := range strings.Split(raw, "~") {
			field, dir, _ := strings.Cut(part, "-")
			if field == "" {
				return Request{}, errors.Wrapf(ErrMalformedQuery, "sort %q", part)
			}
			req.Sort = append(req.Sort, SortDescriptor{Field: field, Dir: dir})
		}
	}

	if raw := strings.TrimSpace(values.Get("filter")); raw != "" {
		tokens, err := tokenize(raw)
		if err != nil {
			return Request{}, err
		}
		p := &filterParser{tokens: tokens}
		filter, err := p.parseExpr()
		if err != nil {
			return Request{}, err
		}
		if !p.done() {
			return Request{}, errors.Wrapf(ErrMalformedQuery, "unexpected %q", p.peek().text)
		}
		req.Filter = &filter
	}

	return req, nil
}

func parseInt(s string) (int, error) {
	if strings.TrimSpace(s) == "" {
		return 0, nil
	}

	return strconv.Atoi(strings.TrimSpace(s))
}

type tokenKind int

const (
	tokWord tokenKind = iota
	tokString
	tokOpen
	tokClose
	tokDate
)

const datePrefix = "datetime"

var dateLayouts = []string{
	"2006-01-02T15-04-05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

type token struct {
	kind tokenKind
	text string
}

// tokenize splits on '~' outside of quoted literals. Quotes inside literals are doubled.
func tokenize(s string) ([]token, error) {
	var tokens []token
	var word strings.Builder

	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, token{kind: tokWord, text: word.String()})
			word.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '~':
			flush()
		case '(':
			flush()
			tokens = append(tokens, token{kind: tokOpen, text: "("})
		case ')':
			flush()
			tokens = append(tokens, token{kind: tokClose, text: ")"})
		case '\'':
			kind := tokString
			if strings.EqualFold(word.String(), datePrefix) {
				kind = tokDate
				word.Reset()
			}
			flush()
			var lit strings.Builder
			closed := false
			for i++; i < len(s); i++ {
				if s[i] == '\'' {
					if i+1 < len(s) && s[i+1] == '\'' {
						lit.WriteByte('\'')
						i++

						continue
					}
					closed = true

					break
				}
				lit.WriteByte(s[i])
			}
			if !closed {
				return nil, errors.Wrap(ErrMalformedQuery, "unterminated string literal")
			}
			tokens = append(tokens, token{kind: kind, text: lit.String()})
		default:
			word.WriteByte(ch)
		}
	}
	flush()

	return tokens, nil
}

type filterParser struct {
	tokens []token
	pos    int
}

func (p *filterParser) done() bool {
	return p.pos >= len(p.tokens)
}

func (p *filterParser) peek() token {
	if p.done() {
		return token{}
	}

	return p.tokens[p.pos]
}

func (p *filterParser) next() (token, error) {
	if p.done() {
		return token{}, errors.Wrap(ErrMalformedQuery, "unexpected end of filter")
	}
	t := p.tokens[p.pos]
	p.pos++

	return t, nil
}

// parseExpr := term (logic term)*. A change of logic nests what was read so far.
func (p *filterParser) parseExpr() (FilterDescriptor, error) {
	first, err := p.parseTerm()
	if err != nil {
		return FilterDescriptor{}, err
	}

	current := first
	grouped := false
	for !p.done() && p.peek().kind == tokWord {
		logic := strings.ToLower(p.peek().text)
		if logic != LogicAnd && logic != LogicOr {
			break
		}
		p.pos++

		term, err := p.parseTerm()
		if err != nil {
			return FilterDescriptor{}, err
		}

		if grouped && current.Logic == logic {
			current.Filters = append(current.Filters, term)

			continue
		}
		current = FilterDescriptor{Logic: logic, Filters: []FilterDescriptor{current, term}}
		grouped = true
	}

	return current, nil
}

func (p *filterParser) parseTerm() (FilterDescriptor, error) {
	t, err := p.next()
	if err != nil {
		return FilterDescriptor{}, err
	}

	if t.kind == tokOpen {
		inner, err := p.parseExpr()
		if err != nil {
			return FilterDescriptor{}, err
		}
		closing, err := p.next()
		if err != nil || closing.kind != tokClose {
			return FilterDescriptor{}, errors.Wrap(ErrMalformedQuery, "missing closing parenthesis")
		}
		if !inner.IsGroup() {
			inner = FilterDescriptor{Logic: LogicAnd, Filters: []FilterDescriptor{inner}}
		}

		return inner, nil
	}

	if t.kind != tokWord {
		return FilterDescriptor{}, errors.Wrapf(ErrMalformedQuery, "expected field, got %q", t.text)
	}

	op, err := p.next()
	if err != nil {
		return FilterDescriptor{}, err
	}
	if op.kind != tokWord {
		return FilterDescriptor{}, errors.Wrapf(ErrMalformedQuery, "expected operator after %q", t.text)
	}

	raw, err := p.next()
	if err != nil {
		return FilterDescriptor{}, err
	}

	value, err := literal(raw)
	if err != nil {
		return FilterDescriptor{}, err
	}

	return FilterDescriptor{Field: t.text, Operator: strings.ToLower(op.text), Value: value}, nil
}

func literal(t token) (any, error) {
	switch t.kind {
	case tokString:
		return t.text, nil
	case tokDate:
		return parseDate(t.text)
	case tokOpen, tokClose:
		return nil, errors.Wrapf(ErrMalformedQuery, "expected value, got %q", t.text)
	}

	switch strings.ToLower(t.text) {
	case "null":
		return nil, nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	if f, err := strconv.ParseFloat(t.text, 64); err == nil {
		return f, nil
	}

	return t.text, nil
}

func parseDate(s string) (int64, error) {
	for _, layout := range dateLayouts {
		if ts, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return ts.UnixMilli(), nil
		}
	}

	return 0, errors.Wrapf(ErrMalformedQuery, "date %q", s)
}
