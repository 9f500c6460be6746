package serialize

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/RomanoLab/ista/errors"
	"github.com/RomanoLab/ista/metric"
	"github.com/RomanoLab/ista/ontology"
	"github.com/RomanoLab/ista/owl"
	"github.com/RomanoLab/ista/vocabulary"
)

// FunctionalParser reads OWL2 functional syntax: optional Prefix
// declarations, an optional Ontology wrapper, and one axiom per
// application. Full IRIs in angle brackets and CURIEs are both accepted;
// CURIEs resolve against the document's prefixes first, then the global
// vocabulary registry. Malformed input yields a parse error carrying the
// offending line number.
type FunctionalParser struct {
	metrics *metric.Metrics
}

// Parse builds an ontology from a functional-syntax document.
func (p *FunctionalParser) Parse(text string) (*ontology.Ontology, error) {
	prefixes := make(map[string]string)
	doc := &docParser{lex: newLexer(text, prefixes), prefixes: prefixes, metrics: p.metrics}
	ont, err := doc.parseDocument()
	if err != nil {
		return nil, errors.Wrap(errors.ErrParsingFailed, "FunctionalParser", "Parse", err.Error())
	}
	return ont, nil
}

// ParseFile reads and parses a functional-syntax document from disk.
func (p *FunctionalParser) ParseFile(path string) (*ontology.Ontology, error) {
	text, err := readFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "FunctionalParser", "ParseFile", "read "+path)
	}
	return p.Parse(text)
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokIRI     // <...>, value is the full IRI
	tokIdent   // bare name: axiom/expression heads, entity kinds
	tokCURIE   // prefix:local, value keeps the colon form
	tokBlank   // _:name, value is the node id
	tokInt     // cardinality
	tokEq      // '=' inside Prefix declarations
	tokLiteral // quoted literal with optional datatype or language tag
)

type token struct {
	kind    tokenKind
	value   string
	line    int
	literal owl.Literal
}

func (t token) describe() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokLiteral:
		return "literal " + t.literal.Key()
	default:
		return fmt.Sprintf("%q", t.value)
	}
}

type lexer struct {
	input string
	pos   int
	line  int

	// prefixes is the document's prefix table, shared with the parser.
	// Tokens are lexed on demand, so Prefix declarations parsed earlier
	// in the document are visible when a ^^datatype CURIE is resolved.
	prefixes map[string]string
}

func newLexer(input string, prefixes map[string]string) *lexer {
	return &lexer{input: input, line: 1, prefixes: prefixes}
}

func (l *lexer) errf(format string, args ...any) error {
	return fmt.Errorf("line %d: %s", l.line, fmt.Sprintf(format, args...))
}

func (l *lexer) peekByte() (byte, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos], true
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) {
		c := l.input[l.pos]
		switch {
		case c == '\n':
			l.line++
			l.pos++
		case c == ' ' || c == '\t' || c == '\r':
			l.pos++
		case c == '#':
			for l.pos < len(l.input) && l.input[l.pos] != '\n' {
				l.pos++
			}
		default:
			return
		}
	}
}

// next returns the next token. The '=' in Prefix(p:=<iri>) surfaces as
// tokEq; the "p:" before it lexes as a CURIE with an empty local part.
func (l *lexer) next() (token, error) {
	l.skipSpace()
	c, ok := l.peekByte()
	if !ok {
		return token{kind: tokEOF, line: l.line}, nil
	}

	switch {
	case c == '(':
		l.pos++
		return token{kind: tokLParen, line: l.line}, nil
	case c == ')':
		l.pos++
		return token{kind: tokRParen, line: l.line}, nil
	case c == '=':
		l.pos++
		return token{kind: tokEq, line: l.line}, nil
	case c == '<':
		return l.lexIRI()
	case c == '"':
		return l.lexLiteral()
	case c == '_' && l.pos+1 < len(l.input) && l.input[l.pos+1] == ':':
		return l.lexBlank()
	case c >= '0' && c <= '9':
		return l.lexInt()
	case isNameStart(rune(c)):
		return l.lexName()
	default:
		return token{}, l.errf("unexpected character %q", c)
	}
}

func (l *lexer) lexIRI() (token, error) {
	start := l.pos + 1
	end := strings.IndexByte(l.input[start:], '>')
	if end < 0 {
		return token{}, l.errf("unterminated IRI")
	}
	full := l.input[start : start+end]
	l.pos = start + end + 1
	return token{kind: tokIRI, value: full, line: l.line}, nil
}

func (l *lexer) lexBlank() (token, error) {
	l.pos += 2
	start := l.pos
	for l.pos < len(l.input) && isNamePart(rune(l.input[l.pos])) {
		l.pos++
	}
	if l.pos == start {
		return token{}, l.errf("empty blank node label")
	}
	return token{kind: tokBlank, value: l.input[start:l.pos], line: l.line}, nil
}

func (l *lexer) lexInt() (token, error) {
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] >= '0' && l.input[l.pos] <= '9' {
		l.pos++
	}
	return token{kind: tokInt, value: l.input[start:l.pos], line: l.line}, nil
}

func (l *lexer) lexName() (token, error) {
	start := l.pos
	for l.pos < len(l.input) && isNamePart(rune(l.input[l.pos])) {
		l.pos++
	}
	name := l.input[start:l.pos]

	// A colon turns the name into a CURIE; the local part may be empty,
	// as in prefix declarations.
	if b, ok := l.peekByte(); ok && b == ':' {
		l.pos++
		localStart := l.pos
		for l.pos < len(l.input) && isNamePart(rune(l.input[l.pos])) {
			l.pos++
		}
		return token{kind: tokCURIE, value: name + ":" + l.input[localStart:l.pos], line: l.line}, nil
	}
	return token{kind: tokIdent, value: name, line: l.line}, nil
}

// lexLiteral scans a quoted lexical form plus its optional ^^datatype or
// @lang suffix into a complete owl.Literal.
func (l *lexer) lexLiteral() (token, error) {
	start := l.pos
	i := l.pos + 1
	for i < len(l.input) {
		switch l.input[i] {
		case '\\':
			i += 2
			continue
		case '"':
			i++
		default:
			i++
			continue
		}
		break
	}
	if i > len(l.input) {
		return token{}, l.errf("unterminated literal")
	}
	quoted := l.input[start:i]
	lexical, err := strconv.Unquote(quoted)
	if err != nil {
		return token{}, l.errf("bad literal %s: %v", quoted, err)
	}
	l.pos = i

	if strings.HasPrefix(l.input[l.pos:], "^^") {
		l.pos += 2
		dtTok, err := l.next()
		if err != nil {
			return token{}, err
		}
		if dtTok.kind != tokIRI && dtTok.kind != tokCURIE {
			return token{}, l.errf("expected datatype IRI after ^^, got %s", dtTok.describe())
		}
		full := expandToken(dtTok, l.prefixes)
		if full == "" {
			return token{}, l.errf("unknown prefix in datatype %q", dtTok.value)
		}
		dt, err := owl.ParseIRI(full)
		if err != nil {
			return token{}, l.errf("bad datatype IRI %q: %v", full, err)
		}
		return token{kind: tokLiteral, line: l.line, value: quoted,
			literal: owl.NewTypedLiteral(lexical, dt)}, nil
	}
	if b, ok := l.peekByte(); ok && b == '@' {
		l.pos++
		tagStart := l.pos
		for l.pos < len(l.input) && (isNamePart(rune(l.input[l.pos])) || l.input[l.pos] == '-') {
			l.pos++
		}
		if l.pos == tagStart {
			return token{}, l.errf("empty language tag")
		}
		return token{kind: tokLiteral, line: l.line, value: quoted,
			literal: owl.NewLangLiteral(lexical, l.input[tagStart:l.pos])}, nil
	}
	return token{kind: tokLiteral, line: l.line, value: quoted,
		literal: owl.NewStringLiteral(lexical)}, nil
}

func isNameStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isNamePart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '-'
}

// expandToken resolves an IRI or CURIE token to a full IRI string. The
// document prefixes win over the global registry. Returns "" when the
// CURIE prefix is unknown.
func expandToken(t token, docPrefixes map[string]string) string {
	if t.kind == tokIRI {
		return t.value
	}
	idx := strings.IndexByte(t.value, ':')
	prefix, local := t.value[:idx], t.value[idx+1:]
	if ns, ok := docPrefixes[prefix]; ok {
		return ns + local
	}
	if full, ok := vocabulary.ExpandCURIE(t.value); ok {
		return full
	}
	return ""
}

type docParser struct {
	lex      *lexer
	prefixes map[string]string
	metrics  *metric.Metrics

	peeked   *token
	ontIRI   owl.IRI
	anonSeen map[string]owl.Entity
	axioms   []owl.Axiom
}

func (d *docParser) next() (token, error) {
	if d.peeked != nil {
		t := *d.peeked
		d.peeked = nil
		return t, nil
	}
	return d.lex.next()
}

func (d *docParser) peek() (token, error) {
	if d.peeked == nil {
		t, err := d.lex.next()
		if err != nil {
			return token{}, err
		}
		d.peeked = &t
	}
	return *d.peeked, nil
}

func (d *docParser) errAt(t token, format string, args ...any) error {
	return fmt.Errorf("line %d: %s", t.line, fmt.Sprintf(format, args...))
}

func (d *docParser) expect(kind tokenKind, what string) (token, error) {
	t, err := d.next()
	if err != nil {
		return token{}, err
	}
	if t.kind != kind {
		return token{}, d.errAt(t, "expected %s, got %s", what, t.describe())
	}
	return t, nil
}

func (d *docParser) parseDocument() (*ontology.Ontology, error) {
	d.anonSeen = make(map[string]owl.Entity)

	inOntology := false
	for {
		t, err := d.next()
		if err != nil {
			return nil, err
		}
		switch t.kind {
		case tokEOF:
			if inOntology {
				return nil, d.errAt(t, "unterminated Ontology block")
			}
			return d.finish()
		case tokRParen:
			if !inOntology {
				return nil, d.errAt(t, "unexpected ')'")
			}
			inOntology = false
		case tokIdent:
			switch t.value {
			case "Prefix":
				if err := d.parsePrefix(); err != nil {
					return nil, err
				}
			case "Ontology":
				if inOntology {
					return nil, d.errAt(t, "nested Ontology block")
				}
				if err := d.parseOntologyHead(); err != nil {
					return nil, err
				}
				inOntology = true
			default:
				ax, err := d.parseAxiom(t)
				if err != nil {
					return nil, err
				}
				d.axioms = append(d.axioms, ax)
			}
		default:
			return nil, d.errAt(t, "expected axiom, got %s", t.describe())
		}
	}
}

func (d *docParser) finish() (*ontology.Ontology, error) {
	var opts []ontology.Option
	if !d.ontIRI.IsZero() {
		opts = append(opts, ontology.WithIRI(d.ontIRI))
	}
	if d.metrics != nil {
		opts = append(opts, ontology.WithMetrics(d.metrics))
	}
	ont := ontology.New(opts...)
	for _, ax := range d.axioms {
		if err := ont.AddAxiom(ax); err != nil {
			return nil, fmt.Errorf("axiom %s: %w", ax.Kind(), err)
		}
	}
	return ont, nil
}

func (d *docParser) parsePrefix() error {
	if _, err := d.expect(tokLParen, "'('"); err != nil {
		return err
	}
	nameTok, err := d.next()
	if err != nil {
		return err
	}
	if nameTok.kind != tokCURIE {
		return d.errAt(nameTok, "expected prefix name, got %s", nameTok.describe())
	}
	prefix := strings.TrimSuffix(nameTok.value, ":")
	if _, err := d.expect(tokEq, "'='"); err != nil {
		return err
	}
	iriTok, err := d.expect(tokIRI, "namespace IRI")
	if err != nil {
		return err
	}
	if _, err := d.expect(tokRParen, "')'"); err != nil {
		return err
	}
	d.prefixes[prefix] = iriTok.value
	return nil
}

func (d *docParser) parseOntologyHead() error {
	if _, err := d.expect(tokLParen, "'('"); err != nil {
		return err
	}
	t, err := d.peek()
	if err != nil {
		return err
	}
	if t.kind == tokIRI || t.kind == tokCURIE {
		d.peeked = nil
		iri, err := d.resolveIRI(t)
		if err != nil {
			return err
		}
		d.ontIRI = iri
	}
	return nil
}

func (d *docParser) resolveIRI(t token) (owl.IRI, error) {
	full := expandToken(t, d.prefixes)
	if full == "" {
		return owl.IRI{}, d.errAt(t, "unknown prefix in %q", t.value)
	}
	iri, err := owl.ParseIRI(full)
	if err != nil {
		return owl.IRI{}, d.errAt(t, "bad IRI %q: %v", full, err)
	}
	return iri, nil
}

// entityRef reads one IRI/CURIE/blank token as an entity of the given kind.
func (d *docParser) entityRef(kind owl.EntityKind) (owl.Entity, error) {
	t, err := d.next()
	if err != nil {
		return owl.Entity{}, err
	}
	switch t.kind {
	case tokBlank:
		if kind != owl.KindNamedIndividual && kind != owl.KindAnonymousIndividual {
			return owl.Entity{}, d.errAt(t, "blank node where %s expected", kind)
		}
		return d.anonymous(t.value), nil
	case tokIRI, tokCURIE:
		iri, err := d.resolveIRI(t)
		if err != nil {
			return owl.Entity{}, err
		}
		return owl.Entity{Kind: kind, IRI: iri}, nil
	default:
		return owl.Entity{}, d.errAt(t, "expected %s IRI, got %s", kind, t.describe())
	}
}

// anonymous returns a stable entity per blank node label within one document.
func (d *docParser) anonymous(label string) owl.Entity {
	if e, ok := d.anonSeen[label]; ok {
		return e
	}
	e := owl.AnonymousIndividualWithID(label)
	d.anonSeen[label] = e
	return e
}

func (d *docParser) individualRef() (owl.Entity, error) {
	return d.entityRef(owl.KindNamedIndividual)
}

func (d *docParser) parseAxiom(head token) (owl.Axiom, error) {
	if _, err := d.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	var (
		ax  owl.Axiom
		err error
	)
	switch head.value {
	case "Declaration":
		ax, err = d.parseDeclaration()
	case "SubClassOf":
		ax, err = d.parseSubClassOf()
	case "EquivalentClasses":
		var exprs []owl.ClassExpression
		if exprs, err = d.parseExpressionList(); err == nil {
			ax = owl.EquivalentClasses{Classes: exprs}
		}
	case "DisjointClasses":
		var exprs []owl.ClassExpression
		if exprs, err = d.parseExpressionList(); err == nil {
			ax = owl.DisjointClasses{Classes: exprs}
		}
	case "DisjointUnion":
		ax, err = d.parseDisjointUnion()
	case "ObjectPropertyDomain":
		ax, err = d.parseObjectPropertyDomain()
	case "ObjectPropertyRange":
		ax, err = d.parseObjectPropertyRange()
	case "SubObjectPropertyOf":
		ax, err = d.parsePropertyPair(owl.KindObjectProperty)
	case "FunctionalObjectProperty", "InverseFunctionalObjectProperty",
		"TransitiveObjectProperty", "SymmetricObjectProperty",
		"AsymmetricObjectProperty", "ReflexiveObjectProperty",
		"IrreflexiveObjectProperty":
		ax, err = d.parseCharacteristic(head.value)
	case "DataPropertyDomain":
		ax, err = d.parseDataPropertyDomain()
	case "DataPropertyRange":
		ax, err = d.parseDataPropertyRange()
	case "SubDataPropertyOf":
		ax, err = d.parsePropertyPair(owl.KindDataProperty)
	case "FunctionalDataProperty":
		var prop owl.Entity
		if prop, err = d.entityRef(owl.KindDataProperty); err == nil {
			ax = owl.FunctionalDataProperty{Property: prop}
		}
	case "ClassAssertion":
		ax, err = d.parseClassAssertion()
	case "ObjectPropertyAssertion":
		ax, err = d.parseObjectAssertion(false)
	case "NegativeObjectPropertyAssertion":
		ax, err = d.parseObjectAssertion(true)
	case "DataPropertyAssertion":
		ax, err = d.parseDataAssertion(false)
	case "NegativeDataPropertyAssertion":
		ax, err = d.parseDataAssertion(true)
	case "SameIndividual":
		var inds []owl.Entity
		if inds, err = d.parseIndividualList(); err == nil {
			ax = owl.SameIndividual{Individuals: inds}
		}
	case "DifferentIndividuals":
		var inds []owl.Entity
		if inds, err = d.parseIndividualList(); err == nil {
			ax = owl.DifferentIndividuals{Individuals: inds}
		}
	case "AnnotationAssertion":
		ax, err = d.parseAnnotationAssertion()
	default:
		return nil, d.errAt(head, "unknown axiom kind %q", head.value)
	}
	if err != nil {
		return nil, err
	}
	if _, err := d.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return ax, nil
}

func (d *docParser) parseDeclaration() (owl.Axiom, error) {
	kindTok, err := d.expect(tokIdent, "entity kind")
	if err != nil {
		return nil, err
	}
	kind := owl.EntityKind(kindTok.value)
	if !kind.IsValid() {
		return nil, d.errAt(kindTok, "unknown entity kind %q", kindTok.value)
	}
	if _, err := d.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	entity, err := d.entityRef(kind)
	if err != nil {
		return nil, err
	}
	if kind == owl.KindAnonymousIndividual && entity.Kind != owl.KindAnonymousIndividual {
		return nil, d.errAt(kindTok, "AnonymousIndividual requires a blank node")
	}
	if _, err := d.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return owl.Declaration{Entity: entity}, nil
}

func (d *docParser) parseSubClassOf() (owl.Axiom, error) {
	sub, err := d.parseClassExpression()
	if err != nil {
		return nil, err
	}
	super, err := d.parseClassExpression()
	if err != nil {
		return nil, err
	}
	return owl.SubClassOf{Sub: sub, Super: super}, nil
}

func (d *docParser) parseDisjointUnion() (owl.Axiom, error) {
	cls, err := d.entityRef(owl.KindClass)
	if err != nil {
		return nil, err
	}
	disjuncts, err := d.parseExpressionList()
	if err != nil {
		return nil, err
	}
	return owl.DisjointUnion{Class: cls, Disjuncts: disjuncts}, nil
}

func (d *docParser) parseObjectPropertyDomain() (owl.Axiom, error) {
	prop, err := d.entityRef(owl.KindObjectProperty)
	if err != nil {
		return nil, err
	}
	domain, err := d.parseClassExpression()
	if err != nil {
		return nil, err
	}
	return owl.ObjectPropertyDomain{Property: prop, Domain: domain}, nil
}

func (d *docParser) parseObjectPropertyRange() (owl.Axiom, error) {
	prop, err := d.entityRef(owl.KindObjectProperty)
	if err != nil {
		return nil, err
	}
	rng, err := d.parseClassExpression()
	if err != nil {
		return nil, err
	}
	return owl.ObjectPropertyRange{Property: prop, Range: rng}, nil
}

func (d *docParser) parsePropertyPair(kind owl.EntityKind) (owl.Axiom, error) {
	sub, err := d.entityRef(kind)
	if err != nil {
		return nil, err
	}
	super, err := d.entityRef(kind)
	if err != nil {
		return nil, err
	}
	if kind == owl.KindObjectProperty {
		return owl.SubObjectPropertyOf{Sub: sub, Super: super}, nil
	}
	return owl.SubDataPropertyOf{Sub: sub, Super: super}, nil
}

func (d *docParser) parseCharacteristic(head string) (owl.Axiom, error) {
	prop, err := d.entityRef(owl.KindObjectProperty)
	if err != nil {
		return nil, err
	}
	characteristic := owl.Characteristic(strings.TrimSuffix(head, "ObjectProperty"))
	return owl.ObjectPropertyCharacteristic{Characteristic: characteristic, Property: prop}, nil
}

func (d *docParser) parseDataPropertyDomain() (owl.Axiom, error) {
	prop, err := d.entityRef(owl.KindDataProperty)
	if err != nil {
		return nil, err
	}
	domain, err := d.parseClassExpression()
	if err != nil {
		return nil, err
	}
	return owl.DataPropertyDomain{Property: prop, Domain: domain}, nil
}

func (d *docParser) parseDataPropertyRange() (owl.Axiom, error) {
	prop, err := d.entityRef(owl.KindDataProperty)
	if err != nil {
		return nil, err
	}
	rng, err := d.parseDataRange()
	if err != nil {
		return nil, err
	}
	return owl.DataPropertyRange{Property: prop, Range: rng}, nil
}

func (d *docParser) parseClassAssertion() (owl.Axiom, error) {
	expr, err := d.parseClassExpression()
	if err != nil {
		return nil, err
	}
	ind, err := d.individualRef()
	if err != nil {
		return nil, err
	}
	return owl.ClassAssertion{Class: expr, Individual: ind}, nil
}

func (d *docParser) parseObjectAssertion(negative bool) (owl.Axiom, error) {
	prop, err := d.entityRef(owl.KindObjectProperty)
	if err != nil {
		return nil, err
	}
	subj, err := d.individualRef()
	if err != nil {
		return nil, err
	}
	obj, err := d.individualRef()
	if err != nil {
		return nil, err
	}
	if negative {
		return owl.NegativeObjectPropertyAssertion{Property: prop, Subject: subj, Object: obj}, nil
	}
	return owl.ObjectPropertyAssertion{Property: prop, Subject: subj, Object: obj}, nil
}

func (d *docParser) parseDataAssertion(negative bool) (owl.Axiom, error) {
	prop, err := d.entityRef(owl.KindDataProperty)
	if err != nil {
		return nil, err
	}
	subj, err := d.individualRef()
	if err != nil {
		return nil, err
	}
	litTok, err := d.next()
	if err != nil {
		return nil, err
	}
	if litTok.kind != tokLiteral {
		return nil, d.errAt(litTok, "expected literal, got %s", litTok.describe())
	}
	lit := litTok.literal
	if negative {
		return owl.NegativeDataPropertyAssertion{Property: prop, Subject: subj, Value: lit}, nil
	}
	return owl.DataPropertyAssertion{Property: prop, Subject: subj, Value: lit}, nil
}

func (d *docParser) parseIndividualList() ([]owl.Entity, error) {
	var inds []owl.Entity
	for {
		t, err := d.peek()
		if err != nil {
			return nil, err
		}
		if t.kind == tokRParen {
			if len(inds) < 2 {
				return nil, d.errAt(t, "expected at least two individuals")
			}
			return inds, nil
		}
		ind, err := d.individualRef()
		if err != nil {
			return nil, err
		}
		inds = append(inds, ind)
	}
}

func (d *docParser) parseAnnotationAssertion() (owl.Axiom, error) {
	prop, err := d.entityRef(owl.KindAnnotationProperty)
	if err != nil {
		return nil, err
	}
	subjTok, err := d.next()
	if err != nil {
		return nil, err
	}
	if subjTok.kind != tokIRI && subjTok.kind != tokCURIE {
		return nil, d.errAt(subjTok, "expected subject IRI, got %s", subjTok.describe())
	}
	subject, err := d.resolveIRI(subjTok)
	if err != nil {
		return nil, err
	}

	valTok, err := d.next()
	if err != nil {
		return nil, err
	}
	switch valTok.kind {
	case tokLiteral:
		return owl.AnnotationAssertion{Property: prop, Subject: subject, Value: owl.AnnotationLiteral(valTok.literal)}, nil
	case tokIRI, tokCURIE:
		iri, err := d.resolveIRI(valTok)
		if err != nil {
			return nil, err
		}
		return owl.AnnotationAssertion{Property: prop, Subject: subject, Value: owl.AnnotationIRI(iri)}, nil
	default:
		return nil, d.errAt(valTok, "expected annotation value, got %s", valTok.describe())
	}
}

func (d *docParser) parseExpressionList() ([]owl.ClassExpression, error) {
	var exprs []owl.ClassExpression
	for {
		t, err := d.peek()
		if err != nil {
			return nil, err
		}
		if t.kind == tokRParen {
			if len(exprs) < 2 {
				return nil, d.errAt(t, "expected at least two class expressions")
			}
			return exprs, nil
		}
		expr, err := d.parseClassExpression()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
}

func (d *docParser) parseClassExpression() (owl.ClassExpression, error) {
	t, err := d.next()
	if err != nil {
		return nil, err
	}
	switch t.kind {
	case tokIRI, tokCURIE:
		iri, err := d.resolveIRI(t)
		if err != nil {
			return nil, err
		}
		return owl.NamedClass{Class: owl.NewClass(iri)}, nil
	case tokIdent:
		return d.parseExpressionHead(t)
	default:
		return nil, d.errAt(t, "expected class expression, got %s", t.describe())
	}
}

func (d *docParser) parseExpressionHead(head token) (owl.ClassExpression, error) {
	if _, err := d.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	var (
		expr owl.ClassExpression
		err  error
	)
	switch head.value {
	case "ObjectIntersectionOf":
		var ops []owl.ClassExpression
		if ops, err = d.parseExpressionList(); err == nil {
			expr = owl.ObjectIntersectionOf{Operands: ops}
		}
	case "ObjectUnionOf":
		var ops []owl.ClassExpression
		if ops, err = d.parseExpressionList(); err == nil {
			expr = owl.ObjectUnionOf{Operands: ops}
		}
	case "ObjectComplementOf":
		var op owl.ClassExpression
		if op, err = d.parseClassExpression(); err == nil {
			expr = owl.ObjectComplementOf{Operand: op}
		}
	case "ObjectSomeValuesFrom", "ObjectAllValuesFrom":
		expr, err = d.parseQuantified(head.value)
	case "ObjectHasValue":
		expr, err = d.parseHasValue()
	case "ObjectHasSelf":
		var prop owl.Entity
		if prop, err = d.entityRef(owl.KindObjectProperty); err == nil {
			expr = owl.ObjectHasSelf{Property: prop}
		}
	case "ObjectMinCardinality", "ObjectMaxCardinality", "ObjectExactCardinality":
		expr, err = d.parseCardinality(head.value)
	default:
		return nil, d.errAt(head, "unknown class expression %q", head.value)
	}
	if err != nil {
		return nil, err
	}
	if _, err := d.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return expr, nil
}

func (d *docParser) parseQuantified(head string) (owl.ClassExpression, error) {
	prop, err := d.entityRef(owl.KindObjectProperty)
	if err != nil {
		return nil, err
	}
	filler, err := d.parseClassExpression()
	if err != nil {
		return nil, err
	}
	if head == "ObjectSomeValuesFrom" {
		return owl.ObjectSomeValuesFrom{Property: prop, Filler: filler}, nil
	}
	return owl.ObjectAllValuesFrom{Property: prop, Filler: filler}, nil
}

func (d *docParser) parseHasValue() (owl.ClassExpression, error) {
	prop, err := d.entityRef(owl.KindObjectProperty)
	if err != nil {
		return nil, err
	}
	ind, err := d.individualRef()
	if err != nil {
		return nil, err
	}
	return owl.ObjectHasValue{Property: prop, Individual: ind}, nil
}

func (d *docParser) parseCardinality(head string) (owl.ClassExpression, error) {
	nTok, err := d.expect(tokInt, "cardinality")
	if err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(nTok.value)
	if err != nil {
		return nil, d.errAt(nTok, "bad cardinality %q", nTok.value)
	}
	prop, err := d.entityRef(owl.KindObjectProperty)
	if err != nil {
		return nil, err
	}

	// The filler is optional: unqualified restrictions omit it.
	var filler owl.ClassExpression
	t, err := d.peek()
	if err != nil {
		return nil, err
	}
	if t.kind != tokRParen {
		filler, err = d.parseClassExpression()
		if err != nil {
			return nil, err
		}
	}

	switch head {
	case "ObjectMinCardinality":
		return owl.ObjectMinCardinality{N: n, Property: prop, Filler: filler}, nil
	case "ObjectMaxCardinality":
		return owl.ObjectMaxCardinality{N: n, Property: prop, Filler: filler}, nil
	default:
		return owl.ObjectExactCardinality{N: n, Property: prop, Filler: filler}, nil
	}
}

func (d *docParser) parseDataRange() (owl.DataRange, error) {
	t, err := d.next()
	if err != nil {
		return nil, err
	}
	switch t.kind {
	case tokIRI, tokCURIE:
		iri, err := d.resolveIRI(t)
		if err != nil {
			return nil, err
		}
		return owl.NamedDatatype{Datatype: owl.Entity{Kind: owl.KindDatatype, IRI: iri}}, nil
	case tokIdent:
		return d.parseDataRangeHead(t)
	default:
		return nil, d.errAt(t, "expected data range, got %s", t.describe())
	}
}

func (d *docParser) parseDataRangeHead(head token) (owl.DataRange, error) {
	if _, err := d.expect(tokLParen, "'('"); err != nil {
		return nil, err
	}
	var (
		rng owl.DataRange
		err error
	)
	switch head.value {
	case "DataIntersectionOf", "DataUnionOf":
		var ops []owl.DataRange
		if ops, err = d.parseDataRangeList(); err == nil {
			if head.value == "DataIntersectionOf" {
				rng = owl.DataIntersectionOf{Operands: ops}
			} else {
				rng = owl.DataUnionOf{Operands: ops}
			}
		}
	case "DataComplementOf":
		var op owl.DataRange
		if op, err = d.parseDataRange(); err == nil {
			rng = owl.DataComplementOf{Operand: op}
		}
	case "DataOneOf":
		var lits []owl.Literal
		if lits, err = d.parseLiteralList(); err == nil {
			rng = owl.DataOneOf{Literals: lits}
		}
	default:
		return nil, d.errAt(head, "unknown data range %q", head.value)
	}
	if err != nil {
		return nil, err
	}
	if _, err := d.expect(tokRParen, "')'"); err != nil {
		return nil, err
	}
	return rng, nil
}

func (d *docParser) parseDataRangeList() ([]owl.DataRange, error) {
	var ops []owl.DataRange
	for {
		t, err := d.peek()
		if err != nil {
			return nil, err
		}
		if t.kind == tokRParen {
			if len(ops) < 2 {
				return nil, d.errAt(t, "expected at least two data ranges")
			}
			return ops, nil
		}
		op, err := d.parseDataRange()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
}

func (d *docParser) parseLiteralList() ([]owl.Literal, error) {
	var lits []owl.Literal
	for {
		t, err := d.peek()
		if err != nil {
			return nil, err
		}
		if t.kind == tokRParen {
			if len(lits) == 0 {
				return nil, d.errAt(t, "expected at least one literal")
			}
			return lits, nil
		}
		d.peeked = nil
		if t.kind != tokLiteral {
			return nil, d.errAt(t, "expected literal, got %s", t.describe())
		}
		lits = append(lits, t.literal)
	}
}
