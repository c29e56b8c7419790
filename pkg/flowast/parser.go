package flowast

// Parse tokenizes src and collects every top-level Flow type alias
// declaration. Surrounding JavaScript (the Relay concrete request, imports,
// exports) is skipped token by token. Errors inside a declaration are
// recorded on the returned File and the parser resynchronizes at the next
// statement boundary.
func Parse(src string) *File {
	p := &parser{lex: newLexer(src), file: &File{}}
	p.next()
	p.parseTopLevel()
	return p.file
}

type parser struct {
	lex  *lexer
	tok  token
	file *File
}

func (p *parser) next() {
	p.tok = p.lex.next()
}

func (p *parser) errorf(msg string) {
	p.file.Errors = append(p.file.Errors, ParseError{
		Line:    p.tok.line,
		Col:     p.tok.col,
		Message: msg,
	})
}

func (p *parser) isPunct(text string) bool {
	return p.tok.kind == tokPunct && p.tok.text == text
}

func (p *parser) isIdent(text string) bool {
	return p.tok.kind == tokIdent && p.tok.text == text
}

func (p *parser) parseTopLevel() {
	for p.tok.kind != tokEOF {
		switch {
		case p.isIdent("declare"):
			p.next()
		case p.isIdent("export"):
			p.next()
			if p.isIdent("type") {
				p.next()
				p.parseAlias(true)
			}
		case p.isIdent("type"):
			// Distinguish a type alias from e.g. an object key named "type"
			// by requiring `type <ident> =`.
			save := *p.lex
			saveTok := p.tok
			p.next()
			if p.tok.kind == tokIdent {
				name := p.tok.text
				p.next()
				if p.isPunct("=") {
					p.next()
					p.finishAlias(name, false)
					continue
				}
			}
			*p.lex = save
			p.tok = saveTok
			p.next()
		default:
			p.next()
		}
	}
}

// parseAlias parses `Name = Type ;` after the `type` keyword.
func (p *parser) parseAlias(exported bool) {
	if p.tok.kind != tokIdent {
		p.errorf("expected type alias name")
		p.resync()
		return
	}
	name := p.tok.text
	p.next()
	// Skip a type parameter list if present
	if p.isPunct("<") {
		depth := 0
		for p.tok.kind != tokEOF {
			if p.isPunct("<") {
				depth++
			} else if p.isPunct(">") {
				depth--
				if depth == 0 {
					p.next()
					break
				}
			}
			p.next()
		}
	}
	if !p.isPunct("=") {
		p.errorf("expected '=' in type alias " + name)
		p.resync()
		return
	}
	p.next()
	p.finishAlias(name, exported)
}

func (p *parser) finishAlias(name string, exported bool) {
	before := len(p.file.Errors)
	t := p.parseType()
	if len(p.file.Errors) > before {
		p.resync()
		return
	}
	if p.isPunct(";") {
		p.next()
	}
	p.file.Aliases = append(p.file.Aliases, TypeAlias{Name: name, Right: t, Exported: exported})
}

// resync skips to the next statement boundary after an error.
func (p *parser) resync() {
	for p.tok.kind != tokEOF && !p.isPunct(";") {
		p.next()
	}
	if p.isPunct(";") {
		p.next()
	}
}

func (p *parser) parseType() *Type {
	// Tolerate a leading pipe before the first union member
	if p.isPunct("|") {
		p.next()
	}
	first := p.parseIntersection()
	if !p.isPunct("|") {
		return first
	}
	members := []*Type{first}
	for p.isPunct("|") {
		p.next()
		members = append(members, p.parseIntersection())
	}
	return &Type{Kind: KindUnion, Members: members}
}

func (p *parser) parseIntersection() *Type {
	first := p.parsePostfix()
	if !p.isPunct("&") {
		return first
	}
	members := []*Type{first}
	for p.isPunct("&") {
		p.next()
		members = append(members, p.parsePostfix())
	}
	return &Type{Kind: KindIntersection, Members: members}
}

func (p *parser) parsePostfix() *Type {
	t := p.parsePrimary()
	for p.isPunct("[") {
		p.next()
		if !p.isPunct("]") {
			p.errorf("expected ']' after array shorthand")
			return &Type{Kind: KindUnknown}
		}
		p.next()
		t = &Type{Kind: KindArray, Inner: t}
	}
	return t
}

func (p *parser) parsePrimary() *Type {
	switch {
	case p.isPunct("?"):
		p.next()
		return &Type{Kind: KindNullable, Inner: p.parsePostfix()}

	case p.isPunct("("):
		p.next()
		t := p.parseType()
		if p.isPunct(")") {
			p.next()
		} else {
			p.errorf("expected ')'")
		}
		return t

	case p.isPunct("{|"):
		return p.parseObject(true)

	case p.isPunct("{"):
		return p.parseObject(false)

	case p.tok.kind == tokString:
		t := &Type{Kind: KindStringLiteral, Literal: p.tok.text}
		p.next()
		return t

	case p.tok.kind == tokNumber:
		t := &Type{Kind: KindNumberLiteral, Literal: p.tok.text}
		p.next()
		return t

	case p.tok.kind == tokIdent:
		return p.parseNamed()

	default:
		p.errorf("unexpected token " + p.tok.text + " in type")
		// Closing delimiters and separators are left for the enclosing
		// construct so that recovery still finds the statement boundary.
		if p.tok.kind == tokPunct {
			switch p.tok.text {
			case "|}", "}", ")", ">", "]", ",", ";":
				return &Type{Kind: KindUnknown}
			}
		}
		p.next()
		return &Type{Kind: KindUnknown}
	}
}

func (p *parser) parseNamed() *Type {
	name := p.tok.text
	p.next()
	switch name {
	case "string":
		return &Type{Kind: KindString}
	case "number":
		return &Type{Kind: KindNumber}
	case "boolean":
		return &Type{Kind: KindBoolean}
	case "true", "false":
		return &Type{Kind: KindBooleanLiteral, Literal: name}
	case "null", "void", "mixed", "any", "empty":
		return &Type{Kind: KindUnknown}
	}
	for p.isPunct(".") {
		p.next()
		if p.tok.kind != tokIdent {
			p.errorf("expected identifier after '.'")
			return &Type{Kind: KindUnknown}
		}
		name += "." + p.tok.text
		p.next()
	}
	t := &Type{Kind: KindGeneric, Name: name}
	if p.isPunct("<") {
		p.next()
		for {
			t.TypeArgs = append(t.TypeArgs, p.parseType())
			if p.isPunct(",") {
				p.next()
				continue
			}
			break
		}
		if p.isPunct(">") {
			p.next()
		} else {
			p.errorf("expected '>' closing type arguments of " + name)
		}
	}
	return t
}

func (p *parser) parseObject(exact bool) *Type {
	closing := "}"
	if exact {
		closing = "|}"
	}
	p.next()
	obj := &Type{Kind: KindObject, Exact: exact}
	for p.tok.kind != tokEOF && !p.isPunct(closing) {
		// Object spreads carry no property of their own
		if p.isPunct("...") {
			p.next()
			if !p.isPunct(",") && !p.isPunct(";") && !p.isPunct(closing) {
				p.parseType()
			}
			p.skipSeparator()
			continue
		}
		readonly := false
		if p.isPunct("+") || p.isPunct("-") {
			readonly = p.tok.text == "+"
			p.next()
		}
		if p.tok.kind != tokIdent && p.tok.kind != tokString {
			p.errorf("expected property name, got " + p.tok.text)
			p.next()
			continue
		}
		key := p.tok.text
		p.next()
		optional := false
		if p.isPunct("?") {
			optional = true
			p.next()
		}
		if !p.isPunct(":") {
			p.errorf("expected ':' after property " + key)
			p.skipSeparator()
			continue
		}
		p.next()
		value := p.parseType()
		obj.Properties = append(obj.Properties, Property{
			Key:      key,
			Value:    value,
			Optional: optional,
			ReadOnly: readonly,
		})
		p.skipSeparator()
	}
	if p.isPunct(closing) {
		p.next()
	} else {
		p.errorf("unterminated object type")
	}
	return obj
}

func (p *parser) skipSeparator() {
	for p.isPunct(",") || p.isPunct(";") {
		p.next()
	}
}
