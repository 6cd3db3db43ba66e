package cache

import "github.com/aledsdavies/ggra/pkgs/ast"

// The wire* types below are the CBOR-serializable mirror of pkgs/ast's
// tagged-variant interfaces. CBOR (like encoding/json) marshals an
// interface field by its dynamic type but cannot unmarshal back into one
// without a discriminator, so every ast interface gets a flat struct with
// a Kind tag here purely for the compiled cache's on-disk form; pkgs/ast
// itself stays interface-based for the parser and resolver.

type wireElement struct {
	Kind string `cbor:"kind"`
	Text string `cbor:"text,omitempty"`
	Name string `cbor:"name,omitempty"`
	Eager bool  `cbor:"eager,omitempty"`
}

type wireExpr struct {
	Kind    string     `cbor:"kind"`
	Name    string     `cbor:"name,omitempty"`
	Text    string     `cbor:"text,omitempty"`
	Options []wireExpr `cbor:"options,omitempty"`
}

type wireCond struct {
	Kind  string   `cbor:"kind"`
	Left  wireExpr `cbor:"left"`
	Right wireExpr `cbor:"right"`
}

type wireSource struct {
	Kind    string       `cbor:"kind"`
	NtName  string       `cbor:"nt_name,omitempty"`
	NtParam string       `cbor:"nt_param,omitempty"`
	Text    string       `cbor:"text,omitempty"`
	Name    string       `cbor:"name,omitempty"`
	Options []wireSource `cbor:"options,omitempty"`
}

type wireChange struct {
	Source        wireSource `cbor:"source"`
	TargetNtName  string     `cbor:"target_nt_name"`
	TargetNtParam string     `cbor:"target_nt_param"`
}

type wirePattern struct {
	Kind         string        `cbor:"kind"`
	Elements     []wireElement `cbor:"elements,omitempty"`
	Alternatives []wirePattern `cbor:"alternatives,omitempty"`
	Inner        *wirePattern  `cbor:"inner,omitempty"`
	Condition    *wireCond     `cbor:"condition,omitempty"`
	WithChanges  []wireChange  `cbor:"with_changes,omitempty"`
}

type wireDef struct {
	Kind       string       `cbor:"kind"`
	Name       string       `cbor:"name"`
	ParamNames []string     `cbor:"param_names"`
	Body       *wirePattern `cbor:"body,omitempty"`
	Filename   string       `cbor:"filename,omitempty"`
	Line       int          `cbor:"line"`
}

func toWireDefs(defs []ast.NonterminalDef) []wireDef {
	out := make([]wireDef, len(defs))
	for i, d := range defs {
		out[i] = toWireDef(d)
	}
	return out
}

func toWireDef(d ast.NonterminalDef) wireDef {
	names := paramNameSlice(d.DefParamNames())
	switch def := d.(type) {
	case ast.Inline:
		body := toWirePattern(def.Body)
		return wireDef{Kind: "inline", Name: def.Name, ParamNames: names, Body: &body, Line: def.Line}
	case ast.External:
		return wireDef{Kind: "external", Name: def.Name, ParamNames: names, Filename: def.Filename, Line: def.Line}
	}
	return wireDef{}
}

func paramNameSlice(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	return out
}

func toWirePattern(p ast.Pattern) wirePattern {
	switch pat := p.(type) {
	case ast.BNForm:
		elems := make([]wireElement, len(pat.Elements))
		for i, e := range pat.Elements {
			elems[i] = toWireElement(e)
		}
		return wirePattern{Kind: "bn", Elements: elems}

	case ast.Alternation:
		alts := make([]wirePattern, len(pat.Alternatives))
		for i, a := range pat.Alternatives {
			alts[i] = toWirePattern(a)
		}
		return wirePattern{Kind: "alt", Alternatives: alts}

	case ast.Guarded:
		inner := toWirePattern(pat.Inner)
		cond := toWireCond(pat.Condition)
		return wirePattern{Kind: "guarded", Inner: &inner, Condition: &cond}

	case ast.Modified:
		inner := toWirePattern(pat.Inner)
		changes := make([]wireChange, len(pat.WithChanges))
		for i, c := range pat.WithChanges {
			changes[i] = toWireChange(c)
		}
		return wirePattern{Kind: "modified", Inner: &inner, WithChanges: changes}
	}
	return wirePattern{}
}

func toWireElement(e ast.Element) wireElement {
	switch el := e.(type) {
	case ast.TerminalString:
		return wireElement{Kind: "terminal", Text: el.Text}
	case ast.NonterminalRef:
		return wireElement{Kind: "ntref", Name: el.Name, Eager: el.Eager}
	}
	return wireElement{}
}

func toWireExpr(e ast.Expression) wireExpr {
	switch expr := e.(type) {
	case ast.ExprIdent:
		return wireExpr{Kind: "ident", Name: expr.Name}
	case ast.ExprString:
		return wireExpr{Kind: "string", Text: expr.Text}
	case ast.ExprChoice:
		opts := make([]wireExpr, len(expr.Options))
		for i, o := range expr.Options {
			opts[i] = toWireExpr(o)
		}
		return wireExpr{Kind: "choice", Options: opts}
	}
	return wireExpr{}
}

func toWireCond(c ast.Condition) wireCond {
	switch cond := c.(type) {
	case ast.CondEq:
		return wireCond{Kind: "eq", Left: toWireExpr(cond.Left), Right: toWireExpr(cond.Right)}
	case ast.CondNeq:
		return wireCond{Kind: "neq", Left: toWireExpr(cond.Left), Right: toWireExpr(cond.Right)}
	}
	return wireCond{}
}

func toWireSource(s ast.Source) wireSource {
	switch src := s.(type) {
	case ast.SrcNonterminal:
		return wireSource{Kind: "nt", NtName: src.NtName, NtParam: src.NtParam}
	case ast.SrcString:
		return wireSource{Kind: "string", Text: src.Text}
	case ast.SrcIdent:
		return wireSource{Kind: "ident", Name: src.Name}
	case ast.SrcChoice:
		opts := make([]wireSource, len(src.Options))
		for i, o := range src.Options {
			opts[i] = toWireSource(o)
		}
		return wireSource{Kind: "choice", Options: opts}
	}
	return wireSource{}
}

func toWireChange(c ast.Change) wireChange {
	return wireChange{
		Source:        toWireSource(c.Source),
		TargetNtName:  c.TargetNtName,
		TargetNtParam: c.TargetNtParam,
	}
}

func fromWireDefs(wire []wireDef) []ast.NonterminalDef {
	out := make([]ast.NonterminalDef, len(wire))
	for i, w := range wire {
		out[i] = fromWireDef(w)
	}
	return out
}

func fromWireDef(w wireDef) ast.NonterminalDef {
	params := ast.ParamSet(w.ParamNames...)
	switch w.Kind {
	case "inline":
		return ast.Inline{Name: w.Name, ParamNames: params, Body: fromWirePattern(*w.Body), Line: w.Line}
	case "external":
		return ast.External{Name: w.Name, ParamNames: params, Filename: w.Filename, Line: w.Line}
	}
	return nil
}

func fromWirePattern(w wirePattern) ast.Pattern {
	switch w.Kind {
	case "bn":
		elems := make([]ast.Element, len(w.Elements))
		for i, e := range w.Elements {
			elems[i] = fromWireElement(e)
		}
		return ast.BNForm{Elements: elems}

	case "alt":
		alts := make([]ast.Pattern, len(w.Alternatives))
		for i, a := range w.Alternatives {
			alts[i] = fromWirePattern(a)
		}
		return ast.Alternation{Alternatives: alts}

	case "guarded":
		return ast.Guarded{Inner: fromWirePattern(*w.Inner), Condition: fromWireCond(*w.Condition)}

	case "modified":
		changes := make([]ast.Change, len(w.WithChanges))
		for i, c := range w.WithChanges {
			changes[i] = fromWireChange(c)
		}
		return ast.Modified{Inner: fromWirePattern(*w.Inner), WithChanges: changes}
	}
	return nil
}

func fromWireElement(w wireElement) ast.Element {
	switch w.Kind {
	case "terminal":
		return ast.TerminalString{Text: w.Text}
	case "ntref":
		return ast.NonterminalRef{Name: w.Name, Eager: w.Eager}
	}
	return nil
}

func fromWireExpr(w wireExpr) ast.Expression {
	switch w.Kind {
	case "ident":
		return ast.ExprIdent{Name: w.Name}
	case "string":
		return ast.ExprString{Text: w.Text}
	case "choice":
		opts := make([]ast.Expression, len(w.Options))
		for i, o := range w.Options {
			opts[i] = fromWireExpr(o)
		}
		return ast.ExprChoice{Options: opts}
	}
	return nil
}

func fromWireCond(w wireCond) ast.Condition {
	switch w.Kind {
	case "eq":
		return ast.CondEq{Left: fromWireExpr(w.Left), Right: fromWireExpr(w.Right)}
	case "neq":
		return ast.CondNeq{Left: fromWireExpr(w.Left), Right: fromWireExpr(w.Right)}
	}
	return nil
}

func fromWireSource(w wireSource) ast.Source {
	switch w.Kind {
	case "nt":
		return ast.SrcNonterminal{NtName: w.NtName, NtParam: w.NtParam}
	case "string":
		return ast.SrcString{Text: w.Text}
	case "ident":
		return ast.SrcIdent{Name: w.Name}
	case "choice":
		opts := make([]ast.Source, len(w.Options))
		for i, o := range w.Options {
			opts[i] = fromWireSource(o)
		}
		return ast.SrcChoice{Options: opts}
	}
	return nil
}

func fromWireChange(w wireChange) ast.Change {
	return ast.Change{
		Source:        fromWireSource(w.Source),
		TargetNtName:  w.TargetNtName,
		TargetNtParam: w.TargetNtParam,
	}
}
