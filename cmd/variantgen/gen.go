package main

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/dave/jennifer/jen"
)

// generator emits the variants of one package. Support package paths are
// resolved under the configured import path.
type generator struct {
	f             *jen.File
	altPath       string
	dispatchPath  string
	errorsPath    string
	layoutPath    string
	lifecyclePath string
}

// Generate renders every arity in cfg to w.
func Generate(cfg Config, w io.Writer) error {
	return File(cfg).Render(w)
}

// File builds the generated file for cfg.
func File(cfg Config) *jen.File {
	f := jen.NewFilePathName(cfg.ImportPath, cfg.Package)
	f.HeaderComment("Code generated by variantgen. DO NOT EDIT.")

	g := &generator{
		f:             f,
		altPath:       path.Join(cfg.ImportPath, "alt"),
		dispatchPath:  path.Join(cfg.ImportPath, "internal", "dispatch"),
		errorsPath:    path.Join(cfg.ImportPath, "errors"),
		layoutPath:    path.Join(cfg.ImportPath, "layout"),
		lifecyclePath: path.Join(cfg.ImportPath, "lifecycle"),
	}
	for n := cfg.MinArity; n <= cfg.MaxArity; n++ {
		g.arity(n)
	}
	return f
}

// arity emits every declaration of VariantN. Each declaration is preceded by
// a blank line so the rendered file matches gofmt spacing.
func (g *generator) arity(n int) {
	f := g.f
	name := fmt.Sprintf("Variant%d", n)
	self := func() *jen.Statement { return jen.Id(name).Types(typeArgs(n)...) }
	recv := func() *jen.Statement { return jen.Id("v").Op("*").Add(self()) }

	fields := []jen.Code{jen.Id("disc").Uint8()}
	for i := 0; i < n; i++ {
		fields = append(fields, jen.Id(slotName(i)).Id(typeName(i)))
	}
	f.Line()
	f.Comment(fmt.Sprintf("%s holds exactly one value of type %s.", name, orList(n))).Line().
		Type().Id(name).Types(typeParams(n)...).Struct(fields...)

	f.Line()
	f.Comment(fmt.Sprintf("New%d returns a %s holding value as the alternative its type resolves", n, name)).Line().
		Comment("to: the exact match, else the earliest-declared convertible alternative.").Line().
		Func().Id(fmt.Sprintf("New%d", n)).Types(typeParams(n, "V")...).
		Params(jen.Id("value").Id("V")).Add(self()).Block(
		jen.Var().Id("v").Add(self()),
		jen.Id("construct").Call(jen.Op("&").Id("v"), jen.Id("value")),
		jen.Return(jen.Id("v")),
	)

	f.Line()
	f.Func().Params(recv()).Id("index").Params().Int().Block(
		jen.Return(jen.Int().Call(jen.Id("v").Dot("disc"))),
	)

	f.Line()
	f.Func().Params(recv()).Id("setIndex").Params(jen.Id("i").Int()).Block(
		jen.Id("v").Dot("disc").Op("=").Uint8().Call(jen.Id("i")),
	)

	f.Line()
	f.Func().Params(recv()).Id("slot").Params(jen.Id("i").Int()).Qual("unsafe", "Pointer").Block(
		jen.Switch(jen.Id("i")).BlockFunc(func(b *jen.Group) {
			for i := 0; i < n; i++ {
				b.Case(jen.Lit(i)).Block(
					jen.Return(jen.Qual("unsafe", "Pointer").Call(jen.Op("&").Id("v").Dot(slotName(i)))),
				)
			}
		}),
		jen.Panic(jen.Qual(g.errorsPath, "InvalidInput").Call(
			jen.Qual(g.errorsPath, "PhaseAccess"), jen.Lit("slot index out of range"))),
	)

	rows := make([]jen.Code, n)
	types := make([]jen.Code, n)
	for i := 0; i < n; i++ {
		rows[i] = jen.Qual(g.lifecyclePath, "RowFor").Types(jen.Id(typeName(i)))
		types[i] = jen.Qual("reflect", "TypeFor").Types(jen.Id(typeName(i))).Call()
	}

	f.Line()
	f.Func().Params(jen.Op("*").Add(self())).Id("ops").Params().Op("*").Qual(g.lifecyclePath, "Table").Block(
		jen.Return(jen.Qual(g.lifecyclePath, "For").Types(self()).Call(rows...)),
	)

	f.Line()
	f.Comment(fmt.Sprintf("Alternatives returns the alternative list shared by every %s of", name)).Line().
		Comment("these type arguments.").Line().
		Func().Params(jen.Op("*").Add(self())).Id("Alternatives").Params().Op("*").Qual(g.altPath, "Set").Block(
		jen.Return(jen.Qual(g.altPath, "Lookup").Types(self()).Call(types...)),
	)

	f.Line()
	f.Comment("Index returns the discriminant of the live alternative.").Line().
		Func().Params(recv()).Id("Index").Params().Int().Block(
		jen.Return(jen.Int().Call(jen.Id("v").Dot("disc"))),
	)

	f.Line()
	f.Comment("Value returns the live value as an interface.").Line().
		Func().Params(recv()).Id("Value").Params().Id("any").Block(
		jen.Switch(jen.Id("v").Dot("disc")).BlockFunc(func(b *jen.Group) {
			for i := 0; i < n; i++ {
				b.Case(jen.Lit(i)).Block(jen.Return(jen.Id("v").Dot(slotName(i))))
			}
		}),
		jen.Return(jen.Nil()),
	)

	for i := 0; i < n; i++ {
		t := typeName(i)
		f.Line()
		f.Comment(fmt.Sprintf("Get%d returns a pointer to the live %s, or an error matching", i, t)).Line().
			Comment("errors.ErrBadAccess if another alternative is live.").Line().
			Func().Params(recv()).Id(fmt.Sprintf("Get%d", i)).Params().Params(jen.Op("*").Id(t), jen.Error()).Block(
			jen.Return(jen.Id("get").Types(jen.Id(t)).Call(jen.Id("v"), jen.Lit(i))),
		)

		f.Line()
		f.Comment(fmt.Sprintf("Set%d destroys the live value and stores x as alternative %d.", i, i)).Line().
			Func().Params(recv()).Id(fmt.Sprintf("Set%d", i)).Params(jen.Id("x").Id(t)).Block(
			jen.Id("emplace").Call(jen.Id("v"), jen.Lit(i), jen.Id("x")),
		)
	}

	f.Line()
	f.Comment("Clone returns a copy of v built with the live alternative's copy semantics.").Line().
		Func().Params(recv()).Id("Clone").Params().Add(self()).Block(
		g.construct(n, self(), "CloneOf")...,
	)

	f.Line()
	f.Comment("Move transfers the live value into a new variant. v keeps its").Line().
		Comment("discriminant and holds the alternative's moved-from value.").Line().
		Func().Params(recv()).Id("Move").Params().Add(self()).Block(
		g.construct(n, self(), "MoveOf")...,
	)

	f.Line()
	f.Comment("Assign makes v hold a copy of src's live value.").Line().
		Func().Params(recv()).Id("Assign").Params(jen.Id("src").Op("*").Add(self())).Block(
		jen.Id("assign").Call(jen.Id("v"), jen.Id("src"), jen.False()),
	)

	f.Line()
	f.Comment("MoveAssign moves src's live value into v.").Line().
		Func().Params(recv()).Id("MoveAssign").Params(jen.Id("src").Op("*").Add(self())).Block(
		jen.Id("assign").Call(jen.Id("v"), jen.Id("src"), jen.True()),
	)

	f.Line()
	f.Comment("Destroy ends the live value's lifetime and resets v to its zero value.").Line().
		Func().Params(recv()).Id("Destroy").Params().Block(
		jen.Id("destroy").Call(jen.Id("v")),
	)

	f.Line()
	f.Comment("Layout returns the packed storage layout of the alternatives.").Line().
		Func().Params(recv()).Id("Layout").Params().Qual(g.layoutPath, "Info").Block(
		jen.Return(jen.Id("v").Dot("Alternatives").Call().Dot("Layout").Call()),
	)

	f.Line()
	f.Func().Params(recv()).Id("String").Params().String().Block(
		jen.Return(jen.Id("format").Call(jen.Id("v"))),
	)

	visitor := fmt.Sprintf("Visitor%d", n)
	f.Line()
	f.Comment(fmt.Sprintf("%s handles every alternative of a %s with one result type.", visitor, name)).Line().
		Type().Id(visitor).Types(typeParams(n, "R")...).InterfaceFunc(func(b *jen.Group) {
		for i := 0; i < n; i++ {
			b.Id(fmt.Sprintf("Visit%d", i)).Params(jen.Id(typeName(i))).Id("R")
		}
	})

	match := fmt.Sprintf("Match%d", n)
	visits := []jen.Code{jen.Id("v")}
	for i := 0; i < n; i++ {
		visits = append(visits, jen.Id("visitor").Dot(fmt.Sprintf("Visit%d", i)))
	}
	f.Line()
	f.Comment(fmt.Sprintf("Accept%d calls the visitor method of v's live alternative.", n)).Line().
		Func().Id(fmt.Sprintf("Accept%d", n)).Types(typeParams(n, "R")...).
		Params(recv(), jen.Id("visitor").Id(visitor).Types(append(typeArgs(n), jen.Id("R"))...)).Id("R").Block(
		jen.If(jen.Id("visitor").Op("==").Nil()).Block(
			jen.Panic(jen.Id("nilVisitor").Call(jen.Id("v"))),
		),
		jen.Return(jen.Id(match).Call(visits...)),
	)

	g.matchFunc(n, match, false)
	g.matchFunc(n, fmt.Sprintf("MatchRef%d", n), true)
}

// construct renders the body of Clone or Move: the live slot is built into
// a local variant with lifecycle.CloneOf or lifecycle.MoveOf.
func (g *generator) construct(n int, self *jen.Statement, op string) []jen.Code {
	return []jen.Code{
		jen.Var().Id("out").Add(self),
		jen.Switch(jen.Id("v").Dot("disc")).BlockFunc(func(b *jen.Group) {
			for i := 0; i < n; i++ {
				b.Case(jen.Lit(i)).Block(
					jen.Id("out").Dot(slotName(i)).Op("=").
						Qual(g.lifecyclePath, op).Call(jen.Op("&").Id("v").Dot(slotName(i))),
				)
			}
		}),
		jen.Id("out").Dot("disc").Op("=").Id("v").Dot("disc"),
		jen.Return(jen.Id("out")),
	}
}

// matchFunc emits MatchN (handlers take values) or MatchRefN (handlers take
// pointers to the live value).
func (g *generator) matchFunc(n int, fname string, ref bool) {
	params := []jen.Code{jen.Id("v").Op("*").Id(fmt.Sprintf("Variant%d", n)).Types(typeArgs(n)...)}
	binds := make([]jen.Code, n)
	bind := "Bind"
	if ref {
		bind = "BindRef"
	}
	for i := 0; i < n; i++ {
		arg := jen.Id(typeName(i))
		if ref {
			arg = jen.Op("*").Id(typeName(i))
		}
		params = append(params, jen.Id(fmt.Sprintf("f%d", i)).Func().Params(arg).Id("R"))
		binds[i] = jen.Qual(g.dispatchPath, bind).Call(jen.Id(fmt.Sprintf("f%d", i)))
	}

	var doc *jen.Statement
	if ref {
		doc = jen.Comment(fmt.Sprintf("%s is like Match%d but hands each handler a pointer to the live value.", fname, n))
	} else {
		doc = jen.Comment(fmt.Sprintf("%s calls the handler of v's live alternative. Every handler must be", fname)).Line().
			Comment("non-nil.")
	}
	g.f.Line()
	g.f.Add(doc.Line().
		Func().Id(fname).Types(typeParams(n, "R")...).Params(params...).Id("R").Block(
		jen.Id("table").Op(":=").Index(jen.Op("...")).Qual(g.dispatchPath, "Entry").Types(jen.Id("R")).Values(binds...),
		jen.Return(jen.Id("visit").Call(jen.Id("v"), jen.Id("table").Index(jen.Op(":")))),
	))
}

func typeName(i int) string { return fmt.Sprintf("T%d", i) }

func slotName(i int) string { return fmt.Sprintf("v%d", i) }

// typeParams renders "T0, T1, ..., extra any".
func typeParams(n int, extra ...string) []jen.Code {
	names := make([]string, 0, n+len(extra))
	for i := 0; i < n; i++ {
		names = append(names, typeName(i))
	}
	names = append(names, extra...)

	out := make([]jen.Code, len(names))
	for i, name := range names {
		if i == len(names)-1 {
			out[i] = jen.Id(name).Id("any")
		} else {
			out[i] = jen.Id(name)
		}
	}
	return out
}

func typeArgs(n int) []jen.Code {
	out := make([]jen.Code, n)
	for i := range out {
		out[i] = jen.Id(typeName(i))
	}
	return out
}

func orList(n int) string {
	names := make([]string, n)
	for i := range names {
		names[i] = typeName(i)
	}
	if n == 1 {
		return names[0]
	}
	return strings.Join(names[:n-1], ", ") + " or " + names[n-1]
}
