// Package interpreter parses and executes turtle scripts. A script
// builds one move sequence through the primitives (forward, back,
// left, right) and reshapes it with the transform statements (repeat,
// dilate, reverse, align, rescale, append, fractalize). Motif blocks
// record named sequences for append and fractalize to use.
package interpreter

import (
	"fmt"
	"math"

	"github.com/alecthomas/participle/v2"

	"turtlecurve/internal/turtle"
)

type Program struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Motif  *MotifDef  `parser:"@@"`
	Loop   *Loop      `parser:"| @@"`
	Move   *MoveStmt  `parser:"| @@ ';'"`
	Trans  *Transform `parser:"| @@ ';'"`
	Assign *Assign    `parser:"| @@ ';'"`
}

type MotifDef struct {
	Name string   `parser:"'motif' @Ident"`
	Body *Program `parser:"'{' @@ '}'"`
}

type Loop struct {
	Var  string   `parser:"'loop' @Ident"`
	From *Expr    `parser:"'=' @@ ':'"`
	To   *Expr    `parser:"@@"`
	Body *Program `parser:"'{' @@ '}'"`
}

type MoveStmt struct {
	Dir    string `parser:"@('forward'|'back'|'left'|'right')"`
	Amount *Expr  `parser:"@@"`
}

type Transform struct {
	Repeat  *Expr    `parser:"'repeat' @@"`
	Dilate  *Expr    `parser:"| 'dilate' @@"`
	Rescale *Expr    `parser:"| 'rescale' @@"`
	Reverse bool     `parser:"| @'reverse'"`
	Align   bool     `parser:"| @'align'"`
	Append  *string  `parser:"| 'append' @Ident"`
	Fractal *Fractal `parser:"| @@"`
}

type Fractal struct {
	Motif string `parser:"'fractalize' @Ident"`
	Depth *Expr  `parser:"@@"`
}

type Assign struct {
	Name string `parser:"@Ident '='"`
	Expr *Expr  `parser:"@@"`
}

type Expr struct {
	Left *Term     `parser:"@@"`
	Rest []*OpTerm `parser:"@@*"`
}

type OpTerm struct {
	Op    string `parser:"@('+'|'-')"`
	Right *Term  `parser:"@@"`
}

type Term struct {
	Left *Factor     `parser:"@@"`
	Rest []*OpFactor `parser:"@@*"`
}

type OpFactor struct {
	Op    string  `parser:"@('*'|'/')"`
	Right *Factor `parser:"@@"`
}

type Factor struct {
	Neg    bool     `parser:"@'-'?"`
	Number *float64 `parser:"( @Float | @Int"`
	Ident  *string  `parser:"| @Ident"`
	Sub    *Expr    `parser:"| '(' @@ ')' )"`
}

var parser = participle.MustBuild[Program](participle.UseLookahead(2))

func Parse(data string) (*Program, error) {
	return parser.ParseString("script", data)
}

// Run parses and executes a script in a fresh context.
func Run(data string) (*Context, error) {
	prog, err := Parse(data)
	if err != nil {
		return nil, err
	}
	ctx := NewContext()
	if err := prog.Exec(ctx); err != nil {
		return nil, err
	}
	return ctx, nil
}

// CompileMotif executes a standalone script and returns the sequence it
// builds. Used for motifs defined in preset files.
func CompileMotif(data string) (*turtle.Sequence, error) {
	ctx, err := Run(data)
	if err != nil {
		return nil, err
	}
	return ctx.Seq, nil
}

func (p *Program) Exec(ctx *Context) error {
	for _, stmt := range p.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	switch {
	case s.Motif != nil:
		sub := &Context{Env: ctx.Env, Seq: turtle.NewSequence(), Motifs: ctx.Motifs}
		if err := s.Motif.Body.Exec(sub); err != nil {
			return fmt.Errorf("motif %s: %w", s.Motif.Name, err)
		}
		ctx.Motifs[s.Motif.Name] = sub.Seq
	case s.Loop != nil:
		from, err := s.Loop.From.Eval(ctx)
		if err != nil {
			return err
		}
		to, err := s.Loop.To.Eval(ctx)
		if err != nil {
			return err
		}
		for i := int(math.Round(from)); i <= int(math.Round(to)); i++ {
			ctx.Env.Set(s.Loop.Var, float64(i))
			if err := s.Loop.Body.Exec(ctx); err != nil {
				return err
			}
		}
	case s.Move != nil:
		amount, err := s.Move.Amount.Eval(ctx)
		if err != nil {
			return err
		}
		switch s.Move.Dir {
		case "forward":
			ctx.Seq.Forward(amount)
		case "back":
			ctx.Seq.Back(amount)
		case "left":
			ctx.Seq.TurnLeft(amount)
		case "right":
			ctx.Seq.TurnRight(amount)
		}
	case s.Trans != nil:
		return s.Trans.Exec(ctx)
	case s.Assign != nil:
		val, err := s.Assign.Expr.Eval(ctx)
		if err != nil {
			return err
		}
		ctx.Env.Set(s.Assign.Name, val)
	}
	return nil
}

func (t *Transform) Exec(ctx *Context) error {
	switch {
	case t.Repeat != nil:
		n, err := t.Repeat.Eval(ctx)
		if err != nil {
			return err
		}
		ctx.Seq.Repeat(int(math.Round(n)))
	case t.Dilate != nil:
		f, err := t.Dilate.Eval(ctx)
		if err != nil {
			return err
		}
		ctx.Seq.Dilate(f)
	case t.Rescale != nil:
		target, err := t.Rescale.Eval(ctx)
		if err != nil {
			return err
		}
		if err := ctx.Seq.NormalizeLength(target); err != nil {
			return fmt.Errorf("rescale: %w", err)
		}
	case t.Reverse:
		ctx.Seq.Reverse()
	case t.Align:
		ctx.Seq.NormalizeAngle()
	case t.Append != nil:
		m, ok := ctx.Motifs[*t.Append]
		if !ok {
			return fmt.Errorf("undefined motif %s", *t.Append)
		}
		ctx.Seq.Append(m)
	case t.Fractal != nil:
		m, ok := ctx.Motifs[t.Fractal.Motif]
		if !ok {
			return fmt.Errorf("undefined motif %s", t.Fractal.Motif)
		}
		depth, err := t.Fractal.Depth.Eval(ctx)
		if err != nil {
			return err
		}
		if err := ctx.Seq.Fractalize(m, int(math.Round(depth))); err != nil {
			return fmt.Errorf("fractalize %s: %w", t.Fractal.Motif, err)
		}
	}
	return nil
}

func (e *Expr) Eval(ctx *Context) (float64, error) {
	val, err := e.Left.Eval(ctx)
	if err != nil {
		return 0, err
	}
	for _, rt := range e.Rest {
		v, err := rt.Right.Eval(ctx)
		if err != nil {
			return 0, err
		}
		switch rt.Op {
		case "+":
			val += v
		case "-":
			val -= v
		}
	}
	return val, nil
}

func (t *Term) Eval(ctx *Context) (float64, error) {
	val, err := t.Left.Eval(ctx)
	if err != nil {
		return 0, err
	}
	for _, rf := range t.Rest {
		v, err := rf.Right.Eval(ctx)
		if err != nil {
			return 0, err
		}
		switch rf.Op {
		case "*":
			val *= v
		case "/":
			if v == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			val /= v
		}
	}
	return val, nil
}

func (f *Factor) Eval(ctx *Context) (float64, error) {
	var val float64
	switch {
	case f.Number != nil:
		val = *f.Number
	case f.Ident != nil:
		v, ok := ctx.Env.Get(*f.Ident)
		if !ok {
			return 0, fmt.Errorf("undefined variable %s", *f.Ident)
		}
		val = v
	case f.Sub != nil:
		v, err := f.Sub.Eval(ctx)
		if err != nil {
			return 0, err
		}
		val = v
	default:
		return 0, fmt.Errorf("invalid factor")
	}
	if f.Neg {
		val = -val
	}
	return val, nil
}
