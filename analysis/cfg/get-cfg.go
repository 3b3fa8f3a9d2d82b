package cfg

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/printer"
	"go/token"
	"go/types"
	"strconv"

	"github.com/cs-au-dk/absdom/analysis/expr"

	"golang.org/x/exp/slices"
	gocfg "golang.org/x/tools/go/cfg"
)

// ParseFile builds the CFGs of every function declared in the Go source
// src, in declaration order. Methods are named Type.Method.
func ParseFile(filename string, src []byte) ([]*Cfg, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, 0)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	return FromAST(fset, file), nil
}

// FromAST builds the CFGs of every function with a body in file.
func FromAST(fset *token.FileSet, file *ast.File) (cfgs []*Cfg) {
	for _, decl := range file.Decls {
		if fd, ok := decl.(*ast.FuncDecl); ok && fd.Body != nil {
			cfgs = append(cfgs, FromFunc(fset, fd))
		}
	}
	return
}

// FromSource builds the CFG of the function fun declared in src.
func FromSource(filename string, src []byte, fun string) (*Cfg, error) {
	cfgs, err := ParseFile(filename, src)
	if err != nil {
		return nil, err
	}
	for _, cfg := range cfgs {
		if cfg.Name() == fun {
			return cfg, nil
		}
	}
	return nil, fmt.Errorf("function %s not found in %s", fun, filename)
}

func funcName(fd *ast.FuncDecl) string {
	if fd.Recv == nil || len(fd.Recv.List) == 0 {
		return fd.Name.Name
	}
	recv := fd.Recv.List[0].Type
	if star, ok := recv.(*ast.StarExpr); ok {
		recv = star.X
	}
	return types.ExprString(recv) + "." + fd.Name.Name
}

// mayReturn reports whether control may continue after a call.
func mayReturn(call *ast.CallExpr) bool {
	id, ok := call.Fun.(*ast.Ident)
	return !ok || id.Name != "panic"
}

// translator maps the statements of a function body onto CFG nodes.
type translator struct {
	fset *token.FileSet
	b    *Builder
	// names maps the variables declared in the function to distinct names.
	names map[*ast.Object]string
	// ranged maps the key and value expressions of range loops to the
	// ranged operand.
	ranged map[ast.Expr]ast.Expr
	// tags maps the case expressions of tagged switches to the tag.
	tags map[ast.Expr]ast.Expr
}

// span is the chain of CFG nodes of a basic block.
type span struct {
	first, last Node
}

// FromFunc builds the CFG of a function declaration. Basic blocks are
// computed by golang.org/x/tools/go/cfg. A condition is a single node, and
// short-circuit operators are left to the domains.
func FromFunc(fset *token.FileSet, fd *ast.FuncDecl) *Cfg {
	t := translator{
		fset:   fset,
		b:      NewBuilder(funcName(fd)),
		names:  localNames(fset, fd),
		ranged: make(map[ast.Expr]ast.Expr),
		tags:   make(map[ast.Expr]ast.Expr),
	}
	ast.Inspect(fd.Body, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.RangeStmt:
			for _, v := range []ast.Expr{n.Key, n.Value} {
				if v != nil {
					t.ranged[v] = n.X
				}
			}
		case *ast.SwitchStmt:
			if n.Tag == nil {
				break
			}
			for _, clause := range n.Body.List {
				for _, c := range clause.(*ast.CaseClause).List {
					t.tags[c] = n.Tag
				}
			}
		}
		return true
	})
	g := gocfg.New(fd.Body, mayReturn)

	spans := make(map[*gocfg.Block]span)
	var live []*gocfg.Block
	for _, blk := range g.Blocks {
		if blk.Live {
			live = append(live, blk)
			spans[blk] = t.block(blk)
		}
	}

	exit := t.b.Exit()
	t.b.Seq(t.b.Entry(), spans[g.Blocks[0]].first)

	for _, blk := range live {
		s := spans[blk]
		switch {
		case len(blk.Succs) == 0:
			t.b.Seq(s.last, exit)
		case isBranch(blk):
			t.b.Branch(s.last, spans[blk.Succs[0]].first, spans[blk.Succs[1]].first)
		default:
			for _, succ := range blk.Succs {
				t.b.Seq(s.last, spans[succ].first)
			}
		}
	}

	t.b.Compress()
	t.b.Sort()
	return t.b.Build()
}

// localNames names the variables of fd. The first variable declared with a
// name keeps it, and variables shadowing it are suffixed with the position
// of their declaration, as in x#6:3.
func localNames(fset *token.FileSet, fd *ast.FuncDecl) map[*ast.Object]string {
	names := make(map[*ast.Object]string)
	taken := make(map[string]bool)
	ast.Inspect(fd, func(n ast.Node) bool {
		id, ok := n.(*ast.Ident)
		if !ok || id.Obj == nil || id.Obj.Kind != ast.Var {
			return true
		}
		if _, seen := names[id.Obj]; seen {
			return true
		}
		// Declarations precede their uses in source order.
		name := id.Name
		if taken[name] {
			p := fset.Position(id.Pos())
			name = fmt.Sprintf("%s#%d:%d", id.Name, p.Line, p.Column)
		}
		taken[id.Name] = true
		names[id.Obj] = name
		return true
	})
	return names
}

func lastNode(blk *gocfg.Block) ast.Node {
	if len(blk.Nodes) == 0 {
		return nil
	}
	return blk.Nodes[len(blk.Nodes)-1]
}

// isBranch holds for blocks ending in a condition, whose first successor
// is taken when the condition holds. The head of a range loop has no
// condition, and both of its successors are taken unconditionally.
func isBranch(blk *gocfg.Block) bool {
	_, isExpr := lastNode(blk).(ast.Expr)
	return len(blk.Succs) == 2 && isExpr
}

func (t *translator) block(blk *gocfg.Block) span {
	var nodes []Node
	for _, n := range blk.Nodes {
		nodes = append(nodes, t.stmt(n)...)
	}
	if len(nodes) == 0 {
		nodes = append(nodes, t.b.Skip(expr.CodeLocation{}, "skip"))
	}
	return span{nodes[0], t.b.Chain(nodes...)}
}

func (t *translator) loc(pos token.Pos) expr.CodeLocation {
	p := t.fset.Position(pos)
	return expr.CodeLocation{File: p.Filename, Line: p.Line, Column: p.Column}
}

func (t *translator) source(n ast.Node) string {
	if e, ok := n.(ast.Expr); ok {
		return types.ExprString(e)
	}
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, t.fset, n); err != nil {
		return fmt.Sprintf("%T", n)
	}
	return buf.String()
}

// ident resolves a variable reference. Identifiers the parser could not
// resolve, such as package-level variables of other files, keep their name.
func (t *translator) ident(id *ast.Ident) expr.Identifier {
	if name, ok := t.names[id.Obj]; ok {
		return expr.Var(name)
	}
	return expr.Var(id.Name)
}

// opaque models a value the expression model cannot represent, keeping the
// variables it reads.
func (t *translator) opaque(n ast.Node) expr.Opaque {
	return expr.Opaque{Text: t.source(n), Vars: t.vars(n)}
}

func (t *translator) vars(n ast.Node) (res []expr.Identifier) {
	ast.Inspect(n, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && id.Obj != nil && id.Obj.Kind == ast.Var {
			v := t.ident(id)
			if slices.IndexFunc(res, v.EqualId) < 0 {
				res = append(res, v)
			}
		}
		return true
	})
	return
}

// target returns the variable assigned by an assignment to e.
func (t *translator) target(e ast.Expr) (expr.Identifier, bool) {
	switch e := e.(type) {
	case *ast.ParenExpr:
		return t.target(e.X)
	case *ast.Ident:
		if e.Name != "_" {
			return t.ident(e), true
		}
	}
	return expr.Identifier{}, false
}

func (t *translator) stmt(n ast.Node) []Node {
	loc := t.loc(n.Pos())

	switch n := n.(type) {
	case *ast.AssignStmt:
		return t.assign(n)
	case *ast.IncDecStmt:
		op := expr.Add
		if n.Tok == token.DEC {
			op = expr.Sub
		}
		if id, ok := t.target(n.X); ok {
			return []Node{t.b.Assign(loc, id, expr.Binary{Op: op, X: id, Y: expr.Int(1)})}
		}
		return []Node{t.b.Eval(loc, t.expr(n.X))}
	case *ast.ValueSpec:
		return t.valueSpec(n)
	case *ast.ExprStmt:
		return []Node{t.b.Eval(loc, t.expr(n.X))}
	case *ast.ReturnStmt:
		if len(n.Results) == 0 {
			return []Node{t.b.Skip(loc, "return")}
		}
		nodes := make([]Node, len(n.Results))
		for i, res := range n.Results {
			nodes[i] = t.b.Eval(t.loc(res.Pos()), t.expr(res))
		}
		return nodes
	case ast.Expr:
		// go/cfg evaluates the key and value of a range loop once, before
		// the loop head. They hold an unknown element of the ranged operand.
		if x, ok := t.ranged[n]; ok {
			if id, ok := t.target(n); ok {
				return []Node{t.b.Assign(loc, id, expr.Opaque{Text: "range " + types.ExprString(x), Vars: t.vars(x)})}
			}
		}
		// A case of a tagged switch holds when it equals the tag.
		if tag, ok := t.tags[n]; ok {
			return []Node{t.b.Eval(loc, expr.Binary{Op: expr.Eq, X: t.expr(tag), Y: t.expr(n)})}
		}
		return []Node{t.b.Eval(loc, t.expr(n))}
	}
	return []Node{t.b.Skip(loc, t.source(n))}
}

var assignOps = map[token.Token]expr.BinaryOp{
	token.ADD_ASSIGN: expr.Add,
	token.SUB_ASSIGN: expr.Sub,
	token.MUL_ASSIGN: expr.Mul,
	token.QUO_ASSIGN: expr.Div,
	token.REM_ASSIGN: expr.Mod,
}

func (t *translator) assign(n *ast.AssignStmt) []Node {
	loc := t.loc(n.Pos())

	if n.Tok != token.ASSIGN && n.Tok != token.DEFINE {
		rhs := t.expr(n.Rhs[0])
		id, ok := t.target(n.Lhs[0])
		switch op, known := assignOps[n.Tok]; {
		case !ok:
			return []Node{t.b.Eval(loc, rhs)}
		case !known:
			return []Node{t.b.Assign(loc, id, t.opaque(n))}
		default:
			return []Node{t.b.Assign(loc, id, expr.Binary{Op: op, X: id, Y: rhs})}
		}
	}

	// Tuple assignments from a single call, map lookup or type assertion.
	if len(n.Lhs) != len(n.Rhs) {
		var nodes []Node
		for _, lhs := range n.Lhs {
			if id, ok := t.target(lhs); ok {
				nodes = append(nodes, t.b.Assign(t.loc(lhs.Pos()), id, t.opaque(n.Rhs[0])))
			}
		}
		if len(nodes) == 0 {
			nodes = append(nodes, t.b.Eval(loc, t.expr(n.Rhs[0])))
		}
		return nodes
	}

	rhs := make([]expr.Expr, len(n.Rhs))
	for i, r := range n.Rhs {
		rhs[i] = t.expr(r)
	}

	// In a, b = b, a every right-hand side is evaluated before any variable
	// is assigned, which a sequence of assignments cannot express.
	parallel := false
	if len(n.Lhs) > 1 {
		for _, lhs := range n.Lhs {
			if id, ok := t.target(lhs); ok {
				for _, r := range rhs {
					parallel = parallel || expr.References(r, id)
				}
			}
		}
	}

	nodes := make([]Node, 0, len(n.Lhs))
	for i, lhs := range n.Lhs {
		id, ok := t.target(lhs)
		switch {
		case !ok:
			nodes = append(nodes, t.b.Eval(t.loc(lhs.Pos()), rhs[i]))
		case parallel:
			nodes = append(nodes, t.b.Assign(t.loc(lhs.Pos()), id, t.opaque(n.Rhs[i])))
		default:
			nodes = append(nodes, t.b.Assign(t.loc(lhs.Pos()), id, rhs[i]))
		}
	}
	return nodes
}

var integerTypes = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "byte": true, "rune": true,
}

func (t *translator) zero(typ ast.Expr) expr.Expr {
	if id, ok := typ.(*ast.Ident); ok {
		switch {
		case integerTypes[id.Name]:
			return expr.Int(0)
		case id.Name == "bool":
			return expr.Constant{Value: false}
		}
	}
	return expr.Constant{Value: "zero(" + types.ExprString(typ) + ")"}
}

func (t *translator) valueSpec(n *ast.ValueSpec) []Node {
	var nodes []Node
	for i, name := range n.Names {
		id, ok := t.target(name)
		if !ok {
			continue
		}

		var value expr.Expr
		switch {
		case len(n.Values) == 0 && n.Type != nil:
			value = t.zero(n.Type)
		case len(n.Values) == len(n.Names):
			value = t.expr(n.Values[i])
		default:
			value = t.opaque(n)
		}
		nodes = append(nodes, t.b.Assign(t.loc(name.Pos()), id, value))
	}
	if len(nodes) == 0 {
		nodes = append(nodes, t.b.Skip(t.loc(n.Pos()), t.source(n)))
	}
	return nodes
}

var binaryOps = map[token.Token]expr.BinaryOp{
	token.ADD:  expr.Add,
	token.SUB:  expr.Sub,
	token.MUL:  expr.Mul,
	token.QUO:  expr.Div,
	token.REM:  expr.Mod,
	token.EQL:  expr.Eq,
	token.NEQ:  expr.Ne,
	token.GTR:  expr.Gt,
	token.GEQ:  expr.Ge,
	token.LSS:  expr.Lt,
	token.LEQ:  expr.Le,
	token.LAND: expr.And,
	token.LOR:  expr.Or,
}

func (t *translator) expr(e ast.Expr) expr.Expr {
	switch e := e.(type) {
	case *ast.ParenExpr:
		return t.expr(e.X)
	case *ast.Ident:
		switch e.Name {
		case "true", "false":
			return expr.Constant{Value: e.Name == "true"}
		case "nil", "_":
			return t.opaque(e)
		}
		return t.ident(e)
	case *ast.BasicLit:
		if e.Kind == token.INT {
			if n, err := strconv.ParseInt(e.Value, 0, 64); err == nil {
				return expr.Int(n)
			}
		}
	case *ast.UnaryExpr:
		switch e.Op {
		case token.SUB:
			if lit, ok := e.X.(*ast.BasicLit); ok && lit.Kind == token.INT {
				if n, err := strconv.ParseInt("-"+lit.Value, 0, 64); err == nil {
					return expr.Int(n)
				}
			}
			return expr.Unary{Op: expr.Neg, X: t.expr(e.X)}
		case token.NOT:
			return expr.Unary{Op: expr.Not, X: t.expr(e.X)}
		case token.ADD:
			return t.expr(e.X)
		}
	case *ast.BinaryExpr:
		if op, ok := binaryOps[e.Op]; ok {
			return expr.Binary{Op: op, X: t.expr(e.X), Y: t.expr(e.Y)}
		}
	}
	return t.opaque(e)
}
