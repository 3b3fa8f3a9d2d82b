package absint

import (
	"strings"

	"github.com/cs-au-dk/absdom/analysis/cfg"
	"github.com/cs-au-dk/absdom/analysis/expr"
	"github.com/cs-au-dk/absdom/utils/pq"

	"go.uber.org/zap"
)

// Options controls the fixpoint computation.
type Options struct {
	// WideningThreshold is the number of times a loop head is processed
	// before joins there are replaced by widening.
	WideningThreshold int
	Logger            *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// Result maps every node of a CFG to the states before and after it.
type Result[S State[S]] struct {
	cfg       *cfg.Cfg
	pre, post []S
}

func (r Result[S]) Cfg() *cfg.Cfg {
	return r.cfg
}

// Pre is the state on entry to n, the join of the states on its incoming
// edges.
func (r Result[S]) Pre(n cfg.Node) S {
	return r.pre[n.Index()]
}

// Post is the state after executing n.
func (r Result[S]) Post(n cfg.Node) S {
	return r.post[n.Index()]
}

// Exit is the state at the end of the function.
func (r Result[S]) Exit() S {
	return r.Post(r.cfg.Exit())
}

// At prints the state after n.
func (r Result[S]) At(n cfg.Node) string {
	return r.Post(n).String()
}

// String lists the state after every node, in node order.
func (r Result[S]) String() string {
	var sb strings.Builder
	for _, n := range r.cfg.Nodes() {
		sb.WriteString(cfg.Describe(n))
		sb.WriteString("\n\t")
		sb.WriteString(r.Post(n).String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// transfer applies the effect of a node to a state.
func transfer[S State[S]](n cfg.Node, s S) S {
	switch n := n.(type) {
	case *cfg.Assign:
		return s.Assign(n.Target, n.Value, n)
	case *cfg.Eval:
		return s.SmallStep(n.Expr, n)
	case *cfg.Skip:
		return s
	}
	panic(errPatternMatch(n))
}

// follow computes the state flowing along an edge from the state after its
// source.
func follow[S State[S]](e cfg.Edge, s S) S {
	if e.Kind == cfg.Seq {
		return s
	}

	cond, ok := e.From.(*cfg.Eval)
	if !ok {
		panic(errPatternMatch(e.From))
	}
	if e.Kind == cfg.True {
		return s.Assume(cond.Expr, cond)
	}
	return s.Assume(expr.Unary{Op: expr.Not, X: cond.Expr}, cond)
}

// Run computes the least fixpoint (up to widening) of the forward analysis
// of c, starting from init at the entry node. Nodes are processed in index
// order, so that a node is usually visited after all of its predecessors
// outside of loops.
func Run[S State[S]](c *cfg.Cfg, init S, opts Options) Result[S] {
	log := opts.logger().With(zap.String("function", c.Name()))

	res := Result[S]{
		cfg:  c,
		pre:  make([]S, c.Size()),
		post: make([]S, c.Size()),
	}
	bot := init.Bottom()
	for i := range res.pre {
		res.pre[i], res.post[i] = bot, bot
	}

	loopHeads := c.Graph().LoopHeads([]cfg.Node{c.Entry()})
	visits := make([]int, c.Size())

	worklist := pq.Empty(func(a, b cfg.Node) bool {
		return a.Index() < b.Index()
	})
	res.pre[c.Entry().Index()] = init
	worklist.Add(c.Entry())

	steps := 0
	for ; !worklist.IsEmpty(); steps++ {
		n := worklist.GetNext()
		visits[n.Index()]++

		out := transfer(n, res.pre[n.Index()])
		res.post[n.Index()] = out

		for _, e := range c.Successors(n) {
			s := follow(e, out)
			if s.IsBot() {
				continue
			}

			i := e.To.Index()
			prev := res.pre[i]
			if s.Leq(prev) {
				continue
			}

			next := prev.Join(s)
			if loopHeads[e.To] && visits[i] >= opts.WideningThreshold {
				log.Debug("widening", zap.Int("node", i), zap.Int("visits", visits[i]))
				next = prev.Widen(next)
			}
			res.pre[i] = next
			worklist.Add(e.To)
		}
	}

	log.Debug("fixpoint reached", zap.Int("steps", steps), zap.Int("nodes", c.Size()))
	return res
}
