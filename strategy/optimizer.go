// File: optimizer.go
// Role: Optimizer — the match-rewrite-validate loop (spec.md §4.5): ask the
//       strategy for the next rule, snapshot the denotation, apply the
//       rewrite, snapshot again, compare, and record any mismatch without
//       halting unless the caller opted into config.Options.StopOnInvalid.
package strategy

import (
	"github.com/zxlab/zxrewrite/config"
	"github.com/zxlab/zxrewrite/denote"
	"github.com/zxlab/zxrewrite/diagram"
	"github.com/zxlab/zxrewrite/match"
	"github.com/zxlab/zxrewrite/rewrite"
	"github.com/zxlab/zxrewrite/zxerr"
	"github.com/zxlab/zxrewrite/zxlog"
)

// ValidationFailure records one rewrite step whose before/after denotations
// the Oracle judged inequivalent. The Optimizer surfaces these in its
// returned log rather than as Go errors (spec.md §7): a faulty rule is a
// caller-observable event, not a fatal condition for the loop itself.
type ValidationFailure struct {
	RuleName  string
	Iteration int
	Valid     bool
	Message   string
}

// Optimizer drives a RankedStrategy to a fixed point against one diagram,
// validating every applied rewrite with an Oracle.
type Optimizer struct {
	strategy *RankedStrategy
	oracle   denote.Oracle
	opts     config.Options
}

// NewOptimizer builds an Optimizer around strategy and oracle, bounded and
// configured by opts.
func NewOptimizer(strategy *RankedStrategy, oracle denote.Oracle, opts config.Options) *Optimizer {
	return &Optimizer{strategy: strategy, oracle: oracle, opts: opts}
}

// Run executes the optimizer loop against d in place, returning the full
// validation log. The loop terminates when the strategy reports no further
// match, when opts.MaxIterations is reached (0 means unbounded — the core
// itself never imposes a bound, per spec.md §4.5), or, if
// opts.StopOnInvalid is set, on the first ValidationFailure.
func (o *Optimizer) Run(d *diagram.Diagram) ([]ValidationFailure, error) {
	var log []ValidationFailure

	for iteration := 0; o.opts.MaxIterations == 0 || iteration < o.opts.MaxIterations; iteration++ {
		r, ok, err := o.strategy.FindNextRule(d)
		if err != nil {
			return log, zxerr.Wrap("strategy.Optimizer.Run", err)
		}
		if !ok {
			break
		}

		before, err := o.oracle.Denote(d)
		if err != nil {
			return log, zxerr.Wrap("strategy.Optimizer.Run", err)
		}

		if _, _, err := match.Match(d, r, true, rewrite.Rewriter{}); err != nil {
			return log, zxerr.Wrap("strategy.Optimizer.Run", err)
		}

		after, err := o.oracle.Denote(d)
		if err != nil {
			return log, zxerr.Wrap("strategy.Optimizer.Run", err)
		}

		valid := o.oracle.Equivalent(before, after)
		zxlog.Rewrite(r.Name, iteration, valid)
		if !valid {
			failure := ValidationFailure{RuleName: r.Name, Iteration: iteration, Valid: false, Message: "denotation mismatch after rewrite"}
			log = append(log, failure)
			zxlog.ValidationFailure(r.Name, iteration, failure.Message)
			if o.opts.StopOnInvalid {
				break
			}
		}
	}

	return log, nil
}
