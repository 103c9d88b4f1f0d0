// Package zxlog is a thin structured-logging facade over
// github.com/sirupsen/logrus, in the idiom the example corpus's CLI tooling
// uses (a package-level logger plus small Fields-based helpers), adapted so
// package strategy and cmd/zxopt never import logrus directly.
package zxlog

import (
	"github.com/sirupsen/logrus"
)

// base is the shared logger instance. Its level defaults to Info; SetVerbose
// raises it to Debug for -v runs.
var base = logrus.New()

// SetVerbose toggles Debug-level logging on or off.
func SetVerbose(verbose bool) {
	if verbose {
		base.SetLevel(logrus.DebugLevel)

		return
	}
	base.SetLevel(logrus.InfoLevel)
}

// Fields is a type alias for logrus.Fields, so callers never need to import
// logrus themselves to attach structured context.
type Fields = logrus.Fields

// Rewrite logs one applied rewrite at Info level: the rule name, the loop
// iteration, and whether the denotation oracle confirmed it valid.
func Rewrite(ruleName string, iteration int, valid bool) {
	base.WithFields(Fields{
		"rule":      ruleName,
		"iteration": iteration,
		"valid":     valid,
	}).Info("applied rewrite")
}

// ValidationFailure logs a denotation mismatch at Warn level — the rewrite
// still happened (the Optimizer's stated policy is to continue), but the
// operator needs this surfaced.
func ValidationFailure(ruleName string, iteration int, message string) {
	base.WithFields(Fields{
		"rule":      ruleName,
		"iteration": iteration,
	}).Warn("rewrite failed denotation check: " + message)
}

// Debugf logs a free-form debug line, gated by SetVerbose.
func Debugf(format string, args ...interface{}) {
	base.Debugf(format, args...)
}

// Infof logs a free-form info line.
func Infof(format string, args ...interface{}) {
	base.Infof(format, args...)
}
