// File: main.go
// Role: zxopt CLI entry point — "load diagram / run optimizer / print
//       result" with a verbosity flag (spec.md §6), built with
//       github.com/spf13/cobra in the go-corset root-command idiom.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zxlab/zxrewrite/config"
	"github.com/zxlab/zxrewrite/denote"
	"github.com/zxlab/zxrewrite/rule"
	"github.com/zxlab/zxrewrite/rules"
	"github.com/zxlab/zxrewrite/strategy"
	"github.com/zxlab/zxrewrite/zxlog"
)

var rootCmd = &cobra.Command{
	Use:   "zxopt",
	Short: "Run the ZX-diagram rewriting optimizer against a diagram fixture.",
}

func defaultSimplifier() strategy.Simplifier {
	return strategy.Compound([]strategy.Simplifier{
		strategy.SingleRule(rules.SpiderFusion(rule.ClassGreen)),
		strategy.SingleRule(rules.SpiderFusion(rule.ClassRed)),
		strategy.SingleRule(rules.IdentityRemoval()),
		strategy.SingleRule(rules.Bialgebra()),
		strategy.SingleRule(rules.PiCommutation()),
		strategy.SingleRule(rules.Hopf()),
		strategy.SingleRule(rules.SelfLoopCleanup(false)),
		strategy.SingleRule(rules.SelfLoopCleanup(true)),
	})
}

func newRunCmd() *cobra.Command {
	var file string
	var verbose bool
	var maxIterations int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Load a diagram fixture and run the optimizer to a fixed point.",
		RunE: func(cmd *cobra.Command, args []string) error {
			zxlog.SetVerbose(verbose)

			d, err := loadDiagram(file)
			if err != nil {
				return err
			}

			opts := config.New(config.WithVerbose(verbose), config.WithMaxIterations(maxIterations))
			rs := strategy.NewRankedStrategy(defaultSimplifier())
			oracle := denote.NewMonteCarlo(structuralDenote, 1)
			optimizer := strategy.NewOptimizer(rs, oracle, opts)

			log, err := optimizer.Run(d)
			if err != nil {
				return err
			}

			fmt.Printf("final diagram: %d vertices, %d wires\n", d.VertexCount(), d.WireCount())
			if len(log) == 0 {
				fmt.Println("no validation failures")

				return nil
			}
			for _, failure := range log {
				fmt.Printf("iteration %d: rule %q failed validation: %s\n", failure.Iteration, failure.RuleName, failure.Message)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "path to a JSON diagram fixture")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0, "bound the optimizer loop (0 = unbounded)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func main() {
	rootCmd.AddCommand(newRunCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
