// Package cli implements the shipyard command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/shipyard/internal/paths"
	"github.com/mesh-intelligence/shipyard/internal/report"
	"github.com/mesh-intelligence/shipyard/internal/ui"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	jsonMode  bool
	noColor   bool
}

var flags rootFlags

// NewRootCmd creates the top-level "shipyard" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shipyard",
		Short: "Plan and check container ship loads",
		Long: "Shipyard builds liquid, gas and cooled cargo containers, loads them within\n" +
			"their capacity limits, and puts them on a ship within its count and weight limits.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: .shipyard)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "print ship reports as JSON")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newDemoCmd())
	root.AddCommand(newPlanCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(ExitCode(err))
	}
}

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// userError marks err as caused by input or a rejected operation.
func userError(err error) error { return &exitError{code: exitUserError, err: err} }

// sysError marks err as an environment failure (filesystem, config I/O).
func sysError(err error) error { return &exitError{code: exitSysError, err: err} }

// ExitCode returns the process exit code for err. Unclassified errors,
// including cobra's own flag errors, count as user errors.
func ExitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return exitUserError
}

func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flags.configDir)
}

// newPrinter returns the status printer for cmd. In JSON mode status lines
// go to stderr so stdout carries only JSON.
func newPrinter(cmd *cobra.Command) *ui.Printer {
	var w io.Writer = cmd.OutOrStdout()
	if flags.jsonMode {
		w = cmd.ErrOrStderr()
	}
	return ui.New(w, flags.noColor)
}

func reportFormat() report.Format {
	if flags.jsonMode {
		return report.FormatJSON
	}
	return report.FormatText
}
