package cmd

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zorak1103/hanoi/internal/config"
	apperrors "github.com/zorak1103/hanoi/internal/errors"
	"github.com/zorak1103/hanoi/internal/hanoi"
	"github.com/zorak1103/hanoi/internal/reporting"
)

// solveConfig holds the settings of a single solve, merged from
// configuration and command flags. Flags win when set explicitly.
type solveConfig struct {
	disks     int
	pegs      hanoi.Pegs
	format    string
	iterative bool
}

// newSolveConfig builds a solveConfig from the loaded configuration,
// the optional positional disk count and any flags the user changed.
func newSolveConfig(cmd *cobra.Command, args []string, base *config.Config) (*solveConfig, error) {
	sc := &solveConfig{
		disks:     base.Solver.Disks,
		pegs:      base.PegLabels(),
		format:    base.Output.Format,
		iterative: base.Solver.Iterative,
	}

	if len(args) > 0 {
		n, err := parseDisks(args[0])
		if err != nil {
			return nil, err
		}
		sc.disks = n
	}

	flags := cmd.Flags()
	// Lookups never fail for flags registered by addSolveFlags.
	if flags.Changed("from") {
		from, _ := flags.GetString("from")
		sc.pegs.Source = hanoi.Peg(from)
	}
	if flags.Changed("via") {
		via, _ := flags.GetString("via")
		sc.pegs.Auxiliary = hanoi.Peg(via)
	}
	if flags.Changed("to") {
		to, _ := flags.GetString("to")
		sc.pegs.Destination = hanoi.Peg(to)
	}
	if flags.Changed("format") {
		sc.format, _ = flags.GetString("format")
	}
	if flags.Changed("iterative") {
		sc.iterative, _ = flags.GetBool("iterative")
	}

	if !config.IsValidFormat(sc.format) {
		return nil, &apperrors.InvalidArgumentError{
			Argument: "format",
			Value:    sc.format,
			Err:      fmt.Errorf("must be one of %v", config.Formats),
		}
	}

	return sc, nil
}

// solver returns the solve function selected by the iterative setting.
func (sc *solveConfig) solver() reporting.SolveFunc {
	if sc.iterative {
		return hanoi.SolveIterative
	}
	return hanoi.Solve
}

// parseDisks converts a disk count argument and rejects anything outside the solver's range.
func parseDisks(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &apperrors.InvalidArgumentError{
			Argument: "disks",
			Value:    arg,
			Err:      fmt.Errorf("%w: not an integer", hanoi.ErrInvalidDiskCount),
		}
	}
	if err := hanoi.ValidateDiskCount(n); err != nil {
		return 0, err
	}
	return n, nil
}

// negativeDisksFlag matches the parse error produced when a negative disk
// count such as "-3" is read as a cluster of shorthand flags.
var negativeDisksFlag = regexp.MustCompile(`^unknown shorthand flag: '\d' in (-\d+)$`)

// disksFlagError reports a negative disk count given without "--" as an
// invalid argument rather than an unknown flag.
func disksFlagError(_ *cobra.Command, err error) error {
	if m := negativeDisksFlag.FindStringSubmatch(err.Error()); m != nil {
		if _, parseErr := parseDisks(m[1]); parseErr != nil {
			return parseErr
		}
	}
	return err
}

// addSolveFlags registers the peg and output flags shared by solve and verify.
func addSolveFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "source peg label (default from config)")
	cmd.Flags().String("via", "", "auxiliary peg label (default from config)")
	cmd.Flags().String("to", "", "destination peg label (default from config)")
	cmd.Flags().Bool("iterative", false, "use the explicit-stack solver instead of recursion")
	cmd.SetFlagErrorFunc(disksFlagError)
}
