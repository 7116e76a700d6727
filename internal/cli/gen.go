package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/schematica/internal/schematicgen"
)

// GenOptions holds flags for the gen command.
type GenOptions struct {
	Types  []string
	Output string
	Import string
	DryRun bool
}

// GenResult is the structured result of a gen run.
type GenResult struct {
	Package string   `json:"package" yaml:"package"`
	Types   []string `json:"types" yaml:"types"`
	Path    string   `json:"path,omitempty" yaml:"path,omitempty"`
}

// NewGenCommand creates the gen command.
func NewGenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenOptions{}

	cmd := &cobra.Command{
		Use:   "gen [package-dir]",
		Short: "Generate Instantiate methods for struct types",
		Long: `Generate value-receiver Instantiate methods that apply every field of a
struct type in declaration order.

Types are selected with --type, or by a ` + schematicgen.Directive + ` comment on
the type declaration when no --type is given. Field-less structs and
non-struct types are refused and nothing is written.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runGen(rootOpts, opts, dir, cmd)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Types, "type", "t", nil, "type names to generate for (repeatable)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", schematicgen.DefaultOutput, "output file name inside the package directory")
	cmd.Flags().StringVar(&opts.Import, "import", schematicgen.DefaultImport, "import path of the schematic package")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print generated source instead of writing it")

	return cmd
}

func runGen(rootOpts *RootOptions, opts *GenOptions, dir string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := newLogger(rootOpts, formatter.GetErrWriter())

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		msg := fmt.Sprintf("package directory not found: %s", dir)
		_ = formatter.Error(ErrCodeNotFound, msg, nil)
		return NewExitError(ExitCommandError, msg)
	}

	genOpts := []schematicgen.Option{
		schematicgen.WithOutput(opts.Output),
		schematicgen.WithImport(opts.Import),
	}

	if opts.DryRun {
		res, err := schematicgen.Generate(dir, opts.Types, genOpts...)
		if err != nil {
			return genFailed(formatter, err)
		}
		logger.Debug("generated", "package", res.Package, "types", res.Types)
		if formatter.Format == "text" {
			_, err := cmd.OutOrStdout().Write(res.Source)
			return err
		}
		return formatter.Success("", GenResult{Package: res.Package, Types: res.Types})
	}

	res, err := schematicgen.WriteFile(dir, opts.Types, genOpts...)
	if err != nil {
		return genFailed(formatter, err)
	}
	logger.Debug("generated", "package", res.Package, "types", res.Types, "path", res.Path)

	return formatter.Success(
		fmt.Sprintf("wrote %s (%s)", res.Path, strings.Join(res.Types, ", ")),
		GenResult{Package: res.Package, Types: res.Types, Path: res.Path},
	)
}

func genFailed(f *OutputFormatter, err error) error {
	var genErr *schematicgen.GenError
	if errors.As(err, &genErr) {
		details := map[string]any{"type": genErr.Type}
		if genErr.Pos.IsValid() {
			details["file"] = genErr.Pos.Filename
			details["line"] = genErr.Pos.Line
		}
		_ = f.Error(ErrCodeGenFailed, genErr.Message, details)
	} else {
		_ = f.Error(ErrCodeGenFailed, err.Error(), nil)
	}
	return WrapExitError(ExitFailure, "generation failed", err)
}
