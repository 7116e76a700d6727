package cli

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/schematica/internal/demo"
	"github.com/roach88/schematica/internal/schematic"
	"github.com/roach88/schematica/internal/snapshot"
	"github.com/roach88/schematica/internal/world"
)

// SpawnOptions holds flags for the spawn command.
type SpawnOptions struct {
	Reflect bool
	Token   string
}

// NewSpawnCommand creates the spawn command.
func NewSpawnCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SpawnOptions{}

	cmd := &cobra.Command{
		Use:   "spawn",
		Short: "Spawn the demo hierarchy and print it",
		Long: `Spawn the demo schematic into an empty world and print the resulting
hierarchy. With --reflect the schematic is composed by reflection instead of
the generated Instantiate method; the output is identical.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSpawn(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Reflect, "reflect", false, "compose the schematic by reflection")
	cmd.Flags().StringVar(&opts.Token, "token", "", "fixed spawn token for log correlation (default: UUIDv7)")

	return cmd
}

func runSpawn(rootOpts *RootOptions, opts *SpawnOptions, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := newLogger(rootOpts, formatter.GetErrWriter())

	var s schematic.Schematic = demo.NewSimple()
	if opts.Reflect {
		var err error
		s, err = schematic.Struct(demo.NewSimple())
		if err != nil {
			_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
			return WrapExitError(ExitFailure, "composing schematic", err)
		}
	}

	spawnOpts := []schematic.SpawnOption{schematic.WithLogger(logger)}
	if opts.Token != "" {
		spawnOpts = append(spawnOpts, schematic.WithTokenGenerator(schematic.NewFixedGenerator(opts.Token)))
	}

	w := world.New()
	root, err := schematic.Spawn(w, s, spawnOpts...)
	if err != nil {
		_ = formatter.Error(ErrCodeSpawnFailed, err.Error(), map[string]int{"entities": w.Len()})
		return WrapExitError(ExitFailure, "spawning schematic", err)
	}

	node, err := snapshot.Capture(w, root)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitFailure, "capturing hierarchy", err)
	}
	logger.Debug("captured hierarchy", "root", root, "entities", node.Count())

	return writeNode(formatter, node)
}

func writeNode(f *OutputFormatter, node *snapshot.Node) error {
	switch f.Format {
	case "json":
		data, err := node.MarshalCanonical()
		if err != nil {
			return WrapExitError(ExitFailure, "encoding hierarchy", err)
		}
		return f.Success("", json.RawMessage(data))
	case "yaml":
		return f.Success("", node)
	}

	var b strings.Builder
	if err := node.WriteText(&b); err != nil {
		return err
	}
	return f.Success(strings.TrimSuffix(b.String(), "\n"), nil)
}
