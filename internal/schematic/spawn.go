package schematic

import (
	"fmt"
	"log/slog"

	"github.com/roach88/schematica/internal/world"
)

// DefaultCapacity is the number of records pre-allocated per spawn.
const DefaultCapacity = 8

type spawnConfig struct {
	logger   *slog.Logger
	tokens   TokenGenerator
	capacity int
}

// SpawnOption configures a spawn.
type SpawnOption func(*spawnConfig)

// WithLogger sets the logger spawn diagnostics go to. Default: slog.Default().
func WithLogger(l *slog.Logger) SpawnOption {
	return func(c *spawnConfig) {
		c.logger = l
	}
}

// WithTokenGenerator sets the source of spawn correlation tokens.
// Default: UUIDv7Generator.
func WithTokenGenerator(g TokenGenerator) SpawnOption {
	return func(c *spawnConfig) {
		c.tokens = g
	}
}

// WithCapacity pre-sizes the record arena for schematics that create many
// entities.
func WithCapacity(n int) SpawnOption {
	return func(c *spawnConfig) {
		c.capacity = n
	}
}

func newSpawnConfig(opts []SpawnOption) *spawnConfig {
	cfg := &spawnConfig{
		tokens:   UUIDv7Generator{},
		capacity: DefaultCapacity,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}

// Spawn creates a root entity in store, instantiates s against it, and
// returns the entity the root view points at afterwards (the root unless s
// repointed it).
//
// On failure Spawn returns the root entity together with the error. Every
// entity and component created before the failure remains in the store; the
// caller decides whether to despawn the partial tree.
func Spawn(store Store, s Schematic, opts ...SpawnOption) (world.Entity, error) {
	cfg := newSpawnConfig(opts)
	log := cfg.logger.With("spawn", cfg.tokens.Generate())

	root := store.SpawnEmpty()
	a := newArena(store, root, cfg.capacity)
	ctx := a.enter(0)
	defer a.exit(ctx)

	log.Debug("instantiating schematic", "root", root, "schematic", fmt.Sprintf("%T", s))

	if err := s.Instantiate(ctx); err != nil {
		log.Debug("schematic failed", "records", len(a.records), "error", err)
		return root, err
	}

	log.Debug("schematic instantiated", "records", len(a.records))
	return ctx.Current().entity, nil
}

// CommandQueue accepts deferred world commands. *world.Commands implements
// it.
type CommandQueue interface {
	Push(c world.Command)
}

// SpawnCommand is a deferred Spawn.
type SpawnCommand struct {
	Schematic Schematic
	Options   []SpawnOption
}

// Apply spawns the schematic into w. There is no caller left to receive an
// error at this point, so a failing schematic panics.
func (c SpawnCommand) Apply(w *world.World) {
	if _, err := Spawn(w, c.Schematic, c.Options...); err != nil {
		newSpawnConfig(c.Options).logger.Error("deferred spawn failed", "error", err)
		panic(fmt.Errorf("schematic spawning failed: %w", err))
	}
}

// SpawnLater queues s to be spawned when q is applied.
func SpawnLater(q CommandQueue, s Schematic, opts ...SpawnOption) {
	q.Push(SpawnCommand{Schematic: s, Options: opts})
}
