package sim

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"survecho/internal/app/ports"
	"survecho/internal/domain/craft"
	"survecho/internal/domain/survival"
	"survecho/internal/domain/world"
)

const (
	DayLengthSeconds  = 300.0
	WeatherRollChance = 0.001
	RainChance        = 0.3

	DefaultCreatureCount = 12
	DefaultSelectedBuild = world.StructureCampfire

	// MaxTickStep caps one simulation step. A stalled driver catching up must
	// not teleport creatures or drain vitals in a single jump.
	MaxTickStep = 0.25

	StarterWood        = 5
	StarterStone       = 3
	HarvestPerInteract = 1
)

var (
	ErrNoStore        = errors.New("no snapshot repository configured")
	ErrBuildModeOff   = errors.New("build mode disabled")
	ErrItemNotCarried = errors.New("item not carried")
)

// Input is the held movement intent applied on each tick.
type Input struct {
	MoveX  float64
	MoveY  float64
	Sprint bool
}

type Config struct {
	Width  int
	Height int
	Seed   int64

	// Creatures is the starting wildlife population. Zero means
	// DefaultCreatureCount; negative means none.
	Creatures int

	Repo    ports.SnapshotRepository
	Metrics ports.KPIRecorder
}

// Session owns the full game state for one play session. Every method takes
// the session lock, so ticks, discrete actions, save and load never
// interleave and readers always see a state from between ticks.
type Session struct {
	mu sync.Mutex

	world     *world.World
	player    *survival.Player
	creatures []*survival.Creature
	rng       survival.Rand
	resolver  craft.Resolver

	timeOfDay float64
	raining   bool
	paused    bool
	buildMode bool
	selected  world.StructureKind

	repo    ports.SnapshotRepository
	metrics ports.KPIRecorder
}

// NewSession generates a fresh world from the seed and spawns the player at
// the world's center with the starter kit.
func NewSession(cfg Config) *Session {
	rng := cfg.rng()
	w := world.NewGenerated(cfg.Width, cfg.Height, rng)

	p := survival.NewPlayer(w.PixelWidth()/2, w.PixelHeight()/2)
	p.Inventory.Add(survival.ItemWood, survival.ItemName(survival.ItemWood), StarterWood)
	p.Inventory.Add(survival.ItemStone, survival.ItemName(survival.ItemStone), StarterStone)

	count := cfg.Creatures
	if count == 0 {
		count = DefaultCreatureCount
	}
	creatures := make([]*survival.Creature, 0, max(count, 0))
	for i := 0; i < count; i++ {
		creatures = append(creatures, survival.NewCreature(
			rng.Float64()*w.PixelWidth(),
			rng.Float64()*w.PixelHeight(),
		))
	}

	return &Session{
		world:     w,
		player:    p,
		creatures: creatures,
		rng:       rng,
		selected:  DefaultSelectedBuild,
		repo:      cfg.Repo,
		metrics:   cfg.metrics(),
	}
}

func (cfg Config) rng() survival.Rand {
	seed := cfg.Seed
	if seed == 0 {
		seed = world.DefaultSeed
	}
	return survival.NewRand(seed)
}

func (cfg Config) metrics() ports.KPIRecorder {
	if cfg.Metrics == nil {
		return ports.NopRecorder{}
	}
	return cfg.Metrics
}

// Tick advances the simulation by dt seconds with the given held input. The
// update order is fixed: world clock and weather, player movement, creature
// behavior and contact damage, needs decay, stamina regen, vital clamping.
// A dead player pauses the session; ticks while paused are no-ops.
func (s *Session) Tick(dt float64, in Input) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dt <= 0 || s.paused {
		return
	}
	if dt > MaxTickStep {
		dt = MaxTickStep
	}
	s.metrics.RecordTick()

	s.timeOfDay += dt
	for s.timeOfDay >= DayLengthSeconds {
		s.timeOfDay -= DayLengthSeconds
	}
	if s.rng.Float64() < WeatherRollChance {
		s.raining = s.rng.Float64() < RainChance
	}

	spent := s.player.Move(survival.MoveIntent{DX: in.MoveX, DY: in.MoveY, Sprint: in.Sprint},
		dt, s.world.PixelWidth(), s.world.PixelHeight())

	for _, c := range s.creatures {
		c.Step(dt, s.player.X, s.player.Y, s.rng)
		if c.Touching(s.player.X, s.player.Y) {
			s.player.Health -= survival.ContactDamagePerSecond * dt
		}
	}

	s.player.ApplyNeedsDecay(dt)
	if !spent {
		s.player.RegenStamina(dt)
	}
	s.player.ClampVitals()

	if s.player.Dead() {
		s.paused = true
	}
}

// InteractResult reports what an interact press did.
type InteractResult struct {
	Harvested string
	Amount    int
	Warmed    bool
}

// Interact acts on the tile under the player: a resource node yields one
// unit of its material, otherwise a campfire warms the player. Resource
// nodes win over structures on the same tile. An empty tile is a quiet
// no-op, never an error.
func (s *Session) Interact() InteractResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ty := s.playerTile()
	tile, ok := s.world.TileAt(tx, ty)
	if !ok {
		s.metrics.RecordAction("interact", false)
		return InteractResult{}
	}

	if tile.Resource != world.ResourceNone {
		taken := s.world.Harvest(tx, ty, HarvestPerInteract)
		if taken > 0 {
			id := harvestItemID(tile.Resource)
			s.player.Inventory.Add(id, survival.ItemName(id), taken)
			s.metrics.RecordAction("interact", true)
			return InteractResult{Harvested: id, Amount: taken}
		}
		s.metrics.RecordAction("interact", false)
		return InteractResult{}
	}

	if tile.Built == world.StructureCampfire {
		s.player.Warm()
		s.metrics.RecordAction("interact", true)
		return InteractResult{Warmed: true}
	}

	s.metrics.RecordAction("interact", false)
	return InteractResult{}
}

func harvestItemID(r world.ResourceKind) string {
	switch r {
	case world.ResourceTree:
		return survival.ItemWood
	case world.ResourceStone:
		return survival.ItemStone
	case world.ResourceBush:
		return survival.ItemBerries
	default:
		return ""
	}
}

// Craft applies a recipe at the tile under the player. Structure recipes
// place there; failures carry the resolver's sentinel errors and leave the
// inventory untouched.
func (s *Session) Craft(id craft.RecipeID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, ty := s.playerTile()
	err := s.resolver.Craft(s.player.Inventory, s.world, id, tx, ty)
	s.metrics.RecordAction("craft", err == nil)
	return err
}

// ToggleBuildMode flips build mode and returns the new state.
func (s *Session) ToggleBuildMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buildMode = !s.buildMode
	return s.buildMode
}

// SelectStructure picks the structure placed by build-mode clicks.
func (s *Session) SelectStructure(kind world.StructureKind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if kind != world.StructureNone {
		s.selected = kind
	}
}

// PlaceStructure puts the selected structure on the given tile. It requires
// build mode and an empty, in-bounds tile.
func (s *Session) PlaceStructure(tileX, tileY int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.buildMode {
		s.metrics.RecordAction("build", false)
		return ErrBuildModeOff
	}
	if !s.world.PlaceStructure(tileX, tileY, s.selected) {
		s.metrics.RecordAction("build", false)
		return craft.ErrPlacementBlocked
	}
	s.metrics.RecordAction("build", true)
	return nil
}

// Equip sets the equipped item; the empty id unequips.
func (s *Session) Equip(itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.player.Equip(itemID) {
		s.metrics.RecordAction("equip", false)
		return ErrItemNotCarried
	}
	s.metrics.RecordAction("equip", true)
	return nil
}

// TogglePause flips the pause flag and returns the new state. Unpausing a
// dead player is allowed but the next tick pauses again.
func (s *Session) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = !s.paused
	return s.paused
}

// Save captures the current state into the configured repository.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	doc := s.document()
	s.mu.Unlock()

	if s.repo == nil {
		s.metrics.RecordSave(false)
		return ErrNoStore
	}
	if err := s.repo.Save(ctx, doc); err != nil {
		s.metrics.RecordSave(false)
		return fmt.Errorf("save snapshot: %w", err)
	}
	s.metrics.RecordSave(true)
	return nil
}

// Load replaces the session state with the stored snapshot. Any failure,
// including a corrupt snapshot, leaves the running session untouched.
func (s *Session) Load(ctx context.Context) error {
	if s.repo == nil {
		s.metrics.RecordLoad(false)
		return ErrNoStore
	}
	doc, err := s.repo.Load(ctx)
	if err != nil {
		s.metrics.RecordLoad(false)
		return fmt.Errorf("load snapshot: %w", err)
	}
	if err := s.Restore(doc); err != nil {
		s.metrics.RecordLoad(false)
		return err
	}
	s.metrics.RecordLoad(true)
	return nil
}

func (s *Session) document() ports.SaveDocument {
	doc := ports.SaveDocument{
		World: s.world.Snapshot(),
		Player: ports.PlayerRecord{
			X:         s.player.X,
			Y:         s.player.Y,
			Health:    s.player.Health,
			Hunger:    s.player.Hunger,
			Thirst:    s.player.Thirst,
			Stamina:   s.player.Stamina,
			Inventory: s.player.Inventory.Items(),
			Equipped:  s.player.Equipped,
		},
		TimeOfDay: s.timeOfDay,
		Entities:  make([]ports.EntityRecord, 0, len(s.creatures)),
	}
	for _, c := range s.creatures {
		doc.Entities = append(doc.Entities, ports.EntityRecord{X: c.X, Y: c.Y, Health: c.Health})
	}
	return doc
}

// Document exposes the current state as a save document.
func (s *Session) Document() ports.SaveDocument {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.document()
}

// Restore rebuilds the session from a save document. Validation happens
// before any field is replaced, so a bad document changes nothing. Creatures
// come back at rest in the idle state; velocity and behavior are runtime
// details a snapshot does not carry.
func (s *Session) Restore(doc ports.SaveDocument) error {
	w, err := world.FromSnapshot(doc.World)
	if err != nil {
		return fmt.Errorf("restore world: %w", err)
	}

	p := survival.NewPlayer(doc.Player.X, doc.Player.Y)
	p.Health = doc.Player.Health
	p.Hunger = doc.Player.Hunger
	p.Thirst = doc.Player.Thirst
	p.Stamina = doc.Player.Stamina
	p.Inventory = survival.InventoryFromItems(survival.InventoryCapacity, doc.Player.Inventory)
	p.Equipped = doc.Player.Equipped
	p.ClampVitals()

	creatures := make([]*survival.Creature, 0, len(doc.Entities))
	for _, e := range doc.Entities {
		c := survival.NewCreature(e.X, e.Y)
		c.Health = e.Health
		creatures = append(creatures, c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.world = w
	s.player = p
	s.creatures = creatures
	s.timeOfDay = doc.TimeOfDay
	s.raining = false
	s.paused = p.Dead()
	return nil
}

func (s *Session) playerTile() (int, int) {
	return int(s.player.X) / world.TileSize, int(s.player.Y) / world.TileSize
}
