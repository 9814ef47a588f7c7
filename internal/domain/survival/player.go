package survival

import "math"

// Player holds the vital-stat economy and continuous position. Health and
// stamina are good-when-high; hunger and thirst are counters that grow over
// time and punish the player past their thresholds.
type Player struct {
	X float64
	Y float64

	Health  float64
	Hunger  float64
	Thirst  float64
	Stamina float64

	Inventory   *Inventory
	Equipped    string
	AttackPower float64
}

func NewPlayer(x, y float64) *Player {
	return &Player{
		X:           x,
		Y:           y,
		Health:      MaxHealth,
		Stamina:     MaxStamina,
		Inventory:   NewInventory(InventoryCapacity),
		AttackPower: PlayerAttackPower,
	}
}

// MoveIntent is the already-resolved movement input for one tick.
type MoveIntent struct {
	DX     float64
	DY     float64
	Sprint bool
}

// Move integrates the intent over dt and clamps the position to the pixel
// bounds. The intent is normalized first so diagonals are not faster. Sprint
// needs stamina above the floor; otherwise it silently falls back to normal
// speed and cost. Returns true when stamina was spent this tick, which
// suppresses regeneration.
func (p *Player) Move(intent MoveIntent, dt, maxX, maxY float64) bool {
	norm := math.Hypot(intent.DX, intent.DY)
	if norm == 0 {
		return false
	}
	dx := intent.DX / norm
	dy := intent.DY / norm

	speed := PlayerBaseSpeed
	drain := MoveStaminaPerSecond
	if intent.Sprint && p.Stamina > SprintMinStamina {
		speed *= SprintSpeedMultiplier
		drain = SprintStaminaPerSecond
	}

	p.X += dx * speed * dt
	p.Y += dy * speed * dt
	p.Stamina = math.Max(0, p.Stamina-drain*dt)

	p.X = clamp(p.X, 0, maxX-1)
	p.Y = clamp(p.Y, 0, maxY-1)
	return true
}

// ApplyNeedsDecay advances hunger and thirst and applies the threshold
// health penalties; both penalties stack additively.
func (p *Player) ApplyNeedsDecay(dt float64) {
	p.Hunger += HungerRatePerSecond * dt
	p.Thirst += ThirstRatePerSecond * dt
	if p.Hunger > HungerPenaltyThreshold {
		p.Health -= HungerHealthDrainPerSecond * dt
	}
	if p.Thirst > ThirstPenaltyThreshold {
		p.Health -= ThirstHealthDrainPerSecond * dt
	}
}

// RegenStamina restores stamina toward max; callers skip it on ticks where
// movement spent stamina.
func (p *Player) RegenStamina(dt float64) {
	if p.Stamina < MaxStamina {
		p.Stamina = math.Min(MaxStamina, p.Stamina+StaminaRegenPerSecond*dt)
	}
}

// ClampVitals pins every vital stat into its [0, max] range.
func (p *Player) ClampVitals() {
	p.Health = clamp(p.Health, 0, MaxHealth)
	p.Hunger = clamp(p.Hunger, 0, MaxHunger)
	p.Thirst = clamp(p.Thirst, 0, MaxThirst)
	p.Stamina = clamp(p.Stamina, 0, MaxStamina)
}

func (p *Player) Dead() bool { return p.Health <= 0 }

// Equip sets the equipped item id; the item must be carried.
func (p *Player) Equip(itemID string) bool {
	if itemID == "" {
		p.Equipped = ""
		return true
	}
	if !p.Inventory.Has(itemID, 1) {
		return false
	}
	p.Equipped = itemID
	return true
}

// Warm applies a campfire's restore effect.
func (p *Player) Warm() {
	p.Stamina = math.Min(MaxStamina, p.Stamina+CampfireStaminaRestore)
	p.Health = math.Min(MaxHealth, p.Health+CampfireHealthRestore)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
