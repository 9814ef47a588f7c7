package survival

import "math"

type CreatureState uint8

const (
	StateIdle CreatureState = iota
	StateRoam
	StateAttack
	StateFlee
)

func (s CreatureState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRoam:
		return "roam"
	case StateAttack:
		return "attack"
	case StateFlee:
		return "flee"
	default:
		return "unknown"
	}
}

// Creature is a roaming wildlife entity steered by velocity vectors; it
// never paths around terrain. Velocity and state are runtime-only and are
// not persisted.
type Creature struct {
	X      float64
	Y      float64
	VX     float64
	VY     float64
	Health float64
	Speed  float64
	State  CreatureState
	Radius float64
}

func NewCreature(x, y float64) *Creature {
	return &Creature{
		X:      x,
		Y:      y,
		Health: CreatureHealth,
		Speed:  CreatureSpeed,
		Radius: CreatureRadius,
		State:  StateIdle,
	}
}

// Step evaluates one tick of the behavior machine against the player's
// current position, then integrates position unconditionally. The rules run
// in a fixed order and later rules override earlier ones within the same
// tick: idle/roam wander rolls, then proximity attack, then low-health
// panic, then integration.
func (c *Creature) Step(dt, playerX, playerY float64, rng Rand) {
	switch c.State {
	case StateIdle:
		if rng.Float64() < IdleToRoamChance {
			c.State = StateRoam
			ang := rng.Float64() * 2 * math.Pi
			c.VX = math.Cos(ang) * c.Speed
			c.VY = math.Sin(ang) * c.Speed
		}
	case StateRoam:
		if rng.Float64() < RoamToIdleChance {
			c.State = StateIdle
			c.VX, c.VY = 0, 0
		}
	}

	dx := playerX - c.X
	dy := playerY - c.Y
	dist := math.Hypot(dx, dy)
	if dist < DetectRadius && dist > 0 {
		c.State = StateAttack
		c.VX = dx / dist * c.Speed * AttackSpeedMultiplier
		c.VY = dy / dist * c.Speed * AttackSpeedMultiplier
	}

	if c.Health < FleeHealthThreshold && rng.Float64() < FleeChance {
		c.State = StateFlee
		ang := math.Atan2(c.Y-playerY, c.X-playerX)
		c.VX = math.Cos(ang) * c.Speed * FleeSpeedMultiplier
		c.VY = math.Sin(ang) * c.Speed * FleeSpeedMultiplier
	}

	c.X += c.VX * dt
	c.Y += c.VY * dt
}

// Touching reports whether the creature overlaps the player's contact
// radius; overlap deals continuous damage per second, not a one-shot hit.
func (c *Creature) Touching(playerX, playerY float64) bool {
	return math.Hypot(c.X-playerX, c.Y-playerY) < ContactRadius
}
