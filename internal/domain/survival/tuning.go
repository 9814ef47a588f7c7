package survival

const (
	MaxHealth  = 100.0
	MaxHunger  = 100.0
	MaxThirst  = 100.0
	MaxStamina = 100.0

	HungerRatePerSecond = 0.5
	ThirstRatePerSecond = 0.9

	HungerPenaltyThreshold     = 80.0
	ThirstPenaltyThreshold     = 90.0
	HungerHealthDrainPerSecond = 0.5
	ThirstHealthDrainPerSecond = 1.0

	StaminaRegenPerSecond  = 5.0
	MoveStaminaPerSecond   = 7.0
	SprintStaminaPerSecond = 10.0
	SprintMinStamina       = 1.0
	SprintSpeedMultiplier  = 1.8

	PlayerBaseSpeed   = 160.0
	PlayerAttackPower = 10.0

	InventoryCapacity = 30

	CreatureHealth = 50.0
	CreatureSpeed  = 40.0
	CreatureRadius = 10.0

	DetectRadius           = 150.0
	ContactRadius          = 20.0
	ContactDamagePerSecond = 5.0
	AttackSpeedMultiplier  = 1.2
	FleeSpeedMultiplier    = 1.5
	FleeHealthThreshold    = 20.0

	IdleToRoamChance = 0.01
	RoamToIdleChance = 0.005
	FleeChance       = 0.3

	CampfireStaminaRestore = 20.0
	CampfireHealthRestore  = 5.0
)
