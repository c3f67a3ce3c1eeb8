package parameter

// System Execution Priorities (lower runs first)
// Order is fixed: movement, aim, weapon, bullet advance, then cull
const (
	PriorityMovement = 10
	PriorityAim      = 20
	PriorityWeapon   = 30
	PriorityBullet   = 40
	PriorityCull     = 900 // After game logic
)
