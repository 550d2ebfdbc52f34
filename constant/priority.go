package constant

// System Execution Priorities (lower runs first)
const (
	PriorityShoot    = 10 // Spawn requests before budgets advance
	PriorityBeamTick = 20
	PriorityPlatform = 30 // Moving terrain settles before raycasts
	PriorityLight    = 40
	PrioritySensor   = 50 // After light hit flags are written
	PriorityCrystal  = 60
	PrioritySpark    = 70
	PriorityAudio    = 80
	PriorityStatus   = 900 // After game logic, telemetry collection
)
