package core

// Group is a collision group bitmask
type Group uint32

const (
	GroupPlayerCollider Group = 1 << iota
	GroupPlayerSensor
	GroupTerrain
	GroupLightRay
	GroupLightSensor
	GroupHurtBox
	GroupWhiteRay
	GroupStrand
	GroupBlueRay
	GroupBlackRay

	GroupNone Group = 0
	GroupAll  Group = ^Group(0)
)

// CollisionFilter pairs the groups a collider or query belongs to with the groups it accepts
type CollisionFilter struct {
	Memberships Group
	Filter      Group
}

// Interacts reports whether two filters accept each other
// Both directions must match, a one-sided filter never produces a contact
func (f CollisionFilter) Interacts(other CollisionFilter) bool {
	return f.Memberships&other.Filter != 0 && other.Memberships&f.Filter != 0
}

// Standard collider filters
var (
	TerrainFilter = CollisionFilter{Memberships: GroupTerrain, Filter: GroupAll}
	SensorFilter  = CollisionFilter{Memberships: GroupLightSensor, Filter: GroupAll}
)
