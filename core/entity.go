package core

// Entity is a unique identifier for a world object
// Zero is reserved and never issued by the world
type Entity uint64

// NoEntity marks the absence of an entity reference (e.g. no excluded collider)
const NoEntity Entity = 0
