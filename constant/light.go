package constant

// Beam propagation
const (
	// LightSpeed is the travel budget added to every beam per fixed step
	LightSpeed = 8.0

	// MaxBeamIntersections caps every bounce chain regardless of color or mirror bonus
	MaxBeamIntersections = 10

	// HitEpsilon is the distance below which a hit counts as starting inside a collider
	HitEpsilon = 0.01

	// SegmentVisibilityEpsilon hides segments shorter than this
	SegmentVisibilityEpsilon = 0.1

	// SegmentThickness is the world-space width of a rendered beam segment
	SegmentThickness = 3.0

	// PreviewTravelBudget is the effectively unbounded budget of the aiming preview
	PreviewTravelBudget = 10000.0

	// SegmentParkDistance is where hidden segments are moved to (the "nowhere" transform)
	SegmentParkDistance = -1e6
)

// Sensors
const (
	// DefaultSensorActivationMillis is the exposure needed to fill a sensor meter
	DefaultSensorActivationMillis = 250

	// NoPlatform marks a sensor that does not drive a platform
	NoPlatform = -1
)

// Sparks
const (
	// SparkCount is the number of particles per fresh bounce
	SparkCount = 15

	// SparkLifetimeSeconds is how long a spark lives
	SparkLifetimeSeconds = 0.6

	// SparkVelocity bounds the random initial velocity per axis
	SparkVelocity = 50.0

	// SparkLift is the upward starting velocity added to every spark
	SparkLift = 10.0

	// SparkGravity is the downward acceleration in world units per second squared
	SparkGravity = 200.0
)
