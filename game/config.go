package game

// Config holds the tunable parameters for one run
type Config struct {
	// WorldWidth is the total width of the game world in world units
	WorldWidth float64

	// WorldHeight is the total height of the game world in world units
	WorldHeight float64

	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// InitialBots is the bot population at run start
	InitialBots int

	// InitialFood is the food population at run start
	InitialFood int

	// FoodRegenThreshold triggers a regen batch when live food drops below it
	FoodRegenThreshold int

	// FoodRegenBatch is the number of food items injected per regen
	FoodRegenBatch int
}

// DefaultConfig returns the standard run configuration
func DefaultConfig() Config {
	return Config{
		WorldWidth:         3000.0,
		WorldHeight:        3000.0,
		ScreenWidth:        1024,
		ScreenHeight:       768,
		InitialBots:        15,
		InitialFood:        200,
		FoodRegenThreshold: 150,
		FoodRegenBatch:     30,
	}
}

// Normalized replaces invalid fields with their defaults. A malformed
// configuration falls back rather than failing hard; there is no remote
// caller to report to.
func (c Config) Normalized() Config {
	def := DefaultConfig()
	if c.WorldWidth <= 0 {
		c.WorldWidth = def.WorldWidth
	}
	if c.WorldHeight <= 0 {
		c.WorldHeight = def.WorldHeight
	}
	if c.ScreenWidth <= 0 {
		c.ScreenWidth = def.ScreenWidth
	}
	if c.ScreenHeight <= 0 {
		c.ScreenHeight = def.ScreenHeight
	}
	if c.InitialBots <= 0 {
		c.InitialBots = def.InitialBots
	}
	if c.InitialFood <= 0 {
		c.InitialFood = def.InitialFood
	}
	if c.FoodRegenThreshold <= 0 {
		c.FoodRegenThreshold = def.FoodRegenThreshold
	}
	if c.FoodRegenBatch <= 0 {
		c.FoodRegenBatch = def.FoodRegenBatch
	}
	return c
}

// Entity size constants
const (
	PlayerMinSize    = 20.0 // player never shrinks below this
	BotAbsoluteFloor = 5.0  // bot floor under safe-zone damage
	BotSpawnMinSize  = 10.0
	BotSpawnMaxSize  = 50.0
	FoodMinSize      = 2.0
	FoodMaxSize      = 6.0
)

// Bot AI constants
const (
	DetectionRange     = 150.0 // food search radius
	ChaseRange         = 100.0 // smaller-bot search radius
	ChaseTrigger       = 80.0  // smaller-bot steer trigger
	AvoidRange         = 80.0  // larger-bot search radius
	AvoidTrigger       = 60.0  // larger-bot steer trigger
	AvoidPlayerRange   = 80.0
	ChaseTeamRange     = 100.0
	AvoidSizeRatio     = 1.2  // a bot avoids anything more than 20% larger
	ChaseSizeRatio     = 0.8  // a bot chases anything more than 20% smaller
	WanderRerollChance = 0.02 // per-tick probability of re-rolling wander velocity
	AvoidSpeedFactor   = 2.0
	ChaseSpeedFactor   = 1.5
)

// Growth and decay constants
const (
	PlayerFoodGrowth = 0.3 // player size gain per food
	BotFoodGrowth    = 0.2 // bot size gain per food
	KillGrowthRatio  = 0.1 // predator gains 10% of victim size
	IdleDecayAmount  = 0.5
	IdleDecayDelayMs = 2000
	PlayerBaseSpeed  = 2.5
	BoostedBaseSpeed = 3.5 // with the speed-boost upgrade
)

// Input constants
const (
	PointerDeadZone = 5.0
)

// Mode constants
const (
	TimeAttackDuration      = 180.0 // seconds
	ZoneShrinkRate          = 2.0   // units per second
	ZoneMinRadius           = 100.0
	ZoneDamage              = 0.5 // shrink per tick outside the safe zone
	BattleRoyaleSpeedFactor = 1.5
)

// Session constants
const (
	MaxLives        = 10
	StreakPointStep = 5
	StreakPointCap  = 50
)
