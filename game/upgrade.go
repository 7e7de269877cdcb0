package game

import "time"

// Upgrade ids. Permanent upgrades are monotone: once owned, always owned.
const (
	UpgradeSpeedBoost      = "speed-boost"
	UpgradePointMultiplier = "point-multiplier"
	UpgradeInstantKill     = "instant-kill"
	UpgradeAutoRevive      = "auto-revive"
	UpgradeLifeRefill      = "life-refill"

	PowerUpShield       = "shield"
	PowerUpDoublePoints = "double-points"
)

// UpgradeKind classifies catalog entries
type UpgradeKind int

const (
	// UpgradePermanent is owned forever once bought and gates a mechanic
	UpgradePermanent UpgradeKind = iota
	// UpgradeConsumable activates (or refreshes) a timed power-up
	UpgradeConsumable
	// UpgradeUtility applies a one-shot effect on purchase
	UpgradeUtility
)

// Upgrade is a purchasable modifier to the base rules
type Upgrade struct {
	ID       string
	Name     string
	Price    int
	Kind     UpgradeKind
	Duration time.Duration // consumables only
}

// Catalog lists every purchasable upgrade
var Catalog = []Upgrade{
	{ID: UpgradeSpeedBoost, Name: "Speed Boost", Price: 500, Kind: UpgradePermanent},
	{ID: UpgradePointMultiplier, Name: "Point Multiplier", Price: 1000, Kind: UpgradePermanent},
	{ID: UpgradeInstantKill, Name: "Instant Kill", Price: 2500, Kind: UpgradePermanent},
	{ID: UpgradeAutoRevive, Name: "Auto Revive", Price: 1500, Kind: UpgradePermanent},
	{ID: PowerUpShield, Name: "Shield", Price: 300, Kind: UpgradeConsumable, Duration: 30 * time.Second},
	{ID: PowerUpDoublePoints, Name: "Double Points", Price: 400, Kind: UpgradeConsumable, Duration: 30 * time.Second},
	{ID: UpgradeLifeRefill, Name: "Life Refill", Price: 800, Kind: UpgradeUtility},
}

// FindUpgrade looks an upgrade up by id
func FindUpgrade(id string) (Upgrade, bool) {
	for _, u := range Catalog {
		if u.ID == id {
			return u, true
		}
	}
	return Upgrade{}, false
}
