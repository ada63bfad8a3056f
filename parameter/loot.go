package parameter

// Drop rate
const LootDropChance = 0.20

// PickupSpeed is the downward drift of dropped pickups
const PickupSpeed = 150.0

// Payload names accepted in config
const (
	LootPayloadWeapon    = "weapon"
	LootPayloadExtraLife = "extra_life"
	LootPayloadSkipWave  = "skip_wave"
)

// LootEntry is one row of the default drop table
type LootEntry struct {
	Payload string
	Weapon  string
	Weight  float64
}

// LootTable sums to 8 weapon, 1 extra life, 1 skip
var LootTable = []LootEntry{
	{Payload: LootPayloadWeapon, Weapon: "double_v", Weight: 1},
	{Payload: LootPayloadWeapon, Weapon: "triple", Weight: 1},
	{Payload: LootPayloadWeapon, Weapon: "septuple", Weight: 1},
	{Payload: LootPayloadWeapon, Weapon: "rapid3", Weight: 1},
	{Payload: LootPayloadWeapon, Weapon: "double_parallel", Weight: 1},
	{Payload: LootPayloadWeapon, Weapon: "quintuple", Weight: 3},
	{Payload: LootPayloadExtraLife, Weight: 1},
	{Payload: LootPayloadSkipWave, Weight: 1},
}
