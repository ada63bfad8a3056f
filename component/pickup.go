package component

// PickupKind discriminates pickup payloads
type PickupKind uint8

const (
	PickupWeapon PickupKind = iota
	PickupExtraLife
	PickupSkipWave
)

func (k PickupKind) String() string {
	switch k {
	case PickupExtraLife:
		return "extra_life"
	case PickupSkipWave:
		return "skip_wave"
	default:
		return "weapon"
	}
}

// PickupPayload is a tagged union, Weapon is only valid for PickupWeapon
type PickupPayload struct {
	Kind   PickupKind
	Weapon WeaponMode
}

// PickupComponent represents a collectible drifting drop
type PickupComponent struct {
	Payload PickupPayload
}
