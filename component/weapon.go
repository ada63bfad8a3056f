package component

import (
	"fmt"
	"strings"
)

// WeaponMode selects the player's fire pattern
type WeaponMode uint8

const (
	WeaponSingle WeaponMode = iota
	WeaponDoubleParallel
	WeaponDoubleV
	WeaponTriple
	WeaponQuadruple
	WeaponQuintuple
	WeaponSixtuple
	WeaponSeptuple
	WeaponRapid2
	WeaponRapid3
	WeaponRapid4
	WeaponRapid5
	WeaponCount // Sentinel for array sizing
)

var weaponNames = [WeaponCount]string{
	"single",
	"double_parallel",
	"double_v",
	"triple",
	"quadruple",
	"quintuple",
	"sixtuple",
	"septuple",
	"rapid2",
	"rapid3",
	"rapid4",
	"rapid5",
}

func (m WeaponMode) String() string {
	if m < WeaponCount {
		return weaponNames[m]
	}
	return fmt.Sprintf("weapon(%d)", uint8(m))
}

// ParseWeaponMode resolves a config name, case-insensitive
func ParseWeaponMode(name string) (WeaponMode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, w := range weaponNames {
		if w == n {
			return WeaponMode(i), nil
		}
	}
	return WeaponSingle, fmt.Errorf("unknown weapon mode %q", name)
}

// FanCount returns the number of simultaneous projectiles for fan modes, 0 otherwise
func (m WeaponMode) FanCount() int {
	if m >= WeaponTriple && m <= WeaponSeptuple {
		return int(m-WeaponTriple) + 3
	}
	return 0
}

// RapidCount returns the number of deferred shots for rapid modes, 0 otherwise
func (m WeaponMode) RapidCount() int {
	if m >= WeaponRapid2 && m <= WeaponRapid5 {
		return int(m-WeaponRapid2) + 2
	}
	return 0
}
