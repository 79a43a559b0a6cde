package numerics

import (
	"math"
	"sort"
)

// Constant identifies an entry in the constant table. Lookup is a
// case-sensitive exact match against these names.
type Constant string

const (
	ConstantPi                    Constant = "PI"
	ConstantE                     Constant = "E"
	ConstantSpeedOfLight          Constant = "SPEED_OF_LIGHT"
	ConstantPlanck                Constant = "PLANCK"
	ConstantElementaryCharge      Constant = "ELEMENTARY_CHARGE"
	ConstantGravitationalConstant Constant = "GRAVITATIONAL_CONSTANT"
	ConstantElectronMass          Constant = "ELECTRON_MASS"
	ConstantProtonMass            Constant = "PROTON_MASS"
)

// constantValues is the process-wide constant table. Physical constants use
// the CODATA 2018 values (SI exact where the 2019 redefinition fixed them).
// Read-only after init, safe for unsynchronized concurrent reads.
var constantValues = map[Constant]float64{
	ConstantPi:                    math.Pi,
	ConstantE:                     math.E,
	ConstantSpeedOfLight:          299792458.0,
	ConstantPlanck:                6.62607015e-34,
	ConstantElementaryCharge:      1.602176634e-19,
	ConstantGravitationalConstant: 6.67430e-11,
	ConstantElectronMass:          9.1093837015e-31,
	ConstantProtonMass:            1.67262192369e-27,
}

// LookupConstant returns the value of the named constant. The second return
// is false when the name does not match any table entry.
func LookupConstant(name string) (float64, bool) {
	v, ok := constantValues[Constant(name)]
	return v, ok
}

// ConstantNames returns the supported constant names in sorted order.
func ConstantNames() []string {
	names := make([]string, 0, len(constantValues))
	for c := range constantValues {
		names = append(names, string(c))
	}
	sort.Strings(names)
	return names
}
