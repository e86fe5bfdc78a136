// Package hierarchy encodes the fund-flow chain Ministry -> State ->
// District -> Agency -> Ground and the canonical transaction type for
// each hop. Every form or endpoint creating a transaction goes through
// NextHop rather than re-encoding the table.
package hierarchy

import "fmt"

// Level is one step in the fund-flow chain.
type Level string

const (
	LevelMinistry Level = "Ministry"
	LevelState    Level = "State"
	LevelDistrict Level = "District"
	LevelAgency   Level = "Agency"
	LevelGround   Level = "Ground"
)

// Canonical transaction type labels, one per originating level.
const (
	TypeMinistryAllocation = "Ministry Allocation"
	TypeStateTransfer      = "State Transfer"
	TypeDistrictAllocation = "District Allocation"
	TypeUtilization        = "Utilization"
)

type hop struct {
	to     Level
	txType string
}

var hops = map[Level]hop{
	LevelMinistry: {LevelState, TypeMinistryAllocation},
	LevelState:    {LevelDistrict, TypeStateTransfer},
	LevelDistrict: {LevelAgency, TypeDistrictAllocation},
	LevelAgency:   {LevelGround, TypeUtilization},
}

// NextHop returns the destination level and transaction type label for a
// transaction originating at from. Ground never originates a transaction.
func NextHop(from Level) (Level, string, error) {
	h, ok := hops[from]
	if !ok {
		return "", "", fmt.Errorf("no fund flow originates at level %q", from)
	}
	return h.to, h.txType, nil
}

// ParseLevel validates a level string received at the API boundary.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case LevelMinistry, LevelState, LevelDistrict, LevelAgency, LevelGround:
		return Level(s), nil
	}
	return "", fmt.Errorf("unknown hierarchy level %q", s)
}

// OriginLevels lists the levels a transaction may originate at, in chain order.
func OriginLevels() []Level {
	return []Level{LevelMinistry, LevelState, LevelDistrict, LevelAgency}
}
