package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextHopTable(t *testing.T) {
	cases := []struct {
		from   Level
		to     Level
		txType string
	}{
		{LevelMinistry, LevelState, TypeMinistryAllocation},
		{LevelState, LevelDistrict, TypeStateTransfer},
		{LevelDistrict, LevelAgency, TypeDistrictAllocation},
		{LevelAgency, LevelGround, TypeUtilization},
	}

	for _, tc := range cases {
		to, txType, err := NextHop(tc.from)
		require.NoError(t, err, "from %s", tc.from)
		assert.Equal(t, tc.to, to)
		assert.Equal(t, tc.txType, txType)
	}
}

func TestNextHopGroundRejected(t *testing.T) {
	_, _, err := NextHop(LevelGround)
	assert.Error(t, err)
}

func TestNextHopUnknownLevel(t *testing.T) {
	_, _, err := NextHop(Level("Village"))
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"Ministry", "State", "District", "Agency", "Ground"} {
		lvl, err := ParseLevel(s)
		require.NoError(t, err)
		assert.Equal(t, Level(s), lvl)
	}

	_, err := ParseLevel("ministry")
	assert.Error(t, err)
}

func TestOriginLevelsExcludeGround(t *testing.T) {
	assert.NotContains(t, OriginLevels(), LevelGround)
	assert.Len(t, OriginLevels(), 4)
}
