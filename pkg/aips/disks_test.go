package aips_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jive-vlbi/ptboot/pkg/aips"
)

func TestAreaName(t *testing.T) {
	assert.Equal(t, "DA01", aips.AreaName(1))
	assert.Equal(t, "DA0A", aips.AreaName(10))
	assert.Equal(t, "DA1Z", aips.AreaName(71))
}

func TestDisks(t *testing.T) {
	env := aips.Environment{
		"DA01":      "/data/aips1",
		"DA02":      "/data/aips2",
		"AIPS_ROOT": "/opt/aips",
	}

	disks := aips.Disks(env)

	assert.Equal(t, []aips.Disk{
		{Number: 1, Dirname: "/data/aips1"},
		{Number: 2, Dirname: "/data/aips2"},
	}, disks)
	assert.Equal(t, "DA01", disks[0].Area())
}

func TestDisksStopAtFirstGap(t *testing.T) {
	env := aips.Environment{
		"DA01": "/data/aips1",
		// DA02 missing
		"DA03": "/data/aips3",
	}

	disks := aips.Disks(env)

	assert.Len(t, disks, 1)
	assert.Equal(t, 1, disks[0].Number)
}

func TestDisksEmptyEnvironment(t *testing.T) {
	assert.Empty(t, aips.Disks(aips.Environment{}))
}
