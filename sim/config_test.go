package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/ini.v1"
)

func TestLoadCfgDefaults(t *testing.T) {
	loadCfg(ini.Empty())
	defer loadCfg(ini.Empty())

	c := Cfg()
	assert.Equal(t, ":9000", c.Addr)
	assert.Equal(t, 21, c.NZ)
	assert.Equal(t, 40.0, c.Height)
	assert.Equal(t, 4, c.Workers)
	assert.Equal(t, 0.9, c.Ustar)
	assert.Equal(t, 10.0, c.Zref)
}

func TestLoadCfgFromFile(t *testing.T) {
	file, err := ini.Load([]byte(
		"[server]\nAddr = :8080\n\n[tidal]\nUstar = 0.5\nZref = 12.5\n"))
	require.NoError(t, err)
	loadCfg(file)
	defer loadCfg(ini.Empty())

	c := Cfg()
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, 0.5, c.Ustar)
	assert.Equal(t, 12.5, c.Zref)
	// sections the file omits fall back to defaults
	assert.Equal(t, 21, c.NZ)
}
