package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentOverrides(t *testing.T) {
	p := &Paths{
		configFileName: "config.yml",
		boltFileName:   "ecofocus.db",
		sqliteFileName: "ecofocus.sqlite",
		logFileName:    "ecofocus.log",
	}

	p.applyEnvironmentOverrides(" test ")

	assert.Equal(t, "config_test.yml", p.configFileName)
	assert.Equal(t, "ecofocus_test.db", p.boltFileName)
	assert.Equal(t, "ecofocus_test.sqlite", p.sqliteFileName)
	assert.Equal(t, "ecofocus_test.log", p.logFileName)
}

func TestStripExtension(t *testing.T) {
	assert.Equal(t, "rain", StripExtension("rain.ogg"))
	assert.Equal(t, "01 forest", StripExtension("01 forest.mp3"))
}
