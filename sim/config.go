package sim

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

var simCfg Config

type Config struct {
	Addr string

	ZMin   float64
	Height float64
	NZ     int
	Width  float64
	NY     int

	Workers int

	Ustar float64
	Zref  float64

	URef  float64
	ZRef  float64
	Z0    float64
	PLExp float64
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		log.WithError(err).Warn("config file not readable, using built-in defaults")
		file = ini.Empty()
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	simCfg = Config{
		Addr: file.Section("server").Key("Addr").MustString(":9000"),

		ZMin:   file.Section("grid").Key("ZMin").MustFloat64(0),
		Height: file.Section("grid").Key("Height").MustFloat64(40),
		NZ:     file.Section("grid").Key("NZ").MustInt(21),
		Width:  file.Section("grid").Key("Width").MustFloat64(20),
		NY:     file.Section("grid").Key("NY").MustInt(11),

		Workers: file.Section("sim").Key("Workers").MustInt(4),

		Ustar: file.Section("tidal").Key("Ustar").MustFloat64(0.9),
		Zref:  file.Section("tidal").Key("Zref").MustFloat64(10),

		URef:  file.Section("profile").Key("URef").MustFloat64(2),
		ZRef:  file.Section("profile").Key("ZRef").MustFloat64(10),
		Z0:    file.Section("profile").Key("Z0").MustFloat64(0.05),
		PLExp: file.Section("profile").Key("PLExp").MustFloat64(0.143),
	}
}

// Cfg returns a copy of the loaded configuration.
func Cfg() Config { return simCfg }
