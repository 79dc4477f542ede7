package karifa

import (
	"encoding"
	"fmt"
	"io"
	"time"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"
	"libdb.so/karifa/animation"
	"libdb.so/karifa/internal/button"
)

// Default configuration values.
const (
	DefaultCatalog     = "ornament"
	DefaultTick        = 5 * time.Millisecond
	DefaultRate        = 60
	DefaultAutoOff     = 5 * time.Hour
	DefaultBatteryShow = 2 * time.Second
	DefaultBaud        = 115200
)

// Config is the configuration for the Karifa daemon.
type Config struct {
	// Catalog is the name of the built-in animation catalog to play.
	Catalog string `toml:"catalog"`
	// Animation is the name of the animation to start with. It replaces the
	// saved selection. Empty resumes the saved one.
	Animation string `toml:"animation,omitempty"`
	// Tick is how often the animation engine runs. It bounds the timing
	// resolution of the animations.
	Tick TOMLDuration `toml:"tick"`
	// Rate is the refresh rate for the outputs in frames per second.
	Rate int `toml:"rate"`
	// AutoOff powers the ornament down after this much uptime. A negative
	// duration disables it.
	AutoOff TOMLDuration `toml:"auto_off"`
	// Preview draws the ornament in the terminal. The terminal also acts as
	// the ornament's button.
	Preview bool `toml:"preview"`

	Persist PersistConfig `toml:"persist"`
	Battery BatteryConfig `toml:"battery"`
	Button  ButtonConfig  `toml:"button"`

	// Only the outputs that are set are used.

	Serial *SerialConfig `toml:"serial,omitempty"`
	OPC    *OPCConfig    `toml:"opc,omitempty"`
}

// PersistBackend is where the selected animation is kept across runs.
type PersistBackend string

const (
	// FilePersistBackend appends checksummed records to a small file.
	FilePersistBackend PersistBackend = "file"
	// SQLitePersistBackend keeps records in an SQLite database.
	SQLitePersistBackend PersistBackend = "sqlite"
	// MemoryPersistBackend forgets the selection on exit.
	MemoryPersistBackend PersistBackend = "memory"
)

// PersistConfig is the configuration for the selection store.
type PersistConfig struct {
	Backend PersistBackend `toml:"backend"`
	// Path is the file or database path. It is unused by the memory backend.
	Path string `toml:"path"`
}

// BatteryConfig is the configuration for the battery gauge shown at startup.
type BatteryConfig struct {
	// Millivolts is the battery voltage to show. Zero skips the gauge.
	Millivolts int `toml:"millivolts"`
	// Show is how long the gauge is shown.
	Show TOMLDuration `toml:"show"`
}

// ButtonConfig is the configuration for the button. Zero durations mean the
// button package's defaults.
type ButtonConfig struct {
	Debounce  TOMLDuration `toml:"debounce"`
	LongPress TOMLDuration `toml:"long_press"`
}

// Durations returns the debounce and long press durations the button uses.
func (c ButtonConfig) Durations() (debounce, longPress time.Duration) {
	debounce = time.Duration(c.Debounce)
	if debounce == 0 {
		debounce = button.DefaultDebounce
	}
	longPress = time.Duration(c.LongPress)
	if longPress == 0 {
		longPress = button.DefaultLongPress
	}
	return debounce, longPress
}

// SerialConfig is the configuration for a replica connected over USB.
type SerialConfig struct {
	// Device is the path to the device file.
	// This is usually /dev/ttyUSB0 or /dev/ttyACM0.
	Device string `toml:"device"`
	// Baud is the baud rate for the serial connection.
	Baud int `toml:"baud"`
}

// OPCConfig is the configuration for an Open Pixel Control server.
type OPCConfig struct {
	// Address is the host:port of the server.
	Address string `toml:"address"`
	// Channel is the OPC channel. Zero broadcasts to every channel.
	Channel uint8 `toml:"channel"`
}

// SetDefaults fills in every unset value.
func (c *Config) SetDefaults() {
	if c.Catalog == "" {
		c.Catalog = DefaultCatalog
	}
	if c.Tick == 0 {
		c.Tick = TOMLDuration(DefaultTick)
	}
	if c.Rate == 0 {
		c.Rate = DefaultRate
	}
	if c.AutoOff == 0 {
		c.AutoOff = TOMLDuration(DefaultAutoOff)
	}
	if c.Persist.Backend == "" {
		c.Persist.Backend = FilePersistBackend
	}
	if c.Persist.Path == "" && c.Persist.Backend != MemoryPersistBackend {
		c.Persist.Path = "karifa." + string(c.Persist.Backend)
	}
	if c.Battery.Show == 0 {
		c.Battery.Show = TOMLDuration(DefaultBatteryShow)
	}
	if c.Serial != nil && c.Serial.Baud == 0 {
		c.Serial.Baud = DefaultBaud
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	catalog, err := animation.Lookup(c.Catalog)
	if err != nil {
		return err
	}
	if c.Animation != "" {
		if _, ok := catalog.Index(c.Animation); !ok {
			return fmt.Errorf("catalog %q has no animation %q", c.Catalog, c.Animation)
		}
	}

	if c.Tick <= 0 {
		return fmt.Errorf("tick must be positive, got %v", c.Tick)
	}
	if time.Duration(c.Tick) < time.Millisecond {
		return fmt.Errorf("tick %v is finer than the 1ms timebase", c.Tick)
	}
	if c.Rate <= 0 {
		return fmt.Errorf("rate must be positive, got %d", c.Rate)
	}

	switch c.Persist.Backend {
	case FilePersistBackend, SQLitePersistBackend:
		if c.Persist.Path == "" {
			return fmt.Errorf("persist backend %q needs a path", c.Persist.Backend)
		}
	case MemoryPersistBackend:
	default:
		return fmt.Errorf("unknown persist backend %q", c.Persist.Backend)
	}

	if c.Battery.Millivolts < 0 {
		return fmt.Errorf("battery voltage must not be negative, got %d", c.Battery.Millivolts)
	}
	if c.Battery.Show < 0 {
		return errors.New("battery show duration must not be negative")
	}

	if c.Button.Debounce < 0 || c.Button.LongPress < 0 {
		return errors.New("button durations must not be negative")
	}
	if debounce, longPress := c.Button.Durations(); longPress <= debounce {
		return fmt.Errorf("long press %v must be longer than debounce %v",
			longPress, debounce)
	}

	if c.Serial != nil {
		if c.Serial.Device == "" {
			return errors.New("serial output needs a device")
		}
		if c.Serial.Baud <= 0 {
			return fmt.Errorf("invalid baud rate %d", c.Serial.Baud)
		}
	}

	if c.OPC != nil && c.OPC.Address == "" {
		return errors.New("opc output needs an address")
	}

	return nil
}

// TOMLDuration is a duration that can be parsed from TOML.
type TOMLDuration time.Duration

var (
	_ encoding.TextUnmarshaler = (*TOMLDuration)(nil)
	_ encoding.TextMarshaler   = (*TOMLDuration)(nil)
)

func (d *TOMLDuration) UnmarshalText(text []byte) error {
	duration, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = TOMLDuration(duration)
	return nil
}

func (d TOMLDuration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d TOMLDuration) String() string {
	return time.Duration(d).String()
}

// ParseConfig parses a configuration from a reader and fills in the
// defaults.
func ParseConfig(r io.Reader) (*Config, error) {
	var config Config
	if err := toml.NewDecoder(r).Decode(&config); err != nil {
		return nil, err
	}
	config.SetDefaults()
	return &config, nil
}
