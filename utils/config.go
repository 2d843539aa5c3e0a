package utils

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// ErrUsage marks errors caused by invalid command line input
var ErrUsage = errors.New("invalid usage")

// Config holds the configuration for the game
type Config struct {
	Rows             int      `json:"rows"`
	Cols             int      `json:"cols"`
	Margin           int      `json:"margin"`
	AliveProbability float64  `json:"alive_probability"`
	FrameDelay       Duration `json:"frame_delay"`
	Workers          int      `json:"workers"`
	Seed             int64    `json:"seed"`
	ShowStatus       bool     `json:"show_status"`
	CycleWindow      int      `json:"cycle_window"`
	UseMemoryPool    bool     `json:"use_memory_pool"`
	MaxGenerations   int      `json:"max_generations"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:             150,
		Cols:             50,
		Margin:           5,
		AliveProbability: 0.5,
		FrameDelay:       Duration(60 * time.Millisecond),
		Workers:          1,
		CycleWindow:      16,
		UseMemoryPool:    true,
	}
}

// LoadConfig loads configuration from JSON file, on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ParseDimensions applies the positional arguments "length width" to config.
// Length sets the column count and width the row count. With no arguments
// config is left untouched; any other count is a usage error.
func ParseDimensions(args []string, config *Config) error {
	switch len(args) {
	case 0:
		return nil
	case 2:
	default:
		return errors.Wrapf(ErrUsage, "[ParseDimensions] expected 0 or 2 arguments, got %d", len(args))
	}

	length, err := strconv.Atoi(args[0])
	if err != nil {
		return errors.Wrapf(ErrUsage, "[ParseDimensions] length %q is not an integer", args[0])
	}
	width, err := strconv.Atoi(args[1])
	if err != nil {
		return errors.Wrapf(ErrUsage, "[ParseDimensions] width %q is not an integer", args[1])
	}

	config.Cols = length
	config.Rows = width
	return nil
}

// Validate checks that config describes a runnable game
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Wrapf(ErrUsage, "[Validate] grid dimensions must be positive, got %dx%d", c.Rows, c.Cols)
	case c.Margin < 0:
		return errors.Errorf("[Validate] margin must not be negative, got %d", c.Margin)
	case c.AliveProbability <= 0 || c.AliveProbability >= 1:
		return errors.Errorf("[Validate] alive_probability must be in (0, 1), got %v", c.AliveProbability)
	case c.FrameDelay < 0:
		return errors.Errorf("[Validate] frame_delay must not be negative, got %v", c.FrameDelay)
	case c.Workers < 1:
		return errors.Errorf("[Validate] workers must be at least 1, got %d", c.Workers)
	case c.CycleWindow < 0:
		return errors.Errorf("[Validate] cycle_window must not be negative, got %d", c.CycleWindow)
	case c.MaxGenerations < 0:
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}

// Duration is a time.Duration that reads from JSON as "60ms" or as nanoseconds
type Duration time.Duration

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return errors.Wrapf(err, "[Duration] invalid duration %q", value)
		}
		*d = Duration(parsed)
	default:
		return errors.Errorf("[Duration] invalid duration %s", data)
	}
	return nil
}

// Std returns d as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}
