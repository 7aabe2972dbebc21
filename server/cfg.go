package server

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	KEY_COLS                  = "ENCLOSE_COLS"
	KEY_ROWS                  = "ENCLOSE_ROWS"
	KEY_STEPS_PER_SECOND      = "ENCLOSE_STEPS_PER_SECOND"
	KEY_ENEMY_SPEED           = "ENCLOSE_ENEMY_SPEED"
	KEY_ENEMY_SPEED_PER_LEVEL = "ENCLOSE_ENEMY_SPEED_PER_LEVEL"
	KEY_ENEMY_COUNT           = "ENCLOSE_ENEMY_COUNT"
	KEY_ENEMY_COUNT_PER_LEVEL = "ENCLOSE_ENEMY_COUNT_PER_LEVEL"
	KEY_ENEMY_COUNT_MAX       = "ENCLOSE_ENEMY_COUNT_MAX"
	KEY_TARGET_PERCENT        = "ENCLOSE_TARGET_PERCENT"
	KEY_LIVES                 = "ENCLOSE_LIVES"
	KEY_FRAME_RATE            = "ENCLOSE_FRAME_RATE"
	KEY_MAX_FRAME_DELTA       = "ENCLOSE_MAX_FRAME_DELTA"
	KEY_SEED                  = "ENCLOSE_SEED"
	KEY_SEND_RATE             = "ENCLOSE_SEND_RATE"
	KEY_MAX_SESSIONS          = "ENCLOSE_MAX_SESSIONS"
)

var configKeys = []string{
	KEY_COLS, KEY_ROWS, KEY_STEPS_PER_SECOND,
	KEY_ENEMY_SPEED, KEY_ENEMY_SPEED_PER_LEVEL,
	KEY_ENEMY_COUNT, KEY_ENEMY_COUNT_PER_LEVEL, KEY_ENEMY_COUNT_MAX,
	KEY_TARGET_PERCENT, KEY_LIVES, KEY_FRAME_RATE, KEY_MAX_FRAME_DELTA,
	KEY_SEED, KEY_SEND_RATE, KEY_MAX_SESSIONS,
}

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Cols, Rows     int
	StepsPerSecond float64

	// enemy speed in cells per second, count per level capped at EnemyCountMax
	EnemySpeed         float64
	EnemySpeedPerLevel float64
	EnemyCount         int
	EnemyCountPerLevel int
	EnemyCountMax      int

	TargetPercent float64
	Lives         int

	FrameRate     int
	MaxFrameDelta float64
	Seed          int64

	// snapshots pushed per second to remote renderers
	SendRate    int
	MaxSessions int
}

func DefaultConfig() Config {
	return Config{
		Cols:               96,
		Rows:               64,
		StepsPerSecond:     14,
		EnemySpeed:         8,
		EnemySpeedPerLevel: 1,
		EnemyCount:         2,
		EnemyCountPerLevel: 1,
		EnemyCountMax:      6,
		TargetPercent:      75,
		Lives:              3,
		FrameRate:          60,
		MaxFrameDelta:      0.1,
		SendRate:           30,
		MaxSessions:        16,
	}
}

// LoadConfig starts from DefaultConfig, applies a dotenv style file when
// path is set and exists, then ENCLOSE_* variables from the environment.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	values := make(map[string]string)
	if path != "" {
		fileValues, err := godotenv.Read(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
			}
			log.Warnf("config %s not found, using defaults", path)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	for _, k := range configKeys {
		if v, ok := os.LookupEnv(k); ok {
			values[k] = v
		}
	}
	if err := cfg.apply(values); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) apply(values map[string]string) error {
	ints := map[string]*int{
		KEY_COLS:                  &c.Cols,
		KEY_ROWS:                  &c.Rows,
		KEY_ENEMY_COUNT:           &c.EnemyCount,
		KEY_ENEMY_COUNT_PER_LEVEL: &c.EnemyCountPerLevel,
		KEY_ENEMY_COUNT_MAX:       &c.EnemyCountMax,
		KEY_LIVES:                 &c.Lives,
		KEY_FRAME_RATE:            &c.FrameRate,
		KEY_SEND_RATE:             &c.SendRate,
		KEY_MAX_SESSIONS:          &c.MaxSessions,
	}
	floats := map[string]*float64{
		KEY_STEPS_PER_SECOND:      &c.StepsPerSecond,
		KEY_ENEMY_SPEED:           &c.EnemySpeed,
		KEY_ENEMY_SPEED_PER_LEVEL: &c.EnemySpeedPerLevel,
		KEY_TARGET_PERCENT:        &c.TargetPercent,
		KEY_MAX_FRAME_DELTA:       &c.MaxFrameDelta,
	}
	for k, p := range ints {
		v, ok := values[k]
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, k, err)
		}
		*p = n
	}
	for k, p := range floats {
		v, ok := values[k]
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, k, err)
		}
		*p = f
	}
	if v, ok := values[KEY_SEED]; ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, KEY_SEED, err)
		}
		c.Seed = n
	}
	return nil
}

func (c Config) Validate() error {
	var problems []string
	if c.Cols < 3 || c.Rows < 3 {
		problems = append(problems, fmt.Sprintf("field %dx%d smaller than 3x3", c.Cols, c.Rows))
	}
	if c.StepsPerSecond <= 0 {
		problems = append(problems, "steps per second must be positive")
	}
	if c.EnemySpeed < 0 || c.EnemySpeedPerLevel < 0 {
		problems = append(problems, "enemy speed must not be negative")
	}
	if c.EnemyCount < 0 || c.EnemyCountPerLevel < 0 || c.EnemyCountMax < 0 {
		problems = append(problems, "enemy counts must not be negative")
	}
	if c.TargetPercent <= 0 || c.TargetPercent > 100 {
		problems = append(problems, fmt.Sprintf("target percent %.1f outside (0,100]", c.TargetPercent))
	}
	if c.Lives < 1 {
		problems = append(problems, "need at least one life")
	}
	if c.FrameRate <= 0 || c.SendRate <= 0 {
		problems = append(problems, "frame and send rate must be positive")
	}
	if c.MaxFrameDelta <= 0 {
		problems = append(problems, "max frame delta must be positive")
	}
	if c.MaxSessions <= 0 {
		problems = append(problems, "max sessions must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func (c Config) StepInterval() float64 {
	return 1 / c.StepsPerSecond
}

func (c Config) EnemyCountFor(level int) int {
	n := c.EnemyCount + (level-1)*c.EnemyCountPerLevel
	if n > c.EnemyCountMax {
		n = c.EnemyCountMax
	}
	if n < 0 {
		return 0
	}
	return n
}

func (c Config) EnemySpeedFor(level int) float64 {
	return c.EnemySpeed + float64(level-1)*c.EnemySpeedPerLevel
}
