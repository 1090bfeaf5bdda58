// Package config loads application settings and the learner profile from
// an optional YAML file and MECHDYANE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mechdyane/mechdyane/internal/catalog"
	"github.com/mechdyane/mechdyane/internal/progress"
	"github.com/spf13/viper"
)

const envPrefix = "MECHDYANE"

type Config struct {
	Learner  LearnerConfig  `mapstructure:"learner"`
	Progress ProgressConfig `mapstructure:"progress"`
	Log      LogConfig      `mapstructure:"log"`
	DB       DBConfig       `mapstructure:"db"`
}

type LearnerConfig struct {
	Name               string   `mapstructure:"name"`
	Joined             string   `mapstructure:"joined"`
	Track              string   `mapstructure:"track"`
	Interests          []string `mapstructure:"interests"`
	DailyGoalXP        int      `mapstructure:"daily_goal_xp"`
	EmailNotifications bool     `mapstructure:"email_notifications"`
	PublicProfile      bool     `mapstructure:"public_profile"`
}

// ProgressConfig seeds the in-memory ledger at startup.
type ProgressConfig struct {
	Points           int          `mapstructure:"points"`
	Streak           int          `mapstructure:"streak"`
	Badges           []string     `mapstructure:"badges"`
	CompletedLessons []string     `mapstructure:"completed_lessons"`
	Course           CourseConfig `mapstructure:"course"`
}

type CourseConfig struct {
	ID           string `mapstructure:"id"`
	Title        string `mapstructure:"title"`
	TotalLessons int    `mapstructure:"total_lessons"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

func setDefaults(v *viper.Viper) {
	seed := progress.Seed()
	badgeIDs := make([]string, len(seed.Badges))
	for i, b := range seed.Badges {
		badgeIDs[i] = b.ID
	}

	v.SetDefault("learner.name", "Mechdyane Learner")
	v.SetDefault("learner.joined", "June 2024")
	v.SetDefault("learner.track", "Beginner Track")
	v.SetDefault("learner.interests", []string{catalog.ContinueDomain})
	v.SetDefault("learner.daily_goal_xp", 500)
	v.SetDefault("learner.email_notifications", true)
	v.SetDefault("learner.public_profile", true)

	v.SetDefault("progress.points", seed.Points)
	v.SetDefault("progress.streak", seed.Streak)
	v.SetDefault("progress.badges", badgeIDs)
	v.SetDefault("progress.completed_lessons", seed.CompletedLessons)
	v.SetDefault("progress.course.id", seed.Course.ID)
	v.SetDefault("progress.course.title", seed.Course.Title)
	v.SetDefault("progress.course.total_lessons", seed.Course.TotalLessons)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("db.path", "")
}

// Load reads settings. With an empty path the default location is tried
// and a missing file is not an error; an explicit path must exist.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("db.path", envPrefix+"_DB_PATH", envPrefix+"_DB")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the ledger can't start from.
func (c *Config) Validate() error {
	if c.Progress.Points < 0 {
		return fmt.Errorf("progress.points must not be negative, got %d", c.Progress.Points)
	}
	if c.Progress.Streak < 0 {
		return fmt.Errorf("progress.streak must not be negative, got %d", c.Progress.Streak)
	}
	if c.Progress.Course.TotalLessons < 0 {
		return fmt.Errorf("progress.course.total_lessons must not be negative, got %d", c.Progress.Course.TotalLessons)
	}
	if c.Learner.DailyGoalXP < 0 {
		return fmt.Errorf("learner.daily_goal_xp must not be negative, got %d", c.Learner.DailyGoalXP)
	}
	// Interests are stored under their catalog spelling, once each.
	interests := make([]string, 0, len(c.Learner.Interests))
	for _, name := range c.Learner.Interests {
		d, ok := catalog.Lookup(name)
		if !ok {
			return fmt.Errorf("learner.interests: unknown domain %q", name)
		}
		if !slices.Contains(interests, d.Name) {
			interests = append(interests, d.Name)
		}
	}
	c.Learner.Interests = interests
	return nil
}

// SeedProgress converts the progress section into a ledger seed. Unknown
// badge ids are ignored.
func (c *Config) SeedProgress() progress.Progress {
	return progress.Progress{
		Points:           c.Progress.Points,
		Level:            progress.Level(c.Progress.Points),
		Badges:           progress.BadgesByID(c.Progress.Badges),
		CompletedLessons: append([]string(nil), c.Progress.CompletedLessons...),
		Streak:           c.Progress.Streak,
		Course: catalog.Course{
			ID:           c.Progress.Course.ID,
			Title:        c.Progress.Course.Title,
			TotalLessons: c.Progress.Course.TotalLessons,
		},
	}
}

// DefaultDir resolves the config directory:
// 1. $XDG_CONFIG_HOME/mechdyane
// 2. ~/.config/mechdyane
func DefaultDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "mechdyane"), nil
}
