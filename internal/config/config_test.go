package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// defaultConfig returns a new Config instance with default values.
func defaultConfig() *Config {
	return &Config{
		Work:  SessionConfig{Duration: 25},
		Break: SessionConfig{Duration: 5},
		Settings: SettingsConfig{
			Storage:          "bolt",
			ArcadeHoldFrames: DefaultHoldFrames,
		},
		Notifications: NotificationConfig{
			Enabled: true,
		},
		Display: DisplayConfig{
			TwentyFourHour: true,
		},
		Sound: SoundConfig{
			DefaultVolume: 0.5,
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	// the written file holds every default
	v := viper.New()
	v.SetConfigFile(configPath)
	require.NoError(t, v.ReadInConfig())

	assert.Equal(t, 25, v.GetInt(keyWorkDuration))
	assert.Equal(t, 5, v.GetInt(keyBreakDuration))
	assert.Equal(t, "bolt", v.GetString(keyStorage))
	assert.True(t, v.GetBool(keyNotificationsEnabled))
	assert.InDelta(t, 0.5, v.GetFloat64(keyDefaultVolume), 1e-9)
}

func TestViperReadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	content := `work:
  duration: 50
break:
  duration: 10
settings:
  auto_break: true
  cmd: notify-send "session done"
  storage: sqlite
notifications:
  enabled: false
sound:
  default_volume: 0.8
`

	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := New(WithViperConfig(configPath))
	require.NoError(t, err)

	want := defaultConfig()
	want.Work.Duration = 50
	want.Break.Duration = 10
	want.Settings.AutoBreak = true
	want.Settings.Cmd = `notify-send "session done"`
	want.Settings.Storage = "sqlite"
	want.Notifications.Enabled = false
	want.Sound.DefaultVolume = 0.8

	assert.Equal(t, want, cfg)
}

func TestPromptAnswersBecomeDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	answers := func(c *Config) error {
		applyPromptOptions(c, PromptOptions{WorkDuration: 50, BreakDuration: 10})
		return nil
	}

	cfg, err := New(answers, WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Work.Duration)
	assert.Equal(t, 10, cfg.Break.Duration)

	// later runs read the answers back from the file
	cfg, err = New(WithViperConfig(configPath))
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.Work.Duration)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		Name    string
		Modify  func(c *Config)
		WantErr bool
	}{
		{Name: "defaults", Modify: func(*Config) {}},
		{Name: "work too short", Modify: func(c *Config) { c.Work.Duration = 4 }, WantErr: true},
		{Name: "break too short", Modify: func(c *Config) { c.Break.Duration = 0 }, WantErr: true},
		{Name: "work too long", Modify: func(c *Config) { c.Work.Duration = 721 }, WantErr: true},
		{Name: "cli work below minimum", Modify: func(c *Config) { c.CLI.Work = 2 }},
		{Name: "cli break below minimum", Modify: func(c *Config) { c.CLI.Break = -3 }},
		{Name: "cli work too long", Modify: func(c *Config) { c.CLI.Work = 721 }, WantErr: true},
		{Name: "cli break too long", Modify: func(c *Config) { c.CLI.Break = 800 }, WantErr: true},
		{Name: "cli break", Modify: func(c *Config) { c.CLI.Break = 1 }},
		{Name: "unknown storage", Modify: func(c *Config) { c.Settings.Storage = "redis" }, WantErr: true},
		{Name: "volume too high", Modify: func(c *Config) { c.Sound.DefaultVolume = 1.5 }, WantErr: true},
		{Name: "negative hold frames", Modify: func(c *Config) { c.Settings.ArcadeHoldFrames = -1 }, WantErr: true},
		{Name: "keys never released", Modify: func(c *Config) { c.Settings.ArcadeHoldFrames = 0 }, WantErr: true},
		{Name: "single frame hold", Modify: func(c *Config) { c.Settings.ArcadeHoldFrames = 1 }},
		{Name: "unknown sound", Modify: func(c *Config) { c.CLI.Sounds = []string{"thunder"} }, WantErr: true},
		{Name: "known sounds", Modify: func(c *Config) { c.CLI.Sounds = []string{"rain", "brown"} }},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			c := defaultConfig()
			tc.Modify(c)

			err := c.Validate()
			if tc.WantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCLIConfig(t *testing.T) {
	f := flag.NewFlagSet("ecofocus", flag.ContinueOnError)
	_ = f.Int("work", 0, "")
	_ = f.Int("break", 0, "")
	_ = f.String("sound", "", "")
	_ = f.String("session-cmd", "", "")
	_ = f.Bool("disable-notification", false, "")
	_ = f.Bool("no-color", false, "")
	_ = f.Bool("location", false, "")

	err := f.Parse([]string{
		"-work", "40",
		"-sound", "Rain, brown,,",
		"-disable-notification",
		"-location",
		"-session-cmd", "echo done",
	})
	require.NoError(t, err)

	ctx := cli.NewContext(&cli.App{}, f, nil)

	c := defaultConfig()
	require.NoError(t, WithCLIConfig(ctx)(c))

	assert.Equal(t, 40, c.CLI.Work)
	assert.Zero(t, c.CLI.Break)
	assert.Equal(t, []string{"rain", "brown"}, c.CLI.Sounds)
	assert.False(t, c.Notifications.Enabled)
	assert.True(t, c.Settings.Location)
	assert.False(t, c.Display.NoColor)
	assert.Equal(t, "echo done", c.Settings.Cmd)
}
