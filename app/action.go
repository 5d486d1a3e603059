package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/ecofocus/dashboard"
	"github.com/ayoisaiah/ecofocus/internal/audio"
	"github.com/ayoisaiah/ecofocus/internal/config"
	"github.com/ayoisaiah/ecofocus/internal/geo"
	"github.com/ayoisaiah/ecofocus/internal/notify"
	"github.com/ayoisaiah/ecofocus/internal/pathutil"
	"github.com/ayoisaiah/ecofocus/internal/static"
	"github.com/ayoisaiah/ecofocus/internal/theme"
	"github.com/ayoisaiah/ecofocus/stats"
	"github.com/ayoisaiah/ecofocus/store"
	"github.com/ayoisaiah/ecofocus/timer"
)

const (
	envNoColor         = "NO_COLOR"
	envEcofocusNoColor = "ECOFOCUS_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// loadConfig resolves the configuration. The first-run prompt is only shown
// when interactive is set.
func loadConfig(ctx *cli.Context, interactive bool) (*config.Config, error) {
	configPath := pathutil.ConfigFilePath()

	opts := make([]config.Option, 0, 3)

	if interactive {
		opts = append(opts, config.WithPromptConfig(configPath))
	}

	opts = append(opts,
		config.WithViperConfig(configPath),
		config.WithCLIConfig(ctx),
	)

	return config.New(opts...)
}

// openStore opens the database of the configured backend.
func openStore(cfg *config.Config) (store.DB, error) {
	backend := cfg.Settings.Storage

	return store.Open(backend, pathutil.DBFilePath(backend))
}

// withStore loads the configuration and runs fn against the database.
func withStore(ctx *cli.Context, fn func(db store.DB) error) error {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := db.Close(); cerr != nil {
			slog.Warn("unable to close database", slog.Any("error", cerr))
		}
	}()

	return fn(db)
}

// editConfigAction handles the edit-config command which opens the ecofocus
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// statsAction prints the statistics of the sessions recorded since the
// requested date.
func statsAction(ctx *cli.Context) error {
	return withStore(ctx, func(db store.DB) error {
		now := time.Now()

		since, err := stats.ParseSince(ctx.String("since"), now)
		if err != nil {
			return err
		}

		total, err := store.Int(db, store.KeyTotalSessions, 0)
		if err != nil {
			slog.Warn("unable to read session count", slog.Any("error", err))
		}

		history := stats.Since(timer.LoadHistory(db), since)

		if ctx.Bool("list") {
			stats.List(config.Stdout, history, time.Local)
			return nil
		}

		s := stats.Compute(history, total, now, time.Local)

		if ctx.Bool("json") {
			return stats.ToJSON(s, config.Stdout)
		}

		stats.Render(config.Stdout, s, since, now)

		return nil
	})
}

// exportAction writes the session history as JSON.
func exportAction(ctx *cli.Context) error {
	return withStore(ctx, func(db store.DB) error {
		history := timer.LoadHistory(db)

		output := ctx.String("output")
		if output == "" {
			return stats.Export(history, config.Stdout)
		}

		f, err := os.Create(output)
		if err != nil {
			return err
		}

		err = stats.Export(history, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}

		if err != nil {
			return err
		}

		pterm.Success.Printfln("Exported %d sessions to %s", len(history), output)

		return nil
	})
}

// importAction copies a browser data dump into the database.
func importAction(ctx *cli.Context) error {
	if ctx.Args().Len() < 1 {
		return errMissingArgs.Fmt("ecofocus import <file>")
	}

	return withStore(ctx, func(db store.DB) error {
		f, err := os.Open(ctx.Args().First())
		if err != nil {
			return err
		}

		defer f.Close()

		keys, err := store.Import(db, f)
		if err != nil {
			return err
		}

		if len(keys) == 0 {
			pterm.Info.Println("Nothing to import")
			return nil
		}

		pterm.Success.Printfln("Imported %v", keys)

		return nil
	})
}

// themeAction prints the current theme or changes it.
func themeAction(ctx *cli.Context) error {
	return withStore(ctx, func(db store.DB) error {
		s := theme.Init(db, time.Now())

		arg := ctx.Args().First()

		switch arg {
		case "":
		case "toggle":
			s.Toggle()
		default:
			t, err := theme.Parse(arg)
			if err != nil {
				return err
			}

			s.Set(t)
		}

		fmt.Fprintln(config.Stdout, s.Current())

		return nil
	})
}

// defaultAction launches the widget.
func defaultAction(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx, true)
	if err != nil {
		return err
	}

	db, err := openStore(cfg)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	soundsDir := firstNonEmptyString(cfg.Settings.SoundsDir, pathutil.SoundsDir())

	mixer := audio.New(cfg.Sound.DefaultVolume, audio.WithSoundsDir(soundsDir))

	defer func() {
		_ = mixer.Close()
	}()

	for _, name := range cfg.CLI.Sounds {
		if err := mixer.Play(name); err != nil {
			slog.Warn("unable to play sound",
				slog.String("channel", name),
				slog.Any("error", err),
			)
		}
	}

	opts := dashboard.Options{
		DB:       db,
		Config:   cfg,
		Sound:    mixer,
		Notifier: notify.New(cfg.Notifications.Enabled, static.IconPath(pathutil.DataDir())),
		Channels: audio.Channels,
	}

	if cfg.Settings.Location {
		opts.Locator = geo.NewClient()
	}

	p := tea.NewProgram(dashboard.New(opts), tea.WithAltScreen())

	err = config.Watch(pathutil.ConfigFilePath(), func(c *config.Config) {
		p.Send(dashboard.ConfigMsg{Config: c})
	})
	if err != nil {
		slog.Warn("config changes will not be picked up", slog.Any("error", err))
	}

	slog.InfoContext(ctx.Context, "starting ecofocus",
		slog.Int("work", cfg.Work.Duration),
		slog.Int("break", cfg.Break.Duration),
		slog.String("storage", cfg.Settings.Storage),
	)

	_, err = p.Run()

	return err
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if ECOFOCUS_NO_COLOR is set
	if _, exists := os.LookupEnv(envEcofocusNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	slog.SetDefault(newLogger())

	if err := static.Install(pathutil.DataDir()); err != nil {
		slog.Warn("unable to install static files", slog.Any("error", err))
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting ecofocus")

	return nil
}
