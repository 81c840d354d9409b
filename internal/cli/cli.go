package cli

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/hamidzr/gscale/core"
	"github.com/hamidzr/gscale/internal/config"
	"github.com/hamidzr/gscale/internal/logger"
	"github.com/hamidzr/gscale/model"
	"github.com/hamidzr/gscale/render"
	"github.com/hamidzr/gscale/render/cogent"
	"github.com/hamidzr/gscale/store"
)

// InitCLI builds the inspector command tree.
func InitCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gscale",
		Short: "gscale computes responsive scale metrics for a viewport",
		RunE: func(cmd *cobra.Command, args []string) error {
			initConfig, _ := cmd.Flags().GetBool("init-config")
			if initConfig {
				configPath, err := config.InitConfigFile()
				if err != nil {
					return fmt.Errorf("failed to initialize config: %w", err)
				}
				fmt.Printf("Config file created at: %s\n", configPath)
				return nil
			}

			cfg, err := config.InitConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			logger.SetupLogger(cfg.LogLevel)

			return run(cfg)
		},
	}

	config.BindFlags(rootCmd)
	rootCmd.AddCommand(previewCmd(), cogentCmd())

	return rootCmd
}

func previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Open a Fyne window themed with the computed scale",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			logger.SetupLogger(cfg.LogLevel)
			return runPreview(cfg)
		},
	}
}

func cogentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cogent",
		Short: "Open a Cogent Core window listing the computed metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitConfig(cmd)
			if err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}
			logger.SetupLogger(cfg.LogLevel)
			engine, err := buildEngine(cfg)
			if err != nil {
				return err
			}
			cogent.RunExample(engine)
			return nil
		},
	}
}

// buildEngine derives the engine viewport in priority order: explicit
// width/height flags, then a stored device profile, then the display.
func buildEngine(cfg *config.Config) (*core.Engine, error) {
	engine := core.NewEngine(core.WithConfig(cfg.ScaleConfig()))

	explicit := cfg.Width > 0 && cfg.Height > 0
	if explicit {
		engine.Refresh(fyne.NewSize(cfg.Width, cfg.Height))
	}

	if cfg.Profile == "" {
		return engine, nil
	}

	profiles, err := store.NewFileStore[store.Snapshot](store.CacheDir(), "yaml")
	if err != nil {
		return nil, err
	}
	if explicit {
		var snap store.Snapshot
		snap.SetSize(cfg.Width, cfg.Height)
		if err := profiles.Save(cfg.Profile, snap); err != nil {
			return nil, err
		}
		logrus.Debugf("saved viewport under profile %q", cfg.Profile)
		return engine, nil
	}

	snap, err := profiles.Load(cfg.Profile)
	if err != nil {
		return nil, err
	}
	if snap.IsZero() {
		return nil, fmt.Errorf("profile %q has no stored viewport; run once with --width and --height", cfg.Profile)
	}
	engine.Refresh(fyne.NewSize(snap.Width, snap.Height))
	return engine, nil
}

func run(cfg *config.Config) error {
	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	metrics := collectMetrics(engine)
	if cfg.Metric != "" {
		m, ok := selectMetric(metrics, cfg.Metric)
		if !ok {
			return fmt.Errorf("no metric matches %q", cfg.Metric)
		}
		fmt.Println(m.Value)
		return nil
	}

	switch cfg.Output {
	case "yaml":
		out, err := yaml.Marshal(metrics)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
	case "plain":
		printPlain(metrics)
	default:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			for _, m := range metrics {
				fmt.Printf("%-20s %s\n", m.Name, m.Value)
			}
		} else {
			printPlain(metrics)
		}
	}
	return nil
}

func printPlain(metrics []Metric) {
	for _, m := range metrics {
		fmt.Printf("%s=%s\n", m.Name, m.Value)
	}
}

func runPreview(cfg *config.Config) error {
	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	a := app.New()
	a.Settings().SetTheme(render.NewResponsiveTheme(theme.DefaultTheme(), engine))
	engine.Configure(core.WithMetricsWatch(true))

	w := a.NewWindow("gscale preview")
	list := container.NewVBox()
	for _, m := range collectMetrics(engine) {
		list.Add(widget.NewLabel(fmt.Sprintf("%s: %s", m.Name, m.Value)))
	}
	w.SetContent(container.New(render.NewSafeAreaLayout(engine, model.NewPadding(12)), list))
	w.Resize(fyne.NewSize(engine.Width(), engine.Height()))
	w.ShowAndRun()

	engine.Configure(core.WithMetricsWatch(false))
	return nil
}
