package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"pfeifer.dev/onroad/buttons"
	"pfeifer.dev/onroad/cereal"
	"pfeifer.dev/onroad/config"
	"pfeifer.dev/onroad/params"
	"pfeifer.dev/onroad/settings"
	"pfeifer.dev/onroad/theme"
)

// Handle runs any requested subcommand and exits. Without a subcommand it
// returns so the caller can start the onroad UI.
func Handle() {
	shouldExit := true
	cmd := &cli.Command{
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Directory containing " + config.CONFIG_NAME,
				Value:   ".",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			err := config.Load(cmd.String("config"))
			if err != nil {
				return ctx, err
			}
			durable, _ := stores()
			settings.Settings.Load(durable)
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:    "interactive",
				Aliases: []string{"i"},
				Usage:   "Pick an action from a prompt",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					interactive(ctx)
					return nil
				},
			},
			{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Watch the onroad button state computed from live snapshots",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					watch()
					return nil
				},
			},
			{
				Name:  "toggle",
				Usage: "Toggle experimental mode the same way tapping the button does",
				Flags: []cli.Flag{
					&cli.Int64Flag{
						Name:  "conditional-status",
						Usage: "Conditional experimental status to override, toggles experimental mode when unset",
						Value: -1,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					toggle(int(cmd.Int64("conditional-status")))
					return nil
				},
			},
			{
				Name:  "publish",
				Usage: "Publish an onroadState snapshot for bench testing",
				Flags: publishFlags(),
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return publish(ctx, cmd)
				},
			},
			{
				Name:  "wheel",
				Usage: "Manage steering wheel icons",
				Commands: []*cli.Command{
					{
						Name:  "list",
						Usage: "List the available wheels",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							durable, _ := stores()
							wheels, err := theme.UpdateWheelParams(durable, wheelsDir())
							if err != nil {
								return err
							}
							for _, wheel := range wheels {
								fmt.Println(wheel)
							}
							return nil
						},
					},
					{
						Name:      "select",
						Usage:     "Install a wheel into the active theme",
						ArgsUsage: "<wheel>",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							if cmd.Args().Len() != 1 {
								return errors.New("expected a wheel name")
							}
							return selectWheel(cmd.Args().First())
						},
					},
					{
						Name:      "download",
						Usage:     "Download a wheel from the wheel repository",
						ArgsUsage: "<wheel>",
						Action: func(ctx context.Context, cmd *cli.Command) error {
							if cmd.Args().Len() != 1 {
								return errors.New("expected a wheel name")
							}
							_, memory := stores()
							return newDownloader(memory).Download(ctx, cmd.Args().First())
						},
					},
				},
			},
			{
				Name:  "holiday",
				Usage: "Print the active holiday theme and publish its id",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, memory := stores()
					name, _ := theme.NewThemeManager(memory).Update(time.Now())
					if name == "" {
						name = "none"
					}
					fmt.Printf("holiday: %s\ntheme: %s\n", name, themePath(time.Now()))
					return nil
				},
			},
		},
		Name:  "Onroad",
		Usage: "Start the onroad buttons UI",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}

func toggle(conditionalStatus int) {
	durable, memory := stores()
	b := buttons.NewExperimentalButton(durable, memory, themePath(time.Now()))
	b.UpdateState(buttons.Snapshot{
		Engageable:              true,
		ExperimentalMode:        durable.GetBool(params.EXPERIMENTAL_MODE),
		ConditionalExperimental: conditionalStatus >= 0,
		ConditionalStatus:       conditionalStatus,
		LongitudinalControl:     true,
	}, settings.Settings.LeadInfo)
	b.ToggleMode()
}

func selectWheel(name string) error {
	durable, memory := stores()
	err := theme.SelectWheel(memory, wheelsDir(), themePath(time.Now()), name)
	if err != nil {
		return err
	}
	settings.Settings.WheelIcon = name
	settings.Settings.Save(durable)
	return nil
}

func publishFlags() []cli.Flag {
	flags := []cli.Flag{}
	for _, name := range []string{
		"engageable", "enabled", "experimental-mode", "always-on-lateral", "conditional-experimental",
		"navigate-on-openpilot", "traffic-mode", "big-map", "map-open", "rotating-wheel",
		"kaofui", "longitudinal-control", "experimental-mode-confirmed",
	} {
		flags = append(flags, &cli.BoolFlag{Category: "Snapshot", Name: name})
	}
	return append(flags,
		&cli.Int64Flag{Category: "Snapshot", Name: "conditional-status"},
		&cli.Int64Flag{Category: "Snapshot", Name: "personality", Value: int64(cereal.LongitudinalPersonality_standard)},
		&cli.Float64Flag{Category: "Snapshot", Name: "steering-angle"},
		&cli.Int64Flag{Name: "count", Usage: "Number of times to publish", Value: 1},
		&cli.DurationFlag{Name: "interval", Usage: "Delay between publishes", Value: settings.LOOP_DELAY},
	)
}

func snapshotFromFlags(cmd *cli.Command) buttons.Snapshot {
	return buttons.Snapshot{
		Engageable:                cmd.Bool("engageable"),
		Enabled:                   cmd.Bool("enabled"),
		ExperimentalMode:          cmd.Bool("experimental-mode"),
		AlwaysOnLateralActive:     cmd.Bool("always-on-lateral"),
		ConditionalExperimental:   cmd.Bool("conditional-experimental"),
		ConditionalStatus:         int(cmd.Int64("conditional-status")),
		NavigateOnOpenpilot:       cmd.Bool("navigate-on-openpilot"),
		TrafficModeActive:         cmd.Bool("traffic-mode"),
		BigMap:                    cmd.Bool("big-map"),
		MapOpen:                   cmd.Bool("map-open"),
		RotatingWheel:             cmd.Bool("rotating-wheel"),
		SteeringAngleDeg:          float32(cmd.Float64("steering-angle")),
		Personality:               int(cmd.Int64("personality")),
		UseKaofuiIcons:            cmd.Bool("kaofui"),
		LongitudinalControl:       cmd.Bool("longitudinal-control"),
		ExperimentalModeConfirmed: cmd.Bool("experimental-mode-confirmed"),
	}
}

func publish(ctx context.Context, cmd *cli.Command) error {
	snap := snapshotFromFlags(cmd)
	pub := cereal.NewOnroadStatePublisher()

	for i := range cmd.Int64("count") {
		if i > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(cmd.Duration("interval")):
			}
		}
		msg, state := pub.NewMessage()
		state.SetSnapshot(snap)
		state.SetLogMonoTime(cereal.GetTime())
		if err := pub.Send(msg); err != nil {
			return err
		}
	}
	return nil
}
