package main

import (
	"bufio"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/leftmike/gcodegen"
	"github.com/leftmike/gcodegen/internal/log"
)

var (
	configPath string
	logLevel   string
	liftAtEnd  bool
	echo       string

	tooling = gcodegen.DefaultTooling
)

var RootCmd = &cobra.Command{
	Use:   "gcodegen",
	Short: "Interactively turn circles, rectangles, holes, and lines into G-code",
	Long: `gcodegen reads single letter shape commands and their numbers from standard
input and writes G1 moves to standard output. Prompts and messages are written as
comments, so the whole output is a program for the machine.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return loadTooling(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := gcodegen.NewWriter(os.Stdout)
		sess := gcodegen.NewSession(bufio.NewReader(os.Stdin), w, gcodegen.NewEmitter(w, tooling))
		sess.Policy.LiftAtEndOfMove = liftAtEnd
		sess.Echo = echoInput()
		return sess.Run()
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML file with tooling settings")
	flags.StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, or error")
	flags.Float64Var(&tooling.CutDepth, "cut-depth", tooling.CutDepth, "Z while cutting")
	flags.Float64Var(&tooling.SafeHeight, "safe-height", tooling.SafeHeight,
		"Z while moving between cuts")
	flags.Float64Var(&tooling.RapidFeedRate, "rapid-feed-rate", tooling.RapidFeedRate,
		"feed rate for moves clear of the work")
	flags.Float64Var(&tooling.CutFeedRate, "cut-feed-rate", tooling.CutFeedRate,
		"feed rate for cuts")
	flags.Float64Var(&tooling.PlungeFeedRate, "plunge-feed-rate", tooling.PlungeFeedRate,
		"feed rate for plunges")
	flags.BoolVar(&liftAtEnd, "lift", true, "start with lift at end of move on")

	RootCmd.Flags().StringVar(&echo, "echo", "auto",
		"echo input after prompts: auto, on, or off")
}

// loadTooling applies the config file under any tooling flags given on the command line.
func loadTooling(cmd *cobra.Command) error {
	if configPath != "" {
		t, err := gcodegen.LoadTooling(configPath)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if !flags.Changed("cut-depth") {
			tooling.CutDepth = t.CutDepth
		}
		if !flags.Changed("safe-height") {
			tooling.SafeHeight = t.SafeHeight
		}
		if !flags.Changed("rapid-feed-rate") {
			tooling.RapidFeedRate = t.RapidFeedRate
		}
		if !flags.Changed("cut-feed-rate") {
			tooling.CutFeedRate = t.CutFeedRate
		}
		if !flags.Changed("plunge-feed-rate") {
			tooling.PlungeFeedRate = t.PlungeFeedRate
		}
	}

	log.Debug("tooling", "config", configPath, "cut-depth", tooling.CutDepth,
		"safe-height", tooling.SafeHeight, "rapid-feed-rate", tooling.RapidFeedRate,
		"cut-feed-rate", tooling.CutFeedRate, "plunge-feed-rate", tooling.PlungeFeedRate)
	return tooling.Validate()
}

// echoInput is true unless a person is typing at a terminal that shows the output.
func echoInput() bool {
	switch echo {
	case "on":
		return true
	case "off":
		return false
	}
	return !(isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()))
}
