// Package cmd wires the CLI surface to the dashboard: flag parsing,
// persisted-state merge, sampler and terminal setup.
package cmd

import (
	"fmt"
	"regexp"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/gstat-go/gstat/config"
	"github.com/gstat-go/gstat/geom"
	"github.com/gstat-go/gstat/model"
	"github.com/gstat-go/gstat/stats"
	"github.com/gstat-go/gstat/ui"
	"github.com/gstat-go/gstat/util"
)

// Version is set at build time via ldflags.
var Version = "0.1.0"

type options struct {
	auto        bool
	delete      bool
	other       bool
	size        bool
	physical    bool
	reverse     bool
	resetConfig bool
	filter      string
	exclude     string
	sortCol     string
	interval    string
}

func newRootCmd() (*cobra.Command, *options) {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "gstat",
		Short:         "Interactive per-device I/O statistics dashboard",
		Long:          "gstat samples per-device I/O counters and renders them as a\ncontinuously refreshing, sortable, filterable table.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, *opts)
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.auto, "auto", "a", false, "only display devices that are at least 0.1% busy")
	f.BoolVarP(&opts.delete, "delete", "d", false, "display statistics for delete operations")
	f.BoolVarP(&opts.other, "other", "o", false, "display statistics for other (flush) operations")
	f.BoolVarP(&opts.size, "size", "s", false, "display block size statistics")
	f.BoolVarP(&opts.physical, "physical", "p", false, "only display physical devices (rank 1)")
	f.BoolVarP(&opts.reverse, "reverse", "r", false, "reverse the sort")
	f.StringVarP(&opts.filter, "filter", "f", "", "only display devices matching a regex")
	f.StringVarP(&opts.exclude, "exclude", "x", "", "hide devices matching a regex")
	f.StringVarP(&opts.sortCol, "sort", "S", "", "sort by the named column, e.g. ms/r")
	f.StringVarP(&opts.interval, "interval", "I", "", "update interval, microseconds or with a unit suffix")
	f.BoolVar(&opts.resetConfig, "reset-config", false, "reset the config file to defaults")
	return cmd, opts
}

func run(cmd *cobra.Command, opts options) error {
	log := newLogger()
	cfgPath := config.Path()

	st := config.Default()
	if !opts.resetConfig {
		st = config.Load(cfgPath, log)
	}
	if err := applyFlags(cmd, opts, &st); err != nil {
		return err
	}
	if opts.resetConfig {
		// Write a fresh file now, discarding the old one.
		if err := config.Save(cfgPath, st); err != nil {
			log.Warn().Err(err).Msg("config reset failed")
		}
	}

	if termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	sampler := geom.NewDiskstatsSampler()
	first, err := sampler.Sample()
	if err != nil {
		return fmt.Errorf("snapshot source: %w", err)
	}

	p := tea.NewProgram(ui.NewModel(sampler, st, first, cfgPath, log), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if fm, ok := final.(ui.Model); ok {
		if err := config.Save(cfgPath, fm.State()); err != nil {
			log.Warn().Err(err).Msg("final config save failed")
		}
	}
	return nil
}

// applyFlags overlays flags the user actually set onto the persisted
// state, then applies the legacy column switches.
func applyFlags(cmd *cobra.Command, opts options, st *model.ViewState) error {
	f := cmd.Flags()
	if f.Changed("auto") {
		st.Auto = opts.auto
	}
	if f.Changed("physical") {
		st.Physical = opts.physical
	}
	if f.Changed("reverse") {
		st.Reverse = opts.reverse
	}
	if f.Changed("filter") {
		if _, err := regexp.Compile(opts.filter); err != nil {
			return fmt.Errorf("bad filter: %w", err)
		}
		st.Include = opts.filter
	}
	if f.Changed("exclude") {
		if _, err := regexp.Compile(opts.exclude); err != nil {
			return fmt.Errorf("bad exclude: %w", err)
		}
		st.Exclude = opts.exclude
	}
	if f.Changed("sort") {
		id, ok := stats.Lookup(opts.sortCol)
		if !ok {
			return fmt.Errorf("unknown sort column %q", opts.sortCol)
		}
		st.SortCol = stats.All()[id].Key()
	}
	if f.Changed("interval") {
		d, err := util.ParseInterval(opts.interval)
		if err != nil {
			return err
		}
		st.Interval = d
	}
	st.Columns = stats.MaskWithLegacy(st.Columns, opts.delete, opts.other, opts.size)
	return nil
}

// Run parses flags and starts the application.
func Run() error {
	cmd, _ := newRootCmd()
	return cmd.Execute()
}
