// Command ls-gnsstime shows an instant across UTC, GPS, Galileo and BeiDou
// time and Greenwich mean sidereal time.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cast"
	"golang.org/x/term"

	"github.com/litescript/ls-gnsstime/internal/gtime"
	"github.com/litescript/ls-gnsstime/internal/logging"
	"github.com/litescript/ls-gnsstime/internal/readout"
	"github.com/litescript/ls-gnsstime/internal/state"
	"github.com/litescript/ls-gnsstime/internal/ui"
)

// CLI flags for headless mode
var (
	summaryMode   bool
	jsonMode      bool
	atFlag        string
	scaleFlag     string
	weekFlag      string
	towFlag       float64
	lonFlag       string
	watchInterval time.Duration
)

const (
	defaultRefresh = 1 * time.Second
	minRefresh     = 100 * time.Millisecond
	maxRefresh     = 1 * time.Minute
)

func main() {
	refresh := flag.Duration("refresh", defaultRefresh, "Clock refresh interval (e.g., 250ms, 1s)")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	ut1UTC := flag.Float64("ut1-utc", 0, "UT1-UTC in seconds, used for GMST")
	flag.BoolVar(&summaryMode, "summary", false, "Print text summary instead of TUI")
	flag.BoolVar(&jsonMode, "json", false, "Print JSON readout instead of TUI")
	flag.StringVar(&atFlag, "at", "", "UTC instant to convert (e.g., \"2017-01-01 00:00:00\")")
	flag.StringVar(&scaleFlag, "scale", "", "GNSS scale of -week/-tow (gpst, gst, bdt)")
	flag.StringVar(&weekFlag, "week", "0", "Week number in -scale")
	flag.Float64Var(&towFlag, "tow", 0, "Time of week in -scale (s)")
	flag.StringVar(&lonFlag, "lon", "", "Observer east longitude in degrees; adds local sidereal time to the summary")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat the headless readout at interval (e.g., 10s)")
	flag.Parse()

	if *refresh < minRefresh {
		*refresh = minRefresh
	} else if *refresh > maxRefresh {
		*refresh = maxRefresh
	}

	logger := logging.New(logging.ParseLevel(*logLevel))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	stateCfg := state.DefaultConfig()
	stateCfg.RefreshInterval = *refresh
	stateCfg.UT1UTC = *ut1UTC
	stateMgr := state.NewManager(stateCfg)

	headless := summaryMode || jsonMode || atFlag != "" || scaleFlag != "" || !term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		if err := runHeadless(ctx, stateMgr, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger.Debug("Starting TUI, refresh %v", *refresh)
	p := tea.NewProgram(ui.New(stateMgr), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// runHeadless prints one readout, or one per -watch interval.
func runHeadless(ctx context.Context, stateMgr *state.Manager, logger *logging.Logger) error {
	update, err := sourceFor(stateMgr)
	if err != nil {
		return err
	}

	var lon *float64
	if lonFlag != "" {
		v, err := cast.ToFloat64E(lonFlag)
		if err != nil {
			return fmt.Errorf("-lon: %w", err)
		}
		lon = &v
	}

	outputOnce := func() error {
		update()
		snap := stateMgr.Snapshot()
		logger.WithField("utc", snap.Current.UTCString).Debug("readout computed")

		if jsonMode {
			if err := snap.Current.WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
			return nil
		}
		readout.WriteSummaryTable(os.Stdout, snap.Current)
		if lon != nil {
			fmt.Printf("LST  %.6f° at longitude %.4f°\n", snap.Current.LSTDeg(*lon), *lon)
		}
		for _, e := range snap.Events {
			logger.Info("%s at %s: %g -> %g %s", e.Type, e.At, e.Before, e.After, e.Scale)
		}
		return nil
	}

	if err := outputOnce(); err != nil {
		return err
	}
	if watchInterval == 0 {
		return nil
	}

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if !jsonMode {
				fmt.Println()
			}
			if err := outputOnce(); err != nil {
				logger.Error("%v", err)
			}
		}
	}
}

// sourceFor picks the instant source from the flags: -at, -scale/-week/-tow
// or the system clock.
func sourceFor(stateMgr *state.Manager) (func(), error) {
	switch {
	case atFlag != "" && scaleFlag != "":
		return nil, fmt.Errorf("-at and -scale are mutually exclusive")

	case atFlag != "":
		ep, err := readout.ParseEpoch(atFlag)
		if err != nil {
			return nil, err
		}
		utc := gtime.EpochToTime(ep)
		return func() { stateMgr.Update(utc) }, nil

	case scaleFlag != "":
		scale, err := gtime.ParseScale(scaleFlag)
		if err != nil {
			return nil, fmt.Errorf("-scale: %w", err)
		}
		week, err := cast.ToIntE(weekFlag)
		if err != nil {
			return nil, fmt.Errorf("-week: %w", err)
		}
		if err := readout.CheckWeek(scale, week, towFlag); err != nil {
			return nil, err
		}
		return func() { stateMgr.UpdateFromScale(scale, week, towFlag) }, nil
	}

	return func() { stateMgr.Update(gtime.FromStd(time.Now())) }, nil
}
