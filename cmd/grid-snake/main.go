package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/grid-snake/audio"
	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/game"
	"github.com/lixenwraith/grid-snake/render"
	"github.com/lixenwraith/grid-snake/status"
	"github.com/lixenwraith/grid-snake/terminal"
)

const (
	uiScreen = "screen"
	uiPlain  = "plain"
)

var (
	uiFlag    = flag.String("ui", uiScreen, "Frontend: screen (full-screen tcell) or plain (line output)")
	debugFlag = flag.Bool("debug", false, "Write debug log to logs/grid-snake.log")
	muteFlag  = flag.Bool("mute", false, "Disable sound effects")
	seedFlag  = flag.Int64("seed", 0, "Food placement seed, 0 seeds from the clock")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mGRID-SNAKE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)

	tally := status.NewEventTally()
	res, err := run(tally)
	if err != nil {
		log.WithError(err).Error("game aborted")
		fmt.Fprintf(os.Stderr, "grid-snake: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}

	// Screen mode tears down the alternate screen, so repeat the report on the shell
	if *uiFlag == uiScreen {
		printReport(os.Stdout, res)
	}

	fields := log.Fields{
		"state":  res.State.String(),
		"score":  res.Score,
		"length": res.Length,
		"ticks":  res.Ticks,
	}
	for name, n := range tally.Snapshot() {
		fields["n_"+name] = n
	}
	log.WithFields(fields).Info("game finished")

	if logFile != nil {
		logFile.Close()
	}
}

// printReport writes the report to the shell, failures are logged
func printReport(w io.Writer, res game.Result) {
	if err := render.WriteReport(w, res, "\n"); err != nil {
		log.WithError(err).Warn("report not printed")
	}
}

// run plays one game and returns its result once the frontend is restored
func run(tally *status.EventTally) (game.Result, error) {
	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithField("seed", seed).Debug("seeding food placement")

	g, err := game.New(game.DefaultConfig(), rand.New(rand.NewSource(seed)))
	if err != nil {
		return game.Result{}, err
	}

	fe, err := newFrontend(*uiFlag)
	if err != nil {
		return game.Result{}, err
	}
	defer fe.Close()

	loop := game.NewLoop(g, fe, fe)
	loop.RegisterEventHandler(newLogEvents(log.StandardLogger()))
	loop.RegisterEventHandler(tally)

	sound := setupAudio(*muteFlag)
	if sound != nil {
		defer sound.Cleanup()
		loop.RegisterEventHandler(sound)
	}

	res, err := loop.Run()
	if err != nil {
		return res, err
	}

	if err := fe.ShowReport(res); err != nil {
		log.WithError(err).Warn("report not shown")
	}
	time.Sleep(constants.GameOverDelay)
	return res, nil
}

// setupAudio starts the sound manager, nil when muted or no device is available
func setupAudio(mute bool) *audio.SoundManager {
	if mute {
		log.Debug("audio muted by flag")
		return nil
	}

	sound := audio.NewSoundManager(audio.LoadAudioConfig())
	if err := sound.Initialize(); err != nil {
		log.WithError(err).Warn("continuing without audio")
		return nil
	}
	return sound
}
