// Command odometer runs a counting odometer in the terminal.
//
// Configuration comes from odometer.{yaml,toml,json} in the working
// directory or from DRUM_* environment variables:
//
//	DRUM_WHEELS=6 DRUM_STEP=80ms DRUM_THEME=fuelpump odometer
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"drum"
)

func main() {
	viper.SetDefault("wheels", 5)
	viper.SetDefault("fps", 30)
	viper.SetDefault("step", "750ms")
	viper.SetDefault("theme", "odometer")

	viper.SetEnvPrefix("drum")
	viper.AutomaticEnv()

	viper.SetConfigName("odometer")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional; anything else is the user's problem.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "odometer: bad config: %v\n", err)
			os.Exit(1)
		}
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "odometer: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	app, err := drum.NewApp()
	if err != nil {
		return err
	}
	app.FPS(viper.GetInt("fps"))

	counter := drum.NewCounter(app.Animator(), viper.GetInt("wheels"))
	counter.Themed(themeByName(viper.GetString("theme"))).Framed(true)
	app.SetRoot(counter)

	step := viper.GetDuration("step")
	if step <= 0 {
		step = 750 * time.Millisecond
	}

	// Count up until a key is pressed. The counter belongs to the frame
	// loop, so each step is posted onto it rather than applied here.
	go func() {
		ticker := time.NewTicker(step)
		defer ticker.Stop()
		n := 0
		for range ticker.C {
			app.Post(func() {
				n++
				counter.Set(n)
			})
		}
	}()
	go func() {
		var b [1]byte
		os.Stdin.Read(b[:])
		app.Stop()
	}()

	return app.Run()
}

func themeByName(name string) drum.Theme {
	switch name {
	case "fuelpump":
		return drum.ThemeFuelPump
	case "mono":
		return drum.ThemeMono
	default:
		return drum.ThemeOdometer
	}
}
