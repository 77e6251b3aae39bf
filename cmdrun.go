// cmdrun.go - Run the machine with a window

package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagScript string
	flagImage  string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "open the machine window",
	Long: `Run opens the machine in a window and drives it at 50Hz. An
optional Lua script can poke memory and ports each frame, and an
optional image file is loaded into Layer 2 before the first frame.

Keys: ESC quits, F1-F4 set the window scale, F5 takes a screenshot,
F12 toggles the status bar.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		boilerPlate()
		machine := NewMachine(machineConfigFromFlags())
		defer machine.Close()

		var frameFn func(uint64) error
		if flagScript != "" {
			host := NewScriptHost(machine)
			defer host.Close()
			if err := host.LoadFile(flagScript); err != nil {
				return err
			}
			frameFn = host.Frame
		}
		if flagImage != "" {
			machine.Out(NX_PORT_LAYER2_PAGING, NX_LAYER2_ENABLE_BIT)
			if err := machine.LoadLayer2Image(flagImage); err != nil {
				return err
			}
		}

		surface, err := NewSurface(SURFACE_BACKEND_EBITEN)
		if err != nil {
			return err
		}
		surface.SetDisplayConfig(DisplayConfig{
			Width:  NX_WINDOW_WIDTH,
			Height: NX_WINDOW_HEIGHT,
			Scale:  machine.cfg.Scale,
			VSync:  true,
		})
		surface.SetStatusProvider(machine.Status)
		surface.SetScreenshotHandler(func() {
			if _, err := machine.Screenshot(); err != nil {
				log.WithError(err).Warn("screenshot failed")
			}
		})
		if err := surface.Start(); err != nil {
			return err
		}
		defer surface.Close()

		return machine.Run(surface, frameFn)
	},
}

func init() {
	runCmd.Flags().StringVarP(&flagScript, "script", "x", "", "Lua script driving the machine")
	runCmd.Flags().StringVarP(&flagImage, "image", "i", "", "NIM or PNG image loaded into Layer 2")
	rootCmd.AddCommand(runCmd)
}
