// cmdwatch.go - Run the machine with a watched image directory

package main

import (
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "open the machine window and watch a directory for images",
	Long: `Watch opens the machine window with Layer 2 enabled and loads any
NIM or PNG file written into the given directory straight into the
Layer 2 banks. Export from an image editor into the directory and the
result appears on the next frame.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		boilerPlate()
		machine := NewMachine(machineConfigFromFlags())
		defer machine.Close()
		machine.Out(NX_PORT_LAYER2_PAGING, NX_LAYER2_ENABLE_BIT)

		watcher, err := NewImageWatcher(machine, args[0])
		if err != nil {
			return err
		}
		defer watcher.Stop()

		// Loads are queued here and applied on the run loop's
		// goroutine, keeping all machine mutation single threaded.
		loads := make(chan string, 8)
		if err := watcher.Start(func(path string) error {
			select {
			case loads <- path:
			default:
			}
			return nil
		}); err != nil {
			return err
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
		if err := surface.Start(); err != nil {
			return err
		}
		defer surface.Close()

		return machine.Run(surface, func(uint64) error {
			select {
			case path := <-loads:
				return machine.LoadLayer2Image(path)
			default:
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
