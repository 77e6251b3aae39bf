// cmdconvert.go - Convert between PNG and NIM

package main

import (
	"fmt"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output>",
	Short: "convert between PNG and NIM images",
	Long: `Convert reads a PNG or NIM image and writes the other format.
PNG input is quantized to the identity palette; NIM input is expanded
through the same palette, with the transparent index written as alpha
zero.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		in, out := args[0], args[1]
		store := FileStore{}
		pal := IdentityPalette()
		transparent := uint8(NX_DEFAULT_LAYER2_TRANSPARENT)

		blob := store.Load(in)
		if blob.Len() == 0 {
			return fmt.Errorf("cannot read %s", in)
		}

		var img []uint8
		var w, h int
		switch strings.ToLower(filepath.Ext(in)) {
		case ".png":
			img, w, h = DecodePNG(blob.Bytes, &pal, transparent)
		case ".nim":
			img, w, h = DecodeNIM(blob.Bytes)
		default:
			return fmt.Errorf("unsupported input format %s", filepath.Ext(in))
		}
		if img == nil {
			return fmt.Errorf("cannot decode %s", in)
		}

		var data []byte
		switch strings.ToLower(filepath.Ext(out)) {
		case ".png":
			data = pngEncodeIndexed(img, w, h, &pal, transparent)
		case ".nim":
			data = EncodeNIM(img, w, h)
		default:
			return fmt.Errorf("unsupported output format %s", filepath.Ext(out))
		}

		dst, err := store.Create(out, len(data))
		if err != nil {
			return err
		}
		copy(dst.Bytes, data)
		if err := store.Unload(dst); err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"input": in, "output": out, "width": w, "height": h,
		}).Info("converted")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
