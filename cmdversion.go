// cmdversion.go - Version command

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

const nxmockVersion = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nxmock %s\n", nxmockVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
