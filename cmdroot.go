// cmdroot.go - Root command and shared flags

package main

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	flagMemMap   string
	flagScale    int
	flagTransReg bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "nxmock",
	Short: "bank-switched 8-bit computer mock",
	Long: `NXMock models the memory paging, I/O port decoding and two-layer
video pipeline of a bank-switched 8-bit home computer, with a PNG/NIM
image codec for getting pictures in and out.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose || viper.GetBool("verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagMemMap, "map", "m", "1mb", "memory map size (128k or 1mb)")
	pf.IntVarP(&flagScale, "scale", "s", 2, "initial window scale factor")
	pf.BoolVar(&flagTransReg, "transparency-register", true, "enable the transparency register")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "verbose logging")

	viper.SetEnvPrefix("nxmock")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	viper.SetConfigName("nxmock")
	viper.AddConfigPath(".")
	viper.ReadInConfig()
	viper.BindPFlag("map", pf.Lookup("map"))
	viper.BindPFlag("scale", pf.Lookup("scale"))
	viper.BindPFlag("transparency-register", pf.Lookup("transparency-register"))
	viper.BindPFlag("verbose", pf.Lookup("verbose"))
}

// machineConfigFromFlags resolves the shared flags into a config.
func machineConfigFromFlags() MachineConfig {
	memMap := Map1MB
	if strings.EqualFold(viper.GetString("map"), "128k") {
		memMap = Map128K
	}
	return MachineConfig{
		Map:                  memMap,
		TransparencyRegister: viper.GetBool("transparency-register"),
		Scale:                viper.GetInt("scale"),
	}
}
