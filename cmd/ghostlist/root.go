// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is printed by the version command and --version.
const version = "v0.1.0"

// app holds the state shared by the subcommands of one invocation.
type app struct {
	configFile string
	cfg        *viper.Viper
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:     "ghostlist",
		Short:   "Run list and cursor scripts on a branded linked list",
		Version: version,
		Long: `ghostlist executes a sequence of list and cursor operations on a
doubly linked list of strings and prints popped and removed values,
followed by the final contents of the list.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			cfg, err := loadConfig(a.configFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./ghostlist.yaml)")

	root.AddCommand(newRunCmd(a))
	root.AddCommand(versionCmd)
	return root
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the ghostlist version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "ghostlist", version)
	},
}
