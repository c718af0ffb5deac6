package slurm

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func AddSubmitCommandlineArgs(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String("sbatchCommand", "sbatch", "specify scheduler submission command")
	viper.BindPFlag("sbatchCommand", rootCmd.PersistentFlags().Lookup("sbatchCommand"))

	rootCmd.PersistentFlags().String("decoder", "./decoder.py", "specify decoder executable run by each job")
	viper.BindPFlag("decoder", rootCmd.PersistentFlags().Lookup("decoder"))

	rootCmd.PersistentFlags().Duration("submitTimeout", 0, "per-submission timeout; 0 waits indefinitely")
	viper.BindPFlag("submitTimeout", rootCmd.PersistentFlags().Lookup("submitTimeout"))
}

func LoadCommandlineArgsFromConfigFile(cfgFile string) error {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return fmt.Errorf("[LoadCommandlineArgsFromConfigFile] error getting user home directory: %s", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".bidsbatch")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	err := viper.MergeInConfig()
	if err != nil {
		switch err.(type) {
		case viper.ConfigFileNotFoundError:
			// This only occurs when looking for the default .bidsbatch file and it is not present
			// This is not an error as users don't have to specify it, so do nothing
		case *os.PathError:
			// No config file at all is also fine
		default:
			return fmt.Errorf("[LoadCommandlineArgsFromConfigFile] error reading config file %s: %s", viper.ConfigFileUsed(), err)
		}
	}
	return nil
}

func ExtractCommandlineSubmitDetails() *SubmitDetails {
	submitDetails := &SubmitDetails{}
	viper.Unmarshal(submitDetails)
	return submitDetails
}
