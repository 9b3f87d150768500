package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"slate/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().
		StringP("path", "p", "", "Destination for the configuration file")
	configInitCmd.Flags().
		Bool("overwrite", false, "Overwrite an existing configuration file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	targetPath, _ := cmd.Flags().GetString("path")
	overwrite, _ := cmd.Flags().GetBool("overwrite")

	target := strings.TrimSpace(targetPath)
	if target == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("determine default config path: %w", err)
		}
		target = defaultPath
	} else {
		expanded, err := config.ExpandPath(target)
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		target = expanded
	}

	if !overwrite {
		if _, err := os.Stat(target); err == nil {
			return fmt.Errorf(
				"config file already exists at %s (use --overwrite to replace it)",
				target,
			)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("check config path: %w", err)
		}
	}

	if err := config.CreateSample(target); err != nil {
		return err
	}

	fmt.Printf("Wrote sample configuration to %s\n", target)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(); err != nil {
		return err
	}
	fmt.Println("Configuration valid")
	return nil
}
