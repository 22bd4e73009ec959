package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/confirm/internal/application/usecase"
	"github.com/bnema/confirm/internal/cli/styles"
	"github.com/bnema/confirm/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
	Long:  `Show where the configuration lives, the effective values, or its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as JSON",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.toml",
	Args:  cobra.NoArgs,
	RunE:  runConfigSchema,
}

var configKeysSection string

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Describe every config key with its default",
	Args:  cobra.NoArgs,
	RunE:  runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeysCmd)
	configKeysCmd.Flags().StringVar(&configKeysSection, "section", "", "only list keys of this section")
}

// runConfigPath works without loading the config, so it never creates the file.
func runConfigPath(_ *cobra.Command, _ []string) error {
	path := filepath.Join(configDir, "config.toml")
	if configDir == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}

	_, statErr := os.Stat(path)
	renderer := styles.NewRenderer(styles.NewTheme(nil))
	fmt.Println(renderer.RenderConfigPath(path, statErr == nil))
	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(app.Config)
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	schema, err := config.Schema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}
	_, err = os.Stdout.Write(append(schema, '\n'))
	return err
}

func runConfigKeys(_ *cobra.Command, _ []string) error {
	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	out, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}

	renderer := styles.NewRenderer(styles.NewTheme(nil))
	fmt.Print(renderer.RenderConfigKeys(out.Keys))
	return nil
}
