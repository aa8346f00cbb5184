package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"galaxy-audit/internal/app"
)

type depsOptions struct {
	Dir         string
	Output      string
	NoInventory bool
}

func newDepsCommand() *cobra.Command {
	opts := depsOptions{}
	cmd := &cobra.Command{
		Use:   "deps",
		Short: "Identify and resolve file-defined collection dependencies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDeps(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Directory to search from (default: current directory)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the report to this file instead of stdout")
	cmd.Flags().BoolVar(&opts.NoInventory, "no-inventory", false, "Skip the installed-collection lookup")

	_ = viper.BindPFlag("dir", cmd.Flags().Lookup("dir"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("no_inventory", cmd.Flags().Lookup("no-inventory"))

	return cmd
}

func runDeps(cmd *cobra.Command, opts depsOptions) error {
	dir := resolveString(cmd, opts.Dir, "dir", "dir")
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = cwd
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	service := newAppService()
	results, err := service.IdentifyFileDefinedDependencies(cmd.Context(), app.IdentifyRequest{
		WorkingDirectory: absDir,
		SkipInventory:    resolveBool(cmd, opts.NoInventory, "no_inventory", "no-inventory"),
	})
	if err != nil {
		return err
	}

	if output := resolveString(cmd, opts.Output, "output", "output"); output != "" {
		if err := service.Reports.WriteDependencyReport(output, results); err != nil {
			return err
		}
		fmt.Printf("report written: %s\n", output)
		return nil
	}

	encoded, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func newAppService() app.Service {
	return app.NewService(app.Options{
		RegistryBaseURL:    viper.GetString("registry_url"),
		HTTPTimeoutSeconds: viper.GetInt("http_timeout_seconds"),
	})
}
