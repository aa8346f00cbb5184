package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type metadataOptions struct {
	RegistryURL string
	Timeout     int
}

func newMetadataCommand() *cobra.Command {
	opts := metadataOptions{}
	cmd := &cobra.Command{
		Use:   "metadata NAME [VERSION]",
		Short: "Look up registry metadata for a collection",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMetadata(cmd, args)
		},
	}

	cmd.Flags().StringVar(&opts.RegistryURL, "registry-url", "", "Registry base URL")
	cmd.Flags().IntVar(&opts.Timeout, "http-timeout", 0, "HTTP timeout in seconds")

	_ = viper.BindPFlag("registry_url", cmd.Flags().Lookup("registry-url"))
	_ = viper.BindPFlag("http_timeout_seconds", cmd.Flags().Lookup("http-timeout"))

	return cmd
}

func runMetadata(cmd *cobra.Command, args []string) error {
	name := args[0]
	version := ""
	if len(args) > 1 {
		version = args[1]
	}

	service := newAppService()
	entries, err := service.RegistriesPackageMetadata(cmd.Context(), name, version)
	if err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
