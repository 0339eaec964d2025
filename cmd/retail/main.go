package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fivetwenty-io/retail-samples/cmd/retail/commands"
	"github.com/fivetwenty-io/retail-samples/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "retail",
	Short: "Retail API tutorial samples",
	Long: `A command-line interface running the Retail API tutorials.

It searches the product catalog with facets and ordering, creates and deletes
products, updates inventory and removes the resources created for testing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.retail/config.yml)")
	rootCmd.PersistentFlags().StringP("project", "p", "", "Google Cloud project number (PROJECT_NUMBER)")
	rootCmd.PersistentFlags().StringP("bucket", "b", "", "Cloud Storage bucket name (BUCKET_NAME)")
	rootCmd.PersistentFlags().String("endpoint", "", "Retail API endpoint")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (text, json, yaml, table)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "timeout of each API request")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyProjectNumber, rootCmd.PersistentFlags().Lookup("project"))
	_ = viper.BindPFlag(config.KeyBucketName, rootCmd.PersistentFlags().Lookup("bucket"))
	_ = viper.BindPFlag(config.KeyEndpoint, rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = viper.BindPFlag(config.KeyOutput, rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyTimeout, rootCmd.PersistentFlags().Lookup("timeout"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewProductsCommand())
	rootCmd.AddCommand(commands.NewInventoryCommand())
	rootCmd.AddCommand(commands.NewBucketsCommand())
	rootCmd.AddCommand(commands.NewCleanupCommand())
}

func initConfig() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	if err := config.Configure(viper.GetViper()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if err := config.ReadConfigFile(viper.GetViper(), cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
