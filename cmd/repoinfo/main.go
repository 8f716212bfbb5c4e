package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-repo-info/internal/config"
	"github.com/MKhiriev/go-repo-info/internal/generator"
	"github.com/MKhiriev/go-repo-info/internal/logger"
	"github.com/MKhiriev/go-repo-info/internal/render"
	"github.com/spf13/cobra"
)

// set by linker flags during CI/CD
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// CLI flags
var (
	sourceFlag    string
	outputFlag    string
	packageFlag   string
	buildUserFlag string
	configFlag    string
)

// rootCmd is the main Cobra command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "repoinfo",
	Short: "Build and repository metadata snapshot generator",
	Long: `repoinfo inspects the build host, the source tree, and its
version-control system, and emits the collected metadata as a Go source
file of named string constants compiled into the consuming program.

It is meant to run as a build step immediately before compilation:

  repoinfo sync --source . --output repoinfo/repoinfo.go

Missing facts (an untracked tree, an unreadable host identity) never fail
the run; the affected fields are emitted as "unknown".`,
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Take a metadata snapshot and install the artifact",
	RunE:  runSync,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Take a metadata snapshot and print it without writing anything",
	RunE:  runShow,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information of the repoinfo tool itself",
	Run: func(_ *cobra.Command, _ []string) {
		printBuildInfo()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&sourceFlag, "source", "s", "", "Source tree root (default \".\")")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Artifact path (default \"repoinfo/repoinfo.go\")")
	rootCmd.PersistentFlags().StringVar(&packageFlag, "package", "", "Artifact package name (default: output directory name)")
	rootCmd.PersistentFlags().StringVar(&buildUserFlag, "build-user", "", "Build identity, conventionally \"name <email>\"")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "JSON or YAML config file path")

	rootCmd.AddCommand(syncCmd, showCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// flagConfig maps the bound CLI flags onto a config source for the builder.
func flagConfig() *config.GeneratorConfig {
	return &config.GeneratorConfig{
		Source: config.Source{
			Root: sourceFlag,
		},
		Output: config.Output{
			Path:    outputFlag,
			Package: packageFlag,
		},
		Build: config.Build{
			User: buildUserFlag,
		},
		ConfigFilePath: configFlag,
	}
}

func runSync(cmd *cobra.Command, _ []string) error {
	log := logger.NewLogger("repoinfo-sync")

	cfg, err := config.GetGeneratorConfig(flagConfig())
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return err
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	record, err := generator.NewGenerator(cfg, log).Run(cmd.Context())
	if err != nil {
		log.Error().Err(err).Msg("error emitting snapshot")
		return err
	}

	fmt.Printf("%s -> %s\n", record.RepoHash(), cfg.Output.Path)

	return nil
}

func runShow(cmd *cobra.Command, _ []string) error {
	log := logger.NewLogger("repoinfo-show")

	cfg, err := config.GetGeneratorConfig(flagConfig())
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return err
	}

	record := generator.NewGenerator(cfg, log).Collect(cmd.Context())

	fmt.Println(render.Record(record))

	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
