// Package cli implements the command-line interface over the knowledge
// base connectors, the quality engine, and the source registry.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/stratkb/internal/adapters/driven/config/file"
	"github.com/custodia-labs/stratkb/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/stratkb/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/stratkb/internal/connectors"
	"github.com/custodia-labs/stratkb/internal/core/domain"
	"github.com/custodia-labs/stratkb/internal/core/ports/driven"
	"github.com/custodia-labs/stratkb/internal/core/ports/driving"
	"github.com/custodia-labs/stratkb/internal/core/services"
	"github.com/custodia-labs/stratkb/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired by initServices and swapped out in tests.
var (
	connectorSet    *connectors.Set
	qualityService  driving.QualityService
	registryService driving.SourceRegistry
	schedulerStore  driven.SchedulerStore
	configStore     driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "stratkb",
	Short: "Strategy knowledge base CLI",
	Long: `StratKB manages a business-strategy knowledge base: megatrends,
value templates, hidden needs, success cases, technology seeds,
partners, short-term trends, and competitors.

Entities are stored locally, scored for data quality, and searchable
from the command line or over MCP.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// Execute wires the services and runs the root command.
func Execute() error {
	// Services are wired before cobra parses flags; honour --verbose
	// for wiring-time diagnostics too.
	for _, arg := range os.Args[1:] {
		if arg == "--verbose" || arg == "-v" {
			logger.SetVerbose(true)
		}
	}

	if err := initServices(); err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	return rootCmd.Execute()
}

// initServices builds the driven adapters and the core services behind
// the commands. The storage backend is selected by the "storage.backend"
// config key: "memory" or "sqlite" (the default).
func initServices() error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	configStore = cfg

	backend := cfg.GetString("storage.backend")
	if backend == "" {
		backend = "sqlite"
	}
	logger.Debug("storage backend: %s", backend)

	switch backend {
	case "memory":
		initMemoryServices()
	case "sqlite":
		if err := initSQLiteServices(cfg.GetString("storage.dir")); err != nil {
			return err
		}
	default:
		return fmt.Errorf("storage backend %q: %w", backend, domain.ErrUnsupportedType)
	}

	return nil
}

func initMemoryServices() {
	connectorSet = connectors.NewSet(connectors.Stores{
		Megatrends:     memory.NewRecordStore[domain.Megatrend](),
		ValueTemplates: memory.NewRecordStore[domain.ValueTemplate](),
		HiddenNeeds:    memory.NewRecordStore[domain.HiddenNeed](),
		SuccessCases:   memory.NewRecordStore[domain.SuccessCase](),
		Seeds:          memory.NewRecordStore[domain.Seed](),
		Partners:       memory.NewRecordStore[domain.Partner](),
		Trends:         memory.NewRecordStore[domain.Trend](),
		Competitors:    memory.NewRecordStore[domain.Competitor](),
		Analyses:       memory.NewAnalysisStore(),
	})
	qualityService = services.NewQualityService(connectorSet.QualityReporters(), memory.NewQualityStore())
	registryService = services.NewRegistryService(memory.NewMetadataStore())
	schedulerStore = memory.NewSchedulerStore()
}

func initSQLiteServices(dataDir string) error {
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening sqlite store: %w", err)
	}

	connectorSet = connectors.NewSet(connectors.Stores{
		Megatrends:     sqlite.NewRecordStore[domain.Megatrend](store, "megatrends"),
		ValueTemplates: sqlite.NewRecordStore[domain.ValueTemplate](store, "value-templates"),
		HiddenNeeds:    sqlite.NewRecordStore[domain.HiddenNeed](store, "hidden-needs"),
		SuccessCases:   sqlite.NewRecordStore[domain.SuccessCase](store, "success-cases"),
		Seeds:          sqlite.NewRecordStore[domain.Seed](store, "seeds"),
		Partners:       sqlite.NewRecordStore[domain.Partner](store, "partners"),
		Trends:         sqlite.NewRecordStore[domain.Trend](store, "trends"),
		Competitors:    sqlite.NewRecordStore[domain.Competitor](store, "competitors"),
		Analyses:       store.AnalysisStore(),
	})
	qualityService = services.NewQualityService(connectorSet.QualityReporters(), store.QualityStore())
	registryService = services.NewRegistryService(store.MetadataStore())
	schedulerStore = store.SchedulerStore()

	return nil
}
