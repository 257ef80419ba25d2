package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-seis/internal/config"
	ilog "github.com/cwbudde/algo-seis/internal/log"
)

// app carries state shared by the subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "seisattr",
		Short: "Ricker wavelet synthesis and rock-physics attributes from well logs",
		Long: `seisattr runs two independent pipelines:

  wavelet      builds a Ricker wavelet, checks its spectral peak and plots it
  rockphysics  derives Vp, Vs, Vp/Vs, acoustic impedance and Poisson's ratio
               from a well log and a petrophysical log, exports them as CSV
               and plots three depth tracks

Parameters default to the values of the Well B study and can be overridden
with a YAML file (--config) or per-command flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newWaveletCmd(a), newRockPhysicsCmd(a))
	return root
}

func (a *app) setup() error {
	a.cfg = config.Default()
	if a.configPath != "" {
		cfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	logger, err := ilog.New(a.verbose || a.cfg.Logging.Debug)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}
