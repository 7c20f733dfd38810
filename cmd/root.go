package cmd

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/queuesim/queuesim/metrics"
	sim "github.com/queuesim/queuesim/sim"
	"github.com/queuesim/queuesim/sim/analytic"
)

var (
	// CLI flags for the simulation run
	logLevel         string  // Log verbosity level
	numEntities      int     // Number of arrivals to simulate
	meanInterarrival float64 // Mean interarrival gap (minutes)
	meanService      float64 // Mean service duration (minutes)
	servers          int     // Number of service counters
	seed             int64   // Seed for the run's random sub-streams
	scenarioPath     string  // Optional YAML scenario file

	// CLI flags for Prometheus observability
	metricsAddr string // Address to expose metrics on (e.g., :9090)
	pushURL     string // Pushgateway URL to push metrics to
	wait        bool   // Keep the process alive after the run for scraping

	// CLI flags for the analytic model
	arrivalRate float64 // λ, arrivals per minute
	serviceRate float64 // μ, services per minute per counter

	// CLI flags for sweeps
	serversFrom int
	serversTo   int
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "queuesim",
	Short: "Discrete-event simulator for queued service flow",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// loadRunConfig builds the run configuration from flags, or from the
// scenario file when --scenario is given.
func loadRunConfig() (sim.Config, []int) {
	if scenarioPath != "" {
		sc, err := sim.LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("Unable to load scenario: %v", err)
		}
		return sc.Config(), sc.SweepServers
	}
	return sim.Config{
		NumEntities:      numEntities,
		MeanInterarrival: meanInterarrival,
		MeanService:      meanService,
		Servers:          servers,
		Seed:             seed,
	}, nil
}

// serveMetrics exposes the Prometheus registry when --metrics-addr is set.
func serveMetrics() {
	if metricsAddr == "" {
		return
	}
	go func() {
		http.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
		logrus.Infof("metrics server listening on %s/metrics", metricsAddr)
		if err := http.ListenAndServe(metricsAddr, nil); err != nil {
			logrus.Errorf("metrics server error: %v", err)
		}
	}()
}

// pushMetrics pushes the registry to a Pushgateway when --push-url is set.
func pushMetrics() {
	if pushURL == "" {
		return
	}
	if err := push.New(pushURL, "queuesim").Gatherer(metrics.Registry).Push(); err != nil {
		logrus.Errorf("pushing metrics to %s: %v", pushURL, err)
	}
}

// runCmd executes a single simulation using parameters from CLI flags or a
// scenario file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one discrete-event simulation",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _ := loadRunConfig()
		serveMetrics()

		res, err := sim.Run(cfg)
		if err != nil {
			logrus.Fatalf("run failed: %v", err)
		}
		sum, err := sim.Summarize(res, cfg.Servers)
		if err != nil {
			logrus.Fatalf("summarizing run: %v", err)
		}
		metrics.ObserveRun(sum, res)

		fmt.Print(RenderSummary(sum))
		fmt.Print(RenderWaitHistogram(res))

		pushMetrics()
		if wait {
			logrus.Info("run complete; waiting for metric scraping (ctrl-c to exit)")
			select {}
		}
	},
}

// steadyCmd evaluates the analytic M/M/c model only.
var steadyCmd = &cobra.Command{
	Use:   "steady",
	Short: "Compute M/M/c (Erlang-C) steady-state metrics",
	Run: func(cmd *cobra.Command, args []string) {
		ss, err := analytic.SteadyState(arrivalRate, serviceRate, servers)
		if errors.Is(err, analytic.ErrUnstable) {
			fmt.Printf("System is unstable: %v\nNo steady state exists; add servers or reduce the arrival rate.\n", err)
			return
		}
		if err != nil {
			logrus.Fatalf("steady state failed: %v", err)
		}
		fmt.Print(RenderSteadyState(ss))
	},
}

// compareCmd runs the DES and the analytic model on the same parameters and
// prints them side by side. An unstable analytic model suppresses only the
// analytic column; the simulation still runs and is reported.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare simulation output against the analytic model",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, _ := loadRunConfig()

		res, err := sim.Run(cfg)
		if err != nil {
			logrus.Fatalf("run failed: %v", err)
		}
		sum, err := sim.Summarize(res, cfg.Servers)
		if err != nil {
			logrus.Fatalf("summarizing run: %v", err)
		}
		metrics.ObserveRun(sum, res)

		ss, err := analytic.SteadyState(cfg.ArrivalRate(), cfg.ServiceRate(), cfg.Servers)
		if errors.Is(err, analytic.ErrUnstable) {
			fmt.Print(RenderSummary(sum))
			fmt.Printf("Analytic model: unstable (%v); no steady-state column.\n", err)
			return
		}
		if err != nil {
			logrus.Fatalf("steady state failed: %v", err)
		}
		fmt.Print(RenderComparison(sum, ss))
	},
}

// sweepCmd runs independent simulations over a range of server counts.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep the simulation over server counts",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, counts := loadRunConfig()
		if len(counts) == 0 {
			if serversFrom <= 0 || serversTo < serversFrom {
				logrus.Fatalf("invalid sweep range [%d, %d]", serversFrom, serversTo)
			}
			for c := serversFrom; c <= serversTo; c++ {
				counts = append(counts, c)
			}
		}
		serveMetrics()

		points, err := sim.RunSweep(cfg, counts)
		if err != nil {
			logrus.Fatalf("sweep failed: %v", err)
		}
		for _, p := range points {
			metrics.ObserveRun(p.Summary, p.Result)
		}
		fmt.Print(RenderSweep(points))

		pushMetrics()
		if wait {
			logrus.Info("sweep complete; waiting for metric scraping (ctrl-c to exit)")
			select {}
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	for _, c := range []*cobra.Command{runCmd, compareCmd, sweepCmd} {
		c.Flags().IntVar(&numEntities, "entities", 200, "Number of arrivals to simulate")
		c.Flags().Float64Var(&meanInterarrival, "mean-interarrival", 4, "Mean interarrival gap in minutes")
		c.Flags().Float64Var(&meanService, "mean-service", 5, "Mean service duration in minutes")
		c.Flags().Int64Var(&seed, "seed", 42, "Seed for the run's random sub-streams")
		c.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (overrides parameter flags)")
		c.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Address to expose Prometheus metrics (e.g., :9090)")
		c.Flags().StringVar(&pushURL, "push-url", "", "Pushgateway URL to push metrics to (e.g., http://localhost:9091)")
		c.Flags().BoolVar(&wait, "wait", false, "Keep process running after completion to allow for metric scraping")
	}
	runCmd.Flags().IntVar(&servers, "servers", 2, "Number of service counters")
	compareCmd.Flags().IntVar(&servers, "servers", 2, "Number of service counters")

	sweepCmd.Flags().IntVar(&serversFrom, "servers-from", 1, "First server count of the sweep")
	sweepCmd.Flags().IntVar(&serversTo, "servers-to", 5, "Last server count of the sweep")

	steadyCmd.Flags().Float64Var(&arrivalRate, "arrival-rate", 0.25, "Arrival rate λ in entities per minute")
	steadyCmd.Flags().Float64Var(&serviceRate, "service-rate", 0.2, "Service rate μ per counter in entities per minute")
	steadyCmd.Flags().IntVar(&servers, "servers", 2, "Number of service counters")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(steadyCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(sweepCmd)
}
