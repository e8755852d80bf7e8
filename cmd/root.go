package cmd

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rprtr258/poolreuse/flow/pool"
	reducer "github.com/rprtr258/poolreuse/pkg"
)

const (
	envWorkers = "POOLREUSE_WORKERS"
	envBackend = "POOLREUSE_BACKEND"
)

var (
	backendName string
	workers     int
	verbose     bool

	backend pool.Backend
	rootCmd = cobra.Command{
		Use:          "poolreuse",
		Short:        "Doubles 1..10 and sums on a worker pool, either owned per call or injected by the caller.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
				return errors.Wrap(err, "load .env")
			}
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
			if err := envDefaults(cmd); err != nil {
				return err
			}
			if workers < 1 {
				return errors.Wrapf(pool.ErrInvalidSize, "workers=%d", workers)
			}
			b, err := pool.ParseBackend(backendName)
			if err != nil {
				return err
			}
			backend = b
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&backendName, "backend", "b", string(pool.Native), "worker pool implementation: native or pond (env "+envBackend+")")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", reducer.DefaultWorkers, "number of pool workers (env "+envWorkers+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log pool lifecycle")
}

// envDefaults applies env vars to flags not given on the command line.
func envDefaults(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if v, ok := os.LookupEnv(envBackend); ok && !flags.Changed("backend") {
		backendName = v
	}
	if v, ok := os.LookupEnv(envWorkers); ok && !flags.Changed("workers") {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "parse %s", envWorkers)
		}
		workers = n
	}
	return nil
}

func newPool(size int) (pool.Pool, error) {
	return pool.New(backend, size, pool.WithLogger(log.WithField("cmd", "poolreuse")))
}

func Execute() {
	start := time.Now()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
	log.Infof("Time elapsed %v", time.Since(start))
}
