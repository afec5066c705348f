package main

import (
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/open-control-systems/monoclock/components/core"
	"github.com/open-control-systems/monoclock/components/http/htcore"
	"github.com/open-control-systems/monoclock/components/system/syscore"
	"github.com/open-control-systems/monoclock/components/system/sysprom"
	"github.com/open-control-systems/monoclock/components/system/syssched"
)

type clockFactory func() *syscore.Clock

func newDefaultClock() *syscore.Clock {
	return syscore.NewClock(syscore.NewDefaultSource())
}

func newRootCommand() *cobra.Command {
	return newRootCommandWithClock(newDefaultClock)
}

func newRootCommandWithClock(newClock clockFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "monoclock",
		Short:         "Strictly increasing millisecond clock",
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newNowCommand(newClock),
		newSourceCommand(newClock),
		newWatchCommand(newClock),
		newServeCommand(newClock),
	)

	return cmd
}

func newNowCommand(newClock clockFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the current monotonic time in milliseconds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ms, err := newClock().NowMs()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), ms)

			return err
		},
	}
}

func newSourceCommand(newClock clockFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "source",
		Short: "Print the time source backing the clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clock := newClock()

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "kind=%s monotonic=%t\n",
				clock.SourceKind(), clock.IsMonotonic())

			return err
		},
	}
}

func newWatchCommand(newClock clockFactory) *cobra.Command {
	var (
		interval time.Duration
		count    int
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Periodically print the monotonic time in milliseconds",
		Example: `  # Print 10 readings, one every 100ms
  monoclock watch --interval 100ms --count 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interval <= 0 {
				return fmt.Errorf("interval should be positive: %v", interval)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(),
				syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			task := newWatchTask(newClock(), cmd.OutOrStdout(), count)

			runner := syssched.NewAsyncTaskRunner(ctx, task,
				&core.LogErrorHandler{Name: "watch-task"},
				syssched.AsyncTaskRunnerParams{
					UpdateInterval: interval,
				})
			runner.Start()

			<-runner.Done()

			return runner.Stop()
		},
	}

	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Millisecond*100,
		"interval between readings")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of readings, 0 means unlimited")

	return cmd
}

func newServeCommand(newClock clockFactory) *cobra.Command {
	params := htcore.ServerParams{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the monotonic clock and its metrics over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(),
				syscall.SIGHUP,
				syscall.SIGINT,
				syscall.SIGTERM,
				syscall.SIGQUIT)
			defer cancel()

			fanoutCloser := &core.FanoutCloser{}
			defer fanoutCloser.Close()

			server, err := newClockServer(newClock(), params)
			if err != nil {
				return err
			}
			fanoutCloser.Add("http-server", server)

			server.Start()

			<-ctx.Done()

			return nil
		},
	}

	cmd.Flags().StringVar(&params.Host, "host", "0.0.0.0", "HTTP server host")
	cmd.Flags().IntVarP(&params.Port, "port", "p", 8080, "HTTP server port, 0 means random")

	return cmd
}

func newClockServer(clock *syscore.Clock, params htcore.ServerParams) (*htcore.Server, error) {
	registry := prometheus.NewRegistry()
	if err := registry.Register(sysprom.NewClockCollector(clock)); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/api/v1/system/monotonic", htcore.NewMonotonicClockHandler(clock))
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return htcore.NewServer(mux, params)
}
