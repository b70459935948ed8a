package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hashlife/pkg/quadtree"
	"hashlife/pkg/rle"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newServeMetricsCmd() *cobra.Command {
	var (
		inPath    string
		addr      string
		interval  time.Duration
		cacheSize int64
	)

	cmd := &cobra.Command{
		Use:   "serve-metrics",
		Short: "Continuously step a pattern, exposing Prometheus metrics until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := os.ReadFile(inPath)
			if err != nil {
				return err
			}
			uni, err := rle.Read(string(src))
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			metrics := quadtree.NewMetrics(reg)
			uni.Metrics = metrics

			cache, err := quadtree.NewCache(cacheSize, metrics)
			if err != nil {
				return err
			}
			uni.Cache.Close()
			uni.Cache = cache
			defer cache.Close()

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			srv := &http.Server{Addr: addr, Handler: mux}
			go func() {
				_ = srv.ListenAndServe()
			}()
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				_ = srv.Shutdown(ctx)
			}()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if err := uni.Simulate(1); err != nil {
						return err
					}
				}
			}
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "input RLE pattern file (required)")
	cmd.Flags().StringVar(&addr, "addr", ":9090", "address to serve /metrics on")
	cmd.Flags().DurationVar(&interval, "interval", 100*time.Millisecond, "time between generations")
	cmd.Flags().Int64Var(&cacheSize, "cache-size", 1<<20, "maximum result cache entries")
	cmd.MarkFlagRequired("in")

	return cmd
}
