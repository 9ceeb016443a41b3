// Copyright 2026 The jsonnav Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lazytree/jsonnav/document"
)

var (
	documentsOpened = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jsonnav_documents_opened_total",
		Help: "Total number of documents opened across all requests.",
	})
	parseDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name: "jsonnav_parse_duration_seconds",
		Help: "Time spent reading, parsing and dumping a document for one uncached /dump request.",
	})
	nodesTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "jsonnav_nodes_total",
		Help: "Node count of the most recently opened document.",
	})
)

func newServeCmd(cfg *config, log *logrus.Logger) *cobra.Command {
	var addr string
	var cacheSize int

	cmd := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve GET /dump?path=... over HTTP, with Prometheus metrics on /metrics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			enc, err := resolveEncoding(cmd.Flag("encoding").Value.String())
			if err != nil {
				return err
			}

			cache, err := newDumpCache(cacheSize)
			if err != nil {
				return err
			}

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			mux.HandleFunc("/dump", func(w http.ResponseWriter, r *http.Request) {
				path := r.URL.Query().Get("path")
				if path == "" {
					path = "/"
				}

				digestKey, cached, ok, err := cache.get(args[0])
				if err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
				if ok {
					w.Write([]byte(cached))
					return
				}

				start := time.Now()
				var out string
				err = document.OpenFile(args[0], enc, func(d *document.Document) error {
					documentsOpened.Inc()
					nodesTotal.Set(float64(d.Size()))
					var derr error
					out, derr = d.Dump(path, document.DefaultRenderer(cfg.indent()))
					return derr
				})
				parseDuration.Observe(time.Since(start).Seconds())
				if err != nil {
					var docErr *document.Error
					status := http.StatusInternalServerError
					if errors.As(err, &docErr) && docErr.Code == document.InvalidPathErr {
						status = http.StatusNotFound
					}
					http.Error(w, err.Error(), status)
					return
				}

				cache.put(digestKey, out)
				w.Write([]byte(out))
			})

			srv := &http.Server{Addr: addr, Handler: mux}
			log.Infof("jsonnav serve listening on %s", addr)
			return srv.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&cacheSize, "cache-size", 128, "number of dumps to keep cached by content digest")
	return cmd
}
