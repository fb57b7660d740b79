/*
Package monitoring provides performance monitoring and metrics collection.

# Overview

This package implements Prometheus-based metrics collection for the
backend, tracking HTTP requests, service tool calls, safety verdicts and
WebSocket connections.

# Usage

	// Create metrics collector
	metrics := monitoring.NewMetrics()

	// Add middleware to Gin router
	router.Use(monitoring.Middleware(metrics))

	// Time service calls
	timer := monitoring.NewTimer(metrics, "safety", "validate")
	// ... perform operation ...
	timer.Stop("success")

	// Record classifier outcomes
	metrics.RecordVerdict("High", false)

# Metrics Endpoint

Expose metrics via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
