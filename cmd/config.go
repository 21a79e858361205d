package cmd

import (
	"github.com/spf13/viper"

	"fsbench/src/bench"
)

func settingDefaultConfig() {
	// Enable automatic environment variable binding
	viper.AutomaticEnv()

	// Map environment variables to Viper keys for the benchmark engine
	viper.BindEnv("bench.threads", "FSBENCH_THREADS")
	viper.BindEnv("bench.queue_depth", "FSBENCH_QUEUE_DEPTH")
	viper.BindEnv("bench.read_buffer", "FSBENCH_READ_BUFFER")
	viper.BindEnv("bench.progress", "FSBENCH_PROGRESS")

	// Map environment variables to Viper keys for logging
	viper.BindEnv("log.level", "FSBENCH_LOG_LEVEL")

	// Set default values for the benchmark engine
	viper.SetDefault("bench.threads", 1)
	viper.SetDefault("bench.queue_depth", bench.DefaultQueueDepth)
	viper.SetDefault("bench.read_buffer", bench.DefaultBufferSize)

	// Set default values for logging
	viper.SetDefault("log.level", "debug")
}
