package telemetry

import (
	"go.uber.org/zap"
)

// Logger is the global logger instance
var Logger *zap.Logger

func init() {
	config := zap.NewProductionConfig()
	// stdout carries the tools' own output; diagnostics go to stderr
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	var err error
	Logger, err = config.Build()
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
}
