package crafty

import (
	"go.uber.org/zap"
)

// NewLogger builds the Debug-level *zap.Logger the Scanner and Interpreter
// accept for optional tracing. It never writes to the program's own
// standard output stream: scanner/evaluator tracing goes to stderr via
// zap's development console encoder, keeping Print statement output clean
// for scripts that pipe crafty's stdout.
//
// A program that never asks for debug tracing should pass a no-op logger
// instead of calling this constructor (see zap.NewNop, used as the default
// throughout this package).
func NewLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
