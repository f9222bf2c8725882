// Package logging provides structured logging for the runr CLI using slog.
//
// The package supports both text and JSON output formats, configurable
// log levels, and helpers for testing. The text handler colorizes on
// capable terminals and masks secret-looking values, since stored
// command environments may carry tokens.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("config saved", "path", path)
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
//
// # Quiet Mode
//
// Use [NewDiscard] when log output should be suppressed entirely.
package logging
