// Package config provides 12-factor configuration for the pyjs tool.
//
// Configuration is loaded from environment variables with sensible defaults;
// CLI flags can override individual values for development flexibility.
//
// Configuration Sections:
//   - Sandbox: evaluation engine, node binary, per-evaluation timeout
//   - Translator: external translator command
//   - Logging: log level and output format
//
// Environment Variables:
//   - PYJS_ENGINE, PYJS_NODE_BIN, PYJS_EVAL_TIMEOUT
//   - PYJS_TRANSLATOR
//   - LOG_LEVEL, LOG_DEV
package config
