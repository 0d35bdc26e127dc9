// Package config loads cropfuzz CLI settings from YAML with environment
// overrides (CROPFUZZ_PROFILE, CROPFUZZ_LOG_LEVEL, CROPFUZZ_WORKERS, CROPFUZZ_OUTPUT).
package config
