// Package config owns the persisted configuration: the TOML command
// document (loaded leniently in two passes, saved deterministically and
// atomically through the store) and the viper-backed tool settings.
//
// # Document shape
//
//	[commands.test]
//	default_key = "cargo-test"
//
//	[commands.test.entries.cargo-test]
//	command = "test"
//	type = "cargo"
//	params = ["--workspace"]
//
// Every entry field except command is optional and defaults to its zero
// value. Anomalies a hand edit can introduce (an entry without a
// command, a default_key naming nothing) are repaired at load time and
// reported as Warnings; only unparseable TOML fails a load.
package config
