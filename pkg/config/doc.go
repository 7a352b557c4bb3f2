// Package config loads the IDE-level and project-level settings.
//
// Each settings file is layered with koanf, later layers winning:
//
//  1. embedded defaults (embedded/settings.toml)
//  2. the TOML file itself, when present
//  3. ICONRULES_* environment variables
//  4. programmatic overrides, typically command line flags
//
// The IDE-level file lives at paths.SettingsPath(); the project-level file
// is .iconrules.toml in the project root. Settings.Sources turns the
// result into the inputs of rule set assembly.
package config
