package cli

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Decide which icon a file or folder gets"
	MsgResolveShort    = "Show the icon chosen for paths"
	MsgRulesShort      = "Inspect icon rules"
	MsgRulesListShort  = "List the rules in evaluation order"
	MsgRulesShowShort  = "Show one rule and its conditions"
	MsgValidateShort   = "Check settings files and icon packs"
	MsgPackShort       = "Share user rules as icon packs"
	MsgPackExportShort = "Write the user rules as an icon pack"
	MsgPackImportShort = "Install an icon pack"
	MsgPackListShort   = "List installed icon packs"
	MsgOverridesShort  = "List host icon overrides"
	MsgWatchShort      = "Reload rules when settings change"
	MsgConfigShort     = "Manage settings files"
	MsgConfigInitShort = "Write a commented settings file"
	MsgConfigPathShort = "Print settings locations"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Output
	MsgNoIcon         = "no icon"
	MsgNoRules        = "No rules."
	MsgNoPacks        = "No icon packs installed."
	MsgNoOverrides    = "No icon overrides."
	MsgValid          = "%s: ok\n"
	MsgInvalid        = "%s: %v\n"
	MsgPackInstalled  = "Installed icon pack %q (%d rules) to %s\n"
	MsgPackExported   = "Exported %d rules to %s\n"
	MsgConfigWritten  = "Wrote %s\n"
	MsgStats          = "\n%d lookups, %d checks done, %d saved (%.1f%%)\n"
	MsgWatching       = "Watching settings for %s, press Ctrl+C to stop\n"
	MsgSettingsLayout = "settings: %s\nproject:  %s\npacks:    %s\n"

	// Errors
	MsgErrRuleNotFound = "no rule with id %q"
	MsgErrFileExists   = "%s already exists, use --force to replace it"
	MsgErrInvalidFiles = "%d file(s) failed validation"
	MsgErrNoUserRules  = "there are no user rules to export"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagProject  = "Project root (default: current directory)"
	MsgFlagKind     = "Rule kind: file, folder or icon (default: from the filesystem)"
	MsgFlagStats    = "Print lookup statistics"
	MsgFlagNewUI    = "Prefer new UI icon variants"
	MsgFlagOut      = "Write to this file instead of standard output"
	MsgFlagForce    = "Replace existing files"
	MsgFlagAll      = "Include disabled rules"
	MsgFlagDesc     = "Pack description"
	MsgFlagProjLvl  = "Write the project-level file instead"
	MsgFlagManDir   = "Directory to write man pages to"
	MsgFlagDisabled = "Disable rule ids for this run"
	MsgFlagIgnore   = "Ignored pattern for this run, replacing the configured one"
)

// MsgUsageTemplate is the root help layout.
const MsgUsageTemplate = `{{boldUpper "Usage"}}:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

{{boldUpper "Aliases"}}:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

{{boldUpper "Examples"}}:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}{{if eq (len .Groups) 0}}

{{boldUpper "Commands"}}:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{else}}{{range $group := .Groups}}

{{bold .Title}}{{range $cmds}}{{if (and (eq .GroupID $group.ID) (or .IsAvailableCommand (eq .Name "help")))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

{{boldUpper "Flags"}}:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

{{boldUpper "Global Flags"}}:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

const msgRootLong = `iconrules decides which icon a file or folder of a project gets.

Bundled rules cover common build files, tools and folders. User rules from
the settings file and installed icon packs are tried first. A project can
carry its own .iconrules.toml to add rules or override the IDE settings.`

const msgResolveExample = `  iconrules resolve package.json src/app
  iconrules resolve --kind folder .github/workflows
  iconrules resolve --project ~/code/app --stats $(git ls-files)`
