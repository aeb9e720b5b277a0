// Package errors provides the error taxonomy and exit codes for spm-outdated.
//
// Errors fall into two groups:
//
// Fatal errors terminate the run and are mapped to a process exit code:
//   - ExitError: Command exit with a specific exit code
//   - NotFoundError: No lockfile could be located for the target path
//   - NotReadableError: A lockfile exists but cannot be read or decoded
//   - ValidationError: The configuration file is invalid
//
// Non-fatal errors degrade a single item and are only surfaced in verbose logs:
//   - LookupError: A remote tag query failed for one repository
//   - ManifestUnavailableError: Direct dependencies could not be extracted
//
// Exit Codes:
//
// Standard exit codes are defined for scripting integration:
//   - ExitSuccess (0): Run completed
//   - ExitOutdated (1): Outdated packages found and fail_on_outdated is enabled
//   - ExitFailure (2): Lockfile missing, unreadable, or another fatal error
//   - ExitConfigError (3): Configuration or validation error
package errors
