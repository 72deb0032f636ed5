// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 13

// Output Rendering - these keys govern the target grammar and encoding of converted chapters.
const (
	OutputFormat  = "output.format"
	OutputCharset = "output.charset"
)

// Input Decoding - these keys control how raw chapter text is decoded before sniffing.
const (
	InputMP4Charset      = "input.mp4_charset"
	InputFallbackCharset = "input.fallback_charset"
)

// Clipboard Interaction - these keys configure the round trip through the system clipboard.
const (
	ClipboardCRLF = "clipboard.crlf"
	ClipboardEcho = "clipboard.echo"
)

// MKVToolNix Integration - these keys locate the external container tools.
const (
	Mkvmerge   = "mkvtoolnix.mkvmerge"
	Mkvextract = "mkvtoolnix.mkvextract"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive application behavior.
const (
	CliColored = "cli.colored"
)
