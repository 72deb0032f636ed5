package constant

// External tool identifiers for the MKVToolNix container collaborator.
const (
	Mkvmerge   = "mkvmerge"
	Mkvextract = "mkvextract"
)

// Charset identifiers understood by the text codec.
const (
	UTF8    = "utf-8"
	UTF8Sig = "utf-8-sig"
)
