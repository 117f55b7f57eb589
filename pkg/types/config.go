package types

// RenderConfig holds settings for a rendering run.
type RenderConfig struct {
	// SourceDir is the directory scanned for .vcf files in batch mode.
	SourceDir string `json:"source_dir" yaml:"source_dir"`

	// OutDir is the directory PDF contact sheets are written to.
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// Force re-renders files even when the ledger or an existing PDF
	// says they are up to date.
	Force bool `json:"force" yaml:"force"`

	// Locale selects a built-in label catalog ("en" or "de").
	Locale string `json:"locale" yaml:"locale"`

	// LabelsFile is an optional YAML file with label overrides, applied
	// on top of the locale catalog.
	LabelsFile string `json:"labels_file,omitempty" yaml:"labels_file,omitempty"`

	// NoLedger disables the SQLite render ledger; skip detection then
	// falls back to a plain output-file existence check.
	NoLedger bool `json:"no_ledger" yaml:"no_ledger"`

	// Copyright is an optional line drawn in the page footer.
	Copyright string `json:"copyright,omitempty" yaml:"copyright,omitempty"`
}
