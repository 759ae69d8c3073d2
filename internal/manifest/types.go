package manifest

// Manifest describes one embedded bash template.
type Manifest struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`

	// Placeholders are the literal tokens (without braces) this template
	// expects to be substituted, e.g. SCRIPT_NAME, DESCRIPTION, AUTHOR, DATE.
	Placeholders []string `yaml:"placeholders" json:"placeholders"`

	// DependencyDeclaration is the fixed literal line rewritten when the user
	// passes --dependencies (e.g. "DEPENDENCIES=()").
	DependencyDeclaration string `yaml:"dependency_declaration,omitempty" json:"dependency_declaration,omitempty"`

	// Colors describes the color-constant section removed by --no-colors.
	Colors *ColorBlock `yaml:"colors,omitempty" json:"colors,omitempty"`

	// DecorativeFunctions are shell function names removed by --minimal.
	DecorativeFunctions []string `yaml:"decorative_functions,omitempty" json:"decorative_functions,omitempty"`

	// Verbose describes the verbose-mode artifacts removed by --minimal.
	Verbose *VerboseBlock `yaml:"verbose,omitempty" json:"verbose,omitempty"`

	// Tools lists external commands the generated script (or the generator's
	// own default resolution) relies on. Checked by `shellsmith doctor`.
	Tools []ToolRequirement `yaml:"tools,omitempty" json:"tools,omitempty"`
}

// ColorBlock names the marker section holding color-constant declarations and
// the shell variables whose references are scrubbed in no-colors mode.
type ColorBlock struct {
	Section   string   `yaml:"section" json:"section"`
	Variables []string `yaml:"variables" json:"variables"`
}

// VerboseBlock names the verbose flag variable and the argument-parser option
// pattern whose case branch is removed in minimal mode.
type VerboseBlock struct {
	Variable      string `yaml:"variable" json:"variable"`
	OptionPattern string `yaml:"option_pattern" json:"option_pattern"`
}

// ToolRequirement is an external CLI tool with an optional minimum version.
type ToolRequirement struct {
	Name       string `yaml:"name" json:"name"`
	MinVersion string `yaml:"min_version,omitempty" json:"min_version,omitempty"`
}
