// Package manifest defines the template manifest format: the sidecar YAML file
// that describes a bash template's placeholders, structural sections (color
// block, decorative helpers, verbose artifacts), and required tools. Manifests
// are validated against an embedded JSON Schema so a malformed template set is
// rejected before any generation happens.
package manifest
