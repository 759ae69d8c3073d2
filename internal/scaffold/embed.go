package scaffold

import "embed"

// templatesFS holds the embedded template sets: for each template <name>,
// a bash skeleton (<name>.sh.tmpl) and its manifest (<name>.yaml).
//
//go:embed templates
var templatesFS embed.FS
