package domain

// Module is a resolved page module as returned by the module loader: an
// opaque export plus enough identity for diagnostics.
type Module struct {
	// Path is the component path the module was resolved from.
	Path string `json:"path"`
	// Title is the human-readable page title, when the module declares one.
	Title string `json:"title,omitempty"`
	// Export is the module payload handed to the presentation layer. The
	// registry treats it as opaque.
	Export any `json:"-"`
}
