// Package assets provides the month page template and the stylesheets a
// calendar can be printed with.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in template and styles (go:embed)
//	    ├── FilesystemLoader  - a theme directory on disk
//	    └── AssetResolver     - directory first, built-ins as fallback
//
// A theme directory only needs the files it overrides:
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── month.html
//
// # Security
//
// Asset names cannot contain separators or dots, and FilesystemLoader
// resolves symlinks before checking that a file stays inside basePath.
package assets
