// Package assets provides the HTML templates and CSS styles used to render
// lecture pages.
//
// # Loaders
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in templates and styles (go:embed)
//	    ├── FilesystemLoader  - overrides from a directory on disk
//	    └── AssetResolver     - filesystem first, embedded fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}/
//	        ├── page.html       # lecture fragment: hero, TOC, sections
//	        └── document.html   # standalone wrapper around the fragment
//
// Asset names are validated before any lookup, and FilesystemLoader resolves
// symlinks and refuses paths that leave basePath.
package assets
