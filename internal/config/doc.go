// Package config handles loading and validating routewind.json files.
//
// A routewind.json marks the project root and tunes the declaration
// convention:
//
//	{
//	  "root_directory": "routes",
//	  "extension": ".go",
//	  "index_name": "index",
//	  "middleware_marker": "_middleware",
//	  "method_aliases": {"del": "DELETE"}
//	}
//
// All fields are optional; omitted fields fall back to the defaults
// shown above (method_aliases defaults to empty). Commands locate the
// project root by walking up from the working directory until they find
// a routewind.json.
package config
