// Package config provides configuration loading, merging, and validation
// facilities for 1p.
//
// Configuration is assembled from multiple sources; the first source to set
// a field wins:
//  1. Command-line flags (passed in as an overlay)
//  2. ONEP_-prefixed environment variables
//  3. JSON config file (--config, ONEP_CONFIG, or the default path under
//     the user config dir when present)
//
// The main entry point is [Load].
package config
