// Package config loads the settings used to build a watermark codec and its
// logger.
//
// Settings come from a JSON or YAML file (chosen by extension) and are then
// overlaid with INVISINK_* environment variables. Sources records where each
// overridden value came from.
//
// Example YAML:
//
//	alphabet: ["U+200B", "U+200C", "U+200D", "U+FEFF"]
//	prepend: false
//	log:
//	  level: debug
//	  format: json
//
// An empty alphabet selects watermark.DefaultAlphabet.
package config
