/*
Package config describes a textclean job: which files to rewrite and which rules to apply.

	            +-------------+
	            |   Config    |
	            |  (Job)      |
	            +------+------+
	                   |
	   +--------+------+------+--------+
	   |        |             |        |
	+--+---+ +--+---+     +---+--+ +---+--+
	| JSON | | YAML |     | TOML | | HCL  |
	+------+ +------+     +------+ +------+

🎯 Purpose:
- Provides the built-in AnalysisView.swift job via Default
- Loads user jobs from a file, format picked by extension
- Validates targets, rules, patterns and encoding before anything is touched

🔄 Flow:
1. Reads the file
2. Decodes it (unknown fields are rejected for JSON, YAML and TOML)
3. Applies defaults (utf-8, one file at a time)
4. Validates struct tags, compiles every pattern, resolves the encoding
5. Resolves relative targets against the config file's directory

🔍 Example:

	cfg := config.Default()
	if *configFile != "" {
		cfg, err = config.LoadConfig(ctx, *configFile)
		if err != nil {
			return err
		}
	}
*/
package config
