/*
Package config loads the tmplrc configuration.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |  JSON   |   |   HCL   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Locates the config file (--config, or ~/.config/tmplrc/config.*)
- Parses it by extension; unknown keys are rejected in every format
- Fills in defaults and expands ~ in the template root
- Checks ignore globs and preset keys before anything runs

🔍 Example:

	# ~/.config/tmplrc/config.yaml
	template_root: ~/.templates
	ignore: [".git", ".git/**"]
	values:
	  AUTHOR: jane

	# ~/.config/tmplrc/config.hcl
	template_root = "~/.templates"
	ignore        = [".git", ".git/**"]
	values = {
	  AUTHOR = env.USER
	}

A missing default file means defaults; a missing --config file is an error.
*/
package config
