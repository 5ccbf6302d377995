/*
Package config loads the optional tgfix configuration file.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	    +---------+----+----+---------+
	    |         |         |         |
	+---+---+ +---+---+ +---+---+ +---+---+
	| YAML  | |  HCL  | | JSON  | | TOML  |
	+-------+ +-------+ +-------+ +-------+

🎯 Purpose:
- Picks a parser from the file extension
- Rejects unknown keys in every format
- Validates backup policy, globs and language tag
- Resolves word list paths against the config file directory

Values from the file are defaults. A flag set on the command line wins.

🔍 Example:

	# tgfix.hcl
	recursive     = true
	backup_policy = "overwrite"
	language      = "fr"

	words {
	  wrong_words        = "lists/wrong.txt"
	  correct_words      = "lists/correct.txt"
	  replace_hyphens    = true
	}
*/
package config
