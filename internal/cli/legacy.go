package cli

import "strings"

// subcommands that disable legacy argument rewriting
var knownSubcommands = []string{
	"run", "r", "list", "ls", "show", "validate", "deps", "version",
	"help", "completion",
}

// RewriteLegacyArgs supports the classic tox invocation style
// `mosrun -e env1,env2 -- posargs` by inserting the run subcommand when
// the first argument is an environment selection flag.
func RewriteLegacyArgs(args []string) []string {
	if len(args) < 2 {
		return args
	}

	first := args[1]
	for _, sub := range knownSubcommands {
		if first == sub {
			return args
		}
	}

	if first == "-e" || strings.HasPrefix(first, "-e=") ||
		first == "--env" || strings.HasPrefix(first, "--env=") {
		rewritten := make([]string, 0, len(args)+1)
		rewritten = append(rewritten, args[0], "run")
		rewritten = append(rewritten, args[1:]...)
		return rewritten
	}

	return args
}
