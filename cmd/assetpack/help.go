package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetpack <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tags       Render include tags for sources")
	fmt.Fprintln(w, "  expand     List the sources a request expands to")
	fmt.Fprintln(w, "  build      Regenerate every bundle in the config file")
	fmt.Fprintln(w, "  config     Print the effective configuration")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'assetpack help <command>' for details on a specific command.")
}

// printCommonUsage prints flags shared by all commands.
func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --assets-dir <path>   Public assets root (default: public)")
	fmt.Fprintln(w, "      --perform-caching     Reuse existing bundles")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show bundle activity")
}

// printTagsUsage prints usage for the tags command.
func printTagsUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetpack tags <category> <source>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render include tags for sources.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  category  javascripts (js) or stylesheets (css)")
	fmt.Fprintln(w, "  source    Name, path, URI, :key from expansions, or :all")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Combining:")
	fmt.Fprintln(w, "      --cache[=name]        Combine into name.ext when caching is enabled")
	fmt.Fprintln(w, "      --concat[=name]       Always combine into name.ext (default name: all)")
	fmt.Fprintln(w, "  -r, --recursive           Descend subdirectories for :all")
	fmt.Fprintln(w, "      --attr key=value      Tag attribute (repeatable)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printExpandUsage prints usage for the expand command.
func printExpandUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetpack expand <category> <source>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the sources a request expands to, one per line.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -r, --recursive           Descend subdirectories for :all")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetpack build [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Regenerate every bundle declared under bundles in the config file.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: assetpack config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration after applying env vars and flags.")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "tags":
		printTagsUsage(env.Stdout)
	case "expand":
		printExpandUsage(env.Stdout)
	case "build":
		printBuildUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: assetpack version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: assetpack help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
