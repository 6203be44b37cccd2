package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	// Handle subcommands
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version":
			fmt.Printf("wasdk %s\n", Version)
			return
		case "install":
			// Handle wasdk install subcommand
			if err := runInstall(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "--help", "-h", "help":
			printHelp()
			return
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n", os.Args[1])
			printHelp()
			os.Exit(1)
		}
	}

	// Default: show help
	printHelp()
}

func printHelp() {
	fmt.Println("wasdk - install WASI SDK releases")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  wasdk install [options]    Download and install a WASI SDK release")
	fmt.Println("  wasdk version              Show version information")
	fmt.Println()
	fmt.Println("Run 'wasdk install --help' for install options.")
}
