// Package cli implements the gamecat command line.
//
// Without a subcommand gamecat opens the interactive menu. Each menu
// command also exists as a subcommand for scripting:
//
//	gamecat add Chess Strategy 9.99
//	gamecat list --format json
//	gamecat cheapest
//	gamecat show Chess
//	gamecat export --to backup.yaml
//	gamecat config init
//
// Outcomes that the menu would show as a message (a bad price, an unknown
// name, an empty catalog) are printed and exit with status 0. Only storage
// failures and usage errors exit with status 1.
package cli
