// ABOUTME: briefctl is a command-line front end to the feed cleaning pipeline
// ABOUTME: Runs the same code as the API without starting a server

package main

import "os"

func main() {
	rootCmd.SetOut(os.Stdout)
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
