// Command mindtrack is the MindTrack command line interface.
package main

import "github.com/mindtrackhq/mindtrack/cmd/mindtrack"

func main() {
	mindtrack.Execute()
}
