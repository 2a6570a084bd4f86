// matrixd serves the matrix operations calculator: a validated linear
// algebra API over gonum with a small web UI.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
