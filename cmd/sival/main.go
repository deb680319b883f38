// Command sival is the silicon-validation toolkit CLI.
package main

import "github.com/sivalab/sival/internal/cli"

func main() {
	cli.Execute()
}
