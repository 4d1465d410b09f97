// Command cataloger keeps a personal video game catalog in a SQLite file.
package main

import "github.com/mesh-intelligence/cataloger/internal/cli"

func main() {
	cli.Execute()
}
