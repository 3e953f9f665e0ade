package main

import "github.com/PGP-Health-System/pgp/cmd"

func main() {
	cmd.Execute()
}
