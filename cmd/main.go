package main

import (
	cmd "github.com/rikuta/mangapress/cmd/mangapress"
)

func main() {
	cmd.Execute()
}
