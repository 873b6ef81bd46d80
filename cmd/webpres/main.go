package main

import "github.com/danielgomezobraztsov/web-presentation/internal/cli"

func main() {
	cli.Execute()
}
