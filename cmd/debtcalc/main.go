package main

import "github.com/simaogato/debtflow-backend/internal/cli"

func main() {
	cli.Execute()
}
