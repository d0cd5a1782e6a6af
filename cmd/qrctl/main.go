package main

import "qr-code-service/internal/cli"

func main() {
	cli.Execute()
}
