package main

import "github.com/yapay-ai/hours-guardian/internal/cli"

func main() {
	cli.Execute()
}
