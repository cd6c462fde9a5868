package main

import "otpvault/internal/cli"

func main() {
	cli.Execute()
}
