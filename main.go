package main

import "github.com/jramirezbandera/ec2fiber/cmd"

func main() {
	cmd.Execute()
}
