package main

import "roadmate-backend/cmd"

func main() {
	cmd.Run()
}
