/*
Copyright © 2026 Paulo Suderio
*/
package main

import "github.com/suderio/grimoire/cmd"

func main() {
	cmd.Execute()
}
