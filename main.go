/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/tkumli/gqlb/cmd"

func main() {
	cmd.Execute()
}
