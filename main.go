/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "fsbench/cmd"

func main() {
	cmd.Execute()
}
