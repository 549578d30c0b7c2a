package main

import (
	"berquerant/excel-launcher-go/cmd"
	"berquerant/excel-launcher-go/exit"
)

func main() {
	if err := cmd.Execute(); err != nil {
		exit.Fail()
	}
}
