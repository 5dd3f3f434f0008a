// cmd/mechsolver-lite/main.go
package main

import (
	"mechsolver/internal/appshell"
	"mechsolver/internal/liteapp"
)

func main() {
	appshell.Main(liteapp.RunContext)
}
