// cmd/mechsolver/main.go
package main

import (
	"mechsolver/internal/app"
	"mechsolver/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
