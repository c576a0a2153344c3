// cmd/shuffle/main.go
package main

import (
	"github.com/cynthiateeters/fisher-yates/internal/app"
	"github.com/cynthiateeters/fisher-yates/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
