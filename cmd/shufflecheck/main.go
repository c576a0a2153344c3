// cmd/shufflecheck/main.go
package main

import (
	"github.com/cynthiateeters/fisher-yates/internal/appshell"
	"github.com/cynthiateeters/fisher-yates/internal/checkapp"
)

func main() {
	appshell.Main(checkapp.RunContext)
}
