// cmd/tbfsbs/main.go
package main

import (
	"tbfsbs/internal/app"
	"tbfsbs/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
