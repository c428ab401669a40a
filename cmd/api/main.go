package main

//go:generate swag init -g main.go -d .,../../internal -o ../../docs --outputTypes go --parseInternal

// @title                       BreakFree API
// @version                     1.0
// @description                 Habit tracking with daily entries, streaks and statistics.
// @BasePath                    /api/v1
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	Execute()
}
