package main

import "github.com/oncare/care-report-api/cmd"

// @title           Care Report API
// @version         1.0.0
// @description     Transcription and care document generation for care facilities
// @termsOfService  http://swagger.io/terms/
// @contact.name    API Support
// @contact.email   support@example.com
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:5000
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
