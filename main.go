/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/chimlimhao/SpeechDataPrepTool/cmd"

// @title           Speech Data Prep API
// @version         1.0.0
// @description     A speech dataset preparation API with noise reduction and transcription
// @contact.name    API Support
// @contact.url     https://github.com/chimlimhao/SpeechDataPrepTool
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Supabase access token, sent as "Bearer <token>"
func main() {
	cmd.Execute()
}
