package main

import (
	"fmt"
	"os"

	"github.com/diillson/wlan-autoassign-go/internal/adapter/driven/config"
	"github.com/diillson/wlan-autoassign-go/internal/adapter/driven/export"
	"github.com/diillson/wlan-autoassign-go/internal/adapter/driving/cli"
	"github.com/diillson/wlan-autoassign-go/pkg/console"
	"github.com/diillson/wlan-autoassign-go/pkg/version"
)

func main() {
	// Inicializa os repositórios que não dependem da configuração
	configRepo := config.NewConfigRepository()
	exportRepo := export.NewExportRepository()
	consoleImpl := console.NewConsole()

	// Controlador, histórico e archive são montados por comando, depois das flags
	app := cli.NewCLIApp(version.Version, configRepo, exportRepo, consoleImpl)

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
