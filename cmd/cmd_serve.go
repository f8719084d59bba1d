// cmd_serve.go - Server-Start und Versionsanzeige
// Hauptfunktionen: RunServer, versionHandler
package cmd

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/thorascan/thorascan/api"
	"github.com/thorascan/thorascan/envconfig"
	"github.com/thorascan/thorascan/server"
	"github.com/thorascan/thorascan/version"
)

// RunServer - Startet den ThoraScan-Server
func RunServer(_ *cobra.Command, _ []string) error {
	ln, err := net.Listen("tcp", envconfig.Host().Host)
	if err != nil {
		return err
	}

	err = server.Serve(ln, time.Now().UnixNano())
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}

	return err
}

// versionHandler - Zeigt die Version an
func versionHandler(cmd *cobra.Command, _ []string) {
	fmt.Printf("thorascan version is %s\n", version.Version)

	client, err := api.ClientFromEnvironment()
	if err != nil {
		return
	}

	health, err := client.Health(cmd.Context())
	if err != nil {
		fmt.Println("Warning: could not connect to a running ThoraScan instance")
		return
	}

	if health.Version != version.Version {
		fmt.Printf("Warning: server version is %s\n", health.Version)
	}
}

// newServeCmd - Erstellt den serve Command
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Aliases: []string{"start"},
		Short:   "Start ThoraScan",
		Args:    cobra.ExactArgs(0),
		RunE:    RunServer,
	}
}
