// chessterm serves a small two-player chess board over SSH, or runs it
// directly in the invoking terminal with -stdio. The rules live in the chess
// package; this binary is only the terminal front end.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func main() {
	var (
		sshPort = flag.Int("port", 2222, "SSH server port")
		local   = flag.Bool("local", false, "use a locally generated host key instead of Secret Manager")
		stdio   = flag.Bool("stdio", false, "run the board in this terminal instead of serving SSH")
	)
	flag.Parse()

	if *stdio {
		if _, err := tea.NewProgram(initialModel(), tea.WithAltScreen()).Run(); err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := runSSHServer(ctx, *sshPort, *local); err != nil {
		log.Fatal(err)
	}
}
