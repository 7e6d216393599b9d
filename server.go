package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/keygen"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/gorilla/websocket"
	sshproxy "github.com/imjasonh/ssh-proxy"
)

// localHostKey generates an Ed25519 host key under the user's home directory
// on first run and reuses it afterwards.
func localHostKey() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	keyPath := filepath.Join(homeDir, ".chessterm", "host_key")
	if err := os.MkdirAll(filepath.Dir(keyPath), 0700); err != nil {
		return "", fmt.Errorf("failed to create key directory: %w", err)
	}
	if _, err := os.Stat(keyPath); os.IsNotExist(err) {
		log.Info("Generating SSH host key", "path", keyPath)
		if _, err := keygen.New(keyPath, keygen.WithKeyType(keygen.Ed25519)); err != nil {
			return "", fmt.Errorf("failed to generate host key: %w", err)
		}
	}
	return keyPath, nil
}

// cloudHostKey fetches the host key PEM from Secret Manager, for deployments
// where the key outlives any one instance. The secret resource name comes
// from SSH_HOST_KEY_SECRET.
func cloudHostKey(ctx context.Context) ([]byte, error) {
	client, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Secret Manager client: %w", err)
	}
	defer client.Close()

	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: os.Getenv("SSH_HOST_KEY_SECRET"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to access secret version: %w", err)
	}
	return resp.Payload.Data, nil
}

func teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	return initialModel(), []tea.ProgramOption{tea.WithAltScreen(), tea.WithInput(s), tea.WithOutput(s)}
}

func runSSHServer(ctx context.Context, port int, local bool) error {
	var hostKeyOpt ssh.Option
	if local {
		keyPath, err := localHostKey()
		if err != nil {
			return err
		}
		hostKeyOpt = wish.WithHostKeyPath(keyPath)
		log.Info("Running in local mode")
	} else {
		pem, err := cloudHostKey(ctx)
		if err != nil {
			return err
		}
		hostKeyOpt = wish.WithHostKeyPEM(pem)
		log.Info("Running in cloud mode with Secret Manager")
	}

	s, err := wish.NewServer(
		wish.WithAddress(fmt.Sprintf(":%d", port)),
		hostKeyOpt,
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return err
	}

	go func() {
		log.Info("Starting SSH chess server", "port", port)
		if err := s.ListenAndServe(); err != nil && err != ssh.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Browser clients reach the same TUI through a WebSocket-to-SSH proxy.
	if httpPort := os.Getenv("PORT"); httpPort != "" {
		go func() {
			log.Info("Starting WebSocket to SSH proxy", "port", httpPort)
			http.HandleFunc("/ssh", sshproxy.ProxyWebSocketToSSH(fmt.Sprintf(":%d", port), websocket.Upgrader{
				CheckOrigin: func(r *http.Request) bool {
					return true
				},
			}))
			if err := http.ListenAndServe(fmt.Sprintf(":%s", httpPort), nil); err != nil {
				log.Fatal("HTTP server error", "err", err)
			}
		}()
	}

	<-ctx.Done()
	log.Info("Stopping SSH server")

	tctx, tcancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer tcancel()
	return s.Shutdown(tctx)
}
