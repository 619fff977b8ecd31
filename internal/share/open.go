package share

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// WritePrintFile writes the print document beside the other exports and
// returns its path. The document triggers the print dialog itself once
// opened in a browser.
func WritePrintFile(dir, invoiceNumber, html string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, invoiceNumber+".html")
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("write print document: %w", err)
	}
	return path, nil
}

// Open hands a URL or file path to the platform opener (browser, mail
// client, chat app).
func Open(target string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", target, err)
	}
	// Don't wait; the opener hands off to the target application.
	go cmd.Wait()
	return nil
}
