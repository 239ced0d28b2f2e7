package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// RequireTTY fails fast when stdin or stdout is not an interactive terminal
func RequireTTY(in, out *os.File) error {
	if !term.IsTerminal(int(in.Fd())) {
		return fmt.Errorf("stdin is not a terminal")
	}
	if !term.IsTerminal(int(out.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}
	return nil
}
