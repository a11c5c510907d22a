package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"
)

// readPassphrase reads a passphrase without echo when attached to a
// terminal, with a plain-line fallback for pipes.
func readPassphrase(prompt string) ([]byte, error) {
	fmt.Fprint(os.Stderr, prompt)

	if term.IsTerminal(int(syscall.Stdin)) {
		pass, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, err
		}
		return pass, nil
	}

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, err
	}
	return []byte(strings.TrimSpace(line)), nil
}

// readSecretInteractive prompts for the secret, hiding input on terminals.
func readSecretInteractive() ([]byte, error) {
	fmt.Fprint(os.Stderr, "Enter your secret: ")

	if term.IsTerminal(int(syscall.Stdin)) {
		secret, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return nil, err
		}
		if len(secret) == 0 {
			return nil, fmt.Errorf("secret cannot be empty")
		}
		return secret, nil
	}

	return readFromStdin()
}

// readFromStdin reads the whole of stdin and trims trailing whitespace.
func readFromStdin() ([]byte, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, err
	}

	secret := []byte(strings.TrimSpace(string(data)))
	if len(secret) == 0 {
		return nil, fmt.Errorf("secret cannot be empty")
	}
	return secret, nil
}

// readLines collects non-empty lines from stdin until EOF or a blank line on
// a terminal. Used to paste shares one per line.
func readLines(prompt string) ([]string, error) {
	fmt.Fprintln(os.Stderr, prompt)

	interactive := term.IsTerminal(int(syscall.Stdin))
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if interactive && len(lines) > 0 {
				break
			}
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("no shares provided")
	}
	return lines, nil
}
