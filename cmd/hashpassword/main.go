// Command hashpassword prints a bcrypt hash for OPERATOR_PASSWORD_HASH.
// The password is read from the first argument or, if absent, from stdin.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Dosada05/tournament-draws/utils"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	password := ""
	if len(os.Args) > 1 {
		password = os.Args[1]
	} else {
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil && line == "" {
			logger.Error("failed to read password", slog.Any("error", err))
			os.Exit(1)
		}
		password = strings.TrimRight(line, "\r\n")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		logger.Error("failed to hash password", slog.Any("error", err))
		os.Exit(1)
	}
	fmt.Println(hash)
}
