// Command hashpw prints a bcrypt hash for ADMIN_PASSWORD_HASH. The password
// is read from the first line of stdin.
//
//	echo -n 's3cret' | go run ./cmd/hashpw
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"swastik/internal/models"
)

func main() {
	hash, err := hashFrom(os.Stdin)
	if err != nil {
		log.Fatalf("hashpw: %v", err)
	}
	fmt.Println(hash)
}

func hashFrom(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		return "", errors.New("empty password")
	}
	return models.HashPassword(pw)
}
