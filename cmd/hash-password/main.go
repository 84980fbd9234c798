package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/egorrya/pattaya-grad/services"
)

// Generates a bcrypt hash suitable for the ADMIN_PASS environment variable,
// for operators who prefer not to store the admin password in plaintext.
func main() {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Password: ")
	password, _ := reader.ReadString('\n')
	password = strings.TrimRight(password, "\r\n")

	if password == "" {
		log.Fatal("Password is required")
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	fmt.Println()
	fmt.Println("Set this as ADMIN_PASS:")
	fmt.Println(hash)
}
