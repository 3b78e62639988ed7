package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"brodverk-backend/internal/config"
	"brodverk-backend/internal/database"
	"brodverk-backend/internal/logger"
	"brodverk-backend/internal/models"
)

func main() {
	fmt.Println("Creating Admin Account")
	fmt.Println("======================")

	cfg := config.Load()
	log := logger.L

	db, err := database.Connect(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalw("failed to run migrations", "error", err)
	}

	ctx := context.Background()
	userQueries := database.NewUserQueries(db)
	reader := bufio.NewReader(os.Stdin)

	email := prompt(reader, "Enter admin email: ")
	if email == "" {
		log.Fatal("email cannot be empty")
	}

	existing, err := userQueries.GetUserByEmail(ctx, email)
	if err == nil && existing != nil {
		fmt.Printf("User %s already exists.\n", email)
		confirm := strings.ToLower(prompt(reader, "Promote this user to admin? (y/N): "))
		if confirm != "y" && confirm != "yes" {
			fmt.Println("Operation cancelled.")
			return
		}
		_, err := userQueries.UpdateUser(ctx, existing.ID, &models.EmployeeRequest{
			Email: existing.Email,
			Name:  existing.Name,
			Role:  models.RoleAdmin,
		})
		if err != nil {
			log.Fatalw("failed to promote user", "error", err)
		}
		fmt.Printf("User %s is now an admin.\n", email)
		return
	}

	name := prompt(reader, "Enter admin name: ")
	if name == "" {
		log.Fatal("name cannot be empty")
	}

	fmt.Print("Enter admin password: ")
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		log.Fatalw("failed to read password", "error", err)
	}
	password := string(passwordBytes)
	if len(password) < 8 {
		log.Fatal("password must be at least 8 characters")
	}

	user, err := userQueries.CreateUser(ctx, email, name, password, models.RoleAdmin)
	if err != nil {
		log.Fatalw("failed to create admin user", "error", err)
	}
	fmt.Printf("Created admin user %s (id %d).\n", user.Email, user.ID)
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
