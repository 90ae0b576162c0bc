package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"hostelhub/database"
	"hostelhub/internal/microservices/http-api/models"
	"hostelhub/internal/microservices/http-api/repository"
	"hostelhub/internal/middleware/auth"

	"github.com/spf13/cobra"
)

const passwordEnv = "HOSTELCTL_PASSWORD"

var (
	hostelName   string
	hostelDomain string

	userHostel   string
	userName     string
	userEmail    string
	userRole     string
	userPassword string
)

var createHostelCmd = &cobra.Command{
	Use:   "create-hostel",
	Short: "Create a hostel",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		hostel, err := createHostel(cmd.Context(), repository.NewHostelRepository(db), hostelName, hostelDomain)
		if err != nil {
			return err
		}

		fmt.Println("✓ Hostel created successfully!")
		fmt.Printf("ID: %s\n", hostel.ID)
		fmt.Printf("Domain: %s\n", hostel.Domain)
		return nil
	},
}

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create a user account in a hostel",
	Long: `Create an ADMIN, STUDENT or WORKER account. The password is read from --password
or, when the flag is omitted, from the ` + passwordEnv + ` environment variable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		password := userPassword
		if password == "" {
			password = os.Getenv(passwordEnv)
		}

		_, db, err := openDB()
		if err != nil {
			return err
		}
		defer database.Close(db)

		user, err := createUser(cmd.Context(), repository.NewHostelRepository(db), repository.NewUserRepository(db), userInput{
			HostelDomain: userHostel,
			Name:         userName,
			Email:        userEmail,
			Role:         userRole,
			Password:     password,
		})
		if err != nil {
			return err
		}

		fmt.Println("✓ User created successfully!")
		fmt.Printf("ID: %s\n", user.ID)
		fmt.Printf("Email: %s | Role: %s\n", user.Email, user.Role)
		return nil
	},
}

func createHostel(ctx context.Context, hostels repository.HostelRepository, name, domain string) (*models.Hostel, error) {
	name = strings.TrimSpace(name)
	domain = strings.ToLower(strings.TrimSpace(domain))
	if name == "" || domain == "" {
		return nil, errors.New("--name and --domain are required")
	}

	hostel := &models.Hostel{Name: name, Domain: domain}
	if err := hostels.Create(ctx, hostel); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("hostel domain %q already exists", domain)
		}
		return nil, fmt.Errorf("create hostel: %w", err)
	}
	return hostel, nil
}

type userInput struct {
	HostelDomain string
	Name         string
	Email        string
	Role         string
	Password     string
}

func createUser(ctx context.Context, hostels repository.HostelRepository, users repository.UserRepository, in userInput) (*models.User, error) {
	role := strings.ToUpper(strings.TrimSpace(in.Role))
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q (want ADMIN, STUDENT or WORKER)", in.Role)
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || strings.TrimSpace(in.Name) == "" {
		return nil, errors.New("--name and --email are required")
	}

	hostel, err := hostels.FindByDomain(ctx, strings.ToLower(strings.TrimSpace(in.HostelDomain)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("hostel %q not found", in.HostelDomain)
		}
		return nil, fmt.Errorf("find hostel: %w", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		HostelID: hostel.ID,
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: hash,
		Role:     role,
		IsActive: true,
	}
	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("email %q is already registered", email)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func init() {
	createHostelCmd.Flags().StringVar(&hostelName, "name", "", "hostel display name")
	createHostelCmd.Flags().StringVar(&hostelDomain, "domain", "", "unique hostel domain, e.g. north.example.edu")

	createUserCmd.Flags().StringVar(&userHostel, "hostel", "", "hostel domain")
	createUserCmd.Flags().StringVar(&userName, "name", "", "full name")
	createUserCmd.Flags().StringVar(&userEmail, "email", "", "login email")
	createUserCmd.Flags().StringVar(&userRole, "role", "STUDENT", "ADMIN, STUDENT or WORKER")
	createUserCmd.Flags().StringVar(&userPassword, "password", "", "initial password (prefer "+passwordEnv+")")
}
