package client

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

var (
	ErrUserExists         = errors.New("user already exists with this email")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotSignedIn        = errors.New("no user is signed in")
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type storedUser struct {
	User
	PasswordHash string `json:"passwordHash"`
	Role         string `json:"role"`
}

type session struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// Auth is the local mock identity provider. Accounts and the active
// session persist through the storage adapter; no backend is involved.
type Auth struct {
	mu      sync.Mutex
	storage Storage
	current *session
}

func NewAuth(storage Storage) *Auth {
	auth := &Auth{storage: storage}
	auth.seedDemoUser()

	raw, ok, err := storage.Load(storageKeyUser)
	if err != nil {
		log.Println("Failed to load session:", err)
		return auth
	}
	if ok {
		var sess session
		if err := json.Unmarshal(raw, &sess); err != nil {
			log.Println("Failed to parse saved session, signing out:", err)
			return auth
		}
		auth.current = &sess
	}
	return auth
}

// seedDemoUser keeps a known demo account available for local use.
func (a *Auth) seedDemoUser() {
	users := a.loadUsers()
	hash, err := bcrypt.GenerateFromPassword([]byte("DemoPass@2024Secure"), bcryptCost)
	if err != nil {
		log.Println("Failed to hash demo password:", err)
		return
	}

	demo := storedUser{
		User: User{
			ID:        "demo-user",
			Email:     "demo@example.com",
			Name:      "Demo User",
			CreatedAt: time.Now(),
		},
		PasswordHash: string(hash),
		Role:         "user",
	}

	for i := range users {
		if users[i].Email == demo.Email {
			users[i] = demo
			a.saveUsers(users)
			return
		}
	}
	a.saveUsers(append(users, demo))
}

func (a *Auth) Register(email, name, password string) (*User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	users := a.loadUsers()
	for _, u := range users {
		if strings.ToLower(u.Email) == email {
			return nil, ErrUserExists
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}
	a.saveUsers(append(users, storedUser{User: user, PasswordHash: string(hash), Role: "user"}))

	if err := a.startSession(user, "user"); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *Auth) Login(email, password string) (*User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	password = strings.TrimSpace(password)

	for _, u := range a.loadUsers() {
		if strings.ToLower(u.Email) != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, ErrInvalidCredentials
		}
		if err := a.startSession(u.User, u.Role); err != nil {
			return nil, err
		}
		user := u.User
		return &user, nil
	}
	return nil, ErrInvalidCredentials
}

func (a *Auth) SignOut() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.current = nil
	if err := a.storage.Remove(storageKeyUser); err != nil {
		log.Println("Failed to clear session:", err)
	}
}

// CurrentUser returns the signed-in user, or nil.
func (a *Auth) CurrentUser() *User {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return nil
	}
	user := a.current.User
	return &user
}

// Token returns the session JWT for authenticated API calls.
func (a *Auth) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return ""
	}
	return a.current.Token
}

// UpdateProfile changes the signed-in user's name and/or email. Empty
// arguments leave the field unchanged.
func (a *Auth) UpdateProfile(name, email string) (*User, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.current == nil {
		return nil, ErrNotSignedIn
	}

	users := a.loadUsers()

	if name != "" {
		a.current.User.Name = name
	}
	if email != "" {
		email = strings.ToLower(strings.TrimSpace(email))
		for _, u := range users {
			if u.ID != a.current.User.ID && strings.ToLower(u.Email) == email {
				return nil, ErrUserExists
			}
		}
		a.current.User.Email = email
	}

	for i := range users {
		if users[i].ID == a.current.User.ID {
			users[i].User = a.current.User
			break
		}
	}
	a.saveUsers(users)
	a.saveSession()

	user := a.current.User
	return &user, nil
}

func (a *Auth) startSession(user User, role string) error {
	token, err := generateSessionToken(user, role)
	if err != nil {
		return err
	}
	a.current = &session{User: user, Token: token}
	a.saveSession()
	return nil
}

func (a *Auth) saveSession() {
	raw, err := json.Marshal(a.current)
	if err != nil {
		log.Println("Failed to encode session:", err)
		return
	}
	if err := a.storage.Save(storageKeyUser, raw); err != nil {
		log.Println("Failed to save session:", err)
	}
}

func (a *Auth) loadUsers() []storedUser {
	raw, ok, err := a.storage.Load(storageKeyUsers)
	if err != nil {
		log.Println("Failed to load users:", err)
		return nil
	}
	if !ok {
		return nil
	}
	var users []storedUser
	if err := json.Unmarshal(raw, &users); err != nil {
		log.Println("Failed to parse saved users, starting empty:", err)
		return nil
	}
	return users
}

func (a *Auth) saveUsers(users []storedUser) {
	raw, err := json.Marshal(users)
	if err != nil {
		log.Println("Failed to encode users:", err)
		return
	}
	if err := a.storage.Save(storageKeyUsers, raw); err != nil {
		log.Println("Failed to save users:", err)
	}
}

func generateSessionToken(user User, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    role,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour * 24 * 30).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
