// README: User service tests (validation + DB-backed account flow).
package user

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TestSignUpValidation exercises rejections that happen before any store
// access, so a nil store is safe here.
func TestSignUpValidation(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	cases := []struct {
		name string
		cmd  SignUpCommand
	}{
		{"missing first name", SignUpCommand{Email: "a@b.com", LastName: "K", Password: "secret1"}},
		{"missing last name", SignUpCommand{Email: "a@b.com", FirstName: "A", Password: "secret1"}},
		{"empty email", SignUpCommand{FirstName: "A", LastName: "K", Password: "secret1"}},
		{"malformed email", SignUpCommand{Email: "not-an-email", FirstName: "A", LastName: "K", Password: "secret1"}},
		{"short password", SignUpCommand{Email: "a@b.com", FirstName: "A", LastName: "K", Password: "abc"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.SignUp(ctx, tc.cmd); err != ErrBadRequest {
				t.Errorf("expected ErrBadRequest, got %v", err)
			}
		})
	}
}

func TestSignInValidation(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.SignIn(context.Background(), "", "secret1"); err != ErrBadRequest {
		t.Errorf("expected ErrBadRequest for empty email, got %v", err)
	}
	if _, err := svc.SignIn(context.Background(), "a@b.com", ""); err != ErrBadRequest {
		t.Errorf("expected ErrBadRequest for empty password, got %v", err)
	}
}

func TestUpdateValidation(t *testing.T) {
	svc := NewService(nil)
	ctx := context.Background()

	if err := svc.Update(ctx, UpdateCommand{}); err != ErrBadRequest {
		t.Errorf("expected ErrBadRequest for missing user id, got %v", err)
	}
	if err := svc.Update(ctx, UpdateCommand{UserID: "u1"}); err != ErrBadRequest {
		t.Errorf("expected ErrBadRequest for empty update, got %v", err)
	}
	short := "abc"
	if err := svc.Update(ctx, UpdateCommand{UserID: "u1", Password: &short}); err != ErrBadRequest {
		t.Errorf("expected ErrBadRequest for short password, got %v", err)
	}
}

func TestAccountFlow(t *testing.T) {
	svc := NewService(setupTestStore(t))
	ctx := context.Background()

	email := fmt.Sprintf("flow_%d@example.com", time.Now().UnixNano())
	created, err := svc.SignUp(ctx, SignUpCommand{
		Email:     email,
		FirstName: "Asha",
		LastName:  "Rao",
		Password:  "secret1",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if created.PasswordHash == "secret1" {
		t.Fatal("password stored in plaintext")
	}

	// Duplicate email is rejected.
	if _, err := svc.SignUp(ctx, SignUpCommand{
		Email:     email,
		FirstName: "Other",
		LastName:  "User",
		Password:  "secret2",
	}); err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// Correct credentials sign in; wrong password does not.
	u, err := svc.SignIn(ctx, email, "secret1")
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	if u.ID != created.ID {
		t.Fatalf("signin returned wrong user: %s != %s", u.ID, created.ID)
	}
	if _, err := svc.SignIn(ctx, email, "wrongpass"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.SignIn(ctx, "ghost_"+email, "secret1"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	// Partial update: new last name and password; first name untouched.
	newLast := "Iyer"
	newPass := "freshpass"
	if err := svc.Update(ctx, UpdateCommand{UserID: created.ID, LastName: &newLast, Password: &newPass}); err != nil {
		t.Fatalf("update: %v", err)
	}
	updated, err := svc.SignIn(ctx, email, newPass)
	if err != nil {
		t.Fatalf("signin after update: %v", err)
	}
	if updated.FirstName != "Asha" || updated.LastName != "Iyer" {
		t.Fatalf("unexpected names after update: %s %s", updated.FirstName, updated.LastName)
	}
	if _, err := svc.SignIn(ctx, email, "secret1"); err != ErrInvalidCredentials {
		t.Fatalf("old password should no longer work, got %v", err)
	}
}

func TestUpdateUnknownUser(t *testing.T) {
	svc := NewService(setupTestStore(t))
	name := "Ghost"
	if err := svc.Update(context.Background(), UpdateCommand{UserID: "no-such-id", FirstName: &name}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("FAIRGADI_TEST_DSN")
	if dsn == "" {
		t.Skip("FAIRGADI_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)

	store := NewStore(db)
	if err := store.InitSchema(ctx); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	return store
}
