package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"kisanmitra/internal/common/models"
	"kisanmitra/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// fakeUserRepo keeps users in memory, keyed by hex id.
type fakeUserRepo struct {
	users map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	f.users[user.ID.Hex()] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) UpdateProfile(ctx context.Context, id string, fields bson.M) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) UpdatePassword(ctx context.Context, id string, hashed string) error {
	return errors.New("not implemented")
}

func (f *fakeUserRepo) SetRefreshToken(ctx context.Context, id string, token string) error {
	u, ok := f.users[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	u.RefreshToken = token
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	delete(f.users, id)
	return nil
}

func newTestService() (AuthService, *fakeUserRepo) {
	utils.ConfigureJWT("test-access-secret", "test-refresh-secret", time.Hour, 2*time.Hour)
	repo := newFakeUserRepo()
	return NewAuthService(repo), repo
}

func register(t *testing.T, svc AuthService, email string) (*models.User, string, string) {
	t.Helper()
	usr, access, refresh, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ravi Kumar",
		Email:    email,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return usr, access, refresh
}

func TestRegisterDefaultsToFarmer(t *testing.T) {
	svc, _ := newTestService()

	usr, access, refresh, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if usr.Role != models.RoleFarmer {
		t.Errorf("Role = %q, want %q", usr.Role, models.RoleFarmer)
	}
	if usr.Password == "secret123" {
		t.Error("password stored in plaintext")
	}
	if access == "" || refresh == "" {
		t.Error("expected both tokens to be issued")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "ravi@example.com")

	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Impostor",
		Email:    "ravi@example.com",
		Password: "different",
	})
	if !errors.Is(err, ErrEmailTaken) {
		t.Errorf("error = %v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService()
	register(t, svc, "ravi@example.com")

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{name: "Correct Credentials", email: "ravi@example.com", password: "secret123"},
		{name: "Wrong Password", email: "ravi@example.com", password: "wrong", wantErr: ErrInvalidCredentials},
		{name: "Unknown Email", email: "nobody@example.com", password: "secret123", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr == nil && err != nil {
				t.Errorf("Login() error = %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Login() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRefresh(t *testing.T) {
	svc, _ := newTestService()
	_, _, refresh := register(t, svc, "ravi@example.com")

	access, err := svc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if access == "" {
		t.Error("Refresh() returned empty access token")
	}
}

func TestRefreshAfterLogout(t *testing.T) {
	svc, _ := newTestService()
	usr, _, refresh := register(t, svc, "ravi@example.com")

	if err := svc.Logout(context.Background(), usr.ID.Hex()); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}

	if _, err := svc.Refresh(context.Background(), refresh); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("Refresh() error = %v, want ErrInvalidRefreshToken", err)
	}
}

// A new login overwrites the stored refresh token, so the earlier session's
// token must stop working even though it has not expired.
func TestRefreshWithSupersededToken(t *testing.T) {
	svc, _ := newTestService()
	_, _, firstRefresh := register(t, svc, "ravi@example.com")

	// Token payloads include issued-at with second precision; make sure the
	// second token differs from the first.
	time.Sleep(1100 * time.Millisecond)

	_, _, secondRefresh, err := svc.Login(context.Background(), "ravi@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if firstRefresh == secondRefresh {
		t.Fatal("expected login to issue a different refresh token")
	}

	if _, err := svc.Refresh(context.Background(), firstRefresh); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("Refresh() with superseded token error = %v, want ErrInvalidRefreshToken", err)
	}
	if _, err := svc.Refresh(context.Background(), secondRefresh); err != nil {
		t.Errorf("Refresh() with current token error = %v", err)
	}
}

func TestRefreshWithGarbageToken(t *testing.T) {
	svc, _ := newTestService()

	if _, err := svc.Refresh(context.Background(), "garbage"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Errorf("Refresh() error = %v, want ErrInvalidRefreshToken", err)
	}
}
