package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/dnlmlszl/realtime-dms-backend/internal/auth"
	"github.com/dnlmlszl/realtime-dms-backend/internal/errs"
	"github.com/dnlmlszl/realtime-dms-backend/internal/middleware"
	"github.com/dnlmlszl/realtime-dms-backend/internal/models"
	"github.com/dnlmlszl/realtime-dms-backend/internal/storage"
)

// UserService implements account creation, login, favorites and the user
// query surface.
type UserService struct {
	store         storage.Store
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(store storage.Store, authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *UserService {
	return &UserService{
		store:         store,
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// CreateUserParams carries the createUser mutation arguments.
type CreateUserParams struct {
	Email        string
	Password     string
	FirstName    string
	LastName     string
	ProfileImage string
	Description  string
}

// UserFilter narrows UsersFilter results. Email matches as a case-insensitive
// substring; IsFavorite, when set, selects users by whether they have at
// least one favorite client.
type UserFilter struct {
	Email      string
	IsFavorite *bool
}

// UserSort orders UsersFilter results by one field, asc or desc.
type UserSort struct {
	Field string
	Order string
}

// Create registers a new account. The first account ever created is promoted
// to admin; the decision is an explicit count check at creation time, not
// hidden state.
func (s *UserService) Create(ctx context.Context, p CreateUserParams) (*models.User, error) {
	const op = "UserService.Create"
	s.logger.Info("Create user request", "email", p.Email)

	if p.Email == "" {
		return nil, errs.Wrap(errs.InvalidArgument("email is required"), op)
	}
	if err := s.authenticator.ValidateCredential(p.Password); err != nil {
		return nil, errs.Wrap(errs.InvalidArgument(err.Error(), p.Email), op)
	}

	existing, err := s.store.GetUserByEmail(ctx, p.Email)
	if err != nil {
		return nil, errs.Wrap(err, op, p.Email)
	}
	if existing != nil {
		return nil, errs.Wrap(errs.Conflict("user already exists", p.Email), op)
	}

	hash, err := s.authenticator.HashCredential(p.Password)
	if err != nil {
		s.logger.Error("Password hashing failed", "email", p.Email, "error", err)
		return nil, errs.Wrap(err, op, p.Email)
	}

	role := models.RoleUser
	count, err := s.store.CountUsers(ctx)
	if err != nil {
		return nil, errs.Wrap(err, op, p.Email)
	}
	if count == 0 {
		role = models.RoleAdmin
	}

	user := &models.User{
		Email:        p.Email,
		PasswordHash: hash,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		ProfileImage: p.ProfileImage,
		Description:  p.Description,
		Role:         role,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		s.logger.Error("Create user failed", "email", p.Email, "error", err)
		return nil, errs.Wrap(err, op, p.Email)
	}

	s.logger.Info("User created", "user_id", user.ID, "email", user.Email, "role", user.Role)
	return user, nil
}

// Login authenticates a user and returns a signed token. A missing user and a
// wrong password both surface as the same Unauthenticated error.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	const op = "UserService.Login"
	s.logger.Info("Login request", "email", email)

	if email == "" || password == "" {
		return "", nil, errs.Wrap(errs.Unauthenticated("wrong credentials"), op)
	}

	user, err := s.authenticator.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("Login failed", "email", email, "error", err)
		return "", nil, errs.Wrap(errs.Unauthenticated("wrong credentials"), op)
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return "", nil, errs.Wrap(err, op)
	}

	s.logger.Info("User logged in", "user_id", user.ID, "email", user.Email)
	return token, user, nil
}

// Me returns the currently authenticated user, read from the request context
// placed there by the identity middleware.
func (s *UserService) Me(ctx context.Context) (*models.User, error) {
	const op = "UserService.Me"

	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, errs.Wrap(errs.Unauthenticated("you must be logged in to access this information"), op)
	}

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, op, userID)
	}
	return user, nil
}

// Users lists all users.
func (s *UserService) Users(ctx context.Context) ([]*models.User, error) {
	users, err := s.store.ListUsers(ctx)
	return users, errs.Wrap(err, "UserService.Users")
}

// UsersCount returns the number of registered users.
func (s *UserService) UsersCount(ctx context.Context) (int, error) {
	count, err := s.store.CountUsers(ctx)
	return count, errs.Wrap(err, "UserService.UsersCount")
}

// SingleUser retrieves one user by id.
func (s *UserService) SingleUser(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.store.GetUser(ctx, userID)
	return user, errs.Wrap(err, "UserService.SingleUser", userID)
}

// UsersFilter loads all users, then filters and sorts in memory. The data set
// is small enough that pushing the predicates into the store buys nothing.
func (s *UserService) UsersFilter(ctx context.Context, filter UserFilter, sortBy *UserSort) ([]*models.User, error) {
	const op = "UserService.UsersFilter"

	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, errs.Wrap(err, op)
	}

	filtered := users[:0]
	for _, u := range users {
		if filter.Email != "" && !strings.Contains(strings.ToLower(u.Email), strings.ToLower(filter.Email)) {
			continue
		}
		if filter.IsFavorite != nil && (len(u.Favorites) > 0) != *filter.IsFavorite {
			continue
		}
		filtered = append(filtered, u)
	}

	if sortBy != nil && sortBy.Field != "" && sortBy.Order != "" {
		sortUsers(filtered, sortBy.Field, sortBy.Order)
	}
	return filtered, nil
}

func sortUsers(users []*models.User, field, order string) {
	key := func(u *models.User) string {
		switch field {
		case "email":
			return u.Email
		case "firstname":
			return u.FirstName
		case "lastname":
			return u.LastName
		case "role":
			return u.Role
		default:
			// Unknown fields leave the order untouched.
			return ""
		}
	}
	sort.SliceStable(users, func(i, j int) bool {
		if order == "desc" {
			return key(users[i]) > key(users[j])
		}
		return key(users[i]) < key(users[j])
	})
}

// ToggleFavorite performs a symmetric-difference update of the user's
// favorite list: the client id is appended if absent and removed if present.
// Two consecutive calls restore the original list.
func (s *UserService) ToggleFavorite(ctx context.Context, userID, clientID string) (*models.User, error) {
	const op = "UserService.ToggleFavorite"
	s.logger.Info("ToggleFavorite", "user_id", userID, "client_id", clientID)

	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, op, userID, clientID)
	}

	if containsID(user.Favorites, clientID) {
		user.Favorites = removeID(user.Favorites, clientID)
	} else {
		user.Favorites = append(user.Favorites, clientID)
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, errs.Wrap(err, op, userID, clientID)
	}
	return user, nil
}

// AddFavorite appends a client to the user's favorites. Both sides must
// resolve; repeated adds leave the id listed repeatedly.
func (s *UserService) AddFavorite(ctx context.Context, userID, clientID string) (*models.User, error) {
	const op = "UserService.AddFavorite"
	s.logger.Info("AddFavorite", "user_id", userID, "client_id", clientID)

	client, err := s.store.GetClient(ctx, clientID)
	if err != nil {
		return nil, errs.Wrap(err, op, userID, clientID)
	}
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, errs.Wrap(err, op, userID, clientID)
	}

	user.Favorites = append(user.Favorites, client.ID)
	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, errs.Wrap(err, op, userID, clientID)
	}
	return user, nil
}
