package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/clinicore/user-system/internal/core/domain"
)

const (
	usersCollection  = "users"
	adminsCollection = "admins"
)

// UserRepository implements ports.UserRepository using MongoDB.
type UserRepository struct {
	client *mongo.Client
	users  *mongo.Collection
	admins *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		client: db.Client(),
		users:  db.Collection(usersCollection),
		admins: db.Collection(adminsCollection),
	}
}

type mongoUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	PasswordHash string             `bson:"password_hash"`
	Phone        string             `bson:"phone"`
	Gender       string             `bson:"gender"`
	Address      string             `bson:"address"`
	BirthDate    time.Time          `bson:"birth_date"`
	Role         string             `bson:"role"`
	IsDeleted    bool               `bson:"is_deleted"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

type mongoAdmin struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	AdminRole string             `bson:"admin_role"`
	CreatedAt time.Time          `bson:"created_at"`
}

// EnsureIndexes creates the unique email index that backs the uniqueness
// invariant. Concurrent inserts for the same email race at the index, never
// in application code.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

// FindActiveByEmail returns the non-soft-deleted user with the given email.
func (r *UserRepository) FindActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	var mu mongoUser
	filter := bson.M{"email": email, "is_deleted": false}
	if err := r.users.FindOne(ctx, filter).Decode(&mu); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// CreateAdminWithUser inserts the user and admin documents inside one mongo
// session transaction. The driver commits only if both inserts succeed and
// aborts the whole unit otherwise, so no orphan user document can survive a
// failed admin insert.
func (r *UserRepository) CreateAdminWithUser(ctx context.Context, user *domain.User, role domain.AdminRole) (*domain.User, *domain.Admin, error) {
	sess, err := r.client.StartSession()
	if err != nil {
		return nil, nil, fmt.Errorf("start session: %w", err)
	}
	defer sess.EndSession(ctx)

	type pair struct {
		user  mongoUser
		admin mongoAdmin
	}

	result, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		userDoc := mongoUser{
			Name:         user.Name,
			Email:        user.Email,
			PasswordHash: user.PasswordHash,
			Phone:        user.Phone,
			Gender:       string(user.Gender),
			Address:      user.Address,
			BirthDate:    user.BirthDate.UTC(),
			Role:         string(user.Role),
			IsDeleted:    false,
			CreatedAt:    user.CreatedAt,
			UpdatedAt:    user.UpdatedAt,
		}

		userRes, err := r.users.InsertOne(sc, userDoc)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, &domain.DuplicateKeyError{Field: "email"}
			}
			return nil, fmt.Errorf("insert user: %w", err)
		}
		userDoc.ID = userRes.InsertedID.(primitive.ObjectID)

		adminDoc := mongoAdmin{
			UserID:    userDoc.ID,
			AdminRole: string(role),
			CreatedAt: user.CreatedAt,
		}
		adminRes, err := r.admins.InsertOne(sc, adminDoc)
		if err != nil {
			return nil, fmt.Errorf("insert admin: %w", err)
		}
		adminDoc.ID = adminRes.InsertedID.(primitive.ObjectID)

		return pair{user: userDoc, admin: adminDoc}, nil
	})
	if err != nil {
		return nil, nil, err
	}

	p := result.(pair)
	return p.user.toDomain(), p.admin.toDomain(), nil
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:           mu.ID.Hex(),
		Name:         mu.Name,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Phone:        mu.Phone,
		Gender:       domain.Gender(mu.Gender),
		Address:      mu.Address,
		BirthDate:    mu.BirthDate,
		Role:         domain.Role(mu.Role),
		IsDeleted:    mu.IsDeleted,
		CreatedAt:    mu.CreatedAt,
		UpdatedAt:    mu.UpdatedAt,
	}
}

func (ma mongoAdmin) toDomain() *domain.Admin {
	return &domain.Admin{
		ID:        ma.ID.Hex(),
		UserID:    ma.UserID.Hex(),
		AdminRole: domain.AdminRole(ma.AdminRole),
		CreatedAt: ma.CreatedAt,
	}
}
