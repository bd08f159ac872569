package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/AKACHI-4/WeTube/db"
	"github.com/AKACHI-4/WeTube/forms"
	"github.com/AKACHI-4/WeTube/models"
	"github.com/AKACHI-4/WeTube/storage"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

// MediaFile is one uploaded file handed from a multipart request to
// the media store.
type MediaFile struct {
	Filename    string
	Size        int64
	ContentType string
	Reader      io.Reader
}

type UserService struct {
	db    db.Database
	media storage.MediaStore
	auth  *AuthService
}

func NewUserService(database db.Database, media storage.MediaStore, auth *AuthService) *UserService {
	return &UserService{db: database, media: media, auth: auth}
}

// uploadMedia relays one optional file to the media store. A nil file
// yields an empty URL without error; required files are checked by the
// caller.
func (s UserService) uploadMedia(ctx context.Context, folder string, file *MediaFile) (string, error) {
	if file == nil {
		return "", nil
	}

	url, err := s.media.Upload(ctx, folder, file.Filename, file.Reader, file.Size, file.ContentType)
	if err != nil {
		slog.Error("failed to upload media", "error", err, "folder", folder, "filename", file.Filename)
		return "", models.ErrInternal("something went wrong while uploading files")
	}
	return url, nil
}

func (s UserService) Register(ctx context.Context, form forms.RegisterForm, avatar, cover *MediaFile) (models.User, error) {
	if avatar == nil {
		return models.User{}, models.ErrBadRequest("user avatar is required")
	}

	exists, err := s.db.UserExists(ctx, form.Username, form.Email)
	if err != nil {
		slog.Error("failed to check if user exists", "error", err)
		return models.User{}, models.ErrInternal("something went wrong, please try again later")
	}
	if exists {
		return models.User{}, models.ErrConflict("user with email or username already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		return models.User{}, models.ErrInternal("something went wrong, please try again later")
	}

	avatarURL, err := s.uploadMedia(ctx, "avatars", avatar)
	if err != nil {
		return models.User{}, err
	}
	coverURL, err := s.uploadMedia(ctx, "covers", cover)
	if err != nil {
		return models.User{}, err
	}

	user, err := s.db.CreateUser(ctx, models.User{
		Username:   form.Username,
		Email:      form.Email,
		FullName:   form.FullName,
		Avatar:     avatarURL,
		CoverImage: coverURL,
		Password:   string(hashed),
	})
	if err != nil {
		slog.Error("failed to create user", "error", err)
		return models.User{}, models.ErrInternal("something went wrong while registering the user")
	}

	user.Password = ""
	return user, nil
}

func (s UserService) Login(ctx context.Context, form forms.LoginForm) (models.User, models.TokenPair, error) {
	if form.Username == "" && form.Email == "" {
		return models.User{}, models.TokenPair{}, models.ErrBadRequest("username or email is required")
	}

	user, err := s.db.FindUserByLogin(ctx, form.Username, form.Email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.User{}, models.TokenPair{}, models.ErrNotFound("user does not exist")
		}
		slog.Error("failed to look up user for login", "error", err)
		return models.User{}, models.TokenPair{}, models.ErrInternal("something went wrong, please try again later")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)); err != nil {
		// no refresh token is written on a failed login
		return models.User{}, models.TokenPair{}, models.ErrUnauthorized("invalid user credentials")
	}

	pair, err := s.auth.Issue(ctx, user.ID)
	if err != nil {
		return models.User{}, models.TokenPair{}, err
	}

	user.Password = ""
	user.RefreshToken = ""
	return user, pair, nil
}

func (s UserService) ChangePassword(ctx context.Context, userID bson.ObjectID, form forms.ChangePasswordForm) error {
	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.ErrNotFound("user does not exist")
		}
		slog.Error("failed to load user for password change", "error", err, "user_id", userID.Hex())
		return models.ErrInternal("something went wrong, please try again later")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.OldPassword)); err != nil {
		return models.ErrBadRequest("invalid old password")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		return models.ErrInternal("something went wrong, please try again later")
	}

	if err := s.db.UpdatePassword(ctx, userID, string(hashed)); err != nil {
		slog.Error("failed to update password", "error", err, "user_id", userID.Hex())
		return models.ErrInternal("something went wrong, please try again later")
	}
	return nil
}

func (s UserService) UpdateAccount(ctx context.Context, userID bson.ObjectID, form forms.UpdateAccountForm) (models.User, error) {
	user, err := s.db.UpdateAccount(ctx, userID, form.FullName, form.Email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.User{}, models.ErrNotFound("user does not exist")
		}
		slog.Error("failed to update account", "error", err, "user_id", userID.Hex())
		return models.User{}, models.ErrInternal("something went wrong, please try again later")
	}
	return user, nil
}

func (s UserService) UpdateAvatar(ctx context.Context, userID bson.ObjectID, file *MediaFile) (models.User, error) {
	return s.updateImage(ctx, userID, "avatars", file, s.db.UpdateAvatar, "user avatar is required")
}

func (s UserService) UpdateCoverImage(ctx context.Context, userID bson.ObjectID, file *MediaFile) (models.User, error) {
	return s.updateImage(ctx, userID, "covers", file, s.db.UpdateCoverImage, "cover image is required")
}

// updateImage is the single upload-then-update path shared by both
// profile images.
func (s UserService) updateImage(
	ctx context.Context,
	userID bson.ObjectID,
	folder string,
	file *MediaFile,
	update func(context.Context, bson.ObjectID, string) (models.User, error),
	missing string,
) (models.User, error) {
	if file == nil {
		return models.User{}, models.ErrBadRequest(missing)
	}

	old, err := s.db.GetUserPublic(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.User{}, models.ErrNotFound("user does not exist")
		}
		slog.Error("failed to load user for image update", "error", err, "user_id", userID.Hex())
		return models.User{}, models.ErrInternal("something went wrong, please try again later")
	}

	url, err := s.uploadMedia(ctx, folder, file)
	if err != nil {
		return models.User{}, err
	}

	user, err := update(ctx, userID, url)
	if err != nil {
		slog.Error("failed to update user image", "error", err, "user_id", userID.Hex(), "folder", folder)
		return models.User{}, models.ErrInternal("something went wrong, please try again later")
	}

	previous := old.Avatar
	if folder == "covers" {
		previous = old.CoverImage
	}
	if previous != "" {
		if err := s.media.Remove(ctx, previous); err != nil {
			slog.Warn("failed to remove previous image", "error", err, "url", previous)
		}
	}

	return user, nil
}

func (s UserService) ChannelProfile(ctx context.Context, username string, viewer bson.ObjectID) (models.ChannelProfile, error) {
	profile, err := s.db.ChannelProfile(ctx, username, viewer)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return models.ChannelProfile{}, models.ErrNotFound("channel does not exist")
		}
		slog.Error("failed to load channel profile", "error", err, "username", username)
		return models.ChannelProfile{}, models.ErrInternal("something went wrong, please try again later")
	}
	return profile, nil
}

func (s UserService) WatchHistory(ctx context.Context, userID bson.ObjectID) ([]models.HistoryEntry, error) {
	history, err := s.db.WatchHistory(ctx, userID)
	if err != nil {
		slog.Error("failed to load watch history", "error", err, "user_id", userID.Hex())
		return nil, models.ErrInternal("something went wrong, please try again later")
	}
	return history, nil
}
