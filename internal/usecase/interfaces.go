package usecase

import (
	"context"
	"io"
)

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
}

type LogoUploader interface {
	UploadStoreLogo(ctx context.Context, file io.Reader, actorID, contentType string) (string, error)
}
