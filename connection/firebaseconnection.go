package connection

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go"
	"firebase.google.com/go/auth"
	"google.golang.org/api/option"

	"taskboard/config"
)

// Firebase holds the process-wide Firebase client handles.
type Firebase struct {
	Firestore *firestore.Client
	Auth      *auth.Client
}

func (f *Firebase) Close() error {
	return f.Firestore.Close()
}

// FBConnection initializes the Firebase app from a credentials file or from the
// service-account fields of cfg.
func FBConnection(ctx context.Context, cfg config.FirebaseConfig) (*Firebase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opt, err := credentialsOption(cfg)
	if err != nil {
		return nil, err
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}
	app, err := firebase.NewApp(ctx, appConfig, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting Firestore client: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("error getting Auth client: %w", err)
	}

	return &Firebase{Firestore: client, Auth: authClient}, nil
}

func credentialsOption(cfg config.FirebaseConfig) (option.ClientOption, error) {
	if cfg.CredentialsFile != "" {
		return option.WithCredentialsFile(cfg.CredentialsFile), nil
	}
	serviceAccount := map[string]string{
		"type":         "service_account",
		"project_id":   cfg.ProjectID,
		"private_key":  cfg.Key(),
		"client_email": cfg.ClientEmail,
		"token_uri":    "https://oauth2.googleapis.com/token",
	}
	raw, err := json.Marshal(serviceAccount)
	if err != nil {
		return nil, err
	}
	return option.WithCredentialsJSON(raw), nil
}
