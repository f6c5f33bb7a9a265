// utils/firebase.go
package utils

import (
	"context"
	"log"

	"homeconnect/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var FirebaseAuthClient *auth.Client

// FirebaseInit initializes the Firebase App and the Auth client used for
// verifying caller ID tokens. Only required when AUTH_MODE is "firebase".
func FirebaseInit() {
	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	FirebaseAuthClient = client
}
