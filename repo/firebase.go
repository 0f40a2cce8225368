package repo

import (
	"context"
	"fmt"

	"SurveyBot/model"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/db"
	"google.golang.org/api/option"
)

// RecordRef is the Realtime Database node a submission is written to.
type RecordRef interface {
	Set(ctx context.Context, v interface{}) error
}

// FirebaseMirror copies every submission into the Firebase Realtime Database under
// <path>/<submission id>, one field per sheet column.
type FirebaseMirror struct {
	child func(id string) RecordRef
}

// NewFirebaseMirror creates a mirror backed by the database at databaseURL.
func NewFirebaseMirror(ctx context.Context, serviceAccountKeyPath, databaseURL, path string) (*FirebaseMirror, error) {
	opt := option.WithCredentialsFile(serviceAccountKeyPath)

	config := &firebase.Config{
		DatabaseURL: databaseURL,
	}
	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Database(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting database client: %w", err)
	}

	return newFirebaseMirror(client, path), nil
}

func newFirebaseMirror(client *db.Client, path string) *FirebaseMirror {
	ref := client.NewRef(path)
	return &FirebaseMirror{
		child: func(id string) RecordRef {
			return ref.Child(id)
		},
	}
}

// NewFirebaseMirrorWith builds a mirror on top of an arbitrary child lookup.
func NewFirebaseMirrorWith(child func(id string) RecordRef) *FirebaseMirror {
	return &FirebaseMirror{child: child}
}

func (f *FirebaseMirror) Append(ctx context.Context, s Submission) error {
	doc := make(map[string]string, len(model.Header))
	for i, column := range model.Header {
		if i < len(s.Row) {
			doc[column] = s.Row[i]
		}
	}
	if err := f.child(s.ID).Set(ctx, doc); err != nil {
		return fmt.Errorf("error mirroring submission %s: %w", s.ID, err)
	}
	return nil
}
